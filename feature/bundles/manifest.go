package bundles

import (
	"encoding/json"
	"fmt"
	"os"

	"score-sync/core/catalog"
)

// Wire shapes of the per-level manifest documents inside a bundle. Versions
// in the documents are ignored; the catalog's fixed schema versions apply.

type srlDoc struct {
	Hash string `json:"hash"`
	URL  string `json:"url"`
}

func (d srlDoc) srl() catalog.SRL {
	return catalog.SRL{Hash: d.Hash, URL: d.URL}
}

type tagDoc struct {
	Title string `json:"title"`
}

func tags(docs []tagDoc) []catalog.Tag {
	out := make([]catalog.Tag, 0, len(docs))
	for _, d := range docs {
		out = append(out, catalog.Tag{Title: catalog.Text(d.Title)})
	}
	return out
}

type itemHeader struct {
	Name     string   `json:"name"`
	Title    string   `json:"title"`
	Subtitle string   `json:"subtitle"`
	Author   string   `json:"author"`
	Tags     []tagDoc `json:"tags"`
}

type skinDoc struct {
	itemHeader
	Thumbnail srlDoc `json:"thumbnail"`
	Data      srlDoc `json:"data"`
	Texture   srlDoc `json:"texture"`
}

type backgroundDoc struct {
	itemHeader
	Thumbnail     srlDoc `json:"thumbnail"`
	Data          srlDoc `json:"data"`
	Image         srlDoc `json:"image"`
	Configuration srlDoc `json:"configuration"`
}

type effectDoc struct {
	itemHeader
	Thumbnail srlDoc `json:"thumbnail"`
	Data      srlDoc `json:"data"`
	Audio     srlDoc `json:"audio"`
}

type particleDoc struct {
	itemHeader
	Thumbnail srlDoc `json:"thumbnail"`
	Data      srlDoc `json:"data"`
	Texture   srlDoc `json:"texture"`
}

type engineDoc struct {
	itemHeader
	Skin          skinDoc       `json:"skin"`
	Background    backgroundDoc `json:"background"`
	Effect        effectDoc     `json:"effect"`
	Particle      particleDoc   `json:"particle"`
	Thumbnail     srlDoc        `json:"thumbnail"`
	PlayData      srlDoc        `json:"playData"`
	WatchData     srlDoc        `json:"watchData"`
	PreviewData   srlDoc        `json:"previewData"`
	TutorialData  srlDoc        `json:"tutorialData"`
	Configuration srlDoc        `json:"configuration"`
}

type levelDoc struct {
	Item struct {
		Name    string    `json:"name"`
		Title   string    `json:"title"`
		Artists string    `json:"artists"`
		Author  string    `json:"author"`
		Rating  int       `json:"rating"`
		Tags    []tagDoc  `json:"tags"`
		Engine  engineDoc `json:"engine"`
		Cover   srlDoc    `json:"cover"`
		Data    srlDoc    `json:"data"`
		Bgm     srlDoc    `json:"bgm"`
	} `json:"item"`
}

// readLevelDoc loads and validates one level manifest document.
func readLevelDoc(path string) (levelDoc, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return levelDoc{}, fmt.Errorf("failed to read level manifest: %w", err)
	}
	var doc levelDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return levelDoc{}, fmt.Errorf("failed to parse level manifest: %w", err)
	}
	if doc.Item.Name == "" {
		return levelDoc{}, fmt.Errorf("level manifest has no item name")
	}
	if doc.Item.Engine.Name == "" {
		return levelDoc{}, fmt.Errorf("level manifest has no engine")
	}
	return doc, nil
}

func (d skinDoc) item() catalog.SkinItem {
	return catalog.SkinItem{
		Name:      d.Name,
		Version:   catalog.SkinVersion,
		Title:     catalog.Text(d.Title),
		Subtitle:  catalog.Text(d.Subtitle),
		Author:    catalog.Text(d.Author),
		Tags:      tags(d.Tags),
		Thumbnail: d.Thumbnail.srl(),
		Data:      d.Data.srl(),
		Texture:   d.Texture.srl(),
	}
}

func (d backgroundDoc) item() catalog.BackgroundItem {
	return catalog.BackgroundItem{
		Name:          d.Name,
		Version:       catalog.BackgroundVersion,
		Title:         catalog.Text(d.Title),
		Subtitle:      catalog.Text(d.Subtitle),
		Author:        catalog.Text(d.Author),
		Tags:          tags(d.Tags),
		Thumbnail:     d.Thumbnail.srl(),
		Data:          d.Data.srl(),
		Image:         d.Image.srl(),
		Configuration: d.Configuration.srl(),
	}
}

func (d effectDoc) item() catalog.EffectItem {
	return catalog.EffectItem{
		Name:      d.Name,
		Version:   catalog.EffectVersion,
		Title:     catalog.Text(d.Title),
		Subtitle:  catalog.Text(d.Subtitle),
		Author:    catalog.Text(d.Author),
		Tags:      tags(d.Tags),
		Thumbnail: d.Thumbnail.srl(),
		Data:      d.Data.srl(),
		Audio:     d.Audio.srl(),
	}
}

func (d particleDoc) item() catalog.ParticleItem {
	return catalog.ParticleItem{
		Name:      d.Name,
		Version:   catalog.ParticleVersion,
		Title:     catalog.Text(d.Title),
		Subtitle:  catalog.Text(d.Subtitle),
		Author:    catalog.Text(d.Author),
		Tags:      tags(d.Tags),
		Thumbnail: d.Thumbnail.srl(),
		Data:      d.Data.srl(),
		Texture:   d.Texture.srl(),
	}
}

func (d engineDoc) item() catalog.EngineItem {
	return catalog.EngineItem{
		Name:          d.Name,
		Version:       catalog.EngineVersion,
		Title:         catalog.Text(d.Title),
		Subtitle:      catalog.Text(d.Subtitle),
		Author:        catalog.Text(d.Author),
		Tags:          tags(d.Tags),
		Skin:          d.Skin.Name,
		Background:    d.Background.Name,
		Effect:        d.Effect.Name,
		Particle:      d.Particle.Name,
		Thumbnail:     d.Thumbnail.srl(),
		PlayData:      d.PlayData.srl(),
		WatchData:     d.WatchData.srl(),
		PreviewData:   d.PreviewData.srl(),
		TutorialData:  d.TutorialData.srl(),
		Configuration: d.Configuration.srl(),
	}
}

func (d levelDoc) item() catalog.LevelItem {
	return catalog.LevelItem{
		Name:          d.Item.Name,
		Version:       catalog.LevelVersion,
		Title:         catalog.Text(d.Item.Title),
		Artists:       catalog.Text(d.Item.Artists),
		Author:        catalog.Text(d.Item.Author),
		Rating:        d.Item.Rating,
		Tags:          tags(d.Item.Tags),
		Engine:        d.Item.Engine.Name,
		UseSkin:       catalog.UseItem{UseDefault: true},
		UseBackground: catalog.UseItem{UseDefault: true},
		UseEffect:     catalog.UseItem{UseDefault: true},
		UseParticle:   catalog.UseItem{UseDefault: true},
		Cover:         d.Item.Cover.srl(),
		Data:          d.Item.Data.srl(),
		Bgm:           d.Item.Bgm.srl(),
	}
}
