package sonolus

import (
	"score-sync/core/catalog"
	"score-sync/core/repository"
)

// EngineName is the default engine referenced by every directory-ingested
// level.
const EngineName = "pjsekai-extended"

// engineResource builds the reference for a blob in the engine area of the
// content store. The file name doubles as the caching key.
func engineResource(name string) catalog.SRL {
	return catalog.SRL{Hash: name, URL: repository.URL(repository.AreaEngine, name)}
}

func skinResource(hash string) catalog.SRL {
	return catalog.SRL{Hash: hash, URL: repository.URL(repository.AreaSkin, hash)}
}

func particleResource(hash string) catalog.SRL {
	return catalog.SRL{Hash: hash, URL: repository.URL(repository.AreaParticle, hash)}
}

func effectResource(hash string) catalog.SRL {
	return catalog.SRL{Hash: hash, URL: repository.URL(repository.AreaEffect, hash)}
}

// Install registers the default engine and its companion content. Levels
// published by ingestion reference these by name.
func Install(cat *catalog.Catalog) {
	cat.PutEngine(catalog.EngineItem{
		Name:          EngineName,
		Version:       catalog.EngineVersion,
		Title:         catalog.Text("PJSekai Extended"),
		Subtitle:      catalog.Text("PJSekai Extended"),
		Author:        catalog.Text("Sonolus + Nanashi."),
		Tags:          []catalog.Tag{},
		Skin:          "chcy-pjsekai-extended-01",
		Background:    "darkblue",
		Effect:        "chcy-pjsekai-fixed",
		Particle:      "chcy-pjsekai-v3",
		Thumbnail:     engineResource("thumbnail.png"),
		PlayData:      engineResource("EnginePlayData"),
		WatchData:     engineResource("EngineWatchData"),
		PreviewData:   engineResource("EnginePreviewData"),
		TutorialData:  engineResource("EngineTutorialData"),
		Configuration: engineResource("EngineConfiguration"),
	})

	cat.PutSkin(catalog.SkinItem{
		Name:      "chcy-pjsekai-extended-01",
		Version:   catalog.SkinVersion,
		Title:     catalog.Text("PJSekai+ / Type 1"),
		Subtitle:  catalog.Text("PJSekai Extended"),
		Author:    catalog.Text("Sonolus + Nanashi."),
		Tags:      []catalog.Tag{},
		Thumbnail: skinResource("24faf30cc2e0d0f51aeca3815ef523306b627289"),
		Data:      skinResource("79c9ecbc2c0c2b5ab7d43a628eb2b1fd3f2c12ff"),
		Texture:   skinResource("880800c7ca0f8f5d036f5c684ef842c1f04fb120"),
	})

	cat.PutSkin(catalog.SkinItem{
		Name:      "chcy-pjsekai-extended-02",
		Version:   catalog.SkinVersion,
		Title:     catalog.Text("PJSekai+ / Type 2"),
		Subtitle:  catalog.Text("PJSekai Extended"),
		Author:    catalog.Text("Sonolus + Nanashi."),
		Tags:      []catalog.Tag{},
		Thumbnail: skinResource("e461178513f806606357baf92f2e039c564b9528"),
		Data:      skinResource("28474d0ca4975d07a37615b5e7a974fbdd0ebffe"),
		Texture:   skinResource("c5724b7bb6e79a4e724990aa80dbe0d3a64c0232"),
	})

	cat.PutParticle(catalog.ParticleItem{
		Name:      "chcy-pjsekai-v1",
		Version:   catalog.ParticleVersion,
		Title:     catalog.Text("PJSekai / v1"),
		Subtitle:  catalog.Text("From servers.sonolus.com/pjsekai"),
		Author:    catalog.Text("Sonolus"),
		Tags:      []catalog.Tag{},
		Thumbnail: particleResource("e5f439916eac9bbd316276e20aed999993653560"),
		Data:      particleResource("7e104fd0d8eb38aacbeee3594a5d0aae5ababee8"),
		Texture:   particleResource("57b4bd504f814150dea87b41f39c2c7a63f29518"),
	})

	cat.PutParticle(catalog.ParticleItem{
		Name:      "chcy-pjsekai-v3",
		Version:   catalog.ParticleVersion,
		Title:     catalog.Text("PJSekai / v3"),
		Subtitle:  catalog.Text("From servers.sonolus.com/pjsekai"),
		Author:    catalog.Text("Sonolus"),
		Tags:      []catalog.Tag{},
		Thumbnail: particleResource("e5f439916eac9bbd316276e20aed999993653560"),
		Data:      particleResource("c85ee8e2e74001f4c999e38568e23d7b2e3f2dc8"),
		Texture:   particleResource("fcc05aa9086f178134019f6c92922a636740f295"),
	})

	cat.PutEffect(catalog.EffectItem{
		Name:      "chcy-pjsekai-fixed",
		Version:   catalog.EffectVersion,
		Title:     catalog.Text("PJSekai"),
		Subtitle:  catalog.Text("From servers.sonolus.com/pjsekai"),
		Author:    catalog.Text("Sonolus"),
		Tags:      []catalog.Tag{},
		Thumbnail: effectResource("e5f439916eac9bbd316276e20aed999993653560"),
		Data:      effectResource("5fe75e34f82b9539bb8d3c914c4794eed057254d"),
		Audio:     effectResource("3ac52ee309090423039c307cadcea20345d96003"),
	})
}
