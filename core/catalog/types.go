package catalog

// Schema versions are fixed per item kind by the Sonolus content
// format, independent of any individual chart.
const (
	SkinVersion       = 4
	BackgroundVersion = 2
	EffectVersion     = 5
	ParticleVersion   = 3
	EngineVersion     = 13
	LevelVersion      = 1
)

// SRL is a Sonolus resource locator: a content hash plus the URL the blob is
// servable from. The hash is the client's caching key; this subsystem does not
// verify it cryptographically.
type SRL struct {
	Hash string `json:"hash"`
	URL  string `json:"url"`
}

// LocalizedText wraps a single-locale text value. The upstream protocol keys
// everything under "en".
type LocalizedText struct {
	En string `json:"en"`
}

// Text builds a LocalizedText from a plain string.
func Text(s string) LocalizedText {
	return LocalizedText{En: s}
}

// Tag is a display label attached to an item.
type Tag struct {
	Title LocalizedText `json:"title"`
}

// Tags converts plain strings into a tag list. A nil input yields an empty,
// non-nil slice so the serialized form is always an array.
func Tags(titles []string) []Tag {
	out := make([]Tag, 0, len(titles))
	for _, t := range titles {
		out = append(out, Tag{Title: Text(t)})
	}
	return out
}

// SkinItem describes a note skin.
type SkinItem struct {
	Name      string        `json:"name"`
	Version   int           `json:"version"`
	Title     LocalizedText `json:"title"`
	Subtitle  LocalizedText `json:"subtitle"`
	Author    LocalizedText `json:"author"`
	Tags      []Tag         `json:"tags"`
	Thumbnail SRL           `json:"thumbnail"`
	Data      SRL           `json:"data"`
	Texture   SRL           `json:"texture"`
}

// BackgroundItem describes a stage background.
type BackgroundItem struct {
	Name          string        `json:"name"`
	Version       int           `json:"version"`
	Title         LocalizedText `json:"title"`
	Subtitle      LocalizedText `json:"subtitle"`
	Author        LocalizedText `json:"author"`
	Tags          []Tag         `json:"tags"`
	Thumbnail     SRL           `json:"thumbnail"`
	Data          SRL           `json:"data"`
	Image         SRL           `json:"image"`
	Configuration SRL           `json:"configuration"`
}

// EffectItem describes a sound effect set.
type EffectItem struct {
	Name      string        `json:"name"`
	Version   int           `json:"version"`
	Title     LocalizedText `json:"title"`
	Subtitle  LocalizedText `json:"subtitle"`
	Author    LocalizedText `json:"author"`
	Tags      []Tag         `json:"tags"`
	Thumbnail SRL           `json:"thumbnail"`
	Data      SRL           `json:"data"`
	Audio     SRL           `json:"audio"`
}

// ParticleItem describes a particle effect set.
type ParticleItem struct {
	Name      string        `json:"name"`
	Version   int           `json:"version"`
	Title     LocalizedText `json:"title"`
	Subtitle  LocalizedText `json:"subtitle"`
	Author    LocalizedText `json:"author"`
	Tags      []Tag         `json:"tags"`
	Thumbnail SRL           `json:"thumbnail"`
	Data      SRL           `json:"data"`
	Texture   SRL           `json:"texture"`
}

// EngineItem describes gameplay behavior. Skin, Background, Effect and
// Particle reference other catalog items by name.
type EngineItem struct {
	Name          string        `json:"name"`
	Version       int           `json:"version"`
	Title         LocalizedText `json:"title"`
	Subtitle      LocalizedText `json:"subtitle"`
	Author        LocalizedText `json:"author"`
	Tags          []Tag         `json:"tags"`
	Skin          string        `json:"skin"`
	Background    string        `json:"background"`
	Effect        string        `json:"effect"`
	Particle      string        `json:"particle"`
	Thumbnail     SRL           `json:"thumbnail"`
	PlayData      SRL           `json:"playData"`
	WatchData     SRL           `json:"watchData"`
	PreviewData   SRL           `json:"previewData"`
	TutorialData  SRL           `json:"tutorialData"`
	Configuration SRL           `json:"configuration"`
}

// UseItem selects between an engine's default item and an explicit override.
type UseItem struct {
	UseDefault bool   `json:"useDefault"`
	Item       string `json:"item,omitempty"`
}

// LevelItem describes one playable chart.
type LevelItem struct {
	Name          string        `json:"name"`
	Version       int           `json:"version"`
	Title         LocalizedText `json:"title"`
	Artists       LocalizedText `json:"artists"`
	Author        LocalizedText `json:"author"`
	Rating        int           `json:"rating"`
	Tags          []Tag         `json:"tags"`
	Engine        string        `json:"engine"`
	Description   LocalizedText `json:"description"`
	UseSkin       UseItem       `json:"useSkin"`
	UseBackground UseItem       `json:"useBackground"`
	UseEffect     UseItem       `json:"useEffect"`
	UseParticle   UseItem       `json:"useParticle"`
	Cover         SRL           `json:"cover"`
	Data          SRL           `json:"data"`
	Bgm           SRL           `json:"bgm"`
}
