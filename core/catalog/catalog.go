package catalog

import "sync"

// Catalog is the process-wide registry of publishable content. Initialized
// empty at start-up, appended to by ingestion and bundle importing, read by
// the serving layer for the life of the process.
type Catalog struct {
	mu sync.RWMutex

	skins       []SkinItem
	backgrounds []BackgroundItem
	effects     []EffectItem
	particles   []ParticleItem
	engines     []EngineItem
	levels      []LevelItem
}

// New creates an empty catalog.
func New() *Catalog {
	return &Catalog{}
}

// PutSkin appends a skin unless one with the same name is already registered.
// It reports whether the item was added.
func (c *Catalog) PutSkin(item SkinItem) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.skins {
		if c.skins[i].Name == item.Name {
			return false
		}
	}
	c.skins = append(c.skins, item)
	return true
}

// PutBackground appends a background unless the name is taken.
func (c *Catalog) PutBackground(item BackgroundItem) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.backgrounds {
		if c.backgrounds[i].Name == item.Name {
			return false
		}
	}
	c.backgrounds = append(c.backgrounds, item)
	return true
}

// PutEffect appends an effect unless the name is taken.
func (c *Catalog) PutEffect(item EffectItem) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.effects {
		if c.effects[i].Name == item.Name {
			return false
		}
	}
	c.effects = append(c.effects, item)
	return true
}

// PutParticle appends a particle unless the name is taken.
func (c *Catalog) PutParticle(item ParticleItem) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.particles {
		if c.particles[i].Name == item.Name {
			return false
		}
	}
	c.particles = append(c.particles, item)
	return true
}

// PutEngine appends an engine unless the name is taken.
func (c *Catalog) PutEngine(item EngineItem) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.engines {
		if c.engines[i].Name == item.Name {
			return false
		}
	}
	c.engines = append(c.engines, item)
	return true
}

// PutLevel appends a level unless the name is taken. Bundle importing uses
// this path: the first writer wins and re-imports stay idempotent.
func (c *Catalog) PutLevel(item LevelItem) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.levels {
		if c.levels[i].Name == item.Name {
			return false
		}
	}
	c.levels = append(c.levels, item)
	return true
}

// UpsertLevel replaces the level with the same name, or appends it. Directory
// ingestion uses this path so editing a chart re-publishes it in place.
func (c *Catalog) UpsertLevel(item LevelItem) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.levels {
		if c.levels[i].Name == item.Name {
			c.levels[i] = item
			return
		}
	}
	c.levels = append(c.levels, item)
}

// Skins returns a snapshot of the registered skins in insertion order.
func (c *Catalog) Skins() []SkinItem {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]SkinItem, len(c.skins))
	copy(out, c.skins)
	return out
}

// Backgrounds returns a snapshot of the registered backgrounds.
func (c *Catalog) Backgrounds() []BackgroundItem {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]BackgroundItem, len(c.backgrounds))
	copy(out, c.backgrounds)
	return out
}

// Effects returns a snapshot of the registered effects.
func (c *Catalog) Effects() []EffectItem {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]EffectItem, len(c.effects))
	copy(out, c.effects)
	return out
}

// Particles returns a snapshot of the registered particles.
func (c *Catalog) Particles() []ParticleItem {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]ParticleItem, len(c.particles))
	copy(out, c.particles)
	return out
}

// Engines returns a snapshot of the registered engines.
func (c *Catalog) Engines() []EngineItem {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]EngineItem, len(c.engines))
	copy(out, c.engines)
	return out
}

// Levels returns a snapshot of the registered levels.
func (c *Catalog) Levels() []LevelItem {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]LevelItem, len(c.levels))
	copy(out, c.levels)
	return out
}

// Skin looks up a skin by name.
func (c *Catalog) Skin(name string) (SkinItem, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for i := range c.skins {
		if c.skins[i].Name == name {
			return c.skins[i], true
		}
	}
	return SkinItem{}, false
}

// Background looks up a background by name.
func (c *Catalog) Background(name string) (BackgroundItem, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for i := range c.backgrounds {
		if c.backgrounds[i].Name == name {
			return c.backgrounds[i], true
		}
	}
	return BackgroundItem{}, false
}

// Effect looks up an effect by name.
func (c *Catalog) Effect(name string) (EffectItem, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for i := range c.effects {
		if c.effects[i].Name == name {
			return c.effects[i], true
		}
	}
	return EffectItem{}, false
}

// Particle looks up a particle by name.
func (c *Catalog) Particle(name string) (ParticleItem, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for i := range c.particles {
		if c.particles[i].Name == name {
			return c.particles[i], true
		}
	}
	return ParticleItem{}, false
}

// Engine looks up an engine by name.
func (c *Catalog) Engine(name string) (EngineItem, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for i := range c.engines {
		if c.engines[i].Name == name {
			return c.engines[i], true
		}
	}
	return EngineItem{}, false
}

// Level looks up a level by name.
func (c *Catalog) Level(name string) (LevelItem, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for i := range c.levels {
		if c.levels[i].Name == name {
			return c.levels[i], true
		}
	}
	return LevelItem{}, false
}

// Counts returns the number of registered items per kind, keyed by the kind's
// plural name. Used for start-up logging.
func (c *Catalog) Counts() map[string]int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return map[string]int{
		"skins":       len(c.skins),
		"backgrounds": len(c.backgrounds),
		"effects":     len(c.effects),
		"particles":   len(c.particles),
		"engines":     len(c.engines),
		"levels":      len(c.levels),
	}
}
