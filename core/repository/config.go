package repository

// Config holds configuration for the content store.
type Config struct {
	// Root is the directory holding the per-area content directories.
	Root string `mapstructure:"root" default:"lib/repository"`
}
