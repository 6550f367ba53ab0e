package bundles

// Config holds configuration for bundle importing.
type Config struct {
	// Dir is the directory holding .scp bundle archives.
	Dir string `mapstructure:"dir" default:"levels/scp"`
	// ExtractDir is the directory bundles are extracted into, one
	// subdirectory per package.
	ExtractDir string `mapstructure:"extract_dir" default:"lib/scp"`
}
