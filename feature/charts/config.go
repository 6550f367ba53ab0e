package charts

// Config holds configuration for chart ingestion.
type Config struct {
	// Dir is the base directory holding one subdirectory per chart collection.
	Dir string `mapstructure:"dir" default:"levels"`
	// Converter is the external command that converts score files into level
	// data. It receives the format tag as its argument, the raw score on
	// stdin, and writes converted bytes to stdout.
	Converter string `mapstructure:"converter" default:"chart-convert"`
}
