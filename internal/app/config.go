package app

// Config holds all the necessary configuration for an App instance to run.
// String fields left empty defer to the manifest or the built-in defaults.
type Config struct {
	Dir      string // directory to scan for shader sources
	Compiler string // overrides the manifest's compiler executable
	OutDir   string // overrides the manifest's output subdirectory
	Marker   string // overrides the working-directory marker substring
	Watch    bool   // keep running and rebuild sources as they change

	LogFormat string
	LogLevel  string
}

// NewConfig validates and normalizes a Config.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.Dir == "" {
		cfg.Dir = "."
	}

	// Future validations for other fields can be added here.

	return &cfg, nil
}
