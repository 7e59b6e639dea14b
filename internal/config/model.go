package config

import "context"

// Default values reproduce the behavior of the tool when no manifest and no
// flag overrides are present.
const (
	DefaultCompiler = "glslc"
	DefaultOutDir   = "bin"
	DefaultMarker   = "shaders"
)

// Settings is the resolved build configuration consumed by the driver. It is
// the single source of truth produced by merging defaults, the optional
// manifest, and any flag overrides.
type Settings struct {
	// Compiler is the external shader compiler executable.
	Compiler string

	// OutDir is the subdirectory, relative to the scan directory, that
	// receives compiled artifacts. It must already exist; the tool never
	// creates it.
	OutDir string

	// Marker is the substring the working directory path must contain for a
	// build to proceed.
	Marker string

	// Extensions are the recognized shader source filename suffixes.
	Extensions []string

	// ExtraFlags are appended to every compiler invocation, after the
	// optimization flag but before the source filename.
	ExtraFlags []string
}

// DefaultSettings returns a Settings populated with the built-in defaults.
func DefaultSettings() *Settings {
	return &Settings{
		Compiler:   DefaultCompiler,
		OutDir:     DefaultOutDir,
		Marker:     DefaultMarker,
		Extensions: []string{".vert", ".frag"},
	}
}

// Loader is the interface for a format-specific manifest loader.
type Loader interface {
	// Load reads the manifest from dir, if one exists, and returns the
	// resolved settings. A missing manifest is not an error: defaults are
	// returned instead.
	Load(ctx context.Context, dir string) (*Settings, error)
}
