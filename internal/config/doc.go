// Package config defines the format-agnostic build settings model for the
// application, along with the Loader interface for reading settings from a
// manifest on disk. Concrete implementations, such as the HCL loader, live
// in separate packages.
package config
