// Package config defines the format-agnostic puzzle batch model and the
// Loader interface for reading it from configuration sources. The model is
// the single source of truth for the runner; concrete loaders, such as the
// HCL one, live in separate packages.
package config
