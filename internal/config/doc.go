// Package config defines the format-agnostic configuration model and the
// Loader interface implemented by format-specific loaders.
//
// The model maps module names to their per-module settings (most importantly
// the flows a module participates in) and carries the working-object
// template every run is cloned from. The engine never reads configuration
// files itself; it consumes a *Model produced by a Loader and published
// through the hot-reload snapshot.
package config
