// Package config defines the format-agnostic declarative model of a task
// configuration, the Loader interface that format-specific packages implement,
// and Apply, which replays a model onto an assist.Assist.
//
// Concrete loaders live in separate packages (internal/hcl, internal/yaml).
// The model keeps option declarations in file order because the option store
// merges, so order changes the result.
package config
