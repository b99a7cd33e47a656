// Package app wires the configuration loaders, the Assist and the task
// registry together behind a single App, decoupled from any specific
// entrypoint like a CLI.
package app
