// Package file provides file-based implementations of driven port interfaces.
// These adapters persist data to the local filesystem.
//
// Adapters:
//   - ConfigStore: TOML-based configuration storage under ~/.docsy
//
// PipelineConfig maps stored keys onto concrete options for the ingestion
// pipeline stages.
package file
