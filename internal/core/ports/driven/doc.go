// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - Transport: Lists a repository tree and fetches raw file content
//   - Selector: Filters a tree listing down to documentation candidates
//   - Ranker: Scores, orders and truncates candidates
//   - Normalizer: Cleans fetched content and drops low-value files
//   - Chunker: Splits normalised content into linked chunks
//   - ChunkStore: Persists the final chunk sequence for embedding
//   - ConfigStore: Application configuration
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter, connector, or pipeline package
package driven
