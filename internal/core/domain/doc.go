// Package domain defines the core business entities for docsy.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - TreeEntry: One entry from a repository file listing
//   - RawFile: A fetched document before normalisation
//   - Chunk: A retrieval-ready text span handed to embedding
//   - RepoRef: A parsed repository reference (owner/repo@ref)
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
