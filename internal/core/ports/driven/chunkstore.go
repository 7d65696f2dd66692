package driven

import (
	"context"

	"github.com/GaureshArt/docsy/internal/core/domain"
)

// ChunkStore persists the final chunk sequence for the downstream
// embedding/indexing collaborator. The stored id/content/metadata
// contract must remain stable across pipeline versions.
type ChunkStore interface {
	// SaveBatch stores the files and their chunks, replacing any
	// previous chunks for the same file paths.
	SaveBatch(ctx context.Context, files []domain.RawFile, chunks []domain.Chunk) error

	// ChunksForFile returns the stored chunks for a file path in
	// chunk-index order.
	ChunksForFile(ctx context.Context, path string) ([]domain.Chunk, error)

	// Count returns the total number of stored chunks.
	Count(ctx context.Context) (int, error)

	// Close releases resources.
	Close() error
}
