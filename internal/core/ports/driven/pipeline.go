package driven

import "github.com/GaureshArt/docsy/internal/core/domain"

// Selector filters a raw tree listing down to indexable documentation
// files. Pure: malformed entries are silently dropped, never raised.
type Selector interface {
	// Select returns the surviving entries in input order.
	Select(tree []domain.TreeEntry) []domain.TreeEntry
}

// Ranker assigns each candidate an importance score, orders the
// survivors highest first and truncates to a processing budget.
type Ranker interface {
	// Rank returns at most the configured limit of entries, highest
	// priority first, plus the number dropped by truncation. Dropping
	// is a capacity control, not an error.
	Rank(entries []domain.TreeEntry) ([]domain.TreeEntry, int)
}

// Normalizer cleans fetched raw text while leaving fenced code blocks,
// tables and headings intact. It may drop files judged low-value.
type Normalizer interface {
	// Normalize returns the surviving files with cleaned content.
	// Path, ObjectID and the other identity fields pass through
	// unchanged.
	Normalize(files []domain.RawFile) []domain.RawFile
}

// Chunker splits normalised content into bounded, overlapping,
// structure-preserving windows with deterministic ids.
type Chunker interface {
	// Chunk returns one flat sequence: file order preserved from the
	// input, split order within each file.
	Chunk(files []domain.RawFile) []domain.Chunk
}
