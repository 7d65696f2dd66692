package domain

// Chunk is the unit handed to embedding: a bounded, possibly
// overlapping text span extracted from a normalised document.
//
// Chunk IDs are deterministic: the same file content and chunking
// parameters always yield the same ID sequence. Chunks form an
// ordered, doubly-linked sequence per source file and are never
// reordered after creation.
type Chunk struct {
	// ID is derived from the file path, a short content hash and the
	// chunk's ordinal within the file.
	ID string

	// Content is the text span.
	Content string

	// Metadata carries file identity and sibling linkage.
	Metadata ChunkMetadata
}

// ChunkMetadata is the stable metadata contract the downstream
// retrieval layer depends on. Field semantics must not change across
// pipeline versions or previously embedded references are orphaned.
type ChunkMetadata struct {
	// FilePath is the repository-relative path of the source file.
	FilePath string

	// FileObjectID is the content-addressed identifier of the file.
	FileObjectID string

	// ChunkIndex is the zero-based ordinal within the file.
	ChunkIndex int

	// TotalChunksForFile is the final chunk count for the file.
	TotalChunksForFile int

	// PreviousChunkID is the ID of the preceding chunk in the same
	// file, empty for the first chunk.
	PreviousChunkID string

	// NextChunkID is the ID of the following chunk in the same file,
	// empty for the last chunk.
	NextChunkID string
}
