package domain

// EntryKind identifies the object type of a tree entry.
type EntryKind string

const (
	// KindBlob is a regular file.
	KindBlob EntryKind = "blob"

	// KindTree is a directory.
	KindTree EntryKind = "tree"

	// KindOther covers submodules, symlinks and anything else the
	// provider reports that docsy does not index.
	KindOther EntryKind = "other"
)

// TreeEntry is one entry from a repository's recursive file listing.
// It is immutable and sourced entirely from the transport connector.
type TreeEntry struct {
	// Path is repository-relative, forward-slash separated.
	Path string

	// Kind is the object type (blob, tree, other).
	Kind EntryKind

	// Size is the blob size in bytes. Zero means absent or empty;
	// either way the entry is not a candidate.
	Size int64

	// ObjectID is the content-addressed identifier (e.g. a git SHA).
	ObjectID string
}

// ScoredCandidate pairs a TreeEntry with its importance score.
type ScoredCandidate struct {
	Entry TreeEntry
	Score int
}
