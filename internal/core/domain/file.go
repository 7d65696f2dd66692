package domain

import "time"

// RawFile is a fetched document before normalisation.
// The normaliser may rewrite Content but never Path or ObjectID;
// downstream citation relies on both being threaded through unchanged.
type RawFile struct {
	// Path is the repository-relative file path.
	Path string

	// Content is the full decoded UTF-8 text.
	Content string

	// ObjectID is the content-addressed identifier of the fetched bytes.
	ObjectID string

	// Size is the blob size in bytes as reported by the provider.
	Size int64

	// FetchedAt is when the content was retrieved.
	FetchedAt time.Time

	// SourceURL is a human-facing URL for the file (web view).
	SourceURL string
}
