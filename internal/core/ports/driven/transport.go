package driven

import (
	"context"

	"github.com/GaureshArt/docsy/internal/core/domain"
)

// Transport fetches a repository's file listing and raw file content
// from a hosted source-control provider. It is the only stage of the
// pipeline that performs network I/O.
type Transport interface {
	// Validate checks the transport is configured and authenticated.
	// For API transports this makes a lightweight test call.
	Validate(ctx context.Context) error

	// ListTree resolves the ref and returns the repository's flat,
	// recursive file listing. A malformed or unreachable ref is fatal:
	// the returned error identifies the repository/ref and cause.
	ListTree(ctx context.Context, ref domain.RepoRef) ([]domain.TreeEntry, error)

	// FetchFiles retrieves decoded text for the given entries.
	// Individual failures do not abort the batch: the failed file is
	// omitted and its error reported in the second return value.
	// Output order follows input order for the files that succeeded.
	FetchFiles(ctx context.Context, ref domain.RepoRef, entries []domain.TreeEntry) ([]domain.RawFile, []error)

	// Close releases resources.
	Close() error
}
