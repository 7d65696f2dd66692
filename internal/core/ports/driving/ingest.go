package driving

import (
	"context"
	"time"

	"github.com/GaureshArt/docsy/internal/core/domain"
)

// Ingestor runs the ingestion pipeline for a repository reference.
type Ingestor interface {
	// Ingest lists, selects, ranks, fetches, normalises, chunks and
	// stores a repository's documentation. It aborts only for an
	// invalid repository reference or a total transport failure;
	// per-file problems are reported in the Report instead.
	Ingest(ctx context.Context, ref domain.RepoRef) (*Report, error)
}

// Report summarises one ingestion run, including the non-fatal
// notices (capacity truncation, per-file fetch failures) the run
// accumulated.
type Report struct {
	// RunID uniquely identifies this run.
	RunID string

	// Ref is the ingested repository reference.
	Ref domain.RepoRef

	// TreeEntries is the size of the raw tree listing.
	TreeEntries int

	// Candidates survived the selector.
	Candidates int

	// Ranked survived scoring and the processing budget.
	Ranked int

	// TruncatedByLimit is how many ranked candidates were dropped by
	// the capacity limit. Informational, not an error.
	TruncatedByLimit int

	// Fetched is how many files were retrieved successfully.
	Fetched int

	// FetchFailures lists per-file fetch errors. The run continued
	// past every one of them.
	FetchFailures []string

	// Normalized survived low-value/placeholder exclusion.
	Normalized int

	// Chunks is the final chunk count handed to the store.
	Chunks int

	// Duration is the wall-clock time of the run.
	Duration time.Duration
}
