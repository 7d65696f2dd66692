package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/GaureshArt/docsy/internal/core/domain"
	"github.com/GaureshArt/docsy/internal/core/ports/driven"
	"github.com/GaureshArt/docsy/internal/core/ports/driving"
	"github.com/GaureshArt/docsy/internal/logger"
)

// Ensure IngestService implements the interface.
var _ driving.Ingestor = (*IngestService)(nil)

// IngestService runs the ingestion pipeline: select, rank, fetch,
// normalise, chunk, store. Every stage is a pure transformation over
// its input; the transport is the only stage doing I/O.
type IngestService struct {
	transport  driven.Transport
	selector   driven.Selector
	ranker     driven.Ranker
	normalizer driven.Normalizer
	chunker    driven.Chunker
	store      driven.ChunkStore
}

// NewIngestService creates an ingest service. The store may be nil,
// in which case chunks are produced but not persisted (dry runs).
func NewIngestService(
	transport driven.Transport,
	selector driven.Selector,
	ranker driven.Ranker,
	normalizer driven.Normalizer,
	chunker driven.Chunker,
	store driven.ChunkStore,
) *IngestService {
	return &IngestService{
		transport:  transport,
		selector:   selector,
		ranker:     ranker,
		normalizer: normalizer,
		chunker:    chunker,
		store:      store,
	}
}

// Ingest runs the full pipeline for one repository reference.
//
// The run aborts only for an invalid reference or a total transport
// failure. Per-file fetch failures, capacity truncation and
// normaliser exclusions are recorded in the report and the run
// continues.
func (s *IngestService) Ingest(ctx context.Context, ref domain.RepoRef) (*driving.Report, error) {
	started := time.Now()
	report := &driving.Report{
		RunID: uuid.New().String(),
		Ref:   ref,
	}

	logger.Section("Ingest " + ref.String())

	tree, err := s.transport.ListTree(ctx, ref)
	if err != nil {
		return nil, fmt.Errorf("list tree: %w", err)
	}
	report.TreeEntries = len(tree)

	candidates := s.selector.Select(tree)
	report.Candidates = len(candidates)
	logger.Debug("Selected %d of %d tree entries", len(candidates), len(tree))

	ranked, dropped := s.ranker.Rank(candidates)
	report.Ranked = len(ranked)
	report.TruncatedByLimit = dropped
	if dropped > 0 {
		logger.Info("Processing limit reached: %d candidates dropped by priority", dropped)
	}

	files, fetchErrs := s.transport.FetchFiles(ctx, ref, ranked)
	report.Fetched = len(files)
	for _, ferr := range fetchErrs {
		report.FetchFailures = append(report.FetchFailures, ferr.Error())
	}
	if len(fetchErrs) > 0 {
		logger.Warn("%d file(s) omitted due to fetch failures", len(fetchErrs))
	}

	normalized := s.normalizer.Normalize(files)
	report.Normalized = len(normalized)
	logger.Debug("Normalised %d of %d fetched files", len(normalized), len(files))

	chunks := s.chunker.Chunk(normalized)
	report.Chunks = len(chunks)

	if s.store != nil {
		if err := s.store.SaveBatch(ctx, normalized, chunks); err != nil {
			return nil, fmt.Errorf("save chunks: %w", err)
		}
	}

	report.Duration = time.Since(started)
	logger.Info("Ingest complete: %d chunks from %d files in %s", report.Chunks, report.Normalized, report.Duration)
	return report, nil
}
