package github

import (
	"context"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/GaureshArt/docsy/internal/core/domain"
	"github.com/GaureshArt/docsy/internal/core/ports/driven"
	"github.com/GaureshArt/docsy/internal/logger"
)

// Ensure Transport implements the interface.
var _ driven.Transport = (*Transport)(nil)

// DefaultFetchConcurrency bounds parallel blob fetches per batch.
const DefaultFetchConcurrency = 8

// Transport fetches repository trees and file content from GitHub.
type Transport struct {
	client      *Client
	concurrency int
	mu          sync.Mutex
	closed      bool
}

// Option configures the transport.
type Option func(*Transport)

// WithConcurrency sets the parallel blob fetch limit.
func WithConcurrency(n int) Option {
	return func(t *Transport) {
		if n > 0 {
			t.concurrency = n
		}
	}
}

// WithClient replaces the API client, e.g. with one pointed at a test
// server.
func WithClient(client *Client) Option {
	return func(t *Transport) {
		t.client = client
	}
}

// New creates a GitHub transport. An empty token means anonymous
// access to public repositories.
func New(ctx context.Context, token string, opts ...Option) *Transport {
	t := &Transport{
		client:      NewClient(ctx, token),
		concurrency: DefaultFetchConcurrency,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Validate checks connectivity and credentials with a cheap API call.
func (t *Transport) Validate(ctx context.Context) error {
	if err := t.client.ValidateCredentials(ctx); err != nil {
		if IsUnauthorized(err) {
			return fmt.Errorf("%w: %w", domain.ErrAuthInvalid, err)
		}
		return err
	}
	return nil
}

// ListTree resolves the ref and returns the repository's recursive
// file listing. A missing repository or ref is fatal to the run.
func (t *Transport) ListTree(ctx context.Context, ref domain.RepoRef) ([]domain.TreeEntry, error) {
	branch := ref.Ref
	if branch == "" {
		repo, err := t.client.GetRepository(ctx, ref.Owner, ref.Name)
		if err != nil {
			if IsNotFound(err) {
				return nil, fmt.Errorf("%w: repository %s/%s: %w", domain.ErrRefNotFound, ref.Owner, ref.Name, err)
			}
			return nil, fmt.Errorf("resolve default branch for %s: %w", ref, err)
		}
		branch = repo.GetDefaultBranch()
	}

	tree, err := t.client.GetTree(ctx, ref.Owner, ref.Name, branch)
	if err != nil {
		if IsNotFound(err) {
			return nil, fmt.Errorf("%w: %s/%s@%s: %w", domain.ErrRefNotFound, ref.Owner, ref.Name, branch, err)
		}
		return nil, fmt.Errorf("list tree %s@%s: %w", ref, branch, err)
	}

	entries := make([]domain.TreeEntry, 0, len(tree.Entries))
	for _, e := range tree.Entries {
		entries = append(entries, domain.TreeEntry{
			Path:     e.GetPath(),
			Kind:     entryKind(e.GetType()),
			Size:     int64(e.GetSize()),
			ObjectID: e.GetSHA(),
		})
	}

	logger.Debug("Tree %s@%s: %d entries", ref, branch, len(entries))
	return entries, nil
}

// FetchFiles retrieves decoded text for the entries, at most
// concurrency at a time. A failed file is omitted and its error
// collected; the batch never aborts for one bad file.
func (t *Transport) FetchFiles(
	ctx context.Context, ref domain.RepoRef, entries []domain.TreeEntry,
) ([]domain.RawFile, []error) {
	results := make([]*domain.RawFile, len(entries))
	failures := make([]error, len(entries))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(t.concurrency)

	for i, entry := range entries {
		g.Go(func() error {
			file, err := t.fetchOne(gctx, ref, entry)
			if err != nil {
				logger.Warn("Skipping %s: %v", entry.Path, err)
				failures[i] = fmt.Errorf("fetch %s: %w", entry.Path, err)
				return nil
			}
			results[i] = file
			return nil
		})
	}
	_ = g.Wait() // workers report failures via the slice, never an error

	files := make([]domain.RawFile, 0, len(entries))
	for _, f := range results {
		if f != nil {
			files = append(files, *f)
		}
	}
	errs := make([]error, 0)
	for _, err := range failures {
		if err != nil {
			errs = append(errs, err)
		}
	}
	return files, errs
}

// fetchOne retrieves and decodes a single blob.
func (t *Transport) fetchOne(
	ctx context.Context, ref domain.RepoRef, entry domain.TreeEntry,
) (*domain.RawFile, error) {
	blob, err := t.client.GetBlob(ctx, ref.Owner, ref.Name, entry.ObjectID)
	if err != nil {
		return nil, err
	}

	content, err := decodeBlob(blob.GetContent(), blob.GetEncoding())
	if err != nil {
		return nil, err
	}
	if !isText(content) {
		return nil, domain.ErrNotText
	}

	return &domain.RawFile{
		Path:      entry.Path,
		Content:   string(content),
		ObjectID:  entry.ObjectID,
		Size:      entry.Size,
		FetchedAt: time.Now().UTC(),
		SourceURL: WebURL(ref, entry.Path),
	}, nil
}

// Close releases resources.
func (t *Transport) Close() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.closed = true
	return nil
}

// entryKind maps the provider's type string to the domain kind.
func entryKind(s string) domain.EntryKind {
	switch s {
	case "blob":
		return domain.KindBlob
	case "tree":
		return domain.KindTree
	default:
		return domain.KindOther
	}
}
