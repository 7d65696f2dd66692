package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GaureshArt/docsy/internal/core/domain"
	"github.com/GaureshArt/docsy/internal/core/ports/driven"
	"github.com/GaureshArt/docsy/internal/pipeline/chunker"
	"github.com/GaureshArt/docsy/internal/pipeline/normalizer"
	"github.com/GaureshArt/docsy/internal/pipeline/ranker"
	"github.com/GaureshArt/docsy/internal/pipeline/selector"
)

// stubTransport serves a fixed tree and content map.
type stubTransport struct {
	tree     []domain.TreeEntry
	content  map[string]string
	failPath string
	treeErr  error
}

func (s *stubTransport) Validate(context.Context) error { return nil }

func (s *stubTransport) ListTree(context.Context, domain.RepoRef) ([]domain.TreeEntry, error) {
	if s.treeErr != nil {
		return nil, s.treeErr
	}
	return s.tree, nil
}

func (s *stubTransport) FetchFiles(
	_ context.Context, _ domain.RepoRef, entries []domain.TreeEntry,
) ([]domain.RawFile, []error) {
	var files []domain.RawFile
	var errs []error
	for _, entry := range entries {
		if entry.Path == s.failPath {
			errs = append(errs, errors.New("fetch "+entry.Path+": boom"))
			continue
		}
		files = append(files, domain.RawFile{
			Path:     entry.Path,
			Content:  s.content[entry.Path],
			ObjectID: entry.ObjectID,
			Size:     entry.Size,
		})
	}
	return files, errs
}

func (s *stubTransport) Close() error { return nil }

// memStore records the last saved batch.
type memStore struct {
	files  []domain.RawFile
	chunks []domain.Chunk
}

func (m *memStore) SaveBatch(_ context.Context, files []domain.RawFile, chunks []domain.Chunk) error {
	m.files = files
	m.chunks = chunks
	return nil
}

func (m *memStore) ChunksForFile(_ context.Context, path string) ([]domain.Chunk, error) {
	var out []domain.Chunk
	for _, c := range m.chunks {
		if c.Metadata.FilePath == path {
			out = append(out, c)
		}
	}
	return out, nil
}

func (m *memStore) Count(context.Context) (int, error) { return len(m.chunks), nil }
func (m *memStore) Close() error                       { return nil }

func blobEntry(path string, size int64) domain.TreeEntry {
	return domain.TreeEntry{Path: path, Kind: domain.KindBlob, Size: size, ObjectID: "0123456789abcdef"}
}

func newService(t *stubTransport, store driven.ChunkStore) *IngestService {
	return NewIngestService(t, selector.New(), ranker.New(), normalizer.New(), chunker.New(), store)
}

func TestIngest_EndToEnd(t *testing.T) {
	transport := &stubTransport{
		tree: []domain.TreeEntry{
			blobEntry("README.md", 500),
			{Path: "docs", Kind: domain.KindTree},
			blobEntry("docs/guide/setup.md", 2048),
			blobEntry("test/fixture.md", 1024),
			blobEntry("node_modules/pkg/readme.md", 1024),
			blobEntry("main.go", 900),
		},
		content: map[string]string{
			"README.md":           "# Project\n\nAn overview of the project.",
			"docs/guide/setup.md": "# Setup\n\nInstall steps here.",
			"test/fixture.md":     "# Fixture",
		},
	}
	store := &memStore{}
	svc := newService(transport, store)

	report, err := svc.Ingest(context.Background(), domain.RepoRef{Owner: "o", Name: "r"})
	require.NoError(t, err)

	assert.NotEmpty(t, report.RunID)
	assert.Equal(t, 6, report.TreeEntries)
	// main.go and the tree entry fail selection; node_modules survives
	// selection but is hard-excluded by the ranker.
	assert.Equal(t, 4, report.Candidates)
	assert.Equal(t, 3, report.Ranked)
	assert.Zero(t, report.TruncatedByLimit)
	assert.Equal(t, 3, report.Fetched)
	assert.Empty(t, report.FetchFailures)
	// The normaliser drops the test fixture as a low-value path.
	assert.Equal(t, 2, report.Normalized)
	assert.Equal(t, 2, report.Chunks)

	chunks, err := store.ChunksForFile(context.Background(), "README.md")
	require.NoError(t, err)
	require.Len(t, chunks, 1)
	assert.Equal(t, "README-md-01234567-0", chunks[0].ID)
}

func TestIngest_TreeErrorIsFatal(t *testing.T) {
	transport := &stubTransport{treeErr: domain.ErrRefNotFound}
	svc := newService(transport, &memStore{})

	_, err := svc.Ingest(context.Background(), domain.RepoRef{Owner: "o", Name: "missing"})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrRefNotFound)
}

func TestIngest_PerFileFailureContinues(t *testing.T) {
	transport := &stubTransport{
		tree: []domain.TreeEntry{
			blobEntry("README.md", 500),
			blobEntry("docs/a.md", 500),
		},
		content: map[string]string{
			"README.md": "# Project\n\nContent.",
		},
		failPath: "docs/a.md",
	}
	store := &memStore{}
	svc := newService(transport, store)

	report, err := svc.Ingest(context.Background(), domain.RepoRef{Owner: "o", Name: "r"})
	require.NoError(t, err)

	assert.Equal(t, 1, report.Fetched)
	require.Len(t, report.FetchFailures, 1)
	assert.Contains(t, report.FetchFailures[0], "docs/a.md")
	assert.Equal(t, 1, report.Chunks)
}

func TestIngest_NilStoreIsDryRun(t *testing.T) {
	transport := &stubTransport{
		tree:    []domain.TreeEntry{blobEntry("README.md", 500)},
		content: map[string]string{"README.md": "# Project\n\nContent."},
	}
	svc := newService(transport, nil)

	report, err := svc.Ingest(context.Background(), domain.RepoRef{Owner: "o", Name: "r"})
	require.NoError(t, err)
	assert.Equal(t, 1, report.Chunks)
}
