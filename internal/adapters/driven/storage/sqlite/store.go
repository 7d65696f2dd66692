package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/GaureshArt/docsy/internal/core/domain"
	"github.com/GaureshArt/docsy/internal/core/ports/driven"
)

// Ensure Store implements the interface.
var _ driven.ChunkStore = (*Store)(nil)

const schema = `
CREATE TABLE IF NOT EXISTS files (
	path        TEXT PRIMARY KEY,
	object_id   TEXT NOT NULL,
	source_url  TEXT NOT NULL DEFAULT '',
	size        INTEGER NOT NULL DEFAULT 0,
	fetched_at  DATETIME NOT NULL
);

CREATE TABLE IF NOT EXISTS chunks (
	id              TEXT PRIMARY KEY,
	file_path       TEXT NOT NULL REFERENCES files(path) ON DELETE CASCADE,
	file_object_id  TEXT NOT NULL,
	chunk_index     INTEGER NOT NULL,
	total_chunks    INTEGER NOT NULL,
	prev_id         TEXT,
	next_id         TEXT,
	content         TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_chunks_file_path ON chunks(file_path, chunk_index);
`

// Store is a SQLite-based implementation of driven.ChunkStore.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore creates a chunk store at the given data directory.
// If dataDir is empty, defaults to ~/.docsy/data/chunks.db.
func NewStore(dataDir string) (*Store, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".docsy", "data")
	}

	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "chunks.db")

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling foreign keys: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &Store{db: db, path: dbPath}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// SaveBatch stores the files and their chunks in one transaction,
// replacing previous chunks for the same file paths.
func (s *Store) SaveBatch(ctx context.Context, files []domain.RawFile, chunks []domain.Chunk) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, file := range files {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO files (path, object_id, source_url, size, fetched_at)
			VALUES (?, ?, ?, ?, ?)
			ON CONFLICT(path) DO UPDATE SET
				object_id = excluded.object_id,
				source_url = excluded.source_url,
				size = excluded.size,
				fetched_at = excluded.fetched_at`,
			file.Path, file.ObjectID, file.SourceURL, file.Size, file.FetchedAt,
		); err != nil {
			return fmt.Errorf("save file %s: %w", file.Path, err)
		}

		if _, err := tx.ExecContext(ctx,
			"DELETE FROM chunks WHERE file_path = ?", file.Path,
		); err != nil {
			return fmt.Errorf("clear chunks for %s: %w", file.Path, err)
		}
	}

	for _, chunk := range chunks {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO chunks (id, file_path, file_object_id, chunk_index,
				total_chunks, prev_id, next_id, content)
			VALUES (?, ?, ?, ?, ?, NULLIF(?, ''), NULLIF(?, ''), ?)`,
			chunk.ID,
			chunk.Metadata.FilePath,
			chunk.Metadata.FileObjectID,
			chunk.Metadata.ChunkIndex,
			chunk.Metadata.TotalChunksForFile,
			chunk.Metadata.PreviousChunkID,
			chunk.Metadata.NextChunkID,
			chunk.Content,
		); err != nil {
			return fmt.Errorf("save chunk %s: %w", chunk.ID, err)
		}
	}

	return tx.Commit()
}

// ChunksForFile returns the stored chunks for a path in index order.
func (s *Store) ChunksForFile(ctx context.Context, path string) ([]domain.Chunk, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, file_path, file_object_id, chunk_index, total_chunks,
			COALESCE(prev_id, ''), COALESCE(next_id, ''), content
		FROM chunks
		WHERE file_path = ?
		ORDER BY chunk_index`, path)
	if err != nil {
		return nil, fmt.Errorf("query chunks: %w", err)
	}
	defer rows.Close()

	var chunks []domain.Chunk
	for rows.Next() {
		var c domain.Chunk
		if err := rows.Scan(
			&c.ID,
			&c.Metadata.FilePath,
			&c.Metadata.FileObjectID,
			&c.Metadata.ChunkIndex,
			&c.Metadata.TotalChunksForFile,
			&c.Metadata.PreviousChunkID,
			&c.Metadata.NextChunkID,
			&c.Content,
		); err != nil {
			return nil, fmt.Errorf("scan chunk: %w", err)
		}
		chunks = append(chunks, c)
	}
	return chunks, rows.Err()
}

// Count returns the total number of stored chunks.
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	row := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM chunks")
	if err := row.Scan(&n); err != nil {
		return 0, fmt.Errorf("count chunks: %w", err)
	}
	return n, nil
}
