// Package chunker splits normalised documents into bounded,
// overlapping windows for embedding.
//
// Splitting is separator-recursive: each window tries to end on the
// coarsest structural boundary available inside it (code fence, then
// headings, then paragraph breaks, down to a raw character cut as
// last resort). Fences are the most preferred split point so code
// blocks are not broken mid-fence, and headings cut before the marker
// so they stay attached to the content they introduce.
//
// Chunk IDs are a pure function of (path, content object ID, ordinal):
// re-running the pipeline over unchanged content yields identical IDs,
// which any future incremental indexing depends on.
package chunker

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/GaureshArt/docsy/internal/core/domain"
	"github.com/GaureshArt/docsy/internal/core/ports/driven"
)

// Ensure Chunker implements the interface.
var _ driven.Chunker = (*Chunker)(nil)

// DefaultChunkSize is the target window size in characters.
const DefaultChunkSize = 1000

// DefaultOverlap is the trailing/leading context shared by adjacent
// windows, in characters.
const DefaultOverlap = 200

// objectIDPrefixLen is how much of the content object ID goes into a
// chunk ID.
const objectIDPrefixLen = 8

// separator is one structural boundary the splitter can cut on.
// cut is how many bytes of the matched token stay with the left
// window; headings and fences keep only the newline so the marker
// opens the next window.
type separator struct {
	token string
	cut   int
}

// separators in precedence order, coarse to fine. A raw character cut
// is the implicit last resort.
var separators = []separator{
	{token: "\n```", cut: 1},
	{token: "\n## ", cut: 1},
	{token: "\n### ", cut: 1},
	{token: "\n#### ", cut: 1},
	{token: "\n\n", cut: 2},
	{token: "\n", cut: 1},
	{token: ". ", cut: 2},
	{token: " ", cut: 1},
}

// Chunker splits files into linked chunk sequences.
type Chunker struct {
	chunkSize int
	overlap   int
}

// Option configures the chunker.
type Option func(*Chunker)

// WithChunkSize sets the target window size in characters.
func WithChunkSize(size int) Option {
	return func(c *Chunker) {
		if size > 0 {
			c.chunkSize = size
		}
	}
}

// WithOverlap sets the overlap between adjacent windows in characters.
func WithOverlap(overlap int) Option {
	return func(c *Chunker) {
		if overlap >= 0 {
			c.overlap = overlap
		}
	}
}

// New creates a chunker with the given options.
func New(opts ...Option) *Chunker {
	c := &Chunker{
		chunkSize: DefaultChunkSize,
		overlap:   DefaultOverlap,
	}
	for _, opt := range opts {
		opt(c)
	}

	// Overlap must leave room to advance.
	if c.overlap >= c.chunkSize {
		c.overlap = c.chunkSize / 4
	}

	return c
}

// Chunk splits every file independently and concatenates the results,
// file order preserved from the input, split order within each file.
func (c *Chunker) Chunk(files []domain.RawFile) []domain.Chunk {
	var all []domain.Chunk
	for _, file := range files {
		all = append(all, c.chunkFile(file)...)
	}
	return all
}

// chunkFile windows one file's content and links the siblings.
func (c *Chunker) chunkFile(file domain.RawFile) []domain.Chunk {
	if file.Content == "" {
		return nil
	}

	windows := c.split(file.Content)

	chunks := make([]domain.Chunk, len(windows))
	for i, window := range windows {
		chunks[i] = domain.Chunk{
			ID:      ChunkID(file.Path, file.ObjectID, i),
			Content: window,
			Metadata: domain.ChunkMetadata{
				FilePath:           file.Path,
				FileObjectID:       file.ObjectID,
				ChunkIndex:         i,
				TotalChunksForFile: len(windows),
			},
		}
	}

	for i := range chunks {
		if i > 0 {
			chunks[i].Metadata.PreviousChunkID = chunks[i-1].ID
		}
		if i < len(chunks)-1 {
			chunks[i].Metadata.NextChunkID = chunks[i+1].ID
		}
	}

	return chunks
}

// split windows the content. Every window is an exact slice of the
// input cut on rune boundaries; each window after the first starts at
// the rune boundary at or before overlap bytes behind its
// predecessor's end, so the original content reconstructs losslessly
// from the sequence.
func (c *Chunker) split(content string) []string {
	if len(content) <= c.chunkSize {
		return []string{content}
	}

	var windows []string
	start := 0
	for {
		limit := start + c.chunkSize
		if limit >= len(content) {
			windows = append(windows, content[start:])
			return windows
		}

		end := c.findCut(content, start, limit)
		if end >= len(content) {
			windows = append(windows, content[start:])
			return windows
		}
		windows = append(windows, content[start:end])

		next := runeFloor(content, end-c.overlap)
		if next <= start {
			// Degenerate size/overlap over wide runes: drop the
			// overlap rather than stall.
			next = end
		}
		start = next
	}
}

// findCut picks the window end: the last occurrence of the coarsest
// separator inside [start, limit) that still advances past the
// overlap region. Falls back to a raw cut at the limit, pushed
// forward to the next rune boundary so no rune is split.
func (c *Chunker) findCut(content string, start, limit int) int {
	window := content[start:limit]
	for _, sep := range separators {
		idx := strings.LastIndex(window, sep.token)
		if idx < 0 {
			continue
		}
		end := start + idx + sep.cut
		if end > start+c.overlap {
			return end
		}
	}

	end := limit
	for end < len(content) && !utf8.RuneStart(content[end]) {
		end++
	}
	return end
}

// runeFloor backs pos off to the nearest rune boundary at or before
// it.
func runeFloor(s string, pos int) int {
	for pos > 0 && !utf8.RuneStart(s[pos]) {
		pos--
	}
	return pos
}

// ChunkID derives a deterministic chunk identifier from the file path,
// the file's content object ID and the chunk's ordinal. Non path-safe
// characters are replaced so the ID is filesystem-safe.
func ChunkID(path, objectID string, index int) string {
	if len(objectID) > objectIDPrefixLen {
		objectID = objectID[:objectIDPrefixLen]
	}
	return fmt.Sprintf("%s-%s-%d", sanitizePath(path), objectID, index)
}

// sanitizePath replaces every character outside [A-Za-z0-9/-] with a
// dash.
func sanitizePath(path string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '/', r == '-':
			return r
		default:
			return '-'
		}
	}, path)
}
