// Package selector filters a raw repository tree listing down to the
// documentation files worth indexing. It is a pure filter: malformed
// entries are silently dropped, order is preserved, and nothing is
// mutated.
package selector

import (
	"strings"

	"github.com/GaureshArt/docsy/internal/core/domain"
	"github.com/GaureshArt/docsy/internal/core/ports/driven"
)

// Ensure Selector implements the interface.
var _ driven.Selector = (*Selector)(nil)

// DefaultMaxFileSize is the largest blob considered indexable, in bytes.
const DefaultMaxFileSize = 1_000_000

// defaultExtensions are the recognised documentation file extensions.
var defaultExtensions = []string{".md", ".mdx"}

// Selector filters tree entries by blob type, size and extension.
type Selector struct {
	maxFileSize int64
	extensions  []string
}

// Option configures the selector.
type Option func(*Selector)

// WithMaxFileSize sets the maximum candidate size in bytes.
func WithMaxFileSize(size int64) Option {
	return func(s *Selector) {
		if size > 0 {
			s.maxFileSize = size
		}
	}
}

// WithExtensions sets the recognised documentation extensions.
// Extensions are matched case-insensitively and must include the dot.
func WithExtensions(exts []string) Option {
	return func(s *Selector) {
		if len(exts) > 0 {
			s.extensions = exts
		}
	}
}

// New creates a selector with the given options.
func New(opts ...Option) *Selector {
	s := &Selector{
		maxFileSize: DefaultMaxFileSize,
		extensions:  defaultExtensions,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Select returns the entries eligible for importance ranking:
// blobs with a known non-zero size no larger than the limit and a
// recognised documentation extension. Input order is preserved.
func (s *Selector) Select(tree []domain.TreeEntry) []domain.TreeEntry {
	candidates := make([]domain.TreeEntry, 0, len(tree))
	for _, entry := range tree {
		if entry.Kind != domain.KindBlob {
			continue
		}
		if entry.Size <= 0 || entry.Size > s.maxFileSize {
			continue
		}
		if !s.hasDocExtension(entry.Path) {
			continue
		}
		candidates = append(candidates, entry)
	}
	return candidates
}

// hasDocExtension reports whether the lowercased path ends in a
// recognised documentation extension.
func (s *Selector) hasDocExtension(path string) bool {
	lower := strings.ToLower(path)
	for _, ext := range s.extensions {
		if strings.HasSuffix(lower, strings.ToLower(ext)) {
			return true
		}
	}
	return false
}
