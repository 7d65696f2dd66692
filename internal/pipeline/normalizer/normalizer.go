// Package normalizer cleans fetched documentation text ahead of
// chunking. Cleaning is structure-aware: fenced code blocks and
// pipe-delimited tables survive byte-identical aside from trailing
// whitespace, because those are the two structures a naive whitespace
// pass corrupts first. Files judged low-value (test fixtures,
// templated placeholder stubs) are dropped from the batch entirely.
package normalizer

import (
	"regexp"
	"strings"

	"github.com/GaureshArt/docsy/internal/core/domain"
	"github.com/GaureshArt/docsy/internal/core/ports/driven"
	"github.com/GaureshArt/docsy/internal/logger"
)

// Ensure Normalizer implements the interface.
var _ driven.Normalizer = (*Normalizer)(nil)

// DefaultPlaceholderThreshold is how many distinct placeholder
// patterns must match before a file is treated as a stub. A single
// match is coincidental; two distinct phrases rarely are.
const DefaultPlaceholderThreshold = 2

// defaultLowValueSegments mark files the pipeline should not spend
// embedding budget on.
var defaultLowValueSegments = []string{"test", "tests", "__tests__", "fixture", "fixtures", "mock", "mocks"}

// defaultPlaceholderPatterns detect templated stub documents.
var defaultPlaceholderPatterns = []string{
	"lorem ipsum",
	"coming soon",
	"under construction",
	"to be documented",
	"to be determined",
	"work in progress",
	"this page is a placeholder",
}

var (
	zeroWidth   = strings.NewReplacer("\u200b", "", "\u200c", "", "\u200d", "", "\ufeff", "")
	inlineImage = regexp.MustCompile(`!\[[^\]]*\]\([^)]*\)`)
	lineBreakup = regexp.MustCompile(`(?i)<br\s*/?>`)
	// Four or more consecutive blank lines collapse to exactly one.
	blankRun  = regexp.MustCompile(`\n{5,}`)
	fenceLine = regexp.MustCompile("^\\s*(```|~~~)")
	tableRow  = regexp.MustCompile(`^\s*\|.*\|\s*$`)
	headLine  = regexp.MustCompile(`^#{1,6}(\s|$)`)
	spaceRun  = regexp.MustCompile(` {3,}`)
)

// lineMode is the tri-state classification the line pass transitions
// through. Modes are mutually exclusive.
type lineMode int

const (
	modePlain lineMode = iota
	modeCode
	modeTable
)

// Normalizer cleans raw files and drops low-value ones.
type Normalizer struct {
	lowValueSegments     map[string]struct{}
	placeholderPatterns  []string
	placeholderThreshold int
}

// Option configures the normalizer.
type Option func(*Normalizer)

// WithPlaceholderThreshold sets how many distinct placeholder patterns
// must match before a file is dropped.
func WithPlaceholderThreshold(n int) Option {
	return func(nz *Normalizer) {
		if n > 0 {
			nz.placeholderThreshold = n
		}
	}
}

// WithPlaceholderPatterns replaces the placeholder pattern set.
// Patterns are matched case-insensitively as substrings.
func WithPlaceholderPatterns(patterns []string) Option {
	return func(nz *Normalizer) {
		if len(patterns) > 0 {
			nz.placeholderPatterns = patterns
		}
	}
}

// WithLowValueSegments replaces the low-value path segment set.
func WithLowValueSegments(segments []string) Option {
	return func(nz *Normalizer) {
		if len(segments) > 0 {
			set := make(map[string]struct{}, len(segments))
			for _, seg := range segments {
				set[strings.ToLower(seg)] = struct{}{}
			}
			nz.lowValueSegments = set
		}
	}
}

// New creates a normalizer with the given options.
func New(opts ...Option) *Normalizer {
	nz := &Normalizer{
		lowValueSegments:     make(map[string]struct{}, len(defaultLowValueSegments)),
		placeholderPatterns:  defaultPlaceholderPatterns,
		placeholderThreshold: DefaultPlaceholderThreshold,
	}
	for _, seg := range defaultLowValueSegments {
		nz.lowValueSegments[seg] = struct{}{}
	}
	for _, opt := range opts {
		opt(nz)
	}
	return nz
}

// Normalize cleans the surviving files' content in place on copies.
// Identity fields (Path, ObjectID, Size, FetchedAt, SourceURL) pass
// through unchanged. Exclusions are deterministic filtering, not
// failures.
func (nz *Normalizer) Normalize(files []domain.RawFile) []domain.RawFile {
	out := make([]domain.RawFile, 0, len(files))
	for _, file := range files {
		if nz.isLowValuePath(file.Path) {
			logger.Debug("Excluding low-value path: %s", file.Path)
			continue
		}
		if nz.isPlaceholder(file.Content) {
			logger.Debug("Excluding placeholder content: %s", file.Path)
			continue
		}
		cleaned := file
		cleaned.Content = nz.Clean(file.Content)
		out = append(out, cleaned)
	}
	return out
}

// isLowValuePath reports whether any path segment is in the low-value set.
func (nz *Normalizer) isLowValuePath(path string) bool {
	for _, seg := range strings.Split(strings.ToLower(path), "/") {
		if _, ok := nz.lowValueSegments[seg]; ok {
			return true
		}
	}
	return false
}

// isPlaceholder reports whether the content hits at least the
// threshold of distinct placeholder patterns.
func (nz *Normalizer) isPlaceholder(content string) bool {
	lower := strings.ToLower(content)
	hits := 0
	for _, pattern := range nz.placeholderPatterns {
		if strings.Contains(lower, pattern) {
			hits++
			if hits >= nz.placeholderThreshold {
				return true
			}
		}
	}
	return false
}

// Clean applies the global pass then the structure-aware line pass.
func (nz *Normalizer) Clean(content string) string {
	content = globalPass(content)
	content = linePass(content)
	return strings.TrimRight(content, " \t\n")
}

// globalPass normalises line endings, strips zero-width characters and
// markup noise, and collapses long blank-line runs.
func globalPass(content string) string {
	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")
	content = zeroWidth.Replace(content)
	content = inlineImage.ReplaceAllString(content, "")
	content = lineBreakup.ReplaceAllString(content, "")
	content = blankRun.ReplaceAllString(content, "\n\n")
	return content
}

// linePass walks the content line by line through the tri-state mode
// machine. Code block interiors pass through untouched, fence and
// table lines only lose trailing whitespace, headings keep their
// markers, and everything else gets interior space runs collapsed.
func linePass(content string) string {
	lines := strings.Split(content, "\n")
	out := make([]string, len(lines))
	mode := modePlain

	for i, line := range lines {
		switch mode {
		case modeCode:
			if fenceLine.MatchString(line) {
				mode = modePlain
				out[i] = strings.TrimRight(line, " \t")
			} else {
				out[i] = line
			}

		case modeTable:
			if tableRow.MatchString(line) {
				out[i] = strings.TrimRight(line, " \t")
				continue
			}
			// First non-table line exits table mode and is
			// classified afresh.
			out[i], mode = plainLine(line)

		default:
			out[i], mode = plainLine(line)
		}
	}

	return strings.Join(out, "\n")
}

// plainLine processes one line in plain mode and returns the cleaned
// line plus the mode for the next line.
func plainLine(line string) (string, lineMode) {
	switch {
	case fenceLine.MatchString(line):
		return strings.TrimRight(line, " \t"), modeCode
	case tableRow.MatchString(line):
		return strings.TrimRight(line, " \t"), modeTable
	case headLine.MatchString(line):
		return strings.TrimRight(line, " \t"), modePlain
	default:
		return collapseInterior(line), modePlain
	}
}

// collapseInterior squeezes runs of 3+ spaces to one, preserving
// leading indentation, and trims trailing whitespace.
func collapseInterior(line string) string {
	trimmed := strings.TrimLeft(line, " \t")
	indent := line[:len(line)-len(trimmed)]
	trimmed = spaceRun.ReplaceAllString(trimmed, " ")
	return strings.TrimRight(indent+trimmed, " \t")
}
