// Package ranker scores documentation candidates by importance.
//
// Scoring is data-driven: an ordered table of (weight, predicate)
// rules is evaluated additively against each path, so a single file
// can benefit from several heuristics at once. A hard-exclude check
// short-circuits scoring entirely, a low-signal penalty deprioritises
// auxiliary content, and a depth penalty flattens deeply buried files.
// Output order is deterministic: descending score, ties broken by
// ascending path.
package ranker

import (
	"sort"
	"strings"

	"github.com/GaureshArt/docsy/internal/core/domain"
	"github.com/GaureshArt/docsy/internal/core/ports/driven"
)

// Ensure Ranker implements the interface.
var _ driven.Ranker = (*Ranker)(nil)

const (
	// DefaultMaxFiles is the processing budget after ranking.
	DefaultMaxFiles = 150

	// HardExcludeScore forces exclusion regardless of positive signals.
	HardExcludeScore = -1000

	// LowSignalPenalty deprioritises test/fixture/CI content.
	// Applied at most once per path; on its own it never crosses the
	// hard-exclude floor, so matching files are kept but ranked low.
	LowSignalPenalty = -500

	// DepthPenaltyPerSegment is subtracted per path segment.
	DepthPenaltyPerSegment = 5
)

// defaultHardExcludes force a path out of the ranked output entirely.
var defaultHardExcludes = []string{"node_modules", "vendor", "dist", "build"}

// defaultLowSignal marks auxiliary directories that are deprioritised
// but not excluded.
var defaultLowSignal = []string{"test", "tests", "__tests__", "fixtures", "mocks", ".github", ".circleci"}

// Ranker scores and orders documentation candidates.
type Ranker struct {
	rules        []Rule
	hardExcludes map[string]struct{}
	lowSignal    map[string]struct{}
	maxFiles     int
}

// Option configures the ranker.
type Option func(*Ranker)

// WithMaxFiles sets the processing budget after ranking.
func WithMaxFiles(n int) Option {
	return func(r *Ranker) {
		if n > 0 {
			r.maxFiles = n
		}
	}
}

// WithRules replaces the built-in rule table.
func WithRules(rules []Rule) Option {
	return func(r *Ranker) {
		if len(rules) > 0 {
			r.rules = rules
		}
	}
}

// WithExtraRules appends rules to the table, e.g. from configuration.
func WithExtraRules(rules ...Rule) Option {
	return func(r *Ranker) {
		r.rules = append(r.rules, rules...)
	}
}

// WithHardExcludes replaces the hard-exclude segment set.
func WithHardExcludes(segments []string) Option {
	return func(r *Ranker) {
		if len(segments) > 0 {
			r.hardExcludes = lowerSet(segments)
		}
	}
}

// WithLowSignal replaces the low-signal segment set.
func WithLowSignal(segments []string) Option {
	return func(r *Ranker) {
		if len(segments) > 0 {
			r.lowSignal = lowerSet(segments)
		}
	}
}

// New creates a ranker with the given options.
func New(opts ...Option) *Ranker {
	r := &Ranker{
		rules:        DefaultRules(),
		hardExcludes: lowerSet(defaultHardExcludes),
		lowSignal:    lowerSet(defaultLowSignal),
		maxFiles:     DefaultMaxFiles,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Score evaluates the rule table against a single path. It returns
// the accumulated score and whether the path is excluded (hard-exclude
// segment hit, or total at or below the hard-exclude floor).
func (r *Ranker) Score(path string) (int, bool) {
	lower := strings.ToLower(path)
	segments := strings.Split(lower, "/")

	// Hard exclusion short-circuits all further scoring.
	for _, seg := range segments {
		if _, ok := r.hardExcludes[seg]; ok {
			return HardExcludeScore, true
		}
	}

	score := 0
	for _, rule := range r.rules {
		if rule.Match(lower, segments) {
			score += rule.Weight
		}
	}

	// Low-signal penalty applies at most once.
	for _, seg := range segments {
		if _, ok := r.lowSignal[seg]; ok {
			score += LowSignalPenalty
			break
		}
	}

	score -= DepthPenaltyPerSegment * len(segments)

	return score, score <= HardExcludeScore
}

// Rank scores the entries, drops exclusions, orders the rest by
// descending score (ties by ascending path) and truncates to the
// processing budget. The second return value is how many ranked
// entries were dropped by truncation; this is a capacity control,
// never an error.
func (r *Ranker) Rank(entries []domain.TreeEntry) ([]domain.TreeEntry, int) {
	scored := make([]domain.ScoredCandidate, 0, len(entries))
	for _, entry := range entries {
		score, excluded := r.Score(entry.Path)
		if excluded {
			continue
		}
		scored = append(scored, domain.ScoredCandidate{Entry: entry, Score: score})
	}

	sort.Slice(scored, func(i, j int) bool {
		if scored[i].Score != scored[j].Score {
			return scored[i].Score > scored[j].Score
		}
		return scored[i].Entry.Path < scored[j].Entry.Path
	})

	dropped := 0
	if len(scored) > r.maxFiles {
		dropped = len(scored) - r.maxFiles
		scored = scored[:r.maxFiles]
	}

	ranked := make([]domain.TreeEntry, len(scored))
	for i, sc := range scored {
		ranked[i] = sc.Entry
	}
	return ranked, dropped
}

func lowerSet(members []string) map[string]struct{} {
	set := make(map[string]struct{}, len(members))
	for _, m := range members {
		set[strings.ToLower(m)] = struct{}{}
	}
	return set
}
