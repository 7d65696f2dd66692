package ranker

import (
	"regexp"
	"strings"
)

// Rule is one scoring heuristic: a named predicate and its weight.
// Rules are additive, not first-match: a path may collect the weight
// of every rule it satisfies.
type Rule struct {
	// Name identifies the rule in logs and tests.
	Name string

	// Weight is added to the score when the rule matches.
	Weight int

	// Match evaluates the rule against the full lowercased path and
	// its /-delimited segments.
	Match func(path string, segments []string) bool
}

// numericPrefix matches ordered-documentation segments such as
// "01-introduction" or "02_setup".
var numericPrefix = regexp.MustCompile(`^\d{2,}[-_]`)

var (
	docsDirs     = newSet("docs", "documentation", "doc")
	apiDirs      = newSet("api", "interfaces", "modules", "reference")
	guideDirs    = newSet("guide", "guides", "tutorial", "tutorials", "concepts")
	exampleDirs  = newSet("example", "examples")
	blogDirs     = newSet("blog", "blogs", "article", "articles")
	startedWords = []string{"getting-started", "getting_started", "quickstart", "quick-start", "installation"}
	metaWords    = []string{"contributing", "license", "code-of-conduct", "code_of_conduct", "security"}
)

// DefaultRules returns the built-in rule table, coarsest signals first.
// The order is cosmetic (evaluation is additive) but kept stable so
// logs and tests read predictably.
func DefaultRules() []Rule {
	return []Rule{
		{
			Name:   "root-readme",
			Weight: 1000,
			Match: func(_ string, segments []string) bool {
				return len(segments) == 1 && strings.HasPrefix(segments[0], "readme")
			},
		},
		{
			Name:   "getting-started",
			Weight: 950,
			Match: func(path string, _ []string) bool {
				return containsAny(path, startedWords)
			},
		},
		{
			Name:   "packages-readme",
			Weight: 900,
			Match: func(_ string, segments []string) bool {
				if len(segments) < 2 || !strings.HasPrefix(segments[len(segments)-1], "readme") {
					return false
				}
				return hasSegmentIn(segments[:len(segments)-1], newSet("packages"))
			},
		},
		{
			Name:   "docs-directory",
			Weight: 800,
			Match: func(_ string, segments []string) bool {
				return hasSegmentIn(segments, docsDirs)
			},
		},
		{
			Name:   "package-docs",
			Weight: 750,
			Match: func(_ string, segments []string) bool {
				pkgAt := -1
				for i, seg := range segments {
					if seg == "packages" {
						pkgAt = i
						break
					}
				}
				if pkgAt < 0 {
					return false
				}
				return hasSegmentIn(segments[pkgAt+1:], docsDirs)
			},
		},
		{
			Name:   "migration",
			Weight: 700,
			Match: func(path string, _ []string) bool {
				return containsAny(path, []string{"migration", "migrating", "upgrade", "upgrading"})
			},
		},
		{
			Name:   "api-directory",
			Weight: 650,
			Match: func(_ string, segments []string) bool {
				return hasSegmentIn(segments, apiDirs)
			},
		},
		{
			Name:   "numbered-section",
			Weight: 625,
			Match: func(_ string, segments []string) bool {
				for _, seg := range segments {
					if numericPrefix.MatchString(seg) {
						return true
					}
				}
				return false
			},
		},
		{
			Name:   "guide-directory",
			Weight: 600,
			Match: func(_ string, segments []string) bool {
				return hasSegmentIn(segments, guideDirs)
			},
		},
		{
			Name:   "examples-directory",
			Weight: 300,
			Match: func(_ string, segments []string) bool {
				return hasSegmentIn(segments, exampleDirs)
			},
		},
		{
			Name:   "blog-directory",
			Weight: 150,
			Match: func(_ string, segments []string) bool {
				return hasSegmentIn(segments, blogDirs)
			},
		},
		{
			Name:   "changelog",
			Weight: 100,
			Match: func(_ string, segments []string) bool {
				for _, seg := range segments {
					if seg == "errors" || strings.HasPrefix(seg, "changelog") {
						return true
					}
				}
				return false
			},
		},
		{
			Name:   "project-meta",
			Weight: 50,
			Match: func(path string, _ []string) bool {
				return containsAny(path, metaWords)
			},
		},
	}
}

// SubstringRule builds a rule matching a lowercase substring anywhere
// in the path. Used to extend the table from configuration.
func SubstringRule(name, substr string, weight int) Rule {
	needle := strings.ToLower(substr)
	return Rule{
		Name:   name,
		Weight: weight,
		Match: func(path string, _ []string) bool {
			return strings.Contains(path, needle)
		},
	}
}

// SegmentRule builds a rule matching an exact lowercase path segment.
func SegmentRule(name, segment string, weight int) Rule {
	needle := strings.ToLower(segment)
	return Rule{
		Name:   name,
		Weight: weight,
		Match: func(_ string, segments []string) bool {
			for _, seg := range segments {
				if seg == needle {
					return true
				}
			}
			return false
		},
	}
}

func newSet(members ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(members))
	for _, m := range members {
		set[m] = struct{}{}
	}
	return set
}

func hasSegmentIn(segments []string, set map[string]struct{}) bool {
	for _, seg := range segments {
		if _, ok := set[seg]; ok {
			return true
		}
	}
	return false
}

func containsAny(path string, needles []string) bool {
	for _, needle := range needles {
		if strings.Contains(path, needle) {
			return true
		}
	}
	return false
}
