package file

import (
	"github.com/GaureshArt/docsy/internal/core/ports/driven"
	"github.com/GaureshArt/docsy/internal/pipeline/chunker"
	"github.com/GaureshArt/docsy/internal/pipeline/normalizer"
	"github.com/GaureshArt/docsy/internal/pipeline/ranker"
	"github.com/GaureshArt/docsy/internal/pipeline/selector"
)

// Config keys recognised by the ingestion pipeline. All live under the
// [ingest] table; [[rules]] is a top-level array of tables.
const (
	keyMaxFileSize          = "ingest.max_file_size"
	keyMaxFiles             = "ingest.max_files"
	keyChunkSize            = "ingest.chunk_size"
	keyChunkOverlap         = "ingest.chunk_overlap"
	keyPlaceholderThreshold = "ingest.placeholder_threshold"
	keyHardExclude          = "ingest.hard_exclude"
	keyLowSignal            = "ingest.low_signal"
	keyLowValue             = "ingest.low_value"
	keyRules                = "rules"
)

// SelectorOptions builds selector options from stored configuration.
// Unset keys fall back to the stage defaults.
func SelectorOptions(cfg driven.ConfigStore) []selector.Option {
	var opts []selector.Option
	if size := cfg.GetInt(keyMaxFileSize); size > 0 {
		opts = append(opts, selector.WithMaxFileSize(int64(size)))
	}
	return opts
}

// RankerOptions builds ranker options from stored configuration.
// [[rules]] entries (pattern + weight) extend the built-in rule table.
func RankerOptions(cfg driven.ConfigStore) []ranker.Option {
	var opts []ranker.Option
	if n := cfg.GetInt(keyMaxFiles); n > 0 {
		opts = append(opts, ranker.WithMaxFiles(n))
	}
	if segs := cfg.GetStringSlice(keyHardExclude); len(segs) > 0 {
		opts = append(opts, ranker.WithHardExcludes(segs))
	}
	if segs := cfg.GetStringSlice(keyLowSignal); len(segs) > 0 {
		opts = append(opts, ranker.WithLowSignal(segs))
	}
	if rules := configRules(cfg); len(rules) > 0 {
		opts = append(opts, ranker.WithExtraRules(rules...))
	}
	return opts
}

// NormalizerOptions builds normalizer options from stored configuration.
func NormalizerOptions(cfg driven.ConfigStore) []normalizer.Option {
	var opts []normalizer.Option
	if n := cfg.GetInt(keyPlaceholderThreshold); n > 0 {
		opts = append(opts, normalizer.WithPlaceholderThreshold(n))
	}
	if segs := cfg.GetStringSlice(keyLowValue); len(segs) > 0 {
		opts = append(opts, normalizer.WithLowValueSegments(segs))
	}
	return opts
}

// ChunkerOptions builds chunker options from stored configuration.
func ChunkerOptions(cfg driven.ConfigStore) []chunker.Option {
	var opts []chunker.Option
	if size := cfg.GetInt(keyChunkSize); size > 0 {
		opts = append(opts, chunker.WithChunkSize(size))
	}
	if overlap := cfg.GetInt(keyChunkOverlap); overlap >= 0 {
		if _, ok := cfg.Get(keyChunkOverlap); ok {
			opts = append(opts, chunker.WithOverlap(overlap))
		}
	}
	return opts
}

// configRules decodes [[rules]] array-of-tables entries into substring
// scoring rules. Entries missing a pattern or weight are skipped.
func configRules(cfg driven.ConfigStore) []ranker.Rule {
	raw, ok := cfg.Get(keyRules)
	if !ok {
		return nil
	}

	var rules []ranker.Rule
	appendRule := func(entry map[string]any) {
		pattern, _ := entry["pattern"].(string)
		weight := toInt(entry["weight"])
		if pattern == "" || weight == 0 {
			return
		}
		name, _ := entry["name"].(string)
		if name == "" {
			name = "config:" + pattern
		}
		rules = append(rules, ranker.SubstringRule(name, pattern, weight))
	}

	switch v := raw.(type) {
	case []map[string]any:
		for _, entry := range v {
			appendRule(entry)
		}
	case []any:
		for _, item := range v {
			if entry, ok := item.(map[string]any); ok {
				appendRule(entry)
			}
		}
	}
	return rules
}

// toInt handles the integer types go-toml produces when decoding into any.
func toInt(v any) int {
	switch n := v.(type) {
	case int64:
		return int(n)
	case int:
		return n
	case float64:
		return int(n)
	}
	return 0
}
