package github

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/GaureshArt/docsy/internal/core/domain"
)

// decodeBlob decodes blob content per the encoding the API reports.
// The Git blobs API base64-encodes everything; "utf-8" appears for
// some small responses.
func decodeBlob(content, encoding string) ([]byte, error) {
	switch encoding {
	case "base64":
		// The API wraps base64 payloads with newlines.
		stripped := strings.ReplaceAll(content, "\n", "")
		decoded, err := base64.StdEncoding.DecodeString(stripped)
		if err != nil {
			return nil, fmt.Errorf("decode base64: %w", err)
		}
		return decoded, nil
	case "", "utf-8":
		return []byte(content), nil
	default:
		return nil, fmt.Errorf("%w: unexpected encoding %q", domain.ErrNotText, encoding)
	}
}

// isText reports whether the bytes look like valid UTF-8 text.
// NUL bytes mark binary content the pipeline must not ingest.
func isText(b []byte) bool {
	if !utf8.Valid(b) {
		return false
	}
	return !bytes.ContainsRune(b, 0)
}

// WebURL returns the human-facing URL for a file, used as the chunk
// citation target.
func WebURL(ref domain.RepoRef, path string) string {
	branch := ref.Ref
	if branch == "" {
		branch = "HEAD"
	}
	return fmt.Sprintf("https://github.com/%s/%s/blob/%s/%s", ref.Owner, ref.Name, branch, path)
}
