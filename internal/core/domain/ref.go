package domain

import (
	"fmt"
	"strings"
)

// RepoRef identifies a repository and the ref (branch, tag or commit)
// to ingest. An empty Ref means the repository's default branch.
type RepoRef struct {
	Owner string
	Name  string
	Ref   string
}

// String returns the canonical owner/name[@ref] form.
func (r RepoRef) String() string {
	if r.Ref == "" {
		return r.Owner + "/" + r.Name
	}
	return r.Owner + "/" + r.Name + "@" + r.Ref
}

// ParseRepoRef parses a repository reference from user input.
//
// Accepted forms:
//
//	owner/repo
//	owner/repo@ref
//	github.com/owner/repo
//	https://github.com/owner/repo
func ParseRepoRef(s string) (RepoRef, error) {
	raw := strings.TrimSpace(s)

	trimmed := raw
	for _, prefix := range []string{"https://", "http://", "github.com/"} {
		trimmed = strings.TrimPrefix(trimmed, prefix)
	}
	trimmed = strings.TrimSuffix(trimmed, "/")
	trimmed = strings.TrimSuffix(trimmed, ".git")

	var ref string
	if at := strings.LastIndex(trimmed, "@"); at != -1 {
		ref = trimmed[at+1:]
		trimmed = trimmed[:at]
	}

	parts := strings.Split(trimmed, "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return RepoRef{}, fmt.Errorf("%w: %q (expected owner/repo[@ref])", ErrInvalidRepoRef, raw)
	}

	return RepoRef{Owner: parts[0], Name: parts[1], Ref: ref}, nil
}
