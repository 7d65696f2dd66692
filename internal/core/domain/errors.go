package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidRepoRef indicates a repository reference that cannot
	// be parsed into owner/repo[@ref] form.
	ErrInvalidRepoRef = errors.New("invalid repository reference")

	// ErrRefNotFound indicates the requested branch, tag or commit
	// does not exist in the repository.
	ErrRefNotFound = errors.New("ref not found")

	// ErrAuthRequired indicates the transport requires authentication
	// but none is configured.
	ErrAuthRequired = errors.New("authentication required")

	// ErrAuthInvalid indicates the authentication credentials are invalid.
	ErrAuthInvalid = errors.New("authentication invalid")

	// ErrRateLimited indicates the API rate limit was exceeded.
	ErrRateLimited = errors.New("rate limited")

	// ErrNotText indicates fetched content is not decodable text.
	// Treated as a per-file fetch failure (omit and warn).
	ErrNotText = errors.New("content is not text")
)
