// Package github implements the repository transport for GitHub.
//
// The transport is the pipeline's only network-facing collaborator.
// It resolves a repository reference to a flat recursive tree listing
// and fetches decoded blob content for the paths the core selects.
//
// # Architecture
//
//   - Transport: implements [driven.Transport]
//   - Client: wraps go-github with rate limiting and error mapping
//   - RateLimiter: proactive token bucket plus header-driven backoff
//
// # Authentication
//
// A personal access token (classic or fine-grained) is passed in at
// construction; it becomes an oauth2 static token source. Anonymous
// access works for public repositories at GitHub's 60 requests/hour
// unauthenticated limit.
//
// # Rate Limiting
//
// Dual strategy: a token bucket throttles proactively to stay under
// the 5,000/hour authenticated limit, and X-RateLimit-* response
// headers drive reactive waits when the remaining quota runs low.
//
// # Failure Policy
//
// A malformed or unreachable repository/ref is fatal and surfaces as
// a wrapped [domain.ErrRefNotFound] / [domain.ErrAuthInvalid]. An
// individual blob fetch failure is not: the file is omitted from the
// batch, a warning is logged, and the remaining files proceed.
package github
