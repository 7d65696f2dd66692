// Package sqlite provides a SQLite-backed chunk store.
//
// The store is the outbound boundary to the embedding/indexing
// collaborator: it persists the final chunk sequence with the stable
// id/content/metadata contract the downstream retrieval layer depends
// on. It uses the pure-Go modernc.org/sqlite driver, so no cgo is
// required.
package sqlite
