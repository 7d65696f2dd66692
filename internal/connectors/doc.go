// Package connectors provides transport implementations for specific
// document sources. Each connector knows how to list and fetch files
// from one source type; the github subpackage covers GitHub repositories.
package connectors
