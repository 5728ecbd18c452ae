// Package body represents a request payload that lives either in memory or
// in a file.
//
// A Value is a tagged variant rather than an interface: the two kinds share
// nothing beyond a length query and sequential, chunked reading. A Value
// created by Spooled owns its file and removes it on Cleanup.
package body
