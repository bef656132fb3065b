// Package store maintains the deduplicated clip collection and mirrors it
// to a single JSON document on disk.
//
// The in-memory cache is authoritative; every mutation rewrites the full
// document and rolls the cache back if the write fails, so memory and disk
// never silently diverge. Full-document rewrite is a deliberate trade-off:
// write amplification bought for simplicity at an expected scale of
// thousands of records.
package store
