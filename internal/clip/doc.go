// Package clip defines the Clip record and the knowledge document that
// persists it.
//
// A Clip is one captured clipboard item. The knowledge document is the
// single JSON collection of all Clips, deduplicated by the natural key
// (source app, content).
package clip
