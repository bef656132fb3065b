// Package clipboard provides the OS-facing collaborators consumed by the
// watcher: a clipboard source, a frontmost-app resolver, and a browser URL
// enricher. Everything here is best effort — failures degrade to "nothing
// observed" rather than propagating.
package clipboard
