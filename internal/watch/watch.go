// Package watch provides filesystem change notification for the Lett
// CLI tools, backed by fsnotify.
package watch

// Op is a bitmask of filesystem operations observed on a path.
type Op uint32

const (
	OpCreate Op = 1 << iota
	OpWrite
	OpRemove
	OpRename
	OpChmod
)

// Event is one observed filesystem change.
type Event struct {
	Path string
	Op   Op
}

// Watcher delivers filesystem events for a set of watched paths.
type Watcher interface {
	// Events streams observed changes until Close.
	Events() <-chan Event
	// Errors streams watcher-level failures.
	Errors() <-chan error
	// Add starts watching a file or directory.
	Add(name string) error
	// Remove stops watching a path.
	Remove(name string) error
	// Close releases the watcher; Events and Errors stop delivering.
	Close() error
}
