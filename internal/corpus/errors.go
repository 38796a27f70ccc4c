package corpus

import "fmt"

// LoadError reports an I/O failure while loading a build tree. A load
// that fails produces no partial corpus.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("failed to load %q: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// ConsistencyError reports a corrupted corpus: a name recorded in a
// file has no type table entry, or a requested name is missing from a
// file's records. It can only arise from a loader or comparator bug,
// never from valid input, so callers abort rather than recover.
type ConsistencyError struct {
	Name string
	File string
}

func (e *ConsistencyError) Error() string {
	if e.File != "" {
		return fmt.Sprintf("type %s is not known in file %s", e.Name, e.File)
	}
	return fmt.Sprintf("type %s has a missing declaration", e.Name)
}
