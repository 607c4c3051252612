package export

import "fmt"

// StorageError is a filesystem failure: directory creation, file creation,
// or write. Path names the file or directory the operation failed on.
type StorageError struct {
	Path string
	Err  error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage failure at %s: %v", e.Path, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

// ExportError wraps serialization failures that are not filesystem errors.
type ExportError struct {
	Format string
	Err    error
}

func (e *ExportError) Error() string {
	return fmt.Sprintf("exporting %s: %v", e.Format, e.Err)
}

func (e *ExportError) Unwrap() error { return e.Err }
