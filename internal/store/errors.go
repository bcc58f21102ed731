package store

import "errors"

var (
	// ErrLoad matches every *LoadError.
	ErrLoad = errors.New("load journal")
	// ErrSave matches every *SaveError.
	ErrSave = errors.New("save journal")
)

// LoadError wraps a failure to read, decrypt or decode the backing file.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return "load journal " + e.Path + ": " + e.Err.Error()
}

func (e *LoadError) Unwrap() error { return e.Err }

func (e *LoadError) Is(target error) bool { return target == ErrLoad }

// SaveError wraps a failure to encode, encrypt or write the backing file.
type SaveError struct {
	Path string
	Err  error
}

func (e *SaveError) Error() string {
	return "save journal " + e.Path + ": " + e.Err.Error()
}

func (e *SaveError) Unwrap() error { return e.Err }

func (e *SaveError) Is(target error) bool { return target == ErrSave }
