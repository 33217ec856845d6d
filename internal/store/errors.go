package store

type storeError string

func (e storeError) Error() string {
	return string(e)
}

// ErrNotFound reports a well-formed identifier with no matching row.
const ErrNotFound = storeError("not found")

// ErrConflict reports a unique-constraint violation, typically two rows
// competing for the same (name, type) identity.
const ErrConflict = storeError("conflict")
