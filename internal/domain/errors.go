package domain

import "errors"

var (
	// ErrDocumentNotFound signals a missing document.
	ErrDocumentNotFound = errors.New("document not found")
	// ErrAlreadyExists signals a duplicate document identifier.
	ErrAlreadyExists = errors.New("already exists")
	// ErrUnknownSortField signals a sort request on a field that is not sortable.
	ErrUnknownSortField = errors.New("unknown sort field")
	// ErrInvalidParameter signals a malformed request parameter.
	ErrInvalidParameter = errors.New("invalid parameter")
)
