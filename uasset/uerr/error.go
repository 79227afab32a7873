package uerr

import (
	"fmt"
)

type (
	// ErrInvalidFile is a structural violation of the container format.
	ErrInvalidFile struct {
		Reason string
	}
	// ErrNoData is a field that the current version requires but that is absent.
	ErrNoData struct {
		Reason string
	}
	ErrInvalidPackageIndex struct {
		Index  int32
		Reason string
	}
	ErrUnknownCompressionMethod struct {
		Method string
	}
	// ErrBorrowConflict is the panic value raised when the name table is
	// borrowed in a way that conflicts with an outstanding borrow.
	ErrBorrowConflict struct {
		Op string
	}
	ErrUnreachableCode struct {
		Caller string
	}
)

func (r ErrInvalidFile) Error() string {
	return fmt.Sprintf("invalid file: %s", r.Reason)
}

func (r ErrNoData) Error() string {
	return fmt.Sprintf("no data: %s", r.Reason)
}

func (r ErrInvalidPackageIndex) Error() string {
	return fmt.Sprintf("invalid package index %d: %s", r.Index, r.Reason)
}

func (r ErrUnknownCompressionMethod) Error() string {
	return fmt.Sprintf(`unknown compression method "%s"`, r.Method)
}

func (r ErrBorrowConflict) Error() string {
	return fmt.Sprintf("name table borrow conflict: %s", r.Op)
}

func (r ErrUnreachableCode) Error() string {
	return fmt.Sprintf("%s: unreachable code", r.Caller)
}
