package errorz

import (
	"errors"
	"fmt"
)

// Kind classifies a domain failure. The transport layer is responsible for
// mapping kinds to wire status codes; services only ever return kinds.
type Kind int

const (
	KindUnknown Kind = iota
	// KindNotFound - a referenced club/event/category/city/user does not exist.
	KindNotFound
	// KindConflict - a state-dependent business rule is violated (duplicate
	// name, already a member, capacity reached, illegal leader/host action,
	// wrong temporal state).
	KindConflict
	// KindForbidden - the caller lacks ownership (not leader, not host).
	KindForbidden
	// KindInvalidArgument - structurally invalid input reached the domain.
	KindInvalidArgument
	// KindUnavailable - the storage layer failed; never retried by the domain.
	KindUnavailable
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	case KindForbidden:
		return "forbidden"
	case KindInvalidArgument:
		return "invalid_argument"
	case KindUnavailable:
		return "unavailable"
	}
	return "unknown"
}

type Error struct {
	kind Kind
	msg  string
	err  error
}

func (e *Error) Error() string {
	if e.err != nil {
		return fmt.Sprintf("%s: %v", e.msg, e.err)
	}
	return e.msg
}

func (e *Error) Kind() Kind { return e.kind }

func (e *Error) Unwrap() error { return e.err }

func NotFound(format string, args ...interface{}) *Error {
	return &Error{kind: KindNotFound, msg: fmt.Sprintf(format, args...)}
}

func Conflict(format string, args ...interface{}) *Error {
	return &Error{kind: KindConflict, msg: fmt.Sprintf(format, args...)}
}

func Forbidden(format string, args ...interface{}) *Error {
	return &Error{kind: KindForbidden, msg: fmt.Sprintf(format, args...)}
}

func InvalidArgument(format string, args ...interface{}) *Error {
	return &Error{kind: KindInvalidArgument, msg: fmt.Sprintf(format, args...)}
}

// Unavailable wraps a storage failure so the caller can still unwrap the
// driver error while the transport layer sees a single kind.
func Unavailable(err error, format string, args ...interface{}) *Error {
	return &Error{kind: KindUnavailable, msg: fmt.Sprintf(format, args...), err: err}
}

// KindOf extracts the kind from any error in the chain, KindUnknown otherwise.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.kind
	}
	return KindUnknown
}

func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}
