// Package failure defines the closed set of error kinds that the judge
// integrations and the session store can produce, so callers can tell a
// network problem apart from a scraping problem or a disk problem.
package failure

import (
	"errors"
	"fmt"
)

type Kind int

const (
	KindUnknown Kind = iota
	// KindNetwork is a transport failure or an unexpected status code.
	KindNetwork
	// KindNotFound is a remote resource (like a contest) that does not exist.
	KindNotFound
	// KindTokenNotFound is a login page without an anti-forgery token.
	KindTokenNotFound
	// KindParse is a required html element or attribute that is absent.
	KindParse
	// KindFilesystem is a directory or file that could not be created or written.
	KindFilesystem
	// KindSerialization is a session store that could not be encoded or decoded.
	KindSerialization
	// KindUnsupportedService is a service name with no registered integration.
	KindUnsupportedService
	// KindInvalidInput is a malformed argument like a relative base url.
	KindInvalidInput
	// KindKeychain is an OS keychain that is missing or refused access.
	KindKeychain
)

func (k Kind) String() string {
	switch k {
	case KindNetwork:
		return "network"
	case KindNotFound:
		return "not found"
	case KindTokenNotFound:
		return "token not found"
	case KindParse:
		return "parse"
	case KindFilesystem:
		return "filesystem"
	case KindSerialization:
		return "serialization"
	case KindUnsupportedService:
		return "unsupported service"
	case KindInvalidInput:
		return "invalid input"
	case KindKeychain:
		return "keychain"
	}
	return "unknown"
}

// Error carries a Kind along with the operation that failed.
type Error struct {
	Kind Kind
	Op   string
	Err  error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Op, e.Kind)
	}
	return fmt.Sprintf("%s: %s", e.Op, e.Err.Error())
}

func (e *Error) Unwrap() error { return e.Err }

func New(kind Kind, op string, err error) error {
	return &Error{Kind: kind, Op: op, Err: err}
}

func Newf(kind Kind, op string, format string, args ...any) error {
	return &Error{Kind: kind, Op: op, Err: fmt.Errorf(format, args...)}
}

// KindOf returns the kind of the outermost *Error in the chain, or
// KindUnknown if there is none.
func KindOf(err error) Kind {
	var target *Error
	if errors.As(err, &target) {
		return target.Kind
	}
	return KindUnknown
}

func Is(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}
