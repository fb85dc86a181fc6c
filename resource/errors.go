package resource

import "github.com/pkg/errors"

// Classification of everything that can go wrong when building a resource
// set from outside input. All of these mean the input is malformed (a
// corrupt or malicious certificate extension, or a typo in a delegation
// request); none are retryable, and none may be masked by returning an
// empty or truncated set.
var (
	// ErrInvalidRange is returned when a range is constructed with
	// min greater than max.
	ErrInvalidRange = errors.New("mis-ordered resource range")

	// ErrMalformedToken is returned when a textual resource token
	// matches neither the range nor the prefix grammar of its family.
	ErrMalformedToken = errors.New("malformed resource token")

	// ErrNonCanonicalForm is returned when a prefix (textual or
	// bit-string) has host bits set in its base address.
	ErrNonCanonicalForm = errors.New("resource not in canonical form")

	// ErrOverlap is returned when the ranges of a set overlap after
	// sorting.
	ErrOverlap = errors.New("resource overlap")

	// ErrDomainMismatch is returned where resource families meet
	// dynamically and disagree, e.g. a bit-string wider than its
	// address family or an unknown family code in an extension.
	ErrDomainMismatch = errors.New("resource family mismatch")

	// ErrInherit is returned for the RFC 3779 "inherit" element, which
	// this implementation deliberately does not support.
	ErrInherit = errors.New("inherited resources not supported")
)
