package dot

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/google/uuid"

	"github.com/cosmicexplorer/graphvizier/pkg/errors"
)

// IDPolicy selects how a builder treats identifiers at render time.
// The policy is fixed per builder; mixing policies within one document
// would double-protect identifiers and is deliberately not supported.
type IDPolicy int

const (
	// PolicyStrict renders identifiers verbatim. Identifiers must have been
	// constructed with NewID or MustID, which enforce the identifier grammar
	// up front so malformed input fails before any rendering is attempted.
	PolicyStrict IDPolicy = iota

	// PolicyPermissive accepts any identifier string (see RawID) and decides
	// at render time whether to wrap it in escaped double quotes, based on
	// whether it already matches the unquoted DOT identifier grammar.
	PolicyPermissive
)

// idGrammar is the grammar enforced by NewID under the strict policy.
var idGrammar = regexp.MustCompile(`^[A-Za-z0-9_-]*$`)

// Unquoted DOT identifier forms: a bare alphabetic token or a signed or
// unsigned numeral. Anything else needs quoting under the permissive policy.
var (
	alphaID   = regexp.MustCompile(`^[A-Za-z_][A-Za-z_0-9]*$`)
	numeralID = regexp.MustCompile(`^-?(\.[0-9]+|[0-9]+(\.[0-9]*)?)$`)
)

// ID is the key used to reference a vertex, edge endpoint, or subgraph in a
// DOT document. Equality and hashing are by string value.
//
// Construct IDs with [NewID] (validated), [MustID] (validated, panics), or
// [RawID] (unvalidated, for permissive builders). The zero value is the
// empty identifier, which is only meaningful as a placeholder.
type ID struct {
	value string
}

// NewID constructs an identifier under the strict policy.
// Returns an error with code [errors.ErrCodeInvalidID] if s does not match
// ^[A-Za-z0-9_-]*$. The error names both the offending string and the
// grammar so the failure is diagnosable without a debugger.
func NewID(s string) (ID, error) {
	if !idGrammar.MatchString(s) {
		return ID{}, errors.New(errors.ErrCodeInvalidID,
			"invalid identifier %q: must match %s", s, idGrammar)
	}
	return ID{value: s}, nil
}

// MustID is like [NewID] but panics on invalid input.
// Use it for identifiers known at compile time, where a malformed string is
// a programming error rather than a recoverable condition.
func MustID(s string) ID {
	id, err := NewID(s)
	if err != nil {
		panic(fmt.Sprintf("dot: %v", err))
	}
	return id
}

// RawID wraps s without validation.
// Intended for [PolicyPermissive] builders, which quote the value at render
// time if it does not match the unquoted identifier grammar. Feeding a
// RawID that violates the strict grammar into a [PolicyStrict] builder
// produces malformed DOT; strict builders expect [NewID]-constructed IDs.
func RawID(s string) ID {
	return ID{value: s}
}

// String returns the identifier's underlying string value.
func (id ID) String() string { return id.value }

// IsEmpty reports whether the identifier is the empty placeholder.
// An edge with empty endpoints is not valid DOT and must be populated
// before rendering.
func (id ID) IsEmpty() bool { return id.value == "" }

// escaped returns the identifier quoted for the permissive policy: the
// value itself when it matches the unquoted identifier grammar, otherwise
// the value wrapped in double quotes with internal quotes backslash-escaped.
func (id ID) escaped() string {
	if alphaID.MatchString(id.value) || numeralID.MatchString(id.value) {
		return id.value
	}
	return strconv.Quote(id.value)
}

// IDSource produces fresh identifiers for entities constructed without an
// explicit one. Injecting a source (rather than reaching for a hidden global
// generator) lets tests supply deterministic identifiers.
type IDSource func() ID

// RandomID is the default IDSource: a random 128-bit UUID rendered as a
// string. UUID strings consist of hex digits and dashes, so they always
// satisfy the strict identifier grammar.
func RandomID() ID {
	return ID{value: uuid.NewString()}
}
