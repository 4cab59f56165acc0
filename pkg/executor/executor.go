// Package executor implements a pull-based, Volcano-style execution
// pipeline over an in-memory tuple.Table: every executor exposes
// Init/Next and can be composed into a tree without owning its
// children.
package executor

import (
	"errors"
	"fmt"

	"github.com/pmadamsetty/dbcore/pkg/tuple"
)

// ErrUnknownAttribute is wrapped by constructors that take an
// attribute name outside {"id", "val1", "val2"}.
var ErrUnknownAttribute = errors.New("executor: unknown attribute")

// ErrNotInitialized is the panic value used when Next is called on an
// executor before Init. A well-formed pipeline never triggers this; it
// exists as an assertion, not a recoverable runtime condition.
var ErrNotInitialized = errors.New("executor: Next called before Init")

// AbstractExecutor is the pull-based iterator contract every executor
// implements. Init idempotently resets cursor state and cascades to
// any children; Next writes the next tuple into out and returns true,
// or returns false once the stream is exhausted. Once Next has
// returned false, further calls must keep returning false.
type AbstractExecutor interface {
	Init()
	Next(out *tuple.Tuple) bool
}

func validateAttribute(attr string) error {
	switch attr {
	case "id", "val1", "val2":
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownAttribute, attr)
	}
}

// extractAttr reads the named field off t as a comparable value.
// attr must already have passed validateAttribute.
func extractAttr(t tuple.Tuple, attr string) interface{} {
	switch attr {
	case "id":
		return t.ID
	case "val1":
		return t.Val1
	case "val2":
		return t.Val2
	default:
		panic(fmt.Errorf("%w: %q", ErrUnknownAttribute, attr))
	}
}
