// Package ordinalizeerrors provides errors used by code generated by
// Ordinalize.
package ordinalizeerrors

import (
	"errors"
	"fmt"
)

// ErrNoVariant is wrapped by the error a generated ordinal function panics with
// when its input holds none of the declared variants. It can happen only for
// nil interfaces or values converted from outside of the declared constants.
var ErrNoVariant = errors.New("no variant")

// NoVariant returns an error for the value v of the enum type named enum. The
// error wraps [ErrNoVariant].
func NoVariant(enum string, v any) error {
	if enum == "" {
		return fmt.Errorf("ordinal: %w: %#v", ErrNoVariant, v)
	}
	return fmt.Errorf("ordinal of %s: %w: %#v", enum, ErrNoVariant, v)
}
