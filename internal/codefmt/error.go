package codefmt

import (
	"errors"
	"fmt"
	"go/token"
)

// CodeError is an error located in the user's source code.
type CodeError struct {
	err      error
	pos, end token.Pos
	fset     *token.FileSet
}

// Unwrap returns the error without its position.
func (e *CodeError) Unwrap() error { return e.err }

// Pos returns where the error starts. It may be invalid.
func (e *CodeError) Pos() token.Pos { return e.pos }

// End returns where the error ends. It may be invalid.
func (e *CodeError) End() token.Pos { return e.end }

// Error prefixes the message with the position if it is valid.
func (e *CodeError) Error() string {
	if !e.pos.IsValid() || e.fset == nil {
		return e.err.Error()
	}
	return FormatPosition(e.fset.Position(e.pos)) + ": " + e.err.Error()
}

// Errorf creates a [CodeError] at the node. The message is formatted by
// [Sprintf]. Errors cannot be formatted into the message, use [Wrapf] to keep
// the cause instead.
func Errorf(pkger Pkger, at Poser, format string, args ...any) error {
	for _, arg := range args {
		if _, ok := arg.(error); ok {
			panic("codefmt: CodeError cannot wrap error")
		}
	}

	f := formatterOf(pkger)
	codeErr := &CodeError{
		err:  errors.New(fmt.Sprintf(format, f.operands(args)...)),
		fset: f.Fset,
	}
	if at != nil {
		codeErr.pos = at.Pos()
		if ender, ok := at.(Ender); ok {
			codeErr.end = ender.End()
		}
	}
	return codeErr
}

// Wrapf is like [Errorf] but the error wraps cause for [errors.Is] and
// [errors.As]. The message of cause is not included.
func Wrapf(pkger Pkger, at Poser, cause error, format string, args ...any) error {
	codeErr := Errorf(pkger, at, format, args...).(*CodeError)
	codeErr.err = &causedError{codeErr.err.Error(), cause}
	return codeErr
}

type causedError struct {
	msg   string
	cause error
}

func (e *causedError) Error() string { return e.msg }
func (e *causedError) Unwrap() error { return e.cause }

// Unjoin flattens errors combined by [errors.Join] into a list in depth-first
// order.
func Unjoin(err error) []error {
	if err == nil {
		return nil
	}
	joined, ok := err.(interface{ Unwrap() []error })
	if !ok {
		return []error{err}
	}

	var errs []error
	for _, err := range joined.Unwrap() {
		errs = append(errs, Unjoin(err)...)
	}
	return errs
}
