package codefmt

import (
	"fmt"
	"go/token"
	"go/types"
	"io"

	"golang.org/x/tools/go/packages"
)

type (
	// Pkger provides the package whose source code is being formatted.
	Pkger interface{ Pkg() *packages.Package }
	// Poser is a node or an object located in the source code.
	Poser interface{ Pos() token.Pos }
	// Ender is a [Poser] spanning to an end position.
	Ender interface{ End() token.Pos }

	typer    interface{ Type() types.Type }
	objecter interface{ Object() types.Object }
)

// Sprintf is like [fmt.Sprintf] with extra verbs for the source code of pkger:
//
//	%t  a type: types.Type, or anything with a Type() method
//	%o  an object: types.Object, or anything with an Object() method
//	%b  a position: token.Pos, or anything with a Pos() method
//
// Other verbs format their operands as usual.
func Sprintf(pkger Pkger, format string, args ...any) string {
	return fmt.Sprintf(format, formatterOf(pkger).operands(args)...)
}

func formatterOf(pkger Pkger) Formatter {
	if pkger == nil {
		return Formatter{}
	}
	return New(pkger.Pkg())
}

// operands wraps args so that they understand the extra verbs.
func (f Formatter) operands(args []any) []any {
	wrapped := make([]any, len(args))
	for i, arg := range args {
		switch arg.(type) {
		case types.Type, types.Object, token.Pos, typer, objecter, Poser:
			wrapped[i] = operand{arg, f}
		default:
			wrapped[i] = arg
		}
	}
	return wrapped
}

type operand struct {
	x any
	f Formatter
}

func (op operand) Format(s fmt.State, verb rune) {
	var text string
	var ok bool
	switch verb {
	case 't':
		text, ok = op.typ()
	case 'o':
		text, ok = op.obj()
	case 'b':
		text, ok = op.pos()
	default:
		fmt.Fprintf(s, fmt.FormatString(s, verb), op.x)
		return
	}

	if !ok {
		fmt.Fprintf(s, "%%!%c(%T)", verb, op.x)
		return
	}
	_, _ = io.WriteString(s, text)
}

func (op operand) typ() (string, bool) {
	switch x := op.x.(type) {
	case types.Type:
		return op.f.Type(x), true
	case typer:
		return op.f.Type(x.Type()), true
	case types.Object:
		return op.f.Type(x.Type()), true
	case objecter:
		return op.f.Type(x.Object().Type()), true
	}
	return "", false
}

func (op operand) obj() (string, bool) {
	switch x := op.x.(type) {
	case types.Object:
		return op.f.Obj(x), true
	case objecter:
		return op.f.Obj(x.Object()), true
	}
	return "", false
}

func (op operand) pos() (string, bool) {
	switch x := op.x.(type) {
	case token.Pos:
		return op.f.Pos(x), true
	case Poser:
		return op.f.Pos(x.Pos()), true
	case objecter:
		return op.f.Pos(x.Object().Pos()), true
	}
	return "", false
}
