//go:build ordinalize

package testdata

import "github.com/caelunshun/ordinalize"

type (
	Point   struct{ X, Y int }
	List    []int
	Table   map[string]int
	Handler func()
	Pipe    chan int
	Any     interface{}
	Box[T any] interface{ get() T }
	Empty   int
)

type Shape interface{ isShape() }

type Color int

const Red Color = 0

var (
	PointOrdinal   = ordinalize.Ordinal[Point]()           // want `cannot derive ordinal on Point which is not an enum\n\tstruct types have no variants`
	PtrOrdinal     = ordinalize.Ordinal[*Color]()          // want `cannot derive ordinal on \*Color which is not an enum\n\tpointer types have no variants`
	ListOrdinal    = ordinalize.Ordinal[List]()            // want `slice types have no variants`
	TableOrdinal   = ordinalize.Ordinal[Table]()           // want `map types have no variants`
	HandlerOrdinal = ordinalize.Ordinal[Handler]()         // want `function types have no variants`
	PipeOrdinal    = ordinalize.Ordinal[Pipe]()            // want `channel types have no variants`
	AnyOrdinal     = ordinalize.Ordinal[Any]()             // want `interface types without methods are implemented by every type`
	BoxOrdinal     = ordinalize.Ordinal[Box[int]]()        // want `generic types have no fixed variants`
	EmptyOrdinal   = ordinalize.Ordinal[Empty]()           // want `no constants of the type are declared`
	IntOrdinal     = ordinalize.Ordinal[int]()             // want `predeclared types have no variants`
	ErrorOrdinal   = ordinalize.Ordinal[error]()           // want `predeclared types have no variants`
	AnonOrdinal    = ordinalize.Ordinal[interface{ m() }]() // want `unnamed interface types have no variants`

	ShapeOrdinal = ordinalize.Ordinal[Shape]() // ok
	ColorOrdinal = ordinalize.Ordinal[Color]() // ok
)
