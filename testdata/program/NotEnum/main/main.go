//go:build ordinalize

package main

import "github.com/caelunshun/ordinalize"

type Point struct{ X, Y int }

type Any interface{}

var PointOrdinal = ordinalize.Ordinal[Point]()
var AnyOrdinal = ordinalize.Ordinal[Any]()

func main() {
	panic("ordinalize will fail")
}
