//go:build ordinalize

package main

import (
	"fmt"

	"github.com/caelunshun/ordinalize"
)

type Shape interface{ isShape() }

type Circle struct{ Radius float64 }

func (Circle) isShape() {}

var ShapeOrdinal = ordinalize.Ordinal[Shape]()

func main() {
	fmt.Println(ShapeOrdinal(Circle{}))
}
