//go:build ordinalize

package main

import (
	"errors"
	"fmt"

	"github.com/caelunshun/ordinalize"
	"github.com/caelunshun/ordinalize/pkg/ordinalizeerrors"
)

type Shape interface{ isShape() }

type Circle struct{ Radius float64 }

func (Circle) isShape() {}

type Level uint8

const (
	Low Level = iota + 1
	High
)

var (
	ShapeOrdinal = ordinalize.Ordinal[Shape]()
	LevelOrdinal = ordinalize.Ordinal[Level]()
)

func try(f func() uint) {
	defer func() {
		err, _ := recover().(error)
		fmt.Println(errors.Is(err, ordinalizeerrors.ErrNoVariant), err)
	}()
	fmt.Println(f())
}

func main() {
	try(func() uint { return ShapeOrdinal(Circle{}) })
	try(func() uint { return ShapeOrdinal(nil) })
	try(func() uint { return LevelOrdinal(High) })
	try(func() uint { return LevelOrdinal(0) })
}
