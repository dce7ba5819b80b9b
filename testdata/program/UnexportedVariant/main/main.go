//go:build ordinalize

package main

import (
	"example.com/UnexportedVariant/levels"
	"github.com/caelunshun/ordinalize"
)

var LevelOrdinal = ordinalize.Ordinal[levels.Level]()

func main() {
	panic("ordinalize will fail")
}
