//go:build ordinalize

package main

import (
	"fmt"

	"example.com/ExportedAlias/levels"
	"github.com/caelunshun/ordinalize"
)

var LevelOrdinal = ordinalize.Ordinal[levels.Level]()

func main() {
	// Output: 0 1
	fmt.Println(LevelOrdinal(levels.Low), LevelOrdinal(levels.High))
}
