//go:build ordinalize

package testdata

import (
	"github.com/caelunshun/ordinalize"
	"github.com/caelunshun/ordinalize/testdata/analysis/UnexportedVariant/levels"
)

var (
	LevelOrdinal = ordinalize.Ordinal[levels.Level]() // want `cannot refer to unexported variant levels.medium of levels.Level`
	EventOrdinal = ordinalize.Ordinal[levels.Event]() // want `cannot refer to unexported variant levels.stop of levels.Event`
)
