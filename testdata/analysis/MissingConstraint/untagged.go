package testdata

import "github.com/caelunshun/ordinalize" // want `file must have "//go:build ordinalize" constraint when importing ordinalize`

var _ = ordinalize.Ordinal[Color]
