//go:build !ordinalize

package main

type Square struct{ Side float64 }

func (Square) isShape() {}
