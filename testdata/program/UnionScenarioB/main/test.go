package main

type Test interface{ isTest() }

type (
	I32 int32
	I64 int64
)

type A int32

type B struct {
	named1 string
	named2 *int
}

type C struct {
	I64
	I32
}

type D struct{}

func (A) isTest() {}
func (B) isTest() {}
func (C) isTest() {}
func (D) isTest() {}
