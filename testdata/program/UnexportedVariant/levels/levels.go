package levels

type Level int

const (
	Low Level = iota
	medium
	High
)
