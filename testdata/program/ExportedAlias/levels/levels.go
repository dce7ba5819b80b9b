package levels

type Level int

const (
	low Level = iota
	high
)

const (
	Low  = low
	High = high
)
