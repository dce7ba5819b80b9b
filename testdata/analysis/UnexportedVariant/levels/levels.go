package levels

type Level int

const (
	Low Level = iota
	medium
	High
)

type Event interface{ isEvent() }

type Start struct{}

type stop struct{}

func (Start) isEvent() {}
func (stop) isEvent()  {}
