//go:build ordinalize

package main

import (
	"fmt"

	"github.com/caelunshun/ordinalize"
)

type Event interface{ isEvent() }

type Start struct{ At int }

type Stop struct{ Reason string }

func (*Start) isEvent() {}
func (Stop) isEvent()   {}

// EventOrdinal returns the ordinal of the event.
var EventOrdinal = ordinalize.Ordinal[Event]()

func main() {
	// Output: 0 1 1
	fmt.Println(EventOrdinal(&Start{At: 1}), EventOrdinal(Stop{}), EventOrdinal(&Stop{Reason: "done"}))
}
