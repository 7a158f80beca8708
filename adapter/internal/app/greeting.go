package app

import (
	"math/rand"
	"time"
)

const (
	MessageHello = "Hello"
	MessageWorld = "World"

	// TimestampLayout renders e.g. "Tue, 05 Mar 2024 14:07:09".
	TimestampLayout = "Mon, 02 Jan 2006 15:04:05"

	FieldMessage   = "message"
	FieldTimestamp = "timestamp"
)

// Greeting is a single update of the greetings item.
type Greeting struct {
	Message   string
	Timestamp string
}

// NewGreeting builds the greeting for the given tick: Hello on even ticks, World on odd ones.
func NewGreeting(tick int, now time.Time) Greeting {
	message := MessageHello
	if tick%2 != 0 {
		message = MessageWorld
	}

	return Greeting{
		Message:   message,
		Timestamp: now.Format(TimestampLayout),
	}
}

// Fields returns the greeting as item fields.
func (g Greeting) Fields() map[string]string {
	return map[string]string{
		FieldMessage:   g.Message,
		FieldTimestamp: g.Timestamp,
	}
}

// RandomPause returns a duration uniformly distributed in [minPause, maxPause].
func RandomPause(minPause, maxPause time.Duration) time.Duration {
	if maxPause <= minPause {
		return minPause
	}
	return minPause + time.Duration(rand.Int63n(int64(maxPause-minPause)+1))
}
