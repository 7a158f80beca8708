package app_test

import (
	. "github.com/onsi/gomega"
	"github.com/varfrog/helloadapter/adapter/internal/app"
	"testing"
	"time"
)

func TestNewGreeting_AlternatesHelloAndWorld(t *testing.T) {
	g := NewWithT(t)

	now := time.Now()
	for tick := 0; tick < 10; tick++ {
		expected := app.MessageHello
		if tick%2 == 1 {
			expected = app.MessageWorld
		}
		g.Expect(app.NewGreeting(tick, now).Message).To(Equal(expected), "tick %d", tick)
	}
}

func TestNewGreeting_FormatsTimestamp(t *testing.T) {
	g := NewWithT(t)

	now := time.Date(2024, time.March, 5, 14, 7, 9, 0, time.Local)
	greeting := app.NewGreeting(0, now)

	g.Expect(greeting.Timestamp).To(Equal("Tue, 05 Mar 2024 14:07:09"))
	g.Expect(greeting.Fields()).To(Equal(map[string]string{
		app.FieldMessage:   app.MessageHello,
		app.FieldTimestamp: "Tue, 05 Mar 2024 14:07:09",
	}))
}

func TestRandomPause(t *testing.T) {
	t.Run("Stays within bounds", func(t *testing.T) {
		g := NewWithT(t)

		for i := 0; i < 1000; i++ {
			pause := app.RandomPause(time.Second, time.Second*2)
			g.Expect(pause).To(BeNumerically(">=", time.Second))
			g.Expect(pause).To(BeNumerically("<=", time.Second*2))
		}
	})

	t.Run("Returns the min when the range is empty", func(t *testing.T) {
		g := NewWithT(t)

		g.Expect(app.RandomPause(time.Second, time.Second)).To(Equal(time.Second))
		g.Expect(app.RandomPause(time.Second, time.Millisecond)).To(Equal(time.Second))
	})
}
