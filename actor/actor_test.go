package actor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestActorHandlesInOrder(t *testing.T) {
	var got []int
	a := NewActor(func(msg int) bool {
		got = append(got, msg)
		return true
	})
	for i := 0; i < 100; i++ {
		a.Send(i)
	}
	a.Stop()

	assert.Len(t, got, 100)
	for i, msg := range got {
		assert.Equal(t, i, msg)
	}
	a.Send(100)
	assert.Len(t, got, 100)
}

func TestActorStopsOnFalse(t *testing.T) {
	var got []string
	a := NewActor(func(msg string) bool {
		got = append(got, msg)
		return msg != "stop"
	})
	a.Send("a")
	a.Send("stop")
	a.Send("b")
	a.Stop()
	assert.Equal(t, []string{"a", "stop"}, got)
}
