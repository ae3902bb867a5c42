package loop

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"huepick/lifecycle"
)

func TestRunPendingKeepsOrder(t *testing.T) {
	l := New()
	var got []int
	for i := 0; i < 5; i++ {
		i := i
		l.Post(func() {
			got = append(got, i)
			if i == 1 {
				l.Post(func() { got = append(got, 10) })
			}
		})
	}
	assert.Equal(t, 6, l.RunPending())
	assert.Equal(t, []int{0, 1, 2, 3, 4, 10}, got)
	assert.Equal(t, 0, l.RunPending())
}

func TestQuitSkipsLaterTasks(t *testing.T) {
	l := New()
	lc := lifecycle.New()
	var got []string
	l.Post(func() { got = append(got, "a") })
	l.Post(func() {
		got = append(got, "b")
		l.Post(func() { got = append(got, "c") })
	})
	l.Quit()

	frames := 0
	l.Run(lc, func() {
		frames++
		got = append(got, "frame")
	})
	assert.Equal(t, []string{"a", "b"}, got)
	assert.Equal(t, 0, frames)
}

func TestRunCallsFrameAfterBatch(t *testing.T) {
	l := New()
	lc := lifecycle.New()
	var got []string
	l.Post(func() { got = append(got, "a") })
	l.Post(func() {
		got = append(got, "b")
		l.Post(func() { got = append(got, "c") })
	})

	l.Run(lc, func() {
		got = append(got, "frame")
		l.Quit()
	})
	assert.Equal(t, []string{"a", "b", "c", "frame"}, got)
}

func TestRunFromOtherGoroutines(t *testing.T) {
	l := New()
	lc := lifecycle.New()
	frames := make(chan int, 100)
	count := 0

	done := make(chan struct{})
	go func() {
		defer close(done)
		l.Run(lc, func() { frames <- count })
	}()

	for i := 0; i < 10; i++ {
		l.Post(func() { count++ })
	}
	require.Eventually(t, func() bool {
		select {
		case n := <-frames:
			return n == 10
		default:
			return false
		}
	}, time.Second, time.Millisecond)

	l.Quit()
	<-done
}

func TestStopEndsRun(t *testing.T) {
	l := New()
	lc := lifecycle.New()
	done := make(chan struct{})
	go func() {
		defer close(done)
		l.Run(lc, nil)
	}()
	l.Post(func() {})
	time.Sleep(10 * time.Millisecond)
	lc.Stop()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not return after Stop")
	}
}
