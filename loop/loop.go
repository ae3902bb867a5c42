// Package loop is a single-threaded cooperative event loop. Tasks are
// posted from any goroutine and executed one at a time, in post order, on
// the goroutine that runs the loop. Every task runs to completion.
package loop

import (
	"huepick/lifecycle"
	"huepick/stream"
)

type Task func()

// Poster is the part of Loop that producers need.
type Poster interface {
	Post(task Task)
}

type Loop struct {
	tasks *stream.Stream[Task]
	quit  bool
}

func New() *Loop {
	return &Loop{tasks: stream.NewStream[Task]("loop")}
}

func (l *Loop) Post(task Task) {
	l.tasks.Push(task)
}

func (l *Loop) Pending() int {
	return l.tasks.Len()
}

// Quit makes Run return after the task that is currently queued last.
func (l *Loop) Quit() {
	l.Post(func() { l.quit = true })
}

// RunPending runs queued tasks, including the ones posted while it runs,
// until the queue is empty. It returns the number of tasks run.
func (l *Loop) RunPending() int {
	n := 0
	for !l.quit {
		tasks := l.tasks.PullAll()
		if len(tasks) == 0 {
			break
		}
		n += l.run(tasks)
	}
	return n
}

// Run blocks running batches until Quit is called or lc is stopped. After
// every batch frame is called once on the loop goroutine.
func (l *Loop) Run(lc *lifecycle.Lifecycle, frame func()) {
	lc.OnStop(l.tasks.Close)

	for !l.quit && !lc.ShouldStop() {
		tasks := l.tasks.Pull()
		if tasks == nil {
			return
		}
		l.run(tasks)
		l.RunPending()
		if frame != nil && !l.quit {
			frame()
		}
	}
}

func (l *Loop) run(tasks []Task) int {
	n := 0
	for _, task := range tasks {
		if l.quit {
			break
		}
		task()
		n++
	}
	return n
}
