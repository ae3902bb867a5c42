// Package host implements the reactive part of an on-screen element:
// controller registration, the mount lifecycle and coalesced updates.
//
// RequestUpdate only marks the element dirty and posts one update task;
// further requests before that task runs are absorbed by the dirty flag,
// so the update routine sees only the latest state.
package host

import (
	"huepick/loop"
)

// Controller is a component hosted by an Element. It follows the mount
// lifecycle of its host.
type Controller interface {
	OnMount()
	OnUnmount()
}

type Element struct {
	poster      loop.Poster
	update      func()
	controllers []Controller
	mounted     bool
	dirty       bool
	updates     int
}

// New returns an unmounted element that runs update once per update
// cycle on the loop behind poster.
func New(poster loop.Poster, update func()) *Element {
	return &Element{poster: poster, update: update}
}

func (e *Element) AddController(c Controller) {
	e.controllers = append(e.controllers, c)
	if e.mounted {
		c.OnMount()
	}
}

func (e *Element) Mount() {
	if e.mounted {
		return
	}
	e.mounted = true
	for _, c := range e.controllers {
		c.OnMount()
	}
	e.RequestUpdate()
}

func (e *Element) Unmount() {
	if !e.mounted {
		return
	}
	e.mounted = false
	for _, c := range e.controllers {
		c.OnUnmount()
	}
}

func (e *Element) Mounted() bool {
	return e.mounted
}

func (e *Element) RequestUpdate() {
	if e.dirty {
		return
	}
	e.dirty = true
	e.poster.Post(e.performUpdate)
}

// UpdatePending reports whether an update cycle is scheduled.
func (e *Element) UpdatePending() bool {
	return e.dirty
}

// Updates returns the number of update cycles that ran.
func (e *Element) Updates() int {
	return e.updates
}

// Flush runs a pending update cycle now. The scheduled task then finds
// nothing to do.
func (e *Element) Flush() {
	if e.dirty {
		e.performUpdate()
	}
}

func (e *Element) performUpdate() {
	if !e.dirty {
		return
	}
	e.dirty = false
	if !e.mounted {
		return
	}
	e.updates++
	e.update()
}
