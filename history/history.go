// Package history journals picked colours off the event loop.
package history

import (
	"fmt"
	"io"
	"log"
	"time"

	"github.com/lucasb-eyer/go-colorful"

	"huepick/actor"
)

type Entry struct {
	Time   time.Time
	Colour colorful.Color
}

func (e Entry) String() string {
	h, s, l := e.Colour.Hsl()
	return fmt.Sprintf("%s %s hsl(%.0f, %.0f%%, %.0f%%)",
		e.Time.Format(time.DateTime), e.Colour.Hex(), h, s*100, l*100)
}

type Journal struct {
	actor actor.Actor[Entry]
	last  Entry
}

// New returns a journal that writes one line per entry to out. Consecutive
// entries with the same colour are written once.
func New(out io.Writer) *Journal {
	j := &Journal{}
	var prev string
	j.actor = actor.NewActor(func(entry Entry) bool {
		hex := entry.Colour.Hex()
		if hex == prev {
			return true
		}
		prev = hex
		if _, err := fmt.Fprintln(out, entry); err != nil {
			log.Printf("history: %v", err)
			return false
		}
		return true
	})
	return j
}

func (j *Journal) Record(colour colorful.Color) {
	j.last = Entry{Time: time.Now(), Colour: colour}
	j.actor.Send(j.last)
}

// Last returns the last recorded entry.
func (j *Journal) Last() (Entry, bool) {
	return j.last, !j.last.Time.IsZero()
}

// Close flushes pending entries.
func (j *Journal) Close() {
	j.actor.Stop()
}
