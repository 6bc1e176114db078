package sections

import (
	"github.com/Leo-HM-04/FrontEnd-Reclutamiento-sub002/draw"
	"github.com/Leo-HM-04/FrontEnd-Reclutamiento-sub002/palette"
)

// Event is one timeline entry.
type Event struct {
	Time  string
	Kind  string
	Text  string
	Token palette.Token
}

// EventGroup is the events of one day.
type EventGroup struct {
	Day    string
	Events []Event
}

const (
	eventDayHeight = 7.0
	eventRowHeight = 6.0
)

// EventList draws the groups in order: a day heading followed by one line
// per event with a colored dot, the time, a kind badge and the description.
func (r *Renderer) EventList(groups []EventGroup) {
	if len(groups) == 0 {
		r.Empty("")
		return
	}
	for _, g := range groups {
		r.cur.Ensure(eventDayHeight + eventRowHeight)
		r.cur.Place(eventDayHeight, func(x, y, w float64) {
			r.d.Text(x, y+5, w, g.Day, draw.TextStyle{Size: 9, Style: "B", Color: palette.Primary})
		})
		for _, e := range g.Events {
			r.cur.Place(eventRowHeight, func(x, y, w float64) {
				r.d.Dot(x+2, y+3, 1.1, e.Token.Accent)
				r.d.Text(x+5, y+4, 12, e.Time, draw.TextStyle{Size: 7.5, Color: palette.Muted})
				tx := x + 18
				if e.Kind != "" {
					tx += r.d.Badge(tx, y+0.5, e.Kind, e.Token, 40) + 2
				}
				r.d.Text(tx, y+4, x+w-tx, r.orNA(e.Text), draw.TextStyle{Size: 8, Color: palette.Dark})
			})
		}
		r.cur.Skip(2)
	}
}
