package report

import (
	"sort"
	"strings"
	"time"

	talentpdf "github.com/Leo-HM-04/FrontEnd-Reclutamiento-sub002"
	"github.com/Leo-HM-04/FrontEnd-Reclutamiento-sub002/draw"
	"github.com/Leo-HM-04/FrontEnd-Reclutamiento-sub002/palette"
	"github.com/Leo-HM-04/FrontEnd-Reclutamiento-sub002/sections"
	"github.com/Leo-HM-04/FrontEnd-Reclutamiento-sub002/table"
)

// BenchmarkHours is the industry time to fill a profile: 15 days.
const BenchmarkHours = 360.0

// eventToken colors an event by its kind: creation, applications, and
// everything else.
func eventToken(kind string) palette.Token {
	k := strings.ToLower(kind)
	switch {
	case strings.Contains(k, "cread"), strings.Contains(k, "creat"):
		return palette.Blue
	case strings.Contains(k, "aplic"), strings.Contains(k, "appl"):
		return palette.Green
	case strings.Contains(k, "entrevist"), strings.Contains(k, "interview"):
		return palette.Purple
	}
	return palette.Orange
}

type datedEvent struct {
	at time.Time
	TimelineEvent
}

// datedEvents parses and orders events by time. Events without a readable
// timestamp are dropped from the phase math but kept by groupEvents.
func datedEvents(events []TimelineEvent) []datedEvent {
	var out []datedEvent
	for _, e := range events {
		if t, ok := parseDate(e.At); ok {
			out = append(out, datedEvent{t, e})
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].at.Before(out[j].at) })
	return out
}

// phases derives the process phases from the event log: profile creation
// until the first application, then receiving candidates until now, plus
// an interview phase when interviews were logged.
func phases(l Labels, t Timeline, now time.Time) []sections.GanttRow {
	evs := datedEvents(t.Events)

	start := now.Add(-time.Duration(t.DaysOpen*24) * time.Hour)
	if len(evs) > 0 && evs[0].at.Before(start) {
		start = evs[0].at
	}

	var firstApp time.Time
	for _, c := range t.Candidates {
		if at, ok := parseDate(c.AppliedAt); ok && (firstApp.IsZero() || at.Before(firstApp)) {
			firstApp = at
		}
	}
	var interviewFrom, interviewTo time.Time
	for _, e := range evs {
		switch eventToken(e.Type) {
		case palette.Green:
			if firstApp.IsZero() || e.at.Before(firstApp) {
				firstApp = e.at
			}
		case palette.Purple:
			if interviewFrom.IsZero() {
				interviewFrom = e.at
			}
			interviewTo = e.at
		}
	}
	if firstApp.IsZero() || firstApp.Before(start) {
		firstApp = start
	}

	rows := []sections.GanttRow{
		{Label: l.T("Profile creation"), Start: start, End: firstApp, Token: palette.Blue},
		{Label: l.T("Receiving candidates"), Start: firstApp, Token: palette.Green},
	}
	if !interviewFrom.IsZero() {
		rows = append(rows, sections.GanttRow{
			Label: l.T("Interview"), Start: interviewFrom, End: interviewTo, Token: palette.Purple,
		})
	}
	return rows
}

// groupEvents groups events by calendar day in time order. Events whose
// time cannot be read are listed last under their raw timestamp.
func groupEvents(l Labels, events []TimelineEvent) []sections.EventGroup {
	var groups []sections.EventGroup
	var lastDay time.Time
	for _, e := range datedEvents(events) {
		y, m, dd := e.at.Date()
		day := time.Date(y, m, dd, 0, 0, 0, 0, e.at.Location())
		if len(groups) == 0 || !day.Equal(lastDay) {
			groups = append(groups, sections.EventGroup{Day: l.Date(day)})
			lastDay = day
		}
		g := &groups[len(groups)-1]
		g.Events = append(g.Events, sections.Event{
			Time:  e.at.Format("15:04"),
			Kind:  e.Type,
			Text:  e.Description,
			Token: eventToken(e.Type),
		})
	}
	var undated []sections.Event
	for _, e := range events {
		if _, ok := parseDate(e.At); !ok {
			undated = append(undated, sections.Event{Time: e.At, Kind: e.Type, Text: e.Description, Token: eventToken(e.Type)})
		}
	}
	if len(undated) > 0 {
		groups = append(groups, sections.EventGroup{Day: l.T("N/A"), Events: undated})
	}
	return groups
}

func (doc *Document) timelineRecipe(t Timeline) Recipe {
	l := doc.labels
	candidates := t.TotalCandidates
	if candidates == 0 {
		candidates = len(t.Candidates)
	}
	events := t.TotalEvents
	if events == 0 {
		events = len(t.Events)
	}
	hours := t.DaysOpen * 24

	return Recipe{
		Kind:     talentpdf.KindTimeline,
		Title:    l.T("Profile Timeline"),
		Subtitle: joinNonEmpty(" · ", t.Position, t.Client),
		Subject:  t.Position,
		Steps: []Step{
			{"banner", func(d *Document) {
				d.r.Banner(t.Position, t.Client)
			}},
			{"kpis", func(d *Document) {
				opened := d.now.Add(-time.Duration(hours) * time.Hour)
				d.r.KPIRow([]sections.KPI{
					{Value: l.Number(t.DaysOpen, 0), Label: l.T("Days open"),
						Sub: l.T("since %s", l.ShortDate(opened)), Accent: palette.Days(&t.DaysOpen).Accent},
					{Value: l.Int(candidates), Label: l.T("Candidates"), Accent: palette.Highlight},
					{Value: l.Percent(t.AvgMatch), Label: l.T("Avg match"), Accent: palette.Score(t.AvgMatch).Accent},
					{Value: l.Int(events), Label: l.T("Events"), Accent: palette.Purple.Accent},
				})
			}},
			{"phases", func(d *Document) {
				d.r.SectionTitle(l.T("Process Phases"), keep)
				rows := phases(l, t, d.now)
				axis := sections.AxisFor(rows, d.now)
				d.r.Gantt(rows, axis)
			}},
			{"candidates", func(d *Document) {
				d.r.SectionTitle(l.T("Candidates"), keep)
				tb := d.r.Table().SetMaxRows(MaxTimelineCandidates).SetColumns(
					table.ColumnDef{Title: l.T("Name")},
					table.ColumnDef{Title: l.T("Email"), Width: 52},
					table.ColumnDef{Title: l.T("Applied"), Width: 24, Align: draw.Right},
					table.ColumnDef{Title: l.T("Status"), Width: 30},
					table.ColumnDef{Title: l.T("Match"), Width: 32},
				)
				for _, c := range t.Candidates {
					row := tb.AddRow()
					row.AddCell(c.Name)
					row.AddCell(c.Email)
					row.AddCell(l.DateString(c.AppliedAt)).SetAlign(draw.Right)
					row.AddStatusCell(c.Status)
					row.AddProgressCell(c.Match)
				}
				d.render(tb)
			}},
			{"efficiency", func(d *Document) {
				d.r.SectionTitle(l.T("Efficiency"), keep)
				eff := sections.Efficiency(hours, BenchmarkHours)
				caption := l.T("%.0f%% faster than the industry benchmark", eff)
				if eff < 0 {
					caption = l.T("%.0f%% slower than the industry benchmark", -eff)
				}
				d.r.Comparison(sections.ComparisonSpec{
					ActualLabel:    l.T("This process"),
					Actual:         hours,
					BenchmarkLabel: l.T("Industry benchmark"),
					Benchmark:      BenchmarkHours,
					Unit:           "h",
					Caption:        caption,
				})
			}},
			{"events", func(d *Document) {
				d.r.SectionTitle(l.T("Event History"), keep)
				d.r.EventList(groupEvents(l, t.Events))
			}},
		},
	}
}
