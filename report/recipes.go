package report

import (
	"sort"
	"strings"

	talentpdf "github.com/Leo-HM-04/FrontEnd-Reclutamiento-sub002"
	"github.com/Leo-HM-04/FrontEnd-Reclutamiento-sub002/draw"
	"github.com/Leo-HM-04/FrontEnd-Reclutamiento-sub002/palette"
	"github.com/Leo-HM-04/FrontEnd-Reclutamiento-sub002/sections"
	"github.com/Leo-HM-04/FrontEnd-Reclutamiento-sub002/table"
)

// keep is how much of the following content a section title stays with.
const keep = 20.0

// Row caps of the recipe tables and card lists. Hidden entries are counted
// in a "+N more" line.
const (
	MaxApplications       = 6
	MaxEvaluations        = 5
	MaxDocuments          = 5
	MaxNotes              = 4
	MaxProfileCandidates  = 20
	MaxClientProfiles     = 8
	MaxProfiles           = 8
	MaxClients            = 5
	MaxTimelineCandidates = 20
)

// TopCandidates caps the candidates table of the consolidated report.
const TopCandidates = 15

func joinNonEmpty(sep string, parts ...string) string {
	out := parts[:0:0]
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, sep)
}

// average returns the mean of vs and whether there was any value.
func average(vs []float64) (float64, bool) {
	if len(vs) == 0 {
		return 0, false
	}
	sum := 0.0
	for _, v := range vs {
		sum += v
	}
	return sum / float64(len(vs)), true
}

func maxOf(vs []float64) float64 {
	m := 0.0
	for _, v := range vs {
		if v > m {
			m = v
		}
	}
	return m
}

// statusCounts turns a status map into breakdown bars.
func statusCounts(m map[string]int) []sections.Count {
	var out []sections.Count
	for _, sc := range sortedCounts(m) {
		out = append(out, sections.Count{Label: sc.Status, N: sc.N, Token: palette.Status.Classify(sc.Status)})
	}
	return out
}

// tally counts the statuses of a list, merging spellings that differ only
// in case.
func tally(statuses []string) map[string]int {
	out := map[string]int{}
	seen := map[string]string{}
	for _, s := range statuses {
		if s == "" {
			continue
		}
		k := strings.ToLower(s)
		if first, ok := seen[k]; ok {
			s = first
		} else {
			seen[k] = s
		}
		out[s]++
	}
	return out
}

func (doc *Document) candidateRecipe(c Candidate) Recipe {
	l := doc.labels
	var matches []float64
	for _, a := range c.Applications {
		if a.Match != nil {
			matches = append(matches, *a.Match)
		}
	}

	return Recipe{
		Kind:     talentpdf.KindCandidate,
		Title:    l.T("Candidate Report"),
		Subtitle: c.Name,
		Subject:  c.Name,
		Steps: []Step{
			{"banner", func(d *Document) {
				var years string
				if c.Professional.Years != nil {
					years = l.T("%s years", l.Number(*c.Professional.Years, 0))
				}
				role := c.Professional.Position
				if c.Professional.Company != "" {
					role = joinNonEmpty(" @ ", role, c.Professional.Company)
				}
				d.r.Banner(c.Name, joinNonEmpty(" · ", role, years, c.Professional.Education))
			}},
			{"kpis", func(d *Document) {
				avg := sections.KPI{Label: l.T("Avg match")}
				if v, ok := average(matches); ok {
					avg.Value = l.Percent(v)
					avg.Accent = palette.Score(v).Accent
				}
				d.r.KPIRow([]sections.KPI{
					{Value: l.Int(c.Stats.Applications), Label: l.T("Applications")},
					{Value: l.Int(c.Stats.Documents), Label: l.T("Documents"), Accent: palette.Highlight},
					{Value: l.Int(c.Stats.Evaluations), Label: l.T("Evaluations"), Accent: palette.Purple.Accent},
					avg,
				})
			}},
			{"info", func(d *Document) {
				var exp string
				if c.Professional.Years != nil {
					exp = l.T("%s years", l.Number(*c.Professional.Years, 0))
				}
				d.r.InfoCardPair(
					sections.InfoCardSpec{Title: l.T("Contact"), Rows: []sections.InfoRow{
						{Icon: "@", Label: l.T("Email"), Value: c.Contact.Email},
						{Icon: "T", Label: l.T("Phone"), Value: c.Contact.Phone},
						{Icon: "L", Label: l.T("Location"), Value: joinNonEmpty(", ", c.Contact.City, c.Contact.State)},
					}},
					sections.InfoCardSpec{Title: l.T("Professional"), Accent: palette.Highlight, Rows: []sections.InfoRow{
						{Icon: "E", Label: l.T("Company"), Value: c.Professional.Company},
						{Icon: "P", Label: l.T("Position"), Value: c.Professional.Position},
						{Icon: "G", Label: l.T("Education"), Value: c.Professional.Education},
						{Icon: "U", Label: l.T("University"), Value: c.Professional.University},
						{Icon: "X", Label: l.T("Experience"), Value: exp},
					}},
				)
			}},
			{"skills", func(d *Document) {
				d.r.SectionTitle(l.T("Skills"), keep)
				d.r.BadgeRow(c.Skills, palette.Blue)
			}},
			{"applications", func(d *Document) {
				d.r.SectionTitle(l.T("Applications"), keep)
				t := d.r.Table().SetMaxRows(MaxApplications).SetColumns(
					table.ColumnDef{Title: l.T("Profile")},
					table.ColumnDef{Title: l.T("Client"), Width: 38},
					table.ColumnDef{Title: l.T("Status"), Width: 32},
					table.ColumnDef{Title: l.T("Match"), Width: 34},
					table.ColumnDef{Title: l.T("Date"), Width: 24, Align: draw.Right},
				)
				for _, a := range c.Applications {
					row := t.AddRow()
					row.AddCell(a.Profile)
					row.AddCell(a.Client)
					row.AddStatusCell(a.Status)
					if a.Match != nil {
						row.AddProgressCell(*a.Match)
					} else {
						row.AddCell("")
					}
					row.AddCell(l.DateString(a.Date)).SetAlign(draw.Right)
				}
				d.render(t)
			}},
			{"best-match", func(d *Document) {
				best := -1
				for i, a := range c.Applications {
					if a.Match != nil && (best < 0 || *a.Match > *c.Applications[best].Match) {
						best = i
					}
				}
				if best < 0 {
					return
				}
				a := c.Applications[best]
				d.r.SectionTitle(l.T("Best Match"), keep)
				d.r.MatchBar(joinNonEmpty(" · ", a.Profile, a.Client), *a.Match)
			}},
			{"evaluations", func(d *Document) {
				d.r.SectionTitle(l.T("Evaluations"), keep)
				notes := make([]sections.Note, 0, len(c.Evaluations))
				for _, e := range c.Evaluations {
					var body []string
					if e.Score != nil {
						body = append(body, l.T("Score: %s", l.Number(*e.Score, 0)))
					}
					if e.Passed != nil {
						if *e.Passed {
							body = append(body, l.T("Approved"))
						} else {
							body = append(body, l.T("Not approved"))
						}
					}
					tok := palette.Status.Classify(e.Status)
					notes = append(notes, sections.Note{
						Title: e.Template,
						Meta:  joinNonEmpty(" · ", e.Category, dateOrEmpty(l, e.Date)),
						Body:  joinNonEmpty(" · ", body...),
						Badge: &tok,
					})
				}
				d.r.NoteCards(notes, MaxEvaluations)
			}},
			{"documents", func(d *Document) {
				d.r.SectionTitle(l.T("Documents"), keep)
				t := d.r.Table().SetMaxRows(MaxDocuments).SetColumns(
					table.ColumnDef{Title: l.T("Name")},
					table.ColumnDef{Title: l.T("Type"), Width: 45},
					table.ColumnDef{Title: l.T("Date"), Width: 28, Align: draw.Right},
				)
				for _, f := range c.Documents {
					row := t.AddRow()
					row.AddCell(f.Name)
					row.AddBadgeCell(f.Type, palette.Indigo)
					row.AddCell(l.DateString(f.Date)).SetAlign(draw.Right)
				}
				d.render(t)
			}},
			{"notes", func(d *Document) {
				d.r.SectionTitle(l.T("Internal Notes"), keep)
				notes := make([]sections.Note, 0, len(c.Notes))
				for _, n := range c.Notes {
					notes = append(notes, sections.Note{
						Title: n.Type,
						Meta:  joinNonEmpty(" · ", n.Author, dateOrEmpty(l, n.Date)),
						Body:  n.Content,
					})
				}
				d.r.NoteCards(notes, MaxNotes)
			}},
		},
	}
}

func dateOrEmpty(l Labels, s string) string {
	if s == "" {
		return ""
	}
	return l.DateString(s)
}

// render draws a table and logs the error of a misused cursor.
func (doc *Document) render(t *table.Table) {
	if err := t.Render(); err != nil {
		doc.log.Warn("report: table", "err", err)
	}
}

func (doc *Document) profileRecipe(p ProfileCandidates) Recipe {
	l := doc.labels
	cands := append([]ProfileCandidate(nil), p.Candidates...)
	sort.SliceStable(cands, func(i, j int) bool { return cands[i].Match > cands[j].Match })

	var matches []float64
	var statuses []string
	advanced := 0
	for _, c := range cands {
		matches = append(matches, c.Match)
		statuses = append(statuses, c.Status)
		switch palette.Status.Classify(c.Status).Key {
		case "offered", "positive":
			advanced++
		}
	}

	return Recipe{
		Kind:     talentpdf.KindCandidatesByProfile,
		Title:    l.T("Candidates by Profile"),
		Subtitle: joinNonEmpty(" · ", p.Position, p.Client),
		Subject:  p.Position,
		Steps: []Step{
			{"info", func(d *Document) {
				d.r.InfoCardPair(
					sections.InfoCardSpec{Title: l.T("Profile"), Rows: []sections.InfoRow{
						{Icon: "P", Label: l.T("Position"), Value: p.Position},
						{Icon: "D", Label: l.T("Date"), Value: dateOrEmpty(l, p.Date)},
					}},
					sections.InfoCardSpec{Title: l.T("Client"), Accent: palette.Highlight, Rows: []sections.InfoRow{
						{Icon: "E", Label: l.T("Company"), Value: p.Client},
						{Icon: "#", Label: l.T("Candidates"), Value: l.Int(len(cands))},
					}},
				)
			}},
			{"kpis", func(d *Document) {
				avg := sections.KPI{Label: l.T("Avg match")}
				top := sections.KPI{Label: l.T("Top match")}
				if v, ok := average(matches); ok {
					avg.Value, avg.Accent = l.Percent(v), palette.Score(v).Accent
					m := maxOf(matches)
					top.Value, top.Accent = l.Percent(m), palette.Score(m).Accent
				}
				d.r.KPIRow([]sections.KPI{
					{Value: l.Int(len(cands)), Label: l.T("Total")},
					avg,
					top,
					{Value: l.Int(advanced), Label: l.T("Offers / hired"), Accent: palette.Orange.Accent},
				})
			}},
			{"distribution", func(d *Document) {
				d.r.SectionTitle(l.T("Match Distribution"), keep)
				scores := make([]sections.Score, 0, len(cands))
				for _, c := range cands {
					scores = append(scores, sections.Score{Label: c.Name, Value: c.Match})
				}
				d.r.Distribution(scores)
			}},
			{"candidates", func(d *Document) {
				d.r.SectionTitle(l.T("Candidates"), keep)
				t := d.r.Table().SetMaxRows(MaxProfileCandidates).SetColumns(
					table.ColumnDef{Title: "#", Width: 9, Align: draw.Center},
					table.ColumnDef{Title: l.T("Name")},
					table.ColumnDef{Title: l.T("Email"), Width: 58},
					table.ColumnDef{Title: l.T("Status"), Width: 32},
					table.ColumnDef{Title: l.T("Match"), Width: 34},
				)
				for i, c := range cands {
					row := t.AddRow()
					row.AddCellf("%d", i+1).SetAlign(draw.Center)
					row.AddCell(c.Name)
					row.AddCell(c.Email)
					row.AddStatusCell(c.Status)
					row.AddProgressCell(c.Match)
				}
				d.render(t)
			}},
			{"status", func(d *Document) {
				d.r.SectionTitle(l.T("Candidates by Status"), keep)
				d.r.StatusBreakdown(statusCounts(tally(statuses)))
			}},
		},
	}
}

func (doc *Document) clientRecipe(c Client) Recipe {
	l := doc.labels
	st := c.Stats
	return Recipe{
		Kind:     talentpdf.KindClient,
		Title:    l.T("Client Report"),
		Subtitle: joinNonEmpty(" · ", c.Info.CompanyName, c.Info.Industry),
		Subject:  c.Info.CompanyName,
		Steps: []Step{
			{"info", func(d *Document) {
				d.r.InfoCardPair(
					sections.InfoCardSpec{Title: l.T("Company"), Rows: []sections.InfoRow{
						{Icon: "E", Label: l.T("Company"), Value: c.Info.CompanyName},
						{Icon: "I", Label: l.T("Industry"), Value: c.Info.Industry},
						{Icon: "W", Label: l.T("Website"), Value: c.Info.Website},
						{Icon: "L", Label: l.T("Address"), Value: joinNonEmpty(", ", c.Info.Address, c.Info.City, c.Info.State)},
					}},
					sections.InfoCardSpec{Title: l.T("Contact"), Accent: palette.Highlight, Rows: []sections.InfoRow{
						{Icon: "N", Label: l.T("Name"), Value: c.Info.ContactName},
						{Icon: "@", Label: l.T("Email"), Value: c.Info.ContactEmail},
						{Icon: "T", Label: l.T("Phone"), Value: c.Info.ContactPhone},
					}},
				)
			}},
			{"kpis", func(d *Document) {
				days := palette.Days(st.AvgDaysToComplete)
				daysValue := ""
				if st.AvgDaysToComplete != nil {
					daysValue = l.Number(*st.AvgDaysToComplete, 0)
				}
				d.r.KPIRow([]sections.KPI{
					{Value: l.Int(st.TotalProfiles), Label: l.T("Total profiles")},
					{Value: l.Int(st.CompletedProfiles), Label: l.T("Completed"), Accent: palette.Blue.Accent},
					{Value: l.Int(st.ActiveProfiles), Label: l.T("Active"), Accent: palette.Green.Accent},
					{Value: l.Percent(st.SuccessRate), Label: l.T("Success rate"), Accent: palette.Score(st.SuccessRate).Accent},
					{Value: daysValue, Label: l.T("Avg days to fill"), Accent: days.Accent},
					{Value: l.Int(st.TotalCandidatesManaged), Label: l.T("Candidates managed"), Accent: palette.Highlight},
				})
			}},
			{"status", func(d *Document) {
				d.r.SectionTitle(l.T("Profiles by Status"), keep)
				d.r.StatusBreakdown(statusCounts(c.ProfilesByStatus))
			}},
			{"profiles", func(d *Document) {
				d.r.SectionTitle(l.T("Profiles"), keep)
				t := d.r.Table().SetMaxRows(MaxClientProfiles).SetColumns(
					table.ColumnDef{Title: l.T("Title")},
					table.ColumnDef{Title: l.T("Status"), Width: 30},
					table.ColumnDef{Title: l.T("Priority"), Width: 22},
					table.ColumnDef{Title: l.T("Candidates"), Width: 22, Align: draw.Center},
					table.ColumnDef{Title: l.T("Created"), Width: 24, Align: draw.Right},
					table.ColumnDef{Title: l.T("End date"), Width: 24, Align: draw.Right},
				)
				for _, p := range c.Profiles {
					row := t.AddRow()
					row.AddCell(p.Title)
					row.AddStatusCell(p.StatusDisplay)
					row.AddBadgeCell("", palette.Priority.Classify(p.Priority))
					row.AddCell(l.Int(p.CandidatesCount)).SetAlign(draw.Center)
					row.AddCell(l.DateString(p.CreatedAt)).SetAlign(draw.Right)
					row.AddCell(dateOrEmpty(l, p.EndDate)).SetAlign(draw.Right)
				}
				d.render(t)
			}},
			{"notes", func(d *Document) {
				if c.Info.Notes == "" {
					return
				}
				d.r.SectionTitle(l.T("Notes"), keep)
				d.r.Paragraph(c.Info.Notes, 9)
			}},
		},
	}
}

// filterDescription describes the scope of a consolidated report.
func filterDescription(l Labels, f *Filter) string {
	if f != nil {
		switch f.Type {
		case "client":
			if f.ClientName != "" {
				return l.T("Client: %s", f.ClientName)
			}
		case "profile":
			if f.ProfileTitle != "" {
				return l.T("Profile: %s", f.ProfileTitle)
			}
		}
	}
	return l.T("All clients and profiles")
}

// profileRows places every profile on a lifetime axis. Finished profiles
// end days_open after creation; the others are still running.
func profileRows(profiles []ProfileRecord) []sections.GanttRow {
	var rows []sections.GanttRow
	for _, p := range profiles {
		start, ok := parseDate(p.CreatedAt)
		if !ok {
			continue
		}
		tok := palette.Status.Classify(p.Status)
		row := sections.GanttRow{Label: p.PositionTitle, Start: start, Token: tok, Note: p.Status}
		switch tok.Key {
		case "closed", "rejected", "positive":
			row.End = start.AddDate(0, 0, p.DaysOpen)
		}
		rows = append(rows, row)
	}
	return rows
}

func (doc *Document) consolidatedRecipe(c Consolidated) Recipe {
	l := doc.labels
	s := c.Summary
	scope := filterDescription(l, c.Filter)
	subject := "All"
	if c.Filter != nil {
		subject = joinNonEmpty("-", c.Filter.ClientName, c.Filter.ProfileTitle)
		if subject == "" {
			subject = "All"
		}
	}

	cands := append([]CandidateRecord(nil), c.Candidates...)
	sort.SliceStable(cands, func(i, j int) bool { return cands[i].MatchingScore > cands[j].MatchingScore })

	return Recipe{
		Kind:     talentpdf.KindConsolidated,
		Title:    l.T("Consolidated Report"),
		Subtitle: scope,
		Subject:  subject,
		Steps: []Step{
			{"kpis", func(d *Document) {
				fill := s.AvgTimeToFill
				d.r.KPIRow([]sections.KPI{
					{Value: l.Int(s.TotalProfiles), Label: l.T("Profiles")},
					{Value: l.Int(s.TotalCandidates), Label: l.T("Candidates"), Accent: palette.Highlight},
					{Value: l.Int(s.TotalClients), Label: l.T("Clients"), Accent: palette.Purple.Accent},
					{Value: l.Int(s.CandidatesHired), Label: l.T("Hired"), Accent: palette.Green.Accent},
					{Value: l.Number(fill, 0), Label: l.T("Avg days to fill"), Accent: palette.Days(&fill).Accent},
					{Value: l.Percent(s.SuccessRate), Label: l.T("Success rate"), Accent: palette.Score(s.SuccessRate).Accent},
				})
			}},
			{"profiles-by-status", func(d *Document) {
				d.r.SectionTitle(l.T("Profiles by Status"), keep)
				d.r.StatusBreakdown(statusCounts(s.ProfilesByStatus))
			}},
			{"candidates-by-status", func(d *Document) {
				d.r.SectionTitle(l.T("Candidates by Status"), keep)
				d.r.StatusBreakdown(statusCounts(s.CandidatesByStatus))
			}},
			{"profiles", func(d *Document) {
				d.r.SectionTitle(l.T("Profiles"), keep)
				t := d.r.Table().SetMaxRows(MaxProfiles).SetColumns(
					table.ColumnDef{Title: l.T("Position")},
					table.ColumnDef{Title: l.T("Client"), Width: 34},
					table.ColumnDef{Title: l.T("Status"), Width: 28},
					table.ColumnDef{Title: l.T("Priority"), Width: 20},
					table.ColumnDef{Title: l.T("Salary"), Width: 40, Align: draw.Right},
					table.ColumnDef{Title: l.T("Days open"), Width: 18, Align: draw.Center},
				)
				for _, p := range c.Profiles {
					row := t.AddRow()
					row.AddCell(p.PositionTitle)
					row.AddCell(p.ClientName)
					row.AddStatusCell(p.Status)
					row.AddBadgeCell("", palette.Priority.Classify(p.Priority))
					row.AddCell(l.SalaryRange(p.SalaryMin, p.SalaryMax)).SetAlign(draw.Right)
					row.AddCell(l.Int(p.DaysOpen)).SetAlign(draw.Center)
				}
				d.render(t)
			}},
			{"clients", func(d *Document) {
				d.r.SectionTitle(l.T("Clients"), keep)
				t := d.r.Table().SetMaxRows(MaxClients).SetColumns(
					table.ColumnDef{Title: l.T("Company")},
					table.ColumnDef{Title: l.T("Industry"), Width: 36},
					table.ColumnDef{Title: l.T("Active"), Width: 18, Align: draw.Center},
					table.ColumnDef{Title: l.T("Total"), Width: 18, Align: draw.Center},
					table.ColumnDef{Title: l.T("Hired"), Width: 20, Align: draw.Center},
					table.ColumnDef{Title: l.T("Success rate"), Width: 34},
				)
				for _, cl := range c.Clients {
					row := t.AddRow()
					row.AddCell(cl.CompanyName)
					row.AddCell(cl.Industry)
					row.AddCell(l.Int(cl.ActiveProfiles)).SetAlign(draw.Center)
					row.AddCell(l.Int(cl.TotalProfiles)).SetAlign(draw.Center)
					row.AddCell(l.Int(cl.TotalCandidatesHired)).SetAlign(draw.Center)
					row.AddProgressCell(cl.SuccessRate)
				}
				d.render(t)
			}},
			{"top-candidates", func(d *Document) {
				d.r.SectionTitle(l.T("Top Candidates"), keep)
				t := d.r.Table().SetMaxRows(TopCandidates).SetColumns(
					table.ColumnDef{Title: l.T("Name")},
					table.ColumnDef{Title: l.T("Profile"), Width: 44},
					table.ColumnDef{Title: l.T("Client"), Width: 34},
					table.ColumnDef{Title: l.T("Status"), Width: 28},
					table.ColumnDef{Title: l.T("Match"), Width: 32},
				)
				for _, cd := range cands {
					row := t.AddRow()
					row.AddCell(cd.FullName)
					row.AddCell(cd.ProfileTitle)
					row.AddCell(cd.ClientName)
					row.AddStatusCell(cd.Status)
					row.AddProgressCell(cd.MatchingScore)
				}
				d.render(t)
			}},
			{"lifetime", func(d *Document) {
				d.r.SectionTitle(l.T("Profile Lifetime"), keep)
				rows := profileRows(c.Profiles)
				d.r.Gantt(rows, sections.AxisFor(rows, d.now))
			}},
		},
	}
}
