package doctpl

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"hash/crc32"
	"strconv"
	"strings"

	talentpdf "github.com/Leo-HM-04/FrontEnd-Reclutamiento-sub002"
	"github.com/Leo-HM-04/FrontEnd-Reclutamiento-sub002/canvas"
	"github.com/Leo-HM-04/FrontEnd-Reclutamiento-sub002/draw"
	"github.com/Leo-HM-04/FrontEnd-Reclutamiento-sub002/palette"
	"github.com/Leo-HM-04/FrontEnd-Reclutamiento-sub002/report"
	"github.com/Leo-HM-04/FrontEnd-Reclutamiento-sub002/sections"
	"github.com/Leo-HM-04/FrontEnd-Reclutamiento-sub002/table"
)

// Render parses a JSON template and renders it to PDF.
func Render(jsonTemplate []byte, opts ...talentpdf.Option) (*report.Artifact, error) {
	var tpl Template
	if err := json.Unmarshal(jsonTemplate, &tpl); err != nil {
		return nil, fmt.Errorf("doctpl: parsing template: %w: %v", talentpdf.ErrInvalidPayload, err)
	}
	return RenderTemplate(&tpl, opts...)
}

// RenderTemplate renders a Template to PDF.
func RenderTemplate(tpl *Template, opts ...talentpdf.Option) (*report.Artifact, error) {
	return RenderOn(canvas.NewPDF(), tpl, opts...)
}

// RenderOn renders a Template onto c.
func RenderOn(c canvas.Canvas, tpl *Template, opts ...talentpdf.Option) (*report.Artifact, error) {
	if err := Validate(tpl); err != nil {
		return nil, err
	}
	if tpl.Locale != "" {
		opts = append(opts, talentpdf.WithLocale(tpl.Locale))
	}
	if tpl.Filename != "" {
		opts = append(opts, talentpdf.WithFilename(tpl.Filename))
	}
	doc := report.NewDocument(c, opts...)
	clean := doc.Sanitizer().Clean

	subject := tpl.Subject
	if subject == "" {
		subject = tpl.Title
	}
	rec := report.Recipe{
		Kind:     talentpdf.KindTemplate,
		Title:    clean(tpl.Title),
		Subtitle: clean(tpl.Subtitle),
		Subject:  clean(subject),
	}
	for i, b := range tpl.Blocks {
		rec.Steps = append(rec.Steps, report.Step{
			Name: fmt.Sprintf("%s#%d", b.Type, i+1),
			Draw: blockStep(b),
		})
	}
	return doc.Run(rec)
}

// Validate checks block types and image data before anything is drawn.
func Validate(tpl *Template) error {
	if tpl == nil {
		return fmt.Errorf("doctpl: %w: nil template", talentpdf.ErrInvalidPayload)
	}
	for i, b := range tpl.Blocks {
		switch b.Type {
		case TypeHeading, TypeBanner, TypeParagraph, TypeKPIs, TypeTable, TypeList,
			TypeBadges, TypeDistribution, TypeStatus, TypeMatch, TypeSpacer, TypeHR:
		case TypeCard:
			if b.Card == nil {
				return fmt.Errorf("doctpl: block %d: %w: card block requires 'card'", i+1, talentpdf.ErrInvalidPayload)
			}
		case TypeImage:
			if _, err := base64.StdEncoding.DecodeString(b.Data); err != nil || b.Data == "" {
				return fmt.Errorf("doctpl: block %d: %w: image block requires base64 'data'", i+1, talentpdf.ErrInvalidPayload)
			}
		default:
			return fmt.Errorf("doctpl: block %d: %w: unknown block type %q", i+1, talentpdf.ErrInvalidPayload, b.Type)
		}
	}
	return nil
}

var tones = map[string]palette.Token{
	"green":  palette.Green,
	"amber":  palette.Amber,
	"red":    palette.Red,
	"indigo": palette.Indigo,
	"blue":   palette.Blue,
	"purple": palette.Purple,
	"orange": palette.Orange,
	"gray":   palette.Gray,
}

func tone(name string, def palette.Token) palette.Token {
	if t, ok := tones[strings.ToLower(strings.TrimSpace(name))]; ok {
		return t
	}
	return def
}

// accent returns the accent of a named tone, or the zero color so that the
// renderer picks its default.
func accent(name string) canvas.Color {
	if t, ok := tones[strings.ToLower(strings.TrimSpace(name))]; ok {
		return t.Accent
	}
	return canvas.Color{}
}

func parseAlign(s string) draw.Align {
	switch strings.ToUpper(s) {
	case "C":
		return draw.Center
	case "R":
		return draw.Right
	}
	return draw.Left
}

func blockStep(b Block) func(d *report.Document) {
	return func(d *report.Document) {
		r := d.Sections()
		clean := d.Sanitizer().Clean

		switch b.Type {
		case TypeHeading:
			r.SectionTitle(clean(b.Text), 20)
		case TypeBanner:
			r.Banner(clean(b.Text), clean(b.Subtitle))
		case TypeParagraph:
			r.Paragraph(clean(b.Text), b.Size)
			r.Gap(2)
		case TypeKPIs:
			items := make([]sections.KPI, 0, len(b.KPIs))
			for _, k := range b.KPIs {
				items = append(items, sections.KPI{
					Value: clean(k.Value), Label: clean(k.Label), Sub: clean(k.Sub), Accent: accent(k.Color),
				})
			}
			r.KPIRow(items)
		case TypeCard:
			left := card(clean, *b.Card)
			if b.Right != nil {
				r.InfoCardPair(left, card(clean, *b.Right))
			} else {
				r.InfoCard(left)
			}
		case TypeTable:
			renderTable(d, b)
		case TypeList:
			renderList(d, b)
		case TypeBadges:
			items := make([]string, 0, len(b.Items))
			for _, it := range b.Items {
				if it = clean(it); it != "" {
					items = append(items, it)
				}
			}
			r.BadgeRow(items, tone(b.Color, palette.Blue))
		case TypeDistribution:
			scores := make([]sections.Score, 0, len(b.Scores))
			for _, s := range b.Scores {
				scores = append(scores, sections.Score{Label: clean(s.Label), Value: s.Value})
			}
			r.Distribution(scores)
		case TypeStatus:
			counts := make([]sections.Count, 0, len(b.Counts))
			for _, c := range b.Counts {
				label := clean(c.Label)
				counts = append(counts, sections.Count{Label: label, N: c.N, Token: palette.Status.Classify(label)})
			}
			r.StatusBreakdown(counts)
		case TypeMatch:
			r.MatchBar(clean(b.Text), b.Value)
		case TypeImage:
			renderImage(d, b)
		case TypeSpacer:
			gap := b.Gap
			if gap <= 0 {
				gap = 6
			}
			r.Gap(gap)
		case TypeHR:
			r.Cursor().Place(6, func(x, y, w float64) {
				r.Drawer().Rule(x, y+3, x+w, palette.Border, 0.3)
			})
		}
	}
}

func card(clean func(string) string, c Card) sections.InfoCardSpec {
	spec := sections.InfoCardSpec{Title: clean(c.Title), Accent: accent(c.Color)}
	for _, row := range c.Rows {
		spec.Rows = append(spec.Rows, sections.InfoRow{
			Icon: clean(row.Icon), Label: clean(row.Label), Value: clean(row.Value),
		})
	}
	return spec
}

func renderTable(d *report.Document, b Block) {
	r := d.Sections()
	clean := d.Sanitizer().Clean

	cols := make([]table.ColumnDef, len(b.Columns))
	for i, c := range b.Columns {
		cols[i] = table.ColumnDef{Title: clean(c.Header), Width: c.Width, Align: parseAlign(c.Align)}
	}
	t := r.Table().SetColumns(cols...)
	if b.Empty != "" {
		t.SetEmptyMessage(clean(b.Empty))
	}
	for _, cells := range b.Rows {
		row := t.AddRow()
		for i, v := range cells {
			v = clean(v)
			kind := ColumnText
			if i < len(b.Columns) {
				kind = b.Columns[i].Kind
			}
			switch kind {
			case ColumnStatus:
				row.AddStatusCell(v)
			case ColumnPriority:
				row.AddBadgeCell(v, palette.Priority.Classify(v))
			case ColumnProgress:
				pct, err := strconv.ParseFloat(strings.TrimSuffix(strings.TrimSpace(v), "%"), 64)
				if err != nil {
					row.AddCell(v)
					continue
				}
				row.AddProgressCell(pct)
			default:
				row.AddCell(v)
			}
		}
	}
	if err := t.Render(); err != nil {
		r.Drawer().Logger().Warn("doctpl: table render", "err", err)
	}
}

const listSize = 9.0

func renderList(d *report.Document, b Block) {
	r := d.Sections()
	cur := r.Cursor()
	m := r.Drawer().Measure()
	clean := d.Sanitizer().Clean
	lead := listSize * 0.5

	if len(b.Items) == 0 {
		r.Empty("")
		return
	}
	for i, item := range b.Items {
		prefix := "•"
		if b.Ordered {
			prefix = fmt.Sprintf("%d.", i+1)
		}
		lines := m.Wrap(clean(item), cur.Width()-8, listSize)
		if len(lines) == 0 {
			lines = []string{r.Labels().NotAvailable}
		}
		for j, l := range lines {
			first := j == 0
			cur.Place(lead, func(x, y, w float64) {
				st := draw.TextStyle{Size: listSize, Color: palette.Dark}
				if first {
					r.Drawer().Text(x+2, y+lead*0.75, 0, prefix, st)
				}
				r.Drawer().Text(x+8, y+lead*0.75, 0, l, st)
			})
		}
		cur.Skip(1)
	}
	cur.Skip(2)
}

func renderImage(d *report.Document, b Block) {
	r := d.Sections()
	data, _ := base64.StdEncoding.DecodeString(b.Data)
	img, info, err := canvas.Normalize(data)
	if err != nil {
		r.Drawer().Logger().Warn("doctpl: image skipped", "err", err)
		r.Empty("")
		return
	}
	w, h := b.Width, b.Height
	switch {
	case w <= 0 && h <= 0:
		h = 40
		fallthrough
	case w <= 0:
		if ratio := info.Ratio(); ratio > 0 {
			w = h / ratio
		} else {
			w = h
		}
	case h <= 0:
		h = w * info.Ratio()
	}
	if limit := r.Cursor().Width(); w > limit {
		h, w = h*limit/w, limit
	}
	r.Cursor().Place(h+3, func(x, y, _ float64) {
		if err := r.Drawer().Image(fmt.Sprintf("block-%08x", crc32.ChecksumIEEE(img)), img, x, y, w, h); err != nil {
			r.Drawer().EmptyState(x, y, w, r.Labels().NoData)
		}
	})
}
