// Package doctpl describes ad-hoc reports as JSON templates and renders them
// through the report engine, so they share the header, pagination, footer
// and watermark of the built-in report kinds.
//
// A template is an ordered list of blocks. It is easy for both people and
// tools to generate:
//
//	{
//	  "title": "Pipeline semanal",
//	  "subtitle": "Bausen · Semana 10",
//	  "blocks": [
//	    {"type": "kpis", "kpis": [{"value": "12", "label": "Perfiles"}]},
//	    {"type": "heading", "text": "Resumen"},
//	    {"type": "paragraph", "text": "Se abrieron tres perfiles nuevos."}
//	  ]
//	}
package doctpl

// Template is the top-level description of an ad-hoc report.
type Template struct {
	Title    string  `json:"title"`
	Subtitle string  `json:"subtitle,omitempty"`
	Subject  string  `json:"subject,omitempty"` // filename subject, defaults to Title
	Locale   string  `json:"locale,omitempty"`  // en or es; overrides the caller option
	Filename string  `json:"filename,omitempty"`
	Blocks   []Block `json:"blocks"`
}

// Block types.
const (
	TypeHeading      = "heading"
	TypeBanner       = "banner"
	TypeParagraph    = "paragraph"
	TypeKPIs         = "kpis"
	TypeCard         = "card"
	TypeTable        = "table"
	TypeList         = "list"
	TypeBadges       = "badges"
	TypeDistribution = "distribution"
	TypeStatus       = "status"
	TypeMatch        = "match"
	TypeImage        = "image"
	TypeSpacer       = "spacer"
	TypeHR           = "hr"
)

// Block is one section of a template. Type selects which other fields are
// read.
type Block struct {
	Type string `json:"type"`

	// heading, banner, paragraph, match
	Text     string  `json:"text,omitempty"`
	Subtitle string  `json:"subtitle,omitempty"`
	Size     float64 `json:"size,omitempty"` // paragraph font size

	// kpis
	KPIs []KPI `json:"kpis,omitempty"`

	// card; Right makes a side-by-side pair
	Card  *Card `json:"card,omitempty"`
	Right *Card `json:"right,omitempty"`

	// table
	Columns []Column   `json:"columns,omitempty"`
	Rows    [][]string `json:"rows,omitempty"`
	Empty   string     `json:"empty,omitempty"`

	// list, badges
	Items   []string `json:"items,omitempty"`
	Ordered bool     `json:"ordered,omitempty"`
	Color   string   `json:"color,omitempty"` // tone name: green, amber, red, blue...

	// distribution
	Scores []Score `json:"scores,omitempty"`

	// status
	Counts []Count `json:"counts,omitempty"`

	// match
	Value float64 `json:"value,omitempty"`

	// image: base64 PNG, JPEG, GIF or WebP
	Data   string  `json:"data,omitempty"`
	Width  float64 `json:"width,omitempty"`
	Height float64 `json:"height,omitempty"`

	// spacer
	Gap float64 `json:"gap,omitempty"`
}

// KPI is one metric card of a kpis block.
type KPI struct {
	Value string `json:"value"`
	Label string `json:"label"`
	Sub   string `json:"sub,omitempty"`
	Color string `json:"color,omitempty"`
}

// Card is a titled list of label/value rows.
type Card struct {
	Title string    `json:"title"`
	Color string    `json:"color,omitempty"`
	Rows  []CardRow `json:"rows"`
}

// CardRow is one line of a card.
type CardRow struct {
	Icon  string `json:"icon,omitempty"`
	Label string `json:"label"`
	Value string `json:"value"`
}

// Column kinds of a table block.
const (
	ColumnText     = "text"
	ColumnStatus   = "status"
	ColumnPriority = "priority"
	ColumnProgress = "progress"
)

// Column defines one table column. Kind controls how its cells are drawn.
type Column struct {
	Header string  `json:"header"`
	Width  float64 `json:"width,omitempty"` // 0 = share the remaining width
	Align  string  `json:"align,omitempty"` // L, C, R
	Kind   string  `json:"kind,omitempty"`
}

// Score is one bar of a distribution block.
type Score struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// Count is one bar of a status block.
type Count struct {
	Label string `json:"label"`
	N     int    `json:"n"`
}
