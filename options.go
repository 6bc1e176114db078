package talentpdf

import (
	"log/slog"
	"time"
)

// Verification selects the machine-readable code stamped on the first page.
type Verification string

const (
	VerifyNone   Verification = "none"
	VerifyQR     Verification = "qr"
	VerifyPDF417 Verification = "pdf417"
)

// Option is a functional option for configuring a report generation.
type Option func(*Settings)

// Settings is the resolved configuration of one generation call.
// Build it with NewSettings; the zero value is not meant to be used directly.
type Settings struct {
	IncludeWatermark bool
	Filename         string
	Locale           string
	Brand            string
	Tagline          string
	Logo             []byte
	WatermarkImage   []byte
	Letterhead       []byte
	Verification     Verification
	VerifyBaseURL    string
	Logger           *slog.Logger
	Now              func() time.Time
}

// WithWatermark enables or disables the translucent watermark pass.
// The watermark is included by default.
func WithWatermark(include bool) Option {
	return func(s *Settings) {
		s.IncludeWatermark = include
	}
}

// WithFilename overrides the generated {Type}_{Subject}_{date}.pdf filename.
func WithFilename(name string) Option {
	return func(s *Settings) {
		s.Filename = name
	}
}

// WithLocale selects the label language: "en" (default) or "es".
func WithLocale(locale string) Option {
	return func(s *Settings) {
		s.Locale = locale
	}
}

// WithBrand sets the brand name printed in the header, footer and text watermark.
func WithBrand(name, tagline string) Option {
	return func(s *Settings) {
		s.Brand = name
		s.Tagline = tagline
	}
}

// WithLogo sets the header logo image (PNG, JPEG, GIF or WebP bytes).
// When it cannot be decoded the brand name is drawn instead.
func WithLogo(img []byte) Option {
	return func(s *Settings) {
		s.Logo = img
	}
}

// WithWatermarkImage sets the watermark source image. Without one the
// brand name is used as a text watermark.
func WithWatermarkImage(img []byte) Option {
	return func(s *Settings) {
		s.WatermarkImage = img
	}
}

// WithLetterhead sets a PDF whose first page is used as background on every page.
func WithLetterhead(pdf []byte) Option {
	return func(s *Settings) {
		s.Letterhead = pdf
	}
}

// WithVerification stamps a QR or PDF417 code carrying the report reference
// on the first page. baseURL, when set, is prefixed to the reference.
func WithVerification(v Verification, baseURL string) Option {
	return func(s *Settings) {
		s.Verification = v
		s.VerifyBaseURL = baseURL
	}
}

// WithLogger sets the structured logger used for recovered failures.
func WithLogger(l *slog.Logger) Option {
	return func(s *Settings) {
		s.Logger = l
	}
}

// WithClock sets the time source for report dates and filenames.
func WithClock(now func() time.Time) Option {
	return func(s *Settings) {
		s.Now = now
	}
}

// NewSettings resolves options over the defaults: watermark on, English
// labels, "Bausen" brand, no verification code.
//
// Example:
//
//	s := talentpdf.NewSettings(
//	    talentpdf.WithWatermark(false),
//	    talentpdf.WithLocale("es"),
//	)
func NewSettings(opts ...Option) *Settings {
	s := &Settings{
		IncludeWatermark: true,
		Locale:           "en",
		Brand:            "Bausen",
		Tagline:          "Talent Management System",
		Verification:     VerifyNone,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	if s.Logger == nil {
		s.Logger = slog.Default()
	}
	if s.Now == nil {
		s.Now = time.Now
	}
	if s.Locale != "es" {
		s.Locale = "en"
	}
	return s
}
