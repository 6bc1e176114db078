package sanitize

import (
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// hasMojibake reports whether s carries the UTF-8-read-as-Windows-1252
// signature: a lead byte rendered as Ã or Â followed by a continuation byte
// (0x80-0xBF) rendered in Windows-1252.
func hasMojibake(s string) bool {
	prevLead := false
	for _, r := range s {
		if prevLead && isContinuationGlyph(r) {
			return true
		}
		prevLead = r == 'Ã' || r == 'Â'
	}
	return false
}

func isContinuationGlyph(r rune) bool {
	b, ok := charmap.Windows1252.EncodeRune(r)
	return ok && b >= 0x80 && b <= 0xBF
}

// repairMojibake re-encodes the text as Windows-1252 and reads the bytes back
// as UTF-8. The result is kept only if it is valid UTF-8 and did not shrink
// below the configured ratio of the input length.
func (s *Sanitizer) repairMojibake(in string) string {
	if !hasMojibake(in) {
		return in
	}
	raw, err := charmap.Windows1252.NewEncoder().String(in)
	if err != nil {
		s.log.Debug("sanitize: mojibake repair skipped", "err", err)
		return in
	}
	if !utf8.ValidString(raw) {
		s.log.Debug("sanitize: mojibake repair rejected", "reason", "invalid utf-8")
		return in
	}
	before := utf8.RuneCountInString(in)
	after := utf8.RuneCountInString(raw)
	if float64(after) < s.shrink*float64(before) {
		s.log.Debug("sanitize: mojibake repair rejected", "reason", "shrink", "before", before, "after", after)
		return in
	}
	return raw
}

// accentTargets are the characters whose UTF-8 bytes, displayed through an
// OEM code page, produce the artifacts the legacy table repairs.
const accentTargets = "áéíóúñÁÉÍÓÚÑüÜ"

// defaultTable maps legacy artifacts to accented characters. It combines
// entries seen in production data with the renderings of accentTargets
// through code pages 437 and 850.
func defaultTable() map[string]string {
	t := map[string]string{
		"├í": "á",
		"├®": "é",
		"├¡": "í",
		"├│": "ó",
		"├ó": "ó",
		"├║": "ú",
		"├ú": "ú",
		"├▒": "ñ",
		"├ñ": "ñ",
		"├ü": "Á",
		"├ë": "É",
		"├ì": "Í",
		"├ô": "Ó",
		"├Ü": "Ú",
		"├Ñ": "Ñ",
	}
	for _, cm := range []*charmap.Charmap{charmap.CodePage437, charmap.CodePage850} {
		dec := cm.NewDecoder()
		for _, target := range accentTargets {
			buf := make([]byte, utf8.RuneLen(target))
			utf8.EncodeRune(buf, target)
			artifact, err := dec.Bytes(buf)
			if err != nil || len(artifact) == 0 {
				continue
			}
			key := string(artifact)
			if _, exists := t[key]; !exists && key != string(target) {
				t[key] = string(target)
			}
		}
	}
	return t
}
