// Package pageops runs the passes that touch every page after content is
// laid out: the footer with page numbers, the translucent watermark, and
// operations on whole PDF files (letterhead background, bundling several
// reports into one file).
//
// File-level operations import existing pages as templates through the
// gofpdi contrib package.
package pageops

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/go-pdf/fpdf"
	"github.com/go-pdf/fpdf/contrib/gofpdi"
)

// ErrNoPages is returned for input that has no importable page.
var ErrNoPages = errors.New("pageops: document has no pages")

const ptToMM = 25.4 / 72

// source wraps PDF bytes in the stream handle gofpdi expects. The same
// handle must be reused for every page of one document.
func source(data []byte) *io.ReadSeeker {
	rs := io.ReadSeeker(bytes.NewReader(data))
	return &rs
}

// importPage imports a single page of a PDF stream into the target
// document. It returns the template id and the page size in points.
// gofpdi panics on malformed input; the panic is turned into an error.
func importPage(pdf *fpdf.Fpdf, imp *gofpdi.Importer, rs *io.ReadSeeker, pageNum int) (tplID int, w, h float64, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("pageops: importing page %d: %v", pageNum, r)
		}
	}()
	tplID = imp.ImportPageFromStream(pdf, rs, pageNum, "/MediaBox")
	if dims, ok := imp.GetPageSizes()[pageNum]; ok {
		if mb, ok := dims["/MediaBox"]; ok {
			w = mb["w"]
			h = mb["h"]
		}
	}
	if pdf.Err() {
		return 0, 0, 0, fmt.Errorf("pageops: importing page %d: %w", pageNum, pdf.Error())
	}
	return tplID, w, h, nil
}

// PageCount returns the number of pages of a PDF.
func PageCount(data []byte) (n int, err error) {
	if len(data) == 0 {
		return 0, ErrNoPages
	}
	defer func() {
		if r := recover(); r != nil {
			n, err = 0, fmt.Errorf("pageops: reading page count: %v", r)
		}
	}()
	scratch := fpdf.New("P", "pt", "Letter", "")
	imp := gofpdi.NewImporter()
	if _, _, _, err := importPage(scratch, imp, source(data), 1); err != nil {
		return 0, err
	}
	n = len(imp.GetPageSizes())
	if n == 0 {
		return 0, ErrNoPages
	}
	return n, nil
}
