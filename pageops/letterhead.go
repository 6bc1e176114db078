package pageops

import (
	"fmt"

	"github.com/go-pdf/fpdf/contrib/gofpdi"

	"github.com/Leo-HM-04/FrontEnd-Reclutamiento-sub002/canvas"
)

// Letterhead places the first page of a stationery PDF behind the content
// of every page of doc. It must be installed before the first page is
// added; pages created afterwards get the background before anything else
// is drawn on them.
func Letterhead(doc *canvas.PDF, stationery []byte) error {
	if len(stationery) == 0 {
		return fmt.Errorf("pageops: letterhead: %w", ErrNoPages)
	}
	f := doc.Fpdf()
	imp := gofpdi.NewImporter()
	tplID, _, _, err := importPage(f, imp, source(stationery), 1)
	if err != nil {
		return fmt.Errorf("pageops: letterhead: %w", err)
	}
	doc.OnPageAdded(func() {
		w, h := f.GetPageSize()
		imp.UseImportedTemplate(f, tplID, 0, 0, w, h)
	})
	return nil
}
