package pageops

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-pdf/fpdf"
	"github.com/go-pdf/fpdf/contrib/gofpdi"
)

// Letter size in points, used when an imported page reports no MediaBox.
const (
	letterWidthPt  = 612.0
	letterHeightPt = 792.0
)

// Bundle concatenates rendered reports into one PDF written to w. Pages
// keep their original size and order: every page of the first document,
// then the second, and so on.
func Bundle(w io.Writer, docs ...[]byte) error {
	if len(docs) == 0 {
		return errors.New("pageops: nothing to bundle")
	}
	pdf := fpdf.New("P", "pt", "Letter", "")
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetCreator("talentpdf", true)

	for i, doc := range docs {
		if err := appendDoc(pdf, doc); err != nil {
			return fmt.Errorf("pageops: bundling document %d: %w", i+1, err)
		}
	}
	if pdf.Err() {
		return fmt.Errorf("pageops: bundling: %w", pdf.Error())
	}
	return pdf.Output(w)
}

// BundleFiles bundles PDF files from disk into outputPath.
func BundleFiles(outputPath string, inputPaths ...string) error {
	docs := make([][]byte, 0, len(inputPaths))
	for _, p := range inputPaths {
		data, err := os.ReadFile(p)
		if err != nil {
			return fmt.Errorf("pageops: reading %s: %w", p, err)
		}
		docs = append(docs, data)
	}
	f, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("pageops: creating %s: %w", outputPath, err)
	}
	if err := Bundle(f, docs...); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// appendDoc imports all pages of one PDF into the target document.
func appendDoc(pdf *fpdf.Fpdf, data []byte) error {
	n, err := PageCount(data)
	if err != nil {
		return err
	}
	imp := gofpdi.NewImporter()
	rs := source(data)
	for i := 1; i <= n; i++ {
		tplID, w, h, err := importPage(pdf, imp, rs, i)
		if err != nil {
			return err
		}
		if w == 0 || h == 0 {
			w, h = letterWidthPt, letterHeightPt
		}
		pdf.AddPageFormat("P", fpdf.SizeType{Wd: w, Ht: h})
		imp.UseImportedTemplate(pdf, tplID, 0, 0, w, h)
	}
	return nil
}
