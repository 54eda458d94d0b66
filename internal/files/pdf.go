package files

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-pdf/fpdf"
	"github.com/pkg/errors"
)

// CreatePDF writes book as an A4 pdf with a title page and one page break per chapter.
func CreatePDF(book Book, pdfPath string) error {
	err := os.MkdirAll(filepath.Dir(pdfPath), os.ModePerm)
	if err != nil {
		return err
	}

	pdf := fpdf.New(fpdf.OrientationPortrait, fpdf.UnitMillimeter, "A4", "")
	pdf.SetTitle(book.Title, true)
	pdf.SetAuthor(strings.Join(book.Authors, ", "), true)
	pdf.SetMargins(20, 20, 20)
	pdf.SetAutoPageBreak(true, 20)

	// core fonts only cover cp1252
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pageWidth, _ := pdf.GetPageSize()
	left, _, right, _ := pdf.GetMargins()
	textWidth := pageWidth - left - right

	pdf.AddPage()
	if len(book.Cover) > 0 {
		opts := fpdf.ImageOptions{ImageType: "PNG"}
		info := pdf.RegisterImageOptionsReader("cover", opts, bytes.NewReader(book.Cover))
		if info != nil && !pdf.Err() {
			w := textWidth * 0.6
			pdf.ImageOptions("cover", left+(textWidth-w)/2, pdf.GetY(), w, 0, true, opts, 0, "")
			pdf.Ln(8)
		}
	}

	pdf.SetFont("Helvetica", "B", 22)
	pdf.MultiCell(0, 10, tr(book.Title), "", "C", false)

	if len(book.Authors) > 0 {
		pdf.SetFont("Helvetica", "", 14)
		pdf.MultiCell(0, 8, tr(strings.Join(book.Authors, ", ")), "", "C", false)
	}

	pdf.Ln(6)
	pdf.SetFont("Times", "I", 11)
	for _, p := range book.Summary {
		pdf.MultiCell(0, 5, tr(p), "", "J", false)
		pdf.Ln(2)
	}

	for _, chapter := range book.Chapters {
		pdf.AddPage()

		pdf.SetFont("Helvetica", "B", 16)
		pdf.MultiCell(0, 8, tr(chapter.Heading), "", "L", false)
		pdf.Ln(4)

		pdf.SetFont("Times", "", 12)
		for _, p := range chapter.Paragraphs {
			pdf.MultiCell(0, 6, tr(p), "", "J", false)
			pdf.Ln(3)
		}
	}

	if pdf.Err() {
		return errors.Wrap(pdf.Error(), "could not render pdf")
	}

	return pdf.OutputFileAndClose(pdfPath)
}
