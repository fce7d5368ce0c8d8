package export

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"
	"github.com/pkg/errors"

	"github.com/vfg2006/apotek-report-api/internal/domain"
)

var columnWidths = []float64{15, 85, 40, 50}

// ProductsPDF gera o PDF da visão mensal com as mesmas colunas da planilha
func ProductsPDF(rows []domain.ProductAggregate, month string) ([]byte, error) {
	return renderPDF(rows, month, true)
}

func renderPDF(rows []domain.ProductAggregate, month string, compress bool) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetCompression(compress)
	pdf.SetTitle(Title(month), true)

	// fontes padrão usam cp1252
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, tr(Title(month)), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(230, 230, 230)
	for i, c := range columns {
		pdf.CellFormat(columnWidths[i], 8, tr(c), "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 10)
	for i, r := range rows {
		pdf.CellFormat(columnWidths[0], 7, fmt.Sprintf("%d", i+1), "1", 0, "C", false, 0, "")
		pdf.CellFormat(columnWidths[1], 7, tr(r.ProductName), "1", 0, "L", false, 0, "")
		pdf.CellFormat(columnWidths[2], 7, fmt.Sprintf("%d", r.TotalQuantitySold), "1", 0, "R", false, 0, "")
		pdf.CellFormat(columnWidths[3], 7, tr(FormatRupiah(r.TotalRevenue)), "1", 0, "R", false, 0, "")
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, errors.Wrap(err, "erro ao gerar o PDF")
	}

	return buf.Bytes(), nil
}
