package export

import (
	"github.com/pkg/errors"

	"github.com/vfg2006/apotek-report-api/internal/domain"
)

// Export gera o arquivo da visão mensal no formato pedido ("xlsx" ou "pdf")
func Export(format string, rows []domain.ProductAggregate, month string) (*domain.ExportFile, error) {
	var (
		content     []byte
		contentType string
		err         error
	)

	switch format {
	case FormatXLSX:
		content, err = ProductsXLSX(rows, month)
		contentType = ContentTypeXLSX
	case FormatPDF:
		content, err = ProductsPDF(rows, month)
		contentType = ContentTypePDF
	default:
		return nil, errors.Errorf("formato de exportação desconhecido: %s", format)
	}
	if err != nil {
		return nil, err
	}

	return &domain.ExportFile{
		Name:        FileName(month, format),
		ContentType: contentType,
		Content:     content,
	}, nil
}
