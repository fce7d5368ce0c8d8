package export

import (
	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"

	"github.com/vfg2006/apotek-report-api/internal/domain"
)

const SheetName = "Laporan"

var columns = []string{"No", "Nama Obat", "Jumlah Terjual", "Total Penjualan"}

// ProductsXLSX gera a planilha da visão mensal, uma linha por produto
func ProductsXLSX(rows []domain.ProductAggregate, month string) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return nil, errors.Wrap(err, "erro ao renomear a planilha")
	}

	if err := f.SetDocProps(&excelize.DocProperties{Title: Title(month)}); err != nil {
		return nil, errors.Wrap(err, "erro ao definir propriedades do documento")
	}

	header := make([]any, len(columns))
	for i, c := range columns {
		header[i] = c
	}
	if err := f.SetSheetRow(SheetName, "A1", &header); err != nil {
		return nil, errors.Wrap(err, "erro ao escrever o cabeçalho")
	}

	for i, r := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, errors.Wrap(err, "erro ao calcular a célula")
		}

		values := []any{i + 1, r.ProductName, r.TotalQuantitySold, wholeRupiah(r.TotalRevenue)}
		if err := f.SetSheetRow(SheetName, cell, &values); err != nil {
			return nil, errors.Wrapf(err, "erro ao escrever a linha %d", i+1)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao gerar a planilha")
	}

	return buf.Bytes(), nil
}
