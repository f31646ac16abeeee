package export

import (
	"bytes"

	"github.com/xuri/excelize/v2"
)

const maxColWidth = 50

// BuildExcel renderiza o relatório como planilha XLSX: cabeçalho em
// negrito centralizado e colunas dimensionadas pelo conteúdo, limitadas a
// maxColWidth.
func BuildExcel(rep Report) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := rep.Sheet
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, err
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return nil, err
	}

	widths := make([]int, len(rep.Headers))

	for col, header := range rep.Headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			return nil, err
		}
		if err := f.SetCellStyle(sheet, cell, cell, headerStyle); err != nil {
			return nil, err
		}
		if len(header) > widths[col] {
			widths[col] = len(header)
		}
	}

	for i, row := range rep.Rows {
		for col, value := range row {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return nil, err
			}
			if len(value) > widths[col] {
				widths[col] = len(value)
			}
		}
	}

	for col, width := range widths {
		name, err := excelize.ColumnNumberToName(col + 1)
		if err != nil {
			return nil, err
		}
		adjusted := width + 2
		if adjusted > maxColWidth {
			adjusted = maxColWidth
		}
		if err := f.SetColWidth(sheet, name, name, float64(adjusted)); err != nil {
			return nil, err
		}
	}

	return f.WriteToBuffer()
}
