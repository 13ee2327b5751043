package xlsexport

import "github.com/xuri/excelize/v2"

const fontFamily = "Calibri"

func newRowStyle(f *excelize.File, header bool) (int, error) {
	alignment := &excelize.Alignment{Horizontal: "left", Vertical: "top", WrapText: true}
	if header {
		alignment = &excelize.Alignment{Horizontal: "center"}
	}
	return f.NewStyle(&excelize.Style{
		Alignment: alignment,
		Font: &excelize.Font{
			Bold:   header,
			Family: fontFamily,
			Size:   11,
		},
	})
}

// writeRow fills row (1-based) starting from column A and styles the filled cells.
func writeRow(f *excelize.File, sheet string, row int, values []interface{}, style int) error {
	first, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	last, err := excelize.CoordinatesToCellName(len(values), row)
	if err != nil {
		return err
	}
	if err = f.SetSheetRow(sheet, first, &values); err != nil {
		return err
	}
	return f.SetCellStyle(sheet, first, last, style)
}

func setColumnWidths(f *excelize.File, sheet string, widths []float64) error {
	for idx, width := range widths {
		col, err := excelize.ColumnNumberToName(idx + 1)
		if err != nil {
			return err
		}
		if err = f.SetColWidth(sheet, col, col, width); err != nil {
			return err
		}
	}
	return nil
}
