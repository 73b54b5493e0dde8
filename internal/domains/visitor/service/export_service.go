package service

import (
	"bytes"
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	"parking-backend/internal/domains/visitor/model"
)

// ExportXLSX renders the full register, newest first, as a spreadsheet.
// Management asks for this when reconciling the gate logbook.
func (s *visitorService) ExportXLSX(ctx context.Context) ([]byte, error) {
	visitors, _, err := s.repo.GetAll(ctx, model.VisitorFilter{})
	if err != nil {
		return nil, fmt.Errorf("failed to load visitors for export: %w", err)
	}

	f, err := buildVisitorsExcelFile(visitors)
	if err != nil {
		return nil, fmt.Errorf("failed to build excel file: %w", err)
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("failed to write excel file: %w", err)
	}
	return buf.Bytes(), nil
}

func buildVisitorsExcelFile(visitors []model.Visitor) (*excelize.File, error) {
	f := excelize.NewFile()

	sheetName := "Visitor register"
	f.SetSheetName("Sheet1", sheetName)

	headers := []string{
		"ID",
		"Name",
		"IC Number",
		"License Plate",
		"Unit",
		"Status",
		"Registered At",
		"Last Updated",
	}

	for colIdx, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(colIdx+1, 1)
		f.SetCellValue(sheetName, cell, header)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
	})
	if err == nil {
		f.SetCellStyle(sheetName, "A1", "H1", headerStyle)
	}

	for i, v := range visitors {
		rowNum := i + 2
		cell := func(col int) string {
			name, _ := excelize.CoordinatesToCellName(col, rowNum)
			return name
		}

		f.SetCellValue(sheetName, cell(1), v.ID.String())
		f.SetCellValue(sheetName, cell(2), v.Name)
		f.SetCellValue(sheetName, cell(3), v.ICNumber)
		f.SetCellValue(sheetName, cell(4), v.LicensePlate)
		f.SetCellValue(sheetName, cell(5), v.UnitNumber)
		f.SetCellValue(sheetName, cell(6), string(v.Status))
		f.SetCellValue(sheetName, cell(7), v.CreatedAt.Format("2006-01-02 15:04"))
		f.SetCellValue(sheetName, cell(8), v.LastUpdated.Format("2006-01-02 15:04"))
	}

	return f, nil
}
