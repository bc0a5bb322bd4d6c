package usecase

import (
	"bytes"
	"fmt"
	"strings"

	"humancapital-api/internal/domain"

	"github.com/xuri/excelize/v2"
)

const applicationsSheet = "Applications"

var applicationExportHeaders = []string{
	"APPLIED AT", "STATUS", "JOB TITLE", "CATEGORY", "CANDIDATE", "EMAIL", "PHONE",
	"CITY", "PROFESSION", "SKILLS", "CV URL", "VIDEO URL",
}

// exportApplicationsXLSX renders applications (with candidate and job embedded) as one sheet
func exportApplicationsXLSX(apps []domain.Application) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", applicationsSheet); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	for i, header := range applicationExportHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(applicationsSheet, cell, header)
	}

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "#FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#1F4FD1"}},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	endCell, _ := excelize.CoordinatesToCellName(len(applicationExportHeaders), 1)
	f.SetCellStyle(applicationsSheet, "A1", endCell, headerStyle)

	for rowIdx, app := range apps {
		for colIdx, value := range applicationRow(app) {
			cell, _ := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			f.SetCellValue(applicationsSheet, cell, value)
		}
	}

	for i := range applicationExportHeaders {
		colName, _ := excelize.ColumnNumberToName(i + 1)
		f.SetColWidth(applicationsSheet, colName, colName, 22)
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("failed to write Excel file: %w", err)
	}
	return buf.Bytes(), nil
}

func applicationRow(app domain.Application) []any {
	row := []any{app.CreatedAt.Format("2006-01-02 15:04"), app.Status, "", "", "", "", "", "", "", "", "", ""}
	if app.Job != nil {
		row[2] = app.Job.Title
		row[3] = app.Job.Category
	}
	if c := app.Candidate; c != nil {
		row[4] = c.FullName()
		row[5] = c.Email
		row[6] = c.Phone
		row[7] = c.City
		row[8] = c.Profession
		row[9] = strings.Join(c.Skills, ", ")
		row[10] = deref(c.CVURL)
		row[11] = deref(c.VideoURL)
	}
	return row
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
