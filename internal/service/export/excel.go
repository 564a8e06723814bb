package export

import (
	"fmt"
	"time"

	"github.com/tagpoint/attendance-backend-go/internal/domain/attendance"
	"github.com/tagpoint/attendance-backend-go/internal/pkg/nfc"
	"github.com/xuri/excelize/v2"
)

const sheetName = "Attendance Records"

// ExcelService renders event listings into downloadable spreadsheets.
type ExcelService interface {
	// AttendanceReport returns the workbook bytes and a dated filename.
	AttendanceReport(events []attendance.EventResponse) ([]byte, string, error)
}

type excelServiceImpl struct{}

func NewExcelService() ExcelService {
	return &excelServiceImpl{}
}

// AttendanceReport implements ExcelService.
func (s *excelServiceImpl) AttendanceReport(events []attendance.EventResponse) ([]byte, string, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, "", fmt.Errorf("failed to rename sheet: %w", err)
	}

	headers := []string{"Employee", "Department", "Position", "NFC ID", "Type", "Tagged At"}
	for i, header := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, "", fmt.Errorf("failed to resolve header cell: %w", err)
		}
		if err := f.SetCellValue(sheetName, cell, header); err != nil {
			return nil, "", fmt.Errorf("failed to write header: %w", err)
		}
	}

	widths := []float64{15, 15, 12, 24, 10, 20}
	for i, width := range widths {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return nil, "", fmt.Errorf("failed to resolve column name: %w", err)
		}
		if err := f.SetColWidth(sheetName, col, col, width); err != nil {
			return nil, "", fmt.Errorf("failed to set column width: %w", err)
		}
	}

	for i, ev := range events {
		values := []interface{}{
			strOrDash(ev.EmployeeName),
			strOrDash(ev.EmployeeDepartment),
			strOrDash(ev.EmployeePosition),
			nfc.Format(ev.TagID, nfc.DefaultSeparator),
			tagTypeLabel(ev.TagType),
			ev.TaggedAt.Format("2006-01-02 15:04:05"),
		}
		for j, value := range values {
			cell, err := excelize.CoordinatesToCellName(j+1, i+2)
			if err != nil {
				return nil, "", fmt.Errorf("failed to resolve cell: %w", err)
			}
			if err := f.SetCellValue(sheetName, cell, value); err != nil {
				return nil, "", fmt.Errorf("failed to write row: %w", err)
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, "", fmt.Errorf("failed to serialize workbook: %w", err)
	}

	filename := fmt.Sprintf("attendance_records_%s.xlsx", time.Now().Format("2006-01-02"))
	return buf.Bytes(), filename, nil
}

func strOrDash(s *string) string {
	if s == nil || *s == "" {
		return "-"
	}
	return *s
}

func tagTypeLabel(kind attendance.Kind) string {
	if kind == attendance.KindCheckOut {
		return "Check-out"
	}
	return "Check-in"
}
