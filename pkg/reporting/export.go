package reporting

import (
	"context"
	"fmt"
	"io"

	"github.com/jordanlanch/calltracker/ent"
	"github.com/jordanlanch/calltracker/ent/lead"
	"github.com/jordanlanch/calltracker/pkg/leadsource"
	"github.com/xuri/excelize/v2"
)

// ExportSheet is the worksheet holding the exported leads
const ExportSheet = "Leads"

// ExportContentType is the MIME type of the exported workbook
const ExportContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

var exportHeaders = []string{"ID", "Received At", "Lead Source", "Incoming Number", "Caller", "City", "State", "Call SID"}

// ExportLeads writes every lead, oldest first, as an XLSX workbook to w.
func (s *Service) ExportLeads(ctx context.Context, w io.Writer) (int, error) {
	leads, err := s.db.Lead.
		Query().
		WithSource().
		Order(ent.Asc(lead.FieldID)).
		All(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to load leads: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", ExportSheet); err != nil {
		return 0, fmt.Errorf("failed to name sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E0E0E0"}, Pattern: 1},
	})
	if err != nil {
		return 0, fmt.Errorf("failed to create style: %w", err)
	}

	for i, header := range exportHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(ExportSheet, cell, header)
		f.SetCellStyle(ExportSheet, cell, cell, headerStyle)
	}

	for i, l := range leads {
		row := []interface{}{
			l.ID,
			l.CreatedAt.UTC().Format("2006-01-02 15:04:05"),
			"",
			"",
			l.PhoneNumber,
			l.City,
			l.State,
			l.CallSid,
		}
		if src := l.Edges.Source; src != nil {
			row[2] = leadsource.Label(src)
			row[3] = src.IncomingNumber
		}

		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow(ExportSheet, cell, &row); err != nil {
			return 0, fmt.Errorf("failed to write row: %w", err)
		}
	}

	first, _ := excelize.ColumnNumberToName(1)
	last, _ := excelize.ColumnNumberToName(len(exportHeaders))
	f.SetColWidth(ExportSheet, first, last, 18)

	if _, err := f.WriteTo(w); err != nil {
		return 0, fmt.Errorf("failed to write workbook: %w", err)
	}
	return len(leads), nil
}
