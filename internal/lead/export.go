package lead

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

const (
	sheetLeads  = "Leads"
	sheetByHour = "By Hour"
	sheetByDay  = "By Day"
)

var leadColumns = []interface{}{"ID", "Name", "Email", "Phone", "Status", "Job Title", "Company", "City", "Message", "Date", "Time"}

// WriteXLSX writes a workbook with the leads of one employee and their hourly and daily counts.
func WriteXLSX(w io.Writer, owner string, leads []*Lead) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetLeads); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}

	if err := f.SetCellValue(sheetLeads, "A1", fmt.Sprintf("Leads of %s", owner)); err != nil {
		return err
	}
	if err := setRow(f, sheetLeads, 2, leadColumns); err != nil {
		return err
	}
	for i, l := range leads {
		row := []interface{}{l.ID, l.Name, l.Email, l.Phone, l.Status, l.JobTitle, l.Company, l.City, l.Message, l.Date, l.Time}
		if err := setRow(f, sheetLeads, i+3, row); err != nil {
			return err
		}
	}
	if err := f.SetColWidth(sheetLeads, "A", "A", 38); err != nil {
		return err
	}
	if err := f.SetColWidth(sheetLeads, "B", "K", 18); err != nil {
		return err
	}

	if _, err := f.NewSheet(sheetByHour); err != nil {
		return fmt.Errorf("create sheet %s: %w", sheetByHour, err)
	}
	if err := setRow(f, sheetByHour, 1, []interface{}{"Hour", "Leads"}); err != nil {
		return err
	}
	for i, hc := range AggregateByHour(leads) {
		if err := setRow(f, sheetByHour, i+2, []interface{}{fmt.Sprintf("%02d:00", hc.Hour), hc.Count}); err != nil {
			return err
		}
	}

	if _, err := f.NewSheet(sheetByDay); err != nil {
		return fmt.Errorf("create sheet %s: %w", sheetByDay, err)
	}
	if err := setRow(f, sheetByDay, 1, []interface{}{"Date", "Leads"}); err != nil {
		return err
	}
	for i, dc := range AggregateByDay(leads) {
		if err := setRow(f, sheetByDay, i+2, []interface{}{dc.Date, dc.Count}); err != nil {
			return err
		}
	}

	f.SetActiveSheet(0)
	return f.Write(w)
}

func setRow(f *excelize.File, sheet string, row int, values []interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	return f.SetSheetRow(sheet, cell, &values)
}
