package usecase

import (
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/bytewerk/leadboard/internal/entity"
)

const exportSheet = "Leads"

var exportColumns = []string{
	"ID", "Full Name", "Email", "Phone", "Address",
	"Job Importance", "Customer Experience", "Contact Time", "Status", "Created At",
}

// ExportLeads builds an xlsx workbook with one row per lead, columns
// matching the Lead fields.
func ExportLeads(leads []entity.Lead) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", exportSheet); err != nil {
		return nil, err
	}

	for col, name := range exportColumns {
		if err := setCell(f, col+1, 1, name); err != nil {
			return nil, err
		}
	}

	for i, lead := range leads {
		values := []any{
			lead.ID,
			lead.FullName,
			lead.Email,
			lead.Phone,
			lead.Address,
			lead.JobImportance,
			lead.CustomerExperience,
			lead.ContactTime,
			string(lead.Status),
			lead.CreatedAt.Format(time.RFC3339),
		}
		for col, value := range values {
			if err := setCell(f, col+1, i+2, value); err != nil {
				return nil, err
			}
		}
	}

	return f, nil
}

func setCell(f *excelize.File, col, row int, value any) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return err
	}
	return f.SetCellValue(exportSheet, cell, value)
}
