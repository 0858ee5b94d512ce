package usecase_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bytewerk/leadboard/internal/entity"
	"github.com/bytewerk/leadboard/internal/usecase"
)

func TestExportLeadsWritesOneRowPerLead(t *testing.T) {
	leads := []entity.Lead{
		*sampleLead(1, entity.StatusNew),
		*sampleLead(2, entity.StatusApproved),
	}
	leads[1].FullName = "Max Mustermann"

	file, err := usecase.ExportLeads(leads)
	assert.NoError(t, err)

	rows, err := file.GetRows("Leads")
	assert.NoError(t, err)
	assert.Len(t, rows, 3) // header + 2 leads

	assert.Equal(t, "ID", rows[0][0])
	assert.Equal(t, "Status", rows[0][8])

	assert.Equal(t, "1", rows[1][0])
	assert.Equal(t, "Jane Doe", rows[1][1])
	assert.Equal(t, "New", rows[1][8])

	assert.Equal(t, "Max Mustermann", rows[2][1])
	assert.Equal(t, "Approved", rows[2][8])
	assert.Equal(t, time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC).Format(time.RFC3339), rows[2][9])
}

func TestExportLeadsEmptySelection(t *testing.T) {
	file, err := usecase.ExportLeads(nil)
	assert.NoError(t, err)

	rows, err := file.GetRows("Leads")
	assert.NoError(t, err)
	assert.Len(t, rows, 1) // header only
}
