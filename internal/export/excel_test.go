package export

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/lamdoan/classdesk/internal/model"
)

type stubCatalog struct {
	classes map[string]string
	scores  map[string]map[model.ScoreType]model.Score
}

func (c stubCatalog) ClassName(id string) string {
	if name, ok := c.classes[id]; ok {
		return name
	}
	return id
}

func (c stubCatalog) Score(studentID string, scoreType model.ScoreType) (model.Score, bool) {
	s, ok := c.scores[studentID][scoreType]
	return s, ok
}

func TestWriteRoster(t *testing.T) {
	path := filepath.Join(t.TempDir(), "roster.xlsx")

	students := []model.Student{
		{ID: "HS001", SaintName: "Maria", FamilyName: "Nguyễn", GivenName: "An", ClassID: "TL3A"},
		{ID: "HS006", SaintName: "Đaminh", FamilyName: "Vũ", GivenName: "Khang", ClassID: "TL4C"},
	}
	catalog := stubCatalog{
		classes: map[string]string{"TL3A": "Thiếu Nhi 3A"},
		scores: map[string]map[model.ScoreType]model.Score{
			"HS001": {model.ScoreTypeMidterm: {StudentID: "HS001", Type: model.ScoreTypeMidterm, Value: 8.5}},
		},
	}

	require.NoError(t, WriteRoster(path, students, catalog))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	name, err := f.GetCellValue("Roster", "C2")
	require.NoError(t, err)
	assert.Equal(t, "Nguyễn An", name)

	class, err := f.GetCellValue("Roster", "D2")
	require.NoError(t, err)
	assert.Equal(t, "Thiếu Nhi 3A", class)

	// dangling class id stays raw
	class, err = f.GetCellValue("Roster", "D3")
	require.NoError(t, err)
	assert.Equal(t, "TL4C", class)

	midterm, err := f.GetCellValue("Roster", "J2")
	require.NoError(t, err)
	assert.Equal(t, "8.5", midterm)
}

func TestWriteRoster_Empty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "roster.xlsx")

	require.NoError(t, WriteRoster(path, nil, stubCatalog{}))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	header, err := f.GetCellValue("Roster", "A1")
	require.NoError(t, err)
	assert.Equal(t, "ID", header)
}
