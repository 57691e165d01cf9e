// Package export writes class rosters to xlsx workbooks.
package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/lamdoan/classdesk/internal/model"
)

// Catalog resolves class names and recorded scores for the exported
// rows. Satisfied by the data manager.
type Catalog interface {
	ClassName(id string) string
	Score(studentID string, scoreType model.ScoreType) (model.Score, bool)
}

var scoreColumns = []model.ScoreType{
	model.ScoreTypeMidterm,
	model.ScoreTypeFinal,
	model.ScoreTypeCatechism,
	model.ScoreTypeActivity,
}

var headers = []string{
	"ID", "Saint name", "Full name", "Class", "Birth date", "Baptism date",
	"Guardian", "District", "Phone", "Midterm", "Final", "Catechism", "Activity",
}

// WriteRoster writes the given students as one worksheet at path.
// Class ids are resolved through the catalog; dangling ids appear raw,
// same as on screen.
func WriteRoster(path string, students []model.Student, catalog Catalog) error {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Roster"
	f.SetSheetName(f.GetSheetName(0), sheet)

	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return fmt.Errorf("failed to compute header cell: %w", err)
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return fmt.Errorf("failed to write header: %w", err)
		}
	}

	for row, s := range students {
		values := []any{
			s.ID,
			s.SaintName,
			s.FullName(),
			catalog.ClassName(s.ClassID),
			s.BirthDate,
			s.BaptismDate,
			s.Guardian,
			s.District,
			s.Phone,
		}
		for _, st := range scoreColumns {
			if score, ok := catalog.Score(s.ID, st); ok {
				values = append(values, score.Value)
			} else {
				values = append(values, "")
			}
		}

		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return fmt.Errorf("failed to compute cell: %w", err)
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return fmt.Errorf("failed to write row: %w", err)
			}
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}

	return nil
}
