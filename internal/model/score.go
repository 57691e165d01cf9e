package model

// ScoreType enumerates graded activities.
type ScoreType string

const (
	ScoreTypeMidterm   ScoreType = "midterm"
	ScoreTypeFinal     ScoreType = "final"
	ScoreTypeCatechism ScoreType = "catechism"
	ScoreTypeActivity  ScoreType = "activity"
)

// Score is keyed by (StudentID, Type); a re-recorded score replaces the
// previous value.
type Score struct {
	StudentID string    `json:"studentId"`
	Type      ScoreType `json:"scoreType"`
	Value     float64   `json:"value"`
	Date      string    `json:"date"`
}
