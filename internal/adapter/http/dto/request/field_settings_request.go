package request

// FieldSettingsRequest carries a field's new rate and cap. Amounts are
// integral currency units; a max_budget of 0 means uncapped. Negative
// values are rejected by the usecase, not here.
type FieldSettingsRequest struct {
	PerLessonAmount int64 `json:"per_lesson_amount"`
	MaxBudget       int64 `json:"max_budget"`
}
