package entities

// Student is a read-only directory row for this service: identity, name
// and the field (specialization) that governs the student's budget.
// Student records are managed elsewhere.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (field-index): field
type Student struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Field string `json:"field"`
}
