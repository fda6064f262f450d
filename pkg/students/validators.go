package students

// StudentPayload represents the request body for creating or replacing a
// student.
type StudentPayload struct {
	Name    string `json:"name" mod:"trim" validate:"required,min=1,max=50"`
	Address string `json:"address" mod:"trim" validate:"required,min=1,max=100"`
}
