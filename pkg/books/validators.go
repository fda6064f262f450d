package books

// BookPayload represents the request body for creating or replacing a book.
type BookPayload struct {
	Title        string `json:"title" mod:"trim" validate:"required,min=1,max=100"`
	Author       string `json:"author" mod:"trim" validate:"required,min=1,max=100"`
	Availability string `json:"availability" default:"Y" validate:"oneof=Y N"`
}

// AvailabilityPayload represents the request body for an availability update.
type AvailabilityPayload struct {
	Availability string `json:"availability" validate:"required,oneof=Y N"`
}
