package users

// UserPayload represents the request body for creating or replacing a user.
type UserPayload struct {
	Username string `json:"username" mod:"trim" validate:"required,min=3,max=30"`
	Email    string `json:"email" mod:"trim" validate:"required,email"`
}

// SearchUsersQuery represents the query parameters for searching users.
type SearchUsersQuery struct {
	SearchTerm string `query:"searchTerm" json:"searchTerm,omitempty" validate:"required"`
}
