package models

import (
	"time"

	"github.com/uptrace/bun"
)

// Role names carried in auth tokens. Librarians can change the catalog;
// members can only read it.
const (
	RoleMember    = "member"
	RoleLibrarian = "librarian"
)

type User struct {
	bun.BaseModel `bun:"table:users,alias:u"`

	ID           int       `bun:",pk,nullzero" json:"id"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
	Username     string    `bun:",nullzero" json:"username"`
	Email        *string   `json:"email,omitempty"`
	PasswordHash *string   `json:"-"` // Never expose password hash
	Role         string    `bun:",nullzero" json:"role"`
}

// UserBook links a user to a book they've borrowed. Only read through the
// users-with-books join; there is no write endpoint for it.
type UserBook struct {
	bun.BaseModel `bun:"table:user_books,alias:ub"`

	ID     int `bun:",pk,nullzero" json:"id"`
	UserID int `json:"user_id"`
	BookID int `json:"book_id"`
}
