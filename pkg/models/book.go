package models

import (
	"time"

	"github.com/uptrace/bun"
)

// Availability flags for a book. Stored as a single character, the way the
// library catalog schema defines it.
const (
	Available   = "Y"
	Unavailable = "N"
)

type Book struct {
	bun.BaseModel `bun:"table:books,alias:b"`

	ID           int       `bun:"book_id,pk,nullzero" json:"book_id"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
	Title        string    `bun:",nullzero" json:"title"`
	Author       string    `bun:",nullzero" json:"author"`
	Availability string    `bun:",nullzero" json:"availability"`
}
