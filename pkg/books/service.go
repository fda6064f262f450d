package books

import (
	"context"
	"database/sql"
	"time"

	"github.com/pkg/errors"
	"github.com/radrium/polylibrary/pkg/errcodes"
	"github.com/radrium/polylibrary/pkg/models"
	"github.com/uptrace/bun"
)

// Service handles catalog operations.
type Service struct {
	db *bun.DB
}

// NewService creates a new books service.
func NewService(db *bun.DB) *Service {
	return &Service{db: db}
}

// CreateBookOptions contains the validated fields for a new book.
type CreateBookOptions struct {
	Title        string
	Author       string
	Availability string
}

// Create inserts a book and returns the persisted row.
func (s *Service) Create(ctx context.Context, opts CreateBookOptions) (*models.Book, error) {
	now := time.Now()
	book := &models.Book{
		CreatedAt:    now,
		UpdatedAt:    now,
		Title:        opts.Title,
		Author:       opts.Author,
		Availability: opts.Availability,
	}

	_, err := s.db.NewInsert().
		Model(book).
		Returning("*").
		Exec(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return book, nil
}

// Retrieve gets a book by ID.
func (s *Service) Retrieve(ctx context.Context, id int) (*models.Book, error) {
	book := &models.Book{}
	err := s.db.NewSelect().
		Model(book).
		Where("b.book_id = ?", id).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errcodes.NotFound("Book")
		}
		return nil, errors.WithStack(err)
	}
	return book, nil
}

// List returns all books.
func (s *Service) List(ctx context.Context) ([]*models.Book, error) {
	books := []*models.Book{}
	err := s.db.NewSelect().
		Model(&books).
		Order("b.book_id ASC").
		Scan(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return books, nil
}

// UpdateBookOptions contains the validated fields for a full replace.
type UpdateBookOptions struct {
	Title        string
	Author       string
	Availability string
}

// Update replaces the validated fields of a book and returns the freshly
// re-read row.
func (s *Service) Update(ctx context.Context, id int, opts UpdateBookOptions) (*models.Book, error) {
	book, err := s.Retrieve(ctx, id)
	if err != nil {
		return nil, err
	}

	book.Title = opts.Title
	book.Author = opts.Author
	book.Availability = opts.Availability
	book.UpdatedAt = time.Now()

	_, err = s.db.NewUpdate().
		Model(book).
		Column("title", "author", "availability", "updated_at").
		WherePK().
		Exec(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return s.Retrieve(ctx, id)
}

// UpdateAvailability sets only the availability flag.
func (s *Service) UpdateAvailability(ctx context.Context, id int, availability string) error {
	result, err := s.db.NewUpdate().
		Model((*models.Book)(nil)).
		Set("availability = ?", availability).
		Set("updated_at = CURRENT_TIMESTAMP").
		Where("book_id = ?", id).
		Exec(ctx)
	if err != nil {
		return errors.WithStack(err)
	}

	affected, _ := result.RowsAffected()
	if affected == 0 {
		return errcodes.NotFound("Book")
	}

	return nil
}

// Delete removes a book and any user links to it.
func (s *Service) Delete(ctx context.Context, id int) error {
	return s.db.RunInTx(ctx, &sql.TxOptions{}, func(ctx context.Context, tx bun.Tx) error {
		_, err := tx.NewDelete().
			Model((*models.UserBook)(nil)).
			Where("book_id = ?", id).
			Exec(ctx)
		if err != nil {
			return errors.WithStack(err)
		}

		result, err := tx.NewDelete().
			Model((*models.Book)(nil)).
			Where("book_id = ?", id).
			Exec(ctx)
		if err != nil {
			return errors.WithStack(err)
		}

		affected, _ := result.RowsAffected()
		if affected == 0 {
			return errcodes.NotFound("Book")
		}

		return nil
	})
}
