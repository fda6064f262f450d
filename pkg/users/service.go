package users

import (
	"context"
	"database/sql"
	"time"

	"github.com/pkg/errors"
	"github.com/radrium/polylibrary/pkg/errcodes"
	"github.com/radrium/polylibrary/pkg/models"
	"github.com/uptrace/bun"
)

// Service handles user operations.
type Service struct {
	db *bun.DB
}

// NewService creates a new users service.
func NewService(db *bun.DB) *Service {
	return &Service{db: db}
}

// CreateUserOptions contains the validated fields for a new user.
type CreateUserOptions struct {
	Username string
	Email    string
}

// Create inserts a user and returns the persisted row. Users created here
// have no password and the default role; login accounts come from /register.
func (s *Service) Create(ctx context.Context, opts CreateUserOptions) (*models.User, error) {
	exists, err := s.db.NewSelect().
		Model((*models.User)(nil)).
		Where("username = ? COLLATE NOCASE", opts.Username).
		Exists(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	if exists {
		return nil, errcodes.ValidationError("Username already exists")
	}

	now := time.Now()
	user := &models.User{
		CreatedAt: now,
		UpdatedAt: now,
		Username:  opts.Username,
		Email:     &opts.Email,
		Role:      models.RoleMember,
	}

	_, err = s.db.NewInsert().
		Model(user).
		Returning("*").
		Exec(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return user, nil
}

// Retrieve gets a user by ID.
func (s *Service) Retrieve(ctx context.Context, id int) (*models.User, error) {
	user := &models.User{}
	err := s.db.NewSelect().
		Model(user).
		Where("u.id = ?", id).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errcodes.NotFound("User")
		}
		return nil, errors.WithStack(err)
	}
	return user, nil
}

// List returns all users.
func (s *Service) List(ctx context.Context) ([]*models.User, error) {
	users := []*models.User{}
	err := s.db.NewSelect().
		Model(&users).
		Order("u.id ASC").
		Scan(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return users, nil
}

// Search returns users whose username or email contains the term.
func (s *Service) Search(ctx context.Context, term string) ([]*models.User, error) {
	users := []*models.User{}
	pattern := "%" + term + "%"
	err := s.db.NewSelect().
		Model(&users).
		Where("u.username LIKE ? OR u.email LIKE ?", pattern, pattern).
		Order("u.id ASC").
		Scan(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return users, nil
}

// UpdateUserOptions contains the validated fields for a full replace.
type UpdateUserOptions struct {
	Username string
	Email    string
}

// Update replaces the validated fields of a user and returns the freshly
// re-read row. Password hash and role are never touched here.
func (s *Service) Update(ctx context.Context, id int, opts UpdateUserOptions) (*models.User, error) {
	user, err := s.Retrieve(ctx, id)
	if err != nil {
		return nil, err
	}

	if opts.Username != user.Username {
		exists, err := s.db.NewSelect().
			Model((*models.User)(nil)).
			Where("username = ? COLLATE NOCASE", opts.Username).
			Where("id != ?", id).
			Exists(ctx)
		if err != nil {
			return nil, errors.WithStack(err)
		}
		if exists {
			return nil, errcodes.ValidationError("Username already exists")
		}
	}

	user.Username = opts.Username
	user.Email = &opts.Email
	user.UpdatedAt = time.Now()

	_, err = s.db.NewUpdate().
		Model(user).
		Column("username", "email", "updated_at").
		WherePK().
		Exec(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return s.Retrieve(ctx, id)
}

// Delete removes a user and any book links.
func (s *Service) Delete(ctx context.Context, id int) error {
	return s.db.RunInTx(ctx, &sql.TxOptions{}, func(ctx context.Context, tx bun.Tx) error {
		_, err := tx.NewDelete().
			Model((*models.UserBook)(nil)).
			Where("user_id = ?", id).
			Exec(ctx)
		if err != nil {
			return errors.WithStack(err)
		}

		result, err := tx.NewDelete().
			Model((*models.User)(nil)).
			Where("id = ?", id).
			Exec(ctx)
		if err != nil {
			return errors.WithStack(err)
		}

		affected, _ := result.RowsAffected()
		if affected == 0 {
			return errcodes.NotFound("User")
		}

		return nil
	})
}

// BookSummary is the slice of a book shown under a user.
type BookSummary struct {
	ID     int    `json:"book_id"`
	Title  string `json:"title"`
	Author string `json:"author"`
}

// UserWithBooks is a user plus the books linked to them.
type UserWithBooks struct {
	ID       int           `json:"id"`
	Username string        `json:"username"`
	Email    *string       `json:"email,omitempty"`
	Books    []BookSummary `json:"books"`
}

// ListWithBooks returns every user with their linked books, resolved by a
// single read-time join and grouped in memory. Users without books get an
// empty list.
func (s *Service) ListWithBooks(ctx context.Context) ([]*UserWithBooks, error) {
	var rows []struct {
		UserID   int     `bun:"user_id"`
		Username string  `bun:"username"`
		Email    *string `bun:"email"`
		BookID   *int    `bun:"book_id"`
		Title    *string `bun:"title"`
		Author   *string `bun:"author"`
	}

	err := s.db.NewSelect().
		TableExpr("users AS u").
		ColumnExpr("u.id AS user_id, u.username, u.email").
		ColumnExpr("b.book_id AS book_id, b.title, b.author").
		Join("LEFT JOIN user_books AS ub ON ub.user_id = u.id").
		Join("LEFT JOIN books AS b ON b.book_id = ub.book_id").
		OrderExpr("u.id ASC, b.book_id ASC").
		Scan(ctx, &rows)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	// One user spans as many rows as they have books; group them back up,
	// preserving id order.
	byID := map[int]*UserWithBooks{}
	result := []*UserWithBooks{}
	for _, row := range rows {
		user, ok := byID[row.UserID]
		if !ok {
			user = &UserWithBooks{
				ID:       row.UserID,
				Username: row.Username,
				Email:    row.Email,
				Books:    []BookSummary{},
			}
			byID[row.UserID] = user
			result = append(result, user)
		}
		// A null book_id means the user has no books on this row.
		if row.BookID != nil {
			user.Books = append(user.Books, BookSummary{
				ID:     *row.BookID,
				Title:  *row.Title,
				Author: *row.Author,
			})
		}
	}

	return result, nil
}
