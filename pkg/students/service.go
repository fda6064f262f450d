package students

import (
	"context"
	"database/sql"
	"time"

	"github.com/pkg/errors"
	"github.com/radrium/polylibrary/pkg/errcodes"
	"github.com/radrium/polylibrary/pkg/models"
	"github.com/uptrace/bun"
)

// Service handles student operations.
type Service struct {
	db *bun.DB
}

// NewService creates a new students service.
func NewService(db *bun.DB) *Service {
	return &Service{db: db}
}

// CreateStudentOptions contains the validated fields for a new student.
type CreateStudentOptions struct {
	Name    string
	Address string
}

// Create inserts a student and returns the persisted row, including the
// store-generated identifier.
func (s *Service) Create(ctx context.Context, opts CreateStudentOptions) (*models.Student, error) {
	now := time.Now()
	student := &models.Student{
		CreatedAt: now,
		UpdatedAt: now,
		Name:      opts.Name,
		Address:   opts.Address,
	}

	_, err := s.db.NewInsert().
		Model(student).
		Returning("*").
		Exec(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return student, nil
}

// Retrieve gets a student by ID.
func (s *Service) Retrieve(ctx context.Context, id int) (*models.Student, error) {
	student := &models.Student{}
	err := s.db.NewSelect().
		Model(student).
		Where("s.student_id = ?", id).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errcodes.NotFound("Student")
		}
		return nil, errors.WithStack(err)
	}
	return student, nil
}

// List returns all students.
func (s *Service) List(ctx context.Context) ([]*models.Student, error) {
	students := []*models.Student{}
	err := s.db.NewSelect().
		Model(&students).
		Order("s.student_id ASC").
		Scan(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return students, nil
}

// UpdateStudentOptions contains the validated fields for a full replace.
type UpdateStudentOptions struct {
	Name    string
	Address string
}

// Update replaces the validated fields of a student and returns the freshly
// re-read row.
func (s *Service) Update(ctx context.Context, id int, opts UpdateStudentOptions) (*models.Student, error) {
	student, err := s.Retrieve(ctx, id)
	if err != nil {
		return nil, err
	}

	student.Name = opts.Name
	student.Address = opts.Address
	student.UpdatedAt = time.Now()

	_, err = s.db.NewUpdate().
		Model(student).
		Column("name", "address", "updated_at").
		WherePK().
		Exec(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return s.Retrieve(ctx, id)
}

// Delete removes a student. Deleting an id that doesn't exist is a not-found,
// never an error.
func (s *Service) Delete(ctx context.Context, id int) error {
	result, err := s.db.NewDelete().
		Model((*models.Student)(nil)).
		Where("student_id = ?", id).
		Exec(ctx)
	if err != nil {
		return errors.WithStack(err)
	}

	affected, _ := result.RowsAffected()
	if affected == 0 {
		return errcodes.NotFound("Student")
	}

	return nil
}
