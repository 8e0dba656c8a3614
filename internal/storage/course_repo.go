package storage

import (
	"context"
	"fmt"

	"github.com/rooseveltalej/proyecto3/pkg/model"
)

// SQLiteCourseRepo persists course records.
type SQLiteCourseRepo struct {
	db DBTX
}

func NewSQLiteCourseRepo(db DBTX) *SQLiteCourseRepo {
	return &SQLiteCourseRepo{db: db}
}

func (r *SQLiteCourseRepo) Create(ctx context.Context, c model.CourseRecord) error {
	query := `INSERT INTO courses (name, type, credits, semester) VALUES (?, ?, ?, ?)`
	if _, err := r.db.ExecContext(ctx, query, c.Name, c.Type, c.Credits, c.Semester); err != nil {
		return fmt.Errorf("inserting course %s: %w", c.Name, err)
	}
	return nil
}

func (r *SQLiteCourseRepo) CreateAll(ctx context.Context, courses []model.CourseRecord) error {
	for _, c := range courses {
		if err := r.Create(ctx, c); err != nil {
			return err
		}
	}
	return nil
}

// List returns the catalogue in insertion order.
func (r *SQLiteCourseRepo) List(ctx context.Context) ([]model.CourseRecord, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT name, type, credits, semester FROM courses ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("listing courses: %w", err)
	}
	defer rows.Close()

	var courses []model.CourseRecord
	for rows.Next() {
		var c model.CourseRecord
		if err := rows.Scan(&c.Name, &c.Type, &c.Credits, &c.Semester); err != nil {
			return nil, fmt.Errorf("scanning course: %w", err)
		}
		courses = append(courses, c)
	}
	return courses, rows.Err()
}

func (r *SQLiteCourseRepo) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM courses`).Scan(&count); err != nil {
		return 0, fmt.Errorf("counting courses: %w", err)
	}
	return count, nil
}

func (r *SQLiteCourseRepo) DeleteAll(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM courses`); err != nil {
		return fmt.Errorf("deleting courses: %w", err)
	}
	return nil
}
