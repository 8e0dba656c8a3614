package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/rooseveltalej/proyecto3/pkg/model"
)

// SQLiteProfessorRepo persists professor records. List columns are stored as list literals.
type SQLiteProfessorRepo struct {
	db DBTX
}

func NewSQLiteProfessorRepo(db DBTX) *SQLiteProfessorRepo {
	return &SQLiteProfessorRepo{db: db}
}

func (r *SQLiteProfessorRepo) Create(ctx context.Context, p model.ProfessorRecord) error {
	query := `INSERT INTO professors (name, id_number, available_hours, courses) VALUES (?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		p.Name,
		p.IdNumber,
		model.FormatListLiteral(p.AvailableHours),
		model.FormatListLiteral(p.Courses),
	)
	if err != nil {
		return fmt.Errorf("inserting professor %s: %w", p.Name, err)
	}
	return nil
}

func (r *SQLiteProfessorRepo) CreateAll(ctx context.Context, professors []model.ProfessorRecord) error {
	for _, p := range professors {
		if err := r.Create(ctx, p); err != nil {
			return err
		}
	}
	return nil
}

// List returns every professor in insertion order.
func (r *SQLiteProfessorRepo) List(ctx context.Context) ([]model.ProfessorRecord, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT name, id_number, available_hours, courses FROM professors ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("listing professors: %w", err)
	}
	defer rows.Close()
	return r.scanProfessors(rows)
}

func (r *SQLiteProfessorRepo) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM professors`).Scan(&count); err != nil {
		return 0, fmt.Errorf("counting professors: %w", err)
	}
	return count, nil
}

func (r *SQLiteProfessorRepo) DeleteAll(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM professors`); err != nil {
		return fmt.Errorf("deleting professors: %w", err)
	}
	return nil
}

func (r *SQLiteProfessorRepo) scanProfessors(rows *sql.Rows) ([]model.ProfessorRecord, error) {
	var professors []model.ProfessorRecord
	for rows.Next() {
		var p model.ProfessorRecord
		var hours, courses string
		if err := rows.Scan(&p.Name, &p.IdNumber, &hours, &courses); err != nil {
			return nil, fmt.Errorf("scanning professor: %w", err)
		}
		p.AvailableHours = model.ParseListLiteral(hours)
		p.Courses = model.ParseListLiteral(courses)
		professors = append(professors, p)
	}
	return professors, rows.Err()
}
