package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/rooseveltalej/proyecto3/pkg/model"
)

// Seed inserts the default catalogue into empty tables. Tables that already hold rows are left alone.
// Returns the number of professors and courses inserted.
func Seed(ctx context.Context, db *sql.DB) (int, int, error) {
	var professors, courses int
	err := WithTx(ctx, db, func(tx DBTX) error {
		professorRepo := NewSQLiteProfessorRepo(tx)
		courseRepo := NewSQLiteCourseRepo(tx)

		count, err := professorRepo.Count(ctx)
		if err != nil {
			return err
		}
		if count == 0 {
			if err := professorRepo.CreateAll(ctx, SeedProfessors); err != nil {
				return err
			}
			professors = len(SeedProfessors)
		}

		count, err = courseRepo.Count(ctx)
		if err != nil {
			return err
		}
		if count == 0 {
			if err := courseRepo.CreateAll(ctx, SeedCourses); err != nil {
				return err
			}
			courses = len(SeedCourses)
		}
		return nil
	})
	if err != nil {
		return 0, 0, fmt.Errorf("seeding catalogue: %w", err)
	}
	return professors, courses, nil
}

// Import appends professors and courses in a single transaction.
func Import(ctx context.Context, db *sql.DB, facts model.Facts) error {
	return WithTx(ctx, db, func(tx DBTX) error {
		if err := NewSQLiteProfessorRepo(tx).CreateAll(ctx, facts.Professors); err != nil {
			return err
		}
		return NewSQLiteCourseRepo(tx).CreateAll(ctx, facts.Courses)
	})
}

// LoadFacts reads every stored professor and course.
func LoadFacts(ctx context.Context, db DBTX) (model.Facts, error) {
	professors, err := NewSQLiteProfessorRepo(db).List(ctx)
	if err != nil {
		return model.Facts{}, err
	}
	courses, err := NewSQLiteCourseRepo(db).List(ctx)
	if err != nil {
		return model.Facts{}, err
	}
	return model.Facts{Professors: professors, Courses: courses}, nil
}
