package storage_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rooseveltalej/proyecto3/internal/storage"
	"github.com/rooseveltalej/proyecto3/internal/testutil"
	"github.com/rooseveltalej/proyecto3/pkg/model"
)

func TestProfessorRepo_CreateAndList(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()
	repo := storage.NewSQLiteProfessorRepo(db)

	facts := testutil.SmallFacts()
	require.NoError(t, repo.CreateAll(ctx, facts.Professors))

	professors, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, facts.Professors, professors)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestProfessorRepo_StoresListLiterals(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()
	repo := storage.NewSQLiteProfessorRepo(db)

	require.NoError(t, repo.Create(ctx, model.ProfessorRecord{
		Name:           "Rosa Vargas",
		AvailableHours: []string{"monday_7_11", "wednesday_12_4"},
		Courses:        []string{"redes"},
	}))

	var hours, courses string
	require.NoError(t, db.QueryRowContext(ctx, `SELECT available_hours, courses FROM professors`).Scan(&hours, &courses))
	assert.Equal(t, "['monday_7_11', 'wednesday_12_4']", hours)
	assert.Equal(t, "['redes']", courses)
}

func TestCourseRepo_CreateListDelete(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()
	repo := storage.NewSQLiteCourseRepo(db)

	facts := testutil.SmallFacts()
	require.NoError(t, repo.CreateAll(ctx, facts.Courses))

	courses, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, facts.Courses, courses)

	require.NoError(t, repo.DeleteAll(ctx))
	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestSeed(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()

	professors, courses, err := storage.Seed(ctx, db)
	require.NoError(t, err)
	assert.Equal(t, 17, professors)
	assert.Equal(t, 24, courses)

	// Seeding again leaves populated tables alone
	professors, courses, err = storage.Seed(ctx, db)
	require.NoError(t, err)
	assert.Zero(t, professors)
	assert.Zero(t, courses)

	facts, err := storage.LoadFacts(ctx, db)
	require.NoError(t, err)
	assert.Len(t, facts.Professors, 17)
	assert.Len(t, facts.Courses, 24)
	assert.Equal(t, storage.SeedProfessors[0], facts.Professors[0])
	assert.Equal(t, "introduccion_al_desarrollo_de_paginas_web", facts.Courses[23].Name)
}

func TestImport(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()

	require.NoError(t, storage.Import(ctx, db, testutil.SmallFacts()))

	facts, err := storage.LoadFacts(ctx, db)
	require.NoError(t, err)
	assert.Equal(t, testutil.SmallFacts(), facts)
}

func TestWithTxRollsBack(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()

	failure := errors.New("boom")
	err := storage.WithTx(ctx, db, func(tx storage.DBTX) error {
		require.NoError(t, storage.NewSQLiteCourseRepo(tx).Create(ctx, model.CourseRecord{Name: "redes", Type: "normal", Credits: 4, Semester: 7}))
		return failure
	})
	assert.ErrorIs(t, err, failure)

	count, err := storage.NewSQLiteCourseRepo(db).Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestOpenDBOnDisk(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "scheduling.db")
	ctx := context.Background()

	db, err := storage.OpenDB(path)
	require.NoError(t, err)
	_, _, err = storage.Seed(ctx, db)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	// Migrations are idempotent and data survives reopening
	db, err = storage.OpenDB(path)
	require.NoError(t, err)
	defer db.Close()
	count, err := storage.NewSQLiteCourseRepo(db).Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 24, count)
}
