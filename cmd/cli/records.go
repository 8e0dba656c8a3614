package main

import (
	"fmt"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/rooseveltalej/proyecto3/internal/csvio"
	"github.com/rooseveltalej/proyecto3/internal/storage"
	"github.com/rooseveltalej/proyecto3/pkg/model"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Insert the default catalogue into an empty record store",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := app.requireDB(); err != nil {
			return err
		}
		professors, courses, err := storage.Seed(cmd.Context(), app.db)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Inserted %d professors and %d courses\n", professors, courses)
		return nil
	},
}

var (
	professorsCsv string
	coursesCsv    string
)

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Append professors and courses from CSV files to the record store",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := app.requireDB(); err != nil {
			return err
		}
		if professorsCsv == "" && coursesCsv == "" {
			return fmt.Errorf("at least one of --professors or --courses must be specified")
		}
		facts, err := csvio.LoadFacts(professorsCsv, coursesCsv)
		if err != nil {
			return err
		}
		app.warnSkipped(coursesCsv, facts)
		if err := storage.Import(cmd.Context(), app.db, facts); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Imported %d professors and %d courses\n", len(facts.Professors), len(facts.Courses))
		return nil
	},
}

var factsCmd = &cobra.Command{
	Use:   "facts",
	Short: "Print the normalized professors and courses the engine searches over",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := app.loadFacts(cmd.Context()); err != nil {
			return err
		}
		professors, courses := app.service.Facts()
		facts := model.Facts{
			Professors: lo.Map(professors, func(p model.Professor, _ int) model.ProfessorRecord { return p.Record() }),
			Courses:    lo.Map(courses, func(c model.Course, _ int) model.CourseRecord { return c.Record() }),
		}

		out, err := app.output(cmd)
		if err != nil {
			return err
		}
		defer out.Close()

		if app.format == "csv" {
			if err := csvio.WriteProfessors(out, facts.Professors); err != nil {
				return err
			}
			fmt.Fprintln(out)
			return csvio.WriteCourses(out, facts.Courses)
		}
		return writeJson(out, facts)
	},
}

func init() {
	importCmd.Flags().StringVar(&professorsCsv, "professors", "", "professors CSV file")
	importCmd.Flags().StringVar(&coursesCsv, "courses", "", "courses CSV file")
}
