package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/rooseveltalej/proyecto3/internal/csvio"
	"github.com/rooseveltalej/proyecto3/internal/service"
	"github.com/rooseveltalej/proyecto3/pkg/model"
)

var (
	courses []string
	parity  string
)

var scheduleCmd = &cobra.Command{
	Use:   "schedule",
	Short: "Find up to three schedules for the given courses, in the given order",
	Long:  "Find up to three schedules for the given courses. Without --course the configured default courses are scheduled.",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := app.loadFacts(cmd.Context()); err != nil {
			return err
		}
		result, err := app.service.ScheduleForCourses(courses)
		if err != nil {
			return err
		}
		return report(cmd, result)
	},
}

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Find up to three schedules covering every course of odd or even semesters",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := app.loadFacts(cmd.Context()); err != nil {
			return err
		}
		result, err := app.service.ScheduleForParity(parity)
		if err != nil {
			return err
		}
		return report(cmd, result)
	},
}

func init() {
	scheduleCmd.Flags().StringArrayVar(&courses, "course", nil, "course to schedule; repeat for several courses")
	generateCmd.Flags().StringVar(&parity, "parity", "", `semester parity: "odd" or "even"`)
	_ = generateCmd.MarkFlagRequired("parity")
}

type scheduleOutput struct {
	Message   string           `json:"message"`
	Schedules [][]model.Record `json:"schedules"`
}

// report writes the result and sets the exit code
func report(cmd *cobra.Command, result service.ScheduleResult) error {
	if !result.Found() {
		fmt.Fprintln(cmd.ErrOrStderr(), result.Message())
		app.exitCode = exitNotFound
		return nil
	}

	// Verify schedule correctness
	if !app.service.Verify(result) {
		app.log.Errorf("a returned schedule violates its constraints: %+v", result.Schedules)
		app.exitCode = exitVerifyFail
		return nil
	}

	out, err := app.output(cmd)
	if err != nil {
		return err
	}
	defer out.Close()

	records := result.Records()
	if app.format == "csv" {
		err = csvio.WriteSchedules(out, records)
	} else {
		err = writeJson(out, scheduleOutput{Message: result.Message(), Schedules: records})
	}
	if err != nil {
		return err
	}

	app.exitCode = exitFound
	return nil
}

func writeJson(out io.Writer, value any) error {
	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(value); err != nil {
		return fmt.Errorf("an error occurred while building output json: %w", err)
	}
	return nil
}
