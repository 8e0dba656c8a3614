package main

import (
	"fmt"
	"os"
)

// Exit codes follow the solver convention: 10 when schedules are found, 20 when none exist
// and 15 when a returned schedule fails verification.
const (
	exitError      = 1
	exitFound      = 10
	exitVerifyFail = 15
	exitNotFound   = 20
)

func main() {
	if err := app.run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitError)
	}
	os.Exit(app.exitCode)
}
