// Command nonolath drives the core solver, disambiguator, and clue
// deriver over chargrid and webpbn puzzle files.
package main

import (
	"errors"
	"fmt"
	"os"
)

func main() {
	os.Exit(run())
}

func run() int {
	err := execute()
	if err == nil {
		return exitSuccess
	}

	var ee *exitError
	if errors.As(err, &ee) {
		fmt.Fprintln(os.Stderr, ee.Error())

		return ee.code
	}

	fmt.Fprintln(os.Stderr, err.Error())

	return exitUsageError
}
