package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/ottermq/mbconsole/internal/client"
)

var (
	VERSION = ""
)

// @title Message Broker Console API
// @version 1.0
// @description JSON API of the message broker console
// @host localhost:3000
// @BasePath /api/
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	code := runMain(Execute, os.Stderr)
	if code != 0 {
		os.Exit(code)
	}
}

func runMain(execute func() error, stderr io.Writer) int {
	if err := execute(); err != nil {
		return exitCodeForError(err, stderr)
	}
	return 0
}

func exitCodeForError(err error, stderr io.Writer) int {
	var ee *exitError
	if errors.As(err, &ee) {
		if !ee.silent {
			fmt.Fprintln(stderr, resolveErrorForExitError(ee, err))
		}
		return ee.code
	}

	if errors.Is(err, context.Canceled) {
		fmt.Fprintln(stderr, "canceled")
		return 130
	}

	fmt.Fprintln(stderr, describeError(err))
	return 1
}

// describeError prefixes broker failures the way an operator expects to read them.
func describeError(err error) string {
	var apiErr *client.APIError
	switch {
	case errors.As(err, &apiErr):
		if apiErr.Message != "" {
			return fmt.Sprintf("Error: broker returned %d: %s", apiErr.StatusCode, apiErr.Message)
		}
		return fmt.Sprintf("Error: broker returned %d", apiErr.StatusCode)
	}
	return "Error: " + err.Error()
}

func resolveErrorForExitError(ee *exitError, fallback error) error {
	if ee != nil && ee.err != nil {
		return ee.err
	}
	return fallback
}
