package main

import (
	"errors"
	"os"

	"github.com/cristianoliveira/rolodex/cmd"
	"github.com/cristianoliveira/rolodex/internal/colors"
)

func main() {
	if err := cmd.Execute(); err != nil {
		if !errors.Is(err, cmd.ErrCommandFailed) {
			colors.Error(err.Error())
		}
		os.Exit(1)
	}
}
