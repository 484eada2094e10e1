package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/ripit/ripit-cli/cmd"
	"github.com/ripit/ripit-cli/internal/logging"
	"github.com/ripit/ripit-cli/pkg/ripit"
)

func main() {
	defer logging.Close()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		var be *ripit.BackendError
		if errors.As(err, &be) && be.Code >= 2 {
			os.Exit(be.Code)
		}
		os.Exit(1)
	}
}
