package cmd

import (
	"fmt"
	"os"

	"github.com/unixv11/build/constants"
)

// ExitWithError prints the message in the error color and exits with
// status 1.
func ExitWithError(errs string) {
	fmt.Println(fmt.Sprintf(constants.ErrorColor, errs))
	os.Exit(1)
}
