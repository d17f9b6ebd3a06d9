// Command clarigen generates Clarity contract sources from templates.
package main

import (
	"os"

	"github.com/x402-marketplace/clarigen/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
