// clflog - Common Log Format query tool
//
// clflog parses CLF access logs into records and exports, aggregates or
// filters them.
package main

import (
	"os"

	"github.com/ccollicutt/clflog/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
