// Command taskparse parses task lines from the command line or stdin and
// prints the result as JSON.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
