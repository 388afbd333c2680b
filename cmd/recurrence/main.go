// Command recurrence derives asymptotic bounds for divide-and-conquer and
// decrease-and-conquer recurrence relations.
//
//	recurrence solve "T(n) = 2T(n/2) + n"
//	recurrence interactive
//	recurrence batch equations.yaml --workers 8
//	recurrence serve --addr :8080
package main

import (
	"os"
)

func main() {
	if err := execute(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		os.Exit(1)
	}
}
