// Command clientrec builds client records from the command line.
//
// It is a thin wrapper over internal/client/service: every argument is passed
// through as a construction input and the result (or the domain error) is
// printed. No record logic lives here.
package main

import "os"

func main() {
	os.Exit(Execute(os.Args[1:]))
}
