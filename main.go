package main

import (
	"fmt"
	"os"

	"crm/cmd"
)

func main() {
	if err := cmd.Start(); err != nil {
		fmt.Fprintf(os.Stderr, "crm run into an error: %s\n", err)
		os.Exit(1)
	}
}
