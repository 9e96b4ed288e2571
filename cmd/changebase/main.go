package main

import (
	"os"

	"github.com/calebcase/changebase/cmd/changebase/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
