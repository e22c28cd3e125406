package main

import (
	"os"

	"github.com/sqlbridge/sql-translator/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
