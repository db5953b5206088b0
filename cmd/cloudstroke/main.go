package main

import (
	"os"

	"github.com/ThatOtherAndrew/cloudstroke/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
