package main

import (
	"fmt"
	"os"

	"github.com/chipapapo/planetarium-service-api/internal/app"
)

func main() {
	err := app.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
