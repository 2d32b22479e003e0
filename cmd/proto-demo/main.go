package main

import (
	"os"

	"proto-demo/cmd/proto-demo/app"
)

func main() {
	if err := app.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
