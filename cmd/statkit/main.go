package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
)

// initStatkitApp initializes the statkit demo app.
func initStatkitApp() *cli.App {
	return &cli.App{
		Name:     "statkit",
		HelpName: "statkit",
		Usage:    "demonstrates statistics hierarchies on synthetic workloads",
		Commands: []*cli.Command{
			&DemoCommand,
			&VisualizeCommand,
		},
	}
}

func main() {
	app := initStatkitApp()
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
