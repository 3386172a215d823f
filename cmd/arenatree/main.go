package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
)

// Run using
//  go run ./cmd/arenatree <command> <flags>

var (
	logLevelFlag = cli.StringFlag{
		Name:    "log-level",
		Usage:   "minimum log level (debug, info, warn, error)",
		EnvVars: []string{"ARENATREE_LOG_LEVEL"},
		Value:   "info",
	}
	logFormatFlag = cli.StringFlag{
		Name:    "log-format",
		Usage:   "log output format (text, json)",
		EnvVars: []string{"ARENATREE_LOG_FORMAT"},
		Value:   "text",
	}
	sizeFlag = cli.IntFlag{
		Name:    "n",
		Usage:   "number of keys to insert",
		EnvVars: []string{"ARENATREE_N"},
		Value:   100,
	}
)

func main() {
	app := &cli.App{
		Name:  "arenatree",
		Usage: "build arena-backed search trees and inspect them",
		Flags: []cli.Flag{
			&logLevelFlag,
			&logFormatFlag,
		},
		Commands: []*cli.Command{
			&Scenario,
			&Stats,
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
