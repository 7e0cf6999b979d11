package main

import (
	"log"
	"os"

	"github.com/urfave/cli/v2"
	"github.com/zfh521/lakeFS/cmd"
	"github.com/zfh521/lakeFS/config"
)

func main() {
	// Initialize config
	config.InitConfig()

	// Initialize CLI app
	app := &cli.App{
		Name:     "lakefs-models",
		Usage:    "Build, decode and validate lakeFS API payloads",
		Version:  "0.1.0",
		Flags:    cmd.GlobalFlags(),
		Commands: cmd.Commands(),
	}

	err := app.Run(os.Args)
	if err != nil {
		log.Fatal(err)
	}
}
