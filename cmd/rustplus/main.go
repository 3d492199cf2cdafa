package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "rustplus",
		Usage: "клиент Rust+ companion: запросы к серверу, камеры, чат-бот",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "config",
				Value: "conf/rustplus.yaml",
				Usage: "путь к конфигурационному файлу",
			},
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "debug-логирование",
			},
		},
		Commands: []*cli.Command{
			infoCommand(),
			timeCommand(),
			mapCommand(),
			messageCommand(),
			entityCommand(),
			cameraCommand(),
			botCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
