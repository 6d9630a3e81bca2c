package main

import (
	"log"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/jjaammhh/JAM-G19-Colors/pkg/g19"
)

func main() {
	app := cli.NewApp()

	app.Version = "0.0.1"
	app.Usage = "set the backlight color of a Logitech G19 keyboard"
	app.Flags = []cli.Flag{
		&cli.IntFlag{
			Name:     "r",
			Usage:    "Red component of the color (0-255)",
			Required: true,
		},
		&cli.IntFlag{
			Name:     "g",
			Usage:    "Green component of the color (0-255)",
			Required: true,
		},
		&cli.IntFlag{
			Name:     "b",
			Usage:    "Blue component of the color (0-255)",
			Required: true,
		},
		&cli.BoolFlag{
			Name:  "inspect",
			Usage: "List the keyboard's HID interfaces and USB descriptor, then exit",
		},
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "More logging",
		},
	}
	app.Action = func(cliContext *cli.Context) error {
		if cliContext.Bool("inspect") {
			return inspect()
		}

		r := cliContext.Int("r")
		g := cliContext.Int("g")
		b := cliContext.Int("b")

		if err := g19.SetColor(g19.HidBackend(), r, g, b, cliContext.Bool("verbose")); err != nil {
			return err
		}

		log.Printf("Set backlight to R=%d G=%d B=%d\n", r, g, b)
		return nil
	}

	err := app.Run(os.Args)
	if err != nil {
		log.Fatal(err)
	}
}
