package main

import (
	"os"

	"github.com/urfave/cli"

	"github.com/df07/go-raycaster/cmd"
	"github.com/df07/go-raycaster/pkg/log"
)

func newApp() *cli.App {
	// -v is the verbose flag, so version only gets the long form
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print only the version",
	}

	app := cli.NewApp()
	app.Name = "go-raycaster"
	app.Usage = "render scenes with a recursive ray caster"
	app.Version = "0.1.0"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
		cli.BoolFlag{
			Name:  "vv",
			Usage: "enable even more verbose logging",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:  "render",
			Usage: "render a single frame",
			Description: `
Render one frame of a built-in scene to a PNG file. Settings come from the
optional YAML file given with --config; flags override individual values.
Interrupting the render writes the tiles finished so far.`,
			Flags: append([]cli.Flag{
				cli.StringFlag{
					Name:  "out, o",
					Value: "frame.png",
					Usage: "image filename for the rendered frame",
				},
			}, cmd.RenderFlags...),
			Action: cmd.RenderFrame,
		},
		{
			Name:  "animate",
			Usage: "render a sequence of frames",
			Description: `
Render the animation frames configured in the YAML file (or --frames evenly
spaced frames over [0, 1]) to numbered PNG files.`,
			Flags: append([]cli.Flag{
				cli.StringFlag{
					Name:  "out-dir, o",
					Value: "frames",
					Usage: "directory for the rendered frames",
				},
				cli.IntFlag{
					Name:  "frames, n",
					Usage: "number of frames",
				},
			}, cmd.RenderFlags...),
			Action: cmd.RenderAnimation,
		},
		{
			Name:    "strategies",
			Aliases: []string{"list"},
			Usage:   "list strategies, kernels, filters, tile orders and scenes",
			Action:  cmd.ListOptions,
		},
	}
	return app
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		log.New("main").Error(err)
		os.Exit(1)
	}
}
