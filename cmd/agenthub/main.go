// @title			HPC Agent Hub API
// @version		1.0
// @description	Directory of the HPC agents linked from the landing page.
// @BasePath		/api

package main

import (
	"log/slog"
	"os"

	"github.com/mtlprog/agenthub/internal/config"
	"github.com/mtlprog/agenthub/internal/logger"
	"github.com/urfave/cli/v2"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		slog.Error("application error", "error", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "agenthub",
		Usage: "Landing page linking the HPC AI agents",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Value:   "info",
				Usage:   "Log level (debug, info, warn, error)",
				EnvVars: []string{"LOG_LEVEL"},
			},
			&cli.StringFlag{
				Name:    "log-format",
				Value:   config.DefaultLogFormat,
				Usage:   "Log format (json, text)",
				EnvVars: []string{"LOG_FORMAT"},
			},
			&cli.StringFlag{
				Name:    "layout",
				Value:   config.DefaultLayout,
				Usage:   "Card density (comfortable, compact)",
				EnvVars: []string{"LAYOUT"},
			},
		},
		Before: func(c *cli.Context) error {
			logger.Setup(logger.ParseLevel(c.String("log-level")), c.String("log-format"))
			return nil
		},
		Commands: []*cli.Command{
			{
				Name:  "serve",
				Usage: "Start the web server",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "port",
						Aliases: []string{"p"},
						Value:   config.DefaultPort,
						Usage:   "HTTP server port",
						EnvVars: []string{"PORT"},
					},
					&cli.StringFlag{
						Name:    "allowed-origin",
						Value:   config.DefaultAllowedOrigin,
						Usage:   "CORS allowed origin",
						EnvVars: []string{"CORS_ALLOWED_ORIGIN"},
					},
				},
				Action: runServe,
			},
			{
				Name:  "render",
				Usage: "Write the landing page as a static HTML file",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "out",
						Aliases: []string{"o"},
						Usage:   "Output file (default: stdout)",
					},
				},
				Action: runRender,
			},
			{
				Name:  "list",
				Usage: "Print the agent directory",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "format",
						Aliases: []string{"f"},
						Value:   "json",
						Usage:   "Output format (json, yaml)",
					},
				},
				Action: runList,
			},
			{
				Name:   "check",
				Usage:  "Validate the compiled-in agent directory",
				Action: runCheck,
			},
		},
		Action: runServe,
	}
}
