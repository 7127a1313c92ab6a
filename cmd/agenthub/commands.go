package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/mtlprog/agenthub/internal/config"
	"github.com/mtlprog/agenthub/internal/directory"
	"github.com/mtlprog/agenthub/internal/handler"
	"github.com/mtlprog/agenthub/internal/handler/dto"
	"github.com/mtlprog/agenthub/internal/render"
	"github.com/mtlprog/agenthub/internal/server"
	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"
)

func newRenderer(c *cli.Context) (*render.Renderer, error) {
	layout, err := render.ParseLayout(c.String("layout"))
	if err != nil {
		return nil, err
	}
	return render.New(render.WithLayout(layout))
}

func runServe(c *cli.Context) error {
	port := c.String("port")
	if port == "" {
		port = config.DefaultPort
	}
	origin := c.String("allowed-origin")
	if origin == "" {
		origin = config.DefaultAllowedOrigin
	}

	renderer, err := newRenderer(c)
	if err != nil {
		return err
	}

	h, err := handler.New(directory.Default(), renderer)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()

	return server.Run(ctx, ":"+port, h.Routes(origin))
}

func runRender(c *cli.Context) error {
	renderer, err := newRenderer(c)
	if err != nil {
		return err
	}

	page, err := renderer.RenderBytes(directory.Default())
	if err != nil {
		return err
	}

	out := c.String("out")
	if out == "" {
		_, err = c.App.Writer.Write(page)
		return err
	}

	if err := os.WriteFile(out, page, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", out, err)
	}
	slog.Info("landing page written", "path", out, "bytes", len(page))
	return nil
}

func runList(c *cli.Context) error {
	return writeAgents(c.App.Writer, c.String("format"), dto.ToAgentResponses(directory.Default().All()))
}

func writeAgents(w io.Writer, format string, agents []dto.AgentResponse) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(agents)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(agents); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown format %q, must be: json, yaml", format)
	}
}

func runCheck(c *cli.Context) error {
	dir := directory.Default()
	if err := directory.Validate(dir.All()); err != nil {
		return fmt.Errorf("directory check failed: %w", err)
	}
	fmt.Fprintf(c.App.Writer, "directory ok: %d agents\n", dir.Len())
	return nil
}
