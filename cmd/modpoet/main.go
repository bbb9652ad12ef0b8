// Command modpoet loads a synthetic project description, resolves its module
// dependency graph and prints it.
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/katalvlaran/modpoet/bfs"
	"github.com/katalvlaran/modpoet/config"
	"github.com/katalvlaran/modpoet/core"
	"github.com/katalvlaran/modpoet/dfs"
	"github.com/katalvlaran/modpoet/internal/cli"
	"github.com/katalvlaran/modpoet/internal/logging"
	"github.com/katalvlaran/modpoet/internal/report"
	"github.com/katalvlaran/modpoet/resolve"
)

func main() {
	if err := run(os.Stdout, os.Stderr, os.Args[1:], cli.Env(".env")); err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run holds the program logic; errors other than *cli.ExitError mean exit 1.
func run(outW, errW io.Writer, args []string, env func(string) string) error {
	cfg, shouldExit, err := cli.Parse(args, outW, env)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	logger := logging.New(cfg.LogLevel, cfg.LogFormat, errW)

	file, err := config.Load(cfg.Path, config.WithLogger(logger))
	if err != nil {
		return err
	}
	projectCfg, err := file.Project()
	if err != nil {
		return fmt.Errorf("%s: %w", cfg.Path, err)
	}

	opts := []resolve.Option{resolve.WithLogger(logger)}
	if cfg.Strict {
		opts = append(opts, resolve.WithStrictModules())
	}
	project := resolve.New(projectCfg, opts...)

	universe, err := project.Universe()
	if err != nil {
		return err
	}
	graph, err := project.ResolvedDependencies()
	if err != nil {
		return err
	}

	names := universe.Names()
	cycles, err := dfs.DetectCycles(graph, names)
	if err != nil {
		return err
	}
	if len(cycles) > 0 {
		logger.Warn("Dependency cycles detected; the generated project will not build.", "cycles", len(cycles))
	}

	var order []core.ModuleName
	if cfg.Order {
		order, err = dfs.BuildOrder(graph, names)
		if err != nil {
			return err
		}
	}

	doc := report.New(file.ProjectName, names, graph, order, cycles)
	if cfg.Closure != "" {
		res, err := bfs.Walk(graph, core.ModuleName(cfg.Closure))
		if err != nil {
			return err
		}
		c := &report.Closure{Module: core.ModuleName(cfg.Closure)}
		for _, m := range res.Dependencies() {
			c.Dependencies = append(c.Dependencies, report.Reached{Name: m, Depth: res.Depth[m]})
		}
		doc.Closure = c
	}

	logger.Info("Resolved dependencies.",
		slog.String("project", file.ProjectName),
		slog.Int("modules", universe.Len()),
		slog.Int("edges", graph.EdgeCount()))

	if cfg.Format == "hcl" {
		_, err = outW.Write(config.EncodeHCL(config.Snapshot(file, graph)))
		return err
	}
	return report.Write(outW, cfg.Format, doc)
}
