package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/pbaille/tidybrain/internal/config"
	"github.com/pbaille/tidybrain/internal/console"
	"github.com/pbaille/tidybrain/internal/domain"
	"github.com/pbaille/tidybrain/internal/workspace"
)

var (
	configPath string
	logLevel   string
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var plain bool

	cmd := &cobra.Command{
		Use:   "tidybrain",
		Short: "Journal that files each entry into daily, project, section, tag and person logs",
		Args:  cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setupLogging(logLevel)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := openWorkspace()
			if err != nil {
				return err
			}
			defer ws.Close()

			interp := console.NewInterpreter(ws.Registry)
			if plain || !isatty.IsTerminal(os.Stdin.Fd()) {
				return console.RunPlain(interp, os.Stdin, os.Stdout)
			}
			return console.RunTUI(interp, console.NewCompleter(ws.Registry))
		},
	}

	cmd.PersistentFlags().StringVarP(&configPath, "config", "c", config.DefaultPath(), "workspace config file (YAML or JSON)")
	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "log level: debug, info, warn, error")
	cmd.Flags().BoolVar(&plain, "plain", false, "read lines from stdin without the terminal UI")

	cmd.AddCommand(addCmd())
	cmd.AddCommand(treeCmd())
	return cmd
}

func setupLogging(level string) error {
	var lvl slog.Level
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "info":
		lvl = slog.LevelInfo
	case "warn", "warning":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		return fmt.Errorf("unknown log level %q", level)
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
	slog.SetDefault(logger)
	return nil
}

func openWorkspace() (*workspace.Workspace, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	return workspace.Load(cfg, time.Now())
}

func addCmd() *cobra.Command {
	var target string

	cmd := &cobra.Command{
		Use:   "add [content]",
		Short: "Add a single entry",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := openWorkspace()
			if err != nil {
				return err
			}
			defer ws.Close()

			var ctx domain.Context
			if target != "" {
				ctx.Project, ctx.Section, _ = strings.Cut(target, "/")
				project, ok := ws.Registry.Project(ctx.Project)
				if !ok {
					return fmt.Errorf("%w: %s", console.ErrUnknownProject, ctx.Project)
				}
				if _, ok := project.Section(ctx.Section); ctx.Section != "" && !ok {
					return fmt.Errorf("%w: %s in project %q", console.ErrUnknownSection, ctx.Section, ctx.Project)
				}
			}

			entry, err := domain.NewEntry(strings.Join(args, " "), ctx, time.Now())
			if err != nil {
				return err
			}
			if err := ws.Registry.Process(entry); err != nil {
				return err
			}

			fmt.Print(domain.FormatLine(entry))
			return nil
		},
	}

	cmd.Flags().StringVarP(&target, "project", "p", "", "file under project[/section]")
	return cmd
}

func treeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tree",
		Short: "Show the routing graph and where each log is written",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := openWorkspace()
			if err != nil {
				return err
			}
			defer ws.Close()

			console.PrintTree(os.Stdout, ws.Registry)
			return nil
		},
	}
}
