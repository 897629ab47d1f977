package main

// Mosaic: a terminal dashboard for a fleet of AI agents.
//
// Build:  go build -o mosaic .
// Run:    ./mosaic
//
// Keys:
//   1-8        jump to a sidebar link
//   n          quick chat with an agent
//   ?          toggle full help
//   q/ctrl+c   quit

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"mosaic-tui/internal/config"
	"mosaic-tui/internal/logging"
	"mosaic-tui/internal/metrics"
	"mosaic-tui/internal/seed"
	"mosaic-tui/internal/ui"
)

var version = "dev"

// ---------------------------------------------------------------------------
// Flags and shared state
// ---------------------------------------------------------------------------

var (
	configPath string
	startView  string
	agentID    int
	dumpJSON   bool
	screenshot bool
	watch      bool
	verbose    bool

	cfg    *config.Config
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:           "mosaic",
	Short:         "Mosaic - a terminal dashboard for your AI agents",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}
		if startView != "" {
			cfg.StartView = startView
		}
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid config %s: %w", configPath, err)
		}

		logger, err = logging.New(cfg.Logging, verbose)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		logger.Info("startup",
			zap.String("version", version),
			zap.String("config", configPath),
			zap.String("theme", cfg.Theme),
			zap.String("start_view", cfg.StartView))
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: run,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), "mosaic", version)
	},
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configPath, "config", config.DefaultPath(), "path to the config file")
	flags.BoolVarP(&verbose, "verbose", "v", false, "log at debug level")

	rootCmd.Flags().StringVar(&startView, "view", "", "start view (dashboard, agents, chat)")
	rootCmd.Flags().IntVar(&agentID, "agent", 0, "open the chat view for this agent id")
	rootCmd.Flags().BoolVar(&dumpJSON, "json", false, "print the sample data as JSON and exit")
	rootCmd.Flags().BoolVar(&screenshot, "screenshot", false, "render one frame to stdout and exit")
	rootCmd.Flags().BoolVar(&watch, "watch", false, "reload the config file when it changes")

	rootCmd.AddCommand(versionCmd)
}

// ---------------------------------------------------------------------------
// Run
// ---------------------------------------------------------------------------

func run(cmd *cobra.Command, args []string) error {
	data, err := seed.Load()
	if err != nil {
		return fmt.Errorf("failed to load sample data: %w", err)
	}

	if dumpJSON {
		return writeSnapshot(cmd.OutOrStdout(), data)
	}

	app := ui.New(ui.Options{
		Config:     cfg,
		Data:       data,
		Logger:     logger,
		StartAgent: agentID,
	})

	// --screenshot: render one frame to stdout and exit (for captures)
	if screenshot {
		fmt.Fprintln(cmd.OutOrStdout(), app.Screenshot(160, 50))
		return nil
	}

	p := tea.NewProgram(app, tea.WithAltScreen())

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()
	if watch {
		go func() {
			err := config.Watch(ctx, configPath,
				func(c *config.Config) { p.Send(ui.ConfigReloadedMsg{Config: c}) },
				func(err error) { logger.Warn("config reload failed", zap.Error(err)) })
			if err != nil {
				logger.Warn("config watcher stopped", zap.String("path", configPath), zap.Error(err))
			}
		}()
	}

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run program: %w", err)
	}
	logger.Info("shutdown")
	return nil
}

// ---------------------------------------------------------------------------
// JSON snapshot
// ---------------------------------------------------------------------------

type agentJSON struct {
	ID         int     `json:"id"`
	Name       string  `json:"name"`
	Type       string  `json:"type"`
	Status     string  `json:"status"`
	Skills     int     `json:"skills"`
	Balance    float64 `json:"balance"`
	LastActive string  `json:"last_active"`
}

type moduleJSON struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Equipped bool   `json:"equipped"`
}

type snapshot struct {
	Agents        []agentJSON  `json:"agents"`
	ChatAgents    []string     `json:"chat_agents"`
	Modules       []moduleJSON `json:"modules"`
	ReferenceDate string       `json:"reference_date"`
	Points        int          `json:"chart_points"`
	Links         seed.Links   `json:"links"`
}

func buildSnapshot(d *seed.Data) snapshot {
	s := snapshot{
		ReferenceDate: d.ReferenceDate.Format(metrics.DateLayout),
		Points:        len(d.Series),
		Links:         d.Links,
	}
	for _, a := range d.Agents {
		s.Agents = append(s.Agents, agentJSON{
			ID:         a.ID,
			Name:       a.Name,
			Type:       a.Type,
			Status:     a.Status.String(),
			Skills:     a.Skills,
			Balance:    a.Balance,
			LastActive: a.LastActive,
		})
	}
	for _, a := range d.ChatAgents {
		s.ChatAgents = append(s.ChatAgents, a.Name)
	}
	for _, m := range d.Modules {
		s.Modules = append(s.Modules, moduleJSON{ID: m.ID, Name: m.Name, Equipped: m.Equipped})
	}
	return s
}

func writeSnapshot(w io.Writer, d *seed.Data) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(buildSnapshot(d)); err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
