package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/hdng/taskboard/internal/app"
	"github.com/hdng/taskboard/internal/model"
	"github.com/hdng/taskboard/internal/store"
	"github.com/hdng/taskboard/internal/tasksort"
)

var version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configPath string
	var dbPath string

	cmd := &cobra.Command{
		Use:          "taskboard",
		Short:        "Terminal task and project board",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(configPath, dbPath)
		},
	}

	cmd.PersistentFlags().StringVar(&configPath, "config", model.DefaultConfigPath(), "config file path")
	cmd.PersistentFlags().StringVar(&dbPath, "db", "", "database path (overrides config)")

	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the taskboard version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(version)
		},
	})

	return cmd
}

func runTUI(configPath, dbPath string) error {
	cfg, err := model.LoadConfig(configPath)
	if err != nil {
		return err
	}
	if dbPath == "" {
		dbPath = cfg.DBPath
	}

	s, err := store.NewSQLiteStore(dbPath)
	if err != nil {
		return err
	}
	defer s.Close()

	sort := tasksort.State{Column: tasksort.ParseColumn(cfg.Display.SortColumn)}
	if !cfg.Display.SortDesc {
		sort.Direction = tasksort.Ascending
	}

	// Mouse reporting is required for the searchbar's outside-click
	// dismissal.
	p := tea.NewProgram(
		app.New(s, sort),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running UI: %w", err)
	}
	return nil
}
