package main

import (
	"context"
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"

	"github.com/rvale/lazygrid/internal/app"
	"github.com/rvale/lazygrid/internal/config"
	"github.com/rvale/lazygrid/internal/models"
	"github.com/rvale/lazygrid/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Printf("Warning: Could not load config: %v (using defaults)\n", err)
		cfg = config.GetDefaults()
	}

	table, scenarios, err := loadWorkspace(context.Background(), cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	zone.NewGlobal()

	opts := []tea.ProgramOption{tea.WithAltScreen()}
	if cfg.UI.MouseEnabled {
		opts = append(opts, tea.WithMouseCellMotion())
	}

	p := tea.NewProgram(app.New(cfg, table, scenarios), opts...)
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running program: %v\n", err)
		os.Exit(1)
	}
}

// loadWorkspace opens the local store (seeding it on first run) and loads
// the table to browse plus the scenario list. With the Postgres source
// enabled, the table snapshot comes from the live database instead.
func loadWorkspace(ctx context.Context, cfg *config.Config) (*models.Table, []models.Scenario, error) {
	path, err := cfg.WorkspacePath()
	if err != nil {
		return nil, nil, err
	}

	ws, err := store.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer func() { _ = ws.Close() }()

	empty, err := ws.IsEmpty()
	if err != nil {
		return nil, nil, err
	}
	if empty && cfg.General.SeedDemoData {
		if err := ws.Seed(); err != nil {
			return nil, nil, fmt.Errorf("failed to seed workspace: %w", err)
		}
	}

	scenarios, err := ws.Scenarios()
	if err != nil {
		return nil, nil, err
	}

	if cfg.Postgres.Enabled {
		table, err := loadPostgresTable(ctx, cfg)
		if err != nil {
			return nil, nil, err
		}
		return table, scenarios, nil
	}

	tableName := cfg.General.DefaultTable
	if tableName == "" {
		names, err := ws.TableNames()
		if err != nil {
			return nil, nil, err
		}
		if len(names) == 0 {
			return nil, nil, fmt.Errorf("workspace has no tables")
		}
		tableName = names[0]
	}

	table, err := ws.GetTable(tableName, cfg.Data.RowLimit)
	if err != nil {
		return nil, nil, err
	}
	return table, scenarios, nil
}

func loadPostgresTable(ctx context.Context, cfg *config.Config) (*models.Table, error) {
	pgCfg := store.PostgresConfig{
		Host:     cfg.Postgres.Host,
		Port:     cfg.Postgres.Port,
		Database: cfg.Postgres.Database,
		User:     cfg.Postgres.User,
		SSLMode:  cfg.Postgres.SSLMode,
		Schema:   cfg.Postgres.Schema,
	}

	if configDir, err := os.UserConfigDir(); err == nil {
		if passwords, err := store.NewPasswordStore(configDir); err == nil {
			if password, err := passwords.Get(cfg.Postgres.Database); err == nil {
				pgCfg.Password = password
			}
		}
	}

	source, err := store.OpenPostgres(ctx, pgCfg)
	if err != nil {
		return nil, err
	}
	defer source.Close()

	tableName := cfg.General.DefaultTable
	if tableName == "" {
		names, err := source.TableNames(ctx)
		if err != nil {
			return nil, err
		}
		if len(names) == 0 {
			return nil, fmt.Errorf("schema %s has no tables", cfg.Postgres.Schema)
		}
		tableName = names[0]
	}

	return source.FetchTable(ctx, tableName, cfg.Data.RowLimit)
}
