// Package cli is the crmctl operator command tree.
package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"crmapi/internal/app"
	"crmapi/internal/config"
	"crmapi/internal/database/migration"
	"crmapi/internal/logger"
)

// Connect builds the application for one command run.
type Connect func(ctx context.Context, cfg *config.AppConfig) (*app.App, error)

// NewRootCmd constructs the crmctl command tree. Each subcommand connects on demand, so --help
// works without any backing service.
func NewRootCmd(cfg *config.AppConfig, connect Connect) *cobra.Command {
	root := &cobra.Command{
		Use:           "crmctl",
		Short:         "Operator utilities for the CRM API",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level: debug|info|warn|error")
	root.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		logger.SetLevel(cfg.LogLevel)
	}

	// run connects, hands the app to fn, and always releases it.
	run := func(cmd *cobra.Command, fn func(ctx context.Context, a *app.App) error) error {
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}
		a, err := connect(ctx, cfg)
		if err != nil {
			return err
		}
		defer a.Close()
		return fn(ctx, a)
	}

	migrateCmd := &cobra.Command{Use: "migrate", Short: "Create the report archive schema if it is missing", Args: cobra.NoArgs, RunE: func(cmd *cobra.Command, args []string) error {
		return run(cmd, func(ctx context.Context, a *app.App) error {
			return migration.EnsureMigrated(ctx, a.DB, cfg.Database.Host)
		})
	}}
	root.AddCommand(migrateCmd)

	// leads group
	leadsCmd := &cobra.Command{Use: "leads", Short: "Lead reports"}
	var days int
	var rep string
	leadsDaily := &cobra.Command{Use: "daily", Short: "Leads added per day and sales rep", Example: "  crmctl leads daily --days 14 --rep 3", Args: cobra.NoArgs, RunE: func(cmd *cobra.Command, args []string) error {
		return run(cmd, func(ctx context.Context, a *app.App) error {
			r, err := a.Services.Leads.DailyLeads(ctx, days, rep)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), r)
		})
	}}
	leadsDaily.Flags().IntVar(&days, "days", 7, "Trailing window in days")
	leadsDaily.Flags().StringVar(&rep, "rep", "", "Restrict to one sales rep id")

	var date string
	leadsFresh := &cobra.Command{Use: "fresh", Short: "Leads whose website was first seen on a day", Example: "  crmctl leads fresh --date 2026-10-16", Args: cobra.NoArgs, RunE: func(cmd *cobra.Command, args []string) error {
		return run(cmd, func(ctx context.Context, a *app.App) error {
			leads, err := a.Services.Leads.FreshLeads(ctx, date)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), leads)
		})
	}}
	leadsFresh.Flags().StringVar(&date, "date", "", "Day as YYYY-MM-DD (default today)")
	leadsCmd.AddCommand(leadsDaily, leadsFresh)
	root.AddCommand(leadsCmd)

	// reps group
	repsCmd := &cobra.Command{Use: "reps", Short: "Sales rep reports"}
	var metric string
	var limit int
	repsBoard := &cobra.Command{Use: "leaderboard", Short: "Top sales reps by a metric", Example: "  crmctl reps leaderboard --metric conversion --limit 10", Args: cobra.NoArgs, RunE: func(cmd *cobra.Command, args []string) error {
		return run(cmd, func(ctx context.Context, a *app.App) error {
			board, err := a.Services.SalesReps.Leaderboard(ctx, metric, limit)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), board)
		})
	}}
	repsBoard.Flags().StringVar(&metric, "metric", "revenue", "revenue|deals|meetings|contacted|conversion")
	repsBoard.Flags().IntVar(&limit, "limit", 5, "Entries to print")
	repsCmd.AddCommand(repsBoard)
	root.AddCommand(repsCmd)

	// report group
	reportCmd := &cobra.Command{Use: "report", Short: "Archived CSV reports"}
	var reportDays int
	reportGenerate := &cobra.Command{Use: "generate <kind>", Short: "Generate and archive a report", Example: "  crmctl report generate daily_leads --days 30\n  crmctl report generate pipeline", Args: cobra.ExactArgs(1), RunE: func(cmd *cobra.Command, args []string) error {
		return run(cmd, func(ctx context.Context, a *app.App) error {
			r, err := a.Services.Reports.Generate(ctx, args[0], reportDays)
			if err != nil {
				return fmt.Errorf("generate %s: %w", args[0], err)
			}
			return printJSON(cmd.OutOrStdout(), r)
		})
	}}
	reportGenerate.Flags().IntVar(&reportDays, "days", 0, "Window for daily_leads (default 7)")
	reportCmd.AddCommand(reportGenerate)
	root.AddCommand(reportCmd)

	return root
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
