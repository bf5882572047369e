package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"timecli/internal/bootstrap"
	sessiondto "timecli/internal/modules/session/dto"
	"timecli/internal/platform/config"
	apperrors "timecli/internal/platform/errors"
	"timecli/internal/platform/logging"
	"timecli/internal/platform/timeutil"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var dataDir string
	var verbose bool

	root := &cobra.Command{
		Use:           "timecli",
		Short:         "Personal time-tracking journal",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&dataDir, "data-dir", "", "data directory (default: $XDG_DATA_HOME/timecli)")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(newStartCmd(&dataDir, &verbose))
	root.AddCommand(newStopCmd(&dataDir, &verbose))
	root.AddCommand(newStatusCmd(&dataDir, &verbose))
	root.AddCommand(newAddCmd(&dataDir, &verbose))
	root.AddCommand(newEditCmd(&dataDir, &verbose))
	root.AddCommand(newDeleteCmd(&dataDir, &verbose))
	root.AddCommand(newListCmd(&dataDir, &verbose))
	root.AddCommand(newImportCmd(&dataDir, &verbose))
	root.AddCommand(newExportCmd(&dataDir, &verbose))
	root.AddCommand(newSummaryCmd(&dataDir, &verbose))
	root.AddCommand(newReportCmd(&dataDir, &verbose))
	root.AddCommand(newETACmd(&dataDir, &verbose))
	root.AddCommand(newStudyCmd(&dataDir, &verbose))
	root.AddCommand(newSlotsCmd(&dataDir, &verbose))
	root.AddCommand(newBankCmd(&dataDir, &verbose))
	root.AddCommand(newResetCmd(&dataDir, &verbose))
	return root
}

func loadApp(dataDir string, verbose bool) (*bootstrap.App, error) {
	cfg, err := config.Load(dataDir)
	if err != nil {
		return nil, err
	}
	return bootstrap.New(cfg, logging.NewStderr(verbose))
}

func shortID(id string, length int) string {
	if len(id) > length {
		return id[:length]
	}
	return id
}

func newTable(headers ...string) *table.Table {
	return table.New().
		Headers(headers...).
		Border(lipgloss.NormalBorder()).
		StyleFunc(func(_, _ int) lipgloss.Style {
			return lipgloss.NewStyle().Padding(0, 1)
		})
}

// renderOverlap expands an overlap failure into the conflicting sessions so
// the user can see exactly what is in the way.
func renderOverlap(w io.Writer, err error, idLen int) error {
	var overlap *apperrors.OverlapError
	if !errors.As(err, &overlap) {
		return err
	}
	t := newTable("ID", "Date", "Start", "End")
	for _, c := range overlap.Conflicts {
		t.Row(shortID(c.ID, idLen), timeutil.FormatDate(c.Start), timeutil.FormatClockTime(c.Start), timeutil.FormatClockTime(c.End))
	}
	_, _ = fmt.Fprintln(w, "Conflicting sessions:")
	_, _ = fmt.Fprintln(w, t)
	return fmt.Errorf("interval overlaps %d existing session(s)", len(overlap.Conflicts))
}

func newStartCmd(dataDir *string, verbose *bool) *cobra.Command {
	return &cobra.Command{
		Use:   "start",
		Short: "Start tracking a session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataDir, *verbose)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			out, err := app.SessionCLI.Start(context.Background())
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Started session %s at %s\n",
				shortID(out.SessionID, app.Config.ShortIDLength), timeutil.FormatClockTime(out.StartedAt))
			return nil
		},
	}
}

func newStopCmd(dataDir *string, verbose *bool) *cobra.Command {
	return &cobra.Command{
		Use:   "stop",
		Short: "Stop the running session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataDir, *verbose)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			out, err := app.SessionCLI.Stop(context.Background())
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Stopped session %s after %s\n",
				shortID(out.SessionID, app.Config.ShortIDLength), timeutil.FormatDuration(out.DurationSeconds))
			return nil
		},
	}
}

func newStatusCmd(dataDir *string, verbose *bool) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the running session, if any",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataDir, *verbose)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			out, err := app.SessionCLI.Status(context.Background())
			if err != nil {
				return err
			}
			if !out.Active {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "No active session")
				return nil
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Session %s running since %s (%s elapsed)\n",
				shortID(out.SessionID, app.Config.ShortIDLength),
				timeutil.FormatClockTime(out.StartedAt),
				timeutil.FormatDuration(out.ElapsedSeconds))
			return nil
		},
	}
}

func newAddCmd(dataDir *string, verbose *bool) *cobra.Command {
	var date, timeRange, duration string
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a completed session",
		Long:  "Record a completed session, either as a clock range on a date (--range \"09:00-10:30\") or as a duration ending now (--duration 1h30m).",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataDir, *verbose)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			out, err := app.SessionCLI.Add(context.Background(), date, timeRange, duration)
			if err != nil {
				return renderOverlap(cmd.OutOrStdout(), err, app.Config.ShortIDLength)
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Added session %s: %s %s - %s (%s)\n",
				shortID(out.SessionID, app.Config.ShortIDLength),
				timeutil.FormatDate(out.StartedAt),
				timeutil.FormatClockTime(out.StartedAt),
				timeutil.FormatClockTime(out.EndedAt),
				timeutil.FormatDuration(out.DurationSeconds))
			return nil
		},
	}
	cmd.Flags().StringVar(&date, "date", "", "date for --range (YYYY-MM-DD, today, yesterday)")
	cmd.Flags().StringVar(&timeRange, "range", "", "clock range, e.g. \"09:00-10:30\" or \"9:00 AM-10:30 AM\"")
	cmd.Flags().StringVar(&duration, "duration", "", "length of a block ending now, e.g. 1h30m")
	return cmd
}

func newEditCmd(dataDir *string, verbose *bool) *cobra.Command {
	var start, end string
	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Change a session's endpoints",
		Long:  "Change a session's start or end. Values are absolute clock times on the original date (\"14:30\") or relative adjustments to the original value (\"+15m\", \"-1h\").",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(*dataDir, *verbose)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			out, err := app.SessionCLI.Edit(context.Background(), args[0], start, end)
			if err != nil {
				return renderOverlap(cmd.OutOrStdout(), err, app.Config.ShortIDLength)
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Session %s is now %s %s - %s (%s)\n",
				shortID(out.SessionID, app.Config.ShortIDLength),
				timeutil.FormatDate(out.StartedAt),
				timeutil.FormatClockTime(out.StartedAt),
				timeutil.FormatClockTime(out.EndedAt),
				timeutil.FormatDuration(out.DurationSeconds))
			return nil
		},
	}
	cmd.Flags().StringVar(&start, "start", "", "new start time or adjustment")
	cmd.Flags().StringVar(&end, "end", "", "new end time or adjustment")
	return cmd
}

func newDeleteCmd(dataDir *string, verbose *bool) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a session by id prefix",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(*dataDir, *verbose)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			out, err := app.SessionCLI.Delete(context.Background(), args[0])
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Deleted session %s\n", shortID(out.SessionID, app.Config.ShortIDLength))
			return nil
		},
	}
}

func newListCmd(dataDir *string, verbose *bool) *cobra.Command {
	var date, filter string
	var all, descending bool
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recorded sessions (today by default)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataDir, *verbose)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			views, err := app.SessionCLI.List(context.Background(), date, all, filter, descending)
			if err != nil {
				return err
			}
			if len(views) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "No sessions found")
				return nil
			}
			t := newTable("ID", "Date", "Start", "End", "Duration")
			var total int64
			for _, v := range views {
				t.Row(
					shortID(v.ID, app.Config.ShortIDLength),
					timeutil.FormatDate(v.StartedAt),
					timeutil.FormatClockTime(v.StartedAt),
					timeutil.FormatClockTime(v.EndedAt),
					timeutil.FormatDuration(v.DurationSeconds),
				)
				total += v.DurationSeconds
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), t)
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Total: %s across %d session(s)\n", timeutil.FormatDuration(total), len(views))
			return nil
		},
	}
	cmd.Flags().StringVar(&date, "date", "", "exact local date (YYYY-MM-DD, today, yesterday, tomorrow)")
	cmd.Flags().BoolVar(&all, "all", false, "list the whole history")
	cmd.Flags().StringVar(&filter, "filter", "", "expression like \"duration >= 1h\" or \"date = yesterday\"")
	cmd.Flags().BoolVar(&descending, "desc", false, "newest first")
	return cmd
}

func newImportCmd(dataDir *string, verbose *bool) *cobra.Command {
	var skipOverlaps bool
	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Import sessions from a JSON export",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read import file: %w", err)
			}
			var records []sessiondto.Record
			if err := json.Unmarshal(raw, &records); err != nil {
				return fmt.Errorf("decode import file: %w", err)
			}
			app, err := loadApp(*dataDir, *verbose)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			out, err := app.SessionCLI.Import(context.Background(), records, skipOverlaps)
			if err != nil {
				return renderOverlap(cmd.OutOrStdout(), err, app.Config.ShortIDLength)
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Imported %d session(s)\n", out.Imported)
			for _, skipped := range out.Skipped {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Skipped %s - %s: %s\n", skipped.Record.Start, skipped.Record.End, skipped.Reason)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&skipOverlaps, "skip-overlaps", false, "skip conflicting entries instead of aborting the batch")
	return cmd
}

func newExportCmd(dataDir *string, verbose *bool) *cobra.Command {
	var from, to, output string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export sessions as pretty JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataDir, *verbose)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			records, err := app.SessionCLI.Export(context.Background(), from, to)
			if err != nil {
				return err
			}
			encoded, err := json.MarshalIndent(records, "", "  ")
			if err != nil {
				return fmt.Errorf("encode export: %w", err)
			}
			encoded = append(encoded, '\n')
			if output == "" {
				_, _ = cmd.OutOrStdout().Write(encoded)
				return nil
			}
			if err := os.WriteFile(output, encoded, 0o644); err != nil {
				return fmt.Errorf("write export file: %w", err)
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Exported %d session(s) to %s\n", len(records), output)
			return nil
		},
	}
	cmd.Flags().StringVar(&from, "from", "", "first local date to include")
	cmd.Flags().StringVar(&to, "to", "", "last local date to include")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write to a file instead of stdout")
	return cmd
}

func newSummaryCmd(dataDir *string, verbose *bool) *cobra.Command {
	var month, year string
	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Show aggregate statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataDir, *verbose)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			out, err := app.ReportCLI.Summary(context.Background(), month, year)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(w, "Total tracked:   %s\n", timeutil.FormatDuration(out.TotalSeconds))
			_, _ = fmt.Fprintf(w, "Active days:     %d\n", out.ActiveDays)
			_, _ = fmt.Fprintf(w, "Daily average:   %s\n", timeutil.FormatDuration(out.AverageSeconds))
			if out.ActiveDays > 0 {
				_, _ = fmt.Fprintf(w, "Best day:        %s (%s)\n", out.BestDay.Day, timeutil.FormatDuration(out.BestDay.Seconds))
				_, _ = fmt.Fprintf(w, "Worst day:       %s (%s)\n", out.WorstDay.Day, timeutil.FormatDuration(out.WorstDay.Seconds))
			}
			_, _ = fmt.Fprintf(w, "Consistency:     %s\n", out.Consistency)
			_, _ = fmt.Fprintf(w, "Current streak:  %d day(s)\n", out.CurrentStreak)
			_, _ = fmt.Fprintf(w, "Longest streak:  %d day(s)\n", out.LongestStreak)
			return nil
		},
	}
	cmd.Flags().StringVar(&month, "month", "", "limit to a month (YYYY-MM)")
	cmd.Flags().StringVar(&year, "year", "", "limit to a year (YYYY)")
	return cmd
}

func newReportCmd(dataDir *string, verbose *bool) *cobra.Command {
	return &cobra.Command{
		Use:   "report",
		Short: "Show per-day and per-weekday breakdowns",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataDir, *verbose)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			out, err := app.ReportCLI.Report(context.Background())
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			if len(out.Days) == 0 {
				_, _ = fmt.Fprintln(w, "Nothing tracked yet")
				return nil
			}
			days := newTable("Date", "Total", "Goal")
			for _, day := range out.Days {
				mark := ""
				if day.GoalMet {
					mark = "met"
				}
				days.Row(day.Day, timeutil.FormatDuration(day.Seconds), mark)
			}
			_, _ = fmt.Fprintln(w, days)

			weekdays := newTable("Weekday", "Total")
			for _, line := range out.Weekdays {
				weekdays.Row(line.Weekday.String(), timeutil.FormatDuration(line.Seconds))
			}
			_, _ = fmt.Fprintln(w, weekdays)
			_, _ = fmt.Fprintf(w, "Current streak: %d day(s), longest: %d day(s)\n", out.CurrentStreak, out.LongestStreak)
			return nil
		},
	}
}

func newETACmd(dataDir *string, verbose *bool) *cobra.Command {
	return &cobra.Command{
		Use:   "eta",
		Short: "Show how far today is from the daily goal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataDir, *verbose)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			out, err := app.ReportCLI.ETA(context.Background())
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			if out.GoalMet {
				_, _ = fmt.Fprintf(w, "Daily goal met: %s of %s\n",
					timeutil.FormatDuration(out.DoneSeconds), timeutil.FormatDuration(out.GoalSeconds))
				return nil
			}
			_, _ = fmt.Fprintf(w, "%s done, %s remaining; tracking from now finishes at %s\n",
				timeutil.FormatDuration(out.DoneSeconds),
				timeutil.FormatDuration(out.RemainingSeconds),
				timeutil.FormatClockTime(out.ProjectedEnd))
			return nil
		},
	}
}

func newStudyCmd(dataDir *string, verbose *bool) *cobra.Command {
	var date, slot string
	var minutes int
	cmd := &cobra.Command{
		Use:   "study",
		Short: "Log minutes into hourly slots",
		Long:  "Log minutes into hourly slots. Without flags this opens an interactive picker; with --slot and --minutes it logs directly.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataDir, *verbose)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			if slot == "" && minutes == 0 {
				return bootstrap.RunStudy(app)
			}
			out, err := app.SlotBankCLI.LogSlot(context.Background(), date, slot, minutes)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Logged %d min into %s on %s", out.LoggedMinutes, out.SlotKey, out.Date)
			if out.BankedMinutes > 0 {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), " (%d min banked)", out.BankedMinutes)
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout())
			return nil
		},
	}
	cmd.Flags().StringVar(&date, "date", "", "date to log against (default today)")
	cmd.Flags().StringVarP(&slot, "slot", "s", "", "slot identifier, e.g. S08_09 or \"08:00 - 09:00\"")
	cmd.Flags().IntVarP(&minutes, "minutes", "m", 0, "minutes studied in the slot")
	cmd.MarkFlagsRequiredTogether("slot", "minutes")
	return cmd
}

func newSlotsCmd(dataDir *string, verbose *bool) *cobra.Command {
	var date string
	cmd := &cobra.Command{
		Use:   "slots",
		Short: "Show the slot grid for a date",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataDir, *verbose)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			out, err := app.SlotBankCLI.DayGrid(context.Background(), date)
			if err != nil {
				return err
			}
			t := newTable("Slot", "Window", "Minutes")
			for _, slot := range out.Slots {
				t.Row(slot.Key, slot.Display, fmt.Sprintf("%d / %d", slot.Minutes, slot.Target))
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), t)
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s total: %d min\n", out.Date, out.TotalMinutes)
			return nil
		},
	}
	cmd.Flags().StringVar(&date, "date", "", "date to show (default today)")
	return cmd
}

func newBankCmd(dataDir *string, verbose *bool) *cobra.Command {
	bank := &cobra.Command{Use: "bank", Short: "Inspect and spend banked minutes"}

	bank.AddCommand(&cobra.Command{
		Use:   "balance",
		Short: "Show the banked-minute balance",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataDir, *verbose)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			out, err := app.SlotBankCLI.Balance(context.Background())
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Bank balance: %d min\n", out.Minutes)
			return nil
		},
	})

	var redeemDate, redeemSlot string
	var redeemMinutes int
	redeem := &cobra.Command{
		Use:   "redeem",
		Short: "Move banked minutes into an under-filled slot",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataDir, *verbose)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			out, err := app.SlotBankCLI.Redeem(context.Background(), redeemDate, redeemSlot, redeemMinutes)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Redeemed %d min into %s on %s (slot now %d, balance %d)\n",
				out.Redeemed, out.SlotKey, out.Date, out.NewSlotValue, out.NewBalance)
			return nil
		},
	}
	redeem.Flags().StringVar(&redeemDate, "date", "", "date of the slot (default today)")
	redeem.Flags().StringVarP(&redeemSlot, "slot", "s", "", "slot identifier, e.g. S08_09 or \"08:00 - 09:00\"")
	redeem.Flags().IntVarP(&redeemMinutes, "minutes", "m", 0, "minutes to redeem")
	_ = redeem.MarkFlagRequired("slot")
	_ = redeem.MarkFlagRequired("minutes")
	bank.AddCommand(redeem)

	var limit, offset int
	statement := &cobra.Command{
		Use:   "statement",
		Short: "Show the bank ledger, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataDir, *verbose)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			views, err := app.SlotBankCLI.Statement(context.Background(), limit, offset)
			if err != nil {
				return err
			}
			if len(views) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "No bank transactions")
				return nil
			}
			t := newTable("When", "Type", "Minutes", "Source", "Description")
			for _, v := range views {
				source := v.SourceDate
				if v.SourceSlot != "" {
					source += " " + v.SourceSlot
				}
				t.Row(v.CreatedAt.Format("2006-01-02 15:04"), v.Type, fmt.Sprintf("%d", v.Minutes), source, v.Description)
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), t)
			return nil
		},
	}
	statement.Flags().IntVar(&limit, "limit", 20, "entries to show")
	statement.Flags().IntVar(&offset, "offset", 0, "entries to skip")
	bank.AddCommand(statement)

	return bank
}

func newResetCmd(dataDir *string, verbose *bool) *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Erase the slot grid and bank ledger",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !force {
				_, _ = fmt.Fprint(cmd.OutOrStdout(), "This erases all slot and bank data. Type 'yes' to continue: ")
				var answer string
				_, _ = fmt.Fscanln(cmd.InOrStdin(), &answer)
				if strings.ToLower(strings.TrimSpace(answer)) != "yes" {
					_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Aborted")
					return nil
				}
			}
			app, err := loadApp(*dataDir, *verbose)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			if err := app.SlotBankCLI.Reset(context.Background()); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Slot grid and bank ledger cleared")
			return nil
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "skip the confirmation prompt")
	return cmd
}
