package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/roach88/msgc/internal/store"
)

// HistoryOptions holds flags for the history command.
type HistoryOptions struct {
	*RootOptions
	DB       string
	Limit    int
	Messages bool
}

// NewHistoryCommand creates the history command.
func NewHistoryCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &HistoryOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recorded generate runs",
		Long: `List generate runs from the history database, newest first.

With --messages each run is followed by the message identifier table it
was generated with.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHistory(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.DB, "db", "", "history database (default from msgc.toml)")
	cmd.Flags().IntVarP(&opts.Limit, "limit", "n", 20, "number of runs to show (0 for all)")
	cmd.Flags().BoolVar(&opts.Messages, "messages", false, "show the message table of each run")

	return cmd
}

func runHistory(opts *HistoryOptions, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd)

	path := opts.DB
	if path == "" {
		cfg, stageErr := loadConfig(opts.RootOptions)
		if stageErr != nil {
			return stageErr.report(formatter)
		}
		path = cfg.Store.Path
	}

	// Opening creates the database; a missing one simply has no runs.
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return outputHistory(formatter, []store.Run{})
	}

	st, err := store.Open(path)
	if err != nil {
		_ = formatter.Error(ErrCodeNotFound, fmt.Sprintf("opening history: %v", err), nil)
		return WrapExitError(ExitCommandError, "opening history", err)
	}
	defer st.Close()

	ctx := cmd.Context()
	runs, err := st.ListRuns(ctx, opts.Limit)
	if err != nil {
		return WrapExitError(ExitCommandError, "listing runs", err)
	}
	if opts.Messages {
		for i := range runs {
			runs[i].Messages, err = st.RunMessages(ctx, runs[i].ID)
			if err != nil {
				return WrapExitError(ExitCommandError, "listing run messages", err)
			}
		}
	}

	return outputHistory(formatter, runs)
}

// outputHistory writes runs newest first, with their message tables when
// they were loaded.
func outputHistory(formatter *OutputFormatter, runs []store.Run) error {
	if formatter.JSON() {
		return formatter.Success(runs)
	}
	if len(runs) == 0 {
		fmt.Fprintln(formatter.Writer, "No runs recorded")
		return nil
	}
	for _, run := range runs {
		fmt.Fprintf(formatter.Writer, "#%d %s %s -> %s (%d message(s), schema %s)\n",
			run.Seq, run.CreatedAt.Local().Format(time.DateTime), run.SchemaPath, run.OutputPath,
			run.MessageCount, shortHash(run.SchemaHash))
		for _, m := range run.Messages {
			fmt.Fprintf(formatter.Writer, "    0x%08x %-6s %s\n", m.Number, m.Frequency, m.Name)
		}
	}
	return nil
}

func shortHash(h string) string {
	if len(h) > 12 {
		return h[:12]
	}
	return h
}
