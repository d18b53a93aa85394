package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/healthguidelab/keto365/internal/buildinfo"
	"github.com/healthguidelab/keto365/internal/client/config"
	"github.com/healthguidelab/keto365/internal/client/recipes"
	"github.com/healthguidelab/keto365/internal/logging"
)

// nowFn is a test seam for the wall clock.
var nowFn = time.Now

const dateLayout = "2006-01-02"

// RootOptions holds global flags for all commands.
type RootOptions struct {
	ConfigPath string

	in     io.Reader
	out    io.Writer
	errOut io.Writer
}

// NewRootCommand creates the keto365 command tree. Without a subcommand it
// runs the interactive client on in and out; logs go to errOut.
func NewRootCommand(in io.Reader, out, errOut io.Writer) *cobra.Command {
	opts := &RootOptions{in: in, out: out, errOut: errOut}

	cmd := &cobra.Command{
		Use:   "keto365",
		Short: "Keto365 - your daily keto recipe",
		Long: `Keto365 signs you in once with Google, remembers your email on this
device and shows a keto recipe for every day of the year.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withApp(cmd, func(ctx context.Context, app *App) error {
				return app.Run(ctx)
			})
		},
	}
	cmd.SetOut(out)
	cmd.SetErr(errOut)

	cmd.PersistentFlags().StringVarP(&opts.ConfigPath, "config", "c", "", "path to a JSON or YAML config file")
	config.RegisterFlags(cmd.PersistentFlags())

	cmd.AddCommand(newTodayCommand(opts))
	cmd.AddCommand(newStatusCommand(opts))
	cmd.AddCommand(newVersionCommand(opts))

	return cmd
}

// withApp loads the config, builds an App and runs fn with it.
func (o *RootOptions) withApp(cmd *cobra.Command, fn func(ctx context.Context, app *App) error) error {
	cfg, err := config.Load(o.ConfigPath, cmd.Flags())
	if err != nil {
		return err
	}
	log, err := logging.New(cfg.LogLevel, cfg.LogFormat, o.errOut)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	app, err := NewApp(ctx, cfg, WithIO(o.in, o.out), WithLogger(log), WithClock(nowFn))
	if err != nil {
		return err
	}
	defer func() {
		if cerr := app.Close(); cerr != nil {
			log.Warn(ctx, "failed to close app", "error", cerr)
		}
	}()

	return fn(ctx, app)
}

func newTodayCommand(opts *RootOptions) *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "today",
		Short: "Print the keto recipe of the day",
		Long: `Print the keto recipe for today, or for the date given with --date.

Example:
  keto365 today
  keto365 today --date 2024-12-31`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			d := nowFn()
			if date != "" {
				parsed, err := time.ParseInLocation(dateLayout, date, time.Local)
				if err != nil {
					return fmt.Errorf("invalid date %q: want YYYY-MM-DD", date)
				}
				d = parsed
			}
			renderRecipe(opts.out, recipes.For(d))
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "date as YYYY-MM-DD (default today)")
	return cmd
}

func newStatusCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "status",
		Short:         "Print the session state stored on this device",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withApp(cmd, func(ctx context.Context, app *App) error {
				st, err := app.Init(ctx)
				if err != nil {
					return err
				}
				fmt.Fprintln(opts.out, st.String())
				return nil
			})
		},
	}
}

func newVersionCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			buildinfo.PrintBuildData(opts.out)
		},
	}
}
