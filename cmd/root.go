package cmd

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/bnema/cronparse/internal/config"
	"github.com/bnema/cronparse/internal/cronexpr"
	"github.com/bnema/cronparse/pkg/logger"
	"github.com/bnema/cronparse/pkg/version"

	_ "github.com/joho/godotenv/autoload"
)

var errorPrefix = color.New(color.FgRed, color.Bold)

type rootOptions struct {
	cfgFile string
	log     *logger.Logger
}

// NewRootCommand builds the cronparse command tree.
func NewRootCommand(build version.Info) *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "cronparse <expression>",
		Short: "Expand a cron expression into the values each field matches",
		Long: `cronparse expands a five-field cron expression followed by a command
into the explicit minutes, hours, days of month, months and days of week
it matches.

Fields are separated by single spaces and accept *, ranges (1-5),
lists (1,15) and steps over * or a range (*/15, 10-20/5).`,
		Example:       `  cronparse "*/15 0 1,15 * 1-5 /usr/bin/find"`,
		Args:          exactlyOneExpression,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return opts.init(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runParse(cmd.OutOrStdout(), opts.log, args[0])
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.cfgFile, "config", "", "config file (default is ./cronparse.yaml)")
	flags.String(config.FlagLogLevel, "", "log level (debug, info, warn, error); defaults to $CRONPARSE_LOG_LEVEL, or debug when ENV=dev")
	flags.Bool(config.FlagNoColor, false, "disable colored error output")

	cmd.AddCommand(newVersionCommand(build))

	return cmd
}

// Execute runs the CLI and reports any failure on stderr. The returned
// error is only meant for choosing the exit status.
func Execute(build version.Info) error {
	return execute(NewRootCommand(build))
}

func execute(cmd *cobra.Command) error {
	err := cmd.Execute()
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "%s %v\n", errorPrefix.Sprint("Error:"), err)
	}
	return err
}

func (o *rootOptions) init(cmd *cobra.Command) error {
	o.log = logger.New(cmd.ErrOrStderr(), "info")

	cfg, err := config.Load(o.cfgFile, cmd.Flags())
	if err != nil {
		return err
	}

	o.log.ConfigureFromEnv()
	if cfg.LogLevel != "" {
		o.log.SetLogLevel(cfg.LogLevel)
	}
	if cfg.NoColor {
		color.NoColor = true
	}
	return nil
}

func exactlyOneExpression(cmd *cobra.Command, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: %s", cmd.UseLine())
	}
	return nil
}

func runParse(w io.Writer, log *logger.Logger, expression string) error {
	log.Debug("parsing expression", "expression", expression)

	parsed, err := cronexpr.Parse(expression)
	if err != nil {
		log.Debug("expression rejected", "err", err)
		return err
	}

	for i, f := range cronexpr.Fields {
		log.Debug("expanded field",
			"field", f.Name,
			"form", cronexpr.Form(parsed.Source(i)),
			"values", len(parsed.Field(i)),
		)
	}

	_, err = fmt.Fprint(w, parsed.String())
	return err
}
