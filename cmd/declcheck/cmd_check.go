package main

import (
	"fmt"
	"os"

	"github.com/dhamidi/declcheck/lang/check"
	"github.com/dhamidi/declcheck/lang/parser"
	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"
)

func newCheckCmd() *cobra.Command {
	var configPath string
	var summary bool
	var trace bool

	cmd := &cobra.Command{
		Use:           "check <path>...",
		Short:         "Check programs for syntax and declaration errors",
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := check.LoadConfig(configPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("summary") {
				cfg.Output.Summary = summary
			}
			if cfg.Log.Verbosity > 0 && !cmd.Flags().Changed("verbose") {
				configureLogging(cfg.Log.Verbosity, cfg.Log.Path)
			}

			var opts []check.Option
			if trace {
				opts = append(opts, parser.WithTracer(newLogTracer()))
			}

			results, err := check.CheckFiles(cmd.Context(), args, cfg, opts...)
			check.WriteReport(os.Stdout, results, cfg.Output)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				return err
			}

			if failed := check.Failed(results); failed > 0 {
				return fmt.Errorf("%d of %d programs rejected", failed, len(results))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "configuration file (default "+check.DefaultConfigFile+" if present)")
	cmd.Flags().BoolVar(&summary, "summary", true, "print the final parsing status for each program")
	cmd.Flags().BoolVar(&trace, "trace", false, "log every grammar rule at debug level")

	return cmd
}

type logTracer struct {
	log   commonlog.Logger
	depth int
}

func newLogTracer() *logTracer {
	return &logTracer{log: commonlog.GetLogger("declcheck.trace")}
}

func (t *logTracer) Enter(rule parser.Rule, line int) {
	t.log.Debugf("%*s%s line %d", t.depth*2, "", rule, line)
	t.depth++
}

func (t *logTracer) Leave(rule parser.Rule, ok bool) {
	t.depth--
	if !ok {
		t.log.Debugf("%*s%s failed", t.depth*2, "", rule)
	}
}
