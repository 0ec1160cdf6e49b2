package main

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/vfg2006/rk-metrics/internal/config"
	"github.com/vfg2006/rk-metrics/pkg/appErrors"
	"github.com/vfg2006/rk-metrics/pkg/log"
	"github.com/vfg2006/rk-metrics/pkg/utils"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "rk",
	Short: "Marketplace advertising metrics",
	Long: `Unit economics for marketplace ad campaigns.

Runs the calculator and sales planner for the current period and the season,
computes breakeven CPL, and builds daily reports from the "By days" export
converted to JSON ({"days": [...], "details": {...}}).`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.NewConfig()
		if err != nil {
			return errors.Wrap(err, "load config")
		}
		cfg = c

		log.Configure(cfg.App.LogLevel, cmd.ErrOrStderr())

		ctx, correlationID := log.WithCorrelationID(cmd.Context())
		cmd.SetContext(ctx)

		log.ForContext(ctx).WithField("command", cmd.Name()).Debugf("Executando comando %s", correlationID)
		return nil
	},
}

func init() {
	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &cliError{code: appErrors.ErrInvalidRequest, msg: err.Error()}
	})
}

// cliError é um erro de flags ou argumentos da linha de comando
type cliError struct {
	code string
	msg  string
}

func (e *cliError) Error() string     { return e.msg }
func (e *cliError) ErrorCode() string { return e.code }

func invalidFlag(name string, format string, args ...any) error {
	return &cliError{
		code: appErrors.ErrInvalidRequest,
		msg:  fmt.Sprintf("--%s: %s", name, fmt.Sprintf(format, args...)),
	}
}

// sourceArg exige exatamente uma fonte de dias
func sourceArg(cmd *cobra.Command, args []string) error {
	if err := cobra.ExactArgs(1)(cmd, args); err != nil {
		return &cliError{code: appErrors.ErrInvalidRequest, msg: err.Error()}
	}
	return nil
}

func printJSON(cmd *cobra.Command, v any) error {
	_, err := fmt.Fprintln(cmd.OutOrStdout(), utils.PrettyJson(v))
	return err
}
