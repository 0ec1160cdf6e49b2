package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"slices"
	"sort"
	"strings"
	"sync"
	"syscall"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/vfg2006/rk-metrics/infrastructure/repository"
	"github.com/vfg2006/rk-metrics/internal/domain"
	"github.com/vfg2006/rk-metrics/internal/scheduler"
	"github.com/vfg2006/rk-metrics/internal/usecases/reporting"
	"github.com/vfg2006/rk-metrics/pkg/appErrors"
	"github.com/vfg2006/rk-metrics/pkg/log"
	"github.com/vfg2006/rk-metrics/pkg/utils"
)

var watchCmd = &cobra.Command{
	Use:   "watch [source...]",
	Short: "Rebuild reports for day sources on a cron schedule",
	Long: `Rebuilds the daily report of every source on REPORT_REFRESH_CRON and prints each
report as JSON. Sources given as arguments replace REPORT_REFRESH_SOURCES.
Every source is refreshed once at startup. SIGHUP triggers another refresh.
Stdin ("-") is only accepted with --once.

Examples:
  rk watch shop-a.json shop-b.json
  rk watch --once`,
	RunE: runWatch,
}

func init() {
	f := watchCmd.Flags()
	f.Bool("once", false, "refresh every source once and exit")
	f.String("cron", "", "cron expression (default from config)")

	rootCmd.AddCommand(watchCmd)
}

// jsonSink escreve cada relatório publicado como JSON
type jsonSink struct {
	mu  sync.Mutex
	out io.Writer
}

func (s *jsonSink) Publish(_ context.Context, report *domain.DailyReport) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := fmt.Fprintln(s.out, utils.PrettyJson(report))
	return err
}

func runWatch(cmd *cobra.Command, args []string) error {
	watchCfg := *cfg
	watchCfg.ReportRefresh.Enabled = true
	if len(args) > 0 {
		watchCfg.ReportRefresh.Sources = args
	}
	if cron, _ := cmd.Flags().GetString("cron"); cron != "" {
		watchCfg.ReportRefresh.CronSchedule = cron
	}
	if len(watchCfg.ReportRefresh.Sources) == 0 {
		return &cliError{code: appErrors.ErrInvalidRequest, msg: "no sources: pass them as arguments or set REPORT_REFRESH_SOURCES"}
	}

	once, _ := cmd.Flags().GetBool("once")
	if !once && slices.Contains(watchCfg.ReportRefresh.Sources, repository.StdinSource) {
		return &cliError{code: appErrors.ErrInvalidRequest, msg: "stdin source \"-\" can only be refreshed with --once"}
	}

	service := scheduler.NewReportRefreshService(
		reporting.NewService(repository.NewDayFileRepository(cmd.InOrStdin())),
		&jsonSink{out: cmd.OutOrStdout()},
		&watchCfg,
	)

	if once {
		return refreshOnce(cmd.Context(), service)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := service.Start(ctx); err != nil {
		return err
	}
	service.TriggerManualRefresh(ctx)

	hup := make(chan os.Signal, 1)
	signal.Notify(hup, syscall.SIGHUP)
	defer signal.Stop(hup)

	logger := log.ForContext(ctx).WithField("command", "watch")
	for {
		select {
		case <-hup:
			service.TriggerManualRefresh(ctx)
		case <-ctx.Done():
			status := service.GetStatus()
			logger.WithFields(log.Fields{
				"scheduler_last_completed": status.LastCompletedAt,
				"scheduler_last_failed":    len(status.LastResult.Failed),
			}).Info("Encerrando atualização de relatórios")
			return nil
		}
	}
}

func refreshOnce(ctx context.Context, service *scheduler.ReportRefreshService) error {
	result := service.RefreshAll(ctx)
	if len(result.Failed) == 0 {
		return nil
	}

	failed := make([]string, 0, len(result.Failed))
	for source, msg := range result.Failed {
		failed = append(failed, source+": "+msg)
	}
	sort.Strings(failed)

	return errors.Errorf("%d of %d sources failed: %s",
		len(result.Failed), len(result.Failed)+result.Succeeded, strings.Join(failed, "; "))
}
