package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/pkg/errors"
	"github.com/vfg2006/rk-metrics/internal/config"
	"github.com/vfg2006/rk-metrics/internal/domain"
	"github.com/vfg2006/rk-metrics/internal/usecases/reporting"
	"github.com/vfg2006/rk-metrics/pkg/log"
	"golang.org/x/sync/errgroup"
)

// ReportSink recebe cada relatório reconstruído
type ReportSink interface {
	Publish(ctx context.Context, report *domain.DailyReport) error
}

// ReportRefreshConfig representa a configuração do agendador de relatórios
type ReportRefreshConfig struct {
	CronSchedule      string
	Sources           []string
	MaxConcurrentJobs int
	Timeout           time.Duration
	Enabled           bool
	Request           domain.ReportRequest
}

// RefreshResult resume uma execução
type RefreshResult struct {
	Skipped   bool              `json:"skipped"`
	Succeeded int               `json:"succeeded"`
	Failed    map[string]string `json:"failed,omitempty"`
	Duration  time.Duration     `json:"duration"`
}

// RefreshStatus é o estado atual do agendador
type RefreshStatus struct {
	Enabled         bool          `json:"enabled"`
	Cron            string        `json:"cron"`
	Sources         []string      `json:"sources"`
	MaxConcurrent   int           `json:"maxConcurrent"`
	Running         bool          `json:"running"`
	LastStartedAt   time.Time     `json:"lastStartedAt"`
	LastCompletedAt time.Time     `json:"lastCompletedAt"`
	LastResult      RefreshResult `json:"lastResult"`
}

// ReportRefreshService reconstrói periodicamente os relatórios das fontes configuradas
type ReportRefreshService struct {
	scheduler *gocron.Scheduler
	config    ReportRefreshConfig
	reporter  reporting.Reporter
	sink      ReportSink

	mu              sync.Mutex
	running         bool
	lastStartedAt   time.Time
	lastCompletedAt time.Time
	lastResult      RefreshResult
}

func NewReportRefreshService(reporter reporting.Reporter, sink ReportSink, appConfig *config.Config) *ReportRefreshService {
	refreshConfig := ReportRefreshConfig{
		CronSchedule:      appConfig.ReportRefresh.CronSchedule,
		Sources:           appConfig.ReportRefresh.Sources,
		MaxConcurrentJobs: appConfig.ReportRefresh.MaxConcurrentJobs,
		Timeout:           appConfig.ReportRefresh.Timeout,
		Enabled:           appConfig.ReportRefresh.Enabled,
		Request:           appConfig.ReportRequest(),
	}

	log.L.WithFields(log.Fields{
		"scheduler_cron":           refreshConfig.CronSchedule,
		"scheduler_sources":        len(refreshConfig.Sources),
		"scheduler_max_concurrent": refreshConfig.MaxConcurrentJobs,
		"scheduler_enabled":        refreshConfig.Enabled,
	}).Info("Configuração do agendador de relatórios carregada")

	return newReportRefreshService(reporter, sink, refreshConfig)
}

func newReportRefreshService(reporter reporting.Reporter, sink ReportSink, cfg ReportRefreshConfig) *ReportRefreshService {
	if cfg.MaxConcurrentJobs < 1 {
		cfg.MaxConcurrentJobs = 1
	}
	return &ReportRefreshService{
		scheduler: gocron.NewScheduler(time.Local),
		config:    cfg,
		reporter:  reporter,
		sink:      sink,
	}
}

// Start agenda a atualização e para o agendador quando ctx for cancelado
func (s *ReportRefreshService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		log.ForContext(ctx).Info("Atualização de relatórios desabilitada por configuração")
		return nil
	}

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.RefreshAll(ctx)
	})
	if err != nil {
		return errors.Wrapf(err, "scheduling report refresh %q", s.config.CronSchedule)
	}

	s.scheduler.StartAsync()
	log.ForContext(ctx).WithField("scheduler_cron", s.config.CronSchedule).Info("Agendador de relatórios iniciado")

	go func() {
		<-ctx.Done()
		log.L.Info("Parando agendador de relatórios")
		s.scheduler.Stop()
	}()

	return nil
}

// RefreshAll reconstrói os relatórios de todas as fontes. Se já houver uma execução
// em andamento retorna imediatamente com Skipped.
func (s *ReportRefreshService) RefreshAll(ctx context.Context) RefreshResult {
	if !s.tryStart() {
		log.ForContext(ctx).Info("Atualização de relatórios já em andamento, ignorando")
		return RefreshResult{Skipped: true}
	}

	startTime := time.Now()
	result := RefreshResult{Failed: map[string]string{}}
	var resultMu sync.Mutex

	g := new(errgroup.Group)
	g.SetLimit(s.config.MaxConcurrentJobs)

	for _, source := range s.config.Sources {
		g.Go(func() error {
			err := s.refreshSource(ctx, source)

			resultMu.Lock()
			defer resultMu.Unlock()
			if err != nil {
				result.Failed[source] = err.Error()
				return nil
			}
			result.Succeeded++
			return nil
		})
	}
	_ = g.Wait()

	result.Duration = time.Since(startTime)
	s.finish(result)

	log.ForContext(ctx).WithFields(log.Fields{
		"duration_ms":         result.Duration.Milliseconds(),
		"scheduler_succeeded": result.Succeeded,
		"scheduler_failed":    len(result.Failed),
	}).Info("Atualização de relatórios concluída")

	return result
}

func (s *ReportRefreshService) refreshSource(ctx context.Context, source string) error {
	if s.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.config.Timeout)
		defer cancel()
	}

	logger := log.ForContext(ctx).WithField("source", source)

	report, err := s.reporter.BuildReport(ctx, source, s.config.Request)
	if err != nil {
		logger.WithError(err).Error("Erro ao reconstruir relatório")
		return err
	}

	if err := s.sink.Publish(ctx, report); err != nil {
		logger.WithError(err).Error("Erro ao publicar relatório")
		return errors.Wrap(err, "publishing report")
	}

	logger.WithField("report_id", report.ID).Debug("Relatório atualizado")
	return nil
}

// TriggerManualRefresh dispara uma atualização em segundo plano.
// Retorna false se já houver uma em andamento.
func (s *ReportRefreshService) TriggerManualRefresh(ctx context.Context) bool {
	if s.isRunning() {
		log.ForContext(ctx).Info("Atualização de relatórios já em andamento, ignorando solicitação manual")
		return false
	}

	go s.RefreshAll(ctx)
	return true
}

// GetStatus retorna o status atual do agendador
func (s *ReportRefreshService) GetStatus() RefreshStatus {
	s.mu.Lock()
	defer s.mu.Unlock()

	return RefreshStatus{
		Enabled:         s.config.Enabled,
		Cron:            s.config.CronSchedule,
		Sources:         s.config.Sources,
		MaxConcurrent:   s.config.MaxConcurrentJobs,
		Running:         s.running,
		LastStartedAt:   s.lastStartedAt,
		LastCompletedAt: s.lastCompletedAt,
		LastResult:      s.lastResult,
	}
}

func (s *ReportRefreshService) tryStart() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return false
	}
	s.running = true
	s.lastStartedAt = time.Now()
	return true
}

func (s *ReportRefreshService) finish(result RefreshResult) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.running = false
	s.lastCompletedAt = time.Now()
	s.lastResult = result
}

func (s *ReportRefreshService) isRunning() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}
