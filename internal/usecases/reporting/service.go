// Package reporting monta o relatório diário de publicidade a partir de uma fonte de dias.
package reporting

import (
	"context"
	"sort"
	"time"

	"github.com/pkg/errors"
	"github.com/vfg2006/rk-metrics/infrastructure/repository"
	"github.com/vfg2006/rk-metrics/internal/domain"
	"github.com/vfg2006/rk-metrics/internal/usecases/calculating"
	"github.com/vfg2006/rk-metrics/internal/usecases/evaluating"
	"github.com/vfg2006/rk-metrics/pkg/appErrors"
	"github.com/vfg2006/rk-metrics/pkg/log"
	"github.com/vfg2006/rk-metrics/pkg/utils"
)

//go:generate mockgen -source=service.go -destination=mocks/reporter.go -package=mocks

type Reporter interface {
	BuildReport(ctx context.Context, source string, request domain.ReportRequest) (*domain.DailyReport, error)
}

type Service struct {
	dayRepository repository.DayRepository
	now           func() time.Time
	generateID    func() (string, error)
}

func NewService(dayRepository repository.DayRepository) *Service {
	return &Service{
		dayRepository: dayRepository,
		now:           time.Now,
		generateID:    utils.GenerateID,
	}
}

func (s *Service) BuildReport(ctx context.Context, source string, request domain.ReportRequest) (*domain.DailyReport, error) {
	logger := log.ForContext(ctx).WithFields(log.Fields{
		"source": source,
		"period": request.Filter.Period,
	})

	if err := ValidateRequest(request); err != nil {
		return nil, err
	}

	set, err := s.dayRepository.LoadDays(ctx, source)
	if err != nil {
		return nil, sourceError(err, source)
	}

	filtered := evaluating.FilterDaysByPeriod(set.Days, request.Filter)
	if request.ExcludeLastDay {
		filtered = excludeLastDay(filtered)
	}
	if request.ExcludeNoAdDays {
		filtered = excludeNoAdDays(filtered)
	}

	now := s.now()
	days, avgTarget := evaluateDays(filtered, request, now)
	sortNewestFirst(days)

	id, err := s.generateID()
	if err != nil {
		logger.WithError(err).Error("Falha ao gerar ID do relatório")
		return nil, NewReportError(ErrGenerateID, appErrors.ErrInternal, source, err.Error())
	}

	report := &domain.DailyReport{
		ID:           id,
		Source:       source,
		GeneratedAt:  now,
		Request:      request,
		AvgTargetCPL: avgTarget,
		Days:         days,
		KPI:          evaluating.AggregateDailyKPIs(days),
		ByType:       evaluating.AggregateByType(set.Details, evaluating.DatesOf(filtered)),
		Recommendations: evaluating.Recommendations(days, domain.RecommendationInputs{
			TargetCPL:    avgTarget,
			Profit:       request.Profit,
			PurchaseRate: request.PurchaseRate,
		}),
		Prefill: calculating.AggregatePrefill(filtered),
	}

	logger.WithFields(log.Fields{
		"report_id": report.ID,
		"days":      len(days),
	}).Info("Relatório gerado")

	return report, nil
}

// ValidateRequest verifica o período e o CPL alvo antes de carregar a fonte
func ValidateRequest(request domain.ReportRequest) error {
	filter := request.Filter
	if !filter.Period.IsValid() {
		return NewReportError(ErrInvalidPeriod, appErrors.ErrInvalidRequest, "", string(filter.Period))
	}

	if filter.Period == domain.PeriodCustom && filter.StartDate != "" && filter.EndDate != "" {
		start, err := utils.ParseDate(filter.StartDate)
		if err != nil {
			return NewReportError(ErrInvalidDateRange, appErrors.ErrInvalidFormat, "", filter.StartDate)
		}
		end, err := utils.ParseDate(filter.EndDate)
		if err != nil {
			return NewReportError(ErrInvalidDateRange, appErrors.ErrInvalidFormat, "", filter.EndDate)
		}
		if end.Before(*start) {
			return NewReportError(ErrInvalidDateRange, appErrors.ErrInvalidRequest, "", "end date before start date")
		}
	}

	if request.TargetCPL < 0 {
		return NewReportError(ErrInvalidTarget, appErrors.ErrInvalidRequest, "", "")
	}

	return nil
}

// recentDays é a janela em que os pedidos do export ainda estão incompletos
const recentDays = 7

// excludeLastDay remove os dias com a data mais recente, cujo dado costuma ser parcial
func excludeLastDay(days []domain.DailyRecord) []domain.DailyRecord {
	var last time.Time
	for _, d := range days {
		if date := evaluating.ParseDayDate(d.Date); date.After(last) {
			last = date
		}
	}
	if last.IsZero() {
		return days
	}

	kept := make([]domain.DailyRecord, 0, len(days))
	for _, d := range days {
		if !evaluating.ParseDayDate(d.Date).Equal(last) {
			kept = append(kept, d)
		}
	}
	return kept
}

func excludeNoAdDays(days []domain.DailyRecord) []domain.DailyRecord {
	kept := make([]domain.DailyRecord, 0, len(days))
	for _, d := range days {
		if d.Cost > 0 {
			kept = append(kept, d)
		}
	}
	return kept
}

// evaluateDays avalia os dias e retorna a média dos CPL alvo usados
func evaluateDays(days []domain.DailyRecord, request domain.ReportRequest, now time.Time) ([]domain.EvaluatedDay, float64) {
	if !request.PerDayTarget {
		return evaluating.EvaluateDays(days, request.TargetCPL), request.TargetCPL
	}

	evaluated := make([]domain.EvaluatedDay, 0, len(days))
	var sumTargets float64
	for _, d := range days {
		target := DayTargetCPL(d, request, now)
		sumTargets += target
		evaluated = append(evaluated, evaluating.EvaluateDay(d, target))
	}

	if len(days) == 0 {
		return evaluated, request.TargetCPL
	}
	return evaluated, sumTargets / float64(len(days))
}

// DayTargetCPL é o CPL de equilíbrio com as conversões e as participações do próprio dia.
// Dias recentes, sem UseRecentConversions, usam as conversões do calculador.
// Dias sem carrinhos ou pedidos usam o CPL alvo da requisição.
func DayTargetCPL(day domain.DailyRecord, request domain.ReportRequest, now time.Time) float64 {
	if !request.UseRecentConversions && isRecent(day.Date, now) {
		if day.CartsTotal <= 0 {
			return request.TargetCPL
		}
		a := request.RecentAssumptions
		adShare := a.AdShare
		if adShare <= 0 {
			adShare = 50
		}
		return calculating.BreakevenCPL(request.Profit, a.CartToOrder, request.PurchaseRate, a.AdCartsShare, adShare)
	}

	if day.CartsTotal <= 0 || day.Orders <= 0 {
		return request.TargetCPL
	}

	return calculating.BreakevenCPL(
		request.Profit,
		day.Orders/day.CartsTotal*100,
		request.PurchaseRate,
		day.CartsRk/day.CartsTotal*100,
		day.OrdersRk/day.Orders*100,
	)
}

// isRecent indica se a data está a no máximo recentDays dias de now (datas futuras incluídas)
func isRecent(date string, now time.Time) bool {
	day := evaluating.ParseDayDate(date)
	if day.IsZero() {
		return false
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return today.Sub(day) <= recentDays*24*time.Hour
}

// sortNewestFirst ordena do dia mais recente para o mais antigo
func sortNewestFirst(days []domain.EvaluatedDay) {
	sort.SliceStable(days, func(i, j int) bool {
		return evaluating.ParseDayDate(days[i].Date).After(evaluating.ParseDayDate(days[j].Date))
	})
}

func sourceError(err error, source string) error {
	switch errors.Cause(err) {
	case repository.ErrSourceNotFound:
		return NewReportError(ErrSourceUnavailable, appErrors.ErrSourceNotFound, source, err.Error())
	case repository.ErrInvalidSource:
		return NewReportError(ErrSourceMalformed, appErrors.ErrInvalidFormat, source, err.Error())
	case context.Canceled, context.DeadlineExceeded:
		return errors.Wrapf(err, "loading %s", source)
	default:
		return NewReportError(ErrSourceUnavailable, appErrors.ErrInternal, source, err.Error())
	}
}
