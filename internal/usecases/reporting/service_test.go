package reporting

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/rk-metrics/infrastructure/repository"
	"github.com/vfg2006/rk-metrics/infrastructure/repository/mocks"
	"github.com/vfg2006/rk-metrics/internal/domain"
	"github.com/vfg2006/rk-metrics/internal/usecases/evaluating"
	"github.com/vfg2006/rk-metrics/pkg/appErrors"
	"go.uber.org/mock/gomock"
)

const source = "days.json"

func day(date string, cost, cartsRk, cartsTotal, ordersRk, orders float64) domain.DailyRecord {
	return domain.DailyRecord{
		Date:             date,
		Shows:            10000,
		TotalShows:       20000,
		Transitions:      400,
		TotalTransitions: 1000,
		Cost:             cost,
		CartsRk:          cartsRk,
		CartsTotal:       cartsTotal,
		OrdersRk:         ordersRk,
		Orders:           orders,
	}
}

func daySet() *domain.DaySet {
	return &domain.DaySet{
		Days: []domain.DailyRecord{
			day("01.03.2025", 1000, 10, 20, 2, 4),
			day("20.03.2025", 2000, 20, 50, 3, 10),
			day("10.03.2025", 1500, 15, 30, 0, 0),
		},
		Details: domain.DetailsByDate{
			"01.03.2025": {{Type: "Поиск", Shows: 1000, Cost: 100, Carts: 5, Transitions: 40}},
			"20.03.2025": {{Type: "Полки", Shows: 2000, Cost: 300, Carts: 3, Transitions: 60}},
			"10.03.2025": {{Type: "Поиск", Shows: 500, Cost: 50, Carts: 1, Transitions: 10}},
		},
	}
}

func newTestService(repo repository.DayRepository) *Service {
	s := NewService(repo)
	s.now = func() time.Time { return time.Date(2025, time.March, 21, 12, 0, 0, 0, time.UTC) }
	s.generateID = func() (string, error) { return "REP0000001", nil }
	return s
}

func TestService_BuildReport(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockDayRepository(ctrl)
	service := newTestService(mockRepo)

	tests := []struct {
		name     string
		request  domain.ReportRequest
		setup    func()
		validate func(t *testing.T, report *domain.DailyReport, err error)
	}{
		{
			name:    "Todos os dias ordenados do mais recente",
			request: domain.ReportRequest{Filter: domain.PeriodFilter{Period: domain.PeriodAll}, TargetCPL: 50, Profit: 500, PurchaseRate: 20},
			setup: func() {
				mockRepo.EXPECT().LoadDays(gomock.Any(), source).Return(daySet(), nil)
			},
			validate: func(t *testing.T, report *domain.DailyReport, err error) {
				require.NoError(t, err)
				assert.Equal(t, "REP0000001", report.ID)
				assert.Equal(t, source, report.Source)
				assert.Equal(t, time.Date(2025, time.March, 21, 12, 0, 0, 0, time.UTC), report.GeneratedAt)
				assert.Equal(t, 50.0, report.AvgTargetCPL)

				require.Len(t, report.Days, 3)
				assert.Equal(t, "20.03.2025", report.Days[0].Date)
				assert.Equal(t, "10.03.2025", report.Days[1].Date)
				assert.Equal(t, "01.03.2025", report.Days[2].Date)
				assert.InDelta(t, 40.0, report.Days[0].CPLTotal, 1e-9)

				assert.Equal(t, 3, report.KPI.Days)
				assert.InDelta(t, 4500.0, report.KPI.TotalCost, 1e-9)

				assert.Equal(t, 2, report.ByType[domain.PlacementSearch].Count)
				assert.Equal(t, 1, report.ByType[domain.PlacementShelf].Count)

				assert.NotEmpty(t, report.Recommendations)
				assert.InDelta(t, 150.0, report.Prefill.CPM, 1e-9)
			},
		},
		{
			name:    "Período restringe dias e tipos",
			request: domain.ReportRequest{Filter: domain.PeriodFilter{Period: domain.PeriodLast7}, TargetCPL: 50},
			setup: func() {
				mockRepo.EXPECT().LoadDays(gomock.Any(), source).Return(daySet(), nil)
			},
			validate: func(t *testing.T, report *domain.DailyReport, err error) {
				require.NoError(t, err)
				require.Len(t, report.Days, 1)
				assert.Equal(t, "20.03.2025", report.Days[0].Date)
				assert.NotContains(t, report.ByType, domain.PlacementSearch)
				assert.Equal(t, 1, report.ByType[domain.PlacementShelf].Count)
			},
		},
		{
			name: "CPL alvo por dia usa o equilíbrio de cada dia",
			request: domain.ReportRequest{
				Filter: domain.PeriodFilter{Period: domain.PeriodAll}, TargetCPL: 50, Profit: 1000, PurchaseRate: 20,
				PerDayTarget: true, UseRecentConversions: true,
			},
			setup: func() {
				mockRepo.EXPECT().LoadDays(gomock.Any(), source).Return(daySet(), nil)
			},
			validate: func(t *testing.T, report *domain.DailyReport, err error) {
				require.NoError(t, err)
				// 20.03: 1000 * 0.2 * 0.2 * (40/30) = 53.33
				assert.InDelta(t, 1000*0.2*0.2*(40.0/30.0), report.Days[0].TargetCPL, 1e-9)
				// 10.03 sem pedidos usa o alvo da requisição
				assert.Equal(t, 50.0, report.Days[1].TargetCPL)
				// 01.03: 1000 * 0.2 * 0.2 * (50/50) = 40
				assert.InDelta(t, 40.0, report.Days[2].TargetCPL, 1e-9)
				assert.InDelta(t, (1000*0.2*0.2*(40.0/30.0)+50+40)/3, report.AvgTargetCPL, 1e-9)
			},
		},
		{
			name: "Dias recentes usam as conversões do calculador",
			request: domain.ReportRequest{
				Filter: domain.PeriodFilter{Period: domain.PeriodAll}, TargetCPL: 50, Profit: 1000, PurchaseRate: 20,
				PerDayTarget:      true,
				RecentAssumptions: domain.ConversionAssumptions{CartToOrder: 30, AdShare: 50, AdCartsShare: 40},
			},
			setup: func() {
				mockRepo.EXPECT().LoadDays(gomock.Any(), source).Return(daySet(), nil)
			},
			validate: func(t *testing.T, report *domain.DailyReport, err error) {
				require.NoError(t, err)
				// 20.03 está a 1 dia de 21.03: 1000 * 0.3 * 0.2 * (40/50) = 48
				assert.InDelta(t, 48.0, report.Days[0].TargetCPL, 1e-9)
				assert.Equal(t, 50.0, report.Days[1].TargetCPL)
				assert.InDelta(t, 40.0, report.Days[2].TargetCPL, 1e-9)
				assert.InDelta(t, (48.0+50+40)/3, report.AvgTargetCPL, 1e-9)
			},
		},
		{
			name: "Exclui o dia mais recente",
			request: domain.ReportRequest{
				Filter: domain.PeriodFilter{Period: domain.PeriodAll}, TargetCPL: 50, ExcludeLastDay: true,
			},
			setup: func() {
				mockRepo.EXPECT().LoadDays(gomock.Any(), source).Return(daySet(), nil)
			},
			validate: func(t *testing.T, report *domain.DailyReport, err error) {
				require.NoError(t, err)
				require.Len(t, report.Days, 2)
				assert.Equal(t, "10.03.2025", report.Days[0].Date)
				assert.Equal(t, 2, report.KPI.Days)
				assert.NotContains(t, report.ByType, domain.PlacementShelf)
				// (1000 + 1500) / (10000 + 10000) * 1000
				assert.InDelta(t, 125.0, report.Prefill.CPM, 1e-9)
			},
		},
		{
			name: "Exclui dias sem publicidade",
			request: domain.ReportRequest{
				Filter: domain.PeriodFilter{Period: domain.PeriodAll}, TargetCPL: 50, ExcludeNoAdDays: true,
			},
			setup: func() {
				set := daySet()
				set.Days = append(set.Days, day("15.03.2025", 0, 0, 10, 0, 2))
				mockRepo.EXPECT().LoadDays(gomock.Any(), source).Return(set, nil)
			},
			validate: func(t *testing.T, report *domain.DailyReport, err error) {
				require.NoError(t, err)
				require.Len(t, report.Days, 3)
				for _, d := range report.Days {
					assert.NotEqual(t, "15.03.2025", d.Date)
				}
			},
		},
		{
			name:    "Fonte inexistente",
			request: domain.ReportRequest{Filter: domain.PeriodFilter{Period: domain.PeriodAll}},
			setup: func() {
				mockRepo.EXPECT().LoadDays(gomock.Any(), source).
					Return(nil, errors.Wrap(repository.ErrSourceNotFound, source))
			},
			validate: func(t *testing.T, report *domain.DailyReport, err error) {
				assert.Nil(t, report)
				assert.ErrorIs(t, err, ErrSourceUnavailable)
				assert.Equal(t, appErrors.ErrSourceNotFound, appErrors.CodeOf(err))
			},
		},
		{
			name:    "Fonte malformada",
			request: domain.ReportRequest{Filter: domain.PeriodFilter{Period: domain.PeriodAll}},
			setup: func() {
				mockRepo.EXPECT().LoadDays(gomock.Any(), source).
					Return(nil, errors.Wrap(repository.ErrInvalidSource, source))
			},
			validate: func(t *testing.T, report *domain.DailyReport, err error) {
				assert.ErrorIs(t, err, ErrSourceMalformed)
				assert.Equal(t, appErrors.ErrInvalidFormat, appErrors.CodeOf(err))
			},
		},
		{
			name:    "Período inválido não carrega a fonte",
			request: domain.ReportRequest{Filter: domain.PeriodFilter{Period: "last90"}},
			setup:   func() {},
			validate: func(t *testing.T, report *domain.DailyReport, err error) {
				assert.ErrorIs(t, err, ErrInvalidPeriod)
				assert.Equal(t, appErrors.ErrInvalidRequest, appErrors.CodeOf(err))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			report, err := service.BuildReport(context.Background(), source, tt.request)
			tt.validate(t, report, err)
		})
	}
}

func TestService_BuildReport_GenerateIDError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockDayRepository(ctrl)
	mockRepo.EXPECT().LoadDays(gomock.Any(), source).Return(daySet(), nil)

	service := newTestService(mockRepo)
	service.generateID = func() (string, error) { return "", errors.New("entropy") }

	report, err := service.BuildReport(context.Background(), source, domain.ReportRequest{Filter: domain.PeriodFilter{Period: domain.PeriodAll}})
	assert.Nil(t, report)
	assert.ErrorIs(t, err, ErrGenerateID)
	assert.Equal(t, appErrors.ErrInternal, appErrors.CodeOf(err))
}

func TestValidateRequest(t *testing.T) {
	custom := func(start, end string) domain.ReportRequest {
		return domain.ReportRequest{Filter: domain.PeriodFilter{Period: domain.PeriodCustom, StartDate: start, EndDate: end}}
	}

	assert.NoError(t, ValidateRequest(custom("2025-03-01", "2025-03-10")))
	assert.NoError(t, ValidateRequest(custom("2025-03-01", "")))
	assert.ErrorIs(t, ValidateRequest(custom("01.03.2025", "2025-03-10")), ErrInvalidDateRange)
	assert.ErrorIs(t, ValidateRequest(custom("2025-03-10", "2025-03-01")), ErrInvalidDateRange)
	assert.ErrorIs(t, ValidateRequest(domain.ReportRequest{
		Filter: domain.PeriodFilter{Period: domain.PeriodAll}, TargetCPL: -1,
	}), ErrInvalidTarget)
}

func TestDayTargetCPL(t *testing.T) {
	now := time.Date(2025, time.March, 21, 12, 0, 0, 0, time.UTC)
	base := domain.ReportRequest{
		TargetCPL:         50,
		Profit:            1000,
		PurchaseRate:      20,
		PerDayTarget:      true,
		RecentAssumptions: domain.ConversionAssumptions{CartToOrder: 30, AdShare: 50, AdCartsShare: 40},
	}

	tests := []struct {
		name    string
		day     domain.DailyRecord
		request func() domain.ReportRequest
		want    float64
	}{
		{
			name:    "Dia antigo usa as próprias conversões",
			day:     day("01.03.2025", 1000, 10, 20, 2, 4),
			request: func() domain.ReportRequest { return base },
			want:    1000 * 0.2 * 0.2 * (50.0 / 50.0),
		},
		{
			name:    "Dia no limite da janela recente usa o calculador",
			day:     day("14.03.2025", 1000, 10, 20, 2, 4),
			request: func() domain.ReportRequest { return base },
			want:    1000 * 0.3 * 0.2 * (40.0 / 50.0),
		},
		{
			name:    "Dia fora da janela recente",
			day:     day("13.03.2025", 1000, 10, 20, 2, 4),
			request: func() domain.ReportRequest { return base },
			want:    40,
		},
		{
			name: "Conversões recentes reais quando solicitado",
			day:  day("20.03.2025", 1000, 10, 20, 2, 4),
			request: func() domain.ReportRequest {
				r := base
				r.UseRecentConversions = true
				return r
			},
			want: 40,
		},
		{
			name:    "Dia recente sem carrinhos usa o alvo da requisição",
			day:     day("20.03.2025", 1000, 0, 0, 0, 0),
			request: func() domain.ReportRequest { return base },
			want:    50,
		},
		{
			name: "Participação de pedidos zerada no calculador vale 50",
			day:  day("20.03.2025", 1000, 10, 20, 2, 4),
			request: func() domain.ReportRequest {
				r := base
				r.RecentAssumptions.AdShare = 0
				return r
			},
			want: 1000 * 0.3 * 0.2 * (40.0 / 50.0),
		},
		{
			name:    "Data inválida não é recente",
			day:     day("31.02.2025", 1000, 10, 20, 0, 0),
			request: func() domain.ReportRequest { return base },
			want:    50,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, DayTargetCPL(tt.day, tt.request(), now), 1e-9)
		})
	}
}

func TestExcludeLastDay_IgnoresInvalidDates(t *testing.T) {
	days := []domain.DailyRecord{
		day("31.02.2025", 100, 0, 0, 0, 0),
		day("05.03.2025", 100, 0, 0, 0, 0),
		day("04.03.2025", 100, 0, 0, 0, 0),
	}

	got := excludeLastDay(days)

	assert.Equal(t, []string{"31.02.2025", "04.03.2025"}, evaluating.DatesOf(got))
	assert.Len(t, excludeLastDay([]domain.DailyRecord{day("x", 1, 0, 0, 0, 0)}), 1)
}
