package config

import (
	"math"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"github.com/vfg2006/rk-metrics/internal/domain"
	"github.com/vfg2006/rk-metrics/internal/usecases/calculating"
)

type Config struct {
	App           App           `mapstructure:",squash"`
	Calculator    Calculator    `mapstructure:",squash"`
	Report        Report        `mapstructure:",squash"`
	ReportRefresh ReportRefresh `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

// Calculator são os valores iniciais da calculadora
type Calculator struct {
	CPM               float64 `mapstructure:"calc_cpm"`
	PurchaseRate      float64 `mapstructure:"calc_purchase_rate"`
	Impressions       float64 `mapstructure:"calc_impressions"`
	OrganicShare      float64 `mapstructure:"calc_organic_share"`
	OrganicCartsShare float64 `mapstructure:"calc_organic_carts_share"`

	NowPrice       float64 `mapstructure:"calc_now_price"`
	NowDuration    float64 `mapstructure:"calc_now_duration"`
	NowCTR         float64 `mapstructure:"calc_now_ctr"`
	NowClickToCart float64 `mapstructure:"calc_now_click_to_cart"`
	NowCartToOrder float64 `mapstructure:"calc_now_cart_to_order"`
	NowProfit      float64 `mapstructure:"calc_now_profit"`

	SeasonPrice       float64 `mapstructure:"calc_season_price"`
	SeasonDuration    float64 `mapstructure:"calc_season_duration"`
	SeasonCTR         float64 `mapstructure:"calc_season_ctr"`
	SeasonClickToCart float64 `mapstructure:"calc_season_click_to_cart"`
	SeasonCartToOrder float64 `mapstructure:"calc_season_cart_to_order"`
	SeasonProfit      float64 `mapstructure:"calc_season_profit"`
}

// Inputs monta as entradas da calculadora a partir da configuração
func (c Calculator) Inputs() domain.CalculatorInputs {
	return domain.CalculatorInputs{
		CPM:               c.CPM,
		PurchaseRate:      c.PurchaseRate,
		Impressions:       c.Impressions,
		OrganicShare:      c.OrganicShare,
		OrganicCartsShare: c.OrganicCartsShare,
		Now: domain.ScenarioInputs{
			Price:       c.NowPrice,
			Duration:    c.NowDuration,
			CTR:         c.NowCTR,
			ClickToCart: c.NowClickToCart,
			CartToOrder: c.NowCartToOrder,
			Profit:      c.NowProfit,
		},
		Season: domain.ScenarioInputs{
			Price:       c.SeasonPrice,
			Duration:    c.SeasonDuration,
			CTR:         c.SeasonCTR,
			ClickToCart: c.SeasonClickToCart,
			CartToOrder: c.SeasonCartToOrder,
			Profit:      c.SeasonProfit,
		},
	}
}

// fallbackTargetCPL vale quando TARGET_CPL não foi definido e o calculador não
// produz um CPL de equilíbrio positivo
const fallbackTargetCPL = 500

// Report são os parâmetros padrão do relatório diário.
// TargetCPL zero usa o CPL de equilíbrio do período atual do calculador.
type Report struct {
	TargetCPL            float64 `mapstructure:"target_cpl"`
	Period               string  `mapstructure:"report_period"`
	Profit               float64 `mapstructure:"report_profit"`
	PurchaseRate         float64 `mapstructure:"report_purchase_rate"`
	ExcludeLastDay       bool    `mapstructure:"report_exclude_last_day"`
	ExcludeNoAdDays      bool    `mapstructure:"report_exclude_no_ad_days"`
	UseRecentConversions bool    `mapstructure:"report_use_recent_conversions"`
}

// ReportRequest monta a requisição padrão de relatório. As conversões dos dias
// recentes e o CPL alvo derivado vêm do período atual do calculador.
func (c *Config) ReportRequest() domain.ReportRequest {
	calc := c.Calculator

	target := c.Report.TargetCPL
	if target <= 0 {
		target = math.Round(calculating.BreakevenCPL(
			calc.NowProfit, calc.NowCartToOrder, calc.PurchaseRate,
			100-calc.OrganicCartsShare, 100-calc.OrganicShare,
		))
	}
	if target <= 0 {
		target = fallbackTargetCPL
	}

	return domain.ReportRequest{
		Filter:               domain.PeriodFilter{Period: domain.Period(c.Report.Period)},
		TargetCPL:            target,
		Profit:               c.Report.Profit,
		PurchaseRate:         c.Report.PurchaseRate,
		ExcludeLastDay:       c.Report.ExcludeLastDay,
		ExcludeNoAdDays:      c.Report.ExcludeNoAdDays,
		UseRecentConversions: c.Report.UseRecentConversions,
		RecentAssumptions: domain.ConversionAssumptions{
			CartToOrder:  calc.NowCartToOrder,
			AdShare:      100 - calc.OrganicShare,
			AdCartsShare: 100 - calc.OrganicCartsShare,
		},
	}
}

type ReportRefresh struct {
	CronSchedule      string        `mapstructure:"report_refresh_cron"`
	Sources           []string      `mapstructure:"report_refresh_sources"`
	MaxConcurrentJobs int           `mapstructure:"report_refresh_max_concurrent_jobs"`
	Timeout           time.Duration `mapstructure:"report_refresh_timeout"`
	Enabled           bool          `mapstructure:"report_refresh_enabled"`
}

func SetDefaults() {
	viper.SetDefault("LOG_LEVEL", "info")

	viper.SetDefault("CALC_CPM", 320)
	viper.SetDefault("CALC_PURCHASE_RATE", 20)
	viper.SetDefault("CALC_IMPRESSIONS", 1000)
	viper.SetDefault("CALC_ORGANIC_SHARE", 50)
	viper.SetDefault("CALC_ORGANIC_CARTS_SHARE", 50)

	viper.SetDefault("CALC_NOW_PRICE", 6200)
	viper.SetDefault("CALC_NOW_DURATION", 70)
	viper.SetDefault("CALC_NOW_CTR", 6)
	viper.SetDefault("CALC_NOW_CLICK_TO_CART", 6)
	viper.SetDefault("CALC_NOW_CART_TO_ORDER", 15)
	viper.SetDefault("CALC_NOW_PROFIT", 600)

	viper.SetDefault("CALC_SEASON_PRICE", 7500)
	viper.SetDefault("CALC_SEASON_DURATION", 60)
	viper.SetDefault("CALC_SEASON_CTR", 8)
	viper.SetDefault("CALC_SEASON_CLICK_TO_CART", 9)
	viper.SetDefault("CALC_SEASON_CART_TO_ORDER", 35)
	viper.SetDefault("CALC_SEASON_PROFIT", 1800)

	// 0 deriva o alvo do calculador
	viper.SetDefault("TARGET_CPL", 0)
	viper.SetDefault("REPORT_PERIOD", string(domain.PeriodAll))
	viper.SetDefault("REPORT_PROFIT", 500)
	viper.SetDefault("REPORT_PURCHASE_RATE", 20)
	viper.SetDefault("REPORT_EXCLUDE_LAST_DAY", false)
	viper.SetDefault("REPORT_EXCLUDE_NO_AD_DAYS", false)
	viper.SetDefault("REPORT_USE_RECENT_CONVERSIONS", false)

	// Atualização periódica dos relatórios; fontes separadas por vírgula
	viper.SetDefault("REPORT_REFRESH_CRON", "*/30 * * * *")
	viper.SetDefault("REPORT_REFRESH_SOURCES", "")
	viper.SetDefault("REPORT_REFRESH_MAX_CONCURRENT_JOBS", 3)
	viper.SetDefault("REPORT_REFRESH_TIMEOUT", "1m")
	viper.SetDefault("REPORT_REFRESH_ENABLED", false)
}

func NewConfig() (*Config, error) {
	loadEnvFile()

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Debug("Usando variáveis de ambiente (viper não conseguiu ler .env): ", err)
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, errors.Wrap(err, "decoding config")
	}

	if !domain.Period(config.Report.Period).IsValid() {
		return nil, errors.Errorf("invalid REPORT_PERIOD %q", config.Report.Period)
	}
	if config.ReportRefresh.MaxConcurrentJobs < 1 {
		config.ReportRefresh.MaxConcurrentJobs = 1
	}

	return config, nil
}

// loadEnvFile carrega o primeiro .env encontrado no diretório atual ou nos pais
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual: ", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(cwd, "../.env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Debug("Arquivo .env carregado de: ", location)
			return
		}
	}
}
