package config

import (
	"fmt"
	"math"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// weightTolerance é a tolerância aceita para a soma dos vetores de pesos
const weightTolerance = 1e-6

type Config struct {
	App                  App                  `mapstructure:",squash"`
	Server               Server               `mapstructure:",squash"`
	Database             Database             `mapstructure:",squash"`
	ChurnScoring         ChurnScoring         `mapstructure:",squash"`
	AgentScoring         AgentScoring         `mapstructure:",squash"`
	UsageStatsSync       UsageStatsSync       `mapstructure:",squash"`
	AgentPerformanceSync AgentPerformanceSync `mapstructure:",squash"`
	ChurnSweep           ChurnSweep           `mapstructure:",squash"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

// ChurnScoring é o vetor de pesos do score de churn. Os pesos são
// configuração operacional, não literais de código, e devem somar 1.0.
type ChurnScoring struct {
	WeightComplaints    float64 `mapstructure:"churn_weight_complaints"`
	WeightBalance       float64 `mapstructure:"churn_weight_balance"`
	WeightRecency       float64 `mapstructure:"churn_weight_recency"`
	WeightTenure        float64 `mapstructure:"churn_weight_tenure"`
	ComplaintWindowDays int     `mapstructure:"churn_complaint_window_days"`
}

// AgentScoring pondera o score composto de desempenho do agente
type AgentScoring struct {
	WeightResolution        float64 `mapstructure:"agent_score_weight_resolution"`
	WeightSatisfaction      float64 `mapstructure:"agent_score_weight_satisfaction"`
	WeightEfficiency        float64 `mapstructure:"agent_score_weight_efficiency"`
	TargetHandleTimeSeconds int     `mapstructure:"agent_score_target_handle_time_seconds"`
}

type UsageStatsSync struct {
	CronSchedule      string `mapstructure:"usage_stats_sync_cron"`
	LookbackDays      int    `mapstructure:"usage_stats_sync_lookback_days"`
	MaxConcurrentJobs int    `mapstructure:"usage_stats_sync_max_concurrent_jobs"`
	Enabled           bool   `mapstructure:"usage_stats_sync_enabled"`
}

type AgentPerformanceSync struct {
	CronSchedule      string `mapstructure:"agent_performance_sync_cron"`
	LookbackDays      int    `mapstructure:"agent_performance_sync_lookback_days"`
	MaxConcurrentJobs int    `mapstructure:"agent_performance_sync_max_concurrent_jobs"`
	Enabled           bool   `mapstructure:"agent_performance_sync_enabled"`
}

type ChurnSweep struct {
	CronSchedule      string `mapstructure:"churn_sweep_cron"`
	MaxConcurrentJobs int    `mapstructure:"churn_sweep_max_concurrent_jobs"`
	Enabled           bool   `mapstructure:"churn_sweep_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/teledash")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	// Pesos do score de churn: reclamações pesam mais, tempo de casa amortece
	viper.SetDefault("CHURN_WEIGHT_COMPLAINTS", 0.4)
	viper.SetDefault("CHURN_WEIGHT_BALANCE", 0.2)
	viper.SetDefault("CHURN_WEIGHT_RECENCY", 0.25)
	viper.SetDefault("CHURN_WEIGHT_TENURE", 0.15)
	viper.SetDefault("CHURN_COMPLAINT_WINDOW_DAYS", 30)

	viper.SetDefault("AGENT_SCORE_WEIGHT_RESOLUTION", 0.4)
	viper.SetDefault("AGENT_SCORE_WEIGHT_SATISFACTION", 0.35)
	viper.SetDefault("AGENT_SCORE_WEIGHT_EFFICIENCY", 0.25)
	viper.SetDefault("AGENT_SCORE_TARGET_HANDLE_TIME_SECONDS", 600)

	// Agregações diárias rodam de madrugada, sempre sobre dias UTC já fechados
	viper.SetDefault("USAGE_STATS_SYNC_CRON", "0 2 * * *")
	viper.SetDefault("USAGE_STATS_SYNC_LOOKBACK_DAYS", 3)
	viper.SetDefault("USAGE_STATS_SYNC_MAX_CONCURRENT_JOBS", 3)
	viper.SetDefault("USAGE_STATS_SYNC_ENABLED", false)

	viper.SetDefault("AGENT_PERFORMANCE_SYNC_CRON", "0 3 * * *")
	viper.SetDefault("AGENT_PERFORMANCE_SYNC_LOOKBACK_DAYS", 3)
	viper.SetDefault("AGENT_PERFORMANCE_SYNC_MAX_CONCURRENT_JOBS", 3)
	viper.SetDefault("AGENT_PERFORMANCE_SYNC_ENABLED", false)

	viper.SetDefault("CHURN_SWEEP_CRON", "0 4 * * *")
	viper.SetDefault("CHURN_SWEEP_MAX_CONCURRENT_JOBS", 3)
	viper.SetDefault("CHURN_SWEEP_ENABLED", false)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	if err := config.ChurnScoring.Validate(); err != nil {
		return nil, err
	}
	if err := config.AgentScoring.Validate(); err != nil {
		return nil, err
	}
	if err := config.UsageStatsSync.Validate(); err != nil {
		return nil, err
	}
	if err := config.AgentPerformanceSync.Validate(); err != nil {
		return nil, err
	}
	if err := config.ChurnSweep.Validate(); err != nil {
		return nil, err
	}

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// Validate garante que o vetor de pesos de churn soma 1.0 dentro da tolerância
func (c ChurnScoring) Validate() error {
	sum := c.WeightComplaints + c.WeightBalance + c.WeightRecency + c.WeightTenure
	if math.Abs(sum-1.0) > weightTolerance {
		return &ConfigError{
			Option: "churn_weight_*",
			Reason: fmt.Sprintf("pesos devem somar 1.0, soma atual: %.6f", sum),
		}
	}
	for _, w := range []float64{c.WeightComplaints, c.WeightBalance, c.WeightRecency, c.WeightTenure} {
		if w < 0 {
			return &ConfigError{Option: "churn_weight_*", Reason: "pesos não podem ser negativos"}
		}
	}
	return nil
}

// Validate garante que o vetor de pesos do score de agentes soma 1.0
func (c AgentScoring) Validate() error {
	sum := c.WeightResolution + c.WeightSatisfaction + c.WeightEfficiency
	if math.Abs(sum-1.0) > weightTolerance {
		return &ConfigError{
			Option: "agent_score_weight_*",
			Reason: fmt.Sprintf("pesos devem somar 1.0, soma atual: %.6f", sum),
		}
	}
	if c.TargetHandleTimeSeconds <= 0 {
		return &ConfigError{
			Option: "agent_score_target_handle_time_seconds",
			Reason: "tempo de atendimento alvo deve ser positivo",
		}
	}
	return nil
}

// Validate impede lotes vazios e semáforos de capacidade zero no agendador
func (c UsageStatsSync) Validate() error {
	if c.LookbackDays < 1 {
		return &ConfigError{
			Option: "usage_stats_sync_lookback_days",
			Reason: "deve ser no mínimo 1",
		}
	}
	if c.MaxConcurrentJobs < 1 {
		return &ConfigError{
			Option: "usage_stats_sync_max_concurrent_jobs",
			Reason: "deve ser no mínimo 1",
		}
	}
	return nil
}

func (c AgentPerformanceSync) Validate() error {
	if c.LookbackDays < 1 {
		return &ConfigError{
			Option: "agent_performance_sync_lookback_days",
			Reason: "deve ser no mínimo 1",
		}
	}
	if c.MaxConcurrentJobs < 1 {
		return &ConfigError{
			Option: "agent_performance_sync_max_concurrent_jobs",
			Reason: "deve ser no mínimo 1",
		}
	}
	return nil
}

func (c ChurnSweep) Validate() error {
	if c.MaxConcurrentJobs < 1 {
		return &ConfigError{
			Option: "churn_sweep_max_concurrent_jobs",
			Reason: "deve ser no mínimo 1",
		}
	}
	return nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../.env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Info("Nenhum arquivo .env encontrado, usando variáveis de ambiente")
}
