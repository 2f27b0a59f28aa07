package config

import (
	"errors"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config carries every tunable of the solver, loadable from the environment
// or a .env file. Defaults match the documented reference values.
type Config struct {
	Rules     RulesConfig
	Weights   WeightsConfig
	Annealing AnnealingConfig
	Log       LogConfig
}

// RulesConfig parameterises the scheduling rules themselves.
type RulesConfig struct {
	SlotsPerDay        int
	MinGap             int
	TurnaroundGap      int
	LargeExamThreshold int
	ExaminerCapacity   int
}

// WeightsConfig holds the penalty weight of each violation class.
type WeightsConfig struct {
	RoomDouble  int
	Clash       int
	MinGap      int
	DayCap      int
	Turnaround  int
	LastSlot    int
	Invigilator int
}

// AnnealingConfig tunes the search schedule and its pseudo-random source.
type AnnealingConfig struct {
	MaxIterations int
	StartTemp     float64
	EndTemp       float64
	Seed          int64
}

type LogConfig struct {
	Level  string
	Format string
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !os.IsNotExist(err) {
			return nil, err
		}
	}

	cfg := &Config{}

	cfg.Rules = RulesConfig{
		SlotsPerDay:        v.GetInt("SLOTS_PER_DAY"),
		MinGap:             v.GetInt("MIN_GAP"),
		TurnaroundGap:      v.GetInt("TURNAROUND_GAP"),
		LargeExamThreshold: v.GetInt("LARGE_EXAM_THRESHOLD"),
		ExaminerCapacity:   v.GetInt("EXAMINER_CAPACITY"),
	}

	cfg.Weights = WeightsConfig{
		RoomDouble:  v.GetInt("WEIGHT_ROOM_DOUBLE"),
		Clash:       v.GetInt("WEIGHT_CLASH"),
		MinGap:      v.GetInt("WEIGHT_MIN_GAP"),
		DayCap:      v.GetInt("WEIGHT_DAY_CAP"),
		Turnaround:  v.GetInt("WEIGHT_TURNAROUND"),
		LastSlot:    v.GetInt("WEIGHT_LAST_SLOT"),
		Invigilator: v.GetInt("WEIGHT_INVIGILATOR"),
	}

	cfg.Annealing = AnnealingConfig{
		MaxIterations: v.GetInt("MAX_ITERATIONS"),
		StartTemp:     v.GetFloat64("TEMP_START"),
		EndTemp:       v.GetFloat64("TEMP_END"),
		Seed:          v.GetInt64("SEED"),
	}

	cfg.Log = LogConfig{
		Level:  v.GetString("LOG_LEVEL"),
		Format: v.GetString("LOG_FORMAT"),
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("SLOTS_PER_DAY", 4)
	v.SetDefault("MIN_GAP", 1)
	v.SetDefault("TURNAROUND_GAP", 1)
	v.SetDefault("LARGE_EXAM_THRESHOLD", 10)
	v.SetDefault("EXAMINER_CAPACITY", 10)

	v.SetDefault("WEIGHT_ROOM_DOUBLE", 10)
	v.SetDefault("WEIGHT_CLASH", 10)
	v.SetDefault("WEIGHT_MIN_GAP", 6)
	v.SetDefault("WEIGHT_DAY_CAP", 8)
	v.SetDefault("WEIGHT_TURNAROUND", 6)
	v.SetDefault("WEIGHT_LAST_SLOT", 12)
	v.SetDefault("WEIGHT_INVIGILATOR", 8)

	v.SetDefault("MAX_ITERATIONS", 20000)
	v.SetDefault("TEMP_START", 3.0)
	v.SetDefault("TEMP_END", 0.01)
	v.SetDefault("SEED", 42)

	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "console")
}
