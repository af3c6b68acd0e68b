// File: utils/config.go
package utils

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// EnvPrefix namespaces every environment override.
const EnvPrefix = "DUOPONG_"

// Config holds all configurable game parameters.
type Config struct {
	// Timing
	FramePeriod   time.Duration `json:"framePeriod" toml:"frame_period"`     // Target wall-clock time per frame
	CountdownTick time.Duration `json:"countdownTick" toml:"countdown_tick"` // Real time between countdown labels

	// Field
	FieldWidth  int `json:"fieldWidth" toml:"field_width"`
	FieldHeight int `json:"fieldHeight" toml:"field_height"`

	// Score & Player
	WinningScore uint `json:"winningScore" toml:"winning_score"` // First player to reach this wins

	// Paddle Properties
	PaddleWidth      int `json:"paddleWidth" toml:"paddle_width"`
	PaddleHeight     int `json:"paddleHeight" toml:"paddle_height"`
	PaddleSpeed      int `json:"paddleSpeed" toml:"paddle_speed"`            // Units per second while a move key is held
	PaddleFieldRatio int `json:"paddleFieldRatio" toml:"paddle_field_ratio"` // Field width / paddle section width

	// Ball Physics & Properties
	BallSizeRatio      int     `json:"ballSizeRatio" toml:"ball_size_ratio"`            // Larger field axis / ball size
	BallStartSpeed     float64 `json:"ballStartSpeed" toml:"ball_start_speed"`          // Scalar speed after every (re)configuration
	BallHitSpeedFactor float64 `json:"ballHitSpeedFactor" toml:"ball_hit_speed_factor"` // Speed multiplier per paddle hit

	// Frontends
	CountdownLabels  []string      `json:"countdownLabels" toml:"countdown_labels"`
	InputHoldTimeout time.Duration `json:"inputHoldTimeout" toml:"input_hold_timeout"` // Terminal key-repeat window
	Muted            bool          `json:"muted" toml:"muted"`
	SampleRate       int           `json:"sampleRate" toml:"sample_rate"`
}

// DefaultConfig returns a Config struct with default values.
func DefaultConfig() Config {
	return Config{
		// Timing
		FramePeriod:   Period,
		CountdownTick: CountdownTick,

		// Field
		FieldWidth:  FieldWidth,
		FieldHeight: FieldHeight,

		// Score & Player
		WinningScore: WinningScore,

		// Paddle Properties
		PaddleWidth:      PaddleWidth,
		PaddleHeight:     PaddleHeight,
		PaddleSpeed:      PaddleSpeed,
		PaddleFieldRatio: PaddleFieldRatio,

		// Ball Physics & Properties
		BallSizeRatio:      BallSizeRatio,
		BallStartSpeed:     BallStartSpeed,
		BallHitSpeedFactor: BallHitSpeedFactor,

		// Frontends
		CountdownLabels:  append([]string(nil), CountdownLabels...),
		InputHoldTimeout: InputHoldTimeout,
		Muted:            false,
		SampleRate:       44100,
	}
}

// Validate returns an error describing the first unusable field.
func (c Config) Validate() error {
	switch {
	case c.FramePeriod <= 0:
		return fmt.Errorf("frame_period must be positive, got %v", c.FramePeriod)
	case c.CountdownTick <= 0:
		return fmt.Errorf("countdown_tick must be positive, got %v", c.CountdownTick)
	case c.FieldWidth <= 0 || c.FieldHeight <= 0:
		return fmt.Errorf("field must have positive size, got %dx%d", c.FieldWidth, c.FieldHeight)
	case c.WinningScore == 0:
		return errors.New("winning_score must be at least 1")
	case c.PaddleWidth <= 0 || c.PaddleHeight <= 0:
		return fmt.Errorf("paddle must have positive size, got %dx%d", c.PaddleWidth, c.PaddleHeight)
	case c.PaddleSpeed < 0:
		return fmt.Errorf("paddle_speed must not be negative, got %d", c.PaddleSpeed)
	case c.PaddleFieldRatio <= 0:
		return fmt.Errorf("paddle_field_ratio must be positive, got %d", c.PaddleFieldRatio)
	case c.BallSizeRatio <= 0:
		return fmt.Errorf("ball_size_ratio must be positive, got %d", c.BallSizeRatio)
	case c.BallStartSpeed <= 0:
		return fmt.Errorf("ball_start_speed must be positive, got %g", c.BallStartSpeed)
	case c.BallHitSpeedFactor <= 0:
		return fmt.Errorf("ball_hit_speed_factor must be positive, got %g", c.BallHitSpeedFactor)
	case len(c.CountdownLabels) == 0:
		return errors.New("countdown_labels must not be empty")
	case c.InputHoldTimeout <= 0:
		return fmt.Errorf("input_hold_timeout must be positive, got %v", c.InputHoldTimeout)
	case c.SampleRate <= 0:
		return fmt.Errorf("sample_rate must be positive, got %d", c.SampleRate)
	}
	return nil
}

// LoadConfig layers defaults, the optional TOML file at path, a .env file and
// DUOPONG_* environment variables, in that order, and validates the result.
// An empty or missing path yields the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			if !errors.Is(err, fs.ErrNotExist) {
				return Config{}, fmt.Errorf("decode config %s: %w", path, err)
			}
			log.Printf("[config] %s not found, using defaults", path)
		}
	}

	// .env is optional; real environment variables win over it.
	_ = godotenv.Load()
	applyEnv(&cfg)

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// SaveConfig writes cfg as TOML to path, creating or truncating it.
func SaveConfig(path string, cfg Config) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create config %s: %w", path, err)
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(cfg); err != nil {
		return fmt.Errorf("encode config %s: %w", path, err)
	}
	return nil
}

func applyEnv(cfg *Config) {
	cfg.FramePeriod = getEnvDuration("FRAME_PERIOD", cfg.FramePeriod)
	cfg.CountdownTick = getEnvDuration("COUNTDOWN_TICK", cfg.CountdownTick)

	cfg.FieldWidth = getEnvInt("FIELD_WIDTH", cfg.FieldWidth)
	cfg.FieldHeight = getEnvInt("FIELD_HEIGHT", cfg.FieldHeight)

	cfg.WinningScore = uint(getEnvInt("WINNING_SCORE", int(cfg.WinningScore)))

	cfg.PaddleWidth = getEnvInt("PADDLE_WIDTH", cfg.PaddleWidth)
	cfg.PaddleHeight = getEnvInt("PADDLE_HEIGHT", cfg.PaddleHeight)
	cfg.PaddleSpeed = getEnvInt("PADDLE_SPEED", cfg.PaddleSpeed)
	cfg.PaddleFieldRatio = getEnvInt("PADDLE_FIELD_RATIO", cfg.PaddleFieldRatio)

	cfg.BallSizeRatio = getEnvInt("BALL_SIZE_RATIO", cfg.BallSizeRatio)
	cfg.BallStartSpeed = getEnvFloat("BALL_START_SPEED", cfg.BallStartSpeed)
	cfg.BallHitSpeedFactor = getEnvFloat("BALL_HIT_SPEED_FACTOR", cfg.BallHitSpeedFactor)

	if labels := getEnv("COUNTDOWN_LABELS", ""); labels != "" {
		cfg.CountdownLabels = strings.Split(labels, ",")
	}
	cfg.InputHoldTimeout = getEnvDuration("INPUT_HOLD_TIMEOUT", cfg.InputHoldTimeout)
	cfg.Muted = getEnvBool("MUTED", cfg.Muted)
	cfg.SampleRate = getEnvInt("SAMPLE_RATE", cfg.SampleRate)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(EnvPrefix + key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := getEnv(key, ""); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
		log.Printf("[config] ignoring %s%s=%q: not an integer", EnvPrefix, key, value)
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := getEnv(key, ""); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
		log.Printf("[config] ignoring %s%s=%q: not a number", EnvPrefix, key, value)
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := getEnv(key, ""); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
		log.Printf("[config] ignoring %s%s=%q: not a boolean", EnvPrefix, key, value)
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := getEnv(key, ""); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
		log.Printf("[config] ignoring %s%s=%q: not a duration", EnvPrefix, key, value)
	}
	return defaultValue
}
