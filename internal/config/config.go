package config

import (
	"fmt"
	"time"
)

type Config struct {
	Whisper     WhisperConfig     `yaml:"whisper"`
	Gemini      GeminiConfig      `yaml:"gemini"`
	Render      RenderConfig      `yaml:"render"`
	Paths       PathsConfig       `yaml:"paths"`
	Server      ServerConfig      `yaml:"server"`
	Logging     LoggingConfig     `yaml:"logging"`
	Performance PerformanceConfig `yaml:"performance"`
	Timeouts    TimeoutsConfig    `yaml:"timeouts"`
}

type WhisperConfig struct {
	BinaryPath string `yaml:"binary_path"`
	ModelPath  string `yaml:"model_path"`
	Language   string `yaml:"language"`
	Threads    int    `yaml:"threads"`
}

type GeminiConfig struct {
	Model   string   `yaml:"model"`
	APIKeys []string `yaml:"api_keys"`
}

type RenderConfig struct {
	LogoPath string `yaml:"logo_path"`
}

type PathsConfig struct {
	// Input is the drop directory the daemon watches; runs copy their
	// working files into Uploads so new-file events never retrigger.
	Input   string `yaml:"input"`
	Uploads string `yaml:"uploads"`
	Outputs string `yaml:"outputs"`
	Temp    string `yaml:"temp"`
}

type ServerConfig struct {
	Addr string `yaml:"addr"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

type PerformanceConfig struct {
	MaxConcurrent int `yaml:"max_concurrent"`
}

// TimeoutsConfig bounds each external call made during a run. Media work can
// legitimately take a long time, so the defaults are generous.
type TimeoutsConfig struct {
	Transcribe Duration `yaml:"transcribe"`
	Analyze    Duration `yaml:"analyze"`
	Render     Duration `yaml:"render"`
}

func (c *Config) Validate() error {
	if c.Whisper.BinaryPath == "" {
		return fmt.Errorf("whisper.binary_path is required")
	}
	if c.Whisper.ModelPath == "" {
		return fmt.Errorf("whisper.model_path is required")
	}
	if c.Paths.Uploads == "" {
		return fmt.Errorf("paths.uploads is required")
	}
	if c.Paths.Outputs == "" {
		return fmt.Errorf("paths.outputs is required")
	}

	if c.Whisper.Language == "" {
		c.Whisper.Language = "en"
	}
	if c.Whisper.Threads == 0 {
		c.Whisper.Threads = 4
	}
	if c.Gemini.Model == "" {
		c.Gemini.Model = "gemini-2.5-flash"
	}
	if c.Paths.Input == "" {
		c.Paths.Input = "data/input"
	}
	if c.Paths.Temp == "" {
		c.Paths.Temp = "data/temp"
	}
	if c.Server.Addr == "" {
		c.Server.Addr = ":8000"
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Performance.MaxConcurrent == 0 {
		c.Performance.MaxConcurrent = 2
	}
	if c.Timeouts.Transcribe == 0 {
		c.Timeouts.Transcribe = Duration(30 * time.Minute)
	}
	if c.Timeouts.Analyze == 0 {
		c.Timeouts.Analyze = Duration(2 * time.Minute)
	}
	if c.Timeouts.Render == 0 {
		c.Timeouts.Render = Duration(30 * time.Minute)
	}

	return nil
}
