// Package config 提供 qrscan 的配置加载与校验。
// 配置来源优先级：命令行标志 > TOML 配置文件 > 内置默认值。
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"qrscan/internal/scanner"
)

// 色彩模式取值。
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config 存放一次扫描运行的全部可配置参数。
type Config struct {
	// InputDir 是图片所在目录，不递归子目录。
	InputDir string `toml:"input_dir"`
	// Output 是识别结果文件路径，每次运行整体覆盖。
	Output string `toml:"output"`
	// Workers 是批次内并发度，也是批次大小。
	Workers int `toml:"workers"`
	// Color 控制状态行着色：auto/always/never。
	Color string `toml:"color"`
}

// Default 返回内置默认配置。
// 输入目录与输出文件沿用部署约定的相对路径。
func Default() Config {
	return Config{
		InputDir: "images",
		Output:   "qr_results.txt",
		Workers:  scanner.DefaultWorkers(),
		Color:    ColorAuto,
	}
}

// Load 在默认值基础上叠加 TOML 配置文件。
// 文件中省略的键保持默认值；加载后立即归一化并校验。
func Load(path string) (Config, error) {
	cfg := Default()

	content, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config file: %w", err)
	}

	if err := toml.Unmarshal(content, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config file: %w", err)
	}

	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Normalize 清理字段的空白与大小写差异。
func (c *Config) Normalize() {
	c.InputDir = strings.TrimSpace(c.InputDir)
	c.Output = strings.TrimSpace(c.Output)
	c.Color = strings.ToLower(strings.TrimSpace(c.Color))
	if c.Color == "" {
		c.Color = ColorAuto
	}
}

// Validate 校验配置取值。
func (c Config) Validate() error {
	if c.InputDir == "" {
		return fmt.Errorf("input_dir must not be empty")
	}
	if c.Output == "" {
		return fmt.Errorf("output must not be empty")
	}
	if c.Workers <= 0 {
		return fmt.Errorf("workers must be greater than 0, got %d", c.Workers)
	}
	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("color must be one of auto/always/never, got %q", c.Color)
	}
	return nil
}

// ColorEnabled 根据配置与终端状态判定是否着色。
func (c Config) ColorEnabled(isTerminal bool) bool {
	switch c.Color {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	default:
		return isTerminal
	}
}
