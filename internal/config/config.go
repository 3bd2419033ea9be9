/**
 * 配置管理
 * @author: sun977
 * @date: 2026.02.09
 * @description: NeoProbe配置管理，负责加载和管理所有配置
 * @func: 配置结构定义、默认值、校验、全局配置单例
 */
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config NeoProbe配置
type Config struct {
	// 应用配置
	App *AppConfig `yaml:"app" mapstructure:"app"`

	// 日志配置
	Log *LogConfig `yaml:"log" mapstructure:"log"`

	// 探测配置
	Probe *ProbeConfig `yaml:"probe" mapstructure:"probe"`

	// 输出配置
	Output *OutputConfig `yaml:"output" mapstructure:"output"`
}

// AppConfig 应用配置
type AppConfig struct {
	Name        string `yaml:"name" mapstructure:"name"`               // 应用名称
	Version     string `yaml:"version" mapstructure:"version"`         // 应用版本
	Environment string `yaml:"environment" mapstructure:"environment"` // 运行环境
	Debug       bool   `yaml:"debug" mapstructure:"debug"`             // 调试模式
	Timezone    string `yaml:"timezone" mapstructure:"timezone"`       // 时区
}

// LogConfig 日志配置
type LogConfig struct {
	Level      string `yaml:"level" mapstructure:"level"`             // 日志级别 (debug/info/warn/error)
	Format     string `yaml:"format" mapstructure:"format"`           // 日志格式 (json/text)
	Output     string `yaml:"output" mapstructure:"output"`           // 日志输出 (stdout/stderr/file)
	FilePath   string `yaml:"file_path" mapstructure:"file_path"`     // 日志文件路径
	MaxSize    int    `yaml:"max_size" mapstructure:"max_size"`       // 最大文件大小（MB）
	MaxBackups int    `yaml:"max_backups" mapstructure:"max_backups"` // 最大备份数
	MaxAge     int    `yaml:"max_age" mapstructure:"max_age"`         // 最大保留天数
	Compress   bool   `yaml:"compress" mapstructure:"compress"`       // 是否压缩
	Caller     bool   `yaml:"caller" mapstructure:"caller"`           // 是否显示调用者信息
}

// ProbeConfig 探测配置
// 探测参数的默认值与诊断报告的固定流程一致（3个ICMP包/5秒超时 -> 3秒端口发现）
// 这里开放为配置项，命令行参数优先于配置文件
type ProbeConfig struct {
	TcpTimeoutSec      int `yaml:"tcp_timeout_sec" mapstructure:"tcp_timeout_sec"`           // TCP连通性探测超时（秒）
	PingCount          int `yaml:"ping_count" mapstructure:"ping_count"`                     // ICMP探测包数量
	PingTimeoutSec     int `yaml:"ping_timeout_sec" mapstructure:"ping_timeout_sec"`         // ICMP单包等待超时（秒）
	DiscoverTimeoutSec int `yaml:"discover_timeout_sec" mapstructure:"discover_timeout_sec"` // 服务发现共享超时（秒）
	ReportIntervalSec  int `yaml:"report_interval_sec" mapstructure:"report_interval_sec"`   // watch模式报告间隔（秒）
}

// OutputConfig 输出配置
// Theme 是显式配置值，由加载器解析后传入渲染器，不走全局状态
type OutputConfig struct {
	Theme      string `yaml:"theme" mapstructure:"theme"`             // 输出主题 (default/ocean/mono/plain)
	JsonIndent bool   `yaml:"json_indent" mapstructure:"json_indent"` // JSON导出是否缩进
}

// LoadConfig 加载配置
func LoadConfig(configPath ...string) (*Config, error) {
	// 使用配置加载器
	var path string
	if len(configPath) > 0 && configPath[0] != "" {
		path = configPath[0]
	}

	loader := NewConfigLoader(path, "NEOPROBE")
	config, err := loader.LoadConfig()
	if err != nil {
		return nil, err
	}

	// 设置全局配置
	globalConfig = config
	return config, nil
}

// setDefaults 设置默认值
func setStructDefaults(config *Config) {
	// 应用默认配置
	if config.App == nil {
		config.App = &AppConfig{}
	}

	if config.App.Name == "" {
		config.App.Name = "neoprobe"
	}

	if config.App.Environment == "" {
		config.App.Environment = "production"
	}

	// 日志默认配置
	if config.Log == nil {
		config.Log = &LogConfig{}
	}

	if config.Log.Level == "" {
		config.Log.Level = "info"
	}

	if config.Log.Format == "" {
		config.Log.Format = "text"
	}

	if config.Log.Output == "" {
		config.Log.Output = "stdout"
	}

	if config.Log.FilePath == "" {
		config.Log.FilePath = "logs/probe.log"
	}

	if config.Log.MaxSize == 0 {
		config.Log.MaxSize = 100
	}

	if config.Log.MaxBackups == 0 {
		config.Log.MaxBackups = 10
	}

	if config.Log.MaxAge == 0 {
		config.Log.MaxAge = 30
	}

	// 探测默认配置
	if config.Probe == nil {
		config.Probe = &ProbeConfig{}
	}

	if config.Probe.TcpTimeoutSec == 0 {
		config.Probe.TcpTimeoutSec = 5
	}

	if config.Probe.PingCount == 0 {
		config.Probe.PingCount = 3
	}

	if config.Probe.PingTimeoutSec == 0 {
		config.Probe.PingTimeoutSec = 5
	}

	if config.Probe.DiscoverTimeoutSec == 0 {
		config.Probe.DiscoverTimeoutSec = 3
	}

	if config.Probe.ReportIntervalSec == 0 {
		config.Probe.ReportIntervalSec = 30
	}

	// 输出默认配置
	if config.Output == nil {
		config.Output = &OutputConfig{}
	}

	if config.Output.Theme == "" {
		config.Output.Theme = "default"
	}
}

// validateStructConfig 验证配置
func validateStructConfig(config *Config) error {
	if config.Probe.PingCount <= 0 {
		return fmt.Errorf("invalid probe ping count: %d", config.Probe.PingCount)
	}

	if config.Probe.TcpTimeoutSec <= 0 {
		return fmt.Errorf("invalid probe tcp timeout: %d", config.Probe.TcpTimeoutSec)
	}

	if config.Probe.PingTimeoutSec <= 0 {
		return fmt.Errorf("invalid probe ping timeout: %d", config.Probe.PingTimeoutSec)
	}

	if config.Probe.DiscoverTimeoutSec <= 0 {
		return fmt.Errorf("invalid probe discover timeout: %d", config.Probe.DiscoverTimeoutSec)
	}

	if config.Probe.ReportIntervalSec <= 0 {
		return fmt.Errorf("invalid report interval: %d", config.Probe.ReportIntervalSec)
	}

	switch config.Output.Theme {
	case "default", "ocean", "mono", "plain":
	default:
		return fmt.Errorf("unsupported output theme: %s", config.Output.Theme)
	}

	// 日志输出到文件时确保目录存在
	if config.Log.Output == "file" {
		if err := ensureDir(filepath.Dir(config.Log.FilePath)); err != nil {
			return fmt.Errorf("failed to ensure log directory: %w", err)
		}
	}

	return nil
}

// loadConfigFile 从配置文件加载
func loadConfigFile(cfg *Config, configPath string) error {
	// 检查文件是否存在
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return fmt.Errorf("config file not found: %s", configPath)
	}

	// 读取配置文件
	data, err := os.ReadFile(configPath)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	// 根据文件扩展名选择解析方式
	ext := filepath.Ext(configPath)
	switch ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return fmt.Errorf("failed to parse YAML config: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(data, cfg); err != nil {
			return fmt.Errorf("failed to parse JSON config: %w", err)
		}
	default:
		return fmt.Errorf("unsupported config file format: %s", ext)
	}

	return nil
}

// ensureDir 确保目录存在
func ensureDir(dir string) error {
	if dir == "" {
		return nil
	}

	absDir, err := filepath.Abs(dir)
	if err != nil {
		return err
	}

	return os.MkdirAll(absDir, 0755)
}

// GetConfig 获取配置（单例模式）
var globalConfig *Config

func GetConfig() *Config {
	if globalConfig == nil {
		var err error
		globalConfig, err = LoadConfig("")
		if err != nil {
			// 配置加载失败时回退到内置默认值，命令行工具不因配置问题中断
			fmt.Fprintf(os.Stderr, "Warning: failed to load config, using defaults: %v\n", err)
			globalConfig = Default()
		}
	}
	return globalConfig
}

// Default 返回全部使用内置默认值的配置
func Default() *Config {
	config := &Config{}
	setStructDefaults(config)
	return config
}

// ReloadConfig 重新加载配置
func ReloadConfig() error {
	newConfig, err := LoadConfig("")
	if err != nil {
		return err
	}

	globalConfig = newConfig
	return nil
}
