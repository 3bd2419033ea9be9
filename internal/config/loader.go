package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// ConfigLoader 配置加载器
type ConfigLoader struct {
	configPath string
	envPrefix  string
	viper      *viper.Viper
}

// NewConfigLoader 创建配置加载器
func NewConfigLoader(configPath, envPrefix string) *ConfigLoader {
	if envPrefix == "" {
		envPrefix = "NEOPROBE"
	}

	return &ConfigLoader{
		configPath: configPath,
		envPrefix:  envPrefix,
		viper:      viper.New(),
	}
}

// LoadConfig 加载配置
func (cl *ConfigLoader) LoadConfig() (*Config, error) {
	// 设置配置文件类型
	cl.viper.SetConfigType("yaml")

	// 设置环境变量前缀
	cl.viper.SetEnvPrefix(cl.envPrefix)
	cl.viper.AutomaticEnv()
	cl.viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// 绑定环境变量
	cl.bindEnvVars()

	// 设置默认值
	cl.setDefaults()

	// 加载配置文件
	if err := cl.loadConfigFile(); err != nil {
		return nil, fmt.Errorf("failed to load config file: %w", err)
	}

	// 解析配置
	var config Config
	if err := cl.viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// NO_COLOR 约定：配置文件和环境变量都未显式指定主题时强制纯文本输出
	if os.Getenv("NO_COLOR") != "" && !cl.viper.InConfig("output.theme") &&
		os.Getenv(cl.envPrefix+"_OUTPUT_THEME") == "" {
		config.Output.Theme = "plain"
	}

	// 验证配置
	if err := validateStructConfig(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

// loadConfigFile 加载配置文件
func (cl *ConfigLoader) loadConfigFile() error {
	if cl.configPath == "" {
		// 尝试从环境变量获取配置文件路径
		if envPath := os.Getenv("NEOPROBE_CONFIG_PATH"); envPath != "" {
			cl.configPath = envPath
		} else {
			// 默认配置文件路径
			cl.configPath = "./configs"
		}
	}

	// 获取环境
	env := cl.getEnvironment()

	// 设置配置文件搜索路径
	cl.viper.AddConfigPath(cl.configPath)
	cl.viper.AddConfigPath("./configs")
	cl.viper.AddConfigPath(".")

	// 尝试加载环境特定的配置文件
	configName := fmt.Sprintf("config.%s", env)
	cl.viper.SetConfigName(configName)

	if err := cl.viper.ReadInConfig(); err != nil {
		// 如果环境特定配置文件不存在，尝试加载默认配置文件
		cl.viper.SetConfigName("config")
		if err := cl.viper.ReadInConfig(); err != nil {
			// 配置文件可选，找不到时使用默认值运行
			if _, notFound := err.(viper.ConfigFileNotFoundError); notFound {
				return nil
			}
			return fmt.Errorf("config file not found: %w", err)
		}
	}

	return nil
}

// getEnvironment 获取运行环境
func (cl *ConfigLoader) getEnvironment() string {
	env := os.Getenv("NEOPROBE_ENV")
	if env == "" {
		env = os.Getenv("GO_ENV")
	}
	if env == "" {
		env = "production"
	}
	return env
}

// bindEnvVars 绑定环境变量
func (cl *ConfigLoader) bindEnvVars() {
	// App配置
	cl.viper.BindEnv("app.name", "NEOPROBE_APP_NAME")
	cl.viper.BindEnv("app.version", "NEOPROBE_APP_VERSION")
	cl.viper.BindEnv("app.environment", "NEOPROBE_APP_ENVIRONMENT")
	cl.viper.BindEnv("app.debug", "NEOPROBE_APP_DEBUG")
	cl.viper.BindEnv("app.timezone", "NEOPROBE_APP_TIMEZONE")

	// 日志配置
	cl.viper.BindEnv("log.level", "NEOPROBE_LOG_LEVEL")
	cl.viper.BindEnv("log.format", "NEOPROBE_LOG_FORMAT")
	cl.viper.BindEnv("log.output", "NEOPROBE_LOG_OUTPUT")
	cl.viper.BindEnv("log.file_path", "NEOPROBE_LOG_FILE_PATH")

	// 探测配置
	cl.viper.BindEnv("probe.tcp_timeout_sec", "NEOPROBE_PROBE_TCP_TIMEOUT_SEC")
	cl.viper.BindEnv("probe.ping_count", "NEOPROBE_PROBE_PING_COUNT")
	cl.viper.BindEnv("probe.ping_timeout_sec", "NEOPROBE_PROBE_PING_TIMEOUT_SEC")
	cl.viper.BindEnv("probe.discover_timeout_sec", "NEOPROBE_PROBE_DISCOVER_TIMEOUT_SEC")
	cl.viper.BindEnv("probe.report_interval_sec", "NEOPROBE_PROBE_REPORT_INTERVAL_SEC")

	// 输出配置
	cl.viper.BindEnv("output.theme", "NEOPROBE_OUTPUT_THEME")
	cl.viper.BindEnv("output.json_indent", "NEOPROBE_OUTPUT_JSON_INDENT")
}

// setDefaults 设置默认值
func (cl *ConfigLoader) setDefaults() {
	// App默认值
	cl.viper.SetDefault("app.name", "NeoProbe")
	cl.viper.SetDefault("app.version", "1.0.0")
	cl.viper.SetDefault("app.environment", "production")
	cl.viper.SetDefault("app.debug", false)
	cl.viper.SetDefault("app.timezone", "UTC")

	// 日志默认值
	cl.viper.SetDefault("log.level", "info")
	cl.viper.SetDefault("log.format", "text")
	cl.viper.SetDefault("log.output", "stdout")
	cl.viper.SetDefault("log.file_path", "./logs/probe.log")
	cl.viper.SetDefault("log.max_size", 100)
	cl.viper.SetDefault("log.max_backups", 3)
	cl.viper.SetDefault("log.max_age", 28)
	cl.viper.SetDefault("log.compress", true)
	cl.viper.SetDefault("log.caller", false)

	// 探测默认值（与诊断报告固定流程一致）
	cl.viper.SetDefault("probe.tcp_timeout_sec", 5)
	cl.viper.SetDefault("probe.ping_count", 3)
	cl.viper.SetDefault("probe.ping_timeout_sec", 5)
	cl.viper.SetDefault("probe.discover_timeout_sec", 3)
	cl.viper.SetDefault("probe.report_interval_sec", 30)

	// 输出默认值
	cl.viper.SetDefault("output.theme", "default")
	cl.viper.SetDefault("output.json_indent", true)
}

// GetConfigPath 获取配置文件路径
func (cl *ConfigLoader) GetConfigPath() string {
	return cl.viper.ConfigFileUsed()
}

// LoadConfigFromFile 从指定文件直接加载配置
// --config 显式指定单个文件时使用该入口，不做目录搜索
func LoadConfigFromFile(configFile string) (*Config, error) {
	var config Config

	if err := loadConfigFile(&config, configFile); err != nil {
		return nil, err
	}

	// 补齐默认值
	setStructDefaults(&config)

	// NO_COLOR 约定：文件未显式配置主题时强制纯文本输出
	if os.Getenv("NO_COLOR") != "" && config.Output.Theme == "default" {
		config.Output.Theme = "plain"
	}

	// 验证配置
	if err := validateStructConfig(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	globalConfig = &config
	return &config, nil
}
