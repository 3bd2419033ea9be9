/*
 * @author: Sun977
 * @date: 2026.02.12
 * @description: Cobra Root Command 定义
 */

package main

import (
	"fmt"
	"io"
	"os"

	"neoprobe/cmd/probe/calc"
	"neoprobe/cmd/probe/diag"
	"neoprobe/internal/config"
	"neoprobe/internal/pkg/logger"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "probe",
	Short: "NeoProbe 网络诊断与子网计算工具",
	Long: `NeoProbe 是单机网络诊断引擎加子网计算器。
diag 子命令对单个目标做 TCP/ICMP 可达性探测、服务发现和综合诊断,
calc 子命令做纯算术的子网/CIDR/IPv6 计算,不产生任何网络流量.

示例:
  1.TCP 可达性探测
	probe diag tcp 192.168.1.1 443
  2.ICMP 探测(需要 root 或 CAP_NET_RAW)
	probe diag ping 192.168.1.1 --count 3
  3.综合诊断并持续观察
	probe diag report 192.168.1.1 --watch --interval 30
  4.子网计算
	probe calc cidr 10.0.0.0/20
	probe calc split 192.168.0.0/24 4
`,
	// PersistentPreRun: 全局初始化逻辑，确保所有子命令都能使用日志
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		initCLILogger(cmd)
	},
}

func Execute() {
	// 全局 Panic Recovery，崩溃时给用户一句人话而不是堆栈
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "\n[FATAL] probe crashed unexpectedly: %v\n", r)
			os.Exit(1)
		}
	}()

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	// 全局 Flag
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "配置文件路径 (默认: ./configs/config.yaml)")
	rootCmd.PersistentFlags().String("log-level", "", "日志级别 (debug, info, warn, error)")

	// 绑定 Viper
	viper.BindPFlag("log.level", rootCmd.PersistentFlags().Lookup("log-level"))

	// 注册子命令
	rootCmd.AddCommand(diag.NewDiagCmd())
	rootCmd.AddCommand(calc.NewCalcCmd())
}

// initConfig 读取配置文件和环境变量
func initConfig() {
	// .env 文件里的变量先入环境，供后面的 AutomaticEnv 拾取
	if err := config.InitGlobalEnvLoader(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to load .env: %v\n", err)
	}

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath("configs")
		viper.AddConfigPath(".")
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}

	viper.AutomaticEnv() // 读取环境变量

	if err := viper.ReadInConfig(); err == nil {
		// fmt.Println("Using config file:", viper.ConfigFileUsed())
	}

	// 全局配置单例走同一个文件，diag/calc 子命令从这里取默认探测参数
	var err error
	if cfgFile != "" {
		_, err = config.LoadConfigFromFile(cfgFile)
	} else {
		_, err = config.LoadConfig("")
	}
	if err != nil {
		// 没有配置文件不是错误，内置默认值足够跑完所有命令
		logger.Debugf("config not loaded, using defaults: %v", err)
	}
}

// initCLILogger 初始化 CLI 模式下的日志
// 这确保了 CLI 命令也能输出格式化的日志，并且受 --log-level 控制
func initCLILogger(cmd *cobra.Command) {
	// 检查 log-level 标志是否被显式设置
	flag := cmd.Flags().Lookup("log-level")
	level := "fatal" // 默认只输出 Fatal，探测结果表格不和日志混在一起
	if flag != nil && flag.Changed {
		level = flag.Value.String()
	}

	// 配置 pterm
	switch level {
	case "debug":
		pterm.EnableDebugMessages()
	case "info":
		pterm.DisableDebugMessages()
	case "warn", "error", "fatal":
		pterm.DisableDebugMessages()
		// pterm 没有单独的 Info 开关，把 Info 打印器指向 io.Discard
		pterm.Info = *pterm.Info.WithWriter(io.Discard)
	}

	logConfig := &config.LogConfig{
		Level:  level,
		Format: "text",
		Output: "stdout",
		Caller: false,
	}

	// 初始化日志
	if _, err := logger.InitLogger(logConfig); err != nil {
		fmt.Printf("Failed to init logger: %v\n", err)
	}
}
