package diag

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"neoprobe/internal/config"
	"neoprobe/internal/core/options"
	"neoprobe/internal/core/reporter"

	"github.com/spf13/cobra"
)

var globalOutputOptions = options.NewOutputOptions()

// NewDiagCmd 创建 diag 父命令
func NewDiagCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "diag",
		Short: "执行网络诊断",
		Long: `对单个目标执行实时网络诊断: TCP 可达性、ICMP 探测、服务发现和综合报告。
请使用具体的子命令。`,
	}

	// 持久化 Flags (所有诊断子命令都可用)
	pFlags := cmd.PersistentFlags()
	pFlags.StringVar(&globalOutputOptions.Theme, "theme", globalOutputOptions.Theme,
		"输出主题 (default/ocean/mono/plain)")
	pFlags.StringVarP(&globalOutputOptions.Output, "output", "o", "",
		"结果保存路径 [以.json或.csv结尾]")

	// 注册子命令
	cmd.AddCommand(NewTcpCmd())
	cmd.AddCommand(NewPingCmd())
	cmd.AddCommand(NewDiscoverCmd())
	cmd.AddCommand(NewReportCmd())
	cmd.AddCommand(NewEnvCmd())

	return cmd
}

// resolveTheme 解析本次运行的渲染主题
// 优先级: --theme 显式指定 > NO_COLOR 约定 > 配置文件，解析后的值显式传给渲染器
func resolveTheme(cmd *cobra.Command) reporter.Theme {
	name := globalOutputOptions.Theme

	flag := cmd.Flags().Lookup("theme")
	if flag == nil || !flag.Changed {
		if cfg := config.GetConfig(); cfg.Output != nil && cfg.Output.Theme != "" {
			name = cfg.Output.Theme
		}
		if os.Getenv("NO_COLOR") != "" {
			name = reporter.ThemePlain
		}
	}

	return reporter.ThemeByName(name)
}

// newConsoleReporter 按解析出的主题构建控制台渲染器
func newConsoleReporter(cmd *cobra.Command) *reporter.ConsoleReporter {
	return reporter.NewConsoleReporter(resolveTheme(cmd))
}

// reportResult 渲染结果到控制台，并按 -o 后缀可选地导出 JSON/CSV
func reportResult(cmd *cobra.Command, result any) error {
	reporters := []reporter.Reporter{newConsoleReporter(cmd)}

	path := globalOutputOptions.Output
	if path != "" {
		switch strings.ToLower(filepath.Ext(path)) {
		case ".csv":
			reporters = append(reporters, reporter.NewCsvFileReporter(path))
		default:
			indent := true
			if cfg := config.GetConfig(); cfg.Output != nil {
				indent = cfg.Output.JsonIndent
			}
			reporters = append(reporters, reporter.NewJsonFileReporter(path, indent))
		}
	}

	if err := reporter.NewMultiReporter(reporters...).Report(cmd.Context(), result); err != nil {
		return err
	}

	if path != "" {
		fmt.Printf("[+] Results saved to %s\n", path)
	}
	return nil
}
