package calc

import (
	"os"

	"neoprobe/internal/config"
	"neoprobe/internal/core/reporter"

	"github.com/spf13/cobra"
)

// NewCalcCmd 创建 calc 父命令
func NewCalcCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "calc",
		Short: "子网与地址计算",
		Long: `纯算术的子网/CIDR/IPv6 计算，不产生任何网络流量。
请使用具体的子命令。`,
	}

	// 注册子命令
	cmd.AddCommand(NewMaskCmd())
	cmd.AddCommand(NewRangeCmd())
	cmd.AddCommand(NewCidrCmd())
	cmd.AddCommand(NewClassCmd())
	cmd.AddCommand(NewCheckCmd())
	cmd.AddCommand(NewConvertCmd())
	cmd.AddCommand(NewHostsCmd())
	cmd.AddCommand(NewSplitCmd())
	cmd.AddCommand(NewIPv6Cmd())
	cmd.AddCommand(NewLoopbackCmd())

	return cmd
}

// newConsoleReporter 计算结果的渲染器
// 主题取自配置文件，NO_COLOR 约定强制纯文本
func newConsoleReporter() *reporter.ConsoleReporter {
	name := reporter.ThemeDefault
	if cfg := config.GetConfig(); cfg.Output != nil && cfg.Output.Theme != "" {
		name = cfg.Output.Theme
	}
	if os.Getenv("NO_COLOR") != "" {
		name = reporter.ThemePlain
	}
	return reporter.NewConsoleReporter(reporter.ThemeByName(name))
}

// render 渲染单个计算结果
func render(cmd *cobra.Command, result any) error {
	return newConsoleReporter().Report(cmd.Context(), result)
}
