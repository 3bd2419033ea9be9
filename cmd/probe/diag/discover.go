package diag

import (
	"time"

	"neoprobe/internal/config"
	"neoprobe/internal/core/options"
	"neoprobe/internal/core/probe"

	"github.com/spf13/cobra"
)

// NewDiscoverCmd 创建服务发现扫描命令
func NewDiscoverCmd() *cobra.Command {
	opts := options.NewDiscoverOptions()

	cmd := &cobra.Command{
		Use:   "discover <ip>",
		Short: "常见服务端口发现",
		Long: `对固定目录里的 13 个常见服务端口并发探测开放状态。
所有连接共享一个截止时间,总耗时约等于一个超时窗口.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Target = args[0]

			if !cmd.Flags().Changed("timeout") {
				if cfg := config.GetConfig(); cfg.Probe != nil {
					opts.TimeoutSec = cfg.Probe.DiscoverTimeoutSec
				}
			}

			if err := globalOutputOptions.Validate(); err != nil {
				return err
			}
			if err := opts.Validate(); err != nil {
				return err
			}

			discoverer := probe.NewServiceDiscoverer(time.Duration(opts.TimeoutSec) * time.Second)
			report, err := discoverer.Discover(cmd.Context(), opts.Target)
			if err != nil {
				return err
			}

			return reportResult(cmd, report)
		},
	}

	cmd.Flags().IntVar(&opts.TimeoutSec, "timeout", opts.TimeoutSec, "整个扫描的共享等待窗口（秒）")

	return cmd
}
