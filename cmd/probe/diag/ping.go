package diag

import (
	"errors"
	"fmt"
	"time"

	"neoprobe/internal/config"
	"neoprobe/internal/core/options"
	"neoprobe/internal/core/probe"

	"github.com/spf13/cobra"
)

// NewPingCmd 创建 ICMP Echo 探测命令
func NewPingCmd() *cobra.Command {
	opts := options.NewPingOptions()

	cmd := &cobra.Command{
		Use:   "ping <ip>",
		Short: "ICMP Echo 探测 (需要 root 或 CAP_NET_RAW)",
		Long: `向目标串行发送若干 Echo Request 并统计丢包率和往返延迟。
原始套接字打不开时报告特权不足，与主机不可达严格区分.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Target = args[0]

			if cfg := config.GetConfig(); cfg.Probe != nil {
				if !cmd.Flags().Changed("count") {
					opts.Count = cfg.Probe.PingCount
				}
				if !cmd.Flags().Changed("timeout") {
					opts.TimeoutSec = cfg.Probe.PingTimeoutSec
				}
			}

			if err := globalOutputOptions.Validate(); err != nil {
				return err
			}
			if err := opts.Validate(); err != nil {
				return err
			}

			pinger := probe.NewPinger(opts.Count, time.Duration(opts.TimeoutSec)*time.Second)
			report, err := pinger.Ping(cmd.Context(), opts.Target)
			if err != nil {
				if errors.Is(err, probe.ErrRawChannelUnavailable) {
					return fmt.Errorf("%w\nhint: re-run as root or grant CAP_NET_RAW to the binary", err)
				}
				return err
			}

			return reportResult(cmd, report)
		},
	}

	flags := cmd.Flags()
	flags.IntVarP(&opts.Count, "count", "c", opts.Count, "发送的 Echo Request 数量")
	flags.IntVar(&opts.TimeoutSec, "timeout", opts.TimeoutSec, "单个回包的等待窗口（秒）")

	return cmd
}
