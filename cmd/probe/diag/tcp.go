package diag

import (
	"fmt"
	"strconv"
	"time"

	"neoprobe/internal/config"
	"neoprobe/internal/core/options"
	"neoprobe/internal/core/probe"

	"github.com/spf13/cobra"
)

// NewTcpCmd 创建 TCP 可达性探测命令
func NewTcpCmd() *cobra.Command {
	opts := options.NewTcpProbeOptions()

	cmd := &cobra.Command{
		Use:   "tcp <ip> <port>",
		Short: "TCP 可达性探测",
		Long: `对目标端口执行一次非阻塞连接探测，区分 open/closed/timeout 并报告毫秒延迟。
不需要特权，不发送任何应用层数据.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Target = args[0]
			port, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid port %q: must be a number", args[1])
			}
			opts.Port = port

			// 未显式指定超时时采用配置文件里的探测参数
			if !cmd.Flags().Changed("timeout") {
				if cfg := config.GetConfig(); cfg.Probe != nil {
					opts.TimeoutSec = cfg.Probe.TcpTimeoutSec
				}
			}

			if err := globalOutputOptions.Validate(); err != nil {
				return err
			}
			if err := opts.Validate(); err != nil {
				return err
			}

			prober := probe.NewTcpProber(time.Duration(opts.TimeoutSec) * time.Second)
			result, err := prober.Probe(cmd.Context(), opts.Target, opts.Port)
			if err != nil {
				return err
			}

			return reportResult(cmd, result)
		},
	}

	cmd.Flags().IntVar(&opts.TimeoutSec, "timeout", opts.TimeoutSec, "连接等待窗口（秒）")

	return cmd
}
