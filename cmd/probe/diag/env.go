package diag

import (
	"neoprobe/internal/pkg/monitor"

	"github.com/spf13/cobra"
)

// NewEnvCmd 创建本机网络环境快照命令
func NewEnvCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "env",
		Short: "本机网络环境快照",
		Long:  `采集主机概要和网卡清单，作为一次诊断会话的环境基线。`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := globalOutputOptions.Validate(); err != nil {
				return err
			}

			report, err := monitor.CollectNetEnv()
			if err != nil {
				return err
			}

			return reportResult(cmd, report)
		},
	}

	return cmd
}
