package calc

import (
	"neoprobe/internal/core/options"
	"neoprobe/internal/netcalc"

	"github.com/spf13/cobra"
)

// NewCidrCmd 创建 CIDR 综合分析命令
func NewCidrCmd() *cobra.Command {
	opts := &options.CidrOptions{}

	cmd := &cobra.Command{
		Use:   "cidr <cidr>",
		Short: "CIDR 网段分析",
		Long:  `解析 a.b.c.d/n 记法并汇总掩码、边界、类别和地址种类。`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.CIDR = args[0]
			if err := opts.Validate(); err != nil {
				return err
			}

			info, err := netcalc.Analyze(opts.CIDR)
			if err != nil {
				return err
			}

			return render(cmd, *info)
		},
	}

	return cmd
}
