package calc

import (
	"neoprobe/internal/core/options"
	"neoprobe/internal/netcalc"

	"github.com/spf13/cobra"
)

// NewRangeCmd 创建网段边界计算命令
func NewRangeCmd() *cobra.Command {
	opts := &options.RangeOptions{}

	cmd := &cobra.Command{
		Use:   "range <ip> <mask>",
		Short: "网段边界计算",
		Long:  `由地址和掩码求网络地址、广播地址和可用地址区间。`,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.IP, opts.Mask = args[0], args[1]
			if err := opts.Validate(); err != nil {
				return err
			}

			ip, err := netcalc.ParseIPv4(opts.IP)
			if err != nil {
				return err
			}
			mask, err := netcalc.ParseMask(opts.Mask)
			if err != nil {
				return err
			}

			return render(cmd, netcalc.RangeInfo(ip, mask))
		},
	}

	return cmd
}
