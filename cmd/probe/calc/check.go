package calc

import (
	"fmt"

	"neoprobe/internal/core/options"
	"neoprobe/internal/netcalc"

	"github.com/spf13/cobra"
)

// NewCheckCmd 创建网段归属检查命令
func NewCheckCmd() *cobra.Command {
	opts := &options.CheckOptions{}

	cmd := &cobra.Command{
		Use:   "check <ip> <cidr>",
		Short: "网段归属检查",
		Long:  `判断地址是否落在给定网段内。`,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.IP, opts.CIDR = args[0], args[1]
			if err := opts.Validate(); err != nil {
				return err
			}

			ip, err := netcalc.ParseIPv4(opts.IP)
			if err != nil {
				return err
			}
			network, prefix, err := netcalc.ParseCIDR(opts.CIDR)
			if err != nil {
				return err
			}
			mask := netcalc.MaskFromPrefix(prefix)

			console := newConsoleReporter()
			if netcalc.Contains(network, mask, ip) {
				console.Success(fmt.Sprintf("%s is inside %s", opts.IP, opts.CIDR))
			} else {
				console.Failure(fmt.Sprintf("%s is NOT inside %s", opts.IP, opts.CIDR))
			}
			return nil
		},
	}

	return cmd
}
