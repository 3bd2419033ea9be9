package calc

import (
	"fmt"

	"neoprobe/internal/core/options"
	"neoprobe/internal/netcalc"

	"github.com/spf13/cobra"
)

// NewLoopbackCmd 创建回环地址检查命令
func NewLoopbackCmd() *cobra.Command {
	opts := &options.LoopbackOptions{}

	cmd := &cobra.Command{
		Use:   "loopback <ip>",
		Short: "回环地址检查",
		Long:  `判断地址是否属于回环网段 127.0.0.0/8。`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.IP = args[0]
			if err := opts.Validate(); err != nil {
				return err
			}

			ip, err := netcalc.ParseIPv4(opts.IP)
			if err != nil {
				return err
			}

			console := newConsoleReporter()
			if netcalc.IsLoopback(ip) {
				console.Success(fmt.Sprintf("%s is a loopback address", opts.IP))
			} else {
				console.Failure(fmt.Sprintf("%s is not a loopback address", opts.IP))
			}
			return nil
		},
	}

	return cmd
}
