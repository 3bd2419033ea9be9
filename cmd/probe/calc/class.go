package calc

import (
	"neoprobe/internal/core/options"
	"neoprobe/internal/netcalc"

	"github.com/spf13/cobra"
)

// NewClassCmd 创建地址分类命令
func NewClassCmd() *cobra.Command {
	opts := &options.ClassOptions{}

	cmd := &cobra.Command{
		Use:   "class <ip>",
		Short: "地址分类",
		Long:  `给出地址的传统类别 (A~E/Loopback) 和种类 (私有/公网/组播等)。`,
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

			return render(cmd, netcalc.Classify(ip))
		},
	}

	return cmd
}
