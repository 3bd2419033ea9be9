package calc

import (
	"neoprobe/internal/core/options"
	"neoprobe/internal/netcalc"

	"github.com/spf13/cobra"
)

// NewConvertCmd 创建地址多格式转换命令
func NewConvertCmd() *cobra.Command {
	opts := &options.ConvertOptions{}

	cmd := &cobra.Command{
		Use:   "convert <ip>",
		Short: "地址多格式转换",
		Long:  `把点分十进制地址换算成无符号整数、十六进制、二进制和按位基数 256 分解。`,
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

			return render(cmd, netcalc.Formats(ip))
		},
	}

	return cmd
}
