package calc

import (
	"neoprobe/internal/core/options"
	"neoprobe/internal/netcalc"

	"github.com/spf13/cobra"
)

// NewHostsCmd 创建主机枚举命令
func NewHostsCmd() *cobra.Command {
	opts := options.NewHostsOptions()

	cmd := &cobra.Command{
		Use:   "hosts <cidr>",
		Short: "网段主机枚举",
		Long: `列出网段内的可用地址。不超过 64 个地址的网段全量列出，
更大的网段只列首尾窗口并统计省略数量.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.CIDR = args[0]
			if err := opts.Validate(); err != nil {
				return err
			}

			enum, err := netcalc.EnumerateHosts(opts.CIDR, opts.Window)
			if err != nil {
				return err
			}

			return render(cmd, *enum)
		},
	}

	cmd.Flags().IntVar(&opts.Window, "window", opts.Window, "大网段首尾各列出的地址数")

	return cmd
}
