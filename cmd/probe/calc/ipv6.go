package calc

import (
	"fmt"

	"neoprobe/internal/core/options"
	"neoprobe/internal/netcalc"

	"github.com/spf13/cobra"
)

// NewIPv6Cmd 创建 IPv6 地址分析命令
func NewIPv6Cmd() *cobra.Command {
	opts := &options.IPv6Options{}

	cmd := &cobra.Command{
		Use:   "ipv6 <address>",
		Short: "IPv6 地址分析",
		Long: `判定 IPv6 地址种类并给出全展开与规范压缩两种书写形式。
--convert 只输出两种书写形式,方便脚本取用.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Address = args[0]
			if err := opts.Validate(); err != nil {
				return err
			}

			info := netcalc.ClassifyIPv6(opts.Address)
			if !info.Valid {
				return fmt.Errorf("invalid IPv6 address %q", opts.Address)
			}

			if opts.Convert {
				fmt.Printf("expanded:   %s\n", info.Expanded)
				fmt.Printf("compressed: %s\n", info.Compressed)
				return nil
			}

			return render(cmd, info)
		},
	}

	cmd.Flags().BoolVar(&opts.Convert, "convert", false, "只输出展开和压缩两种书写形式")

	return cmd
}
