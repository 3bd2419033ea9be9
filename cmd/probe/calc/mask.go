package calc

import (
	"fmt"
	"strconv"
	"strings"

	"neoprobe/internal/core/options"
	"neoprobe/internal/netcalc"

	"github.com/spf13/cobra"
)

// NewMaskCmd 创建掩码分析命令
func NewMaskCmd() *cobra.Command {
	opts := &options.MaskOptions{}

	cmd := &cobra.Command{
		Use:   "mask <mask>",
		Short: "子网掩码分析",
		Long: `解析点分十进制或 /前缀 形式的掩码，给出二进制形式和可用主机数。
非连续掩码会被拒绝.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Mask = args[0]
			if err := opts.Validate(); err != nil {
				return err
			}

			// /前缀 形式先换算成点分十进制
			mask := opts.Mask
			if strings.HasPrefix(mask, "/") {
				prefix, err := strconv.Atoi(mask[1:])
				if err != nil || prefix < 0 || prefix > 32 {
					return fmt.Errorf("invalid prefix %q: must be /0../32", opts.Mask)
				}
				mask = netcalc.FormatIPv4(netcalc.MaskFromPrefix(prefix))
			}

			info, err := netcalc.AnalyzeMask(mask)
			if err != nil {
				return err
			}

			return render(cmd, *info)
		},
	}

	return cmd
}
