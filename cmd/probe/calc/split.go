package calc

import (
	"fmt"
	"strconv"

	"neoprobe/internal/core/options"
	"neoprobe/internal/netcalc"

	"github.com/spf13/cobra"
)

// NewSplitCmd 创建网段等分命令
func NewSplitCmd() *cobra.Command {
	opts := &options.SplitOptions{}

	cmd := &cobra.Command{
		Use:   "split <cidr> <n>",
		Short: "网段等分",
		Long: `把网段等分为 n 个子网并列出每个子网的边界。
n 必须是大于 1 的 2 的幂，产生的子网不细于 /30.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.CIDR = args[0]
			n, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid subnet count %q: must be a number", args[1])
			}
			opts.Count = n
			if err := opts.Validate(); err != nil {
				return err
			}

			plan, err := netcalc.Split(opts.CIDR, opts.Count)
			if err != nil {
				return err
			}

			return render(cmd, *plan)
		},
	}

	return cmd
}
