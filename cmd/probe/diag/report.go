package diag

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"neoprobe/internal/config"
	"neoprobe/internal/core/model"
	"neoprobe/internal/core/options"
	"neoprobe/internal/core/pipeline"
	"neoprobe/internal/core/probe"
	"neoprobe/internal/pkg/logger"
	"neoprobe/internal/pkg/utils"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewReportCmd 创建综合诊断报告命令
func NewReportCmd() *cobra.Command {
	opts := options.NewReportOptions()

	cmd := &cobra.Command{
		Use:   "report <ip>",
		Short: "综合诊断报告 (ICMP + 服务发现)",
		Long: `按固定顺序执行 ICMP 探测和服务发现并汇总可达性结论。
ICMP 阶段失败(包括特权不足)不会中止服务发现阶段。
--watch 模式按间隔持续诊断,配置文件的探测参数改动在下一轮生效.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Target = args[0]

			cfg := config.GetConfig()
			if !cmd.Flags().Changed("interval") && cfg.Probe != nil {
				opts.IntervalSec = cfg.Probe.ReportIntervalSec
			}

			if err := globalOutputOptions.Validate(); err != nil {
				return err
			}
			if err := opts.Validate(); err != nil {
				return err
			}

			holder := &swappableRunner{runner: newConfiguredRunner(cfg)}

			if !opts.Watch {
				report, err := holder.Run(cmd.Context(), opts.Target)
				if err != nil {
					return err
				}
				return reportResult(cmd, report)
			}

			return runWatch(cmd, opts, holder)
		},
	}

	flags := cmd.Flags()
	flags.BoolVarP(&opts.Watch, "watch", "w", false, "持续观察模式，按间隔重复诊断直到 Ctrl-C")
	flags.IntVar(&opts.IntervalSec, "interval", opts.IntervalSec, "观察模式的诊断间隔（秒）")

	return cmd
}

// runWatch 持续观察模式
// 配置文件被修改时热加载探测参数，从下一轮诊断开始生效
func runWatch(cmd *cobra.Command, opts *options.ReportOptions, holder *swappableRunner) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfgPath := viper.ConfigFileUsed(); cfgPath != "" {
		watcher, err := config.WatchConfig(cfgPath, func(oldCfg, newCfg *config.Config) error {
			if err := config.ValidateConfigChange(oldCfg, newCfg); err != nil {
				return err
			}
			holder.rebuild(newCfg)
			logger.Infof("watch: probe parameters reloaded from %s", cfgPath)
			return nil
		})
		if err != nil {
			logger.Warnf("watch: config hot reload disabled: %v", err)
		} else {
			defer watcher.Stop()
		}
	}

	console := newConsoleReporter(cmd)
	runner := pipeline.NewWatchRunner(holder, time.Duration(opts.IntervalSec)*time.Second)

	err := runner.Watch(ctx, opts.Target, func(report *model.DiagnosticsReport, err error) {
		pterm.Println()
		console.Section("Diagnostics @ " + utils.GetCurrentDateTime())
		if err != nil {
			console.Failure("diagnostics cycle failed: " + err.Error())
			return
		}
		if rerr := reportResult(cmd, report); rerr != nil {
			console.Failure("failed to report results: " + rerr.Error())
		}
	})

	// Ctrl-C 是观察模式的正常退出方式
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// newConfiguredRunner 按配置文件的探测参数组装诊断编排器
func newConfiguredRunner(cfg *config.Config) *pipeline.DiagnosticsRunner {
	if cfg == nil || cfg.Probe == nil {
		return pipeline.NewDiagnosticsRunner()
	}
	return pipeline.NewDiagnosticsRunnerWith(
		probe.NewPinger(cfg.Probe.PingCount, time.Duration(cfg.Probe.PingTimeoutSec)*time.Second),
		probe.NewServiceDiscoverer(time.Duration(cfg.Probe.DiscoverTimeoutSec)*time.Second),
	)
}

// swappableRunner 可热替换的诊断编排器
// 观察模式下配置热加载和诊断循环并发访问，用读写锁护住替换点
type swappableRunner struct {
	mu     sync.RWMutex
	runner *pipeline.DiagnosticsRunner
}

func (s *swappableRunner) Run(ctx context.Context, ip string) (*model.DiagnosticsReport, error) {
	s.mu.RLock()
	runner := s.runner
	s.mu.RUnlock()
	return runner.Run(ctx, ip)
}

func (s *swappableRunner) rebuild(cfg *config.Config) {
	runner := newConfiguredRunner(cfg)
	s.mu.Lock()
	s.runner = runner
	s.mu.Unlock()
}
