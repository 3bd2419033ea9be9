package pipeline

import (
	"context"
	"errors"
	"time"

	"neoprobe/internal/core/model"
	"neoprobe/internal/pkg/logger"
)

// DefaultWatchInterval 持续观察模式的默认轮询间隔
const DefaultWatchInterval = 30 * time.Second

// Runner 一轮综合诊断的执行入口
// 观察模式通过该接口驱动，调用方可以在每轮之间替换探测参数
type Runner interface {
	Run(ctx context.Context, ip string) (*model.DiagnosticsReport, error)
}

// WatchRunner 周期性地执行综合诊断并把每轮结果交给回调
type WatchRunner struct {
	runner   Runner
	interval time.Duration
}

func NewWatchRunner(runner Runner, interval time.Duration) *WatchRunner {
	if runner == nil {
		runner = NewDiagnosticsRunner()
	}
	if interval <= 0 {
		interval = DefaultWatchInterval
	}
	return &WatchRunner{runner: runner, interval: interval}
}

// Watch 先立即执行一轮，之后每个间隔执行一轮，直到 ctx 结束
// 单轮失败不中止循环，报告和错误都交给 onCycle 处理
func (w *WatchRunner) Watch(ctx context.Context, ip string, onCycle func(*model.DiagnosticsReport, error)) error {
	logger.Infof("watch: target=%s interval=%v", ip, w.interval)

	w.runCycle(ctx, ip, onCycle)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Infof("watch: target=%s stopped", ip)
			return ctx.Err()
		case <-ticker.C:
			w.runCycle(ctx, ip, onCycle)
		}
	}
}

func (w *WatchRunner) runCycle(ctx context.Context, ip string, onCycle func(*model.DiagnosticsReport, error)) {
	report, err := w.runner.Run(ctx, ip)
	// 循环收尾由 Watch 的 ctx 分支负责，取消引起的半截结果直接丢弃
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return
	}
	onCycle(report, err)
}
