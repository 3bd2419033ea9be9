package pipeline

import (
	"context"
	"fmt"
	"time"

	"neoprobe/internal/core/model"
	"neoprobe/internal/core/probe"
	"neoprobe/internal/pkg/logger"
	"neoprobe/internal/pkg/utils"
)

// echoProber ICMP 阶段的探测入口
type echoProber interface {
	Ping(ctx context.Context, ip string) (*model.PingReport, error)
}

// serviceScanner 服务发现阶段的扫描入口
type serviceScanner interface {
	Discover(ctx context.Context, ip string) (*model.ServiceScanReport, error)
}

// DiagnosticsRunner 综合诊断编排器
// 对单个目标串联 ICMP 探测 -> 服务发现 两个阶段并汇总可达性结论
type DiagnosticsRunner struct {
	pinger     echoProber
	discoverer serviceScanner
}

// NewDiagnosticsRunner 使用固定的阶段参数构建编排器:
// 3 个 Echo Request、单包 5 秒等待窗口，服务发现共享 3 秒窗口
func NewDiagnosticsRunner() *DiagnosticsRunner {
	return &DiagnosticsRunner{
		pinger:     probe.NewPinger(probe.DefaultPingCount, probe.DefaultPingTimeout),
		discoverer: probe.NewServiceDiscoverer(probe.DefaultDiscoverTimeout),
	}
}

// NewDiagnosticsRunnerWith 注入自定义阶段实现
func NewDiagnosticsRunnerWith(pinger echoProber, discoverer serviceScanner) *DiagnosticsRunner {
	return &DiagnosticsRunner{pinger: pinger, discoverer: discoverer}
}

// Run 对目标执行一次完整诊断
// 阶段严格顺序执行，任何阶段的失败都不跳过后续阶段；
// 最终可达性结论只看 ICMP 回包数量，与扫描结果无关
func (r *DiagnosticsRunner) Run(ctx context.Context, ip string) (*model.DiagnosticsReport, error) {
	if !utils.IsValidIPv4(ip) {
		return nil, fmt.Errorf("%w: %q", probe.ErrInvalidTarget, ip)
	}

	report := &model.DiagnosticsReport{TargetIP: ip}
	start := time.Now()

	logger.Infof("diagnostics: target=%s phase=ping", ip)
	ping, err := r.pinger.Ping(ctx, ip)
	if err != nil {
		// 原始通道不可用或周期失败是该阶段的预期结局，记录后继续
		report.PingErr = err.Error()
		logger.Warnf("diagnostics: ping phase failed: %v", err)
	} else {
		report.Ping = ping
		report.OverallReachable = ping.Reachable
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	logger.Infof("diagnostics: target=%s phase=discover", ip)
	scan, err := r.discoverer.Discover(ctx, ip)
	if err != nil {
		report.ScanErr = err.Error()
		logger.Warnf("diagnostics: discover phase failed: %v", err)
	} else {
		report.Scan = scan
	}

	report.GeneratedAt = time.Now()
	outcome := "unreachable"
	if report.OverallReachable {
		outcome = "reachable"
	}
	logger.LogProbeOperation("report", ip, outcome, utils.ElapsedMillisecondsSince(start), map[string]interface{}{
		"ping_ok": report.Ping != nil,
		"scan_ok": report.Scan != nil,
	})
	return report, nil
}
