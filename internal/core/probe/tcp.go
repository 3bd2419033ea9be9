/**
 * TCP 可达性探测
 * @author: sun977
 * @date: 2026.02.10
 * @description: 非阻塞连接 + 带超时的就绪等待两阶段探测，区分 open/closed/timeout 并报告毫秒延迟
 */

package probe

import (
	"context"
	"fmt"
	"time"

	"neoprobe/internal/core/model"
	"neoprobe/internal/pkg/logger"
	"neoprobe/internal/pkg/utils"
)

// DefaultTcpTimeout TCP 探测默认等待窗口
const DefaultTcpTimeout = 5 * time.Second

// TcpProber 单目标 TCP 可达性探测器
type TcpProber struct {
	Timeout time.Duration
}

func NewTcpProber(timeout time.Duration) *TcpProber {
	if timeout <= 0 {
		timeout = DefaultTcpTimeout
	}
	return &TcpProber{Timeout: timeout}
}

// Probe 对 ip:port 执行一次探测
// 参数校验失败立即返回错误，不产生任何 I/O；等待窗口内无结论记为 timeout
func (p *TcpProber) Probe(ctx context.Context, ip string, port int) (*model.TcpProbeResult, error) {
	if !utils.IsValidIPv4(ip) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidTarget, ip)
	}
	if !utils.IsValidPort(port) {
		return nil, fmt.Errorf("%w: %d", ErrInvalidPort, port)
	}

	target := model.Target{IP: ip, Port: port}

	// 调用方 context 截止时间早于探测超时的，以 context 为准
	timeout := p.Timeout
	if deadline, ok := ctx.Deadline(); ok {
		if remain := time.Until(deadline); remain < timeout {
			timeout = remain
		}
	}
	if timeout <= 0 {
		return &model.TcpProbeResult{
			Target:  target,
			Outcome: model.OutcomeTimeout,
			Detail:  "wait window exhausted",
		}, nil
	}

	logger.Debugf("tcp probe: target=%s timeout=%v", target, timeout)
	outcome, latencyMs, detail := connectProbe(ip, port, timeout)

	result := &model.TcpProbeResult{
		Target:  target,
		Outcome: outcome,
		Detail:  detail,
	}
	if outcome == model.OutcomeOpen {
		result.LatencyMs = latencyMs
	}

	logger.Debugf("tcp probe: target=%s outcome=%s latency=%dms detail=%q",
		target, outcome, latencyMs, detail)
	return result, nil
}
