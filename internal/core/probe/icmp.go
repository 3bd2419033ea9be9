/**
 * ICMP Echo 探测
 * @author: sun977
 * @date: 2026.02.10
 * @description: 原始套接字上的 Echo 探测周期，按 进程标识+序列号 匹配回包并聚合丢包/延迟统计
 */

package probe

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"time"

	"neoprobe/internal/core/lib/network/netraw"
	"neoprobe/internal/core/model"
	"neoprobe/internal/pkg/logger"
	"neoprobe/internal/pkg/utils"
)

const (
	// DefaultPingCount 默认发送的 Echo Request 数量
	DefaultPingCount = 3
	// DefaultPingTimeout 单个回包的默认等待窗口
	DefaultPingTimeout = 5 * time.Second

	// 接收缓冲区: 最大 IP 头 60 字节 + ICMP 报文，留足余量
	recvBufferSize = 1024
)

// echoConn 收发 ICMP 报文的通道，方法集与 netraw.RawSocket 一致
type echoConn interface {
	Send(dst net.IP, packet []byte) error
	Receive(buffer []byte, timeout time.Duration) (int, net.IP, error)
	Close() error
}

// Pinger ICMP Echo 探测器
// 一个探测周期串行发送 Count 个请求，序列号从 0 递增，
// 标识符取进程号低 16 位，避免与并行进程的回包混淆
type Pinger struct {
	Count   int
	Timeout time.Duration

	// 打开原始通道的入口，测试用它注入假通道
	openConn func() (echoConn, error)
}

func NewPinger(count int, timeout time.Duration) *Pinger {
	if count <= 0 {
		count = DefaultPingCount
	}
	if timeout <= 0 {
		timeout = DefaultPingTimeout
	}
	return &Pinger{
		Count:    count,
		Timeout:  timeout,
		openConn: openRawChannel,
	}
}

// openRawChannel 打开内核 ICMP 原始套接字
// 打不开一律归为原始通道不可用，与“主机不可达”严格区分
func openRawChannel() (echoConn, error) {
	sock, err := netraw.NewICMPSocket()
	if err != nil {
		if errors.Is(err, os.ErrPermission) {
			return nil, fmt.Errorf("%w: %v (requires root or CAP_NET_RAW)", ErrRawChannelUnavailable, err)
		}
		return nil, fmt.Errorf("%w: %v", ErrRawChannelUnavailable, err)
	}
	return sock, nil
}

// Ping 执行一个完整探测周期并返回统计报告
// 单次尝试超时不中止周期，下一个序列号照常发送；统计在全部尝试结束后一次性计算
func (p *Pinger) Ping(ctx context.Context, ip string) (*model.PingReport, error) {
	if !utils.IsValidIPv4(ip) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidTarget, ip)
	}

	conn, err := p.openConn()
	if err != nil {
		return nil, err
	}
	defer conn.Close()

	dst := net.ParseIP(ip)
	id := os.Getpid() & 0xffff

	report := &model.PingReport{
		TargetIP: ip,
		Attempts: make([]model.EchoAttempt, 0, p.Count),
	}

	for seq := 0; seq < p.Count; seq++ {
		// 取消只在尝试之间生效，已开始的等待总是等到超时或回包
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		attempt := p.runAttempt(conn, dst, id, seq)
		report.Attempts = append(report.Attempts, attempt)
		report.Sent++
		if attempt.Success {
			report.Received++
		}
		logger.Debugf("icmp echo: target=%s seq=%d success=%v rtt=%dms detail=%q",
			ip, seq, attempt.Success, attempt.RttMs, attempt.Detail)
	}

	finalizePingReport(report)
	return report, nil
}

// runAttempt 单次 Echo 往返
// 等待窗口内出现的无关 ICMP 流量(其他进程的回包、非 Echo 报文)不消耗本次尝试，
// 用剩余时间继续等待，直到匹配回包或窗口耗尽
func (p *Pinger) runAttempt(conn echoConn, dst net.IP, id, seq int) model.EchoAttempt {
	attempt := model.EchoAttempt{Seq: seq}

	sentAt := time.Now()
	packet, err := netraw.BuildEchoRequestWithTimestamp(id, seq, sentAt)
	if err != nil {
		attempt.Detail = fmt.Sprintf("build packet: %v", err)
		return attempt
	}

	if err := conn.Send(dst, packet); err != nil {
		attempt.Detail = fmt.Sprintf("send: %v", err)
		return attempt
	}

	deadline := sentAt.Add(p.Timeout)
	buf := make([]byte, recvBufferSize)

	for {
		remaining := time.Until(deadline)
		if remaining <= 0 {
			attempt.Detail = "timeout"
			return attempt
		}

		n, _, err := conn.Receive(buf, remaining)
		if err != nil {
			if errors.Is(err, os.ErrDeadlineExceeded) {
				attempt.Detail = "timeout"
			} else {
				attempt.Detail = fmt.Sprintf("recv: %v", err)
			}
			return attempt
		}

		receivedAt := time.Now()
		msg, perr := netraw.ParseEchoReply(buf[:n])
		if perr != nil {
			continue
		}
		if !msg.IsEchoReply(id, seq) {
			continue
		}

		// RTT 基准取回包负载内嵌的发送时刻，迟到的回包也按自己的发送时间计量
		base := sentAt
		if ts, ok := netraw.EchoPayloadTimestamp(msg.Payload); ok {
			base = ts
		}
		attempt.Success = true
		attempt.RttMs = utils.ElapsedMilliseconds(base, receivedAt)
		return attempt
	}
}

// finalizePingReport 周期结束后一次性聚合统计
// 可达性判定只看整数回包计数，与丢包率的舍入无关
func finalizePingReport(r *model.PingReport) {
	if r.Sent > 0 {
		r.LossPercent = float64(r.Sent-r.Received) / float64(r.Sent) * 100
	}
	r.Reachable = r.Received >= 1

	first := true
	var total int64
	for _, a := range r.Attempts {
		if !a.Success {
			continue
		}
		if first {
			r.MinRttMs, r.MaxRttMs = a.RttMs, a.RttMs
			first = false
		} else {
			if a.RttMs < r.MinRttMs {
				r.MinRttMs = a.RttMs
			}
			if a.RttMs > r.MaxRttMs {
				r.MaxRttMs = a.RttMs
			}
		}
		total += a.RttMs
	}
	if r.Received > 0 {
		r.AvgRttMs = total / int64(r.Received)
	}
}
