package model

import (
	"fmt"
	"time"
)

// ProbeOutcome 单次探测的结论
type ProbeOutcome string

const (
	OutcomeOpen    ProbeOutcome = "open"    // 连接建立成功
	OutcomeClosed  ProbeOutcome = "closed"  // 对端明确拒绝 (RST)
	OutcomeTimeout ProbeOutcome = "timeout" // 等待窗口内无结论
	OutcomeError   ProbeOutcome = "error"   // 本地错误 (路由不可达、fd 耗尽等)
)

// Target TCP 探测目标
type Target struct {
	IP   string `json:"ip"`
	Port int    `json:"port"`
}

func (t Target) String() string {
	return fmt.Sprintf("%s:%d", t.IP, t.Port)
}

// TcpProbeResult TCP 可达性探测结果
// 延迟为整毫秒，仅在连接建立成功时有意义
type TcpProbeResult struct {
	Target    Target       `json:"target"`
	Outcome   ProbeOutcome `json:"outcome"`
	LatencyMs int64        `json:"latency_ms,omitempty"`
	Detail    string       `json:"detail,omitempty"`
}

// Headers 实现 TabularData 接口
// Target          | Outcome | Latency | Detail
// 127.0.0.1:80    | OPEN    | 2 ms    |
func (r TcpProbeResult) Headers() []string {
	return []string{"Target", "Outcome", "Latency", "Detail"}
}

// Rows 实现 TabularData 接口
func (r TcpProbeResult) Rows() [][]string {
	latency := "N/A"
	if r.Outcome == OutcomeOpen {
		latency = fmt.Sprintf("%d ms", r.LatencyMs)
	}
	return [][]string{{r.Target.String(), outcomeLabel(r.Outcome), latency, r.Detail}}
}

// EchoAttempt 单次 ICMP Echo 往返记录
type EchoAttempt struct {
	Seq     int    `json:"seq"`
	Success bool   `json:"success"`
	RttMs   int64  `json:"rtt_ms,omitempty"`
	Detail  string `json:"detail,omitempty"`
}

// PingReport ICMP 探测周期的统计报告
// 丢包率用浮点记录，可达性判定只看整数回包计数
type PingReport struct {
	TargetIP    string        `json:"target_ip"`
	Sent        int           `json:"sent"`
	Received    int           `json:"received"`
	LossPercent float64       `json:"loss_percent"`
	MinRttMs    int64         `json:"min_rtt_ms,omitempty"`
	AvgRttMs    int64         `json:"avg_rtt_ms,omitempty"`
	MaxRttMs    int64         `json:"max_rtt_ms,omitempty"`
	Attempts    []EchoAttempt `json:"attempts"`
	Reachable   bool          `json:"reachable"`
}

// Headers 实现 TabularData 接口，按序列号逐行展示
func (r PingReport) Headers() []string {
	return []string{"Seq", "Result", "RTT", "Detail"}
}

// Rows 实现 TabularData 接口
func (r PingReport) Rows() [][]string {
	rows := make([][]string, 0, len(r.Attempts))
	for _, a := range r.Attempts {
		result := "LOST"
		rtt := "N/A"
		if a.Success {
			result = "REPLY"
			rtt = fmt.Sprintf("%d ms", a.RttMs)
		}
		rows = append(rows, []string{fmt.Sprintf("%d", a.Seq), result, rtt, a.Detail})
	}
	return rows
}

// Summary 统计摘要，与逐行表格分开渲染
// 丢包率展示保留一位小数
func (r PingReport) Summary() string {
	if r.Received == 0 {
		return fmt.Sprintf("%d packets transmitted, 0 received, %.1f%% packet loss", r.Sent, r.LossPercent)
	}
	return fmt.Sprintf("%d packets transmitted, %d received, %.1f%% packet loss, rtt min/avg/max = %d/%d/%d ms",
		r.Sent, r.Received, r.LossPercent, r.MinRttMs, r.AvgRttMs, r.MaxRttMs)
}

// ServiceScanResult 服务发现中单个端口的结论
type ServiceScanResult struct {
	Port    int    `json:"port"`
	Service string `json:"service"`
	Open    bool   `json:"open"`
	Detail  string `json:"detail,omitempty"`
}

// ServiceScanReport 服务发现扫描报告，结果按目录顺序排列
type ServiceScanReport struct {
	TargetIP  string              `json:"target_ip"`
	Results   []ServiceScanResult `json:"results"`
	OpenCount int                 `json:"open_count"`
	ElapsedMs int64               `json:"elapsed_ms"`
}

// Headers 实现 TabularData 接口
// Port | Service | Status
// 22   | SSH     | OPEN
func (r ServiceScanReport) Headers() []string {
	return []string{"Port", "Service", "Status"}
}

// Rows 实现 TabularData 接口
func (r ServiceScanReport) Rows() [][]string {
	rows := make([][]string, 0, len(r.Results))
	for _, res := range r.Results {
		status := "closed"
		if res.Open {
			status = "OPEN"
		}
		rows = append(rows, []string{fmt.Sprintf("%d", res.Port), res.Service, status})
	}
	return rows
}

// DiagnosticsReport 综合诊断报告
// ICMP 阶段失败不会中止扫描阶段，两个阶段的错误分别记录
type DiagnosticsReport struct {
	TargetIP         string             `json:"target_ip"`
	Ping             *PingReport        `json:"ping,omitempty"`
	PingErr          string             `json:"ping_err,omitempty"`
	Scan             *ServiceScanReport `json:"scan,omitempty"`
	ScanErr          string             `json:"scan_err,omitempty"`
	OverallReachable bool               `json:"overall_reachable"`
	GeneratedAt      time.Time          `json:"generated_at"`
}

// Verdict 诊断结论文本
func (r DiagnosticsReport) Verdict() string {
	if r.OverallReachable {
		return fmt.Sprintf("Host %s is REACHABLE", r.TargetIP)
	}
	return fmt.Sprintf("Host %s is UNREACHABLE (no echo reply received)", r.TargetIP)
}

func outcomeLabel(o ProbeOutcome) string {
	switch o {
	case OutcomeOpen:
		return "OPEN"
	case OutcomeClosed:
		return "CLOSED"
	case OutcomeTimeout:
		return "TIMEOUT"
	default:
		return "ERROR"
	}
}
