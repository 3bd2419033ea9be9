// 结构化日志条目
package logger

import (
	"time"

	"github.com/sirupsen/logrus"
)

// FormatTimestamp 格式化时间戳为统一的毫秒精度格式
// 返回格式："2006-01-02 15:04:05.000"
func FormatTimestamp(t time.Time) string {
	return t.Format("2006-01-02 15:04:05.000")
}

// NowFormatted 返回当前时间的格式化字符串
func NowFormatted() string {
	return FormatTimestamp(time.Now())
}

// LogType 日志类型枚举
type LogType string

const (
	// ProbeLog 探测日志 - 记录单次探测的结论
	ProbeLog LogType = "probe"
	// SystemLog 系统日志 - 记录运行状态（配置加载、热重载等）
	SystemLog LogType = "system"
)

// LogLevel 日志级别
type LogLevel int

const (
	DebugLevel LogLevel = iota
	InfoLevel
	WarnLevel
	ErrorLevel
)

// toLogrusLevel 转换为 logrus 级别
func toLogrusLevel(level LogLevel) logrus.Level {
	switch level {
	case DebugLevel:
		return logrus.DebugLevel
	case WarnLevel:
		return logrus.WarnLevel
	case ErrorLevel:
		return logrus.ErrorLevel
	default:
		return logrus.InfoLevel
	}
}

// LogProbeOperation 记录一次探测操作的结构化日志
// kind 是探测类型 (tcp/icmp/discover/report)，outcome 是该类型自己的结论文本
func LogProbeOperation(kind, target, outcome string, durationMs int64, extraFields map[string]interface{}) {
	if LoggerInstance == nil {
		return
	}

	fields := logrus.Fields{
		"log_type":    string(ProbeLog),
		"timestamp":   NowFormatted(),
		"kind":        kind,
		"target":      target,
		"outcome":     outcome,
		"duration_ms": durationMs,
	}
	for k, v := range extraFields {
		fields[k] = v
	}

	LoggerInstance.GetLogger().WithFields(fields).Info("probe operation")
}

// LogSystemEvent 记录系统运行事件的结构化日志
func LogSystemEvent(component, event, message string, level LogLevel, extraFields map[string]interface{}) {
	if LoggerInstance == nil {
		return
	}

	fields := logrus.Fields{
		"log_type":  string(SystemLog),
		"timestamp": NowFormatted(),
		"component": component,
		"event":     event,
	}
	for k, v := range extraFields {
		fields[k] = v
	}

	LoggerInstance.GetLogger().WithFields(fields).Log(toLogrusLevel(level), message)
}
