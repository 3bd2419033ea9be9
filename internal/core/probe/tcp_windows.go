//go:build windows

package probe

import (
	"errors"
	"net"
	"strconv"
	"syscall"
	"time"

	"neoprobe/internal/core/model"
	"neoprobe/internal/pkg/utils"
)

// connectProbe Windows 退化实现
// 没有可移植的 select 写就绪原语，带超时的连接交给运行时网络轮询器完成，
// 结论分类与 POSIX 实现保持一致。
func connectProbe(ip string, port int, timeout time.Duration) (model.ProbeOutcome, int64, string) {
	start := time.Now()

	conn, err := net.DialTimeout("tcp4", net.JoinHostPort(ip, strconv.Itoa(port)), timeout)
	if err == nil {
		conn.Close()
		return model.OutcomeOpen, utils.ElapsedMillisecondsSince(start), ""
	}

	var nerr net.Error
	if errors.As(err, &nerr) && nerr.Timeout() {
		return model.OutcomeTimeout, 0, "connect timed out"
	}
	if errors.Is(err, syscall.ECONNREFUSED) {
		return model.OutcomeClosed, 0, "connection refused"
	}
	return model.OutcomeError, 0, err.Error()
}
