//go:build linux || darwin

package probe

import (
	"fmt"
	"net"
	"syscall"
	"time"

	"golang.org/x/sys/unix"

	"neoprobe/internal/core/model"
	"neoprobe/internal/pkg/utils"
)

// connectProbe 两阶段非阻塞连接探测
// 阶段一发起非阻塞 connect(期望 EINPROGRESS)，阶段二在单次带超时的
// 写就绪等待上挂起，就绪后用 SO_ERROR 区分握手成功与对端拒绝。
// 所有退出路径都会关闭套接字。
func connectProbe(ip string, port int, timeout time.Duration) (model.ProbeOutcome, int64, string) {
	start := time.Now()

	parsed := net.ParseIP(ip).To4()
	if parsed == nil {
		return model.OutcomeError, 0, fmt.Sprintf("not an ipv4 address: %s", ip)
	}

	fd, err := unix.Socket(unix.AF_INET, unix.SOCK_STREAM, 0)
	if err != nil {
		return model.OutcomeError, 0, fmt.Sprintf("socket: %v", err)
	}
	defer unix.Close(fd)

	if err := unix.SetNonblock(fd, true); err != nil {
		return model.OutcomeError, 0, fmt.Sprintf("set nonblock: %v", err)
	}

	sa := &unix.SockaddrInet4{Port: port}
	copy(sa.Addr[:], parsed)

	err = unix.Connect(fd, sa)
	switch err {
	case nil:
		// 回环目标可能立即完成握手
		return model.OutcomeOpen, utils.ElapsedMillisecondsSince(start), ""
	case unix.EINPROGRESS, unix.EINTR:
		// 握手进行中，进入就绪等待
	case unix.ECONNREFUSED:
		return model.OutcomeClosed, 0, "connection refused"
	default:
		return model.OutcomeError, 0, fmt.Sprintf("connect: %v", err)
	}

	ready, err := waitWritable(fd, start.Add(timeout))
	if err != nil {
		return model.OutcomeError, 0, fmt.Sprintf("select: %v", err)
	}
	if !ready {
		return model.OutcomeTimeout, 0, "connect timed out"
	}

	soerr, err := unix.GetsockoptInt(fd, unix.SOL_SOCKET, unix.SO_ERROR)
	if err != nil {
		return model.OutcomeError, 0, fmt.Sprintf("getsockopt: %v", err)
	}
	if soerr != 0 {
		return model.OutcomeClosed, 0, syscall.Errno(soerr).Error()
	}

	return model.OutcomeOpen, utils.ElapsedMillisecondsSince(start), ""
}

// waitWritable 在 deadline 前等待 fd 变为可写
// 被信号打断时用剩余时间重试，返回 false 表示等待窗口耗尽
func waitWritable(fd int, deadline time.Time) (bool, error) {
	for {
		remaining := time.Until(deadline)
		if remaining <= 0 {
			return false, nil
		}

		var wset unix.FdSet
		wset.Zero()
		wset.Set(fd)
		tv := unix.NsecToTimeval(remaining.Nanoseconds())

		n, err := unix.Select(fd+1, nil, &wset, nil, &tv)
		if err == unix.EINTR {
			continue
		}
		if err != nil {
			return false, err
		}
		return n > 0 && wset.IsSet(fd), nil
	}
}
