//go:build linux || darwin

package probe

import (
	"fmt"
	"net"
	"syscall"
	"time"

	"golang.org/x/sys/unix"

	"neoprobe/internal/core/model"
)

// scanCatalog 共享截止时间的批量连接扫描
// 阶段一对每个端口发起非阻塞 connect；阶段二把所有挂起的 fd 收进同一个
// FdSet 做一次带超时的 select；阶段三逐个检查 SO_ERROR 和写就绪标志。
// 端口开放当且仅当 SO_ERROR 为零且 fd 写就绪。每个 fd 在所有路径上都被关闭。
func scanCatalog(ip string, catalog []CatalogEntry, timeout time.Duration) ([]model.ServiceScanResult, error) {
	parsed := net.ParseIP(ip).To4()
	if parsed == nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidTarget, ip)
	}

	type pendingConn struct {
		fd  int
		idx int
	}

	results := make([]model.ServiceScanResult, len(catalog))
	var wait []pendingConn
	maxFd := -1

	// 阶段一: 发起全部非阻塞连接，立即出结论的不进等待集
	for i, entry := range catalog {
		results[i] = model.ServiceScanResult{Port: entry.Port, Service: entry.Service}

		fd, err := unix.Socket(unix.AF_INET, unix.SOCK_STREAM, 0)
		if err != nil {
			results[i].Detail = fmt.Sprintf("socket: %v", err)
			continue
		}
		if err := unix.SetNonblock(fd, true); err != nil {
			results[i].Detail = fmt.Sprintf("set nonblock: %v", err)
			unix.Close(fd)
			continue
		}

		sa := &unix.SockaddrInet4{Port: entry.Port}
		copy(sa.Addr[:], parsed)

		err = unix.Connect(fd, sa)
		switch err {
		case nil:
			// 回环目标可能立即完成握手
			results[i].Open = true
			unix.Close(fd)
		case unix.EINPROGRESS, unix.EINTR:
			wait = append(wait, pendingConn{fd: fd, idx: i})
			if fd > maxFd {
				maxFd = fd
			}
		default:
			results[i].Detail = err.Error()
			unix.Close(fd)
		}
	}

	if len(wait) == 0 {
		return results, nil
	}

	defer func() {
		for _, p := range wait {
			unix.Close(p.fd)
		}
	}()

	// 阶段二: 整个批次在一个 select 上挂起，共享同一个截止时间
	// select 会改写 FdSet，EINTR 重试前需要重建等待集
	deadline := time.Now().Add(timeout)
	var wset unix.FdSet
	for {
		wset.Zero()
		for _, p := range wait {
			wset.Set(p.fd)
		}

		remaining := time.Until(deadline)
		if remaining < 0 {
			remaining = 0
		}
		tv := unix.NsecToTimeval(remaining.Nanoseconds())

		_, err := unix.Select(maxFd+1, nil, &wset, nil, &tv)
		if err == unix.EINTR {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("select: %w", err)
		}
		break
	}

	// 阶段三: 挂起的端口逐个定性
	// 超时返回时 FdSet 为空，所有挂起端口自然落入未开放分支
	for _, p := range wait {
		soerr, err := unix.GetsockoptInt(p.fd, unix.SOL_SOCKET, unix.SO_ERROR)
		if err != nil {
			results[p.idx].Detail = fmt.Sprintf("getsockopt: %v", err)
			continue
		}
		if soerr != 0 {
			results[p.idx].Detail = syscall.Errno(soerr).Error()
			continue
		}
		if wset.IsSet(p.fd) {
			results[p.idx].Open = true
		}
	}

	return results, nil
}
