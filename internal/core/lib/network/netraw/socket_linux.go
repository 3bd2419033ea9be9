//go:build linux
// +build linux

package netraw

import (
	"fmt"
	"net"
	"os"
	"time"

	"golang.org/x/sys/unix"
)

// RawSocket 封装 Linux 下的 ICMP Raw Socket 操作
type RawSocket struct {
	fd       int
	protocol int
}

// NewICMPSocket 创建一个 ICMP Raw Socket
// AF_INET + SOCK_RAW + IPPROTO_ICMP，需要 root 或 CAP_NET_RAW
// 不设置 IP_HDRINCL，发送时只写 ICMP 报文，IP 头由内核构建
func NewICMPSocket() (*RawSocket, error) {
	fd, err := unix.Socket(unix.AF_INET, unix.SOCK_RAW, unix.IPPROTO_ICMP)
	if err != nil {
		return nil, fmt.Errorf("failed to create raw socket: %w", err)
	}

	return &RawSocket{
		fd:       fd,
		protocol: unix.IPPROTO_ICMP,
	}, nil
}

// Close 关闭 Socket
func (s *RawSocket) Close() error {
	return unix.Close(s.fd)
}

// Send 发送 ICMP 报文
// dst: 目标 IP 地址
// packet: ICMP 报文 (不含 IP 头)
func (s *RawSocket) Send(dst net.IP, packet []byte) error {
	ip4 := dst.To4()
	if ip4 == nil {
		return fmt.Errorf("not an ipv4 address: %s", dst)
	}

	addr := unix.SockaddrInet4{
		Port: 0,
		Addr: [4]byte{ip4[0], ip4[1], ip4[2], ip4[3]},
	}

	if err := unix.Sendto(s.fd, packet, 0, &addr); err != nil {
		return fmt.Errorf("sendto failed: %w", err)
	}
	return nil
}

// Receive 接收数据包
// 收到的是包含 IPv4 头部的完整数据报
// 超时统一返回 os.ErrDeadlineExceeded，调用方按超时而非失败处理
// 返回: 读取的字节数, 来源 IP, 错误
func (s *RawSocket) Receive(buffer []byte, timeout time.Duration) (int, net.IP, error) {
	if timeout <= 0 {
		return 0, nil, os.ErrDeadlineExceeded
	}

	// 每次接收前重设 SO_RCVTIMEO，等待窗口按剩余时间收缩
	tv := unix.NsecToTimeval(timeout.Nanoseconds())
	if err := unix.SetsockoptTimeval(s.fd, unix.SOL_SOCKET, unix.SO_RCVTIMEO, &tv); err != nil {
		return 0, nil, fmt.Errorf("failed to set recv timeout: %w", err)
	}

	n, from, err := unix.Recvfrom(s.fd, buffer, 0)
	if err != nil {
		if err == unix.EAGAIN || err == unix.EWOULDBLOCK {
			return 0, nil, os.ErrDeadlineExceeded
		}
		return 0, nil, err
	}

	var srcIP net.IP
	if addr, ok := from.(*unix.SockaddrInet4); ok {
		srcIP = net.IP(addr.Addr[:])
	}

	return n, srcIP, nil
}
