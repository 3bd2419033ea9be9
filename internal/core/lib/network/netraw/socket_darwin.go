//go:build darwin

package netraw

import (
	"fmt"
	"net"
	"time"
)

// Darwin Stub Implementation
// MacOS Raw Socket 支持有限，且需要特殊权限/BPF。
// 暂时降级为不支持，ICMP 探测在 darwin 上报告原始通道不可用。

type RawSocket struct{}

func NewICMPSocket() (*RawSocket, error) {
	return nil, fmt.Errorf("raw socket not supported on darwin")
}

func (s *RawSocket) Close() error {
	return nil
}

func (s *RawSocket) Send(dst net.IP, packet []byte) error {
	return fmt.Errorf("not supported")
}

func (s *RawSocket) Receive(buffer []byte, timeout time.Duration) (int, net.IP, error) {
	return 0, nil, fmt.Errorf("not supported")
}
