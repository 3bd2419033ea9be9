/**
 * IPv4 地址与 32 位整数的互转
 * @author: sun977
 * @date: 2026.02.12
 * @description: 点分十进制与 uint32 之间的严格 base-256 转换，是子网计算的基础
 */

package netcalc

import (
	"fmt"
	"strings"
)

// ParseIPv4 严格解析点分十进制 IPv4 地址为 32 位整数
// 必须恰好 4 段，每段 0..255 的纯数字且不允许前导零
func ParseIPv4(s string) (uint32, error) {
	parts := strings.Split(strings.TrimSpace(s), ".")
	if len(parts) != 4 {
		return 0, fmt.Errorf("invalid ipv4 address %q: expected 4 octets, got %d", s, len(parts))
	}

	var value uint32
	for _, part := range parts {
		octet, err := parseOctet(part)
		if err != nil {
			return 0, fmt.Errorf("invalid ipv4 address %q: %v", s, err)
		}
		value = value<<8 | octet
	}
	return value, nil
}

// parseOctet 解析单个八位组，拒绝空段/非数字/前导零/超界
func parseOctet(s string) (uint32, error) {
	if s == "" {
		return 0, fmt.Errorf("empty octet")
	}
	if len(s) > 3 {
		return 0, fmt.Errorf("octet %q too long", s)
	}
	if len(s) > 1 && s[0] == '0' {
		return 0, fmt.Errorf("octet %q has leading zero", s)
	}

	var value uint32
	for _, c := range s {
		if c < '0' || c > '9' {
			return 0, fmt.Errorf("octet %q is not a number", s)
		}
		value = value*10 + uint32(c-'0')
	}
	if value > 255 {
		return 0, fmt.Errorf("octet %q out of range 0..255", s)
	}
	return value, nil
}

// FormatIPv4 把 32 位整数还原为点分十进制
func FormatIPv4(v uint32) string {
	return fmt.Sprintf("%d.%d.%d.%d", v>>24&0xFF, v>>16&0xFF, v>>8&0xFF, v&0xFF)
}
