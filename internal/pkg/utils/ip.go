package utils

import (
	"net"
	"strings"
)

// NormalizeIP 标准化IP地址：
// - 若是带端口的地址，去掉端口
// - 若是 IPv4-mapped IPv6 (::ffff:192.0.2.1)，转成纯 IPv4
// - 否则按原样返回（包括真 IPv6）
func NormalizeIP(input string) string {
	if input == "" {
		return ""
	}

	ip := strings.TrimSpace(input)

	// 去掉端口（host:port 或 [ipv6]:port）
	if h, _, err := net.SplitHostPort(ip); err == nil {
		ip = h
	}

	parsed := net.ParseIP(ip)
	if parsed == nil {
		return ip
	}

	if v4 := parsed.To4(); v4 != nil {
		return v4.String()
	}

	return parsed.String()
}

// IsValidIPv4 判断字符串是否为合法的IPv4点分十进制地址
// 探测入口的参数校验统一使用该函数，不做域名解析
func IsValidIPv4(s string) bool {
	if s == "" {
		return false
	}
	parsed := net.ParseIP(s)
	if parsed == nil {
		return false
	}
	// 排除 IPv6 写法（含 IPv4-mapped），只接受原生点分十进制
	if !strings.Contains(s, ".") || strings.Contains(s, ":") {
		return false
	}
	return parsed.To4() != nil
}

// IsValidPort 判断端口号是否在合法范围 1-65535 内
func IsValidPort(port int) bool {
	return port >= 1 && port <= 65535
}
