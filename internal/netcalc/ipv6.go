/**
 * IPv6 地址分析
 * @author: sun977
 * @date: 2026.02.12
 * @description: 按前缀判定 IPv6 地址种类，提供全展开与规范压缩两种书写形式
 */

package netcalc

import (
	"fmt"
	"net"
	"strings"
)

// IPv6Kind IPv6 地址种类
type IPv6Kind string

const (
	IPv6Loopback      IPv6Kind = "loopback"
	IPv6Unspecified   IPv6Kind = "unspecified"
	IPv6LinkLocal     IPv6Kind = "link-local"
	IPv6UniqueLocal   IPv6Kind = "unique-local"
	IPv6Multicast     IPv6Kind = "multicast"
	IPv6Documentation IPv6Kind = "documentation"
	IPv6Global        IPv6Kind = "global"
	IPv6Mapped        IPv6Kind = "ipv4-mapped"
	IPv6Reserved      IPv6Kind = "reserved"
)

// IPv6Info IPv6 地址的种类与书写结构
type IPv6Info struct {
	Input      string   `json:"input"`
	Valid      bool     `json:"valid"`
	Kind       IPv6Kind `json:"kind,omitempty"`
	Expanded   string   `json:"expanded,omitempty"`
	Compressed string   `json:"compressed,omitempty"`
	Groups     int      `json:"groups,omitempty"`
	Shortened  bool     `json:"shortened"`
}

// ClassifyIPv6 解析 IPv6 地址并判定种类
// 非法输入返回 Valid=false 而不是错误，方便表格统一渲染
func ClassifyIPv6(s string) IPv6Info {
	s = strings.TrimSpace(s)
	info := IPv6Info{Input: s}

	ip := net.ParseIP(s)
	if ip == nil || !strings.Contains(s, ":") {
		return info
	}
	v6 := ip.To16()
	if v6 == nil {
		return info
	}

	info.Valid = true
	info.Kind = ipv6Kind(ip, v6)
	info.Expanded = expandGroups(v6)
	info.Compressed = ip.String()
	info.Shortened = strings.Contains(s, "::")
	for _, part := range strings.Split(s, ":") {
		if part != "" {
			info.Groups++
		}
	}
	return info
}

// ipv6Kind 种类判定
// documentation 网段是 2000::/3 的子集，必须先于 global 检查
func ipv6Kind(ip net.IP, v6 net.IP) IPv6Kind {
	switch {
	case ip.Equal(net.IPv6loopback):
		return IPv6Loopback
	case ip.IsUnspecified():
		return IPv6Unspecified
	case ip.To4() != nil:
		return IPv6Mapped
	case ip.IsLinkLocalUnicast():
		return IPv6LinkLocal
	case v6[0]&0xFE == 0xFC:
		return IPv6UniqueLocal
	case ip.IsMulticast():
		return IPv6Multicast
	case v6[0] == 0x20 && v6[1] == 0x01 && v6[2] == 0x0D && v6[3] == 0xB8:
		return IPv6Documentation
	case v6[0]&0xE0 == 0x20:
		return IPv6Global
	default:
		return IPv6Reserved
	}
}

// ExpandIPv6 返回 8 组 4 位十六进制的完整书写形式
func ExpandIPv6(s string) (string, error) {
	s = strings.TrimSpace(s)
	ip := net.ParseIP(s)
	if ip == nil || !strings.Contains(s, ":") {
		return "", fmt.Errorf("invalid ipv6 address %q", s)
	}
	return expandGroups(ip.To16()), nil
}

// CompressIPv6 返回 RFC 5952 规范压缩形式
func CompressIPv6(s string) (string, error) {
	s = strings.TrimSpace(s)
	ip := net.ParseIP(s)
	if ip == nil || !strings.Contains(s, ":") {
		return "", fmt.Errorf("invalid ipv6 address %q", s)
	}
	return ip.String(), nil
}

func expandGroups(v6 net.IP) string {
	groups := make([]string, 8)
	for i := 0; i < 8; i++ {
		groups[i] = fmt.Sprintf("%02x%02x", v6[2*i], v6[2*i+1])
	}
	return strings.Join(groups, ":")
}

func (i IPv6Info) Headers() []string {
	return []string{"Field", "Value"}
}

func (i IPv6Info) Rows() [][]string {
	if !i.Valid {
		return [][]string{
			{"Address", i.Input},
			{"Valid", "no"},
		}
	}

	shortened := "no"
	if i.Shortened {
		shortened = "yes"
	}
	return [][]string{
		{"Address", i.Input},
		{"Kind", string(i.Kind)},
		{"Expanded", i.Expanded},
		{"Compressed", i.Compressed},
		{"Groups Written", fmt.Sprintf("%d", i.Groups)},
		{"Uses ::", shortened},
	}
}
