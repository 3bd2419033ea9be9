/**
 * 网段主机枚举
 * @author: sun977
 * @date: 2026.02.12
 * @description: 小网段全量列出可用地址，大网段只取首尾窗口并统计省略数量
 */

package netcalc

import (
	"fmt"
)

const (
	// DefaultHostWindow 大网段首尾各列出的地址数
	DefaultHostWindow = 8

	// fullListLimit 不超过该总地址数的网段全量枚举
	fullListLimit = 64
)

// HostEnumeration 网段可用地址清单
// 全量模式填充 Hosts，窗口模式填充 Head/Tail 并记录省略数
type HostEnumeration struct {
	CIDR           string   `json:"cidr"`
	Network        string   `json:"network"`
	Broadcast      string   `json:"broadcast"`
	TotalAddresses int      `json:"total_addresses"`
	UsableHosts    int      `json:"usable_hosts"`
	Hosts          []string `json:"hosts,omitempty"`
	Head           []string `json:"head,omitempty"`
	Tail           []string `json:"tail,omitempty"`
	Elided         int      `json:"elided,omitempty"`
}

// EnumerateHosts 枚举网段内的可用地址
// window <= 0 时使用默认窗口；/31 和 /32 的可用地址按点对点/单主机规则给出
func EnumerateHosts(cidr string, window int) (*HostEnumeration, error) {
	ip, prefix, err := ParseCIDR(cidr)
	if err != nil {
		return nil, err
	}
	if window <= 0 {
		window = DefaultHostWindow
	}

	r := RangeInfo(ip, MaskFromPrefix(prefix))
	e := &HostEnumeration{
		CIDR:           fmt.Sprintf("%s/%d", r.NetworkText, r.Prefix),
		Network:        r.NetworkText,
		Broadcast:      r.BroadcastText,
		TotalAddresses: r.TotalAddresses,
		UsableHosts:    r.UsableHosts,
	}

	if r.TotalAddresses <= fullListLimit || r.UsableHosts <= 2*window {
		e.Hosts = collectHosts(r.FirstUsable, r.LastUsable)
		return e, nil
	}

	e.Head = collectHosts(r.FirstUsable, r.FirstUsable+uint32(window)-1)
	e.Tail = collectHosts(r.LastUsable-uint32(window)+1, r.LastUsable)
	e.Elided = r.UsableHosts - 2*window
	return e, nil
}

// collectHosts 收集 [first, last] 闭区间内的地址
// 先判等再自增，last 为 255.255.255.255 时不会回绕
func collectHosts(first, last uint32) []string {
	hosts := make([]string, 0, last-first+1)
	for addr := first; ; addr++ {
		hosts = append(hosts, FormatIPv4(addr))
		if addr == last {
			break
		}
	}
	return hosts
}

func (e HostEnumeration) Headers() []string {
	return []string{"#", "Host"}
}

func (e HostEnumeration) Rows() [][]string {
	var rows [][]string
	if len(e.Hosts) > 0 {
		for i, host := range e.Hosts {
			rows = append(rows, []string{fmt.Sprintf("%d", i+1), host})
		}
		return rows
	}

	for i, host := range e.Head {
		rows = append(rows, []string{fmt.Sprintf("%d", i+1), host})
	}
	rows = append(rows, []string{"...", fmt.Sprintf("%d addresses omitted", e.Elided)})
	base := e.UsableHosts - len(e.Tail)
	for i, host := range e.Tail {
		rows = append(rows, []string{fmt.Sprintf("%d", base+i+1), host})
	}
	return rows
}
