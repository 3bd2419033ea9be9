/**
 * 网段边界计算
 * @author: sun977
 * @date: 2026.02.12
 * @description: 网络地址、广播地址、可用地址区间和网段归属判定
 */

package netcalc

import (
	"fmt"
	"math/bits"
)

// NetworkAddress 网络地址 = 地址与掩码按位与
func NetworkAddress(ip, mask uint32) uint32 {
	return ip & mask
}

// BroadcastAddress 广播地址 = 网络地址或上掩码取反
func BroadcastAddress(network, mask uint32) uint32 {
	return network | ^mask
}

// Contains 判断地址是否落在网段内，按掩码对齐后比较
func Contains(network, mask, ip uint32) bool {
	return ip&mask == network&mask
}

// Range 一个网段的完整边界信息
type Range struct {
	Network        uint32 `json:"-"`
	Broadcast      uint32 `json:"-"`
	FirstUsable    uint32 `json:"-"`
	LastUsable     uint32 `json:"-"`
	NetworkText    string `json:"network"`
	BroadcastText  string `json:"broadcast"`
	FirstText      string `json:"first_usable"`
	LastText       string `json:"last_usable"`
	Prefix         int    `json:"prefix"`
	HostBits       int    `json:"host_bits"`
	TotalAddresses int    `json:"total_addresses"`
	UsableHosts    int    `json:"usable_hosts"`
}

// RangeInfo 计算地址在给定掩码下的网段边界
// 掩码必须连续（来自 ParseMask 或 MaskFromPrefix）
// /32 首末地址都是网络地址本身，/31 首末是网段的两端
func RangeInfo(ip, mask uint32) Range {
	network := NetworkAddress(ip, mask)
	broadcast := BroadcastAddress(network, mask)
	prefix := bits.OnesCount32(mask)
	hostBits := 32 - prefix

	r := Range{
		Network:        network,
		Broadcast:      broadcast,
		Prefix:         prefix,
		HostBits:       hostBits,
		TotalAddresses: 1 << hostBits,
		UsableHosts:    AvailableHosts(prefix),
	}

	switch prefix {
	case 32:
		r.FirstUsable = network
		r.LastUsable = network
	case 31:
		r.FirstUsable = network
		r.LastUsable = broadcast
	default:
		r.FirstUsable = network + 1
		r.LastUsable = broadcast - 1
	}

	r.NetworkText = FormatIPv4(r.Network)
	r.BroadcastText = FormatIPv4(r.Broadcast)
	r.FirstText = FormatIPv4(r.FirstUsable)
	r.LastText = FormatIPv4(r.LastUsable)
	return r
}

func (r Range) Headers() []string {
	return []string{"Field", "Value"}
}

func (r Range) Rows() [][]string {
	return [][]string{
		{"Network", fmt.Sprintf("%s/%d", r.NetworkText, r.Prefix)},
		{"Broadcast", r.BroadcastText},
		{"First Usable", r.FirstText},
		{"Last Usable", r.LastText},
		{"Host Bits", fmt.Sprintf("%d", r.HostBits)},
		{"Total Addresses", fmt.Sprintf("%d", r.TotalAddresses)},
		{"Usable Hosts", fmt.Sprintf("%d", r.UsableHosts)},
	}
}
