/**
 * 子网掩码运算
 * @author: sun977
 * @date: 2026.02.12
 * @description: 掩码与前缀长度互转、连续性校验、可用主机数计算
 */

package netcalc

import (
	"fmt"
	"math/bits"
)

// ParseMask 解析点分十进制掩码
// 掩码必须是连续的 1 后跟连续的 0，否则没有对应的前缀长度
func ParseMask(s string) (uint32, error) {
	mask, err := ParseIPv4(s)
	if err != nil {
		return 0, fmt.Errorf("invalid mask %q: %v", s, err)
	}
	if _, err := PrefixFromMask(mask); err != nil {
		return 0, err
	}
	return mask, nil
}

// MaskFromPrefix 由前缀长度生成掩码，/0 对应全零
func MaskFromPrefix(prefix int) uint32 {
	if prefix <= 0 {
		return 0
	}
	if prefix >= 32 {
		return ^uint32(0)
	}
	return ^uint32(0) << (32 - prefix)
}

// PrefixFromMask 由掩码求前缀长度，非连续掩码报错
func PrefixFromMask(mask uint32) (int, error) {
	prefix := bits.OnesCount32(mask)
	if MaskFromPrefix(prefix) != mask {
		return 0, fmt.Errorf("non-contiguous mask %s", FormatIPv4(mask))
	}
	return prefix, nil
}

// MaskBits 返回掩码的 32 位二进制串
func MaskBits(mask uint32) string {
	return fmt.Sprintf("%032b", mask)
}

// AvailableHosts 前缀长度对应的可用主机数
// /31 点对点两端都可用，/32 是单主机路由，其余扣除网络地址和广播地址
func AvailableHosts(prefix int) int {
	switch {
	case prefix >= 32:
		return 1
	case prefix == 31:
		return 2
	case prefix < 0:
		return 0
	default:
		return 1<<(32-prefix) - 2
	}
}

// MaskInfo 掩码分析摘要
type MaskInfo struct {
	Mask           uint32 `json:"-"`
	MaskText       string `json:"mask"`
	Prefix         int    `json:"prefix"`
	Bits           string `json:"bits"`
	TotalAddresses int    `json:"total_addresses"`
	UsableHosts    int    `json:"usable_hosts"`
}

// AnalyzeMask 解析掩码并给出完整摘要
func AnalyzeMask(s string) (*MaskInfo, error) {
	mask, err := ParseMask(s)
	if err != nil {
		return nil, err
	}
	prefix, err := PrefixFromMask(mask)
	if err != nil {
		return nil, err
	}

	return &MaskInfo{
		Mask:           mask,
		MaskText:       FormatIPv4(mask),
		Prefix:         prefix,
		Bits:           MaskBits(mask),
		TotalAddresses: 1 << (32 - prefix),
		UsableHosts:    AvailableHosts(prefix),
	}, nil
}

func (m MaskInfo) Headers() []string {
	return []string{"Field", "Value"}
}

func (m MaskInfo) Rows() [][]string {
	return [][]string{
		{"Netmask", m.MaskText},
		{"Prefix", fmt.Sprintf("/%d", m.Prefix)},
		{"Binary", m.Bits},
		{"Total Addresses", fmt.Sprintf("%d", m.TotalAddresses)},
		{"Usable Hosts", fmt.Sprintf("%d", m.UsableHosts)},
	}
}
