/**
 * 地址多进制表示
 * @author: sun977
 * @date: 2026.02.12
 * @description: 点分十进制、无符号整数、十六进制、二进制和 base-256 逐位分解
 */

package netcalc

import (
	"fmt"
	"strings"
)

// ConvertedIP 同一地址的各种表示形式
type ConvertedIP struct {
	Dotted    string `json:"dotted"`
	Value     uint32 `json:"value"`
	Hex       string `json:"hex"`
	Binary    string `json:"binary"`
	Breakdown string `json:"breakdown"`
}

// Formats 生成地址的全部表示形式
// Binary 按八位一组用点分隔，Breakdown 展示 base-256 的逐位展开
func Formats(ip uint32) ConvertedIP {
	groups := make([]string, 4)
	terms := make([]string, 4)
	for i := 0; i < 4; i++ {
		octet := ip >> (24 - i*8) & 0xFF
		groups[i] = fmt.Sprintf("%08b", octet)
		terms[i] = fmt.Sprintf("%d*256^%d", octet, 3-i)
	}

	return ConvertedIP{
		Dotted:    FormatIPv4(ip),
		Value:     ip,
		Hex:       fmt.Sprintf("0x%08X", ip),
		Binary:    strings.Join(groups, "."),
		Breakdown: fmt.Sprintf("%s = %d", strings.Join(terms, " + "), ip),
	}
}

func (c ConvertedIP) Headers() []string {
	return []string{"Field", "Value"}
}

func (c ConvertedIP) Rows() [][]string {
	return [][]string{
		{"Dotted", c.Dotted},
		{"Unsigned", fmt.Sprintf("%d", c.Value)},
		{"Hex", c.Hex},
		{"Binary", c.Binary},
		{"Base-256", c.Breakdown},
	}
}
