/**
 * CIDR 解析与综合分析
 * @author: sun977
 * @date: 2026.02.12
 * @description: 严格解析 a.b.c.d/n 记法并汇总网段的全部计算结果
 */

package netcalc

import (
	"fmt"
	"strings"
)

// ParseCIDR 严格解析 CIDR 记法，前缀 0..32
func ParseCIDR(s string) (uint32, int, error) {
	s = strings.TrimSpace(s)
	idx := strings.IndexByte(s, '/')
	if idx < 0 {
		return 0, 0, fmt.Errorf("invalid cidr %q: missing prefix", s)
	}

	ip, err := ParseIPv4(s[:idx])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid cidr %q: %v", s, err)
	}

	prefixText := s[idx+1:]
	if prefixText == "" || len(prefixText) > 2 || (len(prefixText) == 2 && prefixText[0] == '0') {
		return 0, 0, fmt.Errorf("invalid cidr %q: bad prefix %q", s, prefixText)
	}
	prefix := 0
	for _, c := range prefixText {
		if c < '0' || c > '9' {
			return 0, 0, fmt.Errorf("invalid cidr %q: bad prefix %q", s, prefixText)
		}
		prefix = prefix*10 + int(c-'0')
	}
	if prefix > 32 {
		return 0, 0, fmt.Errorf("invalid cidr %q: prefix /%d out of range 0..32", s, prefix)
	}

	return ip, prefix, nil
}

// CIDRInfo CIDR 的网段综合摘要
type CIDRInfo struct {
	Input   string `json:"input"`
	IP      uint32 `json:"-"`
	IPText  string `json:"ip"`
	Prefix  int    `json:"prefix"`
	Mask    uint32 `json:"-"`
	MaskTxt string `json:"mask"`
	Range   Range  `json:"range"`
	Class   Class  `json:"class"`
	Kind    Kind   `json:"kind"`
}

// Analyze 解析 CIDR 并生成完整的网段摘要
func Analyze(cidr string) (*CIDRInfo, error) {
	ip, prefix, err := ParseCIDR(cidr)
	if err != nil {
		return nil, err
	}

	mask := MaskFromPrefix(prefix)
	return &CIDRInfo{
		Input:   cidr,
		IP:      ip,
		IPText:  FormatIPv4(ip),
		Prefix:  prefix,
		Mask:    mask,
		MaskTxt: FormatIPv4(mask),
		Range:   RangeInfo(ip, mask),
		Class:   NetworkClass(ip),
		Kind:    AddressKind(ip),
	}, nil
}

func (c CIDRInfo) Headers() []string {
	return []string{"Field", "Value"}
}

func (c CIDRInfo) Rows() [][]string {
	rows := [][]string{
		{"Address", c.IPText},
		{"Netmask", fmt.Sprintf("%s (/%d)", c.MaskTxt, c.Prefix)},
		{"Class", string(c.Class)},
		{"Kind", string(c.Kind)},
	}
	return append(rows, c.Range.Rows()...)
}
