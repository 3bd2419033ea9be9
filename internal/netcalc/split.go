/**
 * 网段等分
 * @author: sun977
 * @date: 2026.02.12
 * @description: 把一个网段等分为 2 的幂个子网，子网必须不细于 /30
 */

package netcalc

import (
	"fmt"
	"math/bits"
)

// maxSplitPrefix 等分产生的子网前缀上限，再细就没有可用主机区间了
const maxSplitPrefix = 30

// Subnet 等分出的单个子网
type Subnet struct {
	CIDR        string `json:"cidr"`
	Network     string `json:"network"`
	Broadcast   string `json:"broadcast"`
	FirstUsable string `json:"first_usable"`
	LastUsable  string `json:"last_usable"`
}

// SplitPlan 等分方案
type SplitPlan struct {
	Parent    string   `json:"parent"`
	NewPrefix int      `json:"new_prefix"`
	Subnets   []Subnet `json:"subnets"`
}

// Split 把 cidr 等分为 n 个子网
// n 必须是大于 1 的 2 的幂；宿主段有主机位时按其网络地址对齐
func Split(cidr string, n int) (*SplitPlan, error) {
	ip, prefix, err := ParseCIDR(cidr)
	if err != nil {
		return nil, err
	}
	if n <= 1 || n&(n-1) != 0 {
		return nil, fmt.Errorf("subnet count %d must be a power of two greater than 1", n)
	}

	extraBits := bits.TrailingZeros(uint(n))
	newPrefix := prefix + extraBits
	if newPrefix > maxSplitPrefix {
		return nil, fmt.Errorf("splitting /%d into %d subnets needs /%d, finer than /%d",
			prefix, n, newPrefix, maxSplitPrefix)
	}

	parentMask := MaskFromPrefix(prefix)
	newMask := MaskFromPrefix(newPrefix)
	base := NetworkAddress(ip, parentMask)
	step := uint32(1) << (32 - newPrefix)

	plan := &SplitPlan{
		Parent:    fmt.Sprintf("%s/%d", FormatIPv4(base), prefix),
		NewPrefix: newPrefix,
		Subnets:   make([]Subnet, 0, n),
	}
	for i := 0; i < n; i++ {
		r := RangeInfo(base+uint32(i)*step, newMask)
		plan.Subnets = append(plan.Subnets, Subnet{
			CIDR:        fmt.Sprintf("%s/%d", r.NetworkText, newPrefix),
			Network:     r.NetworkText,
			Broadcast:   r.BroadcastText,
			FirstUsable: r.FirstText,
			LastUsable:  r.LastText,
		})
	}
	return plan, nil
}

func (p SplitPlan) Headers() []string {
	return []string{"#", "Subnet", "Broadcast", "Usable Range"}
}

func (p SplitPlan) Rows() [][]string {
	rows := make([][]string, 0, len(p.Subnets))
	for i, s := range p.Subnets {
		rows = append(rows, []string{
			fmt.Sprintf("%d", i+1),
			s.CIDR,
			s.Broadcast,
			fmt.Sprintf("%s - %s", s.FirstUsable, s.LastUsable),
		})
	}
	return rows
}
