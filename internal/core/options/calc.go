package options

import (
	"fmt"
)

// 计算器命令的参数都是纯文本输入
// 这里只做存在性和范围校验，格式合法性由 netcalc 的严格解析兜底

// MaskOptions probe calc mask 的参数
type MaskOptions struct {
	Mask string
}

func (o *MaskOptions) Validate() error {
	if o.Mask == "" {
		return fmt.Errorf("mask is required")
	}
	return nil
}

// RangeOptions probe calc range 的参数
type RangeOptions struct {
	IP   string
	Mask string
}

func (o *RangeOptions) Validate() error {
	if o.IP == "" {
		return fmt.Errorf("ip is required")
	}
	if o.Mask == "" {
		return fmt.Errorf("mask is required")
	}
	return nil
}

// CidrOptions probe calc cidr 的参数
type CidrOptions struct {
	CIDR string
}

func (o *CidrOptions) Validate() error {
	if o.CIDR == "" {
		return fmt.Errorf("cidr is required")
	}
	return nil
}

// ClassOptions probe calc class 的参数
type ClassOptions struct {
	IP string
}

func (o *ClassOptions) Validate() error {
	if o.IP == "" {
		return fmt.Errorf("ip is required")
	}
	return nil
}

// CheckOptions probe calc check 的参数
type CheckOptions struct {
	IP   string
	CIDR string
}

func (o *CheckOptions) Validate() error {
	if o.IP == "" {
		return fmt.Errorf("ip is required")
	}
	if o.CIDR == "" {
		return fmt.Errorf("cidr is required")
	}
	return nil
}

// ConvertOptions probe calc convert 的参数
type ConvertOptions struct {
	IP string
}

func (o *ConvertOptions) Validate() error {
	if o.IP == "" {
		return fmt.Errorf("ip is required")
	}
	return nil
}

// HostsOptions probe calc hosts 的参数
type HostsOptions struct {
	CIDR   string
	Window int
}

func NewHostsOptions() *HostsOptions {
	return &HostsOptions{
		Window: 8,
	}
}

func (o *HostsOptions) Validate() error {
	if o.CIDR == "" {
		return fmt.Errorf("cidr is required")
	}
	if o.Window <= 0 {
		return fmt.Errorf("window must be positive, got %d", o.Window)
	}
	return nil
}

// SplitOptions probe calc split 的参数
type SplitOptions struct {
	CIDR  string
	Count int
}

func (o *SplitOptions) Validate() error {
	if o.CIDR == "" {
		return fmt.Errorf("cidr is required")
	}
	if o.Count <= 1 {
		return fmt.Errorf("subnet count must be greater than 1, got %d", o.Count)
	}
	return nil
}

// IPv6Options probe calc ipv6 的参数
type IPv6Options struct {
	Address string
	Convert bool
}

func (o *IPv6Options) Validate() error {
	if o.Address == "" {
		return fmt.Errorf("address is required")
	}
	return nil
}

// LoopbackOptions probe calc loopback 的参数
type LoopbackOptions struct {
	IP string
}

func (o *LoopbackOptions) Validate() error {
	if o.IP == "" {
		return fmt.Errorf("ip is required")
	}
	return nil
}
