package model

import (
	"fmt"
	"strings"
	"time"
)

// InterfaceInfo 单个网卡的静态信息
type InterfaceInfo struct {
	Name  string   `json:"name"`
	MTU   int      `json:"mtu"`
	MAC   string   `json:"mac,omitempty"`
	Flags string   `json:"flags,omitempty"`
	Addrs []string `json:"addrs,omitempty"`
}

// NetEnvReport 本机网络环境快照
// 诊断会话的起点：这台机器长什么样、有哪些网卡和地址
type NetEnvReport struct {
	Hostname    string          `json:"hostname"`
	OS          string          `json:"os"`
	Platform    string          `json:"platform,omitempty"`
	KernelArch  string          `json:"kernel_arch,omitempty"`
	UptimeSec   uint64          `json:"uptime_sec"`
	CPUCores    int             `json:"cpu_cores"`
	MemoryTotal uint64          `json:"memory_total_bytes"`
	Interfaces  []InterfaceInfo `json:"interfaces"`
	GeneratedAt time.Time       `json:"generated_at"`
}

// Headers 实现 TabularData 接口，逐网卡一行
func (r NetEnvReport) Headers() []string {
	return []string{"Interface", "MTU", "Flags", "Addresses"}
}

// Rows 实现 TabularData 接口
func (r NetEnvReport) Rows() [][]string {
	rows := make([][]string, 0, len(r.Interfaces))
	for _, iface := range r.Interfaces {
		rows = append(rows, []string{
			iface.Name,
			fmt.Sprintf("%d", iface.MTU),
			iface.Flags,
			strings.Join(iface.Addrs, " "),
		})
	}
	return rows
}

// HostRows 主机概要的键值行，供控制台分段渲染
func (r NetEnvReport) HostRows() [][]string {
	uptime := (time.Duration(r.UptimeSec) * time.Second).String()
	memory := fmt.Sprintf("%.1f GiB", float64(r.MemoryTotal)/(1<<30))
	return [][]string{
		{"Hostname", r.Hostname},
		{"OS", r.OS},
		{"Platform", r.Platform},
		{"Arch", r.KernelArch},
		{"Uptime", uptime},
		{"CPU Cores", fmt.Sprintf("%d", r.CPUCores)},
		{"Memory", memory},
	}
}
