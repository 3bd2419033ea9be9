/**
 * 本机网络环境采集
 * @author: sun977
 * @date: 2026.02.12
 * @description: 采集主机概要和网卡清单，作为一次诊断会话的环境基线
 */

package monitor

import (
	"fmt"
	"os"
	"runtime"
	"strings"
	"time"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/mem"
	psnet "github.com/shirou/gopsutil/v3/net"

	"neoprobe/internal/core/model"
	"neoprobe/internal/pkg/logger"
)

// CollectNetEnv 采集本机网络环境快照
// 主机概要取不到时降级为运行时信息并告警，网卡清单取不到才算失败
func CollectNetEnv() (*model.NetEnvReport, error) {
	report := &model.NetEnvReport{GeneratedAt: time.Now()}

	hInfo, err := host.Info()
	if err != nil {
		logger.Warnf("net env: host info unavailable: %v", err)
	} else {
		report.Hostname = hInfo.Hostname
		report.OS = hInfo.OS
		report.Platform = fmt.Sprintf("%s %s", hInfo.Platform, hInfo.PlatformVersion)
		report.KernelArch = hInfo.KernelArch
		report.UptimeSec = hInfo.Uptime
	}
	if report.Hostname == "" {
		if name, err := os.Hostname(); err == nil {
			report.Hostname = name
		}
	}
	if report.OS == "" {
		report.OS = runtime.GOOS
	}
	if report.KernelArch == "" {
		report.KernelArch = runtime.GOARCH
	}

	cores, err := cpu.Counts(true)
	if err != nil || cores == 0 {
		cores = runtime.NumCPU()
	}
	report.CPUCores = cores

	if vMem, err := mem.VirtualMemory(); err != nil {
		logger.Warnf("net env: memory info unavailable: %v", err)
	} else {
		report.MemoryTotal = vMem.Total
	}

	ifaces, err := psnet.Interfaces()
	if err != nil {
		return nil, fmt.Errorf("failed to list network interfaces: %w", err)
	}
	for _, iface := range ifaces {
		info := model.InterfaceInfo{
			Name:  iface.Name,
			MTU:   iface.MTU,
			MAC:   iface.HardwareAddr,
			Flags: strings.Join(iface.Flags, ","),
		}
		for _, addr := range iface.Addrs {
			info.Addrs = append(info.Addrs, addr.Addr)
		}
		report.Interfaces = append(report.Interfaces, info)
	}

	logger.Debugf("net env: host=%s interfaces=%d", report.Hostname, len(report.Interfaces))
	return report, nil
}
