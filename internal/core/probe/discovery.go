/**
 * 服务发现扫描
 * @author: sun977
 * @date: 2026.02.10
 * @description: 对固定端口目录的并发可达性扫描，全部连接共享一个截止时间
 */

package probe

import (
	"context"
	"fmt"
	"time"

	"neoprobe/internal/core/model"
	"neoprobe/internal/pkg/logger"
	"neoprobe/internal/pkg/utils"
)

// DefaultDiscoverTimeout 服务发现的默认共享等待窗口
const DefaultDiscoverTimeout = 3 * time.Second

// ServiceDiscoverer 端口目录扫描器
// 先发起全部非阻塞连接再统一等待，总耗时约等于一个超时窗口而不是超时×端口数
type ServiceDiscoverer struct {
	Timeout time.Duration
	Catalog []CatalogEntry
}

func NewServiceDiscoverer(timeout time.Duration) *ServiceDiscoverer {
	if timeout <= 0 {
		timeout = DefaultDiscoverTimeout
	}
	return &ServiceDiscoverer{
		Timeout: timeout,
		Catalog: DefaultCatalog(),
	}
}

// Discover 扫描目录中的全部端口
// 无论开放与否，每个目录条目恰好产生一条结果，顺序与目录一致
func (d *ServiceDiscoverer) Discover(ctx context.Context, ip string) (*model.ServiceScanReport, error) {
	if !utils.IsValidIPv4(ip) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidTarget, ip)
	}

	catalog := d.Catalog
	if len(catalog) == 0 {
		catalog = DefaultCatalog()
	}

	timeout := d.Timeout
	if deadline, ok := ctx.Deadline(); ok {
		if remain := time.Until(deadline); remain < timeout {
			timeout = remain
		}
	}

	logger.Debugf("service discovery: target=%s ports=%d timeout=%v", ip, len(catalog), timeout)

	start := time.Now()
	results, err := scanCatalog(ip, catalog, timeout)
	if err != nil {
		return nil, err
	}

	report := &model.ServiceScanReport{
		TargetIP:  ip,
		Results:   results,
		ElapsedMs: utils.ElapsedMillisecondsSince(start),
	}
	for _, r := range results {
		if r.Open {
			report.OpenCount++
		}
	}

	logger.Debugf("service discovery: target=%s open=%d elapsed=%dms",
		ip, report.OpenCount, report.ElapsedMs)
	return report, nil
}
