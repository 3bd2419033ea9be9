//go:build windows

package probe

import (
	"context"
	"net"
	"strconv"
	"sync"
	"time"

	"neoprobe/internal/core/model"
)

// scanCatalog Windows 退化实现
// 每个端口一个连接协程，整个批次共享一个 context 截止时间，
// 结果槽位互不重叠，无需加锁
func scanCatalog(ip string, catalog []CatalogEntry, timeout time.Duration) ([]model.ServiceScanResult, error) {
	results := make([]model.ServiceScanResult, len(catalog))

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	var wg sync.WaitGroup
	dialer := &net.Dialer{}

	for i, entry := range catalog {
		results[i] = model.ServiceScanResult{Port: entry.Port, Service: entry.Service}

		wg.Add(1)
		go func(idx, port int) {
			defer wg.Done()

			conn, err := dialer.DialContext(ctx, "tcp4", net.JoinHostPort(ip, strconv.Itoa(port)))
			if err == nil {
				conn.Close()
				results[idx].Open = true
				return
			}
			if ctx.Err() == nil {
				results[idx].Detail = err.Error()
			}
		}(i, entry.Port)
	}
	wg.Wait()

	return results, nil
}
