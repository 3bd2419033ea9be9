package probe

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestDiscoverMixedPorts(t *testing.T) {
	ln, openPort := newLoopbackListener(t)
	defer ln.Close()
	closedPort := freeLoopbackPort(t)

	d := &ServiceDiscoverer{
		Timeout: 2 * time.Second,
		Catalog: []CatalogEntry{
			{openPort, "TESTSVC"},
			{closedPort, "NOSVC"},
		},
	}

	report, err := d.Discover(context.Background(), "127.0.0.1")
	if err != nil {
		t.Fatalf("Discover failed: %v", err)
	}

	if len(report.Results) != 2 {
		t.Fatalf("Expected 2 results, got %d", len(report.Results))
	}
	if !report.Results[0].Open {
		t.Errorf("Listening port %d reported closed (detail: %s)", openPort, report.Results[0].Detail)
	}
	if report.Results[1].Open {
		t.Errorf("Closed port %d reported open", closedPort)
	}
	if report.OpenCount != 1 {
		t.Errorf("Expected OpenCount 1, got %d", report.OpenCount)
	}
	if report.Results[0].Service != "TESTSVC" || report.Results[1].Service != "NOSVC" {
		t.Errorf("Service names lost: %+v", report.Results)
	}
}

func TestDiscoverOneResultPerEntry(t *testing.T) {
	// 每个目录条目恰好一条结果，顺序与目录一致，与开放与否无关
	d := NewServiceDiscoverer(2 * time.Second)

	report, err := d.Discover(context.Background(), "127.0.0.1")
	if err != nil {
		t.Fatalf("Discover failed: %v", err)
	}

	catalog := DefaultCatalog()
	if len(report.Results) != len(catalog) {
		t.Fatalf("Expected %d results, got %d", len(catalog), len(report.Results))
	}
	for i, res := range report.Results {
		if res.Port != catalog[i].Port || res.Service != catalog[i].Service {
			t.Errorf("Result %d = %d/%s, want %d/%s",
				i, res.Port, res.Service, catalog[i].Port, catalog[i].Service)
		}
	}
}

func TestDiscoverSharedDeadline(t *testing.T) {
	// 不可路由目标: 所有端口挂起，总耗时约等于一个共享窗口而不是窗口×13
	d := NewServiceDiscoverer(500 * time.Millisecond)

	start := time.Now()
	report, err := d.Discover(context.Background(), "198.51.100.1")
	elapsed := time.Since(start)

	if err != nil {
		t.Fatalf("Discover failed: %v", err)
	}
	if elapsed > 2*time.Second {
		t.Errorf("Scan took %v, shared deadline not honored", elapsed)
	}
	if len(report.Results) != 13 {
		t.Errorf("Expected 13 results, got %d", len(report.Results))
	}
	for _, res := range report.Results {
		if res.Open {
			t.Errorf("Non-routable target port %d reported open", res.Port)
		}
	}
}

func TestDiscoverInvalidTarget(t *testing.T) {
	d := NewServiceDiscoverer(time.Second)
	if _, err := d.Discover(context.Background(), "host.example"); !errors.Is(err, ErrInvalidTarget) {
		t.Errorf("Expected ErrInvalidTarget, got %v", err)
	}
}
