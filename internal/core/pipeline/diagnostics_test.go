package pipeline

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"neoprobe/internal/core/model"
	"neoprobe/internal/core/probe"
)

type fakePinger struct {
	report *model.PingReport
	err    error
	calls  int
	order  *[]string
}

func (f *fakePinger) Ping(ctx context.Context, ip string) (*model.PingReport, error) {
	f.calls++
	if f.order != nil {
		*f.order = append(*f.order, "ping")
	}
	return f.report, f.err
}

type fakeDiscoverer struct {
	report *model.ServiceScanReport
	err    error
	calls  int
	order  *[]string
}

func (f *fakeDiscoverer) Discover(ctx context.Context, ip string) (*model.ServiceScanReport, error) {
	f.calls++
	if f.order != nil {
		*f.order = append(*f.order, "discover")
	}
	return f.report, f.err
}

func TestDiagnosticsBothPhases(t *testing.T) {
	var order []string
	pinger := &fakePinger{
		report: &model.PingReport{TargetIP: "192.0.2.1", Sent: 3, Received: 2, Reachable: true},
		order:  &order,
	}
	discoverer := &fakeDiscoverer{
		report: &model.ServiceScanReport{TargetIP: "192.0.2.1", OpenCount: 1},
		order:  &order,
	}

	report, err := NewDiagnosticsRunnerWith(pinger, discoverer).Run(context.Background(), "192.0.2.1")
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	// 1. 两个阶段各执行一次，Ping 在前
	if pinger.calls != 1 || discoverer.calls != 1 {
		t.Errorf("Expected one call per phase, got ping=%d discover=%d", pinger.calls, discoverer.calls)
	}
	if len(order) != 2 || order[0] != "ping" || order[1] != "discover" {
		t.Errorf("Phase order wrong: %v", order)
	}

	// 2. 结论取自 ICMP 阶段
	if !report.OverallReachable {
		t.Errorf("Expected reachable verdict")
	}
	if report.Ping == nil || report.Scan == nil {
		t.Errorf("Expected both phase reports populated")
	}
	if report.GeneratedAt.IsZero() {
		t.Errorf("GeneratedAt not set")
	}
}

func TestDiagnosticsPingFailureStillScans(t *testing.T) {
	pinger := &fakePinger{err: probe.ErrRawChannelUnavailable}
	discoverer := &fakeDiscoverer{
		report: &model.ServiceScanReport{TargetIP: "192.0.2.1", OpenCount: 2},
	}

	report, err := NewDiagnosticsRunnerWith(pinger, discoverer).Run(context.Background(), "192.0.2.1")
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	// ICMP 阶段失败不中止扫描阶段
	if discoverer.calls != 1 {
		t.Errorf("Discover phase skipped after ping failure")
	}
	if report.PingErr == "" {
		t.Errorf("Expected ping error recorded")
	}
	if report.Scan == nil || report.Scan.OpenCount != 2 {
		t.Errorf("Scan report lost: %+v", report.Scan)
	}
	// 结论只看 ICMP，扫描到开放端口也不算可达
	if report.OverallReachable {
		t.Errorf("Open ports must not make the verdict reachable")
	}
}

func TestDiagnosticsScanFailureKeepsPing(t *testing.T) {
	pinger := &fakePinger{
		report: &model.PingReport{TargetIP: "192.0.2.1", Sent: 3, Received: 3, Reachable: true},
	}
	discoverer := &fakeDiscoverer{err: errors.New("select: bad file descriptor")}

	report, err := NewDiagnosticsRunnerWith(pinger, discoverer).Run(context.Background(), "192.0.2.1")
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if report.ScanErr == "" {
		t.Errorf("Expected scan error recorded")
	}
	if !report.OverallReachable {
		t.Errorf("Ping verdict lost on scan failure")
	}
}

func TestDiagnosticsInvalidTarget(t *testing.T) {
	runner := NewDiagnosticsRunnerWith(&fakePinger{}, &fakeDiscoverer{})
	if _, err := runner.Run(context.Background(), "10.0.0"); !errors.Is(err, probe.ErrInvalidTarget) {
		t.Errorf("Expected ErrInvalidTarget, got %v", err)
	}
}

func TestWatchRunsCycles(t *testing.T) {
	pinger := &fakePinger{
		report: &model.PingReport{TargetIP: "192.0.2.1", Sent: 3, Received: 3, Reachable: true},
	}
	discoverer := &fakeDiscoverer{report: &model.ServiceScanReport{TargetIP: "192.0.2.1"}}

	runner := NewDiagnosticsRunnerWith(pinger, discoverer)
	w := NewWatchRunner(runner, 20*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	var cycles int32
	done := make(chan error, 1)

	go func() {
		done <- w.Watch(ctx, "192.0.2.1", func(report *model.DiagnosticsReport, err error) {
			if err != nil {
				t.Errorf("Cycle error: %v", err)
			}
			if atomic.AddInt32(&cycles, 1) >= 3 {
				cancel()
			}
		})
	}()

	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("Expected context.Canceled, got %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("Watch did not stop after cancel")
	}

	if atomic.LoadInt32(&cycles) < 3 {
		t.Errorf("Expected at least 3 cycles, got %d", cycles)
	}
}
