package netcalc

import (
	"testing"
)

func TestEnumerateHostsSmallNetwork(t *testing.T) {
	// 主机位未对齐的输入按网络地址归一化
	e, err := EnumerateHosts("192.0.2.10/29", 0)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if e.CIDR != "192.0.2.8/29" {
		t.Errorf("Expected normalized cidr 192.0.2.8/29, got %s", e.CIDR)
	}
	if e.UsableHosts != 6 {
		t.Errorf("Expected 6 usable hosts, got %d", e.UsableHosts)
	}
	if len(e.Hosts) != 6 {
		t.Fatalf("Expected 6 listed hosts, got %d", len(e.Hosts))
	}
	if e.Hosts[0] != "192.0.2.9" || e.Hosts[5] != "192.0.2.14" {
		t.Errorf("Expected hosts 192.0.2.9 .. 192.0.2.14, got %s .. %s", e.Hosts[0], e.Hosts[5])
	}
	if len(e.Head) != 0 || len(e.Tail) != 0 || e.Elided != 0 {
		t.Errorf("Expected no windowing for small network")
	}
}

func TestEnumerateHostsPointToPoint(t *testing.T) {
	e, err := EnumerateHosts("10.0.0.4/31", 0)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(e.Hosts) != 2 || e.Hosts[0] != "10.0.0.4" || e.Hosts[1] != "10.0.0.5" {
		t.Errorf("Expected both /31 ends listed, got %v", e.Hosts)
	}
}

func TestEnumerateHostsSingleHost(t *testing.T) {
	e, err := EnumerateHosts("10.0.0.9/32", 0)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(e.Hosts) != 1 || e.Hosts[0] != "10.0.0.9" {
		t.Errorf("Expected single host 10.0.0.9, got %v", e.Hosts)
	}
}

func TestEnumerateHostsWindowed(t *testing.T) {
	e, err := EnumerateHosts("198.51.100.0/24", 4)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	// 1. 大网段不做全量枚举
	if len(e.Hosts) != 0 {
		t.Fatalf("Expected windowed mode, got %d full hosts", len(e.Hosts))
	}

	// 2. 首尾窗口各 4 个
	if len(e.Head) != 4 || len(e.Tail) != 4 {
		t.Fatalf("Expected 4 head and 4 tail entries, got %d and %d", len(e.Head), len(e.Tail))
	}
	if e.Head[0] != "198.51.100.1" || e.Head[3] != "198.51.100.4" {
		t.Errorf("Expected head 198.51.100.1 .. 198.51.100.4, got %v", e.Head)
	}
	if e.Tail[0] != "198.51.100.251" || e.Tail[3] != "198.51.100.254" {
		t.Errorf("Expected tail 198.51.100.251 .. 198.51.100.254, got %v", e.Tail)
	}

	// 3. 省略数 = 254 - 8
	if e.Elided != 246 {
		t.Errorf("Expected 246 elided, got %d", e.Elided)
	}

	// 4. 表格行带省略标记
	rows := e.Rows()
	if len(rows) != 9 {
		t.Fatalf("Expected 9 rows (4 + marker + 4), got %d", len(rows))
	}
	if rows[4][0] != "..." {
		t.Errorf("Expected elision marker row, got %v", rows[4])
	}
	if rows[8][0] != "254" || rows[8][1] != "198.51.100.254" {
		t.Errorf("Expected last row numbered 254, got %v", rows[8])
	}
}

func TestEnumerateHostsWindowCoversAll(t *testing.T) {
	// /25 共 128 个地址超出全量阈值，但窗口足够大时仍然全列
	e, err := EnumerateHosts("10.0.0.0/25", 100)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(e.Hosts) != 126 {
		t.Errorf("Expected all 126 hosts listed, got %d", len(e.Hosts))
	}
	if e.Elided != 0 {
		t.Errorf("Expected no elision, got %d", e.Elided)
	}
}

func TestEnumerateHostsInvalid(t *testing.T) {
	if _, err := EnumerateHosts("10.0.0.0", 0); err == nil {
		t.Errorf("Expected error for missing prefix, got nil")
	}
	if _, err := EnumerateHosts("300.0.0.0/24", 0); err == nil {
		t.Errorf("Expected error for invalid address, got nil")
	}
}
