package netcalc

import (
	"testing"
)

func TestNetworkAndBroadcast(t *testing.T) {
	ip, _ := ParseIPv4("192.168.1.130")
	mask, _ := ParseMask("255.255.255.192")

	network := NetworkAddress(ip, mask)
	if FormatIPv4(network) != "192.168.1.128" {
		t.Errorf("Expected network 192.168.1.128, got %s", FormatIPv4(network))
	}

	broadcast := BroadcastAddress(network, mask)
	if FormatIPv4(broadcast) != "192.168.1.191" {
		t.Errorf("Expected broadcast 192.168.1.191, got %s", FormatIPv4(broadcast))
	}
}

func TestRangeInfo(t *testing.T) {
	tests := []struct {
		name      string
		ip        string
		prefix    int
		network   string
		broadcast string
		first     string
		last      string
		total     int
		usable    int
	}{
		{"C类网段", "192.168.1.77", 24, "192.168.1.0", "192.168.1.255", "192.168.1.1", "192.168.1.254", 256, 254},
		{"四分之一段", "10.0.0.130", 26, "10.0.0.128", "10.0.0.191", "10.0.0.129", "10.0.0.190", 64, 62},
		{"点对点", "10.0.0.4", 31, "10.0.0.4", "10.0.0.5", "10.0.0.4", "10.0.0.5", 2, 2},
		{"单主机", "10.0.0.9", 32, "10.0.0.9", "10.0.0.9", "10.0.0.9", "10.0.0.9", 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ip, err := ParseIPv4(tt.ip)
			if err != nil {
				t.Fatalf("Expected valid ip, got %v", err)
			}

			r := RangeInfo(ip, MaskFromPrefix(tt.prefix))
			if r.NetworkText != tt.network {
				t.Errorf("Expected network %s, got %s", tt.network, r.NetworkText)
			}
			if r.BroadcastText != tt.broadcast {
				t.Errorf("Expected broadcast %s, got %s", tt.broadcast, r.BroadcastText)
			}
			if r.FirstText != tt.first {
				t.Errorf("Expected first usable %s, got %s", tt.first, r.FirstText)
			}
			if r.LastText != tt.last {
				t.Errorf("Expected last usable %s, got %s", tt.last, r.LastText)
			}
			if r.TotalAddresses != tt.total {
				t.Errorf("Expected %d total addresses, got %d", tt.total, r.TotalAddresses)
			}
			if r.UsableHosts != tt.usable {
				t.Errorf("Expected %d usable hosts, got %d", tt.usable, r.UsableHosts)
			}
			if r.Prefix != tt.prefix {
				t.Errorf("Expected prefix %d, got %d", tt.prefix, r.Prefix)
			}
			if r.HostBits != 32-tt.prefix {
				t.Errorf("Expected %d host bits, got %d", 32-tt.prefix, r.HostBits)
			}
		})
	}
}

func TestContains(t *testing.T) {
	network, _ := ParseIPv4("192.168.1.0")
	mask := MaskFromPrefix(24)

	tests := []struct {
		ip   string
		want bool
	}{
		{"192.168.1.1", true},
		{"192.168.1.254", true},
		{"192.168.1.0", true},
		{"192.168.1.255", true},
		{"192.168.2.1", false},
		{"10.0.0.1", false},
	}

	for _, tt := range tests {
		ip, err := ParseIPv4(tt.ip)
		if err != nil {
			t.Fatalf("Expected valid ip %q, got %v", tt.ip, err)
		}
		if got := Contains(network, mask, ip); got != tt.want {
			t.Errorf("Expected Contains=%v for %s in 192.168.1.0/24, got %v", tt.want, tt.ip, got)
		}
	}

	// 1. /0 包含一切
	if !Contains(0, MaskFromPrefix(0), 0xDEADBEEF) {
		t.Errorf("Expected /0 to contain every address")
	}

	// 2. /32 只包含自身
	host, _ := ParseIPv4("10.0.0.9")
	if !Contains(host, MaskFromPrefix(32), host) {
		t.Errorf("Expected /32 to contain itself")
	}
	if Contains(host, MaskFromPrefix(32), host+1) {
		t.Errorf("Expected /32 to exclude neighbor address")
	}

	// 3. 网络参数带主机位时按掩码对齐后再比较
	unaligned, _ := ParseIPv4("192.168.1.77")
	member, _ := ParseIPv4("192.168.1.5")
	if !Contains(unaligned, mask, member) {
		t.Errorf("Expected masked comparison to align unaligned network argument")
	}
}
