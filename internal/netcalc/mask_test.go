package netcalc

import (
	"testing"
)

func TestMaskFromPrefix(t *testing.T) {
	tests := []struct {
		prefix int
		want   uint32
	}{
		{0, 0},
		{1, 0x80000000},
		{8, 0xFF000000},
		{12, 0xFFF00000},
		{24, 0xFFFFFF00},
		{31, 0xFFFFFFFE},
		{32, 0xFFFFFFFF},
	}

	for _, tt := range tests {
		if got := MaskFromPrefix(tt.prefix); got != tt.want {
			t.Errorf("Expected mask 0x%08X for /%d, got 0x%08X", tt.want, tt.prefix, got)
		}
	}
}

func TestPrefixFromMask(t *testing.T) {
	// 1. 连续掩码还原前缀长度
	valid := map[uint32]int{
		0:          0,
		0xFF000000: 8,
		0xFFFFFF00: 24,
		0xFFFFFFFC: 30,
		0xFFFFFFFF: 32,
	}
	for mask, want := range valid {
		got, err := PrefixFromMask(mask)
		if err != nil {
			t.Errorf("Expected no error for 0x%08X, got %v", mask, err)
			continue
		}
		if got != want {
			t.Errorf("Expected prefix %d for 0x%08X, got %d", want, mask, got)
		}
	}

	// 2. 非连续掩码报错
	for _, mask := range []uint32{0xFF00FF00, 0xFFFFFF01, 0x00FFFFFF, 0x80000001} {
		if _, err := PrefixFromMask(mask); err == nil {
			t.Errorf("Expected error for non-contiguous mask 0x%08X, got nil", mask)
		}
	}
}

func TestParseMask(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    uint32
		wantErr bool
	}{
		{"C类掩码", "255.255.255.0", 0xFFFFFF00, false},
		{"全零掩码", "0.0.0.0", 0, false},
		{"主机掩码", "255.255.255.255", 0xFFFFFFFF, false},
		{"非连续掩码", "255.0.255.0", 0, true},
		{"非法地址", "255.255.256.0", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseMask(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Errorf("Expected error for %q, got 0x%08X", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("Expected no error for %q, got %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("Expected 0x%08X, got 0x%08X", tt.want, got)
			}
		})
	}
}

func TestAvailableHosts(t *testing.T) {
	tests := []struct {
		prefix int
		want   int
	}{
		{8, 16777214},
		{24, 254},
		{30, 2},
		{31, 2}, // 点对点两端都可用
		{32, 1}, // 单主机路由
		{0, 4294967294},
	}

	for _, tt := range tests {
		if got := AvailableHosts(tt.prefix); got != tt.want {
			t.Errorf("Expected %d usable hosts for /%d, got %d", tt.want, tt.prefix, got)
		}
	}
}

func TestMaskBits(t *testing.T) {
	got := MaskBits(0xFFFFFF00)
	want := "11111111111111111111111100000000"
	if got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
	if len(got) != 32 {
		t.Errorf("Expected 32-char string, got %d chars", len(got))
	}

	if got := MaskBits(0); got != "00000000000000000000000000000000" {
		t.Errorf("Expected all-zero bits, got %q", got)
	}
}

func TestAnalyzeMask(t *testing.T) {
	info, err := AnalyzeMask("255.255.255.192")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if info.Prefix != 26 {
		t.Errorf("Expected prefix 26, got %d", info.Prefix)
	}
	if info.TotalAddresses != 64 {
		t.Errorf("Expected 64 total addresses, got %d", info.TotalAddresses)
	}
	if info.UsableHosts != 62 {
		t.Errorf("Expected 62 usable hosts, got %d", info.UsableHosts)
	}
	if info.MaskText != "255.255.255.192" {
		t.Errorf("Expected mask text 255.255.255.192, got %q", info.MaskText)
	}

	if _, err := AnalyzeMask("255.0.255.0"); err == nil {
		t.Errorf("Expected error for non-contiguous mask, got nil")
	}
}
