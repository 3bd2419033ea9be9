package netcalc

import (
	"testing"
)

func TestSplitIntoQuarters(t *testing.T) {
	plan, err := Split("192.168.1.0/24", 4)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if plan.NewPrefix != 26 {
		t.Errorf("Expected new prefix 26, got %d", plan.NewPrefix)
	}
	if len(plan.Subnets) != 4 {
		t.Fatalf("Expected 4 subnets, got %d", len(plan.Subnets))
	}

	wantNetworks := []string{"192.168.1.0", "192.168.1.64", "192.168.1.128", "192.168.1.192"}
	wantBroadcasts := []string{"192.168.1.63", "192.168.1.127", "192.168.1.191", "192.168.1.255"}
	for i, s := range plan.Subnets {
		if s.Network != wantNetworks[i] {
			t.Errorf("Expected subnet %d network %s, got %s", i, wantNetworks[i], s.Network)
		}
		if s.Broadcast != wantBroadcasts[i] {
			t.Errorf("Expected subnet %d broadcast %s, got %s", i, wantBroadcasts[i], s.Broadcast)
		}
		if s.CIDR != wantNetworks[i]+"/26" {
			t.Errorf("Expected subnet %d cidr %s/26, got %s", i, wantNetworks[i], s.CIDR)
		}
	}
}

func TestSplitTilesParentExactly(t *testing.T) {
	plan, err := Split("10.20.0.0/16", 8)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	parent, prefix, _ := ParseCIDR(plan.Parent)
	parentRange := RangeInfo(parent, MaskFromPrefix(prefix))

	// 1. 第一个子网从宿主段网络地址开始
	first, _ := ParseIPv4(plan.Subnets[0].Network)
	if first != parentRange.Network {
		t.Errorf("Expected first subnet to start at parent network")
	}

	// 2. 相邻子网无缝衔接
	for i := 1; i < len(plan.Subnets); i++ {
		prevBroadcast, _ := ParseIPv4(plan.Subnets[i-1].Broadcast)
		network, _ := ParseIPv4(plan.Subnets[i].Network)
		if network != prevBroadcast+1 {
			t.Errorf("Expected subnet %d to start right after previous broadcast, got gap", i)
		}
	}

	// 3. 最后一个子网到宿主段广播地址结束
	last, _ := ParseIPv4(plan.Subnets[len(plan.Subnets)-1].Broadcast)
	if last != parentRange.Broadcast {
		t.Errorf("Expected last subnet to end at parent broadcast")
	}
}

func TestSplitRejectsBadCount(t *testing.T) {
	for _, n := range []int{0, 1, 3, 6, -2} {
		if _, err := Split("192.168.1.0/24", n); err == nil {
			t.Errorf("Expected error for count %d, got nil", n)
		}
	}
}

func TestSplitRejectsTooFine(t *testing.T) {
	// /24 分 128 份需要 /31
	if _, err := Split("192.168.1.0/24", 128); err == nil {
		t.Errorf("Expected error for plan finer than /30, got nil")
	}
	// /30 再分需要 /31
	if _, err := Split("192.168.1.0/30", 2); err == nil {
		t.Errorf("Expected error for splitting /30, got nil")
	}
	// /28 分 4 份正好 /30
	if _, err := Split("192.168.1.0/28", 4); err != nil {
		t.Errorf("Expected /30 plan to be accepted, got %v", err)
	}
}

func TestSplitNormalizesHostBits(t *testing.T) {
	plan, err := Split("192.168.1.77/24", 2)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if plan.Parent != "192.168.1.0/24" {
		t.Errorf("Expected parent normalized to 192.168.1.0/24, got %s", plan.Parent)
	}
	if plan.Subnets[0].Network != "192.168.1.0" || plan.Subnets[1].Network != "192.168.1.128" {
		t.Errorf("Expected halves at .0 and .128, got %s and %s",
			plan.Subnets[0].Network, plan.Subnets[1].Network)
	}
}
