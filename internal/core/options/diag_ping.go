package options

import (
	"fmt"

	"neoprobe/internal/pkg/utils"
)

// PingOptions probe diag ping 的参数
type PingOptions struct {
	Target     string
	Count      int
	TimeoutSec int
}

func NewPingOptions() *PingOptions {
	return &PingOptions{
		Count:      3,
		TimeoutSec: 5,
	}
}

func (o *PingOptions) Validate() error {
	if o.Target == "" {
		return fmt.Errorf("target is required")
	}
	if !utils.IsValidIPv4(o.Target) {
		return fmt.Errorf("target %q is not a valid IPv4 address", o.Target)
	}
	if o.Count <= 0 {
		return fmt.Errorf("packet count must be positive, got %d", o.Count)
	}
	if o.TimeoutSec <= 0 {
		return fmt.Errorf("timeout must be positive, got %d", o.TimeoutSec)
	}
	return nil
}
