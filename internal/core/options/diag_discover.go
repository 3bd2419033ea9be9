package options

import (
	"fmt"

	"neoprobe/internal/pkg/utils"
)

// DiscoverOptions probe diag discover 的参数
type DiscoverOptions struct {
	Target     string
	TimeoutSec int
}

func NewDiscoverOptions() *DiscoverOptions {
	return &DiscoverOptions{
		TimeoutSec: 3,
	}
}

func (o *DiscoverOptions) Validate() error {
	if o.Target == "" {
		return fmt.Errorf("target is required")
	}
	if !utils.IsValidIPv4(o.Target) {
		return fmt.Errorf("target %q is not a valid IPv4 address", o.Target)
	}
	if o.TimeoutSec <= 0 {
		return fmt.Errorf("timeout must be positive, got %d", o.TimeoutSec)
	}
	return nil
}
