package options

import (
	"fmt"

	"neoprobe/internal/pkg/utils"
)

// TcpProbeOptions probe diag tcp 的参数
type TcpProbeOptions struct {
	Target     string
	Port       int
	TimeoutSec int
}

func NewTcpProbeOptions() *TcpProbeOptions {
	return &TcpProbeOptions{
		TimeoutSec: 5,
	}
}

func (o *TcpProbeOptions) Validate() error {
	if o.Target == "" {
		return fmt.Errorf("target is required")
	}
	if !utils.IsValidIPv4(o.Target) {
		return fmt.Errorf("target %q is not a valid IPv4 address", o.Target)
	}
	if !utils.IsValidPort(o.Port) {
		return fmt.Errorf("port %d is out of range 1..65535", o.Port)
	}
	if o.TimeoutSec <= 0 {
		return fmt.Errorf("timeout must be positive, got %d", o.TimeoutSec)
	}
	return nil
}
