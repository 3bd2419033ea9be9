package options

import (
	"fmt"

	"neoprobe/internal/pkg/utils"
)

// ReportOptions probe diag report 的参数
type ReportOptions struct {
	Target      string
	Watch       bool
	IntervalSec int
}

func NewReportOptions() *ReportOptions {
	return &ReportOptions{
		IntervalSec: 30,
	}
}

func (o *ReportOptions) Validate() error {
	if o.Target == "" {
		return fmt.Errorf("target is required")
	}
	if !utils.IsValidIPv4(o.Target) {
		return fmt.Errorf("target %q is not a valid IPv4 address", o.Target)
	}
	if o.Watch && o.IntervalSec <= 0 {
		return fmt.Errorf("watch interval must be positive, got %d", o.IntervalSec)
	}
	return nil
}
