package options

import (
	"fmt"
	"path/filepath"
	"strings"

	"neoprobe/internal/core/reporter"
)

// OutputOptions 定义结果输出的通用参数
type OutputOptions struct {
	Theme  string // --theme
	Output string // -o, --output
}

func NewOutputOptions() *OutputOptions {
	return &OutputOptions{
		Theme: reporter.ThemeDefault,
	}
}

func (o *OutputOptions) Validate() error {
	if o.Theme != "" {
		known := false
		for _, name := range reporter.KnownThemes() {
			if o.Theme == name {
				known = true
				break
			}
		}
		if !known {
			return fmt.Errorf("unknown theme %q, choose one of %s",
				o.Theme, strings.Join(reporter.KnownThemes(), "/"))
		}
	}

	if o.Output != "" {
		switch strings.ToLower(filepath.Ext(o.Output)) {
		case ".json", ".csv":
		default:
			return fmt.Errorf("output file %q must end with .json or .csv", o.Output)
		}
	}
	return nil
}
