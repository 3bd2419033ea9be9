package reporter

import (
	"context"
	"fmt"

	"github.com/pterm/pterm"

	"neoprobe/internal/core/model"
)

// ConsoleReporter 控制台输出
type ConsoleReporter struct {
	theme Theme
}

func NewConsoleReporter(theme Theme) *ConsoleReporter {
	return &ConsoleReporter{theme: theme}
}

// Report 渲染单个结果
// 综合诊断报告逐段渲染，TabularData 渲染为表格，其余原样输出
func (r *ConsoleReporter) Report(ctx context.Context, result any) error {
	if result == nil {
		return nil
	}

	switch v := result.(type) {
	case *model.DiagnosticsReport:
		return r.printDiagnostics(v)
	case *model.NetEnvReport:
		return r.printNetEnv(v)
	case *model.PingReport:
		return r.printPing(v)
	case *model.ServiceScanReport:
		return r.printScan(v)
	case TabularData:
		return r.printTable(v)
	default:
		pterm.Println(v)
		return nil
	}
}

// Section 打印一个小节标题
func (r *ConsoleReporter) Section(title string) {
	pterm.DefaultSection.
		WithLevel(2).
		WithStyle(r.theme.SectionStyle).
		Println(title)
}

// Line 打印一行不着色的说明文字
func (r *ConsoleReporter) Line(text string) {
	pterm.Println(text)
}

// Success 按主题的成功样式打印
func (r *ConsoleReporter) Success(text string) {
	r.theme.SuccessStyle.Println(text)
}

// Failure 按主题的失败样式打印
func (r *ConsoleReporter) Failure(text string) {
	r.theme.ErrorStyle.Println(text)
}

func (r *ConsoleReporter) printTable(data TabularData) error {
	return r.printTableFromData(data.Headers(), data.Rows())
}

func (r *ConsoleReporter) printTableFromData(headers []string, rows [][]string) error {
	if len(rows) == 0 {
		return nil
	}

	tableData := pterm.TableData{headers}
	tableData = append(tableData, rows...)

	err := pterm.DefaultTable.
		WithHasHeader(true).
		WithBoxed(r.theme.Boxed).
		WithHeaderStyle(r.theme.HeaderStyle).
		WithSeparatorStyle(r.theme.SeparatorStyle).
		WithData(tableData).
		Render()
	if err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}
	return nil
}

// printPing 渲染逐包表格并附上统计摘要
func (r *ConsoleReporter) printPing(report *model.PingReport) error {
	if err := r.printTable(report); err != nil {
		return err
	}
	r.Line(report.Summary())
	return nil
}

// printScan 渲染端口表格并附上开放计数
func (r *ConsoleReporter) printScan(report *model.ServiceScanReport) error {
	if err := r.printTable(report); err != nil {
		return err
	}
	r.Line(fmt.Sprintf("%d of %d ports open (scan took %d ms)",
		report.OpenCount, len(report.Results), report.ElapsedMs))
	return nil
}

// printNetEnv 分段渲染主机概要和网卡清单
func (r *ConsoleReporter) printNetEnv(report *model.NetEnvReport) error {
	r.Section("Host")
	if err := r.printTableFromData([]string{"Field", "Value"}, report.HostRows()); err != nil {
		return err
	}

	r.Section("Interfaces")
	if len(report.Interfaces) == 0 {
		r.Line("no interfaces found")
		return nil
	}
	return r.printTable(report)
}

// printDiagnostics 逐段渲染综合诊断报告
func (r *ConsoleReporter) printDiagnostics(report *model.DiagnosticsReport) error {
	r.Section("ICMP Echo")
	if report.Ping != nil {
		if err := r.printPing(report.Ping); err != nil {
			return err
		}
	} else {
		r.Failure("ping phase failed: " + report.PingErr)
	}

	r.Section("Service Discovery")
	if report.Scan != nil {
		if err := r.printScan(report.Scan); err != nil {
			return err
		}
	} else {
		r.Failure("discovery phase failed: " + report.ScanErr)
	}

	r.Section("Verdict")
	if report.OverallReachable {
		r.Success(report.Verdict())
	} else {
		r.Failure(report.Verdict())
	}
	return nil
}
