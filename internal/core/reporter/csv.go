package reporter

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
)

// CsvFileReporter 把表格化结果写入 CSV 文件
type CsvFileReporter struct {
	path string
}

func NewCsvFileReporter(path string) *CsvFileReporter {
	return &CsvFileReporter{path: path}
}

func (r *CsvFileReporter) Report(ctx context.Context, result any) error {
	tabular, ok := result.(TabularData)
	if !ok {
		return fmt.Errorf("result is not tabular, csv export unsupported")
	}
	return SaveCsvResult(r.path, tabular)
}

// SaveCsvResult 将表格化结果一次性导出为 CSV
func SaveCsvResult(path string, data TabularData) error {
	rows := data.Rows()
	if len(rows) == 0 {
		return fmt.Errorf("no tabular data found to export")
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create csv file: %v", err)
	}
	defer f.Close()

	// 写入 UTF-8 BOM，防止 Excel 打开乱码
	f.WriteString("\xEF\xBB\xBF")

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write(data.Headers()); err != nil {
		return fmt.Errorf("failed to write headers: %v", err)
	}
	if err := w.WriteAll(rows); err != nil {
		return fmt.Errorf("failed to write rows: %v", err)
	}

	return nil
}
