package reporter

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// WriteJson 将结果编码为 JSON 写入 w
func WriteJson(w io.Writer, result any, indent bool) error {
	enc := json.NewEncoder(w)
	if indent {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(result); err != nil {
		return fmt.Errorf("failed to encode json: %w", err)
	}
	return nil
}

// SaveJsonResult 将结果一次性保存为 JSON 文件
func SaveJsonResult(path string, result any, indent bool) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create json file: %w", err)
	}
	defer f.Close()

	return WriteJson(f, result, indent)
}

// JsonFileReporter 把结果写入 JSON 文件
type JsonFileReporter struct {
	path   string
	indent bool
}

func NewJsonFileReporter(path string, indent bool) *JsonFileReporter {
	return &JsonFileReporter{path: path, indent: indent}
}

func (r *JsonFileReporter) Report(ctx context.Context, result any) error {
	return SaveJsonResult(r.path, result, r.indent)
}
