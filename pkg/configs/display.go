package configs

import (
	"fmt"
	"strings"
)

// OutputFormat 报告输出格式类型
type OutputFormat string

const (
	// FormatJSON JSON 输出（默认，下游程序消费的唯一契约格式）
	FormatJSON OutputFormat = "json"
	// FormatYAML YAML 输出
	FormatYAML OutputFormat = "yaml"
	// FormatTOML TOML 输出
	FormatTOML OutputFormat = "toml"
	// FormatTable 终端表格输出
	FormatTable OutputFormat = "table"
	// FormatMarkdown 渲染后的 Markdown 输出
	FormatMarkdown OutputFormat = "markdown"
)

// ValidFormats 返回所有有效的输出格式
func ValidFormats() []string {
	return []string{
		string(FormatJSON),
		string(FormatYAML),
		string(FormatTOML),
		string(FormatTable),
		string(FormatMarkdown),
	}
}

// ParseOutputFormat 解析输出格式字符串
func ParseOutputFormat(format string) (OutputFormat, error) {
	switch strings.ToLower(format) {
	case "", "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "toml":
		return FormatTOML, nil
	case "table":
		return FormatTable, nil
	case "markdown", "md":
		return FormatMarkdown, nil
	default:
		return "", fmt.Errorf("unsupported format '%s', supported formats: %s",
			format, strings.Join(ValidFormats(), ", "))
	}
}
