package style

import (
	"bytes"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// PrintYAML 将任意值编码为 YAML 并输出到 writer
func PrintYAML(w io.Writer, v any) error {
	s, err := FormatYAML(v)
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(w, s)
	return err
}

// FormatYAML 返回规范化缩进的 YAML 字符串
func FormatYAML(v any) (string, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return "", err
	}
	if err := enc.Close(); err != nil {
		return "", err
	}
	return buf.String(), nil
}
