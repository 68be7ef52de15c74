package style

import (
	"fmt"
	"io"

	toml "github.com/pelletier/go-toml/v2"
)

// PrintTOML 将任意值编码为 TOML 并输出到 writer
func PrintTOML(w io.Writer, v any) error {
	s, err := FormatTOML(v)
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(w, s)
	return err
}

// FormatTOML 返回 TOML 编码后的字符串
func FormatTOML(v any) (string, error) {
	b, err := toml.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
