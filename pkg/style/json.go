package style

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"unicode"

	"github.com/charmbracelet/lipgloss"
)

// PrintJSON 将任意值以美化（缩进）并带有简洁高亮的方式输出到 writer
//
// 入参支持:
//   - string / []byte: 视为原始 JSON 文本，校验并缩进
//   - 其他任意 Go 值: 使用 [json.MarshalIndent] 编码后再渲染
func PrintJSON(w io.Writer, v any) error {
	pretty, err := FormatJSON(v)
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(w, colorizeJSON(pretty))
	return err
}

// PrintJSONLine 将单行 JSON 文本以高亮样式输出到 writer
func PrintJSONLine(w io.Writer, s string) error {
	_, err := fmt.Fprint(w, colorizeJSON(s))
	return err
}

// FormatJSON 返回美化（缩进）的 JSON 字符串参见 PrintJSON 的入参规则
func FormatJSON(v any) (string, error) {
	switch x := v.(type) {
	case nil:
		return "null\n", nil
	case string:
		return indentJSON([]byte(x))
	case []byte:
		return indentJSON(x)
	default:
		b, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return "", err
		}
		if len(b) == 0 || b[len(b)-1] != '\n' {
			b = append(b, '\n')
		}
		return string(b), nil
	}
}

// indentJSON 校验并缩进原始 JSON 字节
func indentJSON(src []byte) (string, error) {
	src = bytes.TrimSpace(src)
	if len(src) == 0 {
		return "null\n", nil
	}
	var out bytes.Buffer
	if err := json.Indent(&out, src, "", "  "); err != nil {
		return "", err
	}
	if out.Len() == 0 || out.Bytes()[out.Len()-1] != '\n' {
		_ = out.WriteByte('\n')
	}
	return out.String(), nil
}

// colorizeJSON 对有效的 JSON 文本做轻量高亮
// 只对语义 token 着色，缩进与空白保持原样
func colorizeJSON(s string) string {
	keyStyle := lipgloss.NewStyle().Foreground(ColorJSONKey).Bold(true)
	strStyle := lipgloss.NewStyle().Foreground(ColorJSONValue)
	numStyle := lipgloss.NewStyle().Foreground(ColorJSONNumber)
	boolStyle := lipgloss.NewStyle().Foreground(ColorJSONBool)
	nullStyle := lipgloss.NewStyle().Foreground(ColorJSONNull)
	punctStyle := lipgloss.NewStyle().Foreground(ColorJSONPunct)

	var b bytes.Buffer
	i := 0
	for i < len(s) {
		ch := s[i]
		switch {
		case ch == '"':
			token, next := readJSONString(s, i)
			// 字符串后的第一个非空白字符是 ':' 则视为键名
			j := next
			for j < len(s) && unicode.IsSpace(rune(s[j])) {
				j++
			}
			if j < len(s) && s[j] == ':' {
				b.WriteString(keyStyle.Render(token))
			} else {
				b.WriteString(strStyle.Render(token))
			}
			i = next
		case ch == '{' || ch == '}' || ch == '[' || ch == ']' || ch == ':' || ch == ',':
			b.WriteString(punctStyle.Render(string(ch)))
			i++
		case ch == '-' || (ch >= '0' && ch <= '9'):
			j := readJSONNumber(s, i)
			b.WriteString(numStyle.Render(s[i:j]))
			i = j
		case wordAt(s, i, "true"):
			b.WriteString(boolStyle.Render("true"))
			i += 4
		case wordAt(s, i, "false"):
			b.WriteString(boolStyle.Render("false"))
			i += 5
		case wordAt(s, i, "null"):
			b.WriteString(nullStyle.Render("null"))
			i += 4
		default:
			b.WriteByte(ch)
			i++
		}
	}
	return b.String()
}

// readJSONString 读取从 i 开始（含引号）的字符串 token，返回 token 与结束位置
func readJSONString(s string, i int) (string, int) {
	j := i + 1
	for j < len(s) {
		if s[j] == '\\' {
			j += 2
			continue
		}
		if s[j] == '"' {
			j++
			break
		}
		j++
	}
	return s[i:j], j
}

// readJSONNumber 返回从 i 开始的数字 token 的结束位置（半开区间）
func readJSONNumber(s string, i int) int {
	j := i
	if j < len(s) && s[j] == '-' {
		j++
	}
	digits := func() {
		for j < len(s) && s[j] >= '0' && s[j] <= '9' {
			j++
		}
	}
	digits()
	if j < len(s) && s[j] == '.' {
		j++
		digits()
	}
	if j < len(s) && (s[j] == 'e' || s[j] == 'E') {
		j++
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		digits()
	}
	return j
}

// wordAt 判断位置 i 处是否是独立的字面量 pref（前后均非标识符字符）
func wordAt(s string, i int, pref string) bool {
	if i+len(pref) > len(s) || s[i:i+len(pref)] != pref {
		return false
	}
	isIdent := func(r rune) bool {
		return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
	}
	if i > 0 && isIdent(rune(s[i-1])) {
		return false
	}
	if i+len(pref) < len(s) && isIdent(rune(s[i+len(pref)])) {
		return false
	}
	return true
}
