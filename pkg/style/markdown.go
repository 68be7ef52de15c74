package style

import (
	"fmt"
	"io"

	"github.com/charmbracelet/glamour"
)

// RenderMarkdown 渲染传入的 Markdown 文本并输出到指定 writer
// 基于终端宽度自动换行，宽度限制在 [80, 120]
func RenderMarkdown(w io.Writer, input string, theme string) error {
	if theme == "" {
		theme = "dracula"
	}
	width := detectTerminalWidth(w)
	if width <= 0 || width > 120 {
		width = 120
	}
	if width < 80 {
		width = 80
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(theme),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return err
	}
	out, err := r.Render(input)
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(w, out)
	return err
}
