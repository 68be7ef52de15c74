package cmd

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/yeisme/repoview/pkg/models"
	"github.com/yeisme/repoview/pkg/style"
)

// writeJSONResult 输出 JSON 报告--color 打开时在终端上做语法高亮，
// 默认输出纯文本以保证可被下游程序原样嵌入
func writeJSONResult(w io.Writer, result *models.ScanResult) error {
	s, err := marshalJSONResult(result)
	if err != nil {
		return err
	}
	if colorFlag {
		if prettyFlag {
			return style.PrintJSON(w, s)
		}
		if err := style.PrintJSONLine(w, s); err != nil {
			return err
		}
		_, err = fmt.Fprintln(w)
		return err
	}
	_, err = fmt.Fprintln(w, s)
	return err
}

func writeYAMLResult(w io.Writer, result *models.ScanResult) error {
	return style.PrintYAML(w, result)
}

func writeTOMLResult(w io.Writer, result *models.ScanResult) error {
	return style.PrintTOML(w, result)
}

// writeTableResult 以终端表格形式输出报告的四个部分
func writeTableResult(w io.Writer, result *models.ScanResult) error {
	langRows := make([][]string, 0, len(result.Languages))
	for _, l := range result.Languages {
		langRows = append(langRows, []string{
			l.Name,
			strconv.FormatFloat(l.Percentage, 'f', 1, 64) + "%",
		})
	}
	if err := style.PrintTable(w, []string{"Language", "Share"}, langRows, 0); err != nil {
		return err
	}

	signalRows := make([][]string, 0, len(result.Frameworks)+len(result.InfrastructureSignals))
	for _, s := range result.Frameworks {
		signalRows = append(signalRows, []string{s.Name, s.Category})
	}
	for _, s := range result.InfrastructureSignals {
		signalRows = append(signalRows, []string{s.Name, s.Category})
	}
	if err := style.PrintTable(w, []string{"Signal", "Category"}, signalRows, 0); err != nil {
		return err
	}

	if len(result.ProjectStructures) > 0 {
		_, err := fmt.Fprintf(w, "Structures: %s\n", strings.Join(result.ProjectStructures, ", "))
		return err
	}
	return nil
}

// writeMarkdownResult 将报告渲染为 Markdown 后经 glamour 输出
func writeMarkdownResult(w io.Writer, result *models.ScanResult) error {
	var b strings.Builder
	b.WriteString("# Technology Inventory\n\n")

	b.WriteString("## Languages\n\n")
	if len(result.Languages) == 0 {
		b.WriteString("_none detected_\n\n")
	} else {
		b.WriteString("| Language | Share |\n|---|---|\n")
		for _, l := range result.Languages {
			fmt.Fprintf(&b, "| %s | %.1f%% |\n", l.Name, l.Percentage)
		}
		b.WriteString("\n")
	}

	writeSignalSection(&b, "Frameworks & Tools", result.Frameworks)
	writeSignalSection(&b, "Infrastructure", result.InfrastructureSignals)

	b.WriteString("## Project Structures\n\n")
	if len(result.ProjectStructures) == 0 {
		b.WriteString("_none detected_\n")
	} else {
		for _, tag := range result.ProjectStructures {
			fmt.Fprintf(&b, "- `%s`\n", tag)
		}
	}

	return style.RenderMarkdown(w, b.String(), "")
}

func writeSignalSection(b *strings.Builder, title string, entries []models.SignalEntry) {
	fmt.Fprintf(b, "## %s\n\n", title)
	if len(entries) == 0 {
		b.WriteString("_none detected_\n\n")
		return
	}
	b.WriteString("| Name | Category |\n|---|---|\n")
	for _, e := range entries {
		fmt.Fprintf(b, "| %s | %s |\n", e.Name, e.Category)
	}
	b.WriteString("\n")
}
