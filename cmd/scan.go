package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/yeisme/repoview/pkg/configs"
	"github.com/yeisme/repoview/pkg/models"
	"github.com/yeisme/repoview/pkg/scan"
)

// runScan 执行扫描并输出报告
//
// 根目录选择规则：--paths 与位置参数合并为同一个根集合；
// 任一根不是目录时，向 stderr 输出错误并以退出码 1 结束
func runScan(cmd *cobra.Command, args []string) {
	start := time.Now()

	roots := resolveRoots(cmd, args)
	for _, root := range roots {
		info, err := os.Stat(root)
		if err != nil || !info.IsDir() {
			fmt.Fprintf(os.Stderr, "Error: not a directory: %s\n", root)
			os.Exit(1)
		}
	}

	opts := scanOptions()

	var (
		result *models.ScanResult
		err    error
	)
	if len(roots) == 1 {
		result, err = scan.ScanDirectory(roots[0], opts)
	} else {
		result, err = scan.ScanDirectories(roots, opts)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := writeResult(cmd, result); err != nil {
		// 序列化失败属于程序错误，内部数据应当总是可序列化的
		log.Fatal().Err(err).Msg("failed to serialize scan result")
	}

	if statsFlag {
		printStats(scanStats{
			Elapsed:    time.Since(start),
			Languages:  len(result.Languages),
			Frameworks: len(result.Frameworks),
			Infra:      len(result.InfrastructureSignals),
		})
	}
}

// resolveRoots 根据标志与位置参数确定扫描根目录集合
//
// --paths 打开时位置参数作为附加根并入集合：`--paths a b c` 经 pflag
// 解析后 b、c 落在位置参数里，三者都要参与扫描
func resolveRoots(_ *cobra.Command, args []string) []string {
	if len(pathsFlag) > 0 {
		roots := make([]string, 0, len(pathsFlag)+len(args))
		roots = append(roots, pathsFlag...)
		roots = append(roots, args...)
		return roots
	}
	if len(args) > 0 {
		return []string{args[0]}
	}
	return []string{"."}
}

// scanOptions 从配置构造引擎选项
func scanOptions() scan.Options {
	opts := scan.DefaultOptions()
	if repoviewCtx != nil && repoviewCtx.Config != nil {
		sc := repoviewCtx.Config.Scan
		opts.RespectGitignore = sc.RespectGitignore
		opts.Exclude = sc.Exclude
		opts.MaxFileSizeBytes = sc.MaxFileSize
	}
	return opts
}

// writeResult 按选定格式输出报告JSON 是默认格式，也是唯一的机器契约；
// 其余格式面向终端阅读
func writeResult(cmd *cobra.Command, result *models.ScanResult) error {
	format, err := configs.ParseOutputFormat(formatFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	out := cmd.OutOrStdout()

	switch format {
	case configs.FormatJSON:
		return writeJSONResult(out, result)
	case configs.FormatYAML:
		return writeYAMLResult(out, result)
	case configs.FormatTOML:
		return writeTOMLResult(out, result)
	case configs.FormatTable:
		return writeTableResult(out, result)
	case configs.FormatMarkdown:
		return writeMarkdownResult(out, result)
	}
	return fmt.Errorf("unsupported output format: %s", format)
}

// marshalJSONResult 将报告编码为 JSON 文本（--pretty 控制缩进）
func marshalJSONResult(result *models.ScanResult) (string, error) {
	var (
		b   []byte
		err error
	)
	if prettyFlag {
		b, err = json.MarshalIndent(result, "", "  ")
	} else {
		b, err = json.Marshal(result)
	}
	if err != nil {
		return "", err
	}
	return string(b), nil
}
