// Package scan 实现 repoview 的核心引擎：目录遍历、语言分类、
// 指示器匹配、清单解析与多根合并
package scan

import (
	"fmt"
	"os"
	"sort"

	"github.com/yeisme/repoview/pkg/models"
)

// Options 控制扫描行为所有字段零值即为合理默认（遵循 gitignore 除外，
// 请使用 DefaultOptions 获取推荐配置）
type Options struct {
	RespectGitignore bool     // 是否遵循版本控制忽略规则
	Exclude          []string // 追加剪枝的目录名（与内置 skipDirs 合并生效）
	MaxFileSizeBytes int64    // 超过该大小的文件跳过字节统计（0 表示不限制）
}

// DefaultOptions 返回默认扫描配置
func DefaultOptions() Options {
	return Options{RespectGitignore: true}
}

// RawScanResult 单个根目录的原始扫描数据，是多根精确合并的中间表示
// 字节计数在此保留，百分比换算推迟到 finalize，避免对已舍入值做合并
type RawScanResult struct {
	BytesByLang map[string]int64  // 语言名 → 累计字节数
	TopLevel    []string          // 根目录直接子项名称（含补查注入的隐藏指示器）
	Frameworks  map[string]string // 展示名 → 类别（framework/tool/language）
	Infra       map[string]string // 展示名 → 类别（固定为 infrastructure）
	Structures  []string          // 布局标签
}

// NewRawScanResult 创建空的原始扫描结果
func NewRawScanResult() *RawScanResult {
	return &RawScanResult{
		BytesByLang: make(map[string]int64),
		TopLevel:    make([]string, 0),
		Frameworks:  make(map[string]string),
		Infra:       make(map[string]string),
		Structures:  make([]string, 0),
	}
}

// scanRaw 对单个根目录执行完整的原始扫描
//
// 检测顺序是显式契约：文件指示器先写入，清单解析器后写入，
// 同名冲突时清单解析器的类别获胜
func scanRaw(root string, opts Options) (*RawScanResult, error) {
	info, err := os.Stat(root)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("not a directory: %s", root)
	}

	raw := NewRawScanResult()
	walkRoot(root, opts, raw)
	raw.TopLevel = checkHiddenIndicators(root, raw.TopLevel)

	detectFileIndicators(raw.TopLevel, raw.Frameworks, raw.Infra)
	raw.Structures = detectStructures(raw.TopLevel)
	detectManifests(root, raw.Frameworks)
	return raw, nil
}

// mergeRaw 将 src 合并进 dst：字节数逐语言求和，信号映射取并集
// （后合并的根在键冲突时获胜），布局标签取并集
func mergeRaw(dst, src *RawScanResult) {
	for lang, b := range src.BytesByLang {
		dst.BytesByLang[lang] += b
	}
	for name, category := range src.Frameworks {
		dst.Frameworks[name] = category
	}
	for name, category := range src.Infra {
		dst.Infra[name] = category
	}
	dst.Structures = append(dst.Structures, src.Structures...)
}

// finalize 将原始数据转换为最终报告：百分比换算、稳定排序、信号集物化
func finalize(raw *RawScanResult) *models.ScanResult {
	return &models.ScanResult{
		Languages:             buildLanguageList(raw.BytesByLang),
		Frameworks:            sortedSignalEntries(raw.Frameworks),
		ProjectStructures:     sortedUnique(raw.Structures),
		InfrastructureSignals: sortedSignalEntries(raw.Infra),
	}
}

// sortedUnique 返回排序去重后的副本
func sortedUnique(tags []string) []string {
	seen := make(map[string]struct{}, len(tags))
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		if _, dup := seen[t]; dup {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}

// ScanDirectory 扫描单个根目录并返回最终报告
func ScanDirectory(root string, opts Options) (*models.ScanResult, error) {
	raw, err := scanRaw(root, opts)
	if err != nil {
		return nil, err
	}
	return finalize(raw), nil
}

// ScanDirectories 顺序扫描多个根目录并合并为单一报告
//
// 每个根独立产出原始数据，在字节层面合并后才做一次百分比换算，
// 保证合并结果数值精确（对已舍入的百分比求平均会累积误差，明确不采用）
func ScanDirectories(roots []string, opts Options) (*models.ScanResult, error) {
	merged := NewRawScanResult()
	for _, root := range roots {
		raw, err := scanRaw(root, opts)
		if err != nil {
			return nil, err
		}
		mergeRaw(merged, raw)
	}
	return finalize(merged), nil
}
