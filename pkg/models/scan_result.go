package models

// 信号类别常量报告中的每个条目都属于其中之一
const (
	CategoryLanguage       = "language"
	CategoryFramework      = "framework"
	CategoryTool           = "tool"
	CategoryInfrastructure = "infrastructure"
)

// LanguageEntry 表示报告中单个语言的占比条目
// Percentage 以字节数占比计算，保留一位小数
type LanguageEntry struct {
	Name       string  `json:"name" yaml:"name" toml:"name"`
	Category   string  `json:"category" yaml:"category" toml:"category"`
	Percentage float64 `json:"percentage" yaml:"percentage" toml:"percentage"`
}

// SignalEntry 表示一个检测到的技术信号 (框架 / 工具 / 语言标记 / 基础设施)
// Name 是展示名称，在单个结果的同一集合内唯一
type SignalEntry struct {
	Name     string `json:"name" yaml:"name" toml:"name"`
	Category string `json:"category" yaml:"category" toml:"category"`
}

// ScanResult 是一次扫描的最终报告，直接序列化为 JSON 输出
// 下游程序会原样嵌入该 JSON 文档，字段名即对外契约，不可变更
type ScanResult struct {
	Languages             []LanguageEntry `json:"languages" yaml:"languages" toml:"languages"`
	Frameworks            []SignalEntry   `json:"frameworks" yaml:"frameworks" toml:"frameworks"`
	ProjectStructures     []string        `json:"project_structures" yaml:"project_structures" toml:"project_structures"`
	InfrastructureSignals []SignalEntry   `json:"infrastructure_signals" yaml:"infrastructure_signals" toml:"infrastructure_signals"`
}
