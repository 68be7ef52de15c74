package scan

import (
	"math"
	"sort"

	"github.com/yeisme/repoview/pkg/models"
)

var (
	// ExtToLang 扩展名到语言名称的映射表
	// 区分大小写，唯一的例外是 R 语言的单字母扩展名（.r / .R 都映射到 R）
	ExtToLang = map[string]string{
		".py": "Python",

		".js":  "JavaScript",
		".jsx": "JavaScript",
		".ts":  "TypeScript",
		".tsx": "TypeScript",

		".rs": "Rust",
		".go": "Go",
		".rb": "Ruby",

		".java":  "Java",
		".kt":    "Kotlin",
		".swift": "Swift",

		// C/C++ 系列
		".c":   "C",
		".h":   "C",
		".cpp": "C++",
		".cc":  "C++",
		".cxx": "C++",
		".hpp": "C++",

		".cs":    "C#",
		".php":   "PHP",
		".scala": "Scala",
		".r":     "R",
		".R":     "R",
		".dart":  "Dart",
		".lua":   "Lua",
		".ex":    "Elixir",
		".exs":   "Elixir",
		".erl":   "Erlang",
		".hrl":   "Erlang",
		".hs":    "Haskell",
		".ml":    "OCaml",
		".mli":   "OCaml",
		".clj":   "Clojure",
		".cljs":  "Clojure",
		".jl":    "Julia",
		".zig":   "Zig",

		// 前端组件与样式
		".svelte": "Svelte",
		".vue":    "Vue",
		".html":   "HTML",
		".htm":    "HTML",
		".css":    "CSS",
		".scss":   "SCSS",
		".sass":   "SCSS",
		".less":   "Less",

		".sql":  "SQL",
		".sh":   "Shell",
		".bash": "Shell",
		".zsh":  "Shell",
		".ps1":  "PowerShell",
	}

	// BinaryExts 二进制 / 编译产物 / 媒体 / 归档扩展名
	// 命中此表的文件在字节统计之前被整体跳过
	BinaryExts = map[string]struct{}{
		".png": {}, ".jpg": {}, ".jpeg": {}, ".gif": {}, ".bmp": {},
		".ico": {}, ".svg": {}, ".webp": {},
		".woff": {}, ".woff2": {}, ".ttf": {}, ".eot": {}, ".otf": {},
		".mp3": {}, ".mp4": {}, ".wav": {}, ".avi": {}, ".mov": {}, ".mkv": {},
		".zip": {}, ".tar": {}, ".gz": {}, ".bz2": {}, ".xz": {}, ".7z": {}, ".rar": {},
		".exe": {}, ".dll": {}, ".so": {}, ".dylib": {}, ".a": {}, ".o": {}, ".obj": {},
		".wasm": {}, ".pyc": {}, ".pyo": {}, ".class": {},
		".pdf": {}, ".doc": {}, ".docx": {}, ".xls": {}, ".xlsx": {},
		".db": {}, ".sqlite": {}, ".sqlite3": {},
	}
)

// languageForExt 返回扩展名（含点号）对应的语言名称
// 未知扩展名返回 ok=false，该文件不参与语言统计但仍可被其它检测器使用
func languageForExt(ext string) (string, bool) {
	lang, ok := ExtToLang[ext]
	return lang, ok
}

// isBinaryExt 判断扩展名是否在二进制跳过表中
func isBinaryExt(ext string) bool {
	_, ok := BinaryExts[ext]
	return ok
}

// buildLanguageList 将按语言累计的字节数转换为排序后的 LanguageEntry 列表
//
// 百分比 = round(bytes/total*1000)/10，保留一位小数
// 按百分比降序排列；百分比相同时按名称升序，保证输出确定性
// 总字节数为 0 时返回空列表（没有除零路径）
func buildLanguageList(bytesByLang map[string]int64) []models.LanguageEntry {
	entries := make([]models.LanguageEntry, 0, len(bytesByLang))

	var total int64
	for _, b := range bytesByLang {
		total += b
	}
	if total == 0 {
		return entries
	}

	for name, b := range bytesByLang {
		entries = append(entries, models.LanguageEntry{
			Name:       name,
			Category:   models.CategoryLanguage,
			Percentage: math.Round(float64(b)/float64(total)*1000) / 10,
		})
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Percentage != entries[j].Percentage {
			return entries[i].Percentage > entries[j].Percentage
		}
		return entries[i].Name < entries[j].Name
	})
	return entries
}
