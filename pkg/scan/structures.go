package scan

import "sort"

// detectStructures 根据顶层名称集合推导项目布局标签
//
// 规则彼此独立，可同时命中多条；输出为排序去重后的标签列表
func detectStructures(topLevel []string) []string {
	names := make(map[string]struct{}, len(topLevel))
	for _, n := range topLevel {
		names[n] = struct{}{}
	}
	has := func(name string) bool {
		_, ok := names[name]
		return ok
	}

	structures := make([]string, 0, 5)
	if has("src") {
		structures = append(structures, "src_layout")
	}
	if has("packages") || has("libs") {
		structures = append(structures, "monorepo")
	}
	if has("setup.py") || has("pyproject.toml") {
		structures = append(structures, "python_package")
	}
	if has("package.json") {
		structures = append(structures, "node_project")
	}
	if has("Makefile") {
		structures = append(structures, "makefile")
	}

	sort.Strings(structures)
	return structures
}
