package scan

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/mod/modfile"

	"github.com/yeisme/repoview/pkg/models"
)

// depEntry 依赖关键字表的一条记录
// Key 是清单文件中的包名或关键字，Name 是报告中的展示名称
type depEntry struct {
	Key      string
	Name     string
	Category string
}

var (
	// npmPackages package.json dependencies/devDependencies 的精确键名表
	npmPackages = []depEntry{
		{"react", "React", models.CategoryFramework},
		{"react-native", "React Native", models.CategoryFramework},
		{"next", "Next.js", models.CategoryFramework},
		{"vue", "Vue", models.CategoryFramework},
		{"nuxt", "Nuxt", models.CategoryFramework},
		{"svelte", "Svelte", models.CategoryFramework},
		{"@angular/core", "Angular", models.CategoryFramework},
		{"express", "Express", models.CategoryFramework},
		{"fastify", "Fastify", models.CategoryFramework},
		{"gatsby", "Gatsby", models.CategoryFramework},
		{"remix", "Remix", models.CategoryFramework},
		{"@nestjs/core", "NestJS", models.CategoryFramework},
		{"koa", "Koa", models.CategoryFramework},
		{"tailwindcss", "Tailwind CSS", models.CategoryFramework},
		{"prisma", "Prisma", models.CategoryTool},
		{"mongoose", "Mongoose", models.CategoryTool},
		{"sequelize", "Sequelize", models.CategoryTool},
		{"jest", "Jest", models.CategoryTool},
		{"mocha", "Mocha", models.CategoryTool},
		{"webpack", "Webpack", models.CategoryTool},
		{"vite", "Vite", models.CategoryTool},
		{"typescript", "TypeScript", models.CategoryLanguage},
		{"three", "Three.js", models.CategoryFramework},
		{"electron", "Electron", models.CategoryFramework},
		{"socket.io", "Socket.IO", models.CategoryFramework},
		{"graphql", "GraphQL", models.CategoryTool},
		{"@apollo/client", "Apollo", models.CategoryFramework},
		{"redis", "Redis", models.CategoryTool},
		{"pg", "PostgreSQL", models.CategoryTool},
		{"mongodb", "MongoDB", models.CategoryTool},
		{"supabase", "Supabase", models.CategoryTool},
		{"firebase", "Firebase", models.CategoryTool},
	}

	// pythonPackages requirements.txt / pyproject.toml 共用的关键字表
	// 采用不区分大小写的子串匹配，允许来自注释的误报（轻量信号，不做精确解析）
	pythonPackages = []depEntry{
		{"django", "Django", models.CategoryFramework},
		{"flask", "Flask", models.CategoryFramework},
		{"fastapi", "FastAPI", models.CategoryFramework},
		{"tornado", "Tornado", models.CategoryFramework},
		{"celery", "Celery", models.CategoryTool},
		{"sqlalchemy", "SQLAlchemy", models.CategoryTool},
		{"pandas", "pandas", models.CategoryFramework},
		{"numpy", "NumPy", models.CategoryFramework},
		{"scipy", "SciPy", models.CategoryFramework},
		{"scikit-learn", "scikit-learn", models.CategoryFramework},
		{"tensorflow", "TensorFlow", models.CategoryFramework},
		{"torch", "PyTorch", models.CategoryFramework},
		{"pytest", "pytest", models.CategoryTool},
		{"pydantic", "Pydantic", models.CategoryTool},
		{"requests", "Requests", models.CategoryTool},
		{"boto3", "AWS SDK", models.CategoryTool},
		{"redis", "Redis", models.CategoryTool},
		{"psycopg2", "PostgreSQL", models.CategoryTool},
	}

	// rustCrates Cargo.toml 的关键字表（不区分大小写子串）
	rustCrates = []depEntry{
		{"actix-web", "Actix Web", models.CategoryFramework},
		{"axum", "Axum", models.CategoryFramework},
		{"rocket", "Rocket", models.CategoryFramework},
		{"tokio", "Tokio", models.CategoryTool},
		{"serde", "Serde", models.CategoryTool},
		{"diesel", "Diesel", models.CategoryTool},
		{"sqlx", "SQLx", models.CategoryTool},
		{"leptos", "Leptos", models.CategoryFramework},
		{"yew", "Yew", models.CategoryFramework},
		{"tauri", "Tauri", models.CategoryFramework},
		{"wasm-bindgen", "WebAssembly", models.CategoryTool},
	}

	// rubyGems Gemfile 的关键字表（不区分大小写子串）
	rubyGems = []depEntry{
		{"rails", "Ruby on Rails", models.CategoryFramework},
		{"sinatra", "Sinatra", models.CategoryFramework},
		{"sidekiq", "Sidekiq", models.CategoryTool},
		{"rspec", "RSpec", models.CategoryTool},
	}

	// goModules go.mod 的模块路径表模块路径区分大小写
	goModules = []depEntry{
		{"github.com/gin-gonic/gin", "Gin", models.CategoryFramework},
		{"github.com/gorilla/mux", "Gorilla Mux", models.CategoryFramework},
		{"github.com/labstack/echo", "Echo", models.CategoryFramework},
		{"github.com/gofiber/fiber", "Fiber", models.CategoryFramework},
		{"gorm.io/gorm", "GORM", models.CategoryTool},
	}

	// phpPackages composer.json require/require-dev 的精确键名表
	phpPackages = []depEntry{
		{"laravel/framework", "Laravel", models.CategoryFramework},
		{"symfony/symfony", "Symfony", models.CategoryFramework},
		{"slim/slim", "Slim", models.CategoryFramework},
	}
)

// readManifest 读取根目录下的清单文件
// 缺失或不可读均视为"不存在"，返回 ok=false（参见错误处理约定：静默降级）
func readManifest(dir, name string) ([]byte, bool) {
	data, err := os.ReadFile(filepath.Join(dir, name))
	if err != nil {
		return nil, false
	}
	return data, true
}

// matchSubstring 对整段文本做子串匹配并写入命中条目
func matchSubstring(text string, table []depEntry, frameworks map[string]string) {
	for _, e := range table {
		if strings.Contains(text, e.Key) {
			frameworks[e.Name] = e.Category
		}
	}
}

// detectNPM 解析 package.json，对 dependencies/devDependencies 的键做精确匹配
// JSON 解析失败等同于清单不存在，只影响本生态的信号
func detectNPM(dir string, frameworks map[string]string) {
	data, ok := readManifest(dir, "package.json")
	if !ok {
		return
	}
	var manifest struct {
		Dependencies    map[string]any `json:"dependencies"`
		DevDependencies map[string]any `json:"devDependencies"`
	}
	if err := json.Unmarshal(data, &manifest); err != nil {
		return
	}
	deps := make(map[string]struct{}, len(manifest.Dependencies)+len(manifest.DevDependencies))
	for k := range manifest.Dependencies {
		deps[k] = struct{}{}
	}
	for k := range manifest.DevDependencies {
		deps[k] = struct{}{}
	}
	for _, e := range npmPackages {
		if _, hit := deps[e.Key]; hit {
			frameworks[e.Name] = e.Category
		}
	}
}

// detectPythonRequirements 对 requirements.txt 全文做不区分大小写的子串匹配
func detectPythonRequirements(dir string, frameworks map[string]string) {
	data, ok := readManifest(dir, "requirements.txt")
	if !ok {
		return
	}
	matchSubstring(strings.ToLower(string(data)), pythonPackages, frameworks)
}

// detectPyproject pyproject.toml 的独立检测，策略与 requirements.txt 相同
// 两者互不排斥：同时存在时都会运行，命中同名条目时结果一致
func detectPyproject(dir string, frameworks map[string]string) {
	data, ok := readManifest(dir, "pyproject.toml")
	if !ok {
		return
	}
	matchSubstring(strings.ToLower(string(data)), pythonPackages, frameworks)
}

// detectRust 对 Cargo.toml 全文做不区分大小写的子串匹配
func detectRust(dir string, frameworks map[string]string) {
	data, ok := readManifest(dir, "Cargo.toml")
	if !ok {
		return
	}
	matchSubstring(strings.ToLower(string(data)), rustCrates, frameworks)
}

// detectRuby 对 Gemfile 全文做不区分大小写的子串匹配
func detectRuby(dir string, frameworks map[string]string) {
	data, ok := readManifest(dir, "Gemfile")
	if !ok {
		return
	}
	matchSubstring(strings.ToLower(string(data)), rubyGems, frameworks)
}

// detectGoMod 解析 go.mod 并对 module/require 的模块路径做区分大小写的子串匹配
// 使用 modfile 宽松解析，解析失败等同于清单不存在
func detectGoMod(dir string, frameworks map[string]string) {
	data, ok := readManifest(dir, "go.mod")
	if !ok {
		return
	}
	f, err := modfile.ParseLax("go.mod", data, nil)
	if err != nil {
		return
	}
	var paths []string
	if f.Module != nil {
		paths = append(paths, f.Module.Mod.Path)
	}
	for _, r := range f.Require {
		paths = append(paths, r.Mod.Path)
	}
	for _, e := range goModules {
		for _, p := range paths {
			if strings.Contains(p, e.Key) {
				frameworks[e.Name] = e.Category
				break
			}
		}
	}
}

// detectPHP 解析 composer.json，对 require/require-dev 的键做精确匹配
func detectPHP(dir string, frameworks map[string]string) {
	data, ok := readManifest(dir, "composer.json")
	if !ok {
		return
	}
	var manifest struct {
		Require    map[string]any `json:"require"`
		RequireDev map[string]any `json:"require-dev"`
	}
	if err := json.Unmarshal(data, &manifest); err != nil {
		return
	}
	deps := make(map[string]struct{}, len(manifest.Require)+len(manifest.RequireDev))
	for k := range manifest.Require {
		deps[k] = struct{}{}
	}
	for k := range manifest.RequireDev {
		deps[k] = struct{}{}
	}
	for _, e := range phpPackages {
		if _, hit := deps[e.Key]; hit {
			frameworks[e.Name] = e.Category
		}
	}
}

// detectManifests 在扫描根目录上无条件运行全部生态解析器
// 必须在文件指示器检测之后调用：清单解析器后写入，名称冲突时覆盖指示器的类别
func detectManifests(dir string, frameworks map[string]string) {
	detectNPM(dir, frameworks)
	detectPythonRequirements(dir, frameworks)
	detectPyproject(dir, frameworks)
	detectRust(dir, frameworks)
	detectRuby(dir, frameworks)
	detectGoMod(dir, frameworks)
	detectPHP(dir, frameworks)
}
