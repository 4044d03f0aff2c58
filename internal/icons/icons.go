// Package icons holds the static glyph and color tables used by the tree
// view. Lookups are pure functions of the file name; callers decide whether
// the result is drawn with color.
package icons

import "strings"

// Tree-drawing and marker glyphs.
const (
	IndentPipe   = "│ "
	IndentBranch = "├ "
	IndentLast   = "└ "
	IndentSpace  = "  "

	MarkSelected = "✓"
	MarkReadonly = "✗"

	FolderClosed  = ""
	FolderOpen    = ""
	FolderSymlink = ""
	FileDefault   = ""
	FileSymlink   = ""
)

// Def pairs a glyph with its hex foreground color.
type Def struct {
	Icon  string
	Color string
}

// DefaultFileColor is used when neither the name nor the extension matches.
const DefaultFileColor = "#999999"

var table = map[string]Def{
	// C/C++
	"c":   {"", "#599EFF"},
	"cpp": {"", "#519ABA"},
	"cc":  {"", "#F34B7D"},
	"cxx": {"", "#519ABA"},
	"h":   {"", "#A074C4"},
	"hpp": {"", "#A074C4"},
	"hxx": {"", "#A074C4"},
	"hh":  {"", "#A074C4"},
	// Rust
	"rs": {"", "#DEA584"},
	// Python
	"py":  {"", "#FFBC03"},
	"pyi": {"", "#FFBC03"},
	"pyc": {"", "#FFE873"},
	"pyw": {"", "#FFBC03"},
	// Lua
	"lua":  {"", "#51A0CF"},
	"luau": {"", "#00A2FF"},
	// JavaScript/TypeScript
	"js":   {"", "#CBCB41"},
	"mjs":  {"", "#F1E05A"},
	"cjs":  {"", "#CBCB41"},
	"ts":   {"", "#519ABA"},
	"mts":  {"", "#519ABA"},
	"cts":  {"", "#519ABA"},
	"jsx":  {"", "#20C2E3"},
	"tsx":  {"", "#1354BF"},
	"d.ts": {"", "#D59855"},
	// Web
	"html":   {"", "#E44D26"},
	"htm":    {"", "#E34C26"},
	"css":    {"", "#663399"},
	"scss":   {"", "#F55385"},
	"sass":   {"", "#F55385"},
	"less":   {"", "#563D7C"},
	"vue":    {"", "#8DC149"},
	"svelte": {"", "#FF3E00"},
	"astro":  {"", "#E23F67"},
	// Data formats
	"json":  {"", "#CBCB41"},
	"jsonc": {"", "#CBCB41"},
	"json5": {"", "#CBCB41"},
	"yaml":  {"", "#6D8086"},
	"yml":   {"", "#6D8086"},
	"toml":  {"", "#9C4221"},
	"xml":   {"\U000f05c0", "#E37933"},
	"csv":   {"", "#89E051"},
	// Shell
	"sh":   {"", "#4D5A5E"},
	"bash": {"", "#89E051"},
	"zsh":  {"", "#89E051"},
	"fish": {"", "#4D5A5E"},
	"ps1":  {"", "#012456"},
	"bat":  {"", "#C1F12E"},
	"cmd":  {"", "#C1F12E"},
	"awk":  {"", "#4D5A5E"},
	// Go
	"go":  {"", "#00ADD8"},
	"mod": {"", "#00ADD8"},
	"sum": {"", "#00ADD8"},
	// Java/JVM
	"java":   {"", "#CC3E44"},
	"jar":    {"", "#CC3E44"},
	"class":  {"", "#CC3E44"},
	"kt":     {"", "#7F52FF"},
	"kts":    {"", "#7F52FF"},
	"scala":  {"", "#CC3E44"},
	"groovy": {"", "#4298B8"},
	"gradle": {"", "#005F87"},
	// .NET
	"cs":     {"\U000f031b", "#596706"},
	"csx":    {"\U000f031b", "#596706"},
	"fs":     {"", "#519ABA"},
	"fsx":    {"", "#519ABA"},
	"vb":     {"", "#945DB7"},
	"sln":    {"", "#854CC7"},
	"csproj": {"\U000f0aae", "#512BD4"},
	// Ruby
	"rb":      {"", "#701516"},
	"erb":     {"", "#701516"},
	"rake":    {"", "#701516"},
	"gemspec": {"", "#701516"},
	// PHP
	"php":   {"", "#A074C4"},
	"phtml": {"", "#A074C4"},
	// Swift/Apple
	"swift": {"", "#E37933"},
	"m":     {"", "#599EFF"},
	"mm":    {"", "#519ABA"},
	// Zig/Nim
	"zig": {"", "#F69A1B"},
	"nim": {"", "#F3D400"},
	// Functional
	"hs":   {"", "#A074C4"},
	"lhs":  {"", "#A074C4"},
	"ml":   {"", "#E37933"},
	"mli":  {"", "#E37933"},
	"ex":   {"", "#A074C4"},
	"exs":  {"", "#A074C4"},
	"erl":  {"", "#B83998"},
	"hrl":  {"", "#B83998"},
	"clj":  {"", "#8DC149"},
	"cljs": {"", "#519ABA"},
	"cljc": {"", "#8DC149"},
	"el":   {"", "#8172BE"},
	"elm":  {"", "#519ABA"},
	// Data science
	"r":     {"\U000f07d4", "#2266BA"},
	"rmd":   {"\U000f07d4", "#2266BA"},
	"jl":    {"", "#A270BA"},
	"ipynb": {"", "#F57D01"},
	// Mobile
	"dart": {"", "#03589C"},
	// Database
	"sql":     {"", "#DAD8D8"},
	"sqlite":  {"", "#DAD8D8"},
	"db":      {"", "#DAD8D8"},
	"graphql": {"", "#E535AB"},
	"gql":     {"", "#E535AB"},
	"prisma":  {"", "#0C344B"},
	// DevOps/Config
	"dockerfile":   {"\U000f0868", "#458EE6"},
	"dockerignore": {"\U000f0868", "#458EE6"},
	"nix":          {"", "#7EBAE4"},
	"tf":           {"", "#5C4EE5"},
	"tfvars":       {"", "#5C4EE5"},
	"hcl":          {"", "#5C4EE5"},
	// Build/Make
	"makefile":    {"", "#6D8086"},
	"gnumakefile": {"", "#6D8086"},
	"cmake":       {"", "#DCE3EB"},
	"meson":       {"", "#6D8086"},
	// Docs
	"md":       {"", "#DDDDDD"},
	"markdown": {"", "#DDDDDD"},
	"mdx":      {"", "#519ABA"},
	"rst":      {"", "#DDDDDD"},
	"txt":      {"", "#89E051"},
	"org":      {"", "#77AA99"},
	"tex":      {"", "#3D6117"},
	"bib":      {"\U000f125f", "#CBCB41"},
	// Git
	"git":           {"", "#F14C28"},
	"gitignore":     {"", "#F14C28"},
	"gitmodules":    {"", "#F14C28"},
	"gitattributes": {"", "#F14C28"},
	// Editor
	"vim":          {"", "#019833"},
	"nvim":         {"", "#019833"},
	"vimrc":        {"", "#019833"},
	"editorconfig": {"", "#FFFFFF"},
	// Archives
	"zip": {"", "#ECA517"},
	"tar": {"", "#ECA517"},
	"gz":  {"", "#ECA517"},
	"xz":  {"", "#ECA517"},
	"bz2": {"", "#ECA517"},
	"7z":  {"", "#ECA517"},
	"rar": {"", "#ECA517"},
	"deb": {"", "#A80030"},
	"rpm": {"", "#EE0000"},
	// Images
	"png":  {"", "#A074C4"},
	"jpg":  {"", "#A074C4"},
	"jpeg": {"", "#A074C4"},
	"gif":  {"", "#A074C4"},
	"bmp":  {"", "#A074C4"},
	"ico":  {"", "#CBCB41"},
	"webp": {"", "#A074C4"},
	"svg":  {"", "#FFB13B"},
	"avif": {"", "#A074C4"},
	// Audio/Video
	"mp3":  {"", "#00AFFF"},
	"wav":  {"", "#00AFFF"},
	"flac": {"", "#0075AA"},
	"ogg":  {"", "#0075AA"},
	"aac":  {"", "#00AFFF"},
	"mp4":  {"", "#FD971F"},
	"mkv":  {"", "#FD971F"},
	"avi":  {"", "#FD971F"},
	"mov":  {"", "#FD971F"},
	"webm": {"", "#FD971F"},
	// Fonts
	"ttf":   {"", "#ECECEC"},
	"otf":   {"", "#ECECEC"},
	"woff":  {"", "#ECECEC"},
	"woff2": {"", "#ECECEC"},
	// Documents
	"pdf":  {"", "#B30B00"},
	"doc":  {"\U000f022c", "#185ABD"},
	"docx": {"\U000f022c", "#185ABD"},
	"xls":  {"", "#207245"},
	"xlsx": {"", "#207245"},
	"ppt":  {"", "#CB4A32"},
	"pptx": {"", "#CB4A32"},
	"odt":  {"", "#2DCBFD"},
	"ods":  {"", "#78FC4E"},
	"odp":  {"", "#FE9C45"},
	// Misc
	"lock":    {"", "#BBBBBB"},
	"log":     {"\U000f0331", "#DDDDDD"},
	"env":     {"", "#FAF743"},
	"conf":    {"", "#6D8086"},
	"cfg":     {"", "#6D8086"},
	"ini":     {"", "#6D8086"},
	"license": {"", "#CBCB41"},
	"readme":  {"", "#DDDDDD"},
	// Additional common
	"asm":      {"", "#0091BD"},
	"s":        {"", "#0091BD"},
	"cr":       {"", "#C8C8C8"},
	"coffee":   {"", "#CBCB41"},
	"diff":     {"", "#41535B"},
	"patch":    {"", "#41535B"},
	"d":        {"", "#B03931"},
	"ada":      {"", "#599EFF"},
	"adb":      {"", "#599EFF"},
	"ads":      {"", "#A074C4"},
	"hbs":      {"", "#F0772B"},
	"mustache": {"", "#E37933"},
	"ejs":      {"", "#CBCB41"},
	"haml":     {"", "#EAEAE1"},
	"pug":      {"", "#A86454"},
	"hx":       {"", "#EA8220"},
	"gleam":    {"", "#FFAFF3"},
	"odin":     {"\U000f07e2", "#3882D2"},
	"v":        {"", "#5D87BF"},
	"vert":     {"", "#5586A6"},
	"frag":     {"", "#5586A6"},
	"glsl":     {"", "#5586A6"},
	"wgsl":     {"", "#5586A6"},
	"cu":       {"", "#89E051"},
	"cuh":      {"", "#A074C4"},
}

// Lookup matches the full lowercased filename first (Makefile, Dockerfile and
// friends have no useful extension), then the lowercased extension.
func Lookup(name string) (Def, bool) {
	lower := strings.ToLower(name)
	if def, ok := table[lower]; ok {
		return def, true
	}
	dot := strings.LastIndexByte(name, '.')
	if dot < 0 {
		return Def{}, false
	}
	if def, ok := table[strings.ToLower(name[dot+1:])]; ok {
		return def, true
	}
	return Def{}, false
}

// FileIcon picks the glyph for a non-directory entry.
func FileIcon(name string, symlink bool) string {
	if symlink {
		return FileSymlink
	}
	if def, ok := Lookup(name); ok {
		return def.Icon
	}
	return FileDefault
}

// FileColor picks the hex color for a non-directory entry's icon.
func FileColor(name string) string {
	if def, ok := Lookup(name); ok {
		return def.Color
	}
	return DefaultFileColor
}
