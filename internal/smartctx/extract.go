// Package smartctx performs best-effort static extraction over changed
// source files: declared symbols, local imports, hook usage, state
// management idioms and stylesheet associations. Everything here is a
// heuristic layer; extraction failure for any file degrades silently.
package smartctx

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"sync"

	"github.com/gitmuse/gitmuse/internal/log"
)

const (
	// MaxContextChars caps the assembled context size in characters
	MaxContextChars = 50000

	// TrimMarker is appended whenever the context is truncated
	TrimMarker = "... (context trimmed)"

	// maxImporters bounds the "used by" cross-reference per file
	maxImporters = 5
)

var sourceExts = []string{".js", ".jsx", ".ts", ".tsx"}

var styleExts = map[string]bool{
	".css":  true,
	".scss": true,
	".less": true,
}

// FileContext holds the findings for one changed source file
type FileContext struct {
	Path        string
	Name        string   // declared symbol name, base name fallback
	Imports     []string // relative-path imports, in source order
	Hooks       []string // custom hook call sites, sorted set
	StateIdioms []string // detected state-management idioms, sorted set
	Definition  string   // props interface/type block, if present
	Decorated   bool     // annotated class-style source (@Component etc.)
	Selector    string   // decorator selector, decorated files only
}

// Ordered fallback attempts for the declared symbol name; first match wins
var namePatterns = []*regexp.Regexp{
	regexp.MustCompile(`export\s+default\s+function\s+([A-Za-z_$][\w$]*)`),
	regexp.MustCompile(`export\s+function\s+([A-Za-z_$][\w$]*)`),
	regexp.MustCompile(`export\s+default\s+class\s+([A-Za-z_$][\w$]*)`),
	regexp.MustCompile(`export\s+class\s+([A-Za-z_$][\w$]*)`),
	regexp.MustCompile(`export\s+const\s+([A-Za-z_$][\w$]*)\s*(?::[^=\n]+)?=\s*(?:\([^)\n]*\)|[\w$]+)\s*=>`),
	regexp.MustCompile(`class\s+([A-Za-z_$][\w$]*)`),
	regexp.MustCompile(`function\s+([A-Za-z_$][\w$]*)`),
	regexp.MustCompile(`const\s+([A-Za-z_$][\w$]*)\s*=\s*(?:\([^)\n]*\)|[\w$]+)\s*=>`),
}

var (
	importPattern  = regexp.MustCompile(`import\s+[^'"\n]*['"](\.{1,2}/[^'"]+)['"]`)
	requirePattern = regexp.MustCompile(`require\(\s*['"](\.{1,2}/[^'"]+)['"]\s*\)`)
	hookPattern    = regexp.MustCompile(`\b(use[A-Z][\w$]*)\s*\(`)
	propsPattern   = regexp.MustCompile(`(?ms)^(?:export\s+)?(?:interface|type)\s+[\w$]*Props[^{]*\{.*?^\}`)

	decoratorPattern = regexp.MustCompile(`@(?:Component|Injectable|Directive|Pipe)\s*\(`)
	selectorPattern  = regexp.MustCompile(`selector:\s*['"]([^'"]+)['"]`)
	decoratedClass   = regexp.MustCompile(`export\s+class\s+([A-Za-z_$][\w$]*)`)
)

// Hooks shipped by the framework itself; only custom hooks are reported
var builtinHooks = map[string]bool{
	"useState": true, "useEffect": true, "useMemo": true, "useCallback": true,
	"useRef": true, "useLayoutEffect": true, "useId": true, "useTransition": true,
	"useDeferredValue": true, "useImperativeHandle": true, "useDebugValue": true,
	"useSyncExternalStore": true, "useInsertionEffect": true,
	// reported as state idioms instead
	"useReducer": true, "useContext": true, "useSelector": true, "useDispatch": true,
	"useStore": true,
}

// State-management idioms detected by characteristic tokens.
// Several may co-occur; all matches are reported.
var stateIdiomTokens = map[string][]string{
	"Redux":         {"useSelector", "useDispatch", "createSlice", "configureStore", "from 'react-redux'", `from "react-redux"`},
	"MobX":          {"makeAutoObservable", "makeObservable", "from 'mobx'", `from "mobx"`},
	"Zustand":       {"from 'zustand'", `from "zustand"`},
	"React Context": {"createContext", "useContext"},
	"useReducer":    {"useReducer("},
}

// ExtractFile builds the FileContext for one source file.
// Returns ok=false when the file cannot be read; never returns an error.
func ExtractFile(path string) (FileContext, bool) {
	content, err := os.ReadFile(path)
	if err != nil {
		return FileContext{}, false
	}
	return extractContent(path, string(content)), true
}

func extractContent(path, content string) FileContext {
	fc := FileContext{Path: path}

	if decoratorPattern.MatchString(content) {
		fc.Decorated = true
		if m := decoratedClass.FindStringSubmatch(content); m != nil {
			fc.Name = m[1]
		}
		if m := selectorPattern.FindStringSubmatch(content); m != nil {
			fc.Selector = m[1]
		}
	} else {
		for _, p := range namePatterns {
			if m := p.FindStringSubmatch(content); m != nil {
				fc.Name = m[1]
				break
			}
		}
	}
	if fc.Name == "" {
		fc.Name = baseName(path)
	}

	for _, m := range importPattern.FindAllStringSubmatch(content, -1) {
		fc.Imports = append(fc.Imports, m[1])
	}
	for _, m := range requirePattern.FindAllStringSubmatch(content, -1) {
		fc.Imports = append(fc.Imports, m[1])
	}

	hookSet := map[string]bool{}
	for _, m := range hookPattern.FindAllStringSubmatch(content, -1) {
		if !builtinHooks[m[1]] {
			hookSet[m[1]] = true
		}
	}
	fc.Hooks = sortedKeys(hookSet)

	idiomSet := map[string]bool{}
	for idiom, tokens := range stateIdiomTokens {
		for _, token := range tokens {
			if strings.Contains(content, token) {
				idiomSet[idiom] = true
				break
			}
		}
	}
	fc.StateIdioms = sortedKeys(idiomSet)

	if m := propsPattern.FindString(content); m != "" {
		fc.Definition = m
	}

	return fc
}

// WhoImports finds project files whose local imports reference the
// target's base name. At most maxImporters results, in walk order.
func WhoImports(targetFile, root string) []string {
	target := baseName(targetFile)
	if target == "" {
		return nil
	}

	var importers []string
	walker := NewWalker(root, DefaultExcludedDirs, sourceExts)
	walker.Walk(func(path string) bool {
		if filepath.Base(path) == filepath.Base(targetFile) {
			return true
		}
		content, err := os.ReadFile(path)
		if err != nil {
			return true
		}
		for _, m := range importPattern.FindAllStringSubmatch(string(content), -1) {
			if baseName(m[1]) == target {
				importers = append(importers, path)
				break
			}
		}
		return len(importers) < maxImporters
	})
	return importers
}

// Gather assembles the smart context block for all changed files.
// Per-file reads fan out concurrently; the output order follows the
// input order, and any per-file failure only omits that file.
func Gather(changedFiles []string, root string) string {
	var sourceFiles, styleFiles []string
	for _, f := range changedFiles {
		ext := filepath.Ext(f)
		switch {
		case styleExts[ext]:
			styleFiles = append(styleFiles, f)
		case isSourceExt(ext):
			sourceFiles = append(sourceFiles, f)
		}
	}

	contexts := make([]*FileContext, len(sourceFiles))
	var wg sync.WaitGroup
	for i, f := range sourceFiles {
		wg.Add(1)
		go func(i int, f string) {
			defer wg.Done()
			if fc, ok := ExtractFile(filepath.Join(root, f)); ok {
				fc.Path = f
				contexts[i] = &fc
			}
		}(i, f)
	}
	wg.Wait()

	var blocks []string
	for _, fc := range contexts {
		if fc == nil {
			continue
		}
		block := renderBlock(fc, root)
		if block != "" {
			blocks = append(blocks, block)
		}
	}

	for _, style := range styleFiles {
		base := baseName(style)
		for _, src := range sourceFiles {
			if strings.Contains(filepath.Base(src), base) {
				blocks = append(blocks, fmt.Sprintf("Styles %s -> %s", filepath.Base(style), filepath.Base(src)))
			}
		}
	}

	return Truncate(strings.Join(blocks, "\n\n"), MaxContextChars)
}

func renderBlock(fc *FileContext, root string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "### %s\n", filepath.Base(fc.Path))
	if fc.Decorated {
		fmt.Fprintf(&b, "Class: %s\n", fc.Name)
		if fc.Selector != "" {
			fmt.Fprintf(&b, "Selector: %s\n", fc.Selector)
		}
	} else {
		fmt.Fprintf(&b, "Component: %s\n", fc.Name)
	}
	if len(fc.Imports) > 0 {
		fmt.Fprintf(&b, "Imports: %s\n", strings.Join(fc.Imports, ", "))
	}
	if len(fc.Hooks) > 0 {
		fmt.Fprintf(&b, "Hooks: %s\n", strings.Join(fc.Hooks, ", "))
	}
	if len(fc.StateIdioms) > 0 {
		fmt.Fprintf(&b, "State: %s\n", strings.Join(fc.StateIdioms, ", "))
	}
	if importers := WhoImports(fc.Path, root); len(importers) > 0 {
		rels := make([]string, 0, len(importers))
		for _, imp := range importers {
			if rel, err := filepath.Rel(root, imp); err == nil {
				rels = append(rels, rel)
			} else {
				rels = append(rels, imp)
			}
		}
		fmt.Fprintf(&b, "Used by: %s\n", strings.Join(rels, ", "))
	}
	if fc.Definition != "" {
		fmt.Fprintf(&b, "Props:\n%s\n", fc.Definition)
	}
	return strings.TrimRight(b.String(), "\n")
}

// GatherSafe wraps Gather so a panic anywhere in the heuristic layer is
// reported as a warning and the command continues without smart context.
func GatherSafe(changedFiles []string, root string) (result string) {
	defer func() {
		if r := recover(); r != nil {
			log.Warn("smart context extraction failed: %v", r)
			result = ""
		}
	}()
	return Gather(changedFiles, root)
}

// Truncate caps s at max characters, never splitting a multi-byte rune,
// and appends the trim marker when anything was cut.
func Truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + TrimMarker
}

func isSourceExt(ext string) bool {
	for _, e := range sourceExts {
		if e == ext {
			return true
		}
	}
	return false
}

// baseName returns the file name without directory or extension
func baseName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

func sortedKeys(set map[string]bool) []string {
	if len(set) == 0 {
		return nil
	}
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
