package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/simonmesserli/ntc-unified-baseline-migration-tool/pkg/template"
)

// resolveTemplatePaths turns the --templates argument into a list of files.
// The argument can be a directory (non-recursive scan for unified_*.tftpl,
// upload prefixes like 12345_unified_x.tftpl included), a comma-separated
// list of paths, or a glob pattern.
func resolveTemplatePaths(arg string) ([]string, error) {
	var paths []string

	info, err := os.Stat(arg)
	switch {
	case err == nil && info.IsDir():
		entries, err := os.ReadDir(arg)
		if err != nil {
			return nil, err
		}
		for _, e := range entries {
			name := e.Name()
			if strings.HasSuffix(name, ".tftpl") && strings.Contains(name, "unified_") {
				paths = append(paths, filepath.Join(arg, name))
			}
		}
	case strings.Contains(arg, ","):
		for _, p := range strings.Split(arg, ",") {
			paths = append(paths, strings.TrimSpace(p))
		}
	default:
		matches, err := filepath.Glob(arg)
		if err != nil {
			return nil, err
		}
		sort.Strings(matches)
		paths = matches
	}

	var files []string
	for _, p := range paths {
		if info, err := os.Stat(p); err == nil && info.Mode().IsRegular() {
			files = append(files, p)
		}
	}
	return files, nil
}

func readTemplateSources(paths []string) ([]template.Source, error) {
	var sources []template.Source
	for _, p := range paths {
		data, err := os.ReadFile(p)
		if err != nil {
			return nil, fmt.Errorf("unable to read template %s: %w", p, err)
		}
		sources = append(sources, template.Source{
			Name: filepath.Base(p),
			Text: string(data),
		})
	}
	return sources, nil
}
