// Copyright (c) 2026 Caesarcipher Team
// Caesarcipher - Caesar shift cipher toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

// i18n-linter checks the locale files against the translation keys used in
// the Go sources. Keys missing from a secondary locale fail the run; keys no
// source file mentions are reported as orphaned.
//
// Usage (from the repository root):
//
//	go run ./tools/i18n-linter
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	localesDir    = "internal/i18n/locales"
	primaryLocale = "en.yaml"
	projectRoot   = "."
)

// keyRe matches i18n.T("key") calls and bare literals shaped like a key, such
// as the message IDs handed to newUserError.
var keyRe = regexp.MustCompile(`i18n\.T\("([^"]+)"|"([a-z]+\.[a-z_.]+)"`)

// report is the outcome of one lint run.
type report struct {
	used     int
	primary  int
	orphaned []string
	missing  map[string][]string // locale file -> keys
}

func (r report) failed() bool {
	for _, keys := range r.missing {
		if len(keys) > 0 {
			return true
		}
	}
	return false
}

func main() {
	r, err := lint(projectRoot, localesDir)
	if err != nil {
		fmt.Printf("❌ %v\n", err)
		os.Exit(1)
	}
	printReport(os.Stdout, r)
	if r.failed() {
		os.Exit(1)
	}
}

func lint(root, locales string) (report, error) {
	used, err := findUsedKeys(root)
	if err != nil {
		return report{}, fmt.Errorf("error finding used keys: %w", err)
	}
	primary, err := loadKeysFromLocale(filepath.Join(locales, primaryLocale))
	if err != nil {
		return report{}, fmt.Errorf("error loading primary locale %s: %w", primaryLocale, err)
	}

	r := report{used: len(used), primary: len(primary), missing: map[string][]string{}}
	for key := range primary {
		if _, ok := used[key]; !ok {
			r.orphaned = append(r.orphaned, key)
		}
	}
	slices.Sort(r.orphaned)

	files, err := filepath.Glob(filepath.Join(locales, "*.yaml"))
	if err != nil {
		return report{}, err
	}
	for _, file := range files {
		if filepath.Base(file) == primaryLocale {
			continue
		}
		keys, err := loadKeysFromLocale(file)
		if err != nil {
			return report{}, fmt.Errorf("error loading %s: %w", file, err)
		}
		var missing []string
		for key := range primary {
			if _, ok := keys[key]; !ok {
				missing = append(missing, key)
			}
		}
		slices.Sort(missing)
		r.missing[filepath.Base(file)] = missing
	}
	return r, nil
}

func printReport(w io.Writer, r report) {
	fmt.Fprintf(w, "🔍 %d keys used in source, %d keys in %s\n\n", r.used, r.primary, primaryLocale)

	fmt.Fprintln(w, "--- Orphaned keys ---")
	if len(r.orphaned) == 0 {
		fmt.Fprintln(w, "  ✨ None found.")
	}
	for _, key := range r.orphaned {
		fmt.Fprintf(w, "  - Orphaned: %s\n", key)
	}

	fmt.Fprintln(w, "\n--- Missing keys ---")
	files := make([]string, 0, len(r.missing))
	for f := range r.missing {
		files = append(files, f)
	}
	slices.Sort(files)
	for _, f := range files {
		fmt.Fprintf(w, "%s:\n", f)
		if len(r.missing[f]) == 0 {
			fmt.Fprintln(w, "  ✨ All keys present.")
		}
		for _, key := range r.missing[f] {
			fmt.Fprintf(w, "  - Missing: %s\n", key)
		}
	}

	switch {
	case r.failed():
		fmt.Fprintln(w, "\n❌ Found issues that need to be addressed.")
	case len(r.orphaned) > 0:
		fmt.Fprintln(w, "\n⚠️  Found orphaned keys. Please consider removing them.")
	default:
		fmt.Fprintln(w, "\n✅ All translation files are consistent!")
	}
}

// findUsedKeys scans the non-test Go files under root for translation keys.
func findUsedKeys(root string) (map[string]struct{}, error) {
	keys := make(map[string]struct{})
	err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if name := d.Name(); name == "tools" || (name != "." && strings.HasPrefix(name, "_")) {
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.HasSuffix(path, ".go") || strings.HasSuffix(path, "_test.go") {
			return nil
		}
		content, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		for _, match := range keyRe.FindAllStringSubmatch(string(content), -1) {
			if match[1] != "" {
				keys[match[1]] = struct{}{}
			} else if match[2] != "" {
				keys[match[2]] = struct{}{}
			}
		}
		return nil
	})
	return keys, err
}

// loadKeysFromLocale reads a YAML file and returns a flat set of its keys.
func loadKeysFromLocale(path string) (map[string]struct{}, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var data map[string]any
	if err := yaml.Unmarshal(content, &data); err != nil {
		return nil, err
	}
	keys := make(map[string]struct{})
	flattenYAML("", data, keys)
	return keys, nil
}

// flattenYAML joins nested maps into dot-separated keys.
func flattenYAML(prefix string, node any, keys map[string]struct{}) {
	m, ok := node.(map[string]any)
	if !ok {
		if prefix != "" {
			keys[prefix] = struct{}{}
		}
		return
	}
	for k, val := range m {
		if prefix != "" {
			k = prefix + "." + k
		}
		flattenYAML(k, val, keys)
	}
}
