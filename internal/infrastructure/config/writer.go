package config

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"regexp"
	"sort"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

var sectionHeaderRegex = regexp.MustCompile(`^\s*\[([^\]]+)\]\s*$`)

// Encode writes cfg as TOML with sections in alphabetical order.
func Encode(w io.Writer, cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("config is nil")
	}

	var buf bytes.Buffer
	enc := toml.NewEncoder(&buf)
	enc.SetIndentTables(true)
	if err := enc.Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	_, err := io.WriteString(w, sortTOMLSections(buf.String()))
	return err
}

// WriteConfigOrdered writes the configuration to disk with consistent ordering.
func WriteConfigOrdered(cfg *Config, path string) error {
	var buf bytes.Buffer
	if err := Encode(&buf, cfg); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), filePerm); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// sortTOMLSections reorders [section] blocks alphabetically. Lines before
// the first header stay first.
func sortTOMLSections(content string) string {
	type section struct {
		header string
		lines  []string
	}

	var preamble []string
	var sections []section
	for _, line := range strings.Split(content, "\n") {
		if match := sectionHeaderRegex.FindStringSubmatch(line); match != nil {
			sections = append(sections, section{header: match[1], lines: []string{line}})
			continue
		}
		if len(sections) == 0 {
			preamble = append(preamble, line)
			continue
		}
		sections[len(sections)-1].lines = append(sections[len(sections)-1].lines, line)
	}

	sort.SliceStable(sections, func(i, j int) bool {
		return sections[i].header < sections[j].header
	})

	var blocks []string
	if p := strings.TrimSpace(strings.Join(preamble, "\n")); p != "" {
		blocks = append(blocks, p)
	}
	for _, sec := range sections {
		blocks = append(blocks, strings.TrimRight(strings.Join(sec.lines, "\n"), "\n "))
	}
	if len(blocks) == 0 {
		return ""
	}
	return strings.Join(blocks, "\n\n") + "\n"
}
