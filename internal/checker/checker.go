// Package checker validates icon names referenced from Blade templates
// against a refreshed icon list.
package checker

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"
)

var ErrUnknownFramework = errors.New("unknown framework")

const (
	FrameworkFluxUI    = "fluxui"
	FrameworkBootstrap = "bootstrap"
)

// AlwaysAllowed names are valid in every icon set.
var AlwaysAllowed = []string{"loading"}

type (
	// HookInput is the payload an editor hook receives on stdin.
	HookInput struct {
		SessionID string    `json:"session_id"`
		ToolName  string    `json:"tool_name"`
		ToolInput ToolInput `json:"tool_input"`
	}

	ToolInput struct {
		FilePath string `json:"file_path"`
		Content  string `json:"content"`
	}
)

// Applies reports whether the hook payload describes a template write that
// should be validated.
func (in HookInput) Applies() bool {
	if in.ToolName != "Edit" && in.ToolName != "Write" {
		return false
	}
	if !strings.Contains(in.ToolInput.FilePath, "resources") {
		return false
	}
	return in.ToolInput.Content != ""
}

var (
	fluxAttribute = regexp.MustCompile(`icon(?::\w+)?="([^"]+)"`)
	fluxComponent = regexp.MustCompile(`<flux:icon\.(\w+(?:-\w+)*)\s*/?>`)
	bootstrap     = regexp.MustCompile(`class="[^"]*\bbi-(\w+(?:-\w+)*)\b[^"]*"`)
)

// ExtractFluxUI returns attribute-form names (icon="x", icon:trailing="x")
// followed by component-form names (<flux:icon.x />).
func ExtractFluxUI(content string) []string {
	return append(submatches(fluxAttribute, content), submatches(fluxComponent, content)...)
}

// ExtractBootstrap returns bi-* names found inside class attributes, one per attribute.
func ExtractBootstrap(content string) []string {
	return submatches(bootstrap, content)
}

func submatches(re *regexp.Regexp, content string) []string {
	var out []string
	for _, m := range re.FindAllStringSubmatch(content, -1) {
		out = append(out, m[1])
	}
	return out
}

// Extract dispatches on framework.
func Extract(content, framework string) ([]string, error) {
	switch framework {
	case FrameworkFluxUI:
		return ExtractFluxUI(content), nil
	case FrameworkBootstrap:
		return ExtractBootstrap(content), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownFramework, framework)
	}
}

// IconList is a set of allowed icon names.
type IconList map[string]struct{}

func (l IconList) Contains(name string) bool {
	_, ok := l[name]
	return ok
}

// ReadIconList reads one name per line. A trailing ".svg" is dropped so that
// raw directory listings and trimmed lists behave the same.
func ReadIconList(path string) (IconList, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	list := make(IconList)
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		name := strings.TrimSuffix(strings.TrimSpace(scanner.Text()), ".svg")
		if name != "" {
			list[name] = struct{}{}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	for _, name := range AlwaysAllowed {
		list[name] = struct{}{}
	}
	return list, nil
}

// LoadIconList reads path, falling back to fallback when path does not
// exist. usedFallback tells the caller to warn.
func LoadIconList(path, fallback string) (list IconList, usedFallback bool, err error) {
	list, err = ReadIconList(path)
	if err == nil {
		return list, false, nil
	}
	if !errors.Is(err, os.ErrNotExist) || fallback == "" || fallback == path {
		return nil, false, err
	}
	list, err = ReadIconList(fallback)
	if err != nil {
		return nil, true, err
	}
	return list, true, nil
}

// Invalid returns the names in found that are missing from allowed, in the
// order found, duplicates included.
func Invalid(found []string, allowed IconList) []string {
	var out []string
	for _, name := range found {
		if !allowed.Contains(name) {
			out = append(out, name)
		}
	}
	return out
}

// Check extracts names for framework from content and returns the invalid ones.
func Check(content, framework string, allowed IconList) ([]string, error) {
	found, err := Extract(content, framework)
	if err != nil {
		return nil, err
	}
	return Invalid(found, allowed), nil
}

// IconSetDisplay renders a set name for messages: "heroicons" -> "Heroicons".
func IconSetDisplay(name string) string {
	if name == "" {
		return name
	}
	lower := strings.ToLower(name)
	return strings.ToUpper(lower[:1]) + lower[1:]
}

// FrameworkDisplay renders a framework for messages: "fluxui" -> "FLUX UI".
func FrameworkDisplay(framework string) string {
	return strings.ReplaceAll(strings.ToUpper(framework), "UI", " UI")
}
