package field

import (
	"fmt"
	"strings"
	"sync"

	"github.com/flosch/pongo2/v6"
)

// DefaultTemplate lays out a bound control. Parts that render empty leave a
// blank line behind, which is removed from the output.
const DefaultTemplate = "{{ label }}\n{{ input }}\n{{ hint }}\n{{ error }}"

var layouts = struct {
	mu       sync.RWMutex
	compiled map[string]*pongo2.Template
}{compiled: make(map[string]*pongo2.Template)}

func compileLayout(source string) (*pongo2.Template, error) {
	layouts.mu.RLock()
	if tpl, ok := layouts.compiled[source]; ok {
		layouts.mu.RUnlock()
		return tpl, nil
	}
	layouts.mu.RUnlock()

	layouts.mu.Lock()
	defer layouts.mu.Unlock()

	if tpl, ok := layouts.compiled[source]; ok {
		return tpl, nil
	}
	tpl, err := pongo2.FromString(source)
	if err != nil {
		return nil, fmt.Errorf("field: parse template: %w", err)
	}
	layouts.compiled[source] = tpl
	return tpl, nil
}

// renderLayout executes the layout with the already rendered parts. Parts
// are marked safe so pongo2 does not escape them a second time.
func renderLayout(source string, parts map[string]string) (string, error) {
	if strings.TrimSpace(source) == "" {
		source = DefaultTemplate
	}
	tpl, err := compileLayout(source)
	if err != nil {
		return "", err
	}

	ctx := make(pongo2.Context, len(parts))
	for name, markup := range parts {
		ctx[name] = pongo2.AsSafeValue(markup)
	}
	out, err := tpl.Execute(ctx)
	if err != nil {
		return "", fmt.Errorf("field: execute template: %w", err)
	}
	return removeBlankLines(out), nil
}

func removeBlankLines(text string) string {
	lines := strings.Split(text, "\n")
	kept := lines[:0]
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		kept = append(kept, line)
	}
	return strings.Join(kept, "\n")
}
