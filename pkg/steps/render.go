package steps

import (
	"bytes"
	"fmt"
	"text/template"

	"github.com/Masterminds/sprig/v3"
)

// renderString treats text as a template over vars, so steps can pick
// up values published by earlier locate steps. A reference to a missing
// var is an error, not an empty expansion.
func renderString(name, text string, vars map[string]any) (string, error) {
	tmpl, err := template.New(name).Funcs(sprig.FuncMap()).Option("missingkey=error").Parse(text)
	if err != nil {
		return "", fmt.Errorf("parsing template %q: %w", text, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, vars); err != nil {
		return "", fmt.Errorf("rendering %q: %w", text, err)
	}
	return buf.String(), nil
}

func renderStrings(name string, texts []string, vars map[string]any) ([]string, error) {
	out := make([]string, len(texts))
	for i, t := range texts {
		rendered, err := renderString(name, t, vars)
		if err != nil {
			return nil, err
		}
		out[i] = rendered
	}
	return out, nil
}
