package processing

import (
	"bytes"
	"fmt"
	"maps"
	"os"
	"slices"
	"text/template"

	"github.com/Masterminds/sprig/v3"
	"gopkg.in/yaml.v3"
)

// LoadVarsFile reads a YAML file and returns it as a map.
func LoadVarsFile(filename string) (map[string]any, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("reading vars file: %w", err)
	}

	var vars map[string]any
	if err := yaml.Unmarshal(data, &vars); err != nil {
		return nil, fmt.Errorf("parsing vars file: %w", err)
	}

	if vars == nil {
		vars = make(map[string]any)
	}

	return vars, nil
}

// MergeVars performs a shallow merge of plan vars over global vars.
// Plan keys override global keys at the top level.
func MergeVars(global, local map[string]any) map[string]any {
	merged := make(map[string]any, len(global)+len(local))
	maps.Copy(merged, global)
	maps.Copy(merged, local)
	return merged
}

// InterpolateVars renders every string value in vars as a template over
// the map itself, in sorted key order, so a var may reference vars that
// sort before it.
func InterpolateVars(vars map[string]any) error {
	keys := make([]string, 0, len(vars))
	for key := range vars {
		keys = append(keys, key)
	}
	slices.Sort(keys)
	for _, key := range keys {
		value, ok := vars[key].(string)
		if !ok {
			continue
		}

		tmpl, err := template.New(key).Funcs(sprig.FuncMap()).Option("missingkey=error").Parse(value)
		if err != nil {
			return fmt.Errorf("parsing var %q: %w", key, err)
		}

		var buf bytes.Buffer
		if err := tmpl.Execute(&buf, vars); err != nil {
			return fmt.Errorf("rendering var %q: %w", key, err)
		}
		vars[key] = buf.String()
	}
	return nil
}
