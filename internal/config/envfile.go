package config

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// LoadEnvFiles assembles the task environment: the current process env,
// overlaid with .env and then .env.<profile> from the project root, with
// ${VAR} / ${VAR:-default} references expanded. The result is returned as
// a KEY=VALUE slice; the process environment itself is never mutated.
func LoadEnvFiles(root, profile string) ([]string, error) {
	vars := make(map[string]string)
	var order []string

	record := func(key, val string) {
		if _, ok := vars[key]; !ok {
			order = append(order, key)
		}
		vars[key] = val
	}

	for _, kv := range os.Environ() {
		if k, v, ok := strings.Cut(kv, "="); ok {
			record(k, v)
		}
	}

	files := []string{filepath.Join(root, ".env")}
	if p := strings.TrimSpace(profile); p != "" {
		files = append(files, filepath.Join(root, ".env."+p))
	}
	for _, f := range files {
		if err := parseEnvFile(f, record); err != nil {
			return nil, err
		}
	}

	expandAll(vars)

	env := make([]string, 0, len(order))
	for _, k := range order {
		env = append(env, k+"="+vars[k])
	}
	return env, nil
}

// parseEnvFile reads KEY=VALUE lines, skipping comments and blanks.
// A missing file is fine; a present but unreadable one is reported.
func parseEnvFile(path string, record func(key, val string)) error {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("reading env file %s: %w", path, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		line = strings.TrimPrefix(line, "export ")
		key, val, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		val = strings.TrimSpace(val)
		if len(val) >= 2 {
			if (val[0] == '"' && val[len(val)-1] == '"') || (val[0] == '\'' && val[len(val)-1] == '\'') {
				val = val[1 : len(val)-1]
			}
		}
		record(key, val)
	}
	return scanner.Err()
}

// expandAll runs multiple substitution passes so chained references
// (${A} -> ${B} -> value) settle; it stops as soon as a pass changes nothing.
func expandAll(vars map[string]string) {
	for pass := 0; pass < 5; pass++ {
		changed := 0
		for key, val := range vars {
			if !strings.Contains(val, "${") {
				continue
			}
			if expanded := expandValue(val, key, vars); expanded != val {
				vars[key] = expanded
				changed++
			}
		}
		if changed == 0 {
			return
		}
	}
}

// expandValue substitutes ${NAME} and ${NAME:-default}. A self-reference is
// left untouched to avoid an expansion loop; an unknown name without a
// default expands to the empty string.
func expandValue(input, currentKey string, vars map[string]string) string {
	var out strings.Builder
	for i := 0; i < len(input); {
		if input[i] == '$' && i+1 < len(input) && input[i+1] == '{' {
			end := strings.IndexByte(input[i+2:], '}')
			if end < 0 {
				out.WriteString(input[i:])
				break
			}
			ref := input[i+2 : i+2+end]
			name, def, hasDef := strings.Cut(ref, ":-")
			if name == currentKey {
				out.WriteString(input[i : i+2+end+1])
			} else if v, ok := vars[name]; ok && v != "" {
				out.WriteString(v)
			} else if hasDef {
				out.WriteString(def)
			}
			i += 2 + end + 1
			continue
		}
		out.WriteByte(input[i])
		i++
	}
	return out.String()
}
