/*
Copyright © 2025 SUSE LLC

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package ebuild extracts the top level variable assignments of an ebuild.
//
// It is not a bash parser: functions are skipped, arrays are flattened to a
// space separated string and ${VAR} references are only expanded when VAR is
// assigned in the same file. Parameter expansions such as ${PV%%_*} are left
// untouched.
package ebuild

import (
	"sort"
	"strings"
	"unicode"

	v1 "github.com/rancher-sandbox/vardbpkg/pkg/types/v1"
)

// Data holds the variables of an ebuild, keyed by lowercase name
type Data struct {
	variables map[string]string
}

func New() *Data {
	return &Data{variables: map[string]string{}}
}

// Insert sets a variable, the name is case insensitive
func (d *Data) Insert(name, value string) {
	d.variables[strings.ToLower(name)] = value
}

// Get returns the value of a variable, the name is case insensitive
func (d *Data) Get(name string) (string, bool) {
	v, ok := d.variables[strings.ToLower(name)]
	return v, ok
}

// Value returns the value of a variable or an empty string if it is not set
func (d *Data) Value(name string) string {
	v, _ := d.Get(name)
	return v
}

// Variables returns all the variables keyed by lowercase name
func (d *Data) Variables() map[string]string {
	return d.variables
}

// Scan reads and parses the ebuild at path
func Scan(fs v1.FS, path string) (*Data, error) {
	content, err := fs.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(string(content)), nil
}

// Parse extracts the variable assignments from the ebuild content. Malformed
// input never fails, unterminated quotes or arrays consume the rest of the file.
func Parse(content string) *Data {
	d := New()
	lines := strings.Split(content, "\n")

	nextStartsWith := func(i int, prefix string) bool {
		return i+1 < len(lines) && strings.HasPrefix(strings.TrimSpace(lines[i+1]), prefix)
	}

	for i := 0; i < len(lines); i++ {
		trimmed := strings.TrimSpace(lines[i])
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}

		if isFunction(trimmed, nextStartsWith(i, "{")) {
			i = skipFunction(lines, i)
			continue
		}

		eq := strings.IndexByte(trimmed, '=')
		if eq < 0 {
			continue
		}
		name := strings.TrimSpace(trimmed[:eq])
		if !isVariableName(name) {
			continue
		}

		value := strings.TrimSpace(trimmed[eq+1:])
		if value == "" && !nextStartsWith(i, "(") {
			d.Insert(name, "")
			continue
		}
		value = stripComment(value)

		var raw string
		switch {
		case strings.HasPrefix(value, "(") || (value == "" && nextStartsWith(i, "(")):
			raw, i = readArray(lines, i, value)
		case isOpenQuote(value):
			raw, i = readQuoted(lines, i, value)
		default:
			raw = unquote(value)
		}

		d.Insert(name, d.expandSelf(name, raw))
	}

	d.resolve()
	return d
}

func isFunction(line string, braceOnNextLine bool) bool {
	opens := strings.Contains(line, "{") || braceOnNextLine
	if strings.Contains(line, "()") && opens {
		return true
	}
	return strings.HasPrefix(line, "function ") && opens
}

// skipFunction returns the index of the line closing the function started at i
func skipFunction(lines []string, i int) int {
	depth := 0
	current := strings.TrimSpace(lines[i])
	for {
		depth += strings.Count(current, "{") - strings.Count(current, "}")
		if depth <= 0 && strings.Contains(current, "}") {
			return i
		}
		if i+1 >= len(lines) {
			return i
		}
		i++
		current = strings.TrimSpace(lines[i])
	}
}

func isVariableName(name string) bool {
	if name == "" {
		return false
	}
	for _, r := range name {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' {
			return false
		}
	}
	return true
}

// stripComment drops a trailing comment unless the '#' sits inside quotes
func stripComment(value string) string {
	hash := strings.IndexByte(value, '#')
	if hash < 0 {
		return value
	}
	prefix := value[:hash]
	if (strings.Count(prefix, `"`)+strings.Count(prefix, "'"))%2 == 0 {
		return strings.TrimSpace(prefix)
	}
	return value
}

// readArray flattens NAME=( a b ) which may span several lines. It returns
// the words joined by single spaces and the index of the last consumed line.
func readArray(lines []string, i int, value string) (string, int) {
	current := value
	if current == "" {
		i++
		current = strings.TrimSpace(lines[i])
	}

	var content strings.Builder
	if strings.Contains(current, ")") {
		end := strings.LastIndex(current, ")")
		start := strings.Index(current, "(")
		if start >= 0 && start < end {
			content.WriteString(current[start+1 : end])
		} else if start < 0 {
			content.WriteString(current[:end])
		}
		return collapseSpaces(content.String()), i
	}

	content.WriteString(strings.TrimPrefix(current, "("))
	for i+1 < len(lines) {
		i++
		next := strings.TrimSpace(lines[i])
		content.WriteByte(' ')
		if end := strings.Index(next, ")"); end >= 0 {
			content.WriteString(next[:end])
			break
		}
		content.WriteString(next)
	}
	return collapseSpaces(content.String()), i
}

func isOpenQuote(value string) bool {
	if value == "" {
		return false
	}
	q := value[0]
	return (q == '"' || q == '\'') && strings.IndexByte(value[1:], q) < 0
}

// readQuoted joins a quoted value continuing over the next lines until the
// closing quote.
func readQuoted(lines []string, i int, value string) (string, int) {
	quote := value[0]
	var content strings.Builder
	content.WriteString(value[1:])
	for i+1 < len(lines) {
		i++
		next := strings.TrimSpace(lines[i])
		content.WriteByte(' ')
		if end := strings.IndexByte(next, quote); end >= 0 {
			content.WriteString(next[:end])
			break
		}
		content.WriteString(next)
	}
	return collapseSpaces(content.String()), i
}

func unquote(value string) string {
	if len(value) >= 2 {
		first, last := value[0], value[len(value)-1]
		if first == last && (first == '"' || first == '\'') {
			return value[1 : len(value)-1]
		}
	}
	return value
}

func collapseSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func references(name string) []string {
	upper, lower := strings.ToUpper(name), strings.ToLower(name)
	return []string{"${" + upper + "}", "$" + upper, "${" + lower + "}", "$" + lower}
}

// expandSelf replaces references to name with its previous value, so
// IUSE="${IUSE} foo" extends the earlier assignment.
func (d *Data) expandSelf(name, value string) string {
	old, ok := d.Get(name)
	if !ok {
		return value
	}
	for _, ref := range references(name) {
		value = strings.ReplaceAll(value, ref, old)
	}
	return value
}

// resolve expands references to other variables. Two passes cover one level
// of indirection, self references are left to expandSelf. Longer names are replaced first so $PN is not read as $P.
func (d *Data) resolve() {
	names := make([]string, 0, len(d.variables))
	for name := range d.variables {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		if len(names[i]) != len(names[j]) {
			return len(names[i]) > len(names[j])
		}
		return names[i] < names[j]
	})

	for pass := 0; pass < 2; pass++ {
		updates := map[string]string{}
		for _, key := range names {
			value := d.variables[key]
			if !strings.Contains(value, "$") {
				continue
			}
			resolved := value
			for _, name := range names {
				if name == key {
					continue
				}
				for _, ref := range references(name) {
					resolved = strings.ReplaceAll(resolved, ref, d.variables[name])
				}
			}
			if resolved != value {
				updates[key] = resolved
			}
		}
		for k, v := range updates {
			d.variables[k] = v
		}
	}
}
