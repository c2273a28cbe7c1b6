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

package output

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/docker/go-units"
	"gopkg.in/yaml.v3"

	"github.com/rancher-sandbox/vardbpkg/pkg/constants"
	v1 "github.com/rancher-sandbox/vardbpkg/pkg/types/v1"
)

// Encoder writes package records and ebuild variables in one output format
type Encoder struct {
	format string
	fields []string
}

// NewEncoder validates the format and the optional field selection. The
// selection is kept in record field order and only applies to json and yaml.
func NewEncoder(format string, fields []string) (*Encoder, error) {
	supported := false
	for _, f := range constants.GetOutputFormats() {
		if f == format {
			supported = true
			break
		}
	}
	if !supported {
		return nil, fmt.Errorf("unsupported output format '%s', valid formats are: %s",
			format, strings.Join(constants.GetOutputFormats(), ", "))
	}

	selected := map[string]bool{}
	for _, f := range fields {
		f = strings.ToLower(strings.TrimSpace(f))
		if f == "" {
			continue
		}
		if _, ok := (v1.Package{}).Field(f); !ok {
			return nil, fmt.Errorf("unknown field '%s', valid fields are: %s", f, strings.Join(v1.PackageFields, ", "))
		}
		selected[f] = true
	}

	e := &Encoder{format: format}
	for _, f := range v1.PackageFields {
		if selected[f] {
			e.fields = append(e.fields, f)
		}
	}
	return e, nil
}

func (e *Encoder) Format() string {
	return e.format
}

// Encode writes the given packages to w
func (e *Encoder) Encode(w io.Writer, pkgs []v1.Package) error {
	if pkgs == nil {
		pkgs = []v1.Package{}
	}
	switch e.format {
	case constants.OutputText:
		return encodeTable(w, pkgs)
	case constants.OutputYAML:
		return encodeYAML(w, e.records(pkgs))
	default:
		return encodeJSON(w, e.records(pkgs))
	}
}

// EncodeVariables writes ebuild variables to w, text output is one sorted NAME=value per line
func (e *Encoder) EncodeVariables(w io.Writer, vars map[string]string) error {
	switch e.format {
	case constants.OutputText:
		names := make([]string, 0, len(vars))
		for name := range vars {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			if _, err := fmt.Fprintf(w, "%s=%s\n", strings.ToUpper(name), strconv.Quote(vars[name])); err != nil {
				return err
			}
		}
		return nil
	case constants.OutputYAML:
		return encodeYAML(w, vars)
	default:
		return encodeJSON(w, vars)
	}
}

// records returns the packages themselves or, with a field selection, the
// selected name/value pairs of each package in field order.
func (e *Encoder) records(pkgs []v1.Package) interface{} {
	if len(e.fields) == 0 {
		return pkgs
	}
	out := make([]orderedRecord, 0, len(pkgs))
	for _, p := range pkgs {
		r := orderedRecord{}
		for _, f := range e.fields {
			v, _ := p.Field(f)
			r = append(r, [2]string{f, v})
		}
		out = append(out, r)
	}
	return out
}

func encodeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func encodeYAML(w io.Writer, v interface{}) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}

func encodeTable(w io.Writer, pkgs []v1.Package) error {
	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
	fmt.Fprintln(tw, "CATEGORY\tPACKAGE\tVERSION\tSIZE\tDESCRIPTION")
	for _, p := range pkgs {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", p.Category, p.Name, p.Version, humanSize(p.Size), p.Description)
	}
	return tw.Flush()
}

// humanSize renders the byte count of a SIZE file, anything else is shown as is
func humanSize(size string) string {
	if size == "" {
		return "-"
	}
	n, err := strconv.ParseInt(size, 10, 64)
	if err != nil {
		return size
	}
	return units.BytesSize(float64(n))
}
