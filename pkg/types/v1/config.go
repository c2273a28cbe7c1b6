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

package v1

// Config is the shared runtime configuration passed down to the parsers
type Config struct {
	Fs     FS
	Logger Logger
}

// ListConfig holds the settings of the list command, as read from flags, env and config files
type ListConfig struct {
	Config `yaml:"-" mapstructure:",squash"`
	Path   string   `yaml:"path,omitempty" mapstructure:"path"`
	Output string   `yaml:"output,omitempty" mapstructure:"output"`
	Fields []string `yaml:"fields,omitempty" mapstructure:"fields"`
	Sort   bool     `yaml:"sort,omitempty" mapstructure:"sort"`
}
