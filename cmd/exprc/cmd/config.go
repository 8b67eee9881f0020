// Copyright 2020-2025 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cmd

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/bufbuild/exprc"
	"github.com/bufbuild/exprc/report"
)

// Config is the contents of the file named by --config.
//
//	[lexer]
//	lenient_escapes = true
//
//	[render]
//	compact = false
//	color = true
//	show_debug = false
//	show_remarks = false
//	warnings_are_errors = false
//
//	[translate]
//	parallelism = 4
//	search_paths = ["lib"]
type Config struct {
	Lexer     LexerConfig     `toml:"lexer"`
	Render    RenderConfig    `toml:"render"`
	Translate TranslateConfig `toml:"translate"`
}

type LexerConfig struct {
	LenientEscapes bool `toml:"lenient_escapes"`
}

type RenderConfig struct {
	Compact     bool `toml:"compact"`
	Color       bool `toml:"color"`
	ShowDebug   bool `toml:"show_debug"`
	ShowRemarks bool `toml:"show_remarks"`

	WarningsAreErrors bool `toml:"warnings_are_errors"`
}

type TranslateConfig struct {
	Parallelism int      `toml:"parallelism"`
	SearchPaths []string `toml:"search_paths"`
}

// LoadConfig reads a config file. Unknown keys are an error, so that typos
// do not go unnoticed.
func LoadConfig(path string) (Config, error) {
	var cfg Config
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("reading config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, key := range undecoded {
			keys[i] = key.String()
		}
		return Config{}, fmt.Errorf("reading config %s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	return cfg, nil
}

// Frontend returns a front end configured by c.
func (c Config) Frontend() *exprc.Frontend {
	f := &exprc.Frontend{MaxParallelism: c.Translate.Parallelism}
	f.Lexer.LenientEscapes = c.Lexer.LenientEscapes
	return f
}

// Renderer returns a diagnostic renderer configured by c.
func (c Config) Renderer() report.Renderer {
	return report.Renderer{
		Compact:     c.Render.Compact,
		Colorize:    c.Render.Color,
		ShowDebug:   c.Render.ShowDebug,
		ShowRemarks: c.Render.ShowRemarks,

		WarningsAreErrors: c.Render.WarningsAreErrors,
	}
}
