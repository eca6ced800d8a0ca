// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package controls

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"cogentcore.org/core/base/iox/tomlx"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Read reads controls in TOML format from the given reader, starting
// from the defaults for any key that is not present. Unknown keys are
// an error, so that a misspelled speed is not silently ignored.
func Read(r io.Reader) (Controls, error) {
	c := Controls{}
	c.Defaults()
	dec := toml.NewDecoder(r).DisallowUnknownFields()
	if err := dec.Decode(&c); err != nil {
		return c, err
	}
	return c.Clamp(), nil
}

// ReadYAML is like [Read] for YAML format.
func ReadYAML(r io.Reader) (Controls, error) {
	c := Controls{}
	c.Defaults()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil && err != io.EOF {
		return c, err
	}
	return c.Clamp(), nil
}

// IsYAML returns whether the given file is in YAML format,
// based on its extension. All other files are in TOML format.
func IsYAML(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	return ext == ".yaml" || ext == ".yml"
}

// decode reads controls from b in the format of the given file.
func decode(b []byte, filename string) (Controls, error) {
	if IsYAML(filename) {
		return ReadYAML(bytes.NewReader(b))
	}
	return Read(bytes.NewReader(b))
}

// Open reads controls from the given TOML or YAML file. See [Read].
func Open(filename string) (Controls, error) {
	b, err := os.ReadFile(filename)
	if err != nil {
		return Controls{}, err
	}
	c, err := decode(b, filename)
	if err != nil {
		return c, fmt.Errorf("controls.Open %q: %w", filename, err)
	}
	return c, nil
}

// Save writes the given controls to the given TOML or YAML file.
func Save(c Controls, filename string) error {
	if !IsYAML(filename) {
		return tomlx.Save(&c, filename)
	}
	b, err := yaml.Marshal(&c)
	if err != nil {
		return err
	}
	return os.WriteFile(filename, b, 0666)
}
