// Package config resolves analyzer settings from flags and an optional YAML file.
package config

import (
	"bytes"
	"io"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Options is the resolved setting set for one pass.
type Options struct {
	Exceptions []string
	UnionTypes []string
	Errors     bool
	CommaOK    bool
	Chan       bool
	GoStmt     bool
	DeferStmt  bool
}

// Defaults returns the settings used when nothing is configured.
func Defaults() Options {
	return Options{
		Errors:  true,
		CommaOK: true,
		Chan:    true,
	}
}

// File mirrors the YAML configuration file. Unset booleans keep the flag values.
//
//	exceptions: [Lookup, strconv.Atoi]
//	union-types: [github.com/example/result.Result]
//	errors: true
//	comma-ok: true
//	chan: true
//	go-stmt: false
//	defer-stmt: false
type File struct {
	Exceptions []string `yaml:"exceptions"`
	UnionTypes []string `yaml:"union-types"`
	Errors     *bool    `yaml:"errors"`
	CommaOK    *bool    `yaml:"comma-ok"`
	Chan       *bool    `yaml:"chan"`
	GoStmt     *bool    `yaml:"go-stmt"`
	DeferStmt  *bool    `yaml:"defer-stmt"`
}

// Load reads and decodes the file at path.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read config")
	}

	f, err := Decode(bytes.NewReader(data))
	if err != nil {
		return nil, errors.Wrapf(err, "config %s", path)
	}

	return f, nil
}

// Decode decodes a configuration document. Unknown keys are rejected.
// An empty document yields an empty File.
func Decode(r io.Reader) (*File, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var f File
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return nil, errors.Wrap(err, "decode")
	}

	return &f, nil
}

// Apply overlays the file on o: lists are appended, set booleans win.
func (f *File) Apply(o Options) Options {
	if f == nil {
		return o
	}

	o.Exceptions = append(append([]string(nil), o.Exceptions...), f.Exceptions...)
	o.UnionTypes = append(append([]string(nil), o.UnionTypes...), f.UnionTypes...)

	set := func(dst *bool, src *bool) {
		if src != nil {
			*dst = *src
		}
	}
	set(&o.Errors, f.Errors)
	set(&o.CommaOK, f.CommaOK)
	set(&o.Chan, f.Chan)
	set(&o.GoStmt, f.GoStmt)
	set(&o.DeferStmt, f.DeferStmt)

	return o
}
