package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"vuec-go/packages/compiler/src/template"
)

// FileName is the project configuration file looked up by FindAndLoad
const FileName = "vuec.toml"

// File is a parsed vuec.toml
type File struct {
	Compiler CompilerSection `toml:"compiler"`
	Output   OutputSection   `toml:"output"`

	// Dir is the directory containing the file (set at load time)
	Dir string `toml:"-"`
}

// CompilerSection is the [compiler] table. Unset keys keep the defaults.
type CompilerSection struct {
	Mode          *template.GenerationMode `toml:"mode"`
	Minify        *bool                    `toml:"minify"`
	RuntimeModule string                   `toml:"runtime-module"`
}

// OutputSection is the [output] table
type OutputSection struct {
	Format string `toml:"format"`
	// Dir is relative to the configuration file
	Dir string `toml:"dir"`
}

// Load parses a configuration file
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read %s: %w", path, err)
	}

	var f File
	meta, err := toml.Decode(string(data), &f)
	if err != nil {
		return nil, fmt.Errorf("parse error in %s: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("%s: unknown key %q", path, undecoded[0].String())
	}
	if _, err := ParseOutputFormat(f.Output.Format); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	f.Dir, err = filepath.Abs(filepath.Dir(path))
	if err != nil {
		return nil, fmt.Errorf("cannot resolve path %s: %w", path, err)
	}
	return &f, nil
}

// FindAndLoad walks up from startDir to find a vuec.toml file, then loads
// it. Returns nil if no file is found.
func FindAndLoad(startDir string) (*File, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return nil, err
	}

	for {
		path := filepath.Join(dir, FileName)
		if _, err := os.Stat(path); err == nil {
			return Load(path)
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return nil, nil
		}
		dir = parent
	}
}

// Options turns the file into config options. A nil file yields none.
func (f *File) Options() []CompilerConfigOption {
	if f == nil {
		return nil
	}
	var opts []CompilerConfigOption
	if f.Compiler.Mode != nil {
		opts = append(opts, WithMode(*f.Compiler.Mode))
	}
	if f.Compiler.Minify != nil {
		opts = append(opts, WithMinify(MinifyDefault(f.Compiler.Minify, false)))
	}
	opts = append(opts, WithRuntimeModule(f.Compiler.RuntimeModule))
	if f.Output.Format != "" {
		// validated by Load
		format, _ := ParseOutputFormat(f.Output.Format)
		opts = append(opts, WithFormat(format))
	}
	if f.Output.Dir != "" {
		dir := f.Output.Dir
		if !filepath.IsAbs(dir) {
			dir = filepath.Join(f.Dir, dir)
		}
		opts = append(opts, WithOutDir(dir))
	}
	return opts
}
