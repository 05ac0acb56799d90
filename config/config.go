// Package config reads the YAML configuration file used by the frothy
// command.
//
//	constants:
//	  G: 9.81
//	libraries: [math]
//	print: true
//	debug: false
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/cameronp98/frothy/frothy"
	"github.com/cameronp98/frothy/frothy/lib/libmath"
	"gopkg.in/yaml.v3"
)

// Libraries maps the names accepted in the libraries list to their loaders.
var Libraries = map[string]frothy.Loader{
	libmath.DefaultLibraryName: libmath.LoadLibrary,
}

// File is the decoded contents of a configuration file.
type File struct {
	Constants map[string]float64 `yaml:"constants"`
	Libraries []string           `yaml:"libraries"`
	Print     bool               `yaml:"print"`
	Debug     bool               `yaml:"debug"`
}

// ValidationError lists the problems found in a configuration file.
type ValidationError struct {
	Path   string
	Issues []string
}

func (e *ValidationError) Error() string {
	var b strings.Builder
	b.WriteString("config: ")
	b.WriteString(e.Path)
	b.WriteString(": invalid configuration:")
	for _, issue := range e.Issues {
		b.WriteString("\n- ")
		b.WriteString(issue)
	}
	return b.String()
}

// Load reads and validates the configuration file at path.  An empty file is
// a valid configuration with every option unset.
func Load(path string) (*File, error) {
	if path == "" {
		return nil, fmt.Errorf("config: empty path")
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("config: open %s: %w", path, err)
	}
	defer f.Close()
	c, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	err = c.validate(path)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// Decode reads a configuration from r.  Unknown keys are an error.
func Decode(r io.Reader) (*File, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	c := &File{}
	err := dec.Decode(c)
	if errors.Is(err, io.EOF) {
		return c, nil
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (c *File) validate(path string) error {
	var issues []string
	for _, name := range c.constantNames() {
		if !frothy.ValidName(name) {
			issues = append(issues, fmt.Sprintf("constant %q is not a valid name", name))
		}
	}
	for _, lib := range c.Libraries {
		if _, ok := Libraries[lib]; !ok {
			issues = append(issues, fmt.Sprintf("unknown library %q", lib))
		}
	}
	if len(issues) > 0 {
		return &ValidationError{Path: path, Issues: issues}
	}
	return nil
}

func (c *File) constantNames() []string {
	names := make([]string, 0, len(c.Constants))
	for name := range c.Constants {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Configs returns the interpreter configuration described by c.  Libraries
// are loaded before constants so a constant may override a library binding.
func (c *File) Configs() ([]frothy.Config, error) {
	var configs []frothy.Config
	for _, lib := range c.Libraries {
		load, ok := Libraries[lib]
		if !ok {
			return nil, fmt.Errorf("config: unknown library %q", lib)
		}
		configs = append(configs, frothy.WithLibrary(load))
	}
	for _, name := range c.constantNames() {
		configs = append(configs, frothy.WithConstant(name, frothy.Number(c.Constants[name])))
	}
	return configs, nil
}
