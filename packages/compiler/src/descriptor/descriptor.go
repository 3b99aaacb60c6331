// Package descriptor loads a component unit from its YAML description: the
// template tree with its scope arena and the source of both scripts.
//
//	template:
//	  scopes:
//	    - { parent: 0, vars: [item] }
//	  roots:
//	    - element: ul
//	      children:
//	        - element: li
//	          for: item in items
//	          scope: 1
//	          children:
//	            - interpolation: item.name
//	script: |
//	  export default { props: ['items'] }
//	scriptSetup: |
//	  const title = 'x'
package descriptor

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"vuec-go/packages/compiler/src/template"
)

// Descriptor is a loaded component unit
type Descriptor struct {
	// Path names the unit in diagnostics and output file names
	Path        string
	Roots       []template.Node
	Scopes      *template.ScopeRegistry
	Script      string
	ScriptSetup string
}

type rawDescriptor struct {
	Template    rawTemplate `yaml:"template"`
	Script      string      `yaml:"script"`
	ScriptSetup string      `yaml:"scriptSetup"`
}

type rawTemplate struct {
	Scopes []rawScope `yaml:"scopes"`
	Roots  []rawNode  `yaml:"roots"`
}

// rawScope is one non-root scope. Scopes are numbered from 1 in list order.
type rawScope struct {
	Parent template.ScopeID `yaml:"parent"`
	Vars   []string         `yaml:"vars"`
}

// Load reads and parses a descriptor file
func Load(path string) (*Descriptor, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read %s: %w", path, err)
	}
	return Parse(data, path)
}

// Parse decodes a descriptor. The scope arena and the template tree are
// validated; scripts are kept as text.
func Parse(data []byte, path string) (*Descriptor, error) {
	var raw rawDescriptor
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse error in %s: %w", path, err)
	}

	scopes := template.NewScopeRegistry()
	for i, s := range raw.Template.Scopes {
		if _, err := scopes.Add(s.Parent, s.Vars...); err != nil {
			return nil, fmt.Errorf("%s: template.scopes[%d]: %w", path, i, err)
		}
	}

	b := &builder{scopes: scopes}
	roots, err := b.nodes(raw.Template.Roots, template.RootScope, "template.roots")
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	log.Debugf("loaded %s: %d roots, %d scopes", path, len(roots), scopes.Len())
	return &Descriptor{
		Path:        path,
		Roots:       roots,
		Scopes:      scopes,
		Script:      raw.Script,
		ScriptSetup: raw.ScriptSetup,
	}, nil
}
