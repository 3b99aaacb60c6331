package template

import "fmt"

// GenerationMode decides how script bindings are addressed by template code
type GenerationMode int

const (
	// The template becomes `render(_ctx, _cache, $props, $setup, $data, $options)`
	// and bindings are read through those namespaces
	GenerationModeRenderFn GenerationMode = iota
	// The template is rendered inside setup and reads bindings directly;
	// refs are unwrapped with `.value`
	GenerationModeInline
)

func (m GenerationMode) String() string {
	if m == GenerationModeInline {
		return "inline"
	}
	return "render-fn"
}

// ParseGenerationMode parses "inline" or "render-fn"
func ParseGenerationMode(s string) (GenerationMode, error) {
	switch s {
	case "inline":
		return GenerationModeInline, nil
	case "render-fn", "renderfn", "":
		return GenerationModeRenderFn, nil
	}
	return 0, fmt.Errorf("unknown generation mode %q", s)
}

// UnmarshalText lets config files spell the mode as a string
func (m *GenerationMode) UnmarshalText(text []byte) error {
	mode, err := ParseGenerationMode(string(text))
	if err != nil {
		return err
	}
	*m = mode
	return nil
}

// MarshalText is the inverse of UnmarshalText
func (m GenerationMode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}
