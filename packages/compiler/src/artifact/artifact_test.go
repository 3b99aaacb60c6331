package artifact

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"vuec-go/packages/compiler/src/binding"
	"vuec-go/packages/compiler/src/util"
)

func sample() *Artifact {
	var diags util.Diagnostics
	diags.Warn(util.DiagnosticUnknownField, "unknown field %q", "computd")
	bindings := []binding.Binding{
		{Name: "count", Type: binding.BindingSetupReactive, Origin: binding.OriginSetup},
		{Name: "msg", Type: binding.BindingProp, Origin: binding.OriginOptions},
	}
	return New("counter.yaml", "render-fn", "export default {};\n", diags, bindings)
}

func TestNew(t *testing.T) {
	t.Run("should flatten diagnostics and bindings", func(t *testing.T) {
		a := sample()
		expectedDiags := []Diagnostic{{Code: "unknown-field", Level: "warning", Message: `unknown field "computd"`}}
		if diff := cmp.Diff(expectedDiags, a.Diagnostics); diff != "" {
			t.Errorf("Diagnostics mismatch (-want +got):\n%s", diff)
		}
		expectedBindings := []Binding{
			{Name: "count", Type: "setup-reactive", Origin: "setup"},
			{Name: "msg", Type: "prop", Origin: "options"},
		}
		if diff := cmp.Diff(expectedBindings, a.Bindings); diff != "" {
			t.Errorf("Bindings mismatch (-want +got):\n%s", diff)
		}
	})
}

func TestMarshal(t *testing.T) {
	t.Run("should round-trip", func(t *testing.T) {
		a := sample()
		data, err := Marshal(a)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		got, err := Unmarshal(data)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if diff := cmp.Diff(a, got); diff != "" {
			t.Errorf("Artifact mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("should encode deterministically", func(t *testing.T) {
		first, _ := Marshal(sample())
		second, _ := Marshal(sample())
		if !bytes.Equal(first, second) {
			t.Errorf("Expected identical encodings")
		}
	})

	t.Run("should reject tampered code", func(t *testing.T) {
		a := sample()
		a.Code = "export default { evil: true };\n"
		data, _ := Marshal(a)
		if _, err := Unmarshal(data); err == nil || !strings.Contains(err.Error(), "hash mismatch") {
			t.Errorf("Expected a hash mismatch, got %v", err)
		}
	})

	t.Run("should reject other versions", func(t *testing.T) {
		a := sample()
		a.Version = Version + 1
		data, _ := Marshal(a)
		if _, err := Unmarshal(data); err == nil {
			t.Errorf("Expected an error")
		}
	})

	t.Run("should reject garbage", func(t *testing.T) {
		if _, err := Unmarshal([]byte{0xff, 0x00}); err == nil {
			t.Errorf("Expected an error")
		}
	})
}
