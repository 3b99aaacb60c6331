package template

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestScopeRegistry(t *testing.T) {
	t.Run("should start with the root scope", func(t *testing.T) {
		r := NewScopeRegistry()
		if r.Len() != 1 {
			t.Errorf("Expected 1 scope, got %d", r.Len())
		}
		if r.Parent(RootScope) != RootScope {
			t.Errorf("Expected root to be its own parent")
		}
	})

	t.Run("should allocate scopes in pre-order", func(t *testing.T) {
		r := NewScopeRegistry()
		items, err := r.Add(RootScope, "item", "index")
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		child, err := r.Add(items, "child")
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if items != 1 || child != 2 {
			t.Errorf("Expected ids 1 and 2, got %d and %d", items, child)
		}
		if diff := cmp.Diff(&TemplateScope{Variables: []string{"child"}, Parent: 1}, r.Get(child)); diff != "" {
			t.Errorf("Scope mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("should reject parents that are not allocated yet", func(t *testing.T) {
		r := NewScopeRegistry()
		if _, err := r.Add(1, "x"); err == nil {
			t.Errorf("Expected an error for a forward parent")
		}
		if r.Len() != 1 {
			t.Errorf("Expected the rejected scope not to be stored, got %d scopes", r.Len())
		}
	})

	t.Run("should walk the ancestor chain", func(t *testing.T) {
		r := NewScopeRegistry()
		outer, _ := r.Add(RootScope, "row")
		sibling, _ := r.Add(RootScope, "other")
		inner, _ := r.Add(outer, "cell")

		if id, ok := r.Lookup(inner, "row"); !ok || id != outer {
			t.Errorf("Expected row in scope %d, got %d (%v)", outer, id, ok)
		}
		if id, ok := r.Lookup(inner, "cell"); !ok || id != inner {
			t.Errorf("Expected cell in scope %d, got %d (%v)", inner, id, ok)
		}
		if _, ok := r.Lookup(inner, "other"); ok {
			t.Errorf("Expected a sibling scope variable to be invisible")
		}
		if _, ok := r.Lookup(sibling, "row"); ok {
			t.Errorf("Expected row to be invisible from a sibling scope")
		}
		if _, ok := r.Lookup(42, "row"); ok {
			t.Errorf("Expected an unknown scope to resolve nothing")
		}
	})

	t.Run("should give the innermost declaration precedence", func(t *testing.T) {
		r := NewScopeRegistry()
		outer, _ := r.Add(RootScope, "item")
		inner, _ := r.Add(outer, "item")
		if id, _ := r.Lookup(inner, "item"); id != inner {
			t.Errorf("Expected scope %d, got %d", inner, id)
		}
	})
}

func TestGenerationMode(t *testing.T) {
	t.Run("should parse mode names", func(t *testing.T) {
		var m GenerationMode
		if err := m.UnmarshalText([]byte("inline")); err != nil || m != GenerationModeInline {
			t.Errorf("Expected inline, got %v (%v)", m, err)
		}
		if err := m.UnmarshalText([]byte("render-fn")); err != nil || m != GenerationModeRenderFn {
			t.Errorf("Expected render-fn, got %v (%v)", m, err)
		}
		if err := m.UnmarshalText([]byte("ssr")); err == nil {
			t.Errorf("Expected an error for an unknown mode")
		}
	})
}
