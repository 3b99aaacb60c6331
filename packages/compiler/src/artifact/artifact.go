// Package artifact encodes a compiled component with its diagnostics and
// binding table as deterministic CBOR.
package artifact

import (
	"bytes"
	"crypto/sha256"
	"fmt"

	"github.com/fxamacker/cbor/v2"

	"vuec-go/packages/compiler/src/binding"
	"vuec-go/packages/compiler/src/util"
)

// Version of the artifact layout
const Version = 1

var cborEncMode cbor.EncMode

func init() {
	em, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		panic(fmt.Sprintf("artifact: failed to create CBOR enc mode: %v", err))
	}
	cborEncMode = em
}

// Artifact is one compiled component
type Artifact struct {
	Version     byte         `cbor:"1,keyasint"`
	Source      string       `cbor:"2,keyasint"`
	Mode        string       `cbor:"3,keyasint"`
	Code        string       `cbor:"4,keyasint"`
	Hash        [32]byte     `cbor:"5,keyasint"` // sha256 of Code
	Diagnostics []Diagnostic `cbor:"6,keyasint,omitempty"`
	Bindings    []Binding    `cbor:"7,keyasint,omitempty"`
}

// Diagnostic is a recorded degradation
type Diagnostic struct {
	Code    string `cbor:"1,keyasint"`
	Level   string `cbor:"2,keyasint"`
	Message string `cbor:"3,keyasint"`
}

// Binding is one entry of the binding table the template was compiled against
type Binding struct {
	Name   string `cbor:"1,keyasint"`
	Type   string `cbor:"2,keyasint"`
	Origin string `cbor:"3,keyasint"`
}

// New builds an artifact for the generated code of source
func New(source, mode, code string, diags util.Diagnostics, bindings []binding.Binding) *Artifact {
	a := &Artifact{
		Version: Version,
		Source:  source,
		Mode:    mode,
		Code:    code,
		Hash:    sha256.Sum256([]byte(code)),
	}
	for _, d := range diags {
		a.Diagnostics = append(a.Diagnostics, Diagnostic{Code: string(d.Code), Level: d.Level.String(), Message: d.Message})
	}
	for _, b := range bindings {
		a.Bindings = append(a.Bindings, Binding{Name: b.Name, Type: b.Type.String(), Origin: b.Origin.String()})
	}
	return a
}

// Marshal serializes an Artifact to CBOR bytes
func Marshal(a *Artifact) ([]byte, error) {
	return cborEncMode.Marshal(a)
}

// Unmarshal deserializes an Artifact and checks its code hash
func Unmarshal(data []byte) (*Artifact, error) {
	var a Artifact
	if err := cbor.Unmarshal(data, &a); err != nil {
		return nil, fmt.Errorf("artifact: unmarshal: %w", err)
	}
	if a.Version != Version {
		return nil, fmt.Errorf("artifact: unsupported version %d", a.Version)
	}
	if sum := sha256.Sum256([]byte(a.Code)); !bytes.Equal(sum[:], a.Hash[:]) {
		return nil, fmt.Errorf("artifact: code hash mismatch for %s", a.Source)
	}
	return &a, nil
}
