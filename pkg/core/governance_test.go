//go:build governance

package core_test

import (
	"go/types"
	"strings"
	"testing"

	"golang.org/x/tools/go/packages"
)

const modulePath = "github.com/leapstack-labs/opcalc"

// TestGovernance_OperationPackages verifies that every package under
// pkg/operations declares an exported Operation type whose value (not
// pointer) satisfies core.Operation, so variants stay zero-size and
// interchangeable.
func TestGovernance_OperationPackages(t *testing.T) {
	cfg := &packages.Config{
		Mode: packages.NeedName | packages.NeedImports | packages.NeedTypes |
			packages.NeedTypesInfo | packages.NeedDeps,
	}
	pkgs, err := packages.Load(cfg, modulePath+"/pkg/...")
	if err != nil {
		t.Fatalf("Failed to load packages: %v", err)
	}

	var iface *types.Interface
	for _, p := range pkgs {
		if p.PkgPath != modulePath+"/pkg/core" {
			continue
		}
		obj := p.Types.Scope().Lookup("Operation")
		if obj == nil {
			t.Fatal("pkg/core does not declare Operation")
		}
		iface, _ = obj.Type().Underlying().(*types.Interface)
	}
	if iface == nil {
		t.Fatal("Could not find core.Operation interface")
	}

	found := 0
	for _, p := range pkgs {
		if !strings.HasPrefix(p.PkgPath, modulePath+"/pkg/operations/") {
			continue
		}
		found++

		obj := p.Types.Scope().Lookup("Operation")
		if obj == nil {
			t.Errorf("%s: missing exported Operation type", p.PkgPath)
			continue
		}
		named, ok := obj.Type().(*types.Named)
		if !ok {
			t.Errorf("%s: Operation is not a named type", p.PkgPath)
			continue
		}
		if !types.Implements(named, iface) {
			t.Errorf("%s: Operation value does not implement core.Operation", p.PkgPath)
		}
		if st, ok := named.Underlying().(*types.Struct); !ok || st.NumFields() != 0 {
			t.Errorf("%s: Operation must be an empty struct", p.PkgPath)
		}
	}

	if found == 0 {
		t.Fatal("no operation packages found")
	}
}
