package schema

import (
	"strings"
	"testing"
)

const testDoc = `
modules:
  - name: test
    revision: "2025-01-01"
    namespace: urn:test
    nodes:
      - name: system
        kind: container
        children:
          - name: hostname
            kind: leaf
          - name: ntp
            kind: container
            children:
              - name: server
                kind: list
                keys: [address]
                children:
                  - name: prefer
                    kind: leaf
                    default: "false"
                  - name: address
                    kind: leaf
`

func TestParse(t *testing.T) {
	sc, err := Parse([]byte(testDoc))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if len(sc.Modules) != 1 {
		t.Fatalf("modules: got %d", len(sc.Modules))
	}
	m := sc.Modules[0]
	if m.Name != "test" || m.Revision != "2025-01-01" || !m.Implemented {
		t.Errorf("module: got %+v", m)
	}

	sys := sc.Root.Child("system")
	if sys == nil || sys.Kind != KindContainer {
		t.Fatalf("system: got %+v", sys)
	}
	if got := sys.Child("hostname").Kind; got != KindLeaf {
		t.Errorf("hostname kind: got %s", got)
	}
}

func TestParseListKeyNormalization(t *testing.T) {
	sc, err := Parse([]byte(testDoc))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	server := sc.Root.Child("system").Child("ntp").Child("server")
	if server.Kind != KindList {
		t.Fatalf("server kind: got %s", server.Kind)
	}

	// The declared key is re-kinded and moved to the front, even though the
	// document lists it last.
	if len(server.Children) != 2 {
		t.Fatalf("children: got %d", len(server.Children))
	}
	first := server.Children[0]
	if first.Name != "address" || first.Kind != KindListKeyLeaf {
		t.Errorf("first child: got %s (%s)", first.Name, first.Kind)
	}
	if !first.IsListKey() {
		t.Error("IsListKey false for key leaf")
	}
	if server.Children[1].Name != "prefer" {
		t.Errorf("second child: got %s", server.Children[1].Name)
	}
}

func TestPath(t *testing.T) {
	sc, err := Parse([]byte(testDoc))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if got := sc.Root.Path(); got != "/" {
		t.Errorf("root path: got %q", got)
	}
	hostname := sc.Root.Child("system").Child("hostname")
	if got := hostname.Path(); got != "/system/hostname" {
		t.Errorf("hostname path: got %q", got)
	}
}

func TestMergeRejectsDuplicates(t *testing.T) {
	sc, err := Parse([]byte(testDoc))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	err = sc.Merge([]byte(testDoc))
	if err == nil || !strings.Contains(err.Error(), "duplicate") {
		t.Errorf("duplicate merge: got %v", err)
	}
}

func TestParseRejectsKeylessList(t *testing.T) {
	doc := `
modules:
  - name: bad
    nodes:
      - name: entries
        kind: list
        children:
          - name: value
            kind: leaf
`
	if _, err := Parse([]byte(doc)); err == nil {
		t.Error("keyless list accepted")
	}
}

func TestParseRejectsLeafWithChildren(t *testing.T) {
	doc := `
modules:
  - name: bad
    nodes:
      - name: value
        kind: leaf
        children:
          - name: sub
            kind: leaf
`
	if _, err := Parse([]byte(doc)); err == nil {
		t.Error("leaf with children accepted")
	}
}

func TestBase(t *testing.T) {
	sc := Base()
	if len(sc.Modules) == 0 {
		t.Fatal("base model has no modules")
	}
	for _, name := range []string{"system", "interfaces", "routing"} {
		if sc.Root.Child(name) == nil {
			t.Errorf("base model missing top-level %s", name)
		}
	}

	// Spot-check a supplied default.
	mtu := sc.Root.Child("interfaces").Child("interface").Child("mtu")
	if mtu == nil || mtu.Default != "1500" {
		t.Errorf("interface mtu default: got %+v", mtu)
	}
}
