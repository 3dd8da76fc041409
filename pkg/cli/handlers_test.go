package cli

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/yangsh/yangsh/pkg/schema"
	"github.com/yangsh/yangsh/pkg/session"
)

const testModel = `
modules:
  - name: test
    namespace: urn:test
    nodes:
      - name: system
        kind: container
        children:
          - name: hostname
            kind: leaf
      - name: interfaces
        kind: np-container
        children:
          - name: interface
            kind: list
            keys: [name]
            children:
              - name: name
                kind: leaf
              - name: mtu
                kind: leaf
`

func testSchema(t *testing.T) *schema.Schema {
	t.Helper()
	sc, err := schema.Parse([]byte(testModel))
	if err != nil {
		t.Fatalf("parse schema: %v", err)
	}
	return sc
}

func TestDescendContainer(t *testing.T) {
	sc := testSchema(t)

	m, err := descend(sc, session.Configure{}, []string{"system"})
	if err != nil {
		t.Fatalf("descend: %v", err)
	}
	if got := m.SchemaPath(); got != "/system" {
		t.Errorf("SchemaPath: got %q", got)
	}
}

func TestDescendListConsumesKeys(t *testing.T) {
	sc := testSchema(t)

	m, err := descend(sc, session.Configure{}, []string{"interfaces", "interface", "eth0"})
	if err != nil {
		t.Fatalf("descend: %v", err)
	}
	if got := m.SchemaPath(); got != "/interfaces/interface" {
		t.Errorf("SchemaPath: got %q", got)
	}
	want := []string{"interfaces", "interface", "eth0"}
	if diff := cmp.Diff(want, m.Tokens()); diff != "" {
		t.Errorf("Tokens mismatch (-want +got):\n%s", diff)
	}
}

func TestDescendRelative(t *testing.T) {
	sc := testSchema(t)
	base := session.Configure{Steps: []session.PathStep{{Name: "interfaces"}}}

	m, err := descend(sc, base, []string{"interface", "eth1"})
	if err != nil {
		t.Fatalf("descend: %v", err)
	}
	if got := m.Display(); got != "interfaces interface eth1" {
		t.Errorf("Display: got %q", got)
	}
}

func TestDescendErrors(t *testing.T) {
	sc := testSchema(t)

	if _, err := descend(sc, session.Configure{}, []string{"nonsense"}); err == nil {
		t.Error("unknown node accepted")
	}
	if _, err := descend(sc, session.Configure{}, []string{"interfaces", "interface"}); err == nil ||
		!strings.Contains(err.Error(), "key") {
		t.Errorf("missing key: got %v", err)
	}
	if _, err := descend(sc, session.Configure{}, []string{"system", "hostname"}); err == nil ||
		!strings.Contains(err.Error(), "hierarchy") {
		t.Errorf("leaf descend: got %v", err)
	}
}

func TestSplitInput(t *testing.T) {
	words, partial := splitInput("show conf")
	if diff := cmp.Diff([]string{"show"}, words); diff != "" {
		t.Errorf("words mismatch (-want +got):\n%s", diff)
	}
	if partial != "conf" {
		t.Errorf("partial: got %q", partial)
	}

	words, partial = splitInput("show configuration ")
	if len(words) != 2 || partial != "" {
		t.Errorf("trailing space: words=%v partial=%q", words, partial)
	}

	words, partial = splitInput("")
	if len(words) != 0 || partial != "" {
		t.Errorf("empty: words=%v partial=%q", words, partial)
	}
}

func TestIsPlaceholder(t *testing.T) {
	if !isPlaceholder("HOSTNAME") {
		t.Error("upper-cased slot not detected")
	}
	if isPlaceholder("hostname") {
		t.Error("literal flagged as slot")
	}
}

func TestTrimCommandWords(t *testing.T) {
	got := trimCommandWords([]string{"set", "system", "hostname", "r1"})
	if diff := cmp.Diff([]string{"system", "hostname", "r1"}, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
	got = trimCommandWords([]string{"system", "hostname", "r1"})
	if len(got) != 3 {
		t.Errorf("non-verb path trimmed: %v", got)
	}
}
