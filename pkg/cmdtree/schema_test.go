package cmdtree

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/yangsh/yangsh/pkg/schema"
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
          - name: dns
            kind: np-container
            children:
              - name: server
                kind: leaf-list
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

func buildFromModel(t *testing.T) *Commands {
	t.Helper()
	sc, err := schema.Parse([]byte(testModel))
	if err != nil {
		t.Fatalf("parse schema: %v", err)
	}
	c := New()
	c.BuildConfigCommands(sc)
	return c
}

func TestBuildConfigCommandsVocabulary(t *testing.T) {
	c := buildFromModel(t)

	want := []string{
		"system ",
		"system hostname VALUE ",
		"system dns server VALUE ",
		"interfaces interface NAME ",
		"interfaces interface NAME mtu VALUE ",
	}
	if diff := cmp.Diff(want, c.List(c.ConfigRoot)); diff != "" {
		t.Errorf("config commands mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildConfigCommandsNesting(t *testing.T) {
	c := buildFromModel(t)

	for _, path := range []string{"/system", "/system/dns", "/interfaces", "/interfaces/interface"} {
		if c.ConfigNode(path) == None {
			t.Errorf("no config sub-root for %s", path)
		}
	}
	// Leaves are not nesting levels.
	if c.ConfigNode("/system/hostname") != None {
		t.Error("leaf registered as a nesting level")
	}
}

func TestBuildConfigCommandsListEntryIsEditTarget(t *testing.T) {
	c := buildFromModel(t)

	action, args, err := c.Resolve(c.ConfigNode("/"), []string{"interfaces", "interface", "eth0"})
	if err != nil || action != ActionEdit {
		t.Fatalf("action=%q err=%v", action, err)
	}
	want := []string{"interfaces", "interface", "eth0"}
	if diff := cmp.Diff(want, args.Tokens()); diff != "" {
		t.Errorf("tokens mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildConfigCommandsLeafIsSet(t *testing.T) {
	c := buildFromModel(t)

	action, args, err := c.Resolve(c.ConfigRoot, []string{"system", "hostname", "router1"})
	if err != nil || action != ActionSet {
		t.Fatalf("action=%q err=%v", action, err)
	}
	if v, _ := args.Value("value"); v != "router1" {
		t.Errorf("value: got %q", v)
	}

	// Commands relative to a nesting level resolve against its sub-root.
	action, _, err = c.Resolve(c.ConfigNode("/interfaces/interface"), []string{"mtu", "9000"})
	if err != nil || action != ActionSet {
		t.Errorf("nested set: action=%q err=%v", action, err)
	}
}
