package session

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestConfigurePaths(t *testing.T) {
	m := Configure{Steps: []PathStep{
		{Name: "interfaces"},
		{Name: "interface", Keys: []string{"eth0"}},
	}}

	if got := m.SchemaPath(); got != "/interfaces/interface" {
		t.Errorf("SchemaPath: got %q", got)
	}
	if got := m.Display(); got != "interfaces interface eth0" {
		t.Errorf("Display: got %q", got)
	}
	want := []string{"interfaces", "interface", "eth0"}
	if diff := cmp.Diff(want, m.Tokens()); diff != "" {
		t.Errorf("Tokens mismatch (-want +got):\n%s", diff)
	}
}

func TestConfigureTopLevel(t *testing.T) {
	m := Configure{}
	if got := m.SchemaPath(); got != "/" {
		t.Errorf("SchemaPath: got %q", got)
	}
	if got := m.Display(); got != "" {
		t.Errorf("Display: got %q", got)
	}
	if got := m.Up(); len(got.Steps) != 0 {
		t.Errorf("Up at top level: got %+v", got)
	}
}

func TestConfigureUp(t *testing.T) {
	m := Configure{Steps: []PathStep{
		{Name: "routing"},
		{Name: "ospf"},
	}}
	up := m.Up()
	if got := up.SchemaPath(); got != "/routing" {
		t.Errorf("Up: got %q", got)
	}
}

func TestPrompt(t *testing.T) {
	s := &Session{Mode: Operational{}, Hostname: "router1", Username: "admin"}
	if got := s.Prompt(); got != "admin@router1> " {
		t.Errorf("operational prompt: got %q", got)
	}

	s.Mode = Configure{}
	if got := s.Prompt(); got != "[edit]\nadmin@router1# " {
		t.Errorf("configure prompt: got %q", got)
	}

	s.Mode = Configure{Steps: []PathStep{{Name: "system"}}}
	if got := s.Prompt(); got != "[edit system]\nadmin@router1# " {
		t.Errorf("nested prompt: got %q", got)
	}
}
