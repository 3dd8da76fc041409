package datatree

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yangsh/yangsh/pkg/schema"
)

func TestFlattenEmptyTree(t *testing.T) {
	tr := New()
	if got := tr.Flatten(RootID, false); got != "!\n" {
		t.Errorf("empty tree: got %q, want %q", got, "!\n")
	}
}

func TestFlattenContainerAndLeaf(t *testing.T) {
	tr := New()
	sys := tr.Add(RootID, Node{Name: "system", Kind: schema.KindContainer})
	tr.Add(sys, Node{Name: "hostname", Kind: schema.KindLeaf, Value: "router1"})

	want := "system\n" +
		"system hostname router1\n" +
		"!\n"
	require.Equal(t, want, tr.Flatten(RootID, false))
}

func TestFlattenNonPresenceContainerIsSilent(t *testing.T) {
	tr := New()
	dns := tr.Add(RootID, Node{Name: "dns", Kind: schema.KindNonPresenceContainer})
	tr.Add(dns, Node{Name: "server", Kind: schema.KindLeafList, Value: "192.0.2.1"})
	tr.Add(dns, Node{Name: "server", Kind: schema.KindLeafList, Value: "192.0.2.2"})

	want := "dns server 192.0.2.1\n" +
		"dns server 192.0.2.2\n" +
		"!\n"
	require.Equal(t, want, tr.Flatten(RootID, false))
}

// buildInterfaces creates two list entries under an np-container, one with
// only a default mtu, one with an explicit mtu.
func buildInterfaces(t *testing.T) *Tree {
	t.Helper()
	tr := New()
	ifs := tr.Add(RootID, Node{Name: "interfaces", Kind: schema.KindNonPresenceContainer})

	eth0 := tr.Add(ifs, Node{Name: "interface", Kind: schema.KindList})
	tr.Add(eth0, Node{Name: "name", Kind: schema.KindListKeyLeaf, Value: "eth0"})
	tr.Add(eth0, Node{Name: "mtu", Kind: schema.KindLeaf, Value: "1500", IsDefault: true})

	eth1 := tr.Add(ifs, Node{Name: "interface", Kind: schema.KindList})
	tr.Add(eth1, Node{Name: "name", Kind: schema.KindListKeyLeaf, Value: "eth1"})
	tr.Add(eth1, Node{Name: "mtu", Kind: schema.KindLeaf, Value: "9000"})

	return tr
}

func TestFlattenListEntries(t *testing.T) {
	tr := buildInterfaces(t)

	want := "!\n" +
		"interfaces interface eth0\n" +
		"!\n" +
		"interfaces interface eth1\n" +
		" mtu 9000\n" +
		"!\n"
	require.Equal(t, want, tr.Flatten(RootID, false))
}

func TestFlattenIncludeDefaults(t *testing.T) {
	tr := buildInterfaces(t)

	want := "!\n" +
		"interfaces interface eth0\n" +
		" mtu 1500\n" +
		"!\n" +
		"interfaces interface eth1\n" +
		" mtu 9000\n" +
		"!\n"
	require.Equal(t, want, tr.Flatten(RootID, true))
}

func TestFlattenNestedLists(t *testing.T) {
	tr := New()
	routing := tr.Add(RootID, Node{Name: "routing", Kind: schema.KindContainer})
	ospf := tr.Add(routing, Node{Name: "ospf", Kind: schema.KindContainer})
	area := tr.Add(ospf, Node{Name: "area", Kind: schema.KindList})
	tr.Add(area, Node{Name: "area-id", Kind: schema.KindListKeyLeaf, Value: "0.0.0.0"})
	iface := tr.Add(area, Node{Name: "interface", Kind: schema.KindList})
	tr.Add(iface, Node{Name: "name", Kind: schema.KindListKeyLeaf, Value: "eth0"})
	tr.Add(iface, Node{Name: "cost", Kind: schema.KindLeaf, Value: "20"})

	want := "routing\n" +
		"routing ospf\n" +
		"!\n" +
		"routing ospf area 0.0.0.0\n" +
		" !\n" +
		" interface eth0\n" +
		"  cost 20\n" +
		"!\n"
	require.Equal(t, want, tr.Flatten(RootID, false))
}

func TestFlattenIsDeterministic(t *testing.T) {
	tr := buildInterfaces(t)
	first := tr.Flatten(RootID, false)
	for i := 0; i < 5; i++ {
		if got := tr.Flatten(RootID, false); got != first {
			t.Fatalf("run %d differs from first run:\n%s\nvs\n%s", i, got, first)
		}
	}
}

func TestFlattenListKeyOrder(t *testing.T) {
	tr := New()
	entry := tr.Add(RootID, Node{Name: "route", Kind: schema.KindList})
	tr.Add(entry, Node{Name: "prefix", Kind: schema.KindListKeyLeaf, Value: "10.0.0.0/8"})
	tr.Add(entry, Node{Name: "table", Kind: schema.KindListKeyLeaf, Value: "main"})
	tr.Add(entry, Node{Name: "metric", Kind: schema.KindLeaf, Value: "5"})

	want := "!\n" +
		"route 10.0.0.0/8 main\n" +
		" metric 5\n" +
		"!\n"
	require.Equal(t, want, tr.Flatten(RootID, false))
}
