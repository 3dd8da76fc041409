package cli

import (
	"fmt"
	"strings"

	"github.com/pterm/pterm"

	"github.com/yangsh/yangsh/pkg/cmdtree"
	"github.com/yangsh/yangsh/pkg/datatree"
	"github.com/yangsh/yangsh/pkg/schema"
)

// ospfData fetches the routing subtree that all OSPF show commands read.
func (s *Shell) ospfData() (*datatree.Tree, []datatree.NodeID, error) {
	t, err := s.sess.State("/routing")
	if err != nil {
		return nil, nil, err
	}
	return t, t.FindAll(datatree.RootID, "routing/ospf"), nil
}

func (s *Shell) pageTable(header []string, rows [][]string) error {
	data := pterm.TableData{header}
	data = append(data, rows...)
	out, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return fmt.Errorf("render table: %w", err)
	}
	s.sess.Page(out + "\n")
	return nil
}

func handleShowOspfInterface(s *Shell, args cmdtree.Args) error {
	name, _ := args.Value("name")

	t, instances, err := s.ospfData()
	if err != nil {
		return err
	}

	var rows [][]string
	for _, inst := range instances {
		instance := t.ChildValue(inst, "name")
		for _, area := range t.FindAll(inst, "area") {
			areaID := t.ChildValue(area, "area-id")
			for _, iface := range t.FindAll(area, "interface") {
				if name != "" && t.ChildValue(iface, "name") != name {
					continue
				}
				rows = append(rows, []string{
					instance,
					areaID,
					t.ChildValue(iface, "name"),
					t.ChildValue(iface, "interface-type"),
					t.ChildValue(iface, "state"),
					t.ChildValue(iface, "priority"),
					t.ChildValue(iface, "cost"),
					fmt.Sprintf("%s (%s)",
						t.ChildValue(iface, "hello-interval"),
						timerStatus(t, iface, "hello-timer")),
				})
			}
		}
	}

	return s.pageTable([]string{
		"Instance", "Area", "Name", "Type", "State",
		"Priority", "Cost", "Hello Interval (s)",
	}, rows)
}

// timerStatus renders a countdown leaf as "due in N" or "inactive".
func timerStatus(t *datatree.Tree, id datatree.NodeID, name string) string {
	if v, ok := t.ChildOptValue(id, name); ok {
		return "due in " + v
	}
	return "inactive"
}

func handleShowOspfInterfaceDetail(s *Shell, args cmdtree.Args) error {
	name, _ := args.Value("name")

	t, instances, err := s.ospfData()
	if err != nil {
		return err
	}

	var b strings.Builder
	for _, inst := range instances {
		instance := t.ChildValue(inst, "name")
		for _, area := range t.FindAll(inst, "area") {
			areaID := t.ChildValue(area, "area-id")
			for _, iface := range t.FindAll(area, "interface") {
				if name != "" && t.ChildValue(iface, "name") != name {
					continue
				}
				fmt.Fprintf(&b, "%s\n", t.ChildValue(iface, "name"))
				fmt.Fprintf(&b, " instance: %s\n", instance)
				fmt.Fprintf(&b, " area: %s\n", areaID)
				writeDetailChildren(&b, t, iface)
				b.WriteByte('\n')
			}
		}
	}

	s.sess.Page(b.String())
	return nil
}

// writeDetailChildren prints the value leaves of a node, one per line, and
// expands a statistics block one level deeper. List keys are already shown
// in the heading; nested lists have their own commands.
func writeDetailChildren(b *strings.Builder, t *datatree.Tree, id datatree.NodeID) {
	for _, c := range t.Node(id).Children {
		n := t.Node(c)
		switch n.Kind {
		case schema.KindLeaf, schema.KindLeafList:
			fmt.Fprintf(b, " %s: %s\n", n.Name, n.Value)
		case schema.KindNonPresenceContainer:
			if n.Name != "statistics" {
				continue
			}
			fmt.Fprintf(b, " statistics\n")
			for _, sc := range n.Children {
				sn := t.Node(sc)
				if sn.Kind == schema.KindLeaf || sn.Kind == schema.KindLeafList {
					fmt.Fprintf(b, "  %s: %s\n", sn.Name, sn.Value)
				}
			}
		case schema.KindListKeyLeaf, schema.KindContainer, schema.KindList, schema.KindOther:
		}
	}
}

func handleShowOspfNeighbor(s *Shell, args cmdtree.Args) error {
	routerID, _ := args.Value("router-id")

	t, instances, err := s.ospfData()
	if err != nil {
		return err
	}

	var rows [][]string
	for _, inst := range instances {
		instance := t.ChildValue(inst, "name")
		for _, area := range t.FindAll(inst, "area") {
			areaID := t.ChildValue(area, "area-id")
			for _, iface := range t.FindAll(area, "interface") {
				ifname := t.ChildValue(iface, "name")
				deadInterval := t.ChildValue(iface, "dead-interval")
				for _, nbr := range t.FindAll(iface, "neighbor") {
					if routerID != "" && t.ChildValue(nbr, "router-id") != routerID {
						continue
					}
					rows = append(rows, []string{
						instance,
						areaID,
						ifname,
						t.ChildValue(nbr, "router-id"),
						t.ChildValue(nbr, "address"),
						t.ChildValue(nbr, "state"),
						fmt.Sprintf("%s (due in %s)",
							deadInterval, t.ChildValue(nbr, "dead-timer")),
					})
				}
			}
		}
	}

	return s.pageTable([]string{
		"Instance", "Area", "Interface", "Router ID",
		"Address", "State", "Dead Interval (s)",
	}, rows)
}

func handleShowOspfNeighborDetail(s *Shell, args cmdtree.Args) error {
	routerID, _ := args.Value("router-id")

	t, instances, err := s.ospfData()
	if err != nil {
		return err
	}

	var b strings.Builder
	for _, inst := range instances {
		instance := t.ChildValue(inst, "name")
		for _, area := range t.FindAll(inst, "area") {
			areaID := t.ChildValue(area, "area-id")
			for _, iface := range t.FindAll(area, "interface") {
				ifname := t.ChildValue(iface, "name")
				for _, nbr := range t.FindAll(iface, "neighbor") {
					if routerID != "" && t.ChildValue(nbr, "router-id") != routerID {
						continue
					}
					fmt.Fprintf(&b, "%s\n", t.ChildValue(nbr, "router-id"))
					fmt.Fprintf(&b, " instance: %s\n", instance)
					fmt.Fprintf(&b, " area: %s\n", areaID)
					fmt.Fprintf(&b, " interface: %s\n", ifname)
					writeDetailChildren(&b, t, nbr)
					b.WriteByte('\n')
				}
			}
		}
	}

	s.sess.Page(b.String())
	return nil
}

func handleShowOspfRoute(s *Shell, args cmdtree.Args) error {
	prefix, _ := args.Value("prefix")

	t, instances, err := s.ospfData()
	if err != nil {
		return err
	}

	var rows [][]string
	for _, inst := range instances {
		instance := t.ChildValue(inst, "name")
		for _, route := range t.FindAll(inst, "local-rib/route") {
			if prefix != "" && t.ChildValue(route, "prefix") != prefix {
				continue
			}
			first := true
			for _, nh := range t.FindAll(route, "next-hop") {
				row := []string{instance, "", "", "", "",
					t.ChildValue(nh, "interface"),
					t.ChildValue(nh, "address"),
				}
				if first {
					row[1] = t.ChildValue(route, "prefix")
					row[2] = t.ChildValue(route, "metric")
					row[3] = t.ChildValue(route, "route-type")
					row[4] = t.ChildValue(route, "route-tag")
					first = false
				}
				rows = append(rows, row)
			}
		}
	}

	return s.pageTable([]string{
		"Instance", "Prefix", "Metric", "Type", "Tag",
		"Nexthop Interface", "Nexthop Address",
	}, rows)
}

func handleShowModules(s *Shell, args cmdtree.Args) error {
	var rows [][]string
	for _, m := range s.sess.Schema.Modules {
		flags := ""
		if m.Implemented {
			flags = "I"
		}
		rev := m.Revision
		if rev == "" {
			rev = "-"
		}
		rows = append(rows, []string{m.Name, rev, flags, m.Namespace})
	}

	data := pterm.TableData{{"Module", "Revision", "Flags", "Namespace"}}
	data = append(data, rows...)
	table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return fmt.Errorf("render table: %w", err)
	}
	s.sess.Page(" Flags: I - Implemented\n\n" + table + "\n")
	return nil
}
