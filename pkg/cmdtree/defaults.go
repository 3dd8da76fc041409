package cmdtree

// Action ids for the built-in command vocabulary. The shell maps these to
// handlers; the trie itself never executes anything.
const (
	ActionConfigure         = "configure"
	ActionExit              = "exit"
	ActionEnd               = "end"
	ActionList              = "list"
	ActionPwd               = "pwd"
	ActionHostname          = "hostname"
	ActionEdit              = "edit"
	ActionUp                = "up"
	ActionTop               = "top"
	ActionCommit            = "commit"
	ActionDiscard           = "discard"
	ActionValidate          = "validate"
	ActionSet               = "set"
	ActionDelete            = "delete"
	ActionShowConfig        = "show-config"
	ActionShowChanges       = "show-config-changes"
	ActionShowState         = "show-state"
	ActionShowModules       = "show-schema-modules"
	ActionShowLog           = "show-log"
	ActionShowOspfIface     = "show-ospf-interface"
	ActionShowOspfIfaceDet  = "show-ospf-interface-detail"
	ActionShowOspfNbr       = "show-ospf-neighbor"
	ActionShowOspfNbrDet    = "show-ospf-neighbor-detail"
	ActionShowOspfRoute     = "show-ospf-route"
)

// Defaults returns the built-in command trees: the operational root and the
// two internal configuration roots. The schema-derived configuration root
// starts empty; see BuildConfigCommands.
func Defaults() *Commands {
	c := New()
	c.buildExec()
	c.buildConfigDflt()
	c.buildConfigInternal()
	return c
}

func (c *Commands) buildExec() {
	root := c.ExecRoot

	c.SetAction(c.AddWord(root, "configure", "Enter configuration mode"), ActionConfigure)

	show := c.AddWord(root, "show", "Show information")

	cfg := c.AddWord(show, "configuration", "Show device configuration")
	for _, which := range []struct{ name, desc string }{
		{"running", "Show running configuration"},
		{"candidate", "Show candidate configuration"},
	} {
		w := c.SetAction(c.AddWord(cfg, which.name, which.desc), ActionShowConfig)
		c.addShowConfigOpts(w)
	}
	c.SetAction(c.AddWord(cfg, "changes", "Show uncommitted configuration changes"), ActionShowChanges)

	state := c.SetAction(c.AddWord(show, "state", "Show state data"), ActionShowState)
	xp := c.AddWord(state, "xpath", "Limit output to a subtree")
	xpv := c.SetAction(c.AddKeyword(xp, "xpath", "Subtree path"), ActionShowState)
	c.addFormatOpt(xpv, ActionShowState)
	c.addFormatOpt(state, ActionShowState)

	sch := c.AddWord(show, "schema", "Show schema information")
	c.SetAction(c.AddWord(sch, "modules", "Show loaded schema modules"), ActionShowModules)

	logCmd := c.SetAction(c.AddWord(show, "log", "Show recent session log entries"), ActionShowLog)
	c.SetAction(c.AddKeyword(logCmd, "count", "Number of entries"), ActionShowLog)

	ospf := c.AddWord(show, "ospf", "Show OSPF information")

	iface := c.SetAction(c.AddWord(ospf, "interface", "Show OSPF interfaces"), ActionShowOspfIface)
	ifname := c.SetAction(c.AddKeyword(iface, "name", "Interface name"), ActionShowOspfIface)
	c.SetAction(c.AddWord(iface, "detail", "Show detailed OSPF interface information"), ActionShowOspfIfaceDet)
	c.SetAction(c.AddWord(ifname, "detail", "Show detailed OSPF interface information"), ActionShowOspfIfaceDet)

	nbr := c.SetAction(c.AddWord(ospf, "neighbor", "Show OSPF neighbors"), ActionShowOspfNbr)
	nbrID := c.SetAction(c.AddKeyword(nbr, "router-id", "Neighbor router ID"), ActionShowOspfNbr)
	c.SetAction(c.AddWord(nbr, "detail", "Show detailed OSPF neighbor information"), ActionShowOspfNbrDet)
	c.SetAction(c.AddWord(nbrID, "detail", "Show detailed OSPF neighbor information"), ActionShowOspfNbrDet)

	route := c.SetAction(c.AddWord(ospf, "route", "Show OSPF routing table"), ActionShowOspfRoute)
	c.SetAction(c.AddKeyword(route, "prefix", "Destination prefix"), ActionShowOspfRoute)

	c.SetAction(c.AddWord(root, "list", "List available commands"), ActionList)
	c.SetAction(c.AddWord(root, "exit", "Exit the shell"), ActionExit)
	c.SetAction(c.AddWord(root, "quit", "Exit the shell"), ActionExit)
}

// addShowConfigOpts attaches the optional with-defaults/format suffixes,
// each a valid endpoint of the same show-config action.
func (c *Commands) addShowConfigOpts(parent TokenID) {
	wd := c.SetAction(c.AddWord(parent, "with-defaults", "Include default values"), ActionShowConfig)
	c.addFormatOpt(wd, ActionShowConfig)
	c.addFormatOpt(parent, ActionShowConfig)
}

func (c *Commands) addFormatOpt(parent TokenID, action string) {
	f := c.AddWord(parent, "format", "Select output format")
	c.SetAction(c.AddKeyword(f, "format", "Output format (json or xml)"), action)
}

func (c *Commands) buildConfigDflt() {
	root := c.ConfigDflt

	commit := c.SetAction(c.AddWord(root, "commit", "Commit the candidate configuration"), ActionCommit)
	cmt := c.AddWord(commit, "comment", "Record a commit comment")
	c.SetAction(c.AddKeyword(cmt, "comment", "Commit comment"), ActionCommit)

	c.SetAction(c.AddWord(root, "discard", "Discard candidate changes"), ActionDiscard)
	c.SetAction(c.AddWord(root, "validate", "Validate the candidate configuration"), ActionValidate)

	show := c.SetAction(c.AddWord(root, "show", "Show candidate configuration"), ActionShowConfig)
	c.SetAction(c.AddWord(show, "changes", "Show uncommitted configuration changes"), ActionShowChanges)

	set := c.AddWord(root, "set", "Set a configuration value")
	c.SetAction(c.Add(set, Token{Name: "path", Kind: Keyword, Desc: "Configuration path and value", Multi: true}), ActionSet)

	del := c.AddWord(root, "delete", "Delete a configuration element")
	c.SetAction(c.Add(del, Token{Name: "path", Kind: Keyword, Desc: "Configuration path", Multi: true}), ActionDelete)
}

func (c *Commands) buildConfigInternal() {
	root := c.ConfigInternal

	c.SetAction(c.AddWord(root, "exit", "Exit one level of configuration"), ActionExit)
	c.SetAction(c.AddWord(root, "quit", "Exit one level of configuration"), ActionExit)
	c.SetAction(c.AddWord(root, "end", "Leave configuration mode"), ActionEnd)
	c.SetAction(c.AddWord(root, "list", "List available commands"), ActionList)
	c.SetAction(c.AddWord(root, "pwd", "Show current configuration path"), ActionPwd)

	host := c.AddWord(root, "hostname", "Set the shell hostname")
	c.SetAction(c.AddKeyword(host, "hostname", "New hostname"), ActionHostname)

	edit := c.AddWord(root, "edit", "Descend into a configuration hierarchy")
	c.SetAction(c.Add(edit, Token{Name: "path", Kind: Keyword, Desc: "Configuration path", Multi: true}), ActionEdit)

	c.SetAction(c.AddWord(root, "up", "Ascend one configuration level"), ActionUp)
	c.SetAction(c.AddWord(root, "top", "Return to the top configuration level"), ActionTop)
}
