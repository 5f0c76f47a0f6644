package argot

import "strings"

///////////////////////////////////////////////////////////////////////////////
// Option groups
///////////////////////////////////////////////////////////////////////////////

// OptionGroup is a named constraint over a set of definitions. Group
// names are case-insensitive. A group is created either exclusive (at
// most one member may be assigned) or plain, and keeps that kind for
// its whole lifetime; a plain group may additionally be marked
// required (at least one member must be assigned).
//
// Groups own no definitions; each definition holds a reference to at
// most one group.
type OptionGroup struct {
	name        string
	title       string
	description string
	exclusive   bool
	required    bool
}

func newOptionGroup(name string, exclusive bool) *OptionGroup {
	return &OptionGroup{
		name:      strings.ToLower(name),
		title:     name,
		exclusive: exclusive,
	}
}

func (g *OptionGroup) Name() string        { return g.name }
func (g *OptionGroup) Title() string       { return g.title }
func (g *OptionGroup) Description() string { return g.description }
func (g *OptionGroup) IsExclusive() bool   { return g.exclusive }
func (g *OptionGroup) IsRequired() bool    { return g.required }

///////////////////////////////////////////////////////////////////////////////
// GroupConfig
///////////////////////////////////////////////////////////////////////////////

// GroupConfig is the chainable configuration handle returned by
// ArgumentParser.AddGroup and AddExclusiveGroup.
type GroupConfig struct {
	group *OptionGroup
}

// Title sets the heading under which the group's members are listed
// by the help formatter.
func (c *GroupConfig) Title(title string) *GroupConfig {
	c.group.title = title
	return c
}

// Description sets the descriptive text shown under the group title.
func (c *GroupConfig) Description(text string) *GroupConfig {
	c.group.description = text
	return c
}

// Required marks the group as requiring at least one assigned member.
func (c *GroupConfig) Required(required bool) *GroupConfig {
	c.group.required = required
	return c
}
