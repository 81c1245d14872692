package pattern

// Grammar is the root of a pattern tree: a start pattern plus the table of
// Defines that Refs anywhere in the tree resolve against. Walking a Grammar
// walks its start pattern directly; Grammar's own role is resolution, not
// participation in the automaton.
type Grammar struct {
	base
	Start   Pattern
	Defines []*Define
}

// NewGrammar returns a Grammar over start, with defines available for Ref
// resolution by name.
func NewGrammar(start Pattern, defines []*Define) *Grammar {
	return &Grammar{
		base:    base{emptyMatch: start.hasEmptyMatch(), attrs: start.hasAttrs()},
		Start:   start,
		Defines: defines,
	}
}

func (p *Grammar) NewWalker() Walker { return p.Start.NewWalker() }

// DefineByName returns the Define named name, if any, for Ref resolution.
func (p *Grammar) DefineByName(name string) (*Define, bool) {
	for _, d := range p.Defines {
		if d.Name == name {
			return d, true
		}
	}
	return nil, false
}
