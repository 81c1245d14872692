package pattern

// Define is a named pattern a Ref resolves against. Grammar owns the table
// of Defines; a Define is otherwise a transparent wrapper around its child.
type Define struct {
	base
	Name  string
	Child Pattern
}

// NewDefine returns the Define pattern named name, wrapping child.
func NewDefine(name string, child Pattern) *Define {
	return &Define{
		base:  base{emptyMatch: child.hasEmptyMatch(), attrs: child.hasAttrs()},
		Name:  name,
		Child: child,
	}
}

func (p *Define) NewWalker() Walker { return p.Child.NewWalker() }
