package pattern

// Ref is a non-owning back-reference to a Define, resolved by the loader's
// second pass after the whole pattern tree (and its Grammar's Define table)
// has been constructed. A Ref is fully transparent: walking it walks the
// resolved Define's child directly, with no Ref-specific state of its own.
type Ref struct {
	base
	Name   string
	define *Define
}

// NewRef returns an unresolved Ref naming name. Resolve must be called
// before NewWalker, once the loader has matched name against a Define.
func NewRef(name string) *Ref {
	return &Ref{Name: name}
}

// Resolve attaches the Define this Ref points to, and computes the Ref's
// own memoized hasEmptyMatch/hasAttrs from it.
func (p *Ref) Resolve(define *Define) {
	p.define = define
	p.base = base{emptyMatch: define.hasEmptyMatch(), attrs: define.hasAttrs()}
}

// Resolved reports whether Resolve has been called.
func (p *Ref) Resolved() bool { return p.define != nil }

func (p *Ref) NewWalker() Walker { return p.define.NewWalker() }
