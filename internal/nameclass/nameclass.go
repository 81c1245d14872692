// Package nameclass implements Relax NG name-class value objects: Name,
// NsName, AnyName, and NameChoice, each able to match an expanded name and
// (where the set is closed) enumerate its members.
package nameclass

// ExpandedName is a namespace-URI/local-name pair, post prefix resolution.
type ExpandedName struct {
	NS    string
	Local string
}

// NameClass describes the set of expanded names a position will accept.
type NameClass interface {
	// Match reports whether (ns, local) is in the class.
	Match(ns, local string) bool
	// Enumerate returns the class's members when it is a closed, finite
	// set, and ok=true. NsName and AnyName are open sets and return ok=false.
	Enumerate() (names []ExpandedName, ok bool)
}

// Name matches exactly one expanded name.
type Name struct {
	NS    string
	Local string
}

func (n Name) Match(ns, local string) bool {
	return n.NS == ns && n.Local == local
}

func (n Name) Enumerate() ([]ExpandedName, bool) {
	return []ExpandedName{{NS: n.NS, Local: n.Local}}, true
}

// NsName matches any local name in NS that Except (if non-nil) does not match.
type NsName struct {
	NS     string
	Except NameClass // may be nil
}

func (n NsName) Match(ns, local string) bool {
	if ns != n.NS {
		return false
	}
	if n.Except != nil && n.Except.Match(ns, local) {
		return false
	}
	return true
}

func (NsName) Enumerate() ([]ExpandedName, bool) {
	return nil, false
}

// AnyName matches any expanded name that Except (if non-nil) does not match.
type AnyName struct {
	Except NameClass // may be nil
}

func (n AnyName) Match(ns, local string) bool {
	if n.Except != nil && n.Except.Match(ns, local) {
		return false
	}
	return true
}

func (AnyName) Enumerate() ([]ExpandedName, bool) {
	return nil, false
}

// NameChoice matches the union of A and B.
type NameChoice struct {
	A, B NameClass
}

func (n NameChoice) Match(ns, local string) bool {
	return n.A.Match(ns, local) || n.B.Match(ns, local)
}

func (n NameChoice) Enumerate() ([]ExpandedName, bool) {
	aNames, aOK := n.A.Enumerate()
	if !aOK {
		return nil, false
	}
	bNames, bOK := n.B.Enumerate()
	if !bOK {
		return nil, false
	}
	return append(append([]ExpandedName{}, aNames...), bNames...), true
}
