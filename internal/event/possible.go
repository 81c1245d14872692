package event

// NameMatcher is the subset of nameclass.NameClass the event package needs,
// kept local to avoid a dependency cycle (nameclass has no need of event).
type NameMatcher interface {
	Match(ns, local string) bool
}

// Possible describes one event a walker would currently accept. For
// name-bearing kinds, Names describes the acceptable name class (which may
// be an open set such as AnyName); for Text/LeaveStartTag/EndTag, Names is
// nil and the kind alone is the description.
type Possible struct {
	Kind  Kind
	Names NameMatcher
}

// Set is an unordered collection of Possible events, as returned by
// Walker.Possible/PossibleAttributes for editor-style "what's allowed here" UI.
type Set []Possible

// Add appends p to the set.
func (s *Set) Add(p Possible) {
	*s = append(*s, p)
}

// AddKind appends a name-less Possible event (Text, LeaveStartTag, EndTag).
func (s *Set) AddKind(k Kind) {
	s.Add(Possible{Kind: k})
}

// AddNamed appends a name-bearing Possible event.
func (s *Set) AddNamed(k Kind, names NameMatcher) {
	s.Add(Possible{Kind: k, Names: names})
}

// Union appends every entry of other to s.
func (s *Set) Union(other Set) {
	*s = append(*s, other...)
}
