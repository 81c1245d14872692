package salve

import "github.com/jacoelho/salve-go/internal/loader"

// LoadOptions configures how a schema is reconstructed from its JSON form.
type LoadOptions struct {
	allowIncompleteTypes bool
}

// NewLoadOptions returns a default, valid load options value.
func NewLoadOptions() LoadOptions {
	return LoadOptions{}
}

// WithAllowIncompleteTypes makes an unrecognized XSD datatype name load as
// a placeholder that disallows every value instead of a fatal load error,
// matching the CLI's --allow-incomplete-types flag.
func (o LoadOptions) WithAllowIncompleteTypes(value bool) LoadOptions {
	o.allowIncompleteTypes = value
	return o
}

func (o LoadOptions) resolve() loader.LoadOptions {
	return loader.LoadOptions{AllowIncompleteTypes: o.allowIncompleteTypes}
}
