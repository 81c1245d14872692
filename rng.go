// Package salve is an incremental, event-driven Relax NG validator: it
// reconstructs a pattern tree from a pre-simplified JSON schema (the format
// a salve-convert-style conversion tool emits) and validates XML documents
// against it one SAX event at a time, without building a DOM.
package salve

import (
	"encoding/xml"
	"fmt"
	"io"
	"os"

	"github.com/jacoelho/salve-go/internal/grammarwalker"
	"github.com/jacoelho/salve-go/internal/loader"
	"github.com/jacoelho/salve-go/internal/pattern"

	rngerrors "github.com/jacoelho/salve-go/errors"
)

// Schema is a compiled Relax NG grammar, ready to validate any number of
// documents. It is immutable after Load and safe for concurrent use by
// multiple goroutines; each call to Validate walks its own fresh
// grammarwalker.Walker.
type Schema struct {
	grammar    *pattern.Grammar
	incomplete []string
}

// Load reconstructs a Schema from the version-3 JSON wire format in data.
func Load(data []byte) (*Schema, error) {
	return LoadWithOptions(data, LoadOptions{})
}

// LoadWithOptions reconstructs a Schema from data, applying opts.
func LoadWithOptions(data []byte, opts LoadOptions) (*Schema, error) {
	resolved := opts.resolve()
	g, incomplete, err := loader.Load(data, resolved)
	if err != nil {
		return nil, fmt.Errorf("load schema: %w", err)
	}
	return &Schema{grammar: g, incomplete: incomplete}, nil
}

// Incomplete lists the XSD datatype names this schema substituted a
// disallow-everything placeholder for, because it was loaded with
// WithAllowIncompleteTypes and the name was not recognized. Empty when no
// substitution occurred.
func (s *Schema) Incomplete() []string {
	if s == nil {
		return nil
	}
	return s.incomplete
}

// LoadFile reconstructs a Schema from the JSON file at path.
func LoadFile(path string) (*Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load schema %s: %w", path, err)
	}
	return Load(data)
}

// Validate validates the XML document read from r against the schema,
// returning an errors.ValidationList on any failure. Validation stops at
// the first event that yields findings; it does not collect every mistake
// in a document, even though the underlying walkers stay usable after
// reporting one.
func (s *Schema) Validate(r io.Reader) error {
	if s == nil || s.grammar == nil {
		return schemaNotLoadedError()
	}
	if r == nil {
		return nilReaderError()
	}
	return validateDocument(s.grammar, r)
}

// ValidateFile validates the XML file at path against the schema.
func (s *Schema) ValidateFile(path string) (err error) {
	if s == nil || s.grammar == nil {
		return schemaNotLoadedError()
	}
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open xml file %s: %w", path, err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close xml file %s: %w", path, closeErr)
		}
	}()
	return s.Validate(f)
}

func validateDocument(g *pattern.Grammar, r io.Reader) error {
	w := grammarwalker.New(g)
	dec := xml.NewDecoder(r)

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return rngerrors.ValidationList{rngerrors.Newf(rngerrors.ErrXMLParse, "", "%v", err)}
		}

		switch t := tok.(type) {
		case xml.StartElement:
			if errs := w.FireResolvedStartTag(t.Name.Space, t.Name.Local); len(errs) > 0 {
				return errs
			}
			for _, a := range t.Attr {
				if isNamespaceDecl(a.Name) {
					continue
				}
				if errs := w.FireResolvedAttributeName(a.Name.Space, a.Name.Local); len(errs) > 0 {
					return errs
				}
				if errs := w.FireAttributeValue(a.Value); len(errs) > 0 {
					return errs
				}
			}
			if errs := w.FireLeaveStartTag(); len(errs) > 0 {
				return errs
			}
		case xml.EndElement:
			if errs := w.FireResolvedEndTag(t.Name.Space, t.Name.Local); len(errs) > 0 {
				return errs
			}
		case xml.CharData:
			if isIgnorableWhitespace(t) {
				continue
			}
			if errs := w.FireText(string(t)); len(errs) > 0 {
				return errs
			}
		}
	}

	if errs := w.End(); len(errs) > 0 {
		return errs
	}
	return nil
}

// isIgnorableWhitespace reports whether b holds nothing but XML whitespace
// (space, tab, CR, LF). Such CharData between elements is formatting, not
// content: firing it as a Text event would reject any pretty-printed
// document against a content model with no Text/mixed branch at that
// nesting level, which RNG's own "ignorable whitespace" handling exempts.
func isIgnorableWhitespace(b []byte) bool {
	for _, c := range b {
		switch c {
		case ' ', '\t', '\n', '\r':
		default:
			return false
		}
	}
	return true
}

// isNamespaceDecl reports whether name is an xmlns or xmlns:* declaration,
// which encoding/xml surfaces as an ordinary attribute on the element that
// carries it but which is not itself a validatable instance attribute.
func isNamespaceDecl(name xml.Name) bool {
	return name.Space == "xmlns" || (name.Space == "" && name.Local == "xmlns")
}

func schemaNotLoadedError() error {
	return rngerrors.ValidationList{rngerrors.New(rngerrors.ErrSchemaNotLoaded, "schema not loaded", "")}
}

func nilReaderError() error {
	return rngerrors.ValidationList{rngerrors.New(rngerrors.ErrXMLParse, "nil reader", "")}
}
