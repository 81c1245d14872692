package loader

import (
	"github.com/tidwall/gjson"

	"github.com/jacoelho/salve-go/internal/datatype"
)

// buildContext turns an optional {"prefix": "uri", ...} object into a
// datatype.Context, or nil when n is absent — most types never need one.
func buildContext(n gjson.Result) *datatype.Context {
	if !n.Exists() || n.Type != gjson.JSON || !n.IsObject() {
		return nil
	}
	bindings := map[string]string{}
	n.ForEach(func(key, value gjson.Result) bool {
		bindings[key.String()] = value.String()
		return true
	})
	return &datatype.Context{
		ResolvePrefix: func(prefix string) (string, bool) {
			uri, ok := bindings[prefix]
			return uri, ok
		},
	}
}

// buildParams turns an array of {"n": name, "v": value} objects into a
// datatype.Param slice, or nil for an absent/empty array.
func buildParams(n gjson.Result) ([]datatype.Param, error) {
	if !n.Exists() || !n.IsArray() {
		return nil, nil
	}
	var params []datatype.Param
	for _, p := range n.Array() {
		params = append(params, datatype.Param{
			Name:  p.Get("n").String(),
			Value: p.Get("v").String(),
		})
	}
	return params, nil
}
