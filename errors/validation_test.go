package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidationErrorFormatting(t *testing.T) {
	tests := []struct {
		name string
		want string
		v    Validation
	}{
		{
			name: "message only",
			v:    Validation{Code: "rng-element-name", Message: "missing element"},
			want: "rng-element-name: missing element",
		},
		{
			name: "with path",
			v:    Validation{Code: "rng-element-name", Message: "missing element", Path: "/root/child"},
			want: "/root/child: rng-element-name: missing element",
		},
		{
			name: "with path and line/column",
			v: Validation{
				Code:    "rng-element-name",
				Message: "missing element",
				Path:    "/root/child",
				Line:    3,
				Column:  7,
			},
			want: "/root/child:3:7: rng-element-name: missing element",
		},
		{
			name: "with line/column only",
			v: Validation{
				Code:    "rng-element-name",
				Message: "missing element",
				Line:    3,
				Column:  7,
			},
			want: "3:7: rng-element-name: missing element",
		},
		{
			name: "with expected",
			v: Validation{
				Code:     "rng-element-name",
				Message:  "unexpected element",
				Expected: []string{"a", "b"},
			},
			want: "rng-element-name: unexpected element, expected a or b",
		},
		{
			name: "with actual",
			v: Validation{
				Code:    "rng-element-name",
				Message: "unexpected element",
				Actual:  "c",
			},
			want: "rng-element-name: unexpected element, got c",
		},
		{
			name: "with all",
			v: Validation{
				Code:     "rng-element-name",
				Message:  "unexpected element",
				Path:     "/root/child",
				Expected: []string{"a"},
				Actual:   "b",
			},
			want: "/root/child: rng-element-name: unexpected element, expected a, got b",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.v.Error())
		})
	}
}

func TestNew(t *testing.T) {
	v := New(ErrSchemaNotLoaded, "missing root", "/")
	require.Equal(t, string(ErrSchemaNotLoaded), v.Code)
	require.Equal(t, "missing root", v.Message)
	require.Equal(t, "/", v.Path)
}

func TestNewf(t *testing.T) {
	v := Newf(ErrElementName, "/root", "element %s not declared", "child")
	require.Equal(t, string(ErrElementName), v.Code)
	require.Equal(t, "element child not declared", v.Message)
	require.Equal(t, "/root", v.Path)
}

func TestValidationListError(t *testing.T) {
	one := Validation{Code: "rng-element-name", Message: "missing element"}
	two := Validation{Code: "rng-validation", Message: "element is abstract"}

	tests := []struct {
		name string
		want string
		list ValidationList
	}{
		{
			name: "single",
			list: ValidationList{one},
			want: "rng-element-name: missing element",
		},
		{
			name: "multiple",
			list: ValidationList{one, two},
			want: "rng-element-name: missing element\nrng-validation: element is abstract",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.list.Error())
		})
	}
}

func TestValidationListOrNil(t *testing.T) {
	var empty ValidationList
	assert.Nil(t, empty.OrNil())

	list := ValidationList{{Code: "rng-validation", Message: "x"}}
	assert.Equal(t, error(list), list.OrNil())
}

func TestAsValidations(t *testing.T) {
	list := ValidationList{
		{Code: "rng-element-name", Message: "missing element"},
		{Code: "rng-validation", Message: "element is abstract"},
	}
	wrapped := fmt.Errorf("validation failed: %w", list)

	got, ok := AsValidations(wrapped)
	require.True(t, ok)
	require.Len(t, got, 2)
	assert.Equal(t, "rng-element-name", got[0].Code)
	assert.Equal(t, "rng-validation", got[1].Code)
}
