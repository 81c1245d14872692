package salve_test

import (
	"fmt"
	"strings"

	salve "github.com/jacoelho/salve-go"
	rngerrors "github.com/jacoelho/salve-go/errors"
)

const personSchema = `{
	"v": 3,
	"o": 1,
	"d": [0, [],
		[3, [5, "", "person"],
			[10,
				[3, [5, "", "name"], [16]],
				[3, [5, "", "age"], [16]]
			]
		]
	]
}`

func ExampleLoad() {
	schema, err := salve.Load([]byte(personSchema))
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	_ = schema
	fmt.Println("Schema loaded successfully")
	// Output: Schema loaded successfully
}

func ExampleSchema_Validate() {
	schema, err := salve.Load([]byte(personSchema))
	if err != nil {
		fmt.Printf("Error loading schema: %v\n", err)
		return
	}

	xmlDoc := `<?xml version="1.0"?>
<person>
  <name>John Doe</name>
  <age>30</age>
</person>`

	if err := schema.Validate(strings.NewReader(xmlDoc)); err != nil {
		if violations, ok := rngerrors.AsValidations(err); ok {
			for _, v := range violations {
				fmt.Printf("Validation: %s\n", v.Error())
			}
			return
		}
		fmt.Printf("Error: %v\n", err)
		return
	}
	fmt.Println("Document is valid")
	// Output: Document is valid
}
