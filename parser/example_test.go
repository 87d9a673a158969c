package parser_test

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"argmap/options"
	"argmap/parser"
	"argmap/value"
)

func Example() {
	res := parser.Parse(
		[]string{"-vx", "3", "--name", "demo", "--tag=a", "--tag=b", "input.txt", "--", "--raw"},
		&options.Options{
			Boolean: options.Booleans("verbose"),
			Alias:   map[string]options.StringOrArray{"v": {"verbose"}},
			Default: value.NewMap().Set("level", value.Number(1)),
		},
	)

	out, err := yaml.Marshal(res)
	if err != nil {
		panic(err)
	}

	fmt.Print(string(out))
	// Output:
	// _:
	//     - input.txt
	//     - --raw
	// verbose: true
	// v: true
	// x: 3
	// name: demo
	// tag:
	//     - a
	//     - b
	// level: 1
}

func ExampleResult_Lookup() {
	res := parser.Parse([]string{"--db.host=localhost", "--db.port", "5432"}, nil)

	port, _ := res.Lookup("db.port")
	fmt.Println(port.Kind(), port)
	// Output:
	// KindNumber 5432
}
