package parse

import (
	"bytes"
	"flag"
	"fmt"
	"log"
	"testing"

	"github.com/gopolynomial/groebner/parse/scan"
)

func TestParse(t *testing.T) {
	tests := []struct {
		input string
		tree  string
	}{
		{
			input: "x*y^3",
			tree:  "(x*(y^3))",
		},
		{
			input: "xy^3",
			tree:  "(x*(y^3))",
		},
		{
			input: "-x*y^3",
			tree:  "(0-(x*(y^3)))",
		},
		{
			input: "(x+y)^4",
			tree:  "((x+y)^4)",
		},
		{
			input: "-12/5x^3*((x+z*z)*y)^2*x+7/3z*x-3/2y",
			tree:  "(((0-((((12/5)*(x^3))*(((x+(z*z))*y)^2))*x))+(((7/3)*z)*x))-((3/2)*y))",
		},
		{
			input: "5/3y*(x+y)^2*z+9x",
			tree:  "(((((5/3)*y)*((x+y)^2))*z)+(9*x))",
		},
	}

	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			t.Parallel()
			n, err := Parse(scan.NewScanner(bytes.NewBufferString(test.input)))
			if err != nil {
				t.Fatalf("%+v", err)
			}
			if tree(n) != test.tree {
				t.Errorf("%s", tree(n))
			}
		})
	}
}

func TestMain(m *testing.M) {
	flag.Parse()
	log.SetFlags(log.Lmicroseconds | log.Llongfile | log.LstdFlags)

	m.Run()
}
