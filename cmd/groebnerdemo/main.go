// Command groebnerdemo runs the three end-to-end Gröbner-basis scenarios
// described for package groebner: the unit-circle/hyperbola intersection,
// the twisted cubic curve, and a multi-divisor division example.
package main

import (
	"fmt"
	"log"
	"os"
	"time"

	groebner "github.com/gopolynomial/groebner"
)

var logger = log.New(os.Stderr, "groebnerdemo: ", log.LstdFlags)

func main() {
	unitCircle()
	twistedCubic()
	divisionExample()
}

func unitCircle() {
	k := groebner.NewRat(0, 1)
	vars := map[string]int{"x": 0, "y": 1}
	xy, err := groebner.Parse[groebner.Lex](k, vars, "x*y - 1")
	if err != nil {
		logger.Fatalf("parse: %+v", err)
	}
	y2, err := groebner.Parse[groebner.Lex](k, vars, "y^2 - 1")
	if err != nil {
		logger.Fatalf("parse: %+v", err)
	}

	start := time.Now()
	basis := groebner.Buchberger([]*groebner.Polynomial[groebner.Lex, *groebner.Rat]{xy, y2})
	logger.Printf("unit circle intersection: computed %d-element basis in %s", len(basis), time.Since(start))

	fmt.Println("unit circle intersection, lex x > y:")
	for _, g := range basis {
		fmt.Printf("  %v = 0\n", g)
	}
	fmt.Println()
}

func twistedCubic() {
	k := groebner.NewRat(0, 1)
	vars := map[string]int{"x": 0, "y": 1}
	f1, err := groebner.Parse[groebner.Grevlex](k, vars, "x^2*y - 1")
	if err != nil {
		logger.Fatalf("parse: %+v", err)
	}
	f2, err := groebner.Parse[groebner.Grevlex](k, vars, "x^3 - y^2 - x")
	if err != nil {
		logger.Fatalf("parse: %+v", err)
	}
	ideal := []*groebner.Polynomial[groebner.Grevlex, *groebner.Rat]{f1, f2}

	start := time.Now()
	buch := groebner.Buchberger(ideal)
	logger.Printf("twisted cubic: buchberger basis has %d elements, computed in %s", len(buch), time.Since(start))

	start = time.Now()
	f5 := groebner.F5(ideal)
	logger.Printf("twisted cubic: f5 basis has %d elements, computed in %s", len(f5), time.Since(start))

	fmt.Println("twisted cubic curve, grevlex x > y:")
	for _, g := range buch {
		fmt.Printf("  buchberger: %v = 0\n", g)
	}
	for _, g := range f5 {
		fmt.Printf("  f5:         %v = 0\n", g)
	}
	fmt.Println()
}

func divisionExample() {
	k := groebner.NewRat(0, 1)
	vars := map[string]int{"x": 0, "y": 1}
	f, err := groebner.Parse[groebner.Lex](k, vars, "x^2*y + x*y^2 + y^2")
	if err != nil {
		logger.Fatalf("parse: %+v", err)
	}
	g1, err := groebner.Parse[groebner.Lex](k, vars, "x*y - 1")
	if err != nil {
		logger.Fatalf("parse: %+v", err)
	}
	g2, err := groebner.Parse[groebner.Lex](k, vars, "y^2 - 1")
	if err != nil {
		logger.Fatalf("parse: %+v", err)
	}

	q, r := groebner.DivList(f, []*groebner.Polynomial[groebner.Lex, *groebner.Rat]{g1, g2})
	fmt.Println("multi-divisor division, lex x > y:")
	fmt.Printf("  f = %v\n", f)
	for i, qi := range q {
		fmt.Printf("  q%d = %v\n", i, qi)
	}
	fmt.Printf("  r = %v\n", r)
}
