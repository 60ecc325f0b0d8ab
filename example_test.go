package calc_test

import (
	"fmt"

	"github.com/xiam/calc"
)

func ExampleComputeString() {
	v, err := calc.ComputeString(`let(a, 5, let(b, mult(a, 10), add(b, a)))`)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(v)
	// Output: 55
}

func ExampleComputeString_divisionByZero() {
	_, err := calc.ComputeString(`div(10, 0)`)
	fmt.Println(err, calc.IsArithmetic(err))
	// Output: div(10,0): division by zero true
}
