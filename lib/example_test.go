package lib_test

import (
	"fmt"

	"github.com/graeme-hill/calcstuff-go/lib"
)

func ExampleCalculate() {
	for _, expr := range []string{"1+1", "(1+2)^2", "5+3!", "7+7*2", "(3+3)/3", "4!", "(1", "1/0"} {
		fmt.Println(lib.Calculate(expr))
	}

	// Output:
	// 2 <nil>
	// 9 <nil>
	// 11 <nil>
	// 21 <nil>
	// 2 <nil>
	// 24 <nil>
	// 0 Error at col 1: unbalanced parentheses: '(' is never closed
	// 0 Error at col 2: division by zero in '/'
}

func ExampleFormatRPN() {
	tokens, _ := lib.Tokenize("3 + 4 * 2 / ( 1 - 5 ) ^ 2 ^ 3")
	postfix, _ := lib.ToPostfix(tokens)
	fmt.Println(lib.FormatRPN(postfix))

	// Output:
	// 3 4 2 * 1 5 - 2 3 ^ ^ / +
}
