package lib

// Failed is what CalculateOrFailed returns when expr cannot be evaluated.
const Failed int64 = -1

// Calculate tokenizes, converts and evaluates expr. The first failing stage
// decides the error and no partial result is returned.
//
// Function names are recognized by the tokenizer but cannot be applied, so an
// expression that uses one fails with an UnsupportedFeatureError.
func Calculate(expr string) (int64, error) {
	tokens, err := Tokenize(expr)
	if err != nil {
		return 0, err
	}

	postfix, err := ToPostfix(tokens)
	if err != nil {
		return 0, err
	}

	for _, tok := range postfix {
		if tok.Kind == TokenKindFunction {
			return 0, &UnsupportedFeatureError{Pos: tok.Pos, Function: tok.Fn}
		}
	}

	return Evaluate(postfix)
}

// CalculateOrFailed is Calculate for callers that only want a number. Note
// that Failed is also a legitimate result, e.g. of "1-2".
func CalculateOrFailed(expr string) int64 {
	result, err := Calculate(expr)
	if err != nil {
		return Failed
	}
	return result
}
