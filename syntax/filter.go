package syntax

// Filter returns the tokens the parser consumes. Trivia is dropped; every
// other token is kept with its span unchanged, including kinds no grammar
// rule accepts yet, so that the parser rejects them with a diagnostic instead
// of them disappearing from the input.
func Filter(toks []Token) []Token {
	out := make([]Token, 0, len(toks))

	for _, tok := range toks {
		if tok.Kind.IsTrivia() {
			continue
		}

		out = append(out, tok)
	}

	return out
}
