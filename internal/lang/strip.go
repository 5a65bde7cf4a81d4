// Package lang implements the lexical C/C++ scanning primitives: comment
// stripping and #include directive extraction.
//
// The scan is a cheap syntactic approximation, not a preprocessor. It
// does not understand string or character literals, so comment markers
// inside a literal are treated as real comments. Conditional compilation
// is ignored: every #include encountered textually counts as active.
package lang

// Strip removes /* ... */ and // ... comments from src.
//
// Newlines inside block comments are preserved so line numbers in the
// stripped text stay aligned with the original. An unterminated block
// comment consumes the rest of the input; this lenient fallback matches
// the reference tool and is deliberate.
func Strip(src []byte) []byte {
	out := make([]byte, 0, len(src))
	i := 0
	for i < len(src) {
		if src[i] == '/' && i+1 < len(src) {
			switch src[i+1] {
			case '*':
				i += 2
				for i < len(src) {
					if src[i] == '\n' {
						out = append(out, '\n')
						i++
						continue
					}
					if src[i] == '*' && i+1 < len(src) && src[i+1] == '/' {
						i += 2
						break
					}
					i++
				}
				continue
			case '/':
				i += 2
				for i < len(src) && src[i] != '\n' {
					i++
				}
				continue
			}
		}
		out = append(out, src[i])
		i++
	}
	return out
}
