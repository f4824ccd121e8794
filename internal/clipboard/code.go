package clipboard

import "math/rand/v2"

// codeAlphabet excludes visually ambiguous characters (0/O, 1/I) so codes
// stay easy to read aloud and retype.
const codeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// CodeLength is the length of every generated share code.
const CodeLength = 6

// generateCode produces a share code, each character drawn uniformly and
// independently from codeAlphabet. Not cryptographically secure; collisions
// are handled by the create loop.
func generateCode() string {
	code := make([]byte, CodeLength)
	for i := range code {
		code[i] = codeAlphabet[rand.IntN(len(codeAlphabet))]
	}
	return string(code)
}
