package token

import "io"

// Tokenize returns all tokens of d.
func Tokenize(filename string, d []byte) ([]Token, error) {
	tk := NewTokenizerFromBytes(filename, d)
	var res []Token
	for {
		tok, err := tk.Next()
		if err == io.EOF {
			return res, nil
		}
		if err != nil {
			return nil, err
		}
		res = append(res, *tok)
	}
}
