// Package token splits a raws stream into bracketed tags and the
// comment text between them.
//
// A raws file is a sequence of [TAG:ARG:...] groups; everything
// outside brackets is comment text. The tokenizer preserves that
// text verbatim, attached to the tag it precedes, so a parsed file
// can be written back out byte for byte.
//
//	tk := token.NewTokenizer("creature_standard.txt", f)
//	for {
//		tok, err := tk.Next()
//		if err == io.EOF {
//			break
//		}
//		...
//	}
package token
