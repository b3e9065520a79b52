package token

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strings"
)

// Tokenizer is a two-state machine over a byte stream. Outside a tag
// every byte accumulates into the pending comment buffer and '['
// opens a tag; inside a tag ':' splits fields, ']' closes and emits,
// and a second '[' is a parse error. Lines are counted 1-based across
// the whole stream, comment text and tag interiors alike.
type Tokenizer struct {
	file string
	br   *bufio.Reader

	nl      int // newlines seen so far
	inTag   bool
	tagLine int
	fields  []string
	cur     strings.Builder
	comment strings.Builder
	done    bool
}

// NewTokenizer tokenizes r in streaming mode. The filename labels
// positions in errors and emitted tags; it is not opened.
func NewTokenizer(filename string, r io.Reader) *Tokenizer {
	return &Tokenizer{file: filename, br: bufio.NewReader(r)}
}

// NewTokenizerFromBytes tokenizes d in non-streaming mode.
func NewTokenizerFromBytes(filename string, d []byte) *Tokenizer {
	return &Tokenizer{file: filename, br: bufio.NewReader(bytes.NewReader(d))}
}

// Next returns the next tag or trailing comment, or io.EOF when the
// stream is exhausted. A stream that ends inside a tag yields a
// parse error naming the line of the unclosed bracket.
func (t *Tokenizer) Next() (*Token, error) {
	if t.done {
		return nil, io.EOF
	}
	for {
		c, err := t.br.ReadByte()
		if err == io.EOF {
			return t.finish()
		}
		if err != nil {
			return nil, err
		}
		if c == '\n' {
			t.nl++
		}
		if t.inTag {
			tok, err := t.tagByte(c)
			if tok != nil || err != nil {
				return tok, err
			}
			continue
		}
		if c == '[' {
			t.inTag = true
			t.tagLine = t.nl + 1
			t.fields = nil
			t.cur.Reset()
			continue
		}
		t.comment.WriteByte(c)
	}
}

func (t *Tokenizer) tagByte(c byte) (*Token, error) {
	switch c {
	case ':':
		t.fields = append(t.fields, t.cur.String())
		t.cur.Reset()
		return nil, nil
	case ']':
		t.fields = append(t.fields, t.cur.String())
		t.cur.Reset()
		tok := &Token{
			Type:    TTag,
			Fields:  t.fields,
			Comment: t.comment.String(),
			Line:    t.tagLine,
		}
		t.fields = nil
		t.comment.Reset()
		t.inTag = false
		return tok, nil
	case '[':
		t.done = true
		return nil, NewError(t.file, t.tagLine,
			fmt.Errorf("%w: tag is not closed before next [", ErrParse))
	default:
		t.cur.WriteByte(c)
		return nil, nil
	}
}

func (t *Tokenizer) finish() (*Token, error) {
	t.done = true
	if t.inTag {
		open := "[" + strings.Join(append(t.fields, t.cur.String()), ":")
		return nil, NewError(t.file, t.tagLine,
			fmt.Errorf("%w: unclosed tag %q at end of input", ErrParse, open))
	}
	if t.comment.Len() > 0 {
		tok := &Token{Type: TComment, Text: t.comment.String()}
		t.comment.Reset()
		return tok, nil
	}
	return nil, io.EOF
}
