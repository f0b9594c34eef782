package token

import (
	"fmt"
	"unicode/utf8"
)

// Tokenize appends the tokens of the formula in src to dst and
// returns the result.  Keywords and variables are matched without
// regard to case.  The returned tokens alias src.
//
// On error the returned error is a [*TokenizeErr] locating the
// offending input.
func Tokenize(dst []Token, src []byte) ([]Token, error) {
	doc := &PosDoc{d: src}
	i, n := 0, len(src)
	for i < n {
		c := src[i]
		switch {
		case c == '\n':
			doc.nl(i)
			i++
		case c == ' ' || c == '\t' || c == '\r':
			i++
		case c == '(':
			dst = append(dst, Token{Type: TLParen, Pos: doc.Pos(i), Bytes: src[i : i+1]})
			i++
		case c == ')':
			dst = append(dst, Token{Type: TRParen, Pos: doc.Pos(i), Bytes: src[i : i+1]})
			i++
		case c == ',':
			dst = append(dst, Token{Type: TComma, Pos: doc.Pos(i), Bytes: src[i : i+1]})
			i++
		case c == '-':
			if i+1 < n && src[i+1] == '>' {
				dst = append(dst, Token{Type: TImplies, Pos: doc.Pos(i), Bytes: src[i : i+2]})
				i += 2
				continue
			}
			return nil, UnexpectedErr(fmt.Sprintf("%q", sample(src, i)), doc.Pos(i))
		case c == '<':
			if i+2 < n && src[i+1] == '-' && src[i+2] == '>' {
				dst = append(dst, Token{Type: TEquiv, Pos: doc.Pos(i), Bytes: src[i : i+3]})
				i += 3
				continue
			}
			return nil, UnexpectedErr(fmt.Sprintf("%q", sample(src, i)), doc.Pos(i))
		case isLetter(c):
			j := i + 1
			for j < n && isWordByte(src[j]) {
				j++
			}
			word := src[i:j]
			tt, ok := keywordType(word)
			switch {
			case ok:
				dst = append(dst, Token{Type: tt, Pos: doc.Pos(i), Bytes: word})
			case len(word) == 1:
				dst = append(dst, Token{Type: TVar, Pos: doc.Pos(i), Bytes: word})
			default:
				return nil, NewTokenizeErr(fmt.Errorf("%w %q", ErrBadWord, word), doc.Pos(i))
			}
			i = j
		case c < utf8.RuneSelf:
			return nil, UnexpectedErr(fmt.Sprintf("%q", sample(src, i)), doc.Pos(i))
		default:
			r, sz := utf8.DecodeRune(src[i:])
			if r == utf8.RuneError && sz <= 1 {
				return nil, NewTokenizeErr(ErrBadUTF8, doc.Pos(i))
			}
			return nil, UnexpectedErr(fmt.Sprintf("%q", r), doc.Pos(i))
		}
	}
	return dst, nil
}

// sample returns a short slice of src at i for error messages.
func sample(src []byte, i int) string {
	j := i
	for j < len(src) && j < i+3 && src[j] != ' ' && src[j] != '\n' {
		j++
	}
	return string(src[i:j])
}

func isLetter(c byte) bool {
	return 'A' <= c && c <= 'Z' || 'a' <= c && c <= 'z'
}

func isWordByte(c byte) bool {
	return isLetter(c) || '0' <= c && c <= '9' || c == '_'
}

func upper(c byte) byte {
	if 'a' <= c && c <= 'z' {
		return c - 'a' + 'A'
	}
	return c
}
