package token

var keywords = map[string]TokenType{
	"AND":   TAnd,
	"OR":    TOr,
	"NOT":   TNot,
	"XOR":   TXor,
	"NAND":  TNand,
	"NOR":   TNor,
	"TRUE":  TTrue,
	"FALSE": TFalse,
}

// keywordType matches w against the keyword table without regard to
// case.  w must be a word: letters followed by word bytes.
func keywordType(w []byte) (TokenType, bool) {
	if len(w) > 5 {
		return 0, false
	}
	var buf [5]byte
	for i, c := range w {
		buf[i] = upper(c)
	}
	tt, ok := keywords[string(buf[:len(w)])]
	return tt, ok
}
