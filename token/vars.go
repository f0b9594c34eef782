package token

// Variables returns the sorted, deduplicated propositional variables
// referenced in src.  A variable is a single letter standing alone as
// a word which is not an operator keyword.  Matching is
// case-insensitive and the result is uppercased.
//
// Variables never fails: input that would not parse still yields
// whatever variables it mentions, so callers can report on partial
// input.
func Variables(src []byte) []Variable {
	var seen [26]bool
	i, n := 0, len(src)
	for i < n {
		if !isLetter(src[i]) {
			i++
			continue
		}
		j := i + 1
		for j < n && isWordByte(src[j]) {
			j++
		}
		if j-i == 1 {
			seen[upper(src[i])-'A'] = true
		}
		i = j
	}
	var res []Variable
	for k, ok := range seen {
		if ok {
			res = append(res, Variable('A'+byte(k)))
		}
	}
	return res
}
