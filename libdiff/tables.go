package libdiff

import (
	"strings"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"

	"github.com/truthlab/go-prop/encode"
	"github.com/truthlab/go-prop/table"
)

// Tables renders a line diff between the flat renderings of from and
// to.  Unchanged lines carry two spaces, deletions "- ", insertions
// "+ ".  The second result reports whether the renderings were
// identical, in which case the text is empty.
func Tables(from, to *table.Table) (string, bool) {
	fromFlat := encode.MustString(from) + "\n"
	toFlat := encode.MustString(to) + "\n"
	if fromFlat == toFlat {
		return "", true
	}
	diffCfg := diffpatch.New()
	fromRunes, toRunes, lines := diffCfg.DiffLinesToRunes(fromFlat, toFlat)
	diffs := diffCfg.DiffMainRunes(fromRunes, toRunes, false)
	diffs = diffCfg.DiffCharsToLines(diffs, lines)
	var sb strings.Builder
	for i := range diffs {
		diff := &diffs[i]
		prefix := "  "
		switch diff.Type {
		case diffpatch.DiffDelete:
			prefix = "- "
		case diffpatch.DiffInsert:
			prefix = "+ "
		}
		text := strings.TrimRight(diff.Text, "\n")
		if text == "" {
			continue
		}
		for _, line := range strings.Split(text, "\n") {
			sb.WriteString(prefix)
			sb.WriteString(line)
			sb.WriteByte('\n')
		}
	}
	return sb.String(), false
}
