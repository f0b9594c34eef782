package encode

import (
	"bytes"
	"strings"

	"github.com/truthlab/go-prop/table"
)

func MustString(t *table.Table, opts ...EncodeOption) string {
	buf := bytes.NewBuffer(nil)
	if err := Encode(t, buf, opts...); err != nil {
		panic(err)
	}
	return strings.TrimSpace(buf.String())
}
