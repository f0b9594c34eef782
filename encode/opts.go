package encode

import "github.com/truthlab/go-prop/format"

// BoolStyle selects how truth values print.
type BoolStyle int

const (
	Bits    BoolStyle = iota // 0 and 1
	Letters                  // F and T
	Words                    // False and True
)

type EncState struct {
	format format.Format
	bools  BoolStyle
	header bool

	Color func(ColorAttr, string) string
}

type EncodeOption func(*EncState)

func EncodeFormat(f format.Format) EncodeOption {
	return func(es *EncState) { es.format = f }
}

// FormatFromOpts extracts the format from encode options.
func FormatFromOpts(opts ...EncodeOption) format.Format {
	es := &EncState{}
	for _, opt := range opts {
		opt(es)
	}
	return es.format
}

func EncodeBools(s BoolStyle) EncodeOption {
	return func(es *EncState) { es.bools = s }
}

// EncodeHeader controls whether the variable header row is written.
// It defaults to on.
func EncodeHeader(v bool) EncodeOption {
	return func(es *EncState) { es.header = v }
}

func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) { es.Color = c.Color }
}

func (es *EncState) bool(v bool) string {
	switch es.bools {
	case Letters:
		if v {
			return "T"
		}
		return "F"
	case Words:
		if v {
			return "True"
		}
		return "False"
	default:
		if v {
			return "1"
		}
		return "0"
	}
}
