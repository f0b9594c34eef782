// Package format names the output formats truth tables encode to.
package format

import (
	"errors"
	"fmt"
)

type Format int

const (
	FlatFormat Format = iota
	CSVFormat
	TSVFormat
	JSONFormat
	TableFormat
)

var ErrBadFormat = errors.New("bad format")

func ParseFormat(v string) (Format, error) {
	f, ok := map[string]Format{
		"f":     FlatFormat,
		"flat":  FlatFormat,
		"c":     CSVFormat,
		"csv":   CSVFormat,
		"tsv":   TSVFormat,
		"j":     JSONFormat,
		"json":  JSONFormat,
		"t":     TableFormat,
		"table": TableFormat,
	}[v]
	if ok {
		return f, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrBadFormat, v)
}

func (f Format) String() string {
	d, err := f.MarshalText()
	if err != nil {
		return err.Error()
	}
	return string(d)
}

func (f Format) MarshalText() ([]byte, error) {
	switch f {
	case FlatFormat:
		return []byte("flat"), nil
	case CSVFormat:
		return []byte("csv"), nil
	case TSVFormat:
		return []byte("tsv"), nil
	case JSONFormat:
		return []byte("json"), nil
	case TableFormat:
		return []byte("table"), nil
	default:
		return nil, fmt.Errorf("<err: %d is not a format>", f)
	}
}

func (f *Format) UnmarshalText(d []byte) error {
	pf, err := ParseFormat(string(d))
	if err != nil {
		return err
	}
	*f = pf
	return nil
}

func (f Format) IsJSON() bool  { return f == JSONFormat }
func (f Format) IsFlat() bool  { return f == FlatFormat }
func (f Format) IsTable() bool { return f == TableFormat }

// Machine reports whether the format is meant for other programs
// rather than people.  Machine formats round trip through decoding.
func (f Format) Machine() bool {
	switch f {
	case CSVFormat, TSVFormat, JSONFormat, FlatFormat:
		return true
	default:
		return false
	}
}

// Suffix returns the file extension for this format (including the dot).
func (f Format) Suffix() string {
	switch f {
	case FlatFormat:
		return ".txt"
	case CSVFormat:
		return ".csv"
	case TSVFormat:
		return ".tsv"
	case JSONFormat:
		return ".json"
	case TableFormat:
		return ".txt"
	default:
		return ""
	}
}

// AllFormats returns all supported formats in preference order.
func AllFormats() []Format {
	return []Format{FlatFormat, TableFormat, CSVFormat, TSVFormat, JSONFormat}
}
