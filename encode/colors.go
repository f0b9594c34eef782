package encode

import (
	"strings"

	"github.com/fatih/color"
)

type ColorAttr int

const (
	VarColor ColorAttr = iota
	OpColor
	GroupColor
	ConstColor
	HeaderColor
	TrueColor
	FalseColor
)

type Colors struct {
	Default func(string, ...any) string
	Map     map[ColorAttr]func(string, ...any) string
}

func NewColors() *Colors {
	colors := &Colors{
		Default: colorDefault,
		Map:     map[ColorAttr]func(string, ...any) string{},
	}
	colors.Map[VarColor] = color.RGB(128, 168, 196).SprintfFunc()
	colors.Map[OpColor] = color.RGB(196, 96, 16).SprintfFunc()
	colors.Map[GroupColor] = color.BlueString
	colors.Map[ConstColor] = color.RGB(168, 0, 196).SprintfFunc()
	colors.Map[HeaderColor] = color.CyanString
	colors.Map[TrueColor] = color.RGB(8, 196, 16).SprintfFunc()
	colors.Map[FalseColor] = color.RGB(196, 64, 48).SprintfFunc()
	for k, f := range colors.Map {
		colors.Map[k] = func(v string, _ ...any) string {
			return f(strings.Replace(v, "%", "%%", -1))
		}
	}
	return colors
}

func colorDefault(v string, _ ...any) string { return v }

func (c *Colors) Color(a ColorAttr, s string) string {
	res := c.Get(a)(s)
	return res
}

func (c *Colors) Get(a ColorAttr) func(string, ...any) string {
	f := c.Map[a]
	if f == nil {
		return c.Default
	}
	return f
}
