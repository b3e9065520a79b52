package encode

import "github.com/fatih/color"

type ColorAttr int

const (
	CommentColor ColorAttr = iota
	BracketColor
	SepColor
	NameColor
	ValueColor
	NumberColor
)

type Colors struct {
	Default func(string, ...any) string
	Map     map[ColorAttr]func(string, ...any) string
}

func NewColors() *Colors {
	return &Colors{
		Default: colorDefault,
		Map: map[ColorAttr]func(string, ...any) string{
			CommentColor: color.RGB(96, 96, 96).SprintfFunc(),
			BracketColor: color.RGB(74, 92, 138).SprintfFunc(),
			SepColor:     color.RGB(255, 0, 196).SprintfFunc(),
			NameColor:    color.RGB(196, 96, 16).SprintfFunc(),
			ValueColor:   color.RGB(8, 196, 16).SprintfFunc(),
			NumberColor:  color.RGB(128, 216, 236).SprintfFunc(),
		},
	}
}

func colorDefault(f string, args ...any) string {
	return color.WhiteString(f, args...)
}

func (c *Colors) sprint(attr ColorAttr, s string) string {
	if c == nil {
		return s
	}
	if s == "" {
		return s
	}
	fn := c.Map[attr]
	if fn == nil {
		fn = c.Default
	}
	return fn("%s", s)
}
