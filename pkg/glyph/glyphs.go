package glyph

import "fmt"

type Glyph struct {
	Key     string
	Symbol  string
	Meaning string
}

const (
	escape        = "\x1b"
	resetCode     = 0
	boldCode      = 1
	underlineCode = 4
	strikeCode    = 9
)

func Strike(in string) string {
	return fmt.Sprintf("%s[%dm%s%s[%dm", escape, strikeCode, in, escape, resetCode)
}

func Bold(in string) string {
	return fmt.Sprintf("%s[%dm%s%s[%dm", escape, boldCode, in, escape, resetCode)
}

func Underline(in string) string {
	return fmt.Sprintf("%s[%dm%s%s[%dm", escape, underlineCode, in, escape, resetCode)
}

func DefaultGlyphs() []Glyph {
	g := make([]Glyph, 0, 4)

	g = append(g, Glyph{
		Key:     "+",
		Symbol:  "●",
		Meaning: "task pending",
	}, Glyph{
		Key:     "x",
		Symbol:  "✘",
		Meaning: "task completed",
	}, Glyph{
		Key:     "o",
		Symbol:  "•",
		Meaning: "day has content",
	}, Glyph{
		Key:     " ",
		Symbol:  " ",
		Meaning: "none",
	})

	return g
}

func (g Glyph) String() string {
	return g.Symbol
}

type Status int

const (
	Pending Status = iota
	Done
	Marker
	None
)

func (s Status) Glyph() Glyph {
	return DefaultGlyphs()[s]
}

func (s Status) String() string {
	return s.Glyph().String()
}

// ForCompleted maps a completion flag onto its status glyph.
func ForCompleted(completed bool) Status {
	if completed {
		return Done
	}
	return Pending
}
