package fancy

import (
	"fmt"
	"image/color"
)

type Kind int

const (
	KindDefault Kind = iota
	KindFixed
	KindRandom
)

func (k Kind) String() string {
	switch k {
	case KindDefault:
		return "default"
	case KindFixed:
		return "fixed"
	case KindRandom:
		return "random"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

var (
	DefaultStart = color.NRGBA{R: 255, G: 34, B: 124, A: 255}
	DefaultEnd   = color.NRGBA{R: 128, G: 255, B: 68, A: 255}
)

// Policy decides the two gradient stops painted behind a screenshot.
// Start and End are only read for KindFixed.
type Policy struct {
	Kind  Kind
	Start color.NRGBA
	End   color.NRGBA
}

func Default() Policy {
	return Policy{Kind: KindDefault}
}

func Random() Policy {
	return Policy{Kind: KindRandom}
}

func Fixed(start, end color.Color) Policy {
	return Policy{
		Kind:  KindFixed,
		Start: color.NRGBAModel.Convert(start).(color.NRGBA),
		End:   color.NRGBAModel.Convert(end).(color.NRGBA),
	}
}

func (p Policy) String() string {
	if p.Kind == KindFixed {
		return fmt.Sprintf("%s(%s,%s)", p.Kind, FormatColor(p.Start), FormatColor(p.End))
	}
	return p.Kind.String()
}
