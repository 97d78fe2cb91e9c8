package remote

import (
	"image/color"

	"fancyshot/pkg/fancy"
)

type Policy struct {
	Kind  int
	Start color.NRGBA
	End   color.NRGBA
}

func toWire(p fancy.Policy) Policy {
	return Policy{Kind: int(p.Kind), Start: p.Start, End: p.End}
}

func (p Policy) policy() fancy.Policy {
	return fancy.Policy{Kind: fancy.Kind(p.Kind), Start: p.Start, End: p.End}
}

type ComposeRequest struct {
	Image  []byte
	Policy Policy
}

type ComposeResponse struct {
	Image []byte
	Side  int
	X     int
	Y     int
}
