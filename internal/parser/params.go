package parser

import "time"

// Params select the sources to read and the records to keep. Nil bounds and
// empty filter fields mean no constraint.
type Params struct {
	Path        string
	From        *time.Time
	To          *time.Time
	FilterField string
	FilterValue string
}

func (p Params) Filter() *Filter {
	return NewFilter(p.From, p.To, p.FilterField, p.FilterValue)
}
