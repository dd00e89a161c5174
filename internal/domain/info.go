package domain

type Resource struct {
	Name     string
	Quantity int
}

func NewResource(name string, quantity int) Resource {
	return Resource{
		Name:     name,
		Quantity: quantity,
	}
}

type Status struct {
	Code     int
	Quantity int
}

func NewStatus(code, quantity int) Status {
	return Status{
		Code:     code,
		Quantity: quantity,
	}
}

// Meta describes the run a report was built for. From and To hold the
// bounds exactly as the user typed them, empty when not set.
type Meta struct {
	Source string
	From   string
	To     string
}

func NewMeta(source, from, to string) Meta {
	return Meta{
		Source: source,
		From:   from,
		To:     to,
	}
}
