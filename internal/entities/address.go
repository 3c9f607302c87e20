package entities

type StructuredAddress struct {
	Area     string
	Block    string
	Street   string
	Building string
}

func (a StructuredAddress) IsEmpty() bool {
	return a.Area == "" && a.Block == "" && a.Street == "" && a.Building == ""
}
