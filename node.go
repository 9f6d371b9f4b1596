package wbb

type Kind int

const (
	TagKind Kind = iota
	PageKind
	HeaderKind
	FooterKind
)

func (k Kind) String() string {
	switch k {
	case PageKind:
		return "page"
	case HeaderKind:
		return "header"
	case FooterKind:
		return "footer"
	default:
		return "tag"
	}
}

type Node struct {
	Kind     Kind
	Name     string
	Text     string
	Children []*Node
}
