package password

// Generate builds a password of length characters drawn uniformly, with
// replacement, from the alphabet implied by sel. It returns "" when the
// alphabet is empty or length is not positive.
func Generate(length int, sel Selection) string {
	return GenerateWith(DefaultSource(), length, sel)
}

// GenerateWith is Generate with an explicit random source.
func GenerateWith(src Source, length int, sel Selection) string {
	alphabet := Alphabet(sel)
	if alphabet == "" || length <= 0 {
		return ""
	}
	if src == nil {
		src = DefaultSource()
	}

	out := make([]byte, length)
	for i := range out {
		out[i] = alphabet[src.IntN(len(alphabet))]
	}
	return string(out)
}

// Generator pairs a source with the options the widget and CLI share.
type Generator struct {
	Source    Source
	Length    int
	Selection Selection
}

// NewGenerator returns a Generator with the default length of twelve
// characters from every class, drawn from the default source.
func NewGenerator() *Generator {
	return &Generator{
		Source:    DefaultSource(),
		Length:    DefaultLength,
		Selection: AllClasses(),
	}
}

// Next produces one password from the current options.
func (g *Generator) Next() string {
	if g == nil {
		return ""
	}
	return GenerateWith(g.Source, g.Length, g.Selection)
}
