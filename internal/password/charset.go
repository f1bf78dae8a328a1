// Package password assembles random passwords from fixed character classes.
package password

import "strings"

// Fixed character sets for each class.
const (
	UppercaseChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	LowercaseChars = "abcdefghijklmnopqrstuvwxyz"
	NumberChars    = "0123456789"
	SymbolChars    = "!@#$%^&*()_+{}[]|:;<>?,./"
)

// Length bounds used by the interactive widget and the CLI. Generate itself
// accepts any length.
const (
	MinLength     = 4
	MaxLength     = 32
	DefaultLength = 12
)

// Class identifies one of the four character classes.
type Class int

const (
	ClassUppercase Class = iota
	ClassLowercase
	ClassNumbers
	ClassSymbols
)

// Classes lists every class in canonical alphabet order.
var Classes = []Class{ClassUppercase, ClassLowercase, ClassNumbers, ClassSymbols}

// String returns the lowercase class name used in flags and labels.
func (c Class) String() string {
	switch c {
	case ClassUppercase:
		return "uppercase"
	case ClassLowercase:
		return "lowercase"
	case ClassNumbers:
		return "numbers"
	case ClassSymbols:
		return "symbols"
	default:
		return "unknown"
	}
}

// Charset returns the fixed characters contributed by the class.
func (c Class) Charset() string {
	switch c {
	case ClassUppercase:
		return UppercaseChars
	case ClassLowercase:
		return LowercaseChars
	case ClassNumbers:
		return NumberChars
	case ClassSymbols:
		return SymbolChars
	default:
		return ""
	}
}

// Selection records which character classes contribute to the alphabet.
type Selection struct {
	Uppercase bool
	Lowercase bool
	Numbers   bool
	Symbols   bool
}

// AllClasses returns a selection with every class enabled.
func AllClasses() Selection {
	return Selection{Uppercase: true, Lowercase: true, Numbers: true, Symbols: true}
}

// Has reports whether class c is enabled.
func (s Selection) Has(c Class) bool {
	switch c {
	case ClassUppercase:
		return s.Uppercase
	case ClassLowercase:
		return s.Lowercase
	case ClassNumbers:
		return s.Numbers
	case ClassSymbols:
		return s.Symbols
	default:
		return false
	}
}

// With returns a copy of s with class c set to enabled.
func (s Selection) With(c Class, enabled bool) Selection {
	switch c {
	case ClassUppercase:
		s.Uppercase = enabled
	case ClassLowercase:
		s.Lowercase = enabled
	case ClassNumbers:
		s.Numbers = enabled
	case ClassSymbols:
		s.Symbols = enabled
	}
	return s
}

// Toggle returns a copy of s with class c flipped.
func (s Selection) Toggle(c Class) Selection {
	return s.With(c, !s.Has(c))
}

// Empty reports whether no class is enabled.
func (s Selection) Empty() bool {
	return !s.Uppercase && !s.Lowercase && !s.Numbers && !s.Symbols
}

// Alphabet concatenates the enabled classes in canonical order. The result
// is empty when no class is enabled.
func Alphabet(sel Selection) string {
	var b strings.Builder
	for _, c := range Classes {
		if sel.Has(c) {
			b.WriteString(c.Charset())
		}
	}
	return b.String()
}
