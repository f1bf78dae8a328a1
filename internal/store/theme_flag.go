package store

import "strconv"

// DarkKey holds the persisted theme flag.
const DarkKey = "dark"

// LoadDark reports whether the dark theme is persisted. Anything other than
// the exact string "true" reads as light.
func LoadDark(s Store) bool {
	if s == nil {
		return false
	}
	v, ok := s.Get(DarkKey)
	return ok && v == "true"
}

// SaveDark persists the theme flag as "true" or "false".
func SaveDark(s Store, dark bool) error {
	if s == nil {
		return nil
	}
	return s.Set(DarkKey, strconv.FormatBool(dark))
}
