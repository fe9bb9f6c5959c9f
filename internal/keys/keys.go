// Package keys turns user supplied identifiers (user IDs, profession names)
// into storage keys that are safe to use as file names.
//
// Sanitize works on bytes: every byte outside [A-Za-z0-9] becomes '_', so a
// multi-byte UTF-8 character turns into several underscores. The mapping is
// lossy ("a-b" and "a_b" share a key) and idempotent.
package keys

// Sanitize maps every byte outside [A-Za-z0-9] to '_'.
func Sanitize(id string) string {
	b := []byte(id)
	for i, c := range b {
		if !isAlnum(c) {
			b[i] = '_'
		}
	}
	return string(b)
}

// FoldCase lowercases ASCII letters and leaves every other byte alone.
func FoldCase(id string) string {
	b := []byte(id)
	for i, c := range b {
		if 'A' <= c && c <= 'Z' {
			b[i] = c + ('a' - 'A')
		}
	}
	return string(b)
}

// Normalizer derives storage keys for one kind of identifier.
type Normalizer struct {
	// FoldCase lowercases the identifier before sanitizing it, so names
	// that differ only in case share a key.
	FoldCase bool
}

// Key returns the storage key for id.
func (n Normalizer) Key(id string) string {
	if n.FoldCase {
		id = FoldCase(id)
	}
	return Sanitize(id)
}

func isAlnum(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z') || ('0' <= c && c <= '9')
}
