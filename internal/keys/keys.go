package keys

import "strings"

// Sep separates the namespace from the key. Escaped text never contains it.
const Sep = ':'

// Join returns "<ns>:<key>". Both parts must already be escaped.
func Join(ns, key string) string {
	var b strings.Builder
	b.Grow(len(ns) + 1 + len(key))
	b.WriteString(ns)
	b.WriteByte(Sep)
	b.WriteString(key)
	return b.String()
}

// Prefix returns "<ns>:", the common prefix of every key in ns.
func Prefix(ns string) string { return ns + string(Sep) }

// Split is the inverse of Join. ok is false unless storageKey has exactly one separator.
func Split(storageKey string) (ns, key string, ok bool) {
	i := strings.IndexByte(storageKey, Sep)
	if i < 0 || strings.IndexByte(storageKey[i+1:], Sep) >= 0 {
		return "", "", false
	}
	return storageKey[:i], storageKey[i+1:], true
}
