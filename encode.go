package percent

const upperhex = "0123456789ABCDEF"

// safe holds the unreserved bytes: A-Z a-z 0-9 - . _ ~
var safe = [256]bool{
	'-': true, '.': true, '_': true, '~': true,
	'0': true, '1': true, '2': true, '3': true, '4': true,
	'5': true, '6': true, '7': true, '8': true, '9': true,
	'A': true, 'B': true, 'C': true, 'D': true, 'E': true, 'F': true, 'G': true,
	'H': true, 'I': true, 'J': true, 'K': true, 'L': true, 'M': true, 'N': true,
	'O': true, 'P': true, 'Q': true, 'R': true, 'S': true, 'T': true, 'U': true,
	'V': true, 'W': true, 'X': true, 'Y': true, 'Z': true,
	'a': true, 'b': true, 'c': true, 'd': true, 'e': true, 'f': true, 'g': true,
	'h': true, 'i': true, 'j': true, 'k': true, 'l': true, 'm': true, 'n': true,
	'o': true, 'p': true, 'q': true, 'r': true, 's': true, 't': true, 'u': true,
	'v': true, 'w': true, 'x': true, 'y': true, 'z': true,
}

// IsSafe reports whether b is emitted unchanged by Encode.
func IsSafe(b byte) bool { return safe[b] }

// Encode escapes every byte of s outside the safe set as %XX.
// Multi-byte UTF-8 sequences are escaped one byte at a time.
func Encode(s string) string {
	n := escapedLen(s)
	if n == len(s) {
		return s
	}
	buf := make([]byte, 0, n)
	for i := 0; i < len(s); i++ {
		buf = appendByte(buf, s[i])
	}
	return string(buf)
}

// EncodeBytes is Encode for byte slices. The result never aliases b.
func EncodeBytes(b []byte) []byte {
	return AppendEncode(make([]byte, 0, escapedLen(b)), b)
}

// AppendEncode appends the escaped form of src to dst and returns the extended slice.
func AppendEncode(dst, src []byte) []byte {
	for _, c := range src {
		dst = appendByte(dst, c)
	}
	return dst
}

func appendByte(dst []byte, c byte) []byte {
	if safe[c] {
		return append(dst, c)
	}
	return append(dst, '%', upperhex[c>>4], upperhex[c&15])
}

func escapedLen[T string | []byte](s T) int {
	n := len(s)
	for i := 0; i < len(s); i++ {
		if !safe[s[i]] {
			n += 2
		}
	}
	return n
}
