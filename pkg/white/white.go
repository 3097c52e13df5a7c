// Package white strips white space out of byte slices. Sequence lines
// in fasta files and pasted-in partner sequences are full of it.
package white

var asciiSpace = [256]bool{
	'\t': true, '\n': true, '\v': true, '\f': true, '\r': true, ' ': true,
}

func isWhite(c byte) bool { return asciiSpace[c] }

// Remove acts on a byte slice, in place, and removes all the white
// space. The length is adjusted, but the capacity is unchanged.
func Remove(sIn *[]byte) {
	s := *sIn
	n := 0
	for _, c := range s {
		if !isWhite(c) {
			s[n] = c
			n++
		}
	}
	*sIn = s[:n]
}

// String is the convenience version for strings. It allocates.
func String(s string) string {
	b := []byte(s)
	Remove(&b)
	return string(b)
}
