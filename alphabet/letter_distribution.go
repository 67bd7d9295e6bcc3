package alphabet

import "unicode"

// pointValues are the fixed point values for every tile. The wildcard
// is worth nothing.
var pointValues = map[rune]int{
	'a': 1, 'b': 3, 'c': 3, 'd': 2, 'e': 1, 'f': 4, 'g': 2, 'h': 4,
	'i': 1, 'j': 8, 'k': 5, 'l': 1, 'm': 3, 'n': 1, 'o': 1, 'p': 3,
	'q': 10, 'r': 1, 's': 1, 't': 1, 'u': 1, 'v': 4, 'w': 4, 'x': 8,
	'y': 4, 'z': 10, Wildcard: 0,
}

// LetterValue returns the point value of a single tile. Uppercase letters
// score like their lowercase counterparts; anything that is not a tile
// scores 0.
func LetterValue(r rune) int {
	return pointValues[unicode.ToLower(r)]
}

// PointValues returns a copy of the tile -> points table, e.g. for
// display.
func PointValues() map[rune]int {
	ret := make(map[rune]int, len(pointValues))
	for k, v := range pointValues {
		ret[k] = v
	}
	return ret
}
