package editdistance

// keyboardLayout maps a QWERTY key to the set of keys adjacent to it,
// grounded verbatim on EditDistanceCalculator._build_keyboard_layout in
// the original implementation.
var keyboardLayout = map[byte]map[byte]struct{}{
	'q': set('w', 'a'),
	'w': set('q', 'e', 's'),
	'e': set('w', 'r', 'd'),
	'r': set('e', 't', 'f'),
	't': set('r', 'y', 'g'),
	'y': set('t', 'u', 'h'),
	'u': set('y', 'i', 'j'),
	'i': set('u', 'o', 'k'),
	'o': set('i', 'p', 'l'),
	'p': set('o', 'l'),
	'a': set('q', 's', 'z'),
	's': set('a', 'w', 'd', 'x'),
	'd': set('s', 'e', 'f', 'c'),
	'f': set('d', 'r', 'g', 'v'),
	'g': set('f', 't', 'h', 'b'),
	'h': set('g', 'y', 'j', 'n'),
	'j': set('h', 'u', 'k', 'm'),
	'k': set('j', 'i', 'l'),
	'l': set('k', 'o', 'p'),
	'z': set('a', 's', 'x'),
	'x': set('z', 's', 'd', 'c'),
	'c': set('x', 'd', 'f', 'v'),
	'v': set('c', 'f', 'g', 'b'),
	'b': set('v', 'g', 'h', 'n'),
	'n': set('b', 'h', 'j', 'm'),
	'm': set('n', 'j', 'k'),
}

func set(keys ...byte) map[byte]struct{} {
	s := make(map[byte]struct{}, len(keys))
	for _, k := range keys {
		s[k] = struct{}{}
	}
	return s
}

func isAdjacentKey(a, b byte) bool {
	neighbors, ok := keyboardLayout[a]
	if !ok {
		return false
	}
	_, adjacent := neighbors[b]
	return adjacent
}

// phoneticPatterns is the fixed ordered list of substring replacements
// used to normalize words before comparing them phonetically, grounded
// on EditDistanceCalculator.phonetic_distance's phonetic_map. Order
// matters: longer patterns are checked before their prefixes would be
// consumed by a shorter one (e.g. "tion" before "ion" would matter if
// "ion" were present, but the source list itself fixes this order).
var phoneticPatterns = []struct {
	pattern     string
	replacement string
}{
	{"ph", "f"},
	{"tion", "shun"},
	{"sion", "zhun"},
	{"ough", "uff"},
	{"augh", "aff"},
	{"eigh", "ay"},
	{"ight", "ite"},
	{"kn", "n"},
	{"wr", "r"},
	{"mb", "m"},
	{"bt", "t"},
}
