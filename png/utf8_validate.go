package png

import "unicode/utf8"

// isUTF8Valid validates UTF-8 for a byte slice.
var isUTF8Valid = func(b []byte) bool { return utf8.Valid(b) }
