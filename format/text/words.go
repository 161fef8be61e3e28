package text

import "unicode"

// SplitWords splits an identifier into words regardless of its source delimiter.
// Any rune that is neither a letter nor a digit separates words and is dropped,
// a lower case letter or digit followed by an upper case letter starts a new word,
// and the last letter of an upper case run followed by a lower case letter starts a new word
// (HTTPServer: HTTP, Server). Digits stay with the word they follow.
func SplitWords(key string) []string {
	if key == "" {
		return nil
	}
	runes := []rune(key)
	var words []string
	start := -1
	for i, r := range runes {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			if start != -1 {
				words = append(words, string(runes[start:i]))
				start = -1
			}
			continue
		}
		if start == -1 {
			start = i
			continue
		}
		prev := runes[i-1]
		switch {
		case unicode.IsUpper(r):
			if unicode.IsLower(prev) || unicode.IsDigit(prev) {
				words = append(words, string(runes[start:i]))
				start = i
			}
		case unicode.IsLower(r):
			if i-1 > start && unicode.IsUpper(prev) && unicode.IsUpper(runes[i-2]) {
				words = append(words, string(runes[start:i-1]))
				start = i - 1
			}
		}
	}
	if start != -1 {
		words = append(words, string(runes[start:]))
	}
	return words
}
