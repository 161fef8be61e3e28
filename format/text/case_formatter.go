package text

import (
	"strings"
	"sync"
	"unicode"
)

// maxMemoEntries bounds the number of formatted keys kept per formatter
const maxMemoEntries = 4096

var formatters = make([]*CaseFormatter, 5)
var mux sync.RWMutex

// CaseFormatter joins words with the target case format and memoises formatted keys
type CaseFormatter struct {
	nop  bool
	to   CaseFormat
	join func(words []string) string
	mux  sync.RWMutex
	memo map[string]string
}

// To returns target case format
func (c *CaseFormatter) To() CaseFormat {
	return c.to
}

// Format converts key to the target case format
func (c *CaseFormatter) Format(key string) string {
	if c.nop || key == "" {
		return key
	}
	c.mux.RLock()
	formatted, ok := c.memo[key]
	c.mux.RUnlock()
	if ok {
		return formatted
	}
	formatted = c.join(SplitWords(key))
	c.mux.Lock()
	if len(c.memo) >= maxMemoEntries {
		c.memo = make(map[string]string, len(c.memo))
	}
	c.memo[key] = formatted
	c.mux.Unlock()
	return formatted
}

// Formatter returns shared formatter for the case format
func (c CaseFormat) Formatter() *CaseFormatter {
	index := c.Index()
	if index == 0 {
		return &CaseFormatter{nop: true}
	}
	mux.RLock()
	ret := formatters[index]
	mux.RUnlock()
	if ret != nil {
		return ret
	}
	to := NewCaseFormat(string(c))
	if to == CaseFormatUndefined {
		to = c
	}
	ret = &CaseFormatter{to: to, memo: make(map[string]string), join: Joiner(to)}
	mux.Lock()
	if existing := formatters[index]; existing != nil {
		ret = existing
	} else {
		formatters[index] = ret
	}
	mux.Unlock()
	return ret
}

// Joiner returns words joiner for the case format
func Joiner(to CaseFormat) func(words []string) string {
	switch NewCaseFormat(string(to)) {
	case CaseFormatLowerCamel:
		return ToCamel
	case CaseFormatUpperCamel:
		return ToUpperCamel
	case CaseFormatLowerUnderscore:
		return ToSnake
	case CaseFormatUpperUnderscore:
		return ToUpperSnake
	}
	return func(words []string) string {
		return strings.Join(words, "")
	}
}

// ToSnake joins lower case words with underscore
func ToSnake(words []string) string {
	return joinWords(words, "_", strings.ToLower, strings.ToLower)
}

// ToUpperSnake joins upper case words with underscore
func ToUpperSnake(words []string) string {
	return joinWords(words, "_", strings.ToUpper, strings.ToUpper)
}

// ToCamel joins lower case first word with title case subsequent words
func ToCamel(words []string) string {
	return joinWords(words, "", strings.ToLower, ToTitle)
}

// ToUpperCamel joins title case words
func ToUpperCamel(words []string) string {
	return joinWords(words, "", ToTitle, ToTitle)
}

func joinWords(words []string, sep string, firstWord, nextWords func(string) string) string {
	switch len(words) {
	case 0:
		return ""
	case 1:
		return firstWord(words[0])
	}
	var result = strings.Builder{}
	result.Grow(len(words) * 8)
	for i, word := range words {
		if i == 0 {
			result.WriteString(firstWord(word))
			continue
		}
		result.WriteString(sep)
		result.WriteString(nextWords(word))
	}
	return result.String()
}

// ToTitle upper cases the first rune and lower cases the rest
func ToTitle(word string) string {
	if word == "" {
		return word
	}
	var ret = make([]rune, 0, len(word))
	for i, r := range word {
		if i == 0 {
			ret = append(ret, unicode.ToUpper(r))
			continue
		}
		ret = append(ret, unicode.ToLower(r))
	}
	return string(ret)
}
