package text

import (
	"strings"
)

// CaseFormat defines key case format
type CaseFormat string

const (
	CaseFormatUndefined                  = ""
	CaseFormatUpperCamel      CaseFormat = "upperCamel"
	CaseFormatLowerCamel      CaseFormat = "lowerCamel"
	CaseFormatUpperUnderscore CaseFormat = "upperUnderscore"
	CaseFormatLowerUnderscore CaseFormat = "lowerUnderscore"
)

const (
	// Wire is the key convention used by the directory REST API
	Wire = CaseFormatLowerUnderscore
	// Local is the key convention used by application code
	Local = CaseFormatLowerCamel
)

// IsDefined returns true if case format is defined
func (c CaseFormat) IsDefined() bool {
	return c.Index() > 0
}

// Index returns case format index or 0 for undefined format
func (c CaseFormat) Index() int {
	switch c {
	case CaseFormatUndefined:
		return 0
	case CaseFormatUpperCamel:
		return 1
	case CaseFormatLowerCamel:
		return 2
	case CaseFormatUpperUnderscore:
		return 3
	case CaseFormatLowerUnderscore:
		return 4
	default:
		if alternative := NewCaseFormat(string(c)); alternative != CaseFormatUndefined {
			return alternative.Index()
		}
		return 0
	}
}

// Format rewrites key into the case format; undefined format leaves key as is
func (c CaseFormat) Format(key string) string {
	return c.Formatter().Format(key)
}

// NewCaseFormat returns case format for supplied name or alias
func NewCaseFormat(name string) CaseFormat {
	name = strings.ToLower(name)
	switch name {
	case "lowercamel", "lc", "lowerpascal", "lp", "camel", "local":
		return CaseFormatLowerCamel
	case "uppercamel", "uc", "upperpascal", "up", "pascal":
		return CaseFormatUpperCamel
	case "lowerunderscore", "lu", "lowersnake", "snake", "wire":
		return CaseFormatLowerUnderscore
	case "upperunderscore", "uu", "uppersnake":
		return CaseFormatUpperUnderscore
	default:
		return CaseFormatUndefined
	}
}
