package utils

import (
	"sync"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// cases.Caser keeps state between calls and must not be shared.
var frenchLowerPool = sync.Pool{
	New: func() any {
		c := cases.Lower(language.French)
		return &c
	},
}

// FoldLower lower-cases s with French rules. Search tokens and stored text
// compared against them must go through the same folding.
func FoldLower(s string) string {
	c := frenchLowerPool.Get().(*cases.Caser)
	defer frenchLowerPool.Put(c)
	return c.String(s)
}
