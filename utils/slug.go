package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"regexp"
	"strings"
	"time"
)

// ShortSlugSuffix is appended when a normalized title yields fewer than 3
// characters, so every room still gets a usable URL.
const ShortSlugSuffix = "-habitacion"

var (
	slugNonAlnum  = regexp.MustCompile(`[^a-z0-9]+`)
	slugDiacritic = strings.NewReplacer(
		"á", "a", "à", "a", "â", "a", "ä", "a", "ã", "a", "å", "a",
		"é", "e", "è", "e", "ê", "e", "ë", "e",
		"í", "i", "ì", "i", "î", "i", "ï", "i",
		"ó", "o", "ò", "o", "ô", "o", "ö", "o", "õ", "o",
		"ú", "u", "ù", "u", "û", "u", "ü", "u",
		"ñ", "n", "ç", "c", "ý", "y", "ÿ", "y",
	)
)

// Slugify derives a URL-safe identifier from a room title: lowercase, strip
// diacritics, collapse non-alphanumerics to single hyphens, trim edge hyphens.
func Slugify(title string) string {
	s := strings.ToLower(strings.TrimSpace(title))
	s = slugDiacritic.Replace(s)
	s = slugNonAlnum.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")
	if len(s) < 3 {
		s = s + ShortSlugSuffix
		s = strings.TrimPrefix(s, "-")
	}
	return s
}

// SuffixedSlug appends the numeric collision suffix: "suite-nandu" -> "suite-nandu-1".
func SuffixedSlug(base string, n int) string {
	if n <= 0 {
		return base
	}
	return fmt.Sprintf("%s-%d", base, n)
}

// ImportSlug builds a collision-avoiding slug for bulk imports: timestamp plus
// a random integer instead of probing the store for every row.
func ImportSlug(title string) string {
	n, err := rand.Int(rand.Reader, big.NewInt(100000))
	var suffix int64
	if err == nil {
		suffix = n.Int64()
	}
	return fmt.Sprintf("%s-%d-%d", Slugify(title), time.Now().UnixMilli(), suffix)
}
