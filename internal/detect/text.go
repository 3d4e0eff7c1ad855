package detect

import (
	"strings"
	"unicode"
)

// wordToken is one word of the document with its byte offsets.
type wordToken struct {
	start int
	end   int
}

// tokenize splits text into word tokens (letter/digit runs) with byte
// offsets. Offsets are byte positions so spans map back into the original
// document directly.
func tokenize(text string) []wordToken {
	var tokens []wordToken
	start := -1

	for i, r := range text {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			tokens = append(tokens, wordToken{start: start, end: i})
			start = -1
		}
	}
	if start >= 0 {
		tokens = append(tokens, wordToken{start: start, end: len(text)})
	}

	return tokens
}

// termOccurrence is one case-insensitive occurrence of a search term.
type termOccurrence struct {
	start     int
	end       int
	wordIndex int
}

// findTerm locates every case-insensitive occurrence of term in text and
// annotates each with the index of the word it starts in. Multi-word terms
// ("your family", "pursuant to") are matched as substrings, so punctuation
// inside a term ("dr.") works too.
func findTerm(text string, tokens []wordToken, term string) []termOccurrence {
	lower := strings.ToLower(text)
	needle := strings.ToLower(term)
	if needle == "" {
		return nil
	}

	var occs []termOccurrence
	for from := 0; ; {
		idx := strings.Index(lower[from:], needle)
		if idx < 0 {
			break
		}
		start := from + idx
		occs = append(occs, termOccurrence{
			start:     start,
			end:       start + len(needle),
			wordIndex: wordIndexAt(tokens, start),
		})
		from = start + len(needle)
	}

	return occs
}

// wordIndexAt returns the index of the word containing or preceding the
// byte offset.
func wordIndexAt(tokens []wordToken, offset int) int {
	// Binary search for the last token starting at or before offset.
	lo, hi := 0, len(tokens)-1
	idx := 0
	for lo <= hi {
		mid := (lo + hi) / 2
		if tokens[mid].start <= offset {
			idx = mid
			lo = mid + 1
		} else {
			hi = mid - 1
		}
	}
	return idx
}
