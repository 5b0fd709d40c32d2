package engine

import (
	"iter"
	"regexp"
	"strings"
	"unicode/utf8"
)

// minSentenceRunes is the noise floor: shorter fragments carry too little
// signal to classify and are silently dropped.
const minSentenceRunes = 10

// sentenceBoundary matches runs of terminal punctuation followed by
// whitespace. Trailing punctuation with no whitespace after it (end of
// input) stays attached to the final sentence.
var sentenceBoundary = regexp.MustCompile(`[.!?]+\s+`)

// Segment splits text into candidate sentences, trimming each and dropping
// fragments shorter than ten characters. The returned sequence is lazy,
// finite, and restartable; ranging over it twice yields the same sentences.
// Text with no sentence-ending punctuation yields at most the whole trimmed
// text. Segment never fails: unclassifiable input simply yields nothing.
func Segment(text string) iter.Seq[string] {
	return func(yield func(string) bool) {
		rest := text
		for {
			boundary := sentenceBoundary.FindStringIndex(rest)
			fragment := rest
			if boundary != nil {
				fragment = rest[:boundary[0]]
			}
			sentence := strings.TrimSpace(fragment)
			if utf8.RuneCountInString(sentence) >= minSentenceRunes {
				if !yield(sentence) {
					return
				}
			}
			if boundary == nil {
				return
			}
			rest = rest[boundary[1]:]
		}
	}
}
