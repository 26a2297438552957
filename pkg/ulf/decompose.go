// Package ulf decomposes raw ULF annotation strings into aligned
// word/tense/class triples for sequence labeling.
package ulf

import (
	"regexp"
	"strings"
)

// Sentinels used when a ULF element carries no tense or class annotation.
const (
	NoTenseToken = "@@<NO_TENSE>@@"
	NoClassToken = "@@<NO_CLASS>@@"
)

const multiSentHead = "MULTI-SENT"

var parenSplit = regexp.MustCompile(`\s*[()]\s*`)

// Decomposition is the flattened view of one raw ULF annotation. Words,
// Tense and Class are always the same length.
type Decomposition struct {
	Words     []string
	Tense     []string
	Class     []string
	Elements  []string
	Multisent bool
}

// Decompose splits a raw ULF string on parentheses and breaks each element
// into its word, tense and class parts. Elements of the form
// "tense word.class" yield all three; a bare "word.class" has no tense and a
// bare atom has neither. A MULTI-SENT head marks the decomposition as
// spanning several sentences and is not emitted as an element.
func Decompose(raw string) *Decomposition {
	d := &Decomposition{}

	elements := parenSplit.Split(raw, -1)
	if len(elements) > 0 && elements[0] == multiSentHead {
		d.Multisent = true
		elements = elements[1:]
	}

	for _, el := range elements {
		switch {
		case el == "":
		case strings.Count(el, ".") > 1 || strings.Contains(el, "TO"):
			// compound element, e.g. an infinitive group: split into atoms
			d.Elements = append(d.Elements, strings.Split(el, " ")...)
		default:
			d.Elements = append(d.Elements, el)
		}
	}

	for _, el := range d.Elements {
		word, tense, class := decomposeElement(el)
		d.Words = append(d.Words, word)
		d.Tense = append(d.Tense, tense)
		d.Class = append(d.Class, class)
	}

	return d
}

func decomposeElement(el string) (word, tense, class string) {
	tenseGroup := strings.SplitN(el, " ", 2)

	var wordPart string
	if len(tenseGroup) > 1 {
		tense = tenseGroup[0]
		wordPart = tenseGroup[1]
	} else {
		tense = NoTenseToken
		wordPart = tenseGroup[0]
	}

	wordGroup := strings.Split(wordPart, ".")
	word = wordGroup[0]
	if len(wordGroup) > 1 {
		class = wordGroup[1]
	} else {
		class = NoClassToken
	}
	return word, tense, class
}
