// Package extract isolates the deployable instruction payload embedded in
// a registry document's "The Instruction" section.
package extract

import (
	"regexp"
	"strings"
)

// Heading is the section title that carries the instruction payload.
const Heading = "The Instruction"

var (
	headingRe = regexp.MustCompile(`(?m)^#{1,6}\s*The Instruction\s*$`)

	// A fenced block with an optional language tag. Matching is lazy so
	// the first closing fence wins.
	fencedRe = regexp.MustCompile("(?s)```[a-zA-Z0-9_+-]*[ \t]*\n(.*?)```")
)

// Instruction returns the instruction payload from a document's Markdown
// text, and whether one was found.
//
// The search runs forward from the first "The Instruction" heading: the
// first fenced block anywhere after the heading is the payload, so fenced
// blocks earlier in the document are ignored. Documents that carry the
// heading but no fence fall back to the trimmed trailing text of the
// section. Documents without the heading yield no payload.
func Instruction(markdown string) (string, bool) {
	loc := headingRe.FindStringIndex(markdown)
	if loc == nil {
		return "", false
	}

	rest := markdown[loc[1]:]

	if m := fencedRe.FindStringSubmatch(rest); m != nil {
		return strings.TrimSpace(m[1]), true
	}

	if trailing := strings.TrimSpace(rest); trailing != "" {
		return trailing, true
	}

	return "", false
}
