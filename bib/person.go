package bib

import (
	"strings"
	"unicode"
)

// Person is an author name split into the BibTeX name parts.
type Person struct {
	First   []string
	Middle  []string
	Prelast []string
	Last    []string
	Lineage []string
}

// Name is the display form used on the page: first and last parts only.
func (p Person) Name() string {
	return strings.Join(append(append([]string{}, p.First...), p.Last...), " ")
}

// Full includes every part in reading order.
func (p Person) Full() string {
	var parts []string
	for _, group := range [][]string{p.First, p.Middle, p.Prelast, p.Last, p.Lineage} {
		parts = append(parts, group...)
	}
	return strings.Join(parts, " ")
}

// ParsePersons splits a BibTeX name list on top-level "and".
func ParsePersons(s string) []Person {
	var persons []Person
	for _, name := range splitNames(s) {
		if p := ParsePerson(name); len(p.Last) > 0 || len(p.First) > 0 {
			persons = append(persons, p)
		}
	}
	return persons
}

// ParsePerson parses one name in any of the forms
// "First von Last", "von Last, First" and "von Last, Jr, First".
func ParsePerson(name string) Person {
	var p Person

	parts := splitTopLevel(name, ',')
	if len(parts) > 3 {
		parts = append(parts[:2], strings.Join(parts[2:], " "))
	}

	switch len(parts) {
	case 3:
		p.vonLast(words(parts[0]))
		p.Lineage = words(parts[1])
		p.firstMiddle(words(parts[2]))
	case 2:
		p.vonLast(words(parts[0]))
		p.firstMiddle(words(parts[1]))
	default:
		w := words(name)
		pos := indexFunc(w, isVon)
		firstMiddle, vonLast := w[:pos], w[pos:]
		if len(vonLast) == 0 && len(firstMiddle) > 0 {
			vonLast = firstMiddle[len(firstMiddle)-1:]
			firstMiddle = firstMiddle[:len(firstMiddle)-1]
		}
		p.firstMiddle(firstMiddle)
		p.vonLast(vonLast)
	}

	return p
}

func (p *Person) firstMiddle(w []string) {
	if len(w) == 0 {
		return
	}
	p.First = append(p.First, w[0])
	p.Middle = append(p.Middle, w[1:]...)
}

func (p *Person) vonLast(w []string) {
	// the final word is always part of the last name
	pos := len(w) - indexFunc(reversed(w), isVon)
	von, last := w[:pos], append([]string{}, w[pos:]...)
	if len(von) > 0 && len(last) == 0 {
		last = append(last, von[len(von)-1])
		von = von[:len(von)-1]
	}
	p.Prelast = append(p.Prelast, von...)
	p.Last = append(p.Last, last...)
}

func isVon(word string) bool {
	for _, r := range word {
		if unicode.IsLetter(r) {
			return unicode.IsLower(r)
		}
	}
	return false
}

// indexFunc returns the index of the first word satisfying f, or len(w).
func indexFunc(w []string, f func(string) bool) int {
	for i, word := range w {
		if f(word) {
			return i
		}
	}
	return len(w)
}

func reversed(w []string) []string {
	r := make([]string, len(w))
	for i, word := range w {
		r[len(w)-1-i] = word
	}
	return r
}

func words(s string) []string {
	return strings.Fields(braces.Replace(s))
}

// splitTopLevel splits s on sep outside of braces and trims each part.
func splitTopLevel(s string, sep rune) []string {
	var (
		parts []string
		depth int
		start int
	)
	for i, r := range s {
		switch r {
		case '{':
			depth++
		case '}':
			if depth > 0 {
				depth--
			}
		case sep:
			if depth == 0 {
				parts = append(parts, strings.TrimSpace(s[start:i]))
				start = i + 1
			}
		}
	}
	return append(parts, strings.TrimSpace(s[start:]))
}

// splitNames splits on the word "and" (any case) outside of braces.
func splitNames(s string) []string {
	var (
		names   []string
		current []string
	)
	depth := 0
	for _, w := range strings.Fields(s) {
		if depth == 0 && strings.EqualFold(w, "and") {
			names = append(names, strings.Join(current, " "))
			current = nil
			continue
		}
		depth += strings.Count(w, "{") - strings.Count(w, "}")
		current = append(current, w)
	}
	if len(current) > 0 {
		names = append(names, strings.Join(current, " "))
	}
	return names
}
