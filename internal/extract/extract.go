// Package extract pulls IP address tokens out of the documents
// publishing the safelist.
package extract

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// Octets are not range checked, so 999.999.999.999 is a match.
var dottedQuadRegex = regexp.MustCompile(`\d{1,3}\.\d{1,3}\.\d{1,3}\.\d{1,3}`)

// IPv4Tokens returns every non-overlapping dotted-quad shaped substring
// of text, in order of appearance. Duplicates are kept.
func IPv4Tokens(text string) (tokens []string) {
	return dottedQuadRegex.FindAllString(text, -1)
}

var ErrJSONMalformed = errors.New("JSON is malformed")

// JSONStrings decodes text as a JSON array of strings and returns
// its elements as they are.
func JSONStrings(text string) (tokens []string, err error) {
	err = json.Unmarshal([]byte(text), &tokens)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrJSONMalformed, err)
	}
	return tokens, nil
}

// MarkdownSection returns the lines following the first markdown heading
// containing title, case insensitively, up to the next heading of the
// same or a higher level. ok is false if no heading contains title.
func MarkdownSection(text, title string) (section string, ok bool) {
	title = strings.ToLower(title)
	lines := strings.Split(text, "\n")
	start, level := -1, 0
	for i, line := range lines {
		lineLevel := headingLevel(line)
		switch {
		case lineLevel == 0:
		case start == -1:
			if strings.Contains(strings.ToLower(line), title) {
				start, level = i+1, lineLevel
			}
		case lineLevel <= level:
			return strings.Join(lines[start:i], "\n"), true
		}
	}

	if start == -1 {
		return "", false
	}
	return strings.Join(lines[start:], "\n"), true
}

// headingLevel returns the ATX heading level of the line,
// or 0 if the line is not a heading.
func headingLevel(line string) (level int) {
	line = strings.TrimLeft(line, " ")
	for level < len(line) && line[level] == '#' {
		level++
	}
	const maxLevel = 6
	switch {
	case level == 0, level > maxLevel:
		return 0
	case level < len(line) && line[level] != ' ' && line[level] != '\t':
		return 0 // #hashtag
	}
	return level
}
