package bot

import (
	"regexp"
	"strings"
)

// Commands split on whitespace, but quoted runs stay together so event
// names can contain spaces: `!exam_add "Math Final" 01-09-2026`.
var tokenPattern = regexp.MustCompile(`"[^"]+"|'[^']+'|\S+`)

// Tokenize splits a command line into tokens, stripping the surrounding
// double quotes from quoted tokens.
func Tokenize(s string) []string {
	matches := tokenPattern.FindAllString(s, -1)
	tokens := make([]string, 0, len(matches))
	for _, token := range matches {
		token = strings.TrimSpace(token)
		if strings.HasPrefix(token, `"`) && strings.HasSuffix(token, `"`) {
			token = token[1 : len(token)-1]
		}
		tokens = append(tokens, token)
	}
	return tokens
}
