package charvocab

import "strings"

// Normalize lowercases every name. Order and duplicates are kept. With
// skipBlank set, names made of whitespace only are dropped.
func Normalize(names []string, skipBlank bool) []string {
	ret := make([]string, 0, len(names))
	for _, name := range names {
		if skipBlank && strings.TrimSpace(name) == "" {
			continue
		}
		ret = append(ret, strings.ToLower(name))
	}
	return ret
}
