package graph

import (
	"regexp"
	"sort"
	"strings"
)

var (
	jinjaVarRe   = regexp.MustCompile(`\{\{\s*(\w+)`)
	jinjaExprRe  = regexp.MustCompile(`\{\{.*?\}\}`)
	jinjaStmtRe  = regexp.MustCompile(`(?s)\{%.*?%\}`)
	tableRefRes  = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\bFROM\s+([a-zA-Z_][a-zA-Z0-9_]*)`),
		regexp.MustCompile(`(?i)\bJOIN\s+([a-zA-Z_][a-zA-Z0-9_]*)`),
		regexp.MustCompile(`(?i)\bINTO\s+([a-zA-Z_][a-zA-Z0-9_]*)`),
		regexp.MustCompile(`(?i)\bUPDATE\s+([a-zA-Z_][a-zA-Z0-9_]*)`),
	}
)

var sqlKeywords = map[string]struct{}{
	"select":    {},
	"where":     {},
	"group":     {},
	"order":     {},
	"having":    {},
	"limit":     {},
	"offset":    {},
	"union":     {},
	"intersect": {},
	"except":    {},
}

// extractSQLReferences returns the variable names a SQL block reads: jinja
// placeholders plus bare table names that may resolve to dataframes in
// scope. Keywords are excluded; the result is sorted and de-duplicated.
func extractSQLReferences(sql string) []string {
	refs := make(map[string]struct{})

	for _, m := range jinjaVarRe.FindAllStringSubmatch(sql, -1) {
		refs[m[1]] = struct{}{}
	}

	clean := jinjaExprRe.ReplaceAllString(sql, "")
	clean = jinjaStmtRe.ReplaceAllString(clean, "")

	for _, re := range tableRefRes {
		for _, m := range re.FindAllStringSubmatch(clean, -1) {
			name := m[1]
			if _, ok := sqlKeywords[strings.ToLower(name)]; ok {
				continue
			}
			refs[name] = struct{}{}
		}
	}

	out := make([]string, 0, len(refs))
	for name := range refs {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
