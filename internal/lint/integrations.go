package lint

import (
	"fmt"
	"sort"
	"strings"

	"github.com/notebook-labs/nblint/internal/envstore"
	"github.com/notebook-labs/nblint/internal/notebook"
)

// builtinIntegrations require no external configuration and are skipped by
// the completeness check.
var builtinIntegrations = map[string]struct{}{
	"duckdb":        {},
	"dataframe-sql": {},
}

// EnvVarName derives the canonical environment variable holding the
// connection configuration for an integration id: upper-cased, every
// character that is not a letter, digit, or underscore replaced by an
// underscore, prefixed with SQL_.
func EnvVarName(integrationID string) string {
	var b strings.Builder
	b.WriteString("SQL_")
	for _, r := range strings.ToUpper(integrationID) {
		switch {
		case r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}

// checkIntegrations scans SQL blocks and reports integrations with no
// environment binding. The summary lists distinct integration ids
// regardless of how many blocks reference each.
func checkIntegrations(blocks []ScopedBlock, index BlockMap, env envstore.Store) ([]Issue, IntegrationSummary) {
	configured := make(map[string]struct{})
	missing := make(map[string]struct{})

	var issues []Issue
	for _, block := range blocks {
		if block.Type != notebook.BlockSQL || block.SQL == nil {
			continue
		}
		id := block.SQL.IntegrationID
		if id == "" {
			continue
		}
		if _, builtin := builtinIntegrations[id]; builtin {
			continue
		}

		envVar := EnvVarName(id)
		if v, ok := env.Lookup(envVar); ok && v != "" {
			configured[id] = struct{}{}
			continue
		}
		missing[id] = struct{}{}

		info, ok := index[block.ID]
		if !ok {
			continue
		}
		issues = append(issues, newIssue(
			SeverityError,
			CodeMissingIntegration,
			fmt.Sprintf("Integration %q is not configured; set %s to connect it", id, envVar),
			info,
			map[string]any{"integration": id, "envVar": envVar},
		))
	}

	return issues, IntegrationSummary{
		Configured: sortedKeys(configured),
		Missing:    sortedKeys(missing),
	}
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
