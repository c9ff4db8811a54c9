// Package store is the remote store client: one repository per
// collection, request/response only, no cache and no retries. Failures
// surface as *types.StoreError; retry policy belongs to the caller.
package store

import (
	"fmt"
	"sort"
	"strings"

	sq "github.com/Masterminds/squirrel"
)

func psql() sq.StatementBuilderType {
	return sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
}

// upsertSuffix builds an ON CONFLICT clause updating every column of
// the set map except the key and creation timestamp.
func upsertSuffix(m map[string]any) string {
	cols := make([]string, 0, len(m))
	for k := range m {
		if k == "id" || k == "created_at" {
			continue
		}
		cols = append(cols, fmt.Sprintf("%s = EXCLUDED.%s", k, k))
	}
	sort.Strings(cols)
	return "ON CONFLICT (id) DO UPDATE SET " + strings.Join(cols, ", ")
}
