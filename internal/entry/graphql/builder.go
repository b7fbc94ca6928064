package graphql

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// Aliased sub-queries interpolate project ids into the query text, so ids
// are restricted to a safe alphabet before they get anywhere near it.
var projectIDPattern = regexp.MustCompile(`^[A-Za-z0-9]+$`)

var ErrNoProjectIDs = errors.New("no project ids to query")

// FavoriteAlias is the alias under which one project's sub-query appears in
// a batched favorites response.
func FavoriteAlias(projectID string) string {
	return "p" + projectID
}

// FavoritesQuery builds one batched query with an aliased sub-query per
// project id. Pure: same ids, same query text.
func FavoritesQuery(projectIDs []string) (string, error) {
	if len(projectIDs) == 0 {
		return "", ErrNoProjectIDs
	}

	var b strings.Builder
	b.WriteString("query {\n")
	for _, id := range projectIDs {
		if !projectIDPattern.MatchString(id) {
			return "", fmt.Errorf("invalid project id %q", id)
		}
		fmt.Fprintf(&b, "  %s: project(id: \"%s\") {\n    id\n    favorite\n  }\n", FavoriteAlias(id), id)
	}
	b.WriteString("}")

	return b.String(), nil
}
