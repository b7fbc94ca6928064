package graphql

import (
	"errors"
	"strings"
	"testing"
)

func TestFavoritesQueryAliases(t *testing.T) {
	query, err := FavoritesQuery([]string{"64a1b2c3", "deadbeef"})
	if err != nil {
		t.Fatalf("build favorites query: %v", err)
	}

	for _, want := range []string{
		`p64a1b2c3: project(id: "64a1b2c3")`,
		`pdeadbeef: project(id: "deadbeef")`,
		"favorite",
	} {
		if !strings.Contains(query, want) {
			t.Fatalf("query missing %q:\n%s", want, query)
		}
	}
}

func TestFavoritesQueryDeterministic(t *testing.T) {
	ids := []string{"aaa", "bbb", "ccc"}
	first, err := FavoritesQuery(ids)
	if err != nil {
		t.Fatalf("build favorites query: %v", err)
	}
	second, err := FavoritesQuery(ids)
	if err != nil {
		t.Fatalf("build favorites query: %v", err)
	}
	if first != second {
		t.Fatalf("query text not deterministic")
	}
}

func TestFavoritesQueryRejectsUnsafeIDs(t *testing.T) {
	for _, id := range []string{
		`abc") { id } evil: project(id: "x`,
		"abc def",
		"",
		"abc\n",
	} {
		if _, err := FavoritesQuery([]string{id}); err == nil {
			t.Fatalf("id %q should be rejected", id)
		}
	}
}

func TestFavoritesQueryEmptyInput(t *testing.T) {
	if _, err := FavoritesQuery(nil); !errors.Is(err, ErrNoProjectIDs) {
		t.Fatalf("expected ErrNoProjectIDs, got %v", err)
	}
}
