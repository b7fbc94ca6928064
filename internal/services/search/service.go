// Package search composes upstream GraphQL queries into the flat response
// shapes the frontend consumes: one combined search fan-out plus per-user
// enrichment (badges, own projects, batched favorite counts).
package search

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/dn1t/dutlife-api/internal/domain/model"
)

var ErrUserNotFound = errors.New("user not found")

// Executor runs one GraphQL query and decodes its data into out.
type Executor interface {
	Execute(ctx context.Context, query string, variables map[string]any, out any) error
}

type Service struct {
	gql    Executor
	origin string
	log    *zap.Logger
}

// NewService wires the aggregator. origin is the upstream web origin used to
// resolve relative image and thumbnail paths.
func NewService(gql Executor, origin string, log *zap.Logger) *Service {
	return &Service{gql: gql, origin: origin, log: log}
}

// Search runs the combined query and enriches every distinct matched user
// concurrently. Users matched by both username and nickname collapse to one
// entry carrying the username branch's enrichment.
func (s *Service) Search(ctx context.Context, query string, display int) (model.SearchResult, error) {
	var raw searchResponse
	if err := s.gql.Execute(ctx, searchQuery, map[string]any{"query": query, "display": display}, &raw); err != nil {
		return model.SearchResult{}, fmt.Errorf("combined search query: %w", err)
	}

	branches := make([]*rawUser, 0, 2)
	if found(raw.UserByUsername) {
		branches = append(branches, raw.UserByUsername)
	}
	if found(raw.UserByNickname) && !sameIdentity(raw.UserByUsername, raw.UserByNickname) {
		branches = append(branches, raw.UserByNickname)
	}

	users := make([]model.User, len(branches))
	g, gctx := errgroup.WithContext(ctx)
	for i, branch := range branches {
		i, branch := i, branch
		g.Go(func() error {
			user, err := s.enrichUser(gctx, branch)
			if err != nil {
				return err
			}
			users[i] = user
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return model.SearchResult{}, err
	}

	return model.SearchResult{
		Users:       users,
		Projects:    s.shapeProjectPage(raw.ProjectList),
		Discussions: s.shapeDiscussPage(raw.DiscussList),
	}, nil
}

// UserInfo resolves exactly one user by exact username and enriches them.
// A null lookup stops here; no enrichment query ever runs without an id.
func (s *Service) UserInfo(ctx context.Context, username string) (model.User, error) {
	var raw struct {
		UserByUsername *rawUser `json:"userByUsername"`
	}
	if err := s.gql.Execute(ctx, userInfoQuery, map[string]any{"username": username}, &raw); err != nil {
		return model.User{}, fmt.Errorf("user lookup: %w", err)
	}

	if !found(raw.UserByUsername) {
		return model.User{}, ErrUserNotFound
	}

	return s.enrichUser(ctx, raw.UserByUsername)
}

func found(u *rawUser) bool {
	return u != nil && u.ID != ""
}

func sameIdentity(a, b *rawUser) bool {
	return a != nil && b != nil && a.ID == b.ID
}
