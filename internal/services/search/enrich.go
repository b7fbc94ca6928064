package search

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/dn1t/dutlife-api/internal/domain/model"
	"github.com/dn1t/dutlife-api/internal/domain/rules"
	"github.com/dn1t/dutlife-api/internal/entry/graphql"
)

// enrichUser fetches the badge list and own-project page for one user
// concurrently, then attaches batched favorite counts to the projects. The
// own-project page is sized by this user's own project count.
func (s *Service) enrichUser(ctx context.Context, raw *rawUser) (model.User, error) {
	var (
		badges []model.Badge
		page   rawProjectPage
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		badges, err = s.fetchBadges(gctx, raw.ID)
		return err
	})
	if raw.Status.Project > 0 {
		g.Go(func() error {
			var err error
			page, err = s.fetchOwnProjects(gctx, raw.ID, raw.Status.Project)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return model.User{}, err
	}

	projects, err := s.attachFavorites(ctx, page.List)
	if err != nil {
		return model.User{}, err
	}

	return model.User{
		ID:           raw.ID,
		Username:     raw.Username,
		Nickname:     raw.Nickname,
		Description:  raw.Description,
		ProfileImage: rules.ProfileImageURL(s.origin, raw.ProfileImage),
		CoverImage:   rules.CoverImageURL(s.origin, raw.CoverImage),
		Follower:     raw.Status.Follower,
		Following:    raw.Status.Following,
		Badges:       badges,
		Projects:     projects,
	}, nil
}

func (s *Service) fetchBadges(ctx context.Context, userID string) ([]model.Badge, error) {
	var out struct {
		ContestPrizes []rawBadge `json:"contestPrizes"`
	}
	if err := s.gql.Execute(ctx, badgesQuery, map[string]any{"id": userID}, &out); err != nil {
		return nil, fmt.Errorf("contest prizes query: %w", err)
	}

	badges := make([]model.Badge, len(out.ContestPrizes))
	for i, b := range out.ContestPrizes {
		badges[i] = model.Badge{
			ID:    b.ID,
			Title: b.Title,
			Prize: b.Prize,
			Thumb: rules.AbsoluteURL(s.origin, b.Thumb),
		}
	}
	return badges, nil
}

func (s *Service) fetchOwnProjects(ctx context.Context, userID string, display int) (rawProjectPage, error) {
	var out struct {
		ProjectList rawProjectPage `json:"projectList"`
	}
	if err := s.gql.Execute(ctx, ownProjectsQuery, map[string]any{"id": userID, "display": display}, &out); err != nil {
		return rawProjectPage{}, fmt.Errorf("own projects query: %w", err)
	}
	return out.ProjectList, nil
}

// attachFavorites shapes the raw projects and merges in favorite counts from
// one batched aliased query. A project whose alias is missing from the
// response keeps a nil Favorite; the rest are unaffected.
func (s *Service) attachFavorites(ctx context.Context, list []rawProject) ([]model.Project, error) {
	projects := make([]model.Project, len(list))
	for i, p := range list {
		projects[i] = s.shapeProject(p)
	}
	if len(list) == 0 {
		return projects, nil
	}

	ids := make([]string, len(list))
	for i, p := range list {
		ids[i] = p.ID
	}

	query, err := graphql.FavoritesQuery(ids)
	if err != nil {
		return nil, fmt.Errorf("build favorites query: %w", err)
	}

	counts := make(map[string]*rawFavorite)
	if err := s.gql.Execute(ctx, query, nil, &counts); err != nil {
		return nil, fmt.Errorf("favorites query: %w", err)
	}

	for i, p := range list {
		if fav := counts[graphql.FavoriteAlias(p.ID)]; fav != nil {
			count := fav.Favorite
			projects[i].Favorite = &count
		}
	}
	return projects, nil
}

func (s *Service) shapeProject(p rawProject) model.Project {
	return model.Project{
		ID:       p.ID,
		Name:     p.Name,
		Thumb:    rules.AbsoluteURL(s.origin, p.Thumb),
		Updated:  p.Updated,
		Visits:   p.Visit,
		Likes:    p.LikeCnt,
		Comments: p.Comment,
		Owner:    s.shapeAuthor(p.User),
	}
}

func (s *Service) shapeAuthor(u *rawCardUser) *model.Author {
	if u == nil {
		return nil
	}
	return &model.Author{
		ID:           u.ID,
		Username:     u.Username,
		Nickname:     u.Nickname,
		ProfileImage: rules.ProfileImageURL(s.origin, u.ProfileImage),
	}
}

func (s *Service) shapeProjectPage(page rawProjectPage) model.ProjectPage {
	list := make([]model.Project, len(page.List))
	for i, p := range page.List {
		list[i] = s.shapeProject(p)
	}
	return model.ProjectPage{
		Total:       page.Total,
		List:        list,
		SearchAfter: page.SearchAfter,
	}
}

func (s *Service) shapeDiscussPage(page rawDiscussPage) model.DiscussPage {
	list := make([]model.Discussion, len(page.List))
	for i, d := range page.List {
		list[i] = model.Discussion{
			ID:      d.ID,
			Title:   d.Title,
			Content: d.Content,
			Created: d.Created,
			Author:  s.shapeAuthor(d.User),
		}
	}
	return model.DiscussPage{
		Total:       page.Total,
		List:        list,
		SearchAfter: page.SearchAfter,
	}
}
