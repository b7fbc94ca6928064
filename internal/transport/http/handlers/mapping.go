package handlers

import (
	"github.com/dn1t/dutlife-api/internal/domain/model"
	"github.com/dn1t/dutlife-api/internal/transport/http/dto"
)

func mapUser(u model.User) dto.UserResponse {
	badges := make([]dto.BadgeCard, len(u.Badges))
	for i, b := range u.Badges {
		badges[i] = dto.BadgeCard{ID: b.ID, Title: b.Title, Prize: b.Prize, Thumb: b.Thumb}
	}

	projects := make([]dto.ProjectCard, len(u.Projects))
	for i, p := range u.Projects {
		projects[i] = mapProject(p)
	}

	return dto.UserResponse{
		ID:           u.ID,
		Username:     u.Username,
		Nickname:     u.Nickname,
		Description:  u.Description,
		ProfileImage: u.ProfileImage,
		CoverImage:   u.CoverImage,
		Follower:     u.Follower,
		Following:    u.Following,
		Badges:       badges,
		Projects:     projects,
	}
}

func mapProject(p model.Project) dto.ProjectCard {
	return dto.ProjectCard{
		ID:       p.ID,
		Name:     p.Name,
		Thumb:    p.Thumb,
		Updated:  p.Updated,
		Visits:   p.Visits,
		Likes:    p.Likes,
		Comments: p.Comments,
		Favorite: p.Favorite,
		User:     mapAuthor(p.Owner),
	}
}

func mapAuthor(a *model.Author) *dto.AuthorCard {
	if a == nil {
		return nil
	}
	return &dto.AuthorCard{
		ID:           a.ID,
		Username:     a.Username,
		Nickname:     a.Nickname,
		ProfileImage: a.ProfileImage,
	}
}

func mapProjectPage(page model.ProjectPage) dto.ProjectPage {
	list := make([]dto.ProjectCard, len(page.List))
	for i, p := range page.List {
		list[i] = mapProject(p)
	}
	return dto.ProjectPage{Total: page.Total, List: list, SearchAfter: page.SearchAfter}
}

func mapDiscussPage(page model.DiscussPage) dto.DiscussPage {
	list := make([]dto.DiscussCard, len(page.List))
	for i, d := range page.List {
		list[i] = dto.DiscussCard{
			ID:      d.ID,
			Title:   d.Title,
			Content: d.Content,
			Created: d.Created,
			User:    mapAuthor(d.Author),
		}
	}
	return dto.DiscussPage{Total: page.Total, List: list, SearchAfter: page.SearchAfter}
}
