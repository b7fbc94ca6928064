package dto

import "encoding/json"

type SearchResponse struct {
	Users    []UserResponse `json:"users"`
	Projects ProjectPage    `json:"projects"`
	Discuss  DiscussPage    `json:"discuss"`
}

type ProjectPage struct {
	Total       int             `json:"total"`
	List        []ProjectCard   `json:"list"`
	SearchAfter json.RawMessage `json:"searchAfter,omitempty"`
}

type ProjectCard struct {
	ID       string      `json:"id"`
	Name     string      `json:"name"`
	Thumb    string      `json:"thumb,omitempty"`
	Updated  string      `json:"updated,omitempty"`
	Visits   int         `json:"visit"`
	Likes    int         `json:"likeCnt"`
	Comments int         `json:"comment"`
	Favorite *int        `json:"favorite,omitempty"`
	User     *AuthorCard `json:"user,omitempty"`
}

type AuthorCard struct {
	ID           string `json:"id"`
	Username     string `json:"username"`
	Nickname     string `json:"nickname"`
	ProfileImage string `json:"profileImage"`
}

type DiscussPage struct {
	Total       int             `json:"total"`
	List        []DiscussCard   `json:"list"`
	SearchAfter json.RawMessage `json:"searchAfter,omitempty"`
}

type DiscussCard struct {
	ID      string      `json:"id"`
	Title   string      `json:"title"`
	Content string      `json:"content,omitempty"`
	Created string      `json:"created,omitempty"`
	User    *AuthorCard `json:"user,omitempty"`
}
