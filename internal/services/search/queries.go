package search

import (
	"encoding/json"

	"github.com/dn1t/dutlife-api/internal/domain/model"
)

// Selection shared by every user lookup. status.project is the user's own
// project count, which later sizes the own-project page fetch.
const userSelection = `id
    username
    nickname
    description
    profileImage {
      filename
      imageType
    }
    coverImage {
      filename
      imageType
    }
    status {
      follower
      following
      project
    }`

// One request, four aliased branches: both exact user lookups, the scored
// project page, and the scored discussion page.
const searchQuery = `query ($query: String, $display: Int) {
  userByUsername: user(username: $query) {
    ` + userSelection + `
  }
  userByNickname: user(nickname: $query) {
    ` + userSelection + `
  }
  projectList(query: $query, pageParam: { sorts: ["_score", "likeCnt"], display: $display }, searchType: "scroll") {
    total
    list {
      id
      name
      user {
        id
        username
        nickname
        profileImage {
          filename
          imageType
        }
      }
      thumb
      updated
      visit
      likeCnt
      comment
    }
    searchAfter
  }
  discussList(query: $query, pageParam: { sorts: ["_score"], display: $display }, searchType: "scroll") {
    total
    list {
      id
      title
      content
      created
      user {
        id
        username
        nickname
        profileImage {
          filename
          imageType
        }
      }
    }
    searchAfter
  }
}`

const userInfoQuery = `query ($username: String) {
  userByUsername: user(username: $username) {
    ` + userSelection + `
  }
}`

const badgesQuery = `query ($id: String!) {
  contestPrizes(user: $id) {
    id
    title
    prize
    thumb
  }
}`

const ownProjectsQuery = `query ($id: String!, $display: Int) {
  projectList(user: $id, pageParam: { sorts: ["updated"], display: $display }, searchType: "scroll") {
    total
    list {
      id
      name
      thumb
      updated
      visit
      likeCnt
      comment
    }
    searchAfter
  }
}`

type rawUser struct {
	ID           string          `json:"id"`
	Username     string          `json:"username"`
	Nickname     string          `json:"nickname"`
	Description  string          `json:"description"`
	ProfileImage *model.ImageRef `json:"profileImage"`
	CoverImage   *model.ImageRef `json:"coverImage"`
	Status       struct {
		Follower  int `json:"follower"`
		Following int `json:"following"`
		Project   int `json:"project"`
	} `json:"status"`
}

type rawCardUser struct {
	ID           string          `json:"id"`
	Username     string          `json:"username"`
	Nickname     string          `json:"nickname"`
	ProfileImage *model.ImageRef `json:"profileImage"`
}

type rawProject struct {
	ID      string       `json:"id"`
	Name    string       `json:"name"`
	Thumb   string       `json:"thumb"`
	Updated string       `json:"updated"`
	Visit   int          `json:"visit"`
	LikeCnt int          `json:"likeCnt"`
	Comment int          `json:"comment"`
	User    *rawCardUser `json:"user"`
}

type rawProjectPage struct {
	Total       int             `json:"total"`
	List        []rawProject    `json:"list"`
	SearchAfter json.RawMessage `json:"searchAfter"`
}

type rawDiscussion struct {
	ID      string       `json:"id"`
	Title   string       `json:"title"`
	Content string       `json:"content"`
	Created string       `json:"created"`
	User    *rawCardUser `json:"user"`
}

type rawDiscussPage struct {
	Total       int             `json:"total"`
	List        []rawDiscussion `json:"list"`
	SearchAfter json.RawMessage `json:"searchAfter"`
}

type rawBadge struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Prize string `json:"prize"`
	Thumb string `json:"thumb"`
}

type rawFavorite struct {
	ID       string `json:"id"`
	Favorite int    `json:"favorite"`
}

type searchResponse struct {
	UserByUsername *rawUser       `json:"userByUsername"`
	UserByNickname *rawUser       `json:"userByNickname"`
	ProjectList    rawProjectPage `json:"projectList"`
	DiscussList    rawDiscussPage `json:"discussList"`
}
