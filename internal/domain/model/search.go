package model

// SearchResult aggregates the independently fetched branches of one search:
// up to two exact-match users, a project page, and a discussion page.
type SearchResult struct {
	Users       []User
	Projects    ProjectPage
	Discussions DiscussPage
}
