package model

// ImageRef is an unresolved upstream image reference. It never appears in a
// response; shaping resolves it to an absolute URL or drops it.
type ImageRef struct {
	Filename  string `json:"filename"`
	ImageType string `json:"imageType"`
}

// User is a fully shaped profile: every image field is an absolute URL (or
// empty, meaning absent), enrichment lists are present but may be empty.
type User struct {
	ID           string
	Username     string
	Nickname     string
	Description  string
	ProfileImage string
	CoverImage   string
	Follower     int
	Following    int
	Badges       []Badge
	Projects     []Project
}

// Badge is one contest prize attributed to a user.
type Badge struct {
	ID    string
	Title string
	Prize string
	Thumb string
}

// Author is the lightweight profile attached to project and discussion
// cards. ProfileImage is already resolved.
type Author struct {
	ID           string
	Username     string
	Nickname     string
	ProfileImage string
}
