package dto

type UserResponse struct {
	ID           string        `json:"id"`
	Username     string        `json:"username"`
	Nickname     string        `json:"nickname"`
	Description  string        `json:"description,omitempty"`
	ProfileImage string        `json:"profileImage"`
	CoverImage   string        `json:"coverImage,omitempty"`
	Follower     int           `json:"follower"`
	Following    int           `json:"following"`
	Badges       []BadgeCard   `json:"badges"`
	Projects     []ProjectCard `json:"projects"`
}

type BadgeCard struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Prize string `json:"prize,omitempty"`
	Thumb string `json:"thumb,omitempty"`
}
