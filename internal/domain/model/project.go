package model

import "encoding/json"

// Project is one shaped project card. Favorite stays nil when the batched
// enrichment query returned nothing for this project.
type Project struct {
	ID       string
	Name     string
	Thumb    string
	Updated  string
	Visits   int
	Likes    int
	Comments int
	Favorite *int
	Owner    *Author
}

// ProjectPage is a single page of scroll-paginated projects. SearchAfter is
// the upstream continuation cursor, passed through untouched.
type ProjectPage struct {
	Total       int
	List        []Project
	SearchAfter json.RawMessage
}
