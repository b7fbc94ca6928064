package model

import "encoding/json"

type Discussion struct {
	ID      string
	Title   string
	Content string
	Created string
	Author  *Author
}

type DiscussPage struct {
	Total       int
	List        []Discussion
	SearchAfter json.RawMessage
}
