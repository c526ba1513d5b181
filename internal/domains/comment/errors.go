package comment

import "errors"

var (
	ErrCommentNotFound = errors.New("comment not found")
	ErrPostNotFound    = errors.New("blog post not found")
)
