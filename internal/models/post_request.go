package models

// PostRequest is the body of POST /api/posts and POST /api/posts/comment/:id.
type PostRequest struct {
	Text string `json:"text" binding:"required"`
}

var PostMessages = map[string]string{
	"Text": "Text is required",
}
