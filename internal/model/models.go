// Package model holds the row and response shapes surfaced by the API.
// JSON field names follow the column aliases produced by the queries in
// the repository package, so rows marshal directly into response bodies.
package model

import "time"

// Category is a board-game category. Immutable in this API.
type Category struct {
	Slug        string `json:"slug"`
	Description string `json:"description"`
}

// User is a registered reviewer. Immutable in this API.
type User struct {
	Username  string `json:"username"`
	Name      string `json:"name"`
	AvatarURL string `json:"avatar_url"`
}

// Review is a full review row. CommentCount is only populated by the
// single-review read, which aggregates comments; write paths return the
// bare row and omit it.
type Review struct {
	ReviewID     int       `json:"review_id"`
	Title        string    `json:"title"`
	ReviewBody   string    `json:"review_body"`
	Designer     string    `json:"designer"`
	ReviewImgURL string    `json:"review_img_url"`
	Votes        int       `json:"votes"`
	Category     string    `json:"category"`
	Owner        string    `json:"owner"`
	CreatedAt    time.Time `json:"created_at"`
	CommentCount *int      `json:"comment_count,omitempty"`
}

// ReviewSummary is one row of the reviews listing: the review without
// its body, plus the aggregated comment count (zero when a review has
// no comments, never null).
type ReviewSummary struct {
	Owner        string    `json:"owner"`
	Title        string    `json:"title"`
	ReviewID     int       `json:"review_id"`
	Category     string    `json:"category"`
	ReviewImgURL string    `json:"review_img_url"`
	CreatedAt    time.Time `json:"created_at"`
	Votes        int       `json:"votes"`
	Designer     string    `json:"designer"`
	CommentCount int       `json:"comment_count"`
}

// Comment is a comment on a review. Author is the commenting user's
// username, joined from the users table on reads.
type Comment struct {
	CommentID int       `json:"comment_id"`
	Votes     int       `json:"votes"`
	CreatedAt time.Time `json:"created_at"`
	Author    string    `json:"author"`
	Body      string    `json:"body"`
	ReviewID  int       `json:"review_id"`
}
