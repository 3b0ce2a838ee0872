package model

// FollowedUser is one entry of a followers/following listing, including
// whether the requesting user follows them back.
type FollowedUser struct {
	ID          int64   `json:"id"`
	Username    string  `json:"username"`
	Name        string  `json:"name"`
	Avatar      *string `json:"avatar,omitempty"`
	IsFollowing bool    `json:"is_following"`
}
