package model

// Profile is the cached public view of a user. It never carries
// viewer-relative data: whether the requester follows this user is always
// resolved live against the store.
type Profile struct {
	ID             int64   `json:"id"`
	Username       string  `json:"username"`
	Name           string  `json:"name"`
	Email          string  `json:"email"`
	Avatar         *string `json:"avatar,omitempty"`
	CoverPhoto     *string `json:"cover_photo,omitempty"`
	Bio            *string `json:"bio,omitempty"`
	FollowerCount  int64   `json:"follower_count"`
	FollowingCount int64   `json:"following_count"`
}
