package model

// LikeResult carries what the caller of a like/unlike mutation needs
// afterwards: the new count for the broadcast and the thread author for
// cache invalidation.
type LikeResult struct {
	ThreadID       int64
	ThreadAuthorID int64
	Likes          int64
}
