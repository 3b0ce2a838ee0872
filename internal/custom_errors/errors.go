package custom_errors

import "errors"

var (
	// Cache
	ErrCacheMiss        = errors.New("cache miss")
	ErrCacheUnavailable = errors.New("cache unavailable")

	// Database
	ErrDatabaseQuery = errors.New("database query error")
	ErrDatabaseScan  = errors.New("database scan error")
	ErrNoUpdateRows  = errors.New("no fields to update")

	// Threads
	ErrThreadNotFound     = errors.New("thread not found")
	ErrThreadEmpty        = errors.New("thread must have content or images")
	ErrThreadAccessDenied = errors.New("thread belongs to another user")

	// Replies
	ErrReplyNotFound     = errors.New("reply not found")
	ErrReplyAccessDenied = errors.New("reply belongs to another user")

	// Likes
	ErrAlreadyLiked = errors.New("thread already liked")
	ErrLikeNotFound = errors.New("like not found")

	// Users
	ErrUserNotFound      = errors.New("user not found")
	ErrUsernameExists    = errors.New("username already taken")
	ErrEmailExists       = errors.New("email already registered")
	ErrInvalidCredential = errors.New("invalid email or password")

	// Follows
	ErrSelfFollow       = errors.New("cannot follow yourself")
	ErrAlreadyFollowing = errors.New("already following this user")
	ErrFollowNotFound   = errors.New("follow relation not found")

	// Auth
	ErrInvalidToken = errors.New("invalid token")
	ErrUnauthorized = errors.New("unauthorized")

	// Validation
	ErrValidation = errors.New("validation failed")
)
