// Package memory holds in-process repository implementations used by tests
// and local runs. Unlike the postgres repositories, the entities share one
// datastore because feed rows join threads, users, likes and replies.
package memory

import (
	"sync"

	model "circle-backend/internal/domain/models"
)

type likeKey struct {
	userID   int64
	threadID int64
}

type followKey struct {
	followerID  int64
	followingID int64
}

type Database struct {
	mu sync.RWMutex

	users   map[int64]*model.User
	threads map[int64]*model.Thread
	replies map[int64]*model.Reply
	likes   map[likeKey]struct{}
	follows map[followKey]struct{}

	nextUserID   int64
	nextThreadID int64
	nextReplyID  int64
}

func NewDatabase() *Database {
	return &Database{
		users:        make(map[int64]*model.User),
		threads:      make(map[int64]*model.Thread),
		replies:      make(map[int64]*model.Reply),
		likes:        make(map[likeKey]struct{}),
		follows:      make(map[followKey]struct{}),
		nextUserID:   1,
		nextThreadID: 1,
		nextReplyID:  1,
	}
}

func (d *Database) likeUserIDs(threadID int64) []int64 {
	ids := make([]int64, 0)
	for k := range d.likes {
		if k.threadID == threadID {
			ids = append(ids, k.userID)
		}
	}
	return ids
}

func (d *Database) replyCount(threadID int64) int64 {
	var n int64
	for _, r := range d.replies {
		if r.ThreadID == threadID {
			n++
		}
	}
	return n
}
