package model

import "github.com/jackc/pgx/v5/pgtype"

// ThreadFeedRow is the cacheable unit of the feed read path: a thread with
// its author display data, liker ids and reply count denormalized in. It is
// viewer-independent, which is what lets one cached row-set serve every
// viewer. Anything relative to the requester (is_liked) is derived per
// request via ToFeedThread.
type ThreadFeedRow struct {
	ID          int64            `json:"id"`
	Content     *string          `json:"content,omitempty"`
	Images      []string         `json:"images"`
	Author      *AuthorInfo      `json:"author"`
	CreatedAt   pgtype.Timestamp `json:"created_at"`
	LikeUserIDs []int64          `json:"like_user_ids"`
	ReplyCount  int64            `json:"reply_count"`
}

// FeedThread is the response shape for a single feed entry.
type FeedThread struct {
	ID        int64            `json:"id"`
	Content   *string          `json:"content,omitempty"`
	Images    []string         `json:"images"`
	User      *AuthorInfo      `json:"user"`
	CreatedAt pgtype.Timestamp `json:"created_at"`
	Likes     int              `json:"likes"`
	Reply     int64            `json:"reply"`
	IsLiked   bool             `json:"isLiked"`
}

func (r *ThreadFeedRow) ToFeedThread(viewerID int64) *FeedThread {
	isLiked := false
	for _, id := range r.LikeUserIDs {
		if id == viewerID {
			isLiked = true
			break
		}
	}
	images := r.Images
	if images == nil {
		images = []string{}
	}
	return &FeedThread{
		ID:        r.ID,
		Content:   r.Content,
		Images:    images,
		User:      r.Author,
		CreatedAt: r.CreatedAt,
		Likes:     len(r.LikeUserIDs),
		Reply:     r.ReplyCount,
		IsLiked:   isLiked,
	}
}

// MapFeed maps a cached or freshly fetched row-set into the response shape
// for the given viewer.
func MapFeed(rows []*ThreadFeedRow, viewerID int64) []*FeedThread {
	feed := make([]*FeedThread, 0, len(rows))
	for _, row := range rows {
		feed = append(feed, row.ToFeedThread(viewerID))
	}
	return feed
}
