package domain

// EdgeKind selects one of the three engagement edge sets. Like and retweet
// edges point from a user to a tweet, follow edges from a user to a user.
type EdgeKind string

const (
	EdgeLike    EdgeKind = "like"
	EdgeRetweet EdgeKind = "retweet"
	EdgeFollow  EdgeKind = "follow"
)
