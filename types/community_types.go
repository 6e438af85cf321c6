package types

import "time"

// Post render types, in classification precedence order.
const (
	PostTypeVideo = "video"
	PostTypeImage = "image"
	PostTypePoll  = "poll"
	PostTypeText  = "text"
)

// UserSnippet is the embedded author shape carried on posts, comments and
// search results.
type UserSnippet struct {
	ID     string `json:"_id"`
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
}

type PostLocation struct {
	Name string   `json:"name"`
	Lat  *float64 `json:"lat,omitempty"`
	Lng  *float64 `json:"lng,omitempty"`
}

type TaggedUser struct {
	UserID    string `json:"userId"`
	UserName  string `json:"userName"`
	AvatarURL string `json:"avatarUrl"`
}

type PollOption struct {
	ID    string   `json:"_id"`
	Text  string   `json:"text"`
	Votes []string `json:"votes"`
}

type Poll struct {
	Question          string       `json:"question"`
	Options           []PollOption `json:"options"`
	TotalVotes        int          `json:"totalVotes"`
	UserVotedOptionID string       `json:"userVotedOptionId"`
}

// EffectiveTotalVotes reconciles the backend's totalVotes counter with the
// per-option vote lists, which are known to diverge. The larger of the two
// is displayed.
func (p Poll) EffectiveTotalVotes() int {
	sum := 0
	for _, opt := range p.Options {
		sum += len(opt.Votes)
	}
	if p.TotalVotes > sum {
		return p.TotalVotes
	}
	return sum
}

type CommunityComment struct {
	ID        string      `json:"_id"`
	User      UserSnippet `json:"user"`
	Content   string      `json:"content"`
	CreatedAt time.Time   `json:"createdAt"`
	Likes     []string    `json:"likes"`
}

// Post is the canonical community feed entry. An empty ID marks a record
// that could not be identified; callers must treat it as not actionable.
type Post struct {
	ID      string      `json:"_id"`
	User    UserSnippet `json:"user"`
	Content string      `json:"content"`

	Type   string   `json:"type"`
	Images []string `json:"images"`
	Video  string   `json:"video,omitempty"`
	GIF    string   `json:"gif,omitempty"`
	Poll   *Poll    `json:"poll,omitempty"`

	Feeling     string        `json:"feeling,omitempty"`
	Location    *PostLocation `json:"location,omitempty"`
	TaggedUsers []TaggedUser  `json:"taggedUsers"`

	Likes     []string           `json:"likes"`
	Comments  []CommunityComment `json:"comments"`
	LikedByMe bool               `json:"likedByMe"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// CreatePollData describes a poll attached to a new post.
type CreatePollData struct {
	Question string   `json:"question"`
	Options  []string `json:"options"`
}

type CreatePostData struct {
	Content     string          `json:"content"`
	Images      []string        `json:"images,omitempty"`
	Video       string          `json:"video,omitempty"`
	GIF         string          `json:"gif,omitempty"`
	Poll        *CreatePollData `json:"poll,omitempty"`
	Feeling     string          `json:"feeling,omitempty"`
	Location    *PostLocation   `json:"location,omitempty"`
	TaggedUsers []TaggedUser    `json:"taggedUsers,omitempty"`
}

type Story struct {
	ID        string      `json:"_id"`
	User      UserSnippet `json:"user"`
	Image     string      `json:"image,omitempty"`
	Video     string      `json:"video,omitempty"`
	Caption   string      `json:"caption,omitempty"`
	CreatedAt time.Time   `json:"createdAt"`
}

type CreateStoryData struct {
	Image   string `json:"image,omitempty"`
	Video   string `json:"video,omitempty"`
	Caption string `json:"caption,omitempty"`
}

type LikeResult struct {
	Success bool     `json:"success"`
	Likes   []string `json:"likes"`
}

type SearchResults struct {
	Posts []Post        `json:"posts"`
	Users []UserSnippet `json:"users"`
}
