package transform

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/townbook/client-go/types"
)

func TestClassifyPostType(t *testing.T) {
	tests := []struct {
		name     string
		hasVideo bool
		hasImage bool
		hasPoll  bool
		declared string
		want     string
	}{
		{"video beats everything", true, true, true, "poll", types.PostTypeVideo},
		{"image beats poll", false, true, true, "", types.PostTypeImage},
		{"poll beats declared", false, false, true, "text", types.PostTypePoll},
		{"declared when no media", false, false, false, "announcement", "announcement"},
		{"text as last resort", false, false, false, "", types.PostTypeText},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClassifyPostType(tt.hasVideo, tt.hasImage, tt.hasPoll, tt.declared)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPostTypePrecedence(t *testing.T) {
	t.Run("video and poll together render as video", func(t *testing.T) {
		p := Post(Raw{
			"media": map[string]interface{}{"video": "clip.mp4"},
			"poll": map[string]interface{}{
				"question": "?",
				"options":  []interface{}{},
			},
		})
		assert.Equal(t, types.PostTypeVideo, p.Type)
		require.NotNil(t, p.Poll) // the poll is still carried
	})

	t.Run("only poll renders as poll", func(t *testing.T) {
		p := Post(Raw{"poll": map[string]interface{}{"question": "?"}})
		assert.Equal(t, types.PostTypePoll, p.Type)
	})

	t.Run("gif counts as image", func(t *testing.T) {
		p := Post(Raw{"gif": "fun.gif"})
		assert.Equal(t, types.PostTypeImage, p.Type)
	})

	t.Run("nothing set renders as text", func(t *testing.T) {
		assert.Equal(t, types.PostTypeText, Post(Raw{}).Type)
	})
}

func TestPostTotality(t *testing.T) {
	for _, raw := range []Raw{nil, {}, {"likes": "junk", "comments": 3.0, "user": "flat?"}} {
		p := Post(raw)
		assert.NotNil(t, p.Images)
		assert.NotNil(t, p.Likes)
		assert.NotNil(t, p.Comments)
		assert.NotNil(t, p.TaggedUsers)
		assert.False(t, p.CreatedAt.IsZero())
		assert.NotEmpty(t, p.Type)
	}
}

func TestPostAuthorAliasing(t *testing.T) {
	t.Run("nested user object", func(t *testing.T) {
		p := Post(Raw{"user": map[string]interface{}{
			"_id":    "u1",
			"name":   "Asha",
			"avatar": "a.png",
		}})
		assert.Equal(t, types.UserSnippet{ID: "u1", Name: "Asha", Avatar: "a.png"}, p.User)
	})

	t.Run("flat author fields", func(t *testing.T) {
		p := Post(Raw{
			"userId":          "u2",
			"userName":        "Kunal",
			"profileImageUrl": "k.png",
		})
		assert.Equal(t, types.UserSnippet{ID: "u2", Name: "Kunal", Avatar: "k.png"}, p.User)
	})
}

func TestPostImageSources(t *testing.T) {
	t.Run("media.image array", func(t *testing.T) {
		p := Post(Raw{"media": map[string]interface{}{
			"image": []interface{}{"1.jpg", "2.jpg"},
		}})
		assert.Equal(t, []string{"1.jpg", "2.jpg"}, p.Images)
	})

	t.Run("images array", func(t *testing.T) {
		p := Post(Raw{"images": []interface{}{"1.jpg"}})
		assert.Equal(t, []string{"1.jpg"}, p.Images)
	})

	t.Run("single image field", func(t *testing.T) {
		p := Post(Raw{"image": "solo.jpg"})
		assert.Equal(t, []string{"solo.jpg"}, p.Images)
	})
}

func TestPostLikedByMeAlwaysFalse(t *testing.T) {
	p := Post(Raw{
		"likedByMe": true,
		"likes":     []interface{}{"u1", "u2"},
	})
	assert.False(t, p.LikedByMe)
	assert.Equal(t, []string{"u1", "u2"}, p.Likes)
}

func TestPostEmptyID(t *testing.T) {
	assert.Equal(t, "", Post(Raw{"content": "orphan"}).ID)
	assert.Equal(t, "p1", Post(Raw{"id": "p1"}).ID)
	assert.Equal(t, "p0", Post(Raw{"_id": "p0", "id": "p1"}).ID)
}

func TestPollTransform(t *testing.T) {
	poll := Poll(Raw{
		"question": "Best chai?",
		"options": []interface{}{
			map[string]interface{}{"_id": "o1", "text": "Cutting", "votes": []interface{}{"u1", "u2"}},
			map[string]interface{}{"id": "o2", "text": "Masala", "votes": []interface{}{}},
		},
		"totalVotes":        5.0,
		"userVotedOptionId": "o1",
	})

	require.Len(t, poll.Options, 2)
	assert.Equal(t, "o1", poll.Options[0].ID)
	assert.Equal(t, "o2", poll.Options[1].ID) // id alias kept
	assert.Equal(t, []string{"u1", "u2"}, poll.Options[0].Votes)
	assert.Equal(t, 5, poll.TotalVotes)
	assert.Equal(t, "o1", poll.UserVotedOptionID)
}

func TestPollEffectiveTotalVotes(t *testing.T) {
	poll := types.Poll{
		TotalVotes: 5,
		Options: []types.PollOption{
			{Votes: []string{"a", "b"}},
			{Votes: []string{"c"}},
		},
	}
	// Counter ahead of the lists: counter wins.
	assert.Equal(t, 5, poll.EffectiveTotalVotes())

	// Lists ahead of the counter: sum wins.
	poll.TotalVotes = 1
	assert.Equal(t, 3, poll.EffectiveTotalVotes())
}

func TestCommentTransform(t *testing.T) {
	cm := Comment(Raw{
		"_id":             "c1",
		"userId":          "u1",
		"userName":        "Asha",
		"profileImageUrl": "a.png",
		"text":            "Nice!",
		"createdAt":       "2024-06-01T12:00:00Z",
	})

	assert.Equal(t, "c1", cm.ID)
	assert.Equal(t, "u1", cm.User.ID)
	assert.Equal(t, "Nice!", cm.Content)
	assert.Equal(t, time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC), cm.CreatedAt)
	assert.NotNil(t, cm.Likes)
}

func TestPostTimestampFallbacks(t *testing.T) {
	t.Run("unix seconds timestamp", func(t *testing.T) {
		p := Post(Raw{"timestamp": 1700000000.0})
		assert.Equal(t, time.Unix(1700000000, 0).UTC(), p.CreatedAt)
	})

	t.Run("explicit createdAt preferred", func(t *testing.T) {
		p := Post(Raw{
			"createdAt": "2024-01-02T03:04:05Z",
			"timestamp": 1700000000.0,
		})
		assert.Equal(t, time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC), p.CreatedAt)
	})
}

func TestLocationShapes(t *testing.T) {
	t.Run("object with coordinates", func(t *testing.T) {
		p := Post(Raw{"location": map[string]interface{}{
			"name": "FC Road",
			"lat":  18.52,
			"lng":  73.84,
		}})
		require.NotNil(t, p.Location)
		assert.Equal(t, "FC Road", p.Location.Name)
		require.NotNil(t, p.Location.Lat)
		assert.InDelta(t, 18.52, *p.Location.Lat, 1e-9)
	})

	t.Run("bare string location", func(t *testing.T) {
		p := Post(Raw{"location": "Camp"})
		require.NotNil(t, p.Location)
		assert.Equal(t, "Camp", p.Location.Name)
		assert.Nil(t, p.Location.Lat)
	})

	t.Run("absent location stays nil", func(t *testing.T) {
		assert.Nil(t, Post(Raw{}).Location)
	})
}
