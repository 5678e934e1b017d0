package domain

// PostType is the kind of a community post.
type PostType string

const (
	PostMessage PostType = "message"
	PostPoll    PostType = "poll"
)

// PollOption is one answer of a poll with its vote count.
type PollOption struct {
	Option string `json:"option"`
	Votes  int    `json:"votes"`
}

// CommunityPost is an entry of the university community feed.
type CommunityPost struct {
	ID          string       `json:"id"`
	Author      string       `json:"author"`
	Type        PostType     `json:"type"`
	Content     string       `json:"content"`
	Timestamp   string       `json:"timestamp"`
	Likes       int          `json:"likes"`
	Comments    int          `json:"comments"`
	PollOptions []PollOption `json:"pollOptions,omitempty"`
}

// PostDraft is what the community post form emits.
type PostDraft struct {
	Type        PostType `json:"type"`
	Content     string   `json:"content"`
	PollOptions []string `json:"pollOptions,omitempty"`
}

// NewCommunityPost builds a fresh post from a draft. Poll options start with zero votes.
func NewCommunityPost(id, author string, draft PostDraft) CommunityPost {
	post := CommunityPost{
		ID:        id,
		Author:    author,
		Type:      draft.Type,
		Content:   draft.Content,
		Timestamp: "Just now",
	}
	if draft.PollOptions != nil {
		post.PollOptions = make([]PollOption, 0, len(draft.PollOptions))
		for _, option := range draft.PollOptions {
			post.PollOptions = append(post.PollOptions, PollOption{Option: option})
		}
	}
	return post
}

// TotalVotes sums the votes of all options.
func TotalVotes(options []PollOption) int {
	total := 0
	for _, o := range options {
		total += o.Votes
	}
	return total
}

// PollPercentages returns each option's share of the votes in percent.
// When nobody has voted every share is 0.
func PollPercentages(options []PollOption) []float64 {
	shares := make([]float64, len(options))
	total := TotalVotes(options)
	if total == 0 {
		return shares
	}
	for i, o := range options {
		shares[i] = float64(o.Votes) / float64(total) * 100
	}
	return shares
}
