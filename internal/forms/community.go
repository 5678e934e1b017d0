package forms

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/nfrund/oncampus/internal/domain"
)

// Poll option bounds of the community post composer.
const (
	MinPollOptions = 2
	MaxPollOptions = 5
)

// CommunityPost composes either a message or a poll for the university community feed.
type CommunityPost struct {
	tab      domain.PostType
	message  string
	question string
	options  []string
	onPost   Callback[domain.PostDraft]
}

// NewCommunityPost creates an empty composer on the message tab.
func NewCommunityPost(onPost Callback[domain.PostDraft]) *CommunityPost {
	return &CommunityPost{
		tab:     domain.PostMessage,
		options: make([]string, MinPollOptions),
		onPost:  onPost,
	}
}

// SetTab switches between the message and poll tabs.
func (f *CommunityPost) SetTab(tab domain.PostType) error {
	if tab != domain.PostMessage && tab != domain.PostPoll {
		return fmt.Errorf("%w: %q", domain.ErrInvalidTab, tab)
	}
	f.tab = tab
	return nil
}

func (f *CommunityPost) SetMessage(v string)  { f.message = v }
func (f *CommunityPost) SetQuestion(v string) { f.question = v }

// SetOption replaces the text of the option at index.
func (f *CommunityPost) SetOption(index int, v string) error {
	if index < 0 || index >= len(f.options) {
		return fmt.Errorf("poll option %d: %w", index, domain.ErrNotFound)
	}
	f.options[index] = v
	return nil
}

// AddOption appends an empty option unless the poll already has the maximum.
func (f *CommunityPost) AddOption() bool {
	if len(f.options) >= MaxPollOptions {
		return false
	}
	f.options = append(f.options, "")
	return true
}

// RemoveOption deletes the option at index unless the poll is at the minimum.
func (f *CommunityPost) RemoveOption(index int) bool {
	if len(f.options) <= MinPollOptions || index < 0 || index >= len(f.options) {
		return false
	}
	f.options = slices.Delete(f.options, index, index+1)
	return true
}

func (f *CommunityPost) Tab() domain.PostType { return f.tab }
func (f *CommunityPost) Message() string      { return f.message }
func (f *CommunityPost) Question() string     { return f.question }
func (f *CommunityPost) Options() []string    { return slices.Clone(f.options) }

// CanSubmit reports whether the active tab has no blank field.
func (f *CommunityPost) CanSubmit() bool {
	return len(f.missing()) == 0
}

func (f *CommunityPost) missing() []string {
	var fields []string
	if f.tab == domain.PostMessage {
		if isBlank(f.message) {
			fields = append(fields, "message")
		}
		return fields
	}
	if isBlank(f.question) {
		fields = append(fields, "question")
	}
	for i, option := range f.options {
		if isBlank(option) {
			fields = append(fields, fmt.Sprintf("pollOptions[%d]", i))
		}
	}
	return fields
}

// Submit emits the draft for the active tab and clears that tab.
func (f *CommunityPost) Submit(ctx context.Context) error {
	if missing := f.missing(); len(missing) > 0 {
		return &IncompleteError{Fields: missing}
	}

	var draft domain.PostDraft
	if f.tab == domain.PostMessage {
		draft = domain.PostDraft{Type: domain.PostMessage, Content: f.message}
	} else {
		draft = domain.PostDraft{Type: domain.PostPoll, Content: f.question, PollOptions: slices.Clone(f.options)}
	}
	if err := f.onPost(ctx, draft); err != nil {
		return err
	}

	if f.tab == domain.PostMessage {
		f.message = ""
	} else {
		f.question = ""
		f.options = make([]string, MinPollOptions)
	}
	return nil
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
