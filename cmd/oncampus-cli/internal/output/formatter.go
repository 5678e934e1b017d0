// Package output formats CLI results as tables or JSON.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"text/tabwriter"

	"github.com/nfrund/oncampus/internal/session"
	"github.com/nfrund/oncampus/internal/topicmgr"
)

// TopicDisplay represents a topic for display purposes
type TopicDisplay struct {
	Name        string         `json:"name"`
	Module      string         `json:"module"`
	Description string         `json:"description"`
	Metadata    map[string]any `json:"metadata,omitempty"`
}

func display(topic topicmgr.Topic) TopicDisplay {
	return TopicDisplay{
		Name:        topic.Name(),
		Module:      topic.Module(),
		Description: topic.Description(),
		Metadata:    topic.Metadata(),
	}
}

// JSON writes v indented.
func JSON(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

// TopicsTable displays topics in a formatted table
func TopicsTable(w io.Writer, topics []topicmgr.Topic) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	defer tw.Flush()

	fmt.Fprintln(tw, "NAME\tMODULE\tDESCRIPTION")
	fmt.Fprintln(tw, "----\t------\t-----------")
	for _, topic := range topics {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", topic.Name(), topic.Module(), topic.Description())
	}
}

// TopicsJSON displays topics with a count.
func TopicsJSON(w io.Writer, topics []topicmgr.Topic) error {
	displays := make([]TopicDisplay, len(topics))
	for i, topic := range topics {
		displays[i] = display(topic)
	}
	return JSON(w, struct {
		Topics []TopicDisplay `json:"topics"`
		Count  int            `json:"count"`
	}{
		Topics: displays,
		Count:  len(displays),
	})
}

// TopicDetails displays everything known about one topic.
func TopicDetails(w io.Writer, topic topicmgr.Topic, format string) error {
	if format == "json" {
		return JSON(w, display(topic))
	}

	fmt.Fprintf(w, "Name:        %s\n", topic.Name())
	fmt.Fprintf(w, "Module:      %s\n", topic.Module())
	fmt.Fprintf(w, "Description: %s\n", topic.Description())

	metadata := topic.Metadata()
	if len(metadata) > 0 {
		fmt.Fprintf(w, "Metadata:\n")
		keys := make([]string, 0, len(metadata))
		for k := range metadata {
			keys = append(keys, k)
		}
		slices.Sort(keys)
		for _, k := range keys {
			fmt.Fprintf(w, "  %s: %v\n", k, metadata[k])
		}
	}
	return nil
}

// TransitionsTable displays the screen table.
func TransitionsTable(w io.Writer, table []session.Transition) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	defer tw.Flush()

	fmt.Fprintln(tw, "FROM\tTRIGGER\tTO\tFORM\tEFFECT")
	fmt.Fprintln(tw, "----\t-------\t--\t----\t------")
	for _, t := range table {
		form := ""
		if t.Payload {
			form = "yes"
		}
		effect := t.Effect
		if t.Notice != "" {
			effect = "notice: " + t.Notice
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", t.From, t.Trigger, t.To, form, effect)
	}
}
