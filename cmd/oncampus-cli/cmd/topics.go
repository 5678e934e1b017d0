package cmd

import (
	"fmt"
	"strings"

	"github.com/nfrund/oncampus/cmd/oncampus-cli/internal/output"
	"github.com/nfrund/oncampus/internal/events"
	"github.com/nfrund/oncampus/internal/topicmgr"
	"github.com/spf13/cobra"
)

func newTopicsCmd() *cobra.Command {
	topicsCmd := &cobra.Command{
		Use:   "topics",
		Short: "Explore the event topics published on the bus",
		Long: `The topics command lists the events the session flows publish. Every topic
carries a JSON payload; the payload fields are listed in the topic metadata.

Examples:
  # List all topics
  oncampus-cli topics list

  # List the topics of the employer flow
  oncampus-cli topics list --module=employer

  # Get detailed information about a topic
  oncampus-cli topics get employer.job.posted`,
	}
	topicsCmd.AddCommand(newTopicsListCmd(), newTopicsGetCmd())
	return topicsCmd
}

// registeredTopics returns the event topics, in declaration order.
func registeredTopics(module string) []topicmgr.Topic {
	var out []topicmgr.Topic
	for _, name := range events.AllTopics() {
		topic, err := topicmgr.Default().Get(name)
		if err != nil {
			continue
		}
		if module != "" && topic.Module() != module {
			continue
		}
		out = append(out, topic)
	}
	return out
}

func newTopicsListCmd() *cobra.Command {
	var (
		format string
		module string
	)
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all event topics",
		RunE: func(cmd *cobra.Command, args []string) error {
			topics := registeredTopics(module)
			w := cmd.OutOrStdout()
			if len(topics) == 0 {
				message := "No topics found"
				if module != "" {
					message += fmt.Sprintf(" matching: module '%s'", module)
				}
				fmt.Fprintln(w, message)
				return nil
			}

			switch strings.ToLower(format) {
			case "json":
				return output.TopicsJSON(w, topics)
			case "table":
				output.TopicsTable(w, topics)
				return nil
			default:
				return fmt.Errorf("unsupported output format %q, use table or json", format)
			}
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "table", "Output format (table, json)")
	cmd.Flags().StringVarP(&module, "module", "m", "", "Filter topics by module name")
	return cmd
}

func newTopicsGetCmd() *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "get <topic-name>",
		Short: "Get detailed information about a topic",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			topic, err := topicmgr.Default().Get(args[0])
			if err != nil {
				return err
			}
			return output.TopicDetails(cmd.OutOrStdout(), topic, format)
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "table", "Output format (table, json)")
	return cmd
}
