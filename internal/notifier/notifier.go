package notifier

import (
	"context"
	"fmt"

	"github.com/slack-go/slack"

	"github.com/nvhoang/meeting-digest/internal/transcript"
)

// Publish posts the digest as a Block Kit message with a plain-text
// fallback for notification previews. One call, no retries here.
func (n *implNotifier) Publish(ctx context.Context, msg transcript.Message) error {
	n.logger.Info(ctx, "Posting digest to channel %s...", n.channelID)

	_, ts, err := n.client.PostMessageContext(ctx, n.channelID,
		slack.MsgOptionText(msg.Fallback, false),
		slack.MsgOptionBlocks(buildBlocks(msg)...),
	)
	if err != nil {
		return fmt.Errorf("%w: post to channel %s: %v", transcript.ErrPublish, n.channelID, err)
	}

	n.logger.Info(ctx, "Digest posted (message ts: %s)", ts)
	return nil
}

// Ping runs an auth.test call to verify the bot token before the pipeline
// spends money on summarization.
func (n *implNotifier) Ping(ctx context.Context) error {
	resp, err := n.client.AuthTestContext(ctx)
	if err != nil {
		return fmt.Errorf("slack ping: %w", err)
	}
	n.logger.Debug(ctx, "Slack auth ok (user: %s, team: %s)", resp.User, resp.Team)
	return nil
}

// buildBlocks lays the digest out as header, summary, source link and an
// automation footer stamped with the source document's modified time.
func buildBlocks(msg transcript.Message) []slack.Block {
	return []slack.Block{
		slack.NewHeaderBlock(
			slack.NewTextBlockObject(slack.PlainTextType, msg.Title, true, false),
		),
		slack.NewDividerBlock(),
		slack.NewSectionBlock(
			slack.NewTextBlockObject(slack.MarkdownType, msg.Body, false, false),
			nil, nil,
		),
		slack.NewDividerBlock(),
		slack.NewSectionBlock(
			slack.NewTextBlockObject(slack.MarkdownType,
				fmt.Sprintf("📄 *Source:* <%s|Open the original document>", msg.SourceURL),
				false, false),
			nil, nil,
		),
		slack.NewContextBlock("",
			slack.NewTextBlockObject(slack.MarkdownType,
				fmt.Sprintf("🤖 Automated digest · source modified %s",
					msg.Timestamp.UTC().Format("2006-01-02 15:04 MST")),
				false, false),
		),
	}
}
