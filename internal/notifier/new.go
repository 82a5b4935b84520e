package notifier

import (
	"github.com/slack-go/slack"

	"github.com/nvhoang/meeting-digest/internal/logger"
)

type implNotifier struct {
	client    *slack.Client
	channelID string
	logger    logger.Logger
}

// New creates a Publisher posting to the given Slack channel.
func New(botToken, channelID string, log logger.Logger) Publisher {
	return &implNotifier{
		client:    slack.New(botToken),
		channelID: channelID,
		logger:    log,
	}
}
