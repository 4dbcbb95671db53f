package models

// Slack Block Kit constants used by the bot's responses.
const (
	SlackResponseEphemeral = "ephemeral"

	SlackBlockHeader  = "header"
	SlackBlockSection = "section"

	SlackTextPlain    = "plain_text"
	SlackTextMarkdown = "mrkdwn"
)

// SlackMessage is a Slack slash-command response body.
type SlackMessage struct {
	ResponseType string       `json:"response_type"`
	Blocks       []SlackBlock `json:"blocks"`
}

// SlackBlock is a single Block Kit layout block.
type SlackBlock struct {
	Type string     `json:"type"`
	Text *SlackText `json:"text,omitempty"`
}

// SlackText is a Block Kit text object. Emoji is only meaningful for
// plain_text objects and is omitted otherwise.
type SlackText struct {
	Type  string `json:"type"`
	Text  string `json:"text"`
	Emoji *bool  `json:"emoji,omitempty"`
}
