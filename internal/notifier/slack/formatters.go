package slack

import (
	"fmt"

	"github.com/slack-go/slack"
	"github.com/tvalik/scoreline/internal/standings"
	"github.com/tvalik/scoreline/internal/tournament"
)

// maxStandingsRows caps how many rows a standings message shows to keep the
// message within Slack's block limits.
const maxStandingsRows = 10

// FormatImportNotification creates the Slack message for a newly imported
// tournament using Block Kit.
func (s *Notifier) FormatImportNotification(t *tournament.Tournament, final []standings.Row) slack.Message {
	blocks := make([]slack.Block, 0)

	// Header
	headerText := slack.NewTextBlockObject("plain_text", "🥏 New tournament imported! 🥏", true, false)
	blocks = append(blocks, slack.NewHeaderBlock(headerText))

	// Details
	detailsText := fmt.Sprintf("Tournament: %s\nDate: %s\nLocation: %s\nRounds: %d",
		t.Details.Name,
		t.Details.Date,
		t.Details.Location,
		len(t.Rounds),
	)
	blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("plain_text", detailsText, true, false), nil, nil))

	if t.RoundInfo != "" {
		blocks = append(blocks, slack.NewContextBlock("", slack.NewTextBlockObject("plain_text", t.RoundInfo, true, false)))
	}

	blocks = append(blocks, standingsBlocks(final)...)

	return slack.NewBlockMessage(blocks...)
}

// FormatStandings creates a Slack message for an on-demand standings table.
func (s *Notifier) FormatStandings(displayName string, rows []standings.Row) slack.Message {
	blocks := make([]slack.Block, 0)

	// Header
	headerText := slack.NewTextBlockObject("plain_text", fmt.Sprintf("🥏 %s — Standings 🥏", displayName), true, false)
	blocks = append(blocks, slack.NewHeaderBlock(headerText))

	blocks = append(blocks, standingsBlocks(rows)...)

	return slack.NewBlockMessage(blocks...)
}

func standingsBlocks(rows []standings.Row) []slack.Block {
	blocks := make([]slack.Block, 0)

	if len(rows) == 0 {
		blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("plain_text", "No standings available yet.", true, false), nil, nil))
		return blocks
	}

	shown := rows
	if len(shown) > maxStandingsRows {
		shown = shown[:maxStandingsRows]
	}

	for _, row := range shown {
		var medal string
		switch row.Place {
		case "1", "T1":
			medal = "🥇"
		case "2", "T2":
			medal = "🥈"
		case "3", "T3":
			medal = "🥉"
		}

		rowText := fmt.Sprintf("%s. %s %s\n> Total: %s | Round: %s",
			row.Place,
			medal,
			row.Name,
			row.Total,
			row.Rd,
		)
		blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("plain_text", rowText, true, false), nil, nil))
	}

	if len(rows) > maxStandingsRows {
		moreText := fmt.Sprintf("...and %d more players.", len(rows)-maxStandingsRows)
		blocks = append(blocks, slack.NewContextBlock("", slack.NewTextBlockObject("plain_text", moreText, true, false)))
	}

	return blocks
}
