package slack

import (
	"context"
	"errors"
	"testing"

	slackapi "github.com/slack-go/slack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tvalik/scoreline/internal/metrics"
	"github.com/tvalik/scoreline/internal/scorecard"
	"github.com/tvalik/scoreline/internal/standings"
	"github.com/tvalik/scoreline/internal/tournament"
)

// mockSlackAPI is a mock implementation of the parts of the slack.Client that we use.
type mockSlackAPI struct {
	postMessageContextFunc func(ctx context.Context, channelID string, options ...slackapi.MsgOption) (string, string, error)
}

func (m *mockSlackAPI) PostMessageContext(ctx context.Context, channelID string, options ...slackapi.MsgOption) (string, string, error) {
	if m.postMessageContextFunc != nil {
		return m.postMessageContextFunc(ctx, channelID, options...)
	}
	return "C12345", "123456789.12345", nil
}

func sampleTournament() *tournament.Tournament {
	return &tournament.Tournament{
		File:        "2025_finale.csv",
		ContentHash: "abc123",
		Details: scorecard.Details{
			Name:     "Prague Open",
			Date:     "23.8.2025",
			Location: "Prague",
		},
		RoundInfo: "Round 3 finished",
		Rounds: [][]scorecard.RoundRecord{
			{{Place: "1", Name: "Petr Novák", TotalScore: "-7", RoundScore: "-3"}},
		},
	}
}

func sampleRows() []standings.Row {
	return []standings.Row{
		{Place: "1", Name: "Petr Novák", Total: "-7", Rd: "-3"},
		{Place: "T2", Name: "Jana Malá", Total: "-3", Rd: "-1"},
		{Place: "T2", Name: "Karel Starý", Total: "-3", Rd: "E"},
	}
}

func TestSendMessage_DryRun(t *testing.T) {
	m := metrics.NewMock()
	// Pass nil for the api, as it shouldn't be called in dry-run mode.
	notifier := NewNotifierWithAPI(nil, "C123", m)

	message := slackapi.NewBlockMessage()
	_, err := notifier.sendMessage(message, true)
	require.NoError(t, err)
	assert.Equal(t, 0, m.SlackNotifSentCount)
}

func TestSendMessage_Success(t *testing.T) {
	postMessageCalled := false
	api := &mockSlackAPI{
		postMessageContextFunc: func(ctx context.Context, channelID string, options ...slackapi.MsgOption) (string, string, error) {
			postMessageCalled = true
			assert.Equal(t, "C123", channelID)
			return "C123", "ts123", nil
		},
	}

	m := metrics.NewMock()
	notifier := NewNotifierWithAPI(api, "C123", m)

	message := slackapi.NewBlockMessage(slackapi.NewSectionBlock(slackapi.NewTextBlockObject("plain_text", "hello", false, false), nil, nil))
	ts, err := notifier.sendMessage(message, false)

	require.NoError(t, err)
	assert.True(t, postMessageCalled, "PostMessageContext should have been called")
	assert.Equal(t, "ts123", ts)
	assert.Equal(t, 1, m.SlackNotifSentCount)
	assert.Equal(t, 0, m.SlackNotifFailedCount)
}

func TestSendMessage_Failure(t *testing.T) {
	expectedErr := errors.New("slack API is down")
	api := &mockSlackAPI{
		postMessageContextFunc: func(ctx context.Context, channelID string, options ...slackapi.MsgOption) (string, string, error) {
			return "", "", expectedErr
		},
	}

	m := metrics.NewMock()
	notifier := NewNotifierWithAPI(api, "C123", m)

	message := slackapi.NewBlockMessage()
	_, err := notifier.sendMessage(message, false)

	require.Error(t, err)
	assert.ErrorIs(t, err, expectedErr)
	assert.Equal(t, 0, m.SlackNotifSentCount)
	assert.Equal(t, 1, m.SlackNotifFailedCount)
}

func TestSendImportNotification(t *testing.T) {
	called := false
	api := &mockSlackAPI{
		postMessageContextFunc: func(ctx context.Context, channelID string, options ...slackapi.MsgOption) (string, string, error) {
			called = true
			return "C123", "ts123", nil
		},
	}
	m := metrics.NewMock()
	notifier := NewNotifierWithAPI(api, "C123", m)

	ts, err := notifier.SendImportNotification(sampleTournament(), sampleRows(), false)
	require.NoError(t, err)
	assert.True(t, called)
	assert.Equal(t, "ts123", ts)
}

func TestFormatImportNotification(t *testing.T) {
	notifier := NewNotifierWithAPI(nil, "C123", metrics.NewMock())

	message := notifier.FormatImportNotification(sampleTournament(), sampleRows())

	require.NotEmpty(t, message.Blocks.BlockSet)
	header, ok := message.Blocks.BlockSet[0].(*slackapi.HeaderBlock)
	require.True(t, ok, "first block should be a header")
	assert.Contains(t, header.Text.Text, "New tournament imported")

	section, ok := message.Blocks.BlockSet[1].(*slackapi.SectionBlock)
	require.True(t, ok, "second block should be a section")
	assert.Contains(t, section.Text.Text, "Prague Open")
	assert.Contains(t, section.Text.Text, "23.8.2025")
	assert.Contains(t, section.Text.Text, "Prague")
}

func TestFormatStandings(t *testing.T) {
	notifier := NewNotifierWithAPI(nil, "C123", metrics.NewMock())

	message := notifier.FormatStandings("Prague Open 2025", sampleRows())

	require.NotEmpty(t, message.Blocks.BlockSet)
	header, ok := message.Blocks.BlockSet[0].(*slackapi.HeaderBlock)
	require.True(t, ok)
	assert.Contains(t, header.Text.Text, "Prague Open 2025")

	// One section per row after the header.
	assert.Len(t, message.Blocks.BlockSet, 1+len(sampleRows()))
}

func TestFormatStandings_Empty(t *testing.T) {
	notifier := NewNotifierWithAPI(nil, "C123", metrics.NewMock())

	message := notifier.FormatStandings("Prague Open 2025", nil)

	require.Len(t, message.Blocks.BlockSet, 2)
	section, ok := message.Blocks.BlockSet[1].(*slackapi.SectionBlock)
	require.True(t, ok)
	assert.Contains(t, section.Text.Text, "No standings available")
}

func TestFormatStandings_Truncates(t *testing.T) {
	notifier := NewNotifierWithAPI(nil, "C123", metrics.NewMock())

	rows := make([]standings.Row, 0, 14)
	for i := 0; i < 14; i++ {
		rows = append(rows, standings.Row{Place: "T1", Name: "Player", Total: "E", Rd: "E"})
	}
	message := notifier.FormatStandings("Big Field", rows)

	// Header + 10 rows + "and N more" context block.
	assert.Len(t, message.Blocks.BlockSet, 12)
}
