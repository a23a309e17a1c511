package ui_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/birthday-reminder/internal/config"
	"github.com/tartampluch/birthday-reminder/internal/engine"
	"github.com/tartampluch/birthday-reminder/internal/ui"
)

// -----------------------------------------------------------------------------
// Mocks
// -----------------------------------------------------------------------------

// MockNotifier records notifications using testify/mock.
type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) Notify(title, body string) error {
	args := m.Called(title, body)
	return args.Error(0)
}

func result(name string, occurrence time.Time, offset int) engine.EvaluatedBirthday {
	return engine.EvaluatedBirthday{
		Entry:      engine.BirthdayEntry{Name: name, BirthDate: occurrence.AddDate(-30, 0, 0)},
		Occurrence: occurrence,
		DaysOffset: offset,
	}
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// -----------------------------------------------------------------------------
// Formatting
// -----------------------------------------------------------------------------

func TestFormatLine(t *testing.T) {
	tests := []struct {
		name string
		in   engine.EvaluatedBirthday
		want string
	}{
		{"Upcoming in five days", result("Alice", day(2024, 3, 15), 5), "Alice: 15.03.2024 (in 5 days)"},
		{"Birthday today", result("Carol", day(2024, 3, 10), 0), "Carol: 10.03.2024 (TODAY - HAPPY BIRTHDAY!!!!)"},
		{"Past birthday", result("Dora", day(2024, 3, 7), -3), "Dora: 07.03.2024 (3 days ago - Birthday is in the past)"},
		{"Single day ahead", result("Eve", day(2025, 1, 1), 1), "Eve: 01.01.2025 (in 1 days)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ui.FormatLine(tt.in))
		})
	}
}

func TestStatus(t *testing.T) {
	assert.Equal(t, "in 30 days", ui.Status(30))
	assert.Equal(t, config.StatusToday, ui.Status(0))
	assert.Equal(t, "5 days ago - Birthday is in the past", ui.Status(-5))
}

func TestFormatMessage_Paragraphs(t *testing.T) {
	msg := ui.FormatMessage([]engine.EvaluatedBirthday{
		result("Dora", day(2024, 3, 7), -3),
		result("Carol", day(2024, 3, 10), 0),
		result("Alice", day(2024, 3, 15), 5),
	})

	want := "Birthdays:\n\n" +
		"Dora: 07.03.2024 (3 days ago - Birthday is in the past)\n\n" +
		"Carol: 10.03.2024 (TODAY - HAPPY BIRTHDAY!!!!)\n\n" +
		"Alice: 15.03.2024 (in 5 days)\n\n"
	assert.Equal(t, want, msg)
	assert.True(t, strings.HasSuffix(msg, config.ParagraphSeparator), "Every line is followed by a blank line")
}

// -----------------------------------------------------------------------------
// Presenter
// -----------------------------------------------------------------------------

func TestPresent_ShowsAlert(t *testing.T) {
	n := new(MockNotifier)
	n.On("Notify", config.AlertTitle, mock.MatchedBy(func(body string) bool {
		return strings.Contains(body, "Alice: 15.03.2024 (in 5 days)")
	})).Return(nil).Once()

	err := ui.NewPresenter(n).Present(context.Background(), []engine.EvaluatedBirthday{
		result("Alice", day(2024, 3, 15), 5),
	})

	require.NoError(t, err)
	n.AssertExpectations(t)
}

// No results means no dialog.
func TestPresent_EmptyIsNoOp(t *testing.T) {
	n := new(MockNotifier)

	err := ui.NewPresenter(n).Present(context.Background(), nil)

	assert.NoError(t, err)
	n.AssertNotCalled(t, "Notify", mock.Anything, mock.Anything)
}

func TestPresent_EmptyWithoutNotifier(t *testing.T) {
	p := &ui.Presenter{}
	assert.NoError(t, p.Present(context.Background(), []engine.EvaluatedBirthday{}))
}

func TestPresent_MissingNotifier(t *testing.T) {
	p := &ui.Presenter{}

	err := p.Present(context.Background(), []engine.EvaluatedBirthday{result("Alice", day(2024, 3, 15), 5)})

	assert.ErrorIs(t, err, ui.ErrNotifierMissing)
}

func TestPresent_NotifierFailureIsReturned(t *testing.T) {
	driverErr := errors.New("no display")
	n := new(MockNotifier)
	n.On("Notify", mock.Anything, mock.Anything).Return(driverErr)

	err := ui.NewPresenter(n).Present(context.Background(), []engine.EvaluatedBirthday{
		result("Carol", day(2024, 3, 10), 0),
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, driverErr)
	assert.Contains(t, err.Error(), config.ErrNotifyFailed)
	n.AssertExpectations(t)
}
