package cli

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/rockside/internal/client/screens"
	"github.com/dmitrijs2005/rockside/internal/client/services"
	"github.com/dmitrijs2005/rockside/internal/client/storage"
)

func TestRun_WelcomeScreen(t *testing.T) {
	h := newHarness(t, []string{"help", "exit"})
	h.run(t)

	out := h.out.String()
	assert.Contains(t, out, "Rockside Consults")
	assert.Contains(t, out, "Technical Assessment")
	assert.Contains(t, out, "start")
	assert.Contains(t, out, "Bye!")
	assert.Equal(t, screens.Welcome, h.app.Screen())
}

func TestRun_BackAndUnknownCommands(t *testing.T) {
	h := newHarness(t, []string{"back", "foo", "start", "signup", "back", "back"})
	h.run(t)

	out := h.out.String()
	assert.Contains(t, out, "Nothing to go back to.")
	assert.Contains(t, out, "Unknown command: foo")
	assert.Equal(t, screens.Welcome, h.app.Screen())
}

func TestRun_EOFEndsLoop(t *testing.T) {
	h := newHarness(t, []string{"start"})
	h.run(t)
	assert.Equal(t, screens.SignIn, h.app.Screen())
}

func TestRun_CancelledContext(t *testing.T) {
	h := newHarness(t, []string{"start"})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.NoError(t, h.app.Run(ctx))
	assert.Equal(t, screens.Welcome, h.app.Screen())
}

func TestRun_CancelWhileWaitingForInput(t *testing.T) {
	pr, pw := io.Pipe()
	t.Cleanup(func() { _ = pw.Close() })

	var out bytes.Buffer
	app := NewApp(Deps{
		Credentials:   services.NewCredentialStore(storage.NewMemoryRepository()),
		Questionnaire: services.NewQuestionnaireStore(storage.NewMemoryRepository()),
		Location:      &fakeLocation{},
		Notifier:      &recordingNotifier{},
	}, pr, &out)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- app.Run(ctx) }()

	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancellation")
	}
	assert.Equal(t, screens.Welcome, app.Screen())
}

func TestRun_CommandsAreCaseInsensitive(t *testing.T) {
	h := newHarness(t, []string{"START", "SignUp"})
	h.run(t)
	assert.Equal(t, screens.SignUp, h.app.Screen())
}

func TestRun_HomeGatesFormCommands(t *testing.T) {
	h := newHarness(t, []string{"help", "name", "consent", "help"})
	h.openAt(screens.Home)
	h.run(t)

	out := h.out.String()
	assert.Contains(t, out, "Give your consent first: type 'consent'.")

	helps := strings.Split(out, "Available commands:")
	require.Len(t, helps, 3)
	assert.NotContains(t, helps[1], "save")
	assert.Contains(t, helps[2], "save")
}

func TestRun_MountRunsOnEveryVisit(t *testing.T) {
	h := newHarness(t, []string{"back", "continue", "", "secret"})
	h.seedCredentials(t, "a@b.co", "secret")
	h.openAt(screens.Home)
	h.run(t)

	assert.Equal(t, screens.Home, h.app.Screen())
	assert.Equal(t, 2, h.location.calls)
	assert.Equal(t, 1, strings.Count(h.out.String(), "Stored account: a@b.co"))
}

func TestRun_ReadErrorIsReturned(t *testing.T) {
	app := NewApp(Deps{}, errReader{}, &strings.Builder{})
	err := app.Run(context.Background())
	require.Error(t, err)
}

type errReader struct{}

func (errReader) Read([]byte) (int, error) { return 0, errors.New("broken pipe") }
