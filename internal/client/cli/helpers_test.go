package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/dmitrijs2005/rockside/internal/client/device"
	"github.com/dmitrijs2005/rockside/internal/client/models"
	"github.com/dmitrijs2005/rockside/internal/client/screens"
	"github.com/dmitrijs2005/rockside/internal/client/services"
	"github.com/dmitrijs2005/rockside/internal/client/storage"
	"github.com/dmitrijs2005/rockside/internal/logging"
)

type recordingNotifier struct {
	alerts []string
}

func (n *recordingNotifier) Alert(_ context.Context, msg string) {
	n.alerts = append(n.alerts, msg)
}

type fakeLocation struct {
	res   services.LocationResult
	err   error
	calls int
}

func (f *fakeLocation) Acquire(context.Context) (services.LocationResult, error) {
	f.calls++
	return f.res, f.err
}

type countingPhotos struct {
	outcomes []string
}

func (c *countingPhotos) ObservePhoto(outcome string) {
	c.outcomes = append(c.outcomes, outcome)
}

var testDay = time.Date(2026, time.October, 18, 8, 30, 0, 0, time.UTC)

type harness struct {
	app      *App
	out      *bytes.Buffer
	repo     *storage.MemoryRepository
	creds    services.CredentialStore
	form     services.QuestionnaireStore
	notifier *recordingNotifier
	location *fakeLocation
	photos   *countingPhotos
}

type harnessOpt func(*Deps)

func withPicker(p device.PhotoPicker) harnessOpt {
	return func(d *Deps) { d.Photos = p }
}

func withStrictSignIn() harnessOpt {
	return func(d *Deps) { d.StrictSignIn = true }
}

func withLogger(l logging.Logger) harnessOpt {
	return func(d *Deps) { d.Logger = l }
}

func withQuestionnaire(q services.QuestionnaireStore) harnessOpt {
	return func(d *Deps) { d.Questionnaire = q }
}

func newHarness(t *testing.T, input []string, opts ...harnessOpt) *harness {
	t.Helper()

	h := &harness{
		out:      &bytes.Buffer{},
		repo:     storage.NewMemoryRepository(),
		notifier: &recordingNotifier{},
		location: &fakeLocation{res: services.LocationResult{
			Location: &models.Location{Lat: -1.25, Lon: 36.5},
			Status:   "latitude: -1.25, longitude: 36.5",
		}},
		photos: &countingPhotos{},
	}
	h.creds = services.NewCredentialStore(h.repo)
	h.form = services.NewQuestionnaireStore(h.repo)

	d := Deps{
		Credentials:   h.creds,
		Questionnaire: h.form,
		Location:      h.location,
		Notifier:      h.notifier,
		PhotoObserver: h.photos,
		Now:           func() time.Time { return testDay },
	}
	for _, opt := range opts {
		opt(&d)
	}

	in := strings.NewReader(strings.Join(input, "\n") + "\n")
	h.app = NewApp(d, in, h.out)
	return h
}

// openAt pushes the screens leading to s without running their commands.
func (h *harness) openAt(s screens.Screen) {
	switch s {
	case screens.Home:
		h.app.nav.Navigate(screens.SignIn)
		h.app.nav.Navigate(screens.Home)
	default:
		h.app.nav.Navigate(s)
	}
}

func (h *harness) run(t *testing.T) {
	t.Helper()
	if err := h.app.Run(context.Background()); err != nil {
		t.Fatalf("Run err: %v", err)
	}
}

func (h *harness) seedCredentials(t *testing.T, email, password string) {
	t.Helper()
	if err := h.creds.Save(context.Background(), email, password); err != nil {
		t.Fatalf("seed credentials: %v", err)
	}
}
