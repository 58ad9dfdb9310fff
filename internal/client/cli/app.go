package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"time"

	"github.com/dmitrijs2005/rockside/internal/client/device"
	"github.com/dmitrijs2005/rockside/internal/client/screens"
	"github.com/dmitrijs2005/rockside/internal/client/services"
	"github.com/dmitrijs2005/rockside/internal/logging"
)

// LocationAcquirer takes one location reading. *services.LocationService
// satisfies it.
type LocationAcquirer interface {
	Acquire(ctx context.Context) (services.LocationResult, error)
}

// PhotoObserver counts photo picker outcomes. *metrics.Recorder satisfies it.
type PhotoObserver interface {
	ObservePhoto(outcome string)
}

type nopPhotoObserver struct{}

func (nopPhotoObserver) ObservePhoto(string) {}

// Deps are the collaborators an App drives. Credentials, Questionnaire,
// Location, Photos and Notifier are required.
type Deps struct {
	Credentials   services.CredentialStore
	Questionnaire services.QuestionnaireStore
	Location      LocationAcquirer
	Photos        device.PhotoPicker
	Notifier      device.Notifier
	Logger        logging.Logger
	PhotoObserver PhotoObserver

	// StrictSignIn makes sign-in compare the entered pair with the stored
	// credentials.
	StrictSignIn bool
	// Terminal reads passwords from the terminal without echo. See
	// StdinIsTerminal.
	Terminal bool
	// Now dates new questionnaires. Defaults to time.Now.
	Now func() time.Time
}

type App struct {
	credentials   services.CredentialStore
	questionnaire services.QuestionnaireStore
	location      LocationAcquirer
	photos        device.PhotoPicker
	notifier      device.Notifier
	log           logging.Logger
	photoObserver PhotoObserver
	strictSignIn  bool
	terminal      bool
	now           func() time.Time

	nav    *screens.Navigator
	reader *bufio.Reader
	out    io.Writer

	// prefillEmail is the stored email shown on the Sign In screen.
	prefillEmail string
	// userEmail is who signed in or signed up in this session.
	userEmail string
	form      *screens.HomeForm
}

// NewApp builds an App reading commands from in and writing to out. Pass
// the same *bufio.Reader that backs the device prompters so buffered input
// is never split between two readers.
func NewApp(d Deps, in io.Reader, out io.Writer) *App {
	reader, ok := in.(*bufio.Reader)
	if !ok {
		reader = bufio.NewReader(in)
	}

	a := &App{
		credentials:   d.Credentials,
		questionnaire: d.Questionnaire,
		location:      d.Location,
		photos:        d.Photos,
		notifier:      d.Notifier,
		log:           d.Logger,
		photoObserver: d.PhotoObserver,
		strictSignIn:  d.StrictSignIn,
		terminal:      d.Terminal,
		now:           d.Now,
		nav:           screens.NewNavigator(),
		reader:        reader,
		out:           out,
	}
	if a.log == nil {
		a.log = logging.Nop()
	}
	if a.photoObserver == nil {
		a.photoObserver = nopPhotoObserver{}
	}
	if a.now == nil {
		a.now = time.Now
	}
	return a
}

// Screen reports the screen currently shown.
func (a *App) Screen() screens.Screen {
	return a.nav.Current()
}

func (a *App) println(args ...any) {
	fmt.Fprintln(a.out, args...)
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}

func (a *App) ask(prompt string) (string, error) {
	return GetSimpleText(a.reader, prompt, a.out)
}

func (a *App) askPassword(prompt string) ([]byte, error) {
	return GetPassword(a.reader, prompt, a.out, a.terminal)
}
