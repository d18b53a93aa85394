package cli

import (
	"bufio"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/healthguidelab/keto365/internal/client/config"
	"github.com/healthguidelab/keto365/internal/client/identity"
	"github.com/healthguidelab/keto365/internal/client/recipes"
	"github.com/healthguidelab/keto365/internal/client/repositories/metadata"
	"github.com/healthguidelab/keto365/internal/client/repositories/profile"
	"github.com/healthguidelab/keto365/internal/client/session"
	"github.com/healthguidelab/keto365/internal/client/storage"
	"github.com/healthguidelab/keto365/internal/client/stores"
	"github.com/healthguidelab/keto365/internal/logging"
)

type App struct {
	config  *config.Config
	log     logging.Logger
	db      *sql.DB
	session *session.Controller
	closers []io.Closer

	in     io.Reader
	out    io.Writer
	reader *bufio.Reader
	now    func() time.Time

	showWelcome bool
}

type Option func(*App)

// WithIO replaces stdin and stdout.
func WithIO(in io.Reader, out io.Writer) Option {
	return func(a *App) {
		a.in = in
		a.out = out
	}
}

func WithClock(now func() time.Time) Option {
	return func(a *App) { a.now = now }
}

func WithLogger(l logging.Logger) Option {
	return func(a *App) { a.log = l }
}

// NewApp opens the database and wires the session controller. The caller
// must Close the App.
func NewApp(ctx context.Context, c *config.Config, opts ...Option) (*App, error) {
	a := &App{config: c, in: os.Stdin, out: os.Stdout, now: time.Now}
	for _, opt := range opts {
		opt(a)
	}
	if a.log == nil {
		l, err := logging.New(c.LogLevel, c.LogFormat, os.Stderr)
		if err != nil {
			return nil, err
		}
		a.log = l
	}

	db, err := storage.InitDatabase(ctx, c.DatabasePath, a.log)
	if err != nil {
		a.log.Error(ctx, "error initializing database", "error", err)
		return nil, err
	}
	a.db = db
	a.closers = append(a.closers, db)

	verifier, err := a.buildVerifier()
	if err != nil {
		_ = a.Close()
		return nil, err
	}

	meta := metadata.NewSQLiteRepository(db)
	a.reader = bufio.NewReader(a.in)
	provider := identity.NewTerminalProvider(a.in, a.reader, a.out, stores.NewAccountCache(meta), a.log)

	a.session = session.New(
		stores.NewLoginFlagStore(meta),
		profile.NewSQLiteRepository(db, a.now),
		provider,
		verifier,
		a.log,
		session.WithPersister(session.NewSQLitePersister(db, a.now)),
	)
	return a, nil
}

// buildVerifier picks the token verifier from config. A configured
// endpoint puts a health probe in front of it.
func (a *App) buildVerifier() (identity.Verifier, error) {
	c := a.config

	var v identity.Verifier = identity.UnavailableVerifier{}
	switch {
	case c.TokenSecret != "":
		v = identity.NewHMACVerifier([]byte(c.TokenSecret), c.TokenIssuer, c.TokenAudience)
	case c.TokenPublicKeyFile != "":
		pem, err := os.ReadFile(c.TokenPublicKeyFile)
		if err != nil {
			return nil, fmt.Errorf("failed to read token key: %w", err)
		}
		rv, err := identity.NewRSAVerifier(pem, c.TokenIssuer, c.TokenAudience)
		if err != nil {
			return nil, err
		}
		v = rv
	}

	if c.VerifierEndpoint != "" {
		probe, err := identity.NewHealthProbe(c.VerifierEndpoint, c.VerifierService, c.ProbeTimeout)
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, probe)
		v = identity.NewProbingVerifier(probe, v)
	}
	return v, nil
}

// Close releases the probe connection and the database.
func (a *App) Close() error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		errs = append(errs, a.closers[i].Close())
	}
	a.closers = nil
	return errors.Join(errs...)
}

// Init runs the startup protocol without entering the REPL.
func (a *App) Init(ctx context.Context) (session.State, error) {
	st, err := a.session.Init(ctx)
	if err != nil {
		return st, err
	}
	a.showWelcome = st.Kind == session.KindLoggedIn
	return st, nil
}

// Run initializes the session and blocks in the REPL until the user exits.
func (a *App) Run(ctx context.Context) error {
	renderLoading(a.out)

	ch, unsubscribe := a.session.Subscribe()
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		a.watchState(ctx, ch)
	}()
	defer func() {
		unsubscribe()
		wg.Wait()
	}()

	if _, err := a.Init(ctx); err != nil {
		return err
	}

	fmt.Fprintln(a.out, "Keto365 (escribe 'help' para ver los comandos)")
	_ = a.Show(ctx)

	runREPL(ctx, a, a.status, a.reader, a.out)
	return nil
}

// watchState logs every session transition until ch is closed.
func (a *App) watchState(ctx context.Context, ch <-chan session.State) {
	for {
		select {
		case st, ok := <-ch:
			if !ok {
				return
			}
			a.log.Debug(ctx, "session state changed", "state", st.String())
		case <-ctx.Done():
			return
		}
	}
}

func (a *App) isLoggedIn() bool {
	return a.session.State().Kind == session.KindLoggedIn
}

func (a *App) status() string {
	st := a.session.State()
	if st.Kind == session.KindLoggedIn {
		return fmt.Sprintf("(%s)", st.Email)
	}
	return fmt.Sprintf("(%s)", st.Kind)
}

func (a *App) Login(ctx context.Context) error {
	if !a.isLoggedIn() {
		renderSigningIn(a.out)
	}

	before := a.isLoggedIn()
	st, err := a.session.Login(ctx)
	if errors.Is(err, session.ErrLoginInProgress) {
		fmt.Fprintln(a.out, "Ya hay un inicio de sesión en curso.")
		return nil
	}
	if !before && st.Kind == session.KindLoggedIn {
		a.showWelcome = true
	}
	renderState(a.out, st, a.showWelcome, recipes.For(a.now()))
	return err
}

// Continue leaves the welcome screen for the home screen.
func (a *App) Continue(ctx context.Context) error {
	if !a.isLoggedIn() {
		fmt.Fprintln(a.out, "Primero inicia sesión con Google.")
		return nil
	}
	a.showWelcome = false
	return a.Show(ctx)
}

// Today prints the recipe of the day. It needs no session.
func (a *App) Today(ctx context.Context) error {
	renderRecipe(a.out, recipes.For(a.now()))
	return nil
}

// Show redraws the screen for the current state.
func (a *App) Show(ctx context.Context) error {
	renderState(a.out, a.session.State(), a.showWelcome, recipes.For(a.now()))
	return nil
}
