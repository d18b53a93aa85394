package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/healthguidelab/keto365/internal/client/identity"
	"github.com/healthguidelab/keto365/internal/client/models"
	"github.com/healthguidelab/keto365/internal/logging"
)

// FlagStore is the login flag contract.
type FlagStore interface {
	Read(ctx context.Context) (bool, error)
	Write(ctx context.Context, value bool) error
}

// ProfileStore is the singleton profile contract.
type ProfileStore interface {
	Upsert(ctx context.Context, email string) error
	Get(ctx context.Context) (*models.UserProfile, error)
}

type Controller struct {
	flags     FlagStore
	profiles  ProfileStore
	provider  identity.Provider
	verifier  identity.Verifier
	persister Persister
	log       logging.Logger

	initMu      sync.Mutex
	initialized atomic.Bool
	attempting  atomic.Bool

	mu    sync.Mutex
	state State
	subs  map[int]chan State
	next  int
}

type Option func(*Controller)

// WithPersister replaces the default sequential profile-then-flag write.
func WithPersister(p Persister) Option {
	return func(c *Controller) { c.persister = p }
}

func New(flags FlagStore, profiles ProfileStore, provider identity.Provider, verifier identity.Verifier, log logging.Logger, opts ...Option) *Controller {
	if verifier == nil {
		verifier = identity.UnavailableVerifier{}
	}
	if log == nil {
		log = logging.Nop()
	}
	c := &Controller{
		flags:    flags,
		profiles: profiles,
		provider: provider,
		verifier: verifier,
		log:      log,
		state:    Loading(),
		subs:     make(map[int]chan State),
	}
	c.persister = storePersister{flags: flags, profiles: profiles}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// State returns the current state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Init reads both stores and leaves Loading. Calling it again returns the
// current state without touching the stores.
func (c *Controller) Init(ctx context.Context) (State, error) {
	c.initMu.Lock()
	defer c.initMu.Unlock()

	if c.initialized.Load() {
		return c.State(), nil
	}

	var (
		flag bool
		prof *models.UserProfile
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		v, err := c.flags.Read(gctx)
		if err != nil {
			return fmt.Errorf("read login flag: %w", err)
		}
		flag = v
		return nil
	})
	g.Go(func() error {
		p, err := c.profiles.Get(gctx)
		if err != nil {
			return fmt.Errorf("read profile: %w", err)
		}
		prof = p
		return nil
	})
	if err := g.Wait(); err != nil {
		return c.State(), fmt.Errorf("init session: %w", err)
	}

	next := LoggedOut("", nil)
	if flag && prof.Usable() {
		next = LoggedIn(prof.Email, "", nil)
	}
	c.initialized.Store(true)
	c.publish(next)

	c.log.Info(ctx, "session initialized", "state", next.Kind.String(), "has_logged_once", flag)
	return next, nil
}

// Login runs one sign-in attempt and applies its outcome.
func (c *Controller) Login(ctx context.Context) (State, error) {
	if !c.initialized.Load() {
		return c.State(), ErrNotInitialized
	}
	if cur := c.State(); cur.Kind == KindLoggedIn {
		return cur, nil
	}
	if !c.attempting.CompareAndSwap(false, true) {
		return c.State(), ErrLoginInProgress
	}
	defer c.attempting.Store(false)

	// an attempt that finished since the check above may have logged in
	if cur := c.State(); cur.Kind == KindLoggedIn {
		return cur, nil
	}

	log := c.log.With("attempt_id", uuid.NewString())
	log.Info(ctx, "login attempt started")
	c.publish(SigningIn())

	res := c.provider.SignIn(ctx)
	d := c.resolve(ctx, log, res)

	if !d.accept {
		next := LoggedOut(d.message, d.cause)
		c.publish(next)
		log.Info(ctx, "login attempt rejected", "outcome", res.Outcome.String(), "reason", d.message)
		return next, nil
	}

	if err := c.persister.SaveLogin(ctx, d.email); err != nil {
		next := LoggedOut(MsgSaveFailed, err)
		c.publish(next)
		log.Error(ctx, "failed to persist login", "error", err)
		return next, fmt.Errorf("persist login: %w", err)
	}

	next := LoggedIn(d.email, d.message, d.cause)
	c.publish(next)
	log.Info(ctx, "login attempt accepted", "outcome", res.Outcome.String(), "advisory", d.message)
	return next, nil
}

type decision struct {
	accept  bool
	email   string
	message string
	cause   error
}

func reject(msg string, cause error) decision {
	return decision{message: msg, cause: cause}
}

func accept(email, advisory string, cause error) decision {
	return decision{accept: true, email: email, message: advisory, cause: cause}
}

func (c *Controller) resolve(ctx context.Context, log logging.Logger, res identity.Result) decision {
	switch res.Outcome {
	case identity.OutcomeCancelled:
		return reject(MsgCancelled, identity.ErrUserCancelled)

	case identity.OutcomeSuccessNoToken:
		if res.Email == "" {
			return reject(MsgNoEmail, identity.ErrNoEmailAvailable)
		}
		return accept(res.Email, MsgNoToken, nil)

	case identity.OutcomeSuccess:
		id, err := c.verifier.Verify(ctx, res.IDToken)
		if err == nil {
			if id.Email != "" {
				return accept(id.Email, "", nil)
			}
			if res.Email != "" {
				return accept(res.Email, "", nil)
			}
			return reject(MsgNoEmail, identity.ErrNoEmailAvailable)
		}
		log.Warn(ctx, "token verification failed", "error", err)
		if res.Email != "" {
			return accept(res.Email, MsgVerificationSkipped, err)
		}
		return reject(failureMessage(err, MsgAuthFailed), err)

	default:
		return c.resolveFailure(ctx, log, res.Err)
	}
}

func (c *Controller) resolveFailure(ctx context.Context, log logging.Logger, err error) decision {
	switch {
	case errors.Is(err, identity.ErrUserCancelled):
		return reject(MsgCancelled, err)
	case errors.Is(err, identity.ErrNoEmailAvailable):
		return reject(MsgNoEmail, err)
	}

	acc, lerr := c.provider.LastSignedInAccount(ctx)
	if lerr != nil {
		log.Warn(ctx, "failed to read cached account", "error", lerr)
	}
	if acc != nil && acc.Email != "" {
		return accept(acc.Email, MsgCachedAccount, err)
	}

	return reject(failureMessage(err, MsgSignInFailed), err)
}

// failureMessage returns the message carried by a *identity.ProviderFailure
// in err, or fallback.
func failureMessage(err error, fallback string) string {
	var pf *identity.ProviderFailure
	if errors.As(err, &pf) && pf.Message != "" {
		return pf.Message
	}
	return fallback
}

// Subscribe returns a channel that receives the current state immediately
// and then every change. Only the latest undelivered state is kept. The
// returned func unsubscribes and closes the channel.
func (c *Controller) Subscribe() (<-chan State, func()) {
	c.mu.Lock()
	defer c.mu.Unlock()

	id := c.next
	c.next++
	ch := make(chan State, 1)
	ch <- c.state
	c.subs[id] = ch

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			c.mu.Lock()
			defer c.mu.Unlock()
			delete(c.subs, id)
			close(ch)
		})
	}
}

func (c *Controller) publish(s State) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.state = s
	for _, ch := range c.subs {
		select {
		case <-ch:
		default:
		}
		ch <- s
	}
}
