package identity

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"net/mail"
	"time"

	"github.com/healthguidelab/keto365/internal/client/models"
	"github.com/healthguidelab/keto365/internal/client/prompt"
	"github.com/healthguidelab/keto365/internal/logging"
)

// AccountCache stores the last account signed in on the device.
type AccountCache interface {
	Last(ctx context.Context) (*models.DeviceAccount, error)
	Remember(ctx context.Context, acc models.DeviceAccount) error
}

// TerminalProvider is a Provider that asks for the account email and an
// optional ID token on the terminal. An empty email cancels the flow; an
// empty token yields SuccessNoToken.
type TerminalProvider struct {
	in     io.Reader
	reader *bufio.Reader
	out    io.Writer
	cache  AccountCache
	log    logging.Logger
	now    func() time.Time
}

// NewTerminalProvider shares reader with the caller so buffered input is
// not lost between prompts. in is only inspected to detect a terminal.
func NewTerminalProvider(in io.Reader, reader *bufio.Reader, out io.Writer, cache AccountCache, log logging.Logger) *TerminalProvider {
	return &TerminalProvider{in: in, reader: reader, out: out, cache: cache, log: log, now: time.Now}
}

func (p *TerminalProvider) SignIn(ctx context.Context) Result {
	raw, err := prompt.GetSimpleText(p.reader, "Correo de Google (vacío para cancelar)", p.out)
	if errors.Is(err, io.EOF) {
		return Cancelled()
	}
	if err != nil {
		return Failure(&ProviderFailure{Err: err})
	}
	if raw == "" {
		return Cancelled()
	}

	addr, err := mail.ParseAddress(raw)
	if err != nil {
		return Failure(&ProviderFailure{Message: fmt.Sprintf("Correo inválido: %s", raw), Err: err})
	}

	token, err := prompt.GetSecret(p.in, p.reader, "Token de identidad (vacío para omitir)", p.out)
	if err != nil {
		return Failure(&ProviderFailure{Err: err})
	}

	if err := p.cache.Remember(ctx, models.DeviceAccount{Email: addr.Address, LastSignedIn: p.now()}); err != nil {
		p.log.Warn(ctx, "failed to cache device account", "error", err)
	}

	return Success(addr.Address, token)
}

func (p *TerminalProvider) LastSignedInAccount(ctx context.Context) (*models.DeviceAccount, error) {
	return p.cache.Last(ctx)
}
