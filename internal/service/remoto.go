package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"ofrendas/internal/apierror"

	"github.com/rs/zerolog/log"
)

// RemotoError marks a failure of the remote gateway. Handlers show the
// user apierror.MensajeRemoto(Err, Bucket) instead of the raw error.
type RemotoError struct {
	Op     string
	Bucket string
	Err    error
}

func (e *RemotoError) Error() string { return fmt.Sprintf("%s: %v", e.Op, e.Err) }
func (e *RemotoError) Unwrap() error { return e.Err }

// Mensaje is the user-facing text for the failure.
func (e *RemotoError) Mensaje() string { return apierror.MensajeRemoto(e.Err, e.Bucket) }

// timeoutRemoto bounds every gateway call issued by the services.
const timeoutRemoto = 30 * time.Second

// advertir runs a best-effort remote mutation after a local one already
// committed. It returns the warning to report, or "" on success.
func advertir(ctx context.Context, op string, fn func(context.Context) error) string {
	ctx, cancel := context.WithTimeout(ctx, timeoutRemoto)
	defer cancel()
	if err := fn(ctx); err != nil {
		log.Warn().Err(err).Str("op", op).Msg("remote sync failed; local change kept")
		return apierror.MensajeRemoto(err, "")
	}
	return ""
}

// mensajeDe picks the user-facing text for err.
func mensajeDe(err error) string {
	var re *RemotoError
	if errors.As(err, &re) {
		return re.Mensaje()
	}
	return err.Error()
}
