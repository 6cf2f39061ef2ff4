package sixpack

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/sixpack/pkg/logger"
)

const (
	// ClientIDTTL is how long a generated visitor identifier is persisted:
	// 100 months of 30 days.
	ClientIDTTL = 100 * 30 * 24 * time.Hour

	clientIDPath = "/"
)

// ClientIDKey returns the store key holding the visitor identifier for a
// cookie prefix, e.g. "sixpack_client_id".
func ClientIDKey(prefix string) string {
	return prefix + "_client_id"
}

// GenerateClientID returns a new identifier in the
// XXXXXXXX-XXXX-XXXX-XXXX-XXXXXXXXXXXX uppercase hex layout shared by all
// sixpack clients. It identifies a visitor, it is not a secret.
func GenerateClientID() string {
	return strings.ToUpper(uuid.NewString())
}

// identifierStore resolves the visitor identifier against a Store.
type identifierStore struct {
	store Store
	key   string
	log   *slog.Logger
}

// resolve picks the explicit id, else the stored one, else generates and
// stores a fresh id. Store failures are logged and never returned.
func (s identifierStore) resolve(ctx context.Context, explicit string) string {
	if explicit != "" {
		return explicit
	}

	if s.store != nil {
		id, err := s.store.Get(s.key)
		switch {
		case err != nil:
			s.log.DebugContext(ctx, "sixpack: stored client id unavailable",
				slog.String("key", s.key), logger.Error(err))
		case id != "":
			return id
		}
	}

	id := GenerateClientID()
	if s.store != nil {
		if err := s.store.Set(s.key, id, ClientIDTTL, clientIDPath); err != nil {
			s.log.WarnContext(ctx, "sixpack: failed to persist client id",
				slog.String("key", s.key), logger.Error(err))
		}
	}
	return id
}
