package app

import (
	"fmt"
	"log/slog"

	"github.com/aussiebroadwan/creatorhub/internal/creatorhub/identity"
	"github.com/aussiebroadwan/creatorhub/internal/creatorhub/store"
	"github.com/aussiebroadwan/creatorhub/pkg/cryptox"
)

// InitIdentity loads the signing key from cfg.SigningKeyFile, creating it on
// first start, and builds the built-in identity provider around it.
func InitIdentity(cfg Config, db store.Store, logger *slog.Logger) (*identity.Local, error) {
	key, err := cryptox.LoadOrCreateEd25519Key(cfg.SigningKeyFile)
	if err != nil {
		return nil, err
	}

	idp, err := identity.NewLocal(db, key, cfg.Issuer, cfg.AccessTokenTTL)
	if err != nil {
		return nil, fmt.Errorf("identity provider: %w", err)
	}

	logger.Info("signing key loaded", "kid", idp.Signer.KID(), "path", cfg.SigningKeyFile)
	return idp, nil
}
