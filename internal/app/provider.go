package app

import (
	"database/sql"
	"fmt"

	"github.com/ferdiebergado/notekit/internal/config"
	"github.com/ferdiebergado/notekit/internal/platform/db"
	"github.com/ferdiebergado/notekit/internal/platform/hash"
	"github.com/ferdiebergado/notekit/internal/platform/jwt"
	"github.com/ferdiebergado/notekit/internal/platform/router"
	"github.com/ferdiebergado/notekit/internal/platform/validation"
)

type Provider struct {
	DB        *sql.DB
	Tokens    jwt.TokenService
	Validator validation.Validator
	Hasher    hash.Hasher
	Router    router.Router
	TxMgr     db.TxManager
}

func NewProvider(cfg *config.Config, dbConn *sql.DB) (*Provider, error) {
	tokens, err := jwt.NewService(cfg.JWT, cfg.App.Key)
	if err != nil {
		return nil, fmt.Errorf("new token service: %w", err)
	}

	provider := &Provider{
		DB:        dbConn,
		Tokens:    tokens,
		Hasher:    hash.NewArgon2Hasher(cfg.Argon2, cfg.App.Key),
		Router:    router.NewGoexpressRouter(),
		Validator: validation.NewGoPlaygroundValidator(),
		TxMgr:     db.NewSQLTxManager(dbConn),
	}

	return provider, nil
}
