package auth

import (
	"github.com/ferdiebergado/notekit/internal/platform/db"
	"github.com/ferdiebergado/notekit/internal/platform/hash"
	"github.com/ferdiebergado/notekit/internal/platform/jwt"
	"github.com/ferdiebergado/notekit/internal/user"
)

type Provider struct {
	Hasher  hash.Hasher
	Tokens  jwt.TokenService
	UserSvc user.Service
	TXMgr   db.TxManager
}

type Module struct {
	svc     *Service
	handler *Handler
}

func (m *Module) Handler() *Handler {
	return m.handler
}

func (m *Module) Service() *Service {
	return m.svc
}

func NewModule(provider *Provider) *Module {
	svc := NewService(provider.UserSvc, &Providers{
		Hasher: provider.Hasher,
		Tokens: provider.Tokens,
		TxMgr:  provider.TXMgr,
	})
	handler := NewHandler(svc)
	return &Module{
		handler: handler,
		svc:     svc,
	}
}
