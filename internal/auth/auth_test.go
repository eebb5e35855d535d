package auth_test

import (
	"io"
	"os"
	"testing"

	"github.com/ferdiebergado/notekit/internal/auth"
	"github.com/ferdiebergado/notekit/internal/pkg/logging"
	"github.com/ferdiebergado/notekit/internal/platform/db"
	"github.com/ferdiebergado/notekit/internal/platform/hash"
	"github.com/ferdiebergado/notekit/internal/platform/jwt"
	"github.com/ferdiebergado/notekit/internal/user"
)

const (
	testEmail = "test@example.com"
	testPass  = "correct horse"
	testHash  = "hashed:correct horse"
)

func TestMain(m *testing.M) {
	logging.SetupLogger("testing", "error", io.Discard)
	os.Exit(m.Run())
}

// stubHasher prefixes plain text with "hashed:" so stored hashes stay readable in failures.
func stubHasher() *hash.StubHasher {
	return &hash.StubHasher{
		HashFunc: func(plain string) (string, error) {
			return "hashed:" + plain, nil
		},
		VerifyFunc: func(plain, hashed string) (bool, error) {
			return "hashed:"+plain == hashed, nil
		},
	}
}

func newService(userSvc user.Service, tokens jwt.TokenService) *auth.Service {
	return auth.NewService(userSvc, &auth.Providers{
		Hasher: stubHasher(),
		Tokens: tokens,
		TxMgr:  db.PassthroughTxManager,
	})
}
