package handlers_test

import (
	"context"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/Friteabc/ArtMinds-2/internal/domain/account"
	"github.com/Friteabc/ArtMinds-2/internal/domain/generation"
	"github.com/Friteabc/ArtMinds-2/internal/interfaces/httpserver/handlers"
	"github.com/Friteabc/ArtMinds-2/internal/interfaces/httpserver/routes"
	"github.com/Friteabc/ArtMinds-2/internal/utils/platformerrors"
)

// memAccountRepo is a minimal thread-safe account.Repository for tests.
type memAccountRepo struct {
	mu       sync.Mutex
	accounts map[string]account.Account
}

func newMemAccountRepo() *memAccountRepo {
	return &memAccountRepo{accounts: make(map[string]account.Account)}
}

func (r *memAccountRepo) seed(id string, credits float64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.accounts[id] = account.Account{ID: id, Credits: credits}
}

func (r *memAccountRepo) Get(ctx context.Context, id string) (*account.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	acc, ok := r.accounts[id]
	if !ok {
		return nil, nil
	}
	copied := acc
	return &copied, nil
}

func (r *memAccountRepo) Create(ctx context.Context, acc *account.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.accounts[acc.ID]; ok {
		return platformerrors.NewError(ctx, platformerrors.LayerRepository, platformerrors.ErrorTypeConflict, "account already exists", nil, "")
	}
	r.accounts[acc.ID] = *acc
	return nil
}

func (r *memAccountRepo) UpdateEmail(ctx context.Context, id, email string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	acc := r.accounts[id]
	acc.Email = email
	r.accounts[id] = acc
	return nil
}

func (r *memAccountRepo) AdjustBalance(ctx context.Context, id string, delta float64) (*account.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	acc, ok := r.accounts[id]
	if !ok {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerRepository, platformerrors.ErrorTypeNotFound, "account not found", nil, "")
	}
	acc.Credits += delta
	if acc.Credits < 0 {
		acc.Credits = 0
	}
	r.accounts[id] = acc
	copied := acc
	return &copied, nil
}

type stubGenerator struct {
	GenerateFunc func(ctx context.Context, prompt generation.ComposedPrompt) ([]byte, error)
}

func (s *stubGenerator) Generate(ctx context.Context, prompt generation.ComposedPrompt) ([]byte, error) {
	if s.GenerateFunc != nil {
		return s.GenerateFunc(ctx, prompt)
	}
	return []byte("image-bytes"), nil
}

type stubHost struct {
	UploadFunc func(ctx context.Context, data []byte) (*generation.HostedImage, error)
}

func (s *stubHost) Upload(ctx context.Context, data []byte) (*generation.HostedImage, error) {
	if s.UploadFunc != nil {
		return s.UploadFunc(ctx, data)
	}
	return &generation.HostedImage{URL: "https://img.example/abc"}, nil
}

type stubRecords struct {
	mu      sync.Mutex
	records []*generation.Record
}

func (s *stubRecords) Create(ctx context.Context, rec *generation.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = append(s.records, rec)
	return nil
}

func (s *stubRecords) ListByAccount(ctx context.Context, accountID string) ([]*generation.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*generation.Record
	for _, rec := range s.records {
		if rec.AccountID == accountID {
			out = append(out, rec)
		}
	}
	return out, nil
}

type testEnv struct {
	repo   *memAccountRepo
	gen    *stubGenerator
	host   *stubHost
	engine *gin.Engine
}

func newTestEnv() *testEnv {
	gin.SetMode(gin.TestMode)
	log := zerolog.Nop()

	repo := newMemAccountRepo()
	gen := &stubGenerator{}
	host := &stubHost{}

	accounts := account.NewService(repo, log)
	generations := generation.NewService(accounts, gen, host, &stubRecords{}, log)

	engine := gin.New()
	routes.Register(engine, handlers.NewProvider(accounts, generations, log))

	return &testEnv{repo: repo, gen: gen, host: host, engine: engine}
}
