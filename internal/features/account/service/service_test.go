package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"loyalty-raffle-backend/internal/features/account/models"
	"loyalty-raffle-backend/internal/features/account/repository"
	ledgermodels "loyalty-raffle-backend/internal/features/ledger/models"
	ledgerrepo "loyalty-raffle-backend/internal/features/ledger/repository"
)

type fakeTx struct {
	committed  bool
	rolledBack bool
}

func (t *fakeTx) Commit() error {
	t.committed = true
	return nil
}

func (t *fakeTx) Rollback() error {
	if !t.committed {
		t.rolledBack = true
	}
	return nil
}

type fakeAccountRepo struct {
	accounts map[string]*models.Account
	lastTx   ledgerrepo.Transaction
}

func (r *fakeAccountRepo) CreateTx(ctx context.Context, tx ledgerrepo.Transaction, account *models.Account) error {
	r.lastTx = tx
	for _, existing := range r.accounts {
		if existing.Username == account.Username || existing.Email == account.Email {
			return repository.ErrAccountExists
		}
	}
	copied := *account
	r.accounts[account.ID] = &copied
	return nil
}

func (r *fakeAccountRepo) GetByID(ctx context.Context, id string) (*models.Account, error) {
	account, ok := r.accounts[id]
	if !ok {
		return nil, repository.ErrAccountNotFound
	}
	return account, nil
}

func (r *fakeAccountRepo) GetByUsername(ctx context.Context, username string) (*models.Account, error) {
	for _, account := range r.accounts {
		if account.Username == username {
			return account, nil
		}
	}
	return nil, repository.ErrAccountNotFound
}

// fakeWelcomeLedger resolves default point rates like the real service and
// credits the balance directly on the stored account.
type fakeWelcomeLedger struct {
	repo    *fakeAccountRepo
	earns   []string
	lastTx  ledgerrepo.Transaction
	earnErr error
}

func (f *fakeWelcomeLedger) Earn(ctx context.Context, accountID string, amount int, action, description, referenceID string) (string, error) {
	if f.earnErr != nil {
		return "", f.earnErr
	}
	if amount == 0 {
		amount = ledgermodels.PointRates[action]
	}
	if account, ok := f.repo.accounts[accountID]; ok {
		account.PointsBalance += amount
	}
	f.earns = append(f.earns, action)
	return "tx-1", nil
}

func (f *fakeWelcomeLedger) Redeem(ctx context.Context, accountID string, amount int, action, description, referenceID string) (string, error) {
	return "", nil
}

func (f *fakeWelcomeLedger) EarnTx(ctx context.Context, tx ledgerrepo.Transaction, accountID string, amount int, action, description, referenceID string) (string, error) {
	f.lastTx = tx
	return f.Earn(ctx, accountID, amount, action, description, referenceID)
}

func (f *fakeWelcomeLedger) RedeemTx(ctx context.Context, tx ledgerrepo.Transaction, accountID string, amount int, action, description, referenceID string) (string, error) {
	return "", nil
}

func (f *fakeWelcomeLedger) BeginTx(ctx context.Context) (ledgerrepo.Transaction, error) {
	return &fakeTx{}, nil
}

func (f *fakeWelcomeLedger) Summary(ctx context.Context, accountID, kind string, page, limit int) (*ledgermodels.PointsSummary, error) {
	return &ledgermodels.PointsSummary{}, nil
}

func newTestAccountService() (AccountService, *fakeAccountRepo, *fakeWelcomeLedger) {
	repo := &fakeAccountRepo{accounts: make(map[string]*models.Account)}
	ledger := &fakeWelcomeLedger{repo: repo}
	return NewAccountService(repo, ledger), repo, ledger
}

func TestAccountService_CreateAwardsWelcomeBonus(t *testing.T) {
	svc, _, ledger := newTestAccountService()

	account, err := svc.Create(context.Background(), &models.AccountCreate{
		Username: "mina",
		Email:    "mina@example.com",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, account.ID)
	assert.Equal(t, "mina", account.Username)
	assert.Equal(t, 100, account.PointsBalance)
	assert.Equal(t, "Bronze", account.Tier.Tier)
	assert.Equal(t, []string{ledgermodels.ActionWelcomeBonus}, ledger.earns)
}

func TestAccountService_CreateInsertAndBonusShareTransaction(t *testing.T) {
	svc, repo, ledger := newTestAccountService()

	_, err := svc.Create(context.Background(), &models.AccountCreate{
		Username: "mina",
		Email:    "mina@example.com",
	})
	require.NoError(t, err)

	require.NotNil(t, repo.lastTx)
	assert.Same(t, repo.lastTx, ledger.lastTx)

	tx, ok := repo.lastTx.(*fakeTx)
	require.True(t, ok)
	assert.True(t, tx.committed)
	assert.False(t, tx.rolledBack)
}

func TestAccountService_CreateBonusFailureRollsBack(t *testing.T) {
	svc, repo, ledger := newTestAccountService()
	ledger.earnErr = errors.New("ledger unavailable")

	_, err := svc.Create(context.Background(), &models.AccountCreate{
		Username: "mina",
		Email:    "mina@example.com",
	})
	require.Error(t, err)

	tx, ok := repo.lastTx.(*fakeTx)
	require.True(t, ok)
	assert.False(t, tx.committed)
	assert.True(t, tx.rolledBack)
}

func TestAccountService_CreateDuplicate(t *testing.T) {
	svc, _, ledger := newTestAccountService()
	ctx := context.Background()

	_, err := svc.Create(ctx, &models.AccountCreate{Username: "mina", Email: "mina@example.com"})
	require.NoError(t, err)

	_, err = svc.Create(ctx, &models.AccountCreate{Username: "mina", Email: "other@example.com"})
	assert.ErrorIs(t, err, ErrAccountExists)

	// No second welcome bonus.
	assert.Len(t, ledger.earns, 1)
}

func TestAccountService_Get(t *testing.T) {
	svc, repo, _ := newTestAccountService()

	repo.accounts["acc-1"] = &models.Account{
		ID:            "acc-1",
		Username:      "jin",
		PointsBalance: 3200,
	}

	account, err := svc.Get(context.Background(), "acc-1")
	require.NoError(t, err)
	assert.Equal(t, "Gold", account.Tier.Tier)
	assert.Equal(t, 3200, account.PointsBalance)
}

func TestAccountService_GetNotFound(t *testing.T) {
	svc, _, _ := newTestAccountService()

	_, err := svc.Get(context.Background(), "ghost")
	assert.ErrorIs(t, err, ErrAccountNotFound)
}
