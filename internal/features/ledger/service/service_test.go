package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	accountmodels "loyalty-raffle-backend/internal/features/account/models"
	accountrepo "loyalty-raffle-backend/internal/features/account/repository"
	"loyalty-raffle-backend/internal/features/ledger/models"
	"loyalty-raffle-backend/internal/features/ledger/repository"
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

// fakeLedgerRepo mirrors the real repository's contract: the balance mutation
// and the insert succeed or fail together, duplicates are detected by
// (account, action, reference).
type fakeLedgerRepo struct {
	balances map[string]int
	txs      []models.LedgerTransaction
	refs     map[string]string
}

func newFakeLedgerRepo(balances map[string]int) *fakeLedgerRepo {
	return &fakeLedgerRepo{
		balances: balances,
		refs:     make(map[string]string),
	}
}

func refKey(accountID, action, referenceID string) string {
	return strings.Join([]string{accountID, action, referenceID}, "|")
}

func (r *fakeLedgerRepo) BeginTx(ctx context.Context) (repository.Transaction, error) {
	return &fakeTx{}, nil
}

func (r *fakeLedgerRepo) AppendTx(ctx context.Context, tx repository.Transaction, t *models.LedgerTransaction) error {
	balance, ok := r.balances[t.AccountID]
	if !ok {
		return repository.ErrAccountNotFound
	}
	if t.ReferenceID != "" {
		if _, exists := r.refs[refKey(t.AccountID, t.Action, t.ReferenceID)]; exists {
			return repository.ErrDuplicateReference
		}
	}
	if balance+t.PointsDelta < 0 {
		return repository.ErrInsufficientBalance
	}

	r.balances[t.AccountID] = balance + t.PointsDelta
	r.txs = append(r.txs, *t)
	if t.ReferenceID != "" {
		r.refs[refKey(t.AccountID, t.Action, t.ReferenceID)] = t.ID
	}
	return nil
}

func (r *fakeLedgerRepo) FindByReference(ctx context.Context, accountID, action, referenceID string) (*models.LedgerTransaction, error) {
	id, ok := r.refs[refKey(accountID, action, referenceID)]
	if !ok {
		return nil, nil
	}
	for i := range r.txs {
		if r.txs[i].ID == id {
			return &r.txs[i], nil
		}
	}
	return nil, nil
}

func (r *fakeLedgerRepo) ListByAccount(ctx context.Context, accountID, kind string, limit, offset int) ([]models.LedgerTransaction, error) {
	var out []models.LedgerTransaction
	for i := len(r.txs) - 1; i >= 0; i-- {
		t := r.txs[i]
		if t.AccountID != accountID {
			continue
		}
		if kind != "" && t.Kind != kind {
			continue
		}
		out = append(out, t)
	}
	if offset >= len(out) {
		return nil, nil
	}
	out = out[offset:]
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *fakeLedgerRepo) MonthlyStats(ctx context.Context, accountID, period string) (*models.MonthlyStats, error) {
	stats := &models.MonthlyStats{}
	for _, t := range r.txs {
		if t.AccountID != accountID {
			continue
		}
		if t.PointsDelta > 0 {
			stats.Earned += t.PointsDelta
		} else {
			stats.Spent += -t.PointsDelta
		}
	}
	stats.Net = stats.Earned - stats.Spent
	return stats, nil
}

type fakeAccountRepo struct {
	repo *fakeLedgerRepo
}

func (r *fakeAccountRepo) CreateTx(ctx context.Context, tx repository.Transaction, account *accountmodels.Account) error {
	r.repo.balances[account.ID] = account.PointsBalance
	return nil
}

func (r *fakeAccountRepo) GetByID(ctx context.Context, id string) (*accountmodels.Account, error) {
	balance, ok := r.repo.balances[id]
	if !ok {
		return nil, accountrepo.ErrAccountNotFound
	}
	return &accountmodels.Account{ID: id, PointsBalance: balance}, nil
}

func (r *fakeAccountRepo) GetByUsername(ctx context.Context, username string) (*accountmodels.Account, error) {
	return nil, accountrepo.ErrAccountNotFound
}

func newTestLedgerService(balances map[string]int) (LedgerService, *fakeLedgerRepo) {
	repo := newFakeLedgerRepo(balances)
	return NewLedgerService(repo, &fakeAccountRepo{repo: repo}), repo
}

func TestLedgerService_EarnDefaultRate(t *testing.T) {
	svc, repo := newTestLedgerService(map[string]int{"acc-1": 0})
	ctx := context.Background()

	id, err := svc.Earn(ctx, "acc-1", 0, models.ActionCommunityPost, "Posted in community", "")
	require.NoError(t, err)
	assert.NotEmpty(t, id)
	assert.Equal(t, 30, repo.balances["acc-1"])
}

func TestLedgerService_EarnExplicitAmount(t *testing.T) {
	svc, repo := newTestLedgerService(map[string]int{"acc-1": 0})

	_, err := svc.Earn(context.Background(), "acc-1", 42, models.ActionPurchase, "Order points", "order-1")
	require.NoError(t, err)
	assert.Equal(t, 42, repo.balances["acc-1"])
}

func TestLedgerService_EarnUnknownAction(t *testing.T) {
	svc, repo := newTestLedgerService(map[string]int{"acc-1": 0})

	_, err := svc.Earn(context.Background(), "acc-1", 0, "free_money", "", "")
	assert.ErrorIs(t, err, ErrUnknownAction)
	assert.Empty(t, repo.txs)
}

func TestLedgerService_EarnAccountNotFound(t *testing.T) {
	svc, _ := newTestLedgerService(map[string]int{})

	_, err := svc.Earn(context.Background(), "ghost", 10, models.ActionPurchase, "", "")
	assert.ErrorIs(t, err, ErrAccountNotFound)
}

func TestLedgerService_RedeemInsufficientBalance(t *testing.T) {
	svc, repo := newTestLedgerService(map[string]int{"acc-1": 400})

	_, err := svc.Redeem(context.Background(), "acc-1", 500, models.ActionRewardRedemption, "", "red-1")
	require.Error(t, err)

	ib, ok := AsInsufficientBalance(err)
	require.True(t, ok)
	assert.Equal(t, 500, ib.Required)
	assert.Equal(t, 400, ib.Current)
	assert.Equal(t, 100, ib.Needed())

	// Nothing moved.
	assert.Equal(t, 400, repo.balances["acc-1"])
	assert.Empty(t, repo.txs)
}

func TestLedgerService_StoresSignedDeltas(t *testing.T) {
	svc, repo := newTestLedgerService(map[string]int{"acc-1": 0})
	ctx := context.Background()

	_, err := svc.Earn(ctx, "acc-1", 200, models.ActionPurchase, "", "order-1")
	require.NoError(t, err)
	_, err = svc.Redeem(ctx, "acc-1", 50, models.ActionRewardRedemption, "", "red-1")
	require.NoError(t, err)

	require.Len(t, repo.txs, 2)
	assert.Equal(t, models.KindEarn, repo.txs[0].Kind)
	assert.Equal(t, 200, repo.txs[0].PointsDelta)
	assert.Equal(t, models.KindRedeem, repo.txs[1].Kind)
	assert.Equal(t, -50, repo.txs[1].PointsDelta)
}

func TestLedgerService_BalanceConservation(t *testing.T) {
	svc, repo := newTestLedgerService(map[string]int{"acc-1": 0})
	ctx := context.Background()

	_, err := svc.Earn(ctx, "acc-1", 300, models.ActionPurchase, "", "order-1")
	require.NoError(t, err)
	_, err = svc.Earn(ctx, "acc-1", 0, models.ActionReferral, "", "ref-1")
	require.NoError(t, err)
	_, err = svc.Redeem(ctx, "acc-1", 100, models.ActionRaffleTickets, "", "raffle-1")
	require.NoError(t, err)

	sum := 0
	for _, tx := range repo.txs {
		sum += tx.PointsDelta
	}
	assert.Equal(t, sum, repo.balances["acc-1"])
	assert.Equal(t, 400, repo.balances["acc-1"])
}

func TestLedgerService_DuplicateReferenceIsIdempotent(t *testing.T) {
	svc, repo := newTestLedgerService(map[string]int{"acc-1": 0})
	ctx := context.Background()

	first, err := svc.Earn(ctx, "acc-1", 0, models.ActionWelcomeBonus, "Welcome!", "acc-1")
	require.NoError(t, err)
	assert.Equal(t, 100, repo.balances["acc-1"])

	// Replaying the same (action, reference) returns the original transaction
	// and awards nothing.
	second, err := svc.Earn(ctx, "acc-1", 0, models.ActionWelcomeBonus, "Welcome!", "acc-1")
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 100, repo.balances["acc-1"])
	assert.Len(t, repo.txs, 1)
}

func TestLedgerService_Summary(t *testing.T) {
	svc, _ := newTestLedgerService(map[string]int{"acc-1": 0})
	ctx := context.Background()

	_, err := svc.Earn(ctx, "acc-1", 200, models.ActionPurchase, "", "order-1")
	require.NoError(t, err)
	_, err = svc.Redeem(ctx, "acc-1", 50, models.ActionRewardRedemption, "", "red-1")
	require.NoError(t, err)

	summary, err := svc.Summary(ctx, "acc-1", "", 1, 20)
	require.NoError(t, err)
	assert.Equal(t, 150, summary.CurrentPoints)
	assert.Equal(t, 200, summary.MonthlyStats.Earned)
	assert.Equal(t, 50, summary.MonthlyStats.Spent)
	assert.Equal(t, 150, summary.MonthlyStats.Net)
	require.Len(t, summary.Transactions, 2)
	assert.Equal(t, models.KindRedeem, summary.Transactions[0].Kind)
}

func TestLedgerService_SummaryKindFilter(t *testing.T) {
	svc, _ := newTestLedgerService(map[string]int{"acc-1": 0})
	ctx := context.Background()

	_, err := svc.Earn(ctx, "acc-1", 200, models.ActionPurchase, "", "")
	require.NoError(t, err)
	_, err = svc.Redeem(ctx, "acc-1", 50, models.ActionRewardRedemption, "", "")
	require.NoError(t, err)

	summary, err := svc.Summary(ctx, "acc-1", models.KindEarn, 1, 20)
	require.NoError(t, err)
	require.Len(t, summary.Transactions, 1)
	assert.Equal(t, models.KindEarn, summary.Transactions[0].Kind)
}
