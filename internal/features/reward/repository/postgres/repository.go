package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	platform "loyalty-raffle-backend/internal/platform/postgres"

	ledgerrepo "loyalty-raffle-backend/internal/features/ledger/repository"
	"loyalty-raffle-backend/internal/features/reward/models"
	"loyalty-raffle-backend/internal/features/reward/repository"
)

type postgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(client *platform.Client) repository.RewardRepository {
	return &postgresRepository{db: client.GetDB()}
}

func (r *postgresRepository) CreateRedemptionTx(ctx context.Context, tx ledgerrepo.Transaction, redemption *models.RewardRedemption) error {
	ptx, ok := tx.(*platform.Transaction)
	if !ok {
		return fmt.Errorf("unexpected transaction type %T", tx)
	}

	var address []byte
	if redemption.ShippingAddress != nil {
		var err error
		address, err = json.Marshal(redemption.ShippingAddress)
		if err != nil {
			return fmt.Errorf("failed to marshal shipping address: %w", err)
		}
	}

	query := `
		INSERT INTO reward_redemptions (id, account_id, reward_id, reward_name, points_cost,
			reward_type, status, shipping_address, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $9)
	`
	_, err := ptx.Tx().ExecContext(ctx, query,
		redemption.ID, redemption.AccountID, redemption.RewardID, redemption.RewardName,
		redemption.PointsCost, redemption.RewardType, redemption.Status, address, redemption.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create redemption: %w", err)
	}

	return nil
}

func (r *postgresRepository) UpdateFulfillment(ctx context.Context, redemptionID, status string, data map[string]interface{}) error {
	payload, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to marshal fulfillment data: %w", err)
	}

	query := `
		UPDATE reward_redemptions
		SET status = $2, fulfillment_data = $3, updated_at = NOW()
		WHERE id = $1
	`
	res, err := r.db.ExecContext(ctx, query, redemptionID, status, payload)
	if err != nil {
		return fmt.Errorf("failed to update fulfillment: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return repository.ErrRedemptionNotFound
	}

	return nil
}

func (r *postgresRepository) CreateDiscountCode(ctx context.Context, code string, value float64, validUntil string) error {
	query := `
		INSERT INTO discount_codes (code, discount_type, discount_value, usage_limit, ends_at, active, created_at)
		VALUES ($1, 'fixed_amount', $2, 1, $3::timestamptz, true, NOW())
	`
	if _, err := r.db.ExecContext(ctx, query, code, value, validUntil); err != nil {
		return fmt.Errorf("failed to create discount code: %w", err)
	}

	return nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id string) (*models.RewardRedemption, error) {
	query := selectRedemption + ` WHERE id = $1`
	row := r.db.QueryRowContext(ctx, query, id)

	redemption, err := scanRedemption(row.Scan)
	if err == sql.ErrNoRows {
		return nil, repository.ErrRedemptionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get redemption: %w", err)
	}

	return redemption, nil
}

func (r *postgresRepository) ListByAccount(ctx context.Context, accountID string, limit, offset int) ([]models.RewardRedemption, error) {
	query := selectRedemption + `
		WHERE account_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2 OFFSET $3
	`
	rows, err := r.db.QueryContext(ctx, query, accountID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list redemptions: %w", err)
	}
	defer rows.Close()

	var redemptions []models.RewardRedemption
	for rows.Next() {
		redemption, err := scanRedemption(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("failed to scan redemption: %w", err)
		}
		redemptions = append(redemptions, *redemption)
	}

	return redemptions, rows.Err()
}

const selectRedemption = `
	SELECT id, account_id, reward_id, reward_name, points_cost, reward_type, status,
		shipping_address, fulfillment_data, created_at, updated_at
	FROM reward_redemptions`

func scanRedemption(scan func(dest ...interface{}) error) (*models.RewardRedemption, error) {
	var redemption models.RewardRedemption
	var address, fulfillment []byte

	err := scan(&redemption.ID, &redemption.AccountID, &redemption.RewardID, &redemption.RewardName,
		&redemption.PointsCost, &redemption.RewardType, &redemption.Status,
		&address, &fulfillment, &redemption.CreatedAt, &redemption.UpdatedAt)
	if err != nil {
		return nil, err
	}

	if len(address) > 0 {
		if err := json.Unmarshal(address, &redemption.ShippingAddress); err != nil {
			return nil, fmt.Errorf("failed to unmarshal shipping address: %w", err)
		}
	}
	if len(fulfillment) > 0 {
		if err := json.Unmarshal(fulfillment, &redemption.FulfillmentData); err != nil {
			return nil, fmt.Errorf("failed to unmarshal fulfillment data: %w", err)
		}
	}

	return &redemption, nil
}
