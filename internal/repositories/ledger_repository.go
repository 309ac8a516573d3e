package repositories

import (
	"context"
	"fmt"

	"passeio/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type ledgerRepository struct {
	db *gorm.DB
}

func NewLedgerRepository(db *gorm.DB) LedgerRepository {
	return &ledgerRepository{db: db}
}

func (r *ledgerRepository) Append(ctx context.Context, entry *models.Transaction) error {
	if err := r.db.WithContext(ctx).Create(entry).Error; err != nil {
		return fmt.Errorf("failed to append ledger entry: %w", err)
	}
	return nil
}

func (r *ledgerRepository) List(ctx context.Context, limit, offset int) ([]models.Transaction, error) {
	var entries []models.Transaction
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&entries).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list ledger entries: %w", err)
	}
	return entries, nil
}

func (r *ledgerRepository) ListByUser(ctx context.Context, userID string, limit, offset int) ([]models.Transaction, error) {
	var entries []models.Transaction
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&entries).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list user ledger entries: %w", err)
	}
	return entries, nil
}

func (r *ledgerRepository) ListByDriver(ctx context.Context, driverID string, limit, offset int) ([]models.Transaction, error) {
	var entries []models.Transaction
	err := r.db.WithContext(ctx).
		Where("driver_id = ?", driverID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&entries).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list driver ledger entries: %w", err)
	}
	return entries, nil
}

func (r *ledgerRepository) ListByReservation(ctx context.Context, reservationID string) ([]models.Transaction, error) {
	var entries []models.Transaction
	err := r.db.WithContext(ctx).
		Where("reservation_id = ?", reservationID).
		Order("created_at").
		Find(&entries).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list reservation ledger entries: %w", err)
	}
	return entries, nil
}

// SettlePending reclassifies escrowed PENDANT entries for the given
// reservations to CREDIT. This is the only ledger mutation in the system.
func (r *ledgerRepository) SettlePending(ctx context.Context, reservationIDs []string) error {
	if len(reservationIDs) == 0 {
		return nil
	}
	err := r.db.WithContext(ctx).Model(&models.Transaction{}).
		Where("type = ? AND reservation_id IN ?", models.TransactionTypePendant, reservationIDs).
		Update("type", models.TransactionTypeCredit).Error
	if err != nil {
		return fmt.Errorf("failed to settle pending entries: %w", err)
	}
	return nil
}

func (r *ledgerRepository) SumCredits(ctx context.Context, reservationIDs []string) (decimal.Decimal, error) {
	if len(reservationIDs) == 0 {
		return decimal.Zero, nil
	}
	var total decimal.Decimal
	err := r.db.WithContext(ctx).Model(&models.Transaction{}).
		Where("type = ? AND reservation_id IN ?", models.TransactionTypeCredit, reservationIDs).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&total).Error
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum credited entries: %w", err)
	}
	return total, nil
}
