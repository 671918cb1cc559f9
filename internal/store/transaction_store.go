package store

import (
	"context"

	"vibewealth/internal/db"
	"vibewealth/internal/models"

	"github.com/jmoiron/sqlx"
)

type TransactionStore struct {
	db       DB
	txRunner db.TxRunner
}

func NewTransactionStore(database DB, txRunner db.TxRunner) *TransactionStore {
	return &TransactionStore{db: database, txRunner: txRunner}
}

// Record applies the transaction's signed delta to its account and inserts
// the transaction in one database transaction.
func (s *TransactionStore) Record(ctx context.Context, txn models.Transaction) (models.Transaction, models.Account, error) {
	var (
		recorded models.Transaction
		account  models.Account
	)
	err := s.txRunner.WithTx(ctx, func(tx *sqlx.Tx) error {
		var err error
		recorded, account, err = s.record(ctx, tx, txn)
		return err
	})
	if err != nil {
		return models.Transaction{}, models.Account{}, translate(err)
	}
	return recorded, account, nil
}

// Adjust locks the account row, computes the difference to target and
// records it as a credit or debit inside the same database transaction.
// When the balance already equals target nothing is inserted and the
// returned transaction is zero.
func (s *TransactionStore) Adjust(ctx context.Context, accountID, target int64) (models.Transaction, models.Account, error) {
	var (
		recorded models.Transaction
		account  models.Account
	)
	err := s.txRunner.WithTx(ctx, func(tx *sqlx.Tx) error {
		var err error
		recorded, account, err = s.adjust(ctx, tx, accountID, target)
		return err
	})
	if err != nil {
		return models.Transaction{}, models.Account{}, translate(err)
	}
	return recorded, account, nil
}

func (s *TransactionStore) adjust(ctx context.Context, tx Tx, accountID, target int64) (models.Transaction, models.Account, error) {
	var account models.Account
	if err := tx.GetContext(ctx, &account, `
		SELECT id, user_id, name, balance, created_at
		FROM accounts
		WHERE id = $1
		FOR UPDATE
	`, accountID); err != nil {
		return models.Transaction{}, models.Account{}, err
	}
	adjustment, ok := models.Adjustment(accountID, account.Balance, target)
	if !ok {
		return models.Transaction{}, models.Account{}, ErrOutOfRange
	}
	if adjustment.Amount == 0 {
		return models.Transaction{}, account, nil
	}
	return s.record(ctx, tx, adjustment)
}

func (s *TransactionStore) record(ctx context.Context, tx Tx, txn models.Transaction) (models.Transaction, models.Account, error) {
	var account models.Account
	if err := tx.GetContext(ctx, &account, `
		UPDATE accounts
		SET balance = balance + $1
		WHERE id = $2
		RETURNING id, user_id, name, balance, created_at
	`, txn.Delta(), txn.AccountID); err != nil {
		return models.Transaction{}, models.Account{}, err
	}
	if txn.ID > 0 {
		if err := tx.GetContext(ctx, &txn, `
			INSERT INTO transactions (id, account_id, amount, type)
			VALUES ($1, $2, $3, $4)
			RETURNING id, account_id, amount, type, created_at
		`, txn.ID, txn.AccountID, txn.Amount, txn.Type); err != nil {
			return models.Transaction{}, models.Account{}, err
		}
		if err := syncSequence(ctx, tx, "transactions"); err != nil {
			return models.Transaction{}, models.Account{}, err
		}
		return txn, account, nil
	}
	if err := tx.GetContext(ctx, &txn, `
		INSERT INTO transactions (account_id, amount, type)
		VALUES ($1, $2, $3)
		RETURNING id, account_id, amount, type, created_at
	`, txn.AccountID, txn.Amount, txn.Type); err != nil {
		return models.Transaction{}, models.Account{}, err
	}
	return txn, account, nil
}

func (s *TransactionStore) ListByUser(ctx context.Context, userID int64) ([]models.Transaction, error) {
	rows := []models.Transaction{}
	err := s.db.SelectContext(ctx, &rows, `
		SELECT t.id, t.account_id, t.amount, t.type, t.created_at
		FROM transactions t
		JOIN accounts a ON a.id = t.account_id
		WHERE a.user_id = $1
		ORDER BY t.created_at, t.id
	`, userID)
	if err != nil {
		return nil, translate(err)
	}
	return rows, nil
}

// syncSequence moves a serial column's sequence past caller-chosen ids.
func syncSequence(ctx context.Context, tx Execer, table string) error {
	_, err := tx.ExecContext(ctx, `
		SELECT setval(pg_get_serial_sequence('`+table+`', 'id'), GREATEST((SELECT MAX(id) FROM `+table+`), 1))
	`)
	return err
}
