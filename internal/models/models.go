package models

import (
	"math"
	"time"
)

type TransactionType string

const (
	TransactionCredit TransactionType = "credit"
	TransactionDebit  TransactionType = "debit"
)

func (t TransactionType) Valid() bool {
	return t == TransactionCredit || t == TransactionDebit
}

// Sign returns the multiplier applied to an amount of this type.
func (t TransactionType) Sign() int64 {
	if t == TransactionDebit {
		return -1
	}
	return 1
}

type GoalType string

const (
	GoalSavings       GoalType = "savings"
	GoalDebtPayoff    GoalType = "debt_payoff"
	GoalPurchase      GoalType = "purchase"
	GoalEmergencyFund GoalType = "emergency_fund"
)

func (t GoalType) Valid() bool {
	switch t {
	case GoalSavings, GoalDebtPayoff, GoalPurchase, GoalEmergencyFund:
		return true
	}
	return false
}

type GoalLength string

const (
	GoalShortTerm  GoalLength = "short_term"
	GoalMediumTerm GoalLength = "medium_term"
	GoalLongTerm   GoalLength = "long_term"
)

func (l GoalLength) Valid() bool {
	switch l {
	case GoalShortTerm, GoalMediumTerm, GoalLongTerm:
		return true
	}
	return false
}

type User struct {
	ID           int64     `db:"id" json:"id"`
	Name         string    `db:"name" json:"name"`
	Balance      int64     `db:"-" json:"balance"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"-"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}

type Account struct {
	ID        int64     `db:"id" json:"id"`
	UserID    int64     `db:"user_id" json:"user_id"`
	Name      string    `db:"name" json:"name"`
	Balance   int64     `db:"balance" json:"balance"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

type Transaction struct {
	ID        int64           `db:"id" json:"id"`
	AccountID int64           `db:"account_id" json:"account_id"`
	Amount    int64           `db:"amount" json:"amount"`
	Type      TransactionType `db:"type" json:"type"`
	CreatedAt time.Time       `db:"created_at" json:"created_at"`
}

// Delta is the signed change the transaction applies to its account.
func (t Transaction) Delta() int64 {
	return t.Type.Sign() * t.Amount
}

// AddDelta returns balance+delta. ok is false when the sum does not fit in
// an int64.
func AddDelta(balance, delta int64) (sum int64, ok bool) {
	if (delta > 0 && balance > math.MaxInt64-delta) || (delta < 0 && balance < math.MinInt64-delta) {
		return 0, false
	}
	return balance + delta, true
}

// Adjustment returns the transaction that moves an account from current to
// target. A zero Amount means the balances already match. ok is false when
// the difference cannot be expressed as a positive int64 amount.
func Adjustment(accountID, current, target int64) (txn Transaction, ok bool) {
	if (current < 0 && target > math.MaxInt64+current) || (current > 0 && target < math.MinInt64+current) {
		return Transaction{}, false
	}
	delta := target - current
	switch {
	case delta == math.MinInt64:
		return Transaction{}, false
	case delta < 0:
		return Transaction{AccountID: accountID, Amount: -delta, Type: TransactionDebit}, true
	default:
		return Transaction{AccountID: accountID, Amount: delta, Type: TransactionCredit}, true
	}
}

type Goal struct {
	ID          int64      `db:"id" json:"id"`
	UserID      int64      `db:"user_id" json:"user_id"`
	Name        string     `db:"name" json:"name"`
	Description *string    `db:"description" json:"description,omitempty"`
	Type        GoalType   `db:"goal_type" json:"type,omitempty"`
	Length      GoalLength `db:"goal_length" json:"length,omitempty"`
}
