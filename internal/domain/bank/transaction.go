package bank

import (
	"time"

	"github.com/shopspring/decimal"
)

type TransactionType string

const (
	TransactionDeposit  TransactionType = "deposit"
	TransactionWithdraw TransactionType = "withdraw"
	TransactionTransfer TransactionType = "transfer"
)

// Transaction is an immutable ledger record.
type Transaction struct {
	Type          TransactionType `json:"type"`
	Amount        decimal.Decimal `json:"amount"`
	AccountNumber string          `json:"account_number"`
	FromAccount   string          `json:"from_account,omitempty"`
	ToAccount     string          `json:"to_account,omitempty"`
	Time          time.Time       `json:"time"`
}

const DefaultSummaryLimit = 10

type ledger struct {
	balance      decimal.Decimal
	transactions []Transaction
}

func (l *ledger) credit(amount decimal.Decimal) {
	l.balance = l.balance.Add(amount)
}

func (l *ledger) debit(amount decimal.Decimal) {
	l.balance = l.balance.Sub(amount)
}

func (l *ledger) record(tx Transaction) {
	l.transactions = append(l.transactions, tx)
}

func (l *ledger) all() []Transaction {
	out := make([]Transaction, len(l.transactions))
	copy(out, l.transactions)
	return out
}

func (l *ledger) last(limit int) []Transaction {
	if limit <= 0 {
		limit = DefaultSummaryLimit
	}
	all := l.all()
	if len(all) <= limit {
		return all
	}
	return all[len(all)-limit:]
}

// checkDebit runs the amount guards shared by withdraw and transfer.
func (l *ledger) checkDebit(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return ErrInvalidTransaction
	}
	if amount.GreaterThan(l.balance) {
		return ErrInsufficientFunds
	}
	return nil
}
