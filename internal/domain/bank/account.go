package bank

import (
	"fmt"
	"slices"
	"time"

	"github.com/shopspring/decimal"

	"dailyapps/internal/validate"
)

type Kind string

const (
	KindIndividual Kind = "individual"
	KindJoint      Kind = "joint"
)

// Actor is the identity a mutating operation is performed on behalf of.
type Actor struct {
	ID string
}

// Account is implemented only by IndividualAccount and JointAccount.
type Account interface {
	Number() string
	Kind() Kind
	Owners() []string
	Balance() decimal.Decimal
	Deposit(amount decimal.Decimal) error
	Withdraw(amount decimal.Decimal, actor Actor) error
	Transfer(target Account, amount decimal.Decimal, actor Actor) error
	Transactions() []Transaction
	TransactionSummary(limit int) []Transaction
	book() *ledger
}

type account struct {
	number string
	ledger ledger
}

func newAccount(number string) (account, error) {
	n, err := validate.Check(validate.TagAccountNumber, number)
	if err != nil {
		return account{}, err
	}
	return account{number: n}, nil
}

func (a *account) Number() string { return a.number }

func (a *account) Balance() decimal.Decimal { return a.ledger.balance }

func (a *account) Transactions() []Transaction { return a.ledger.all() }

// TransactionSummary returns the most recent limit records, oldest first.
func (a *account) TransactionSummary(limit int) []Transaction { return a.ledger.last(limit) }

func (a *account) book() *ledger { return &a.ledger }

func (a *account) Deposit(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return fmt.Errorf("deposit %s to %s: %w", amount, a.number, ErrInvalidTransaction)
	}
	a.ledger.credit(amount)
	a.ledger.record(Transaction{
		Type:          TransactionDeposit,
		Amount:        amount,
		AccountNumber: a.number,
		Time:          time.Now(),
	})
	return nil
}

func (a *account) withdraw(amount decimal.Decimal) error {
	if err := a.ledger.checkDebit(amount); err != nil {
		return fmt.Errorf("withdraw %s from %s: %w", amount, a.number, err)
	}
	a.ledger.debit(amount)
	a.ledger.record(Transaction{
		Type:          TransactionWithdraw,
		Amount:        amount,
		AccountNumber: a.number,
		Time:          time.Now(),
	})
	return nil
}

func (a *account) checkTransfer(target Account, amount decimal.Decimal) error {
	if target == nil {
		return fmt.Errorf("transfer from %s: %w", a.number, ErrAccountNotFound)
	}
	if target.Number() == a.number {
		return fmt.Errorf("transfer from %s: %w", a.number, ErrSameAccount)
	}
	if err := a.ledger.checkDebit(amount); err != nil {
		return fmt.Errorf("transfer %s from %s: %w", amount, a.number, err)
	}
	return nil
}

// IndividualAccount accepts withdrawals and transfers from its single owner.
type IndividualAccount struct {
	account
	owner string
}

func NewIndividualAccount(number, ownerID string) (*IndividualAccount, error) {
	base, err := newAccount(number)
	if err != nil {
		return nil, err
	}
	return &IndividualAccount{account: base, owner: ownerID}, nil
}

func (a *IndividualAccount) Kind() Kind { return KindIndividual }

func (a *IndividualAccount) Owners() []string { return []string{a.owner} }

func (a *IndividualAccount) authorize(actor Actor) error {
	if actor.ID == "" || actor.ID != a.owner {
		return fmt.Errorf("account %s: %w", a.number, ErrUnauthorized)
	}
	return nil
}

func (a *IndividualAccount) Withdraw(amount decimal.Decimal, actor Actor) error {
	if err := a.authorize(actor); err != nil {
		return err
	}
	return a.withdraw(amount)
}

// Transfer moves amount to target and records the same transaction on both
// ledgers.
func (a *IndividualAccount) Transfer(target Account, amount decimal.Decimal, actor Actor) error {
	if err := a.authorize(actor); err != nil {
		return err
	}
	if err := a.checkTransfer(target, amount); err != nil {
		return err
	}

	a.ledger.debit(amount)
	target.book().credit(amount)

	tx := Transaction{
		Type:          TransactionTransfer,
		Amount:        amount,
		AccountNumber: a.number,
		FromAccount:   a.number,
		ToAccount:     target.Number(),
		Time:          time.Now(),
	}
	a.ledger.record(tx)
	target.book().record(tx)
	return nil
}

// JointAccount accepts withdrawals and transfers from any listed owner.
type JointAccount struct {
	account
	owners []string
}

func NewJointAccount(number string, ownerIDs ...string) (*JointAccount, error) {
	base, err := newAccount(number)
	if err != nil {
		return nil, err
	}
	if len(ownerIDs) == 0 {
		return nil, ErrNoOwners
	}
	return &JointAccount{account: base, owners: slices.Clone(ownerIDs)}, nil
}

func (a *JointAccount) Kind() Kind { return KindJoint }

func (a *JointAccount) Owners() []string { return slices.Clone(a.owners) }

func (a *JointAccount) authorize(actor Actor) error {
	if actor.ID == "" || !slices.Contains(a.owners, actor.ID) {
		return fmt.Errorf("joint account %s: %w", a.number, ErrUnauthorized)
	}
	return nil
}

func (a *JointAccount) Withdraw(amount decimal.Decimal, actor Actor) error {
	if err := a.authorize(actor); err != nil {
		return err
	}
	return a.withdraw(amount)
}

// Transfer credits target but records the transaction on the source ledger
// only; the target's history does not show incoming joint transfers.
func (a *JointAccount) Transfer(target Account, amount decimal.Decimal, actor Actor) error {
	if err := a.authorize(actor); err != nil {
		return err
	}
	if err := a.checkTransfer(target, amount); err != nil {
		return err
	}

	a.ledger.debit(amount)
	target.book().credit(amount)
	a.ledger.record(Transaction{
		Type:          TransactionTransfer,
		Amount:        amount,
		AccountNumber: a.number,
		FromAccount:   a.number,
		ToAccount:     target.Number(),
		Time:          time.Now(),
	})
	return nil
}
