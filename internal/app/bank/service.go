package bank

import (
	"context"
	"fmt"
	"sync"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	domain "dailyapps/internal/domain/bank"
	"dailyapps/internal/validate"
)

type BankService interface {
	CreateCustomer(ctx context.Context, name, contactInfo string) (CustomerInfo, error)
	GetCustomer(ctx context.Context, customerID string) (CustomerInfo, error)
	OpenAccount(ctx context.Context, kind domain.Kind, number string, ownerIDs []string) (AccountInfo, error)
	GetAccount(ctx context.Context, number string) (AccountInfo, error)
	Deposit(ctx context.Context, number string, amount decimal.Decimal) (AccountInfo, error)
	Withdraw(ctx context.Context, number, actorID string, amount decimal.Decimal) (AccountInfo, error)
	Transfer(ctx context.Context, from, to, actorID string, amount decimal.Decimal) (AccountInfo, error)
	Transactions(ctx context.Context, number string) ([]domain.Transaction, error)
	TransactionSummary(ctx context.Context, number string, limit int) ([]domain.Transaction, error)
	CustomerHistory(ctx context.Context, customerID, number string) ([]domain.Transaction, error)
}

type CustomerInfo struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	ContactInfo    string   `json:"contact_info"`
	AccountNumbers []string `json:"accounts"`
}

type AccountInfo struct {
	Number  string          `json:"number"`
	Kind    domain.Kind     `json:"kind"`
	Owners  []string        `json:"owners"`
	Balance decimal.Decimal `json:"balance"`
}

type bankService struct {
	mu           sync.Mutex
	customers    map[string]*domain.Customer
	accounts     map[string]domain.Account
	summaryLimit int
	logger       *zap.Logger
}

func NewBankService(summaryLimit int, logger *zap.Logger) BankService {
	if summaryLimit <= 0 {
		summaryLimit = domain.DefaultSummaryLimit
	}
	return &bankService{
		customers:    make(map[string]*domain.Customer),
		accounts:     make(map[string]domain.Account),
		summaryLimit: summaryLimit,
		logger:       logger,
	}
}

func customerInfo(c *domain.Customer) CustomerInfo {
	numbers := []string{}
	for _, a := range c.Accounts() {
		numbers = append(numbers, a.Number())
	}
	return CustomerInfo{ID: c.ID, Name: c.Name, ContactInfo: c.ContactInfo, AccountNumbers: numbers}
}

func accountInfo(a domain.Account) AccountInfo {
	return AccountInfo{Number: a.Number(), Kind: a.Kind(), Owners: a.Owners(), Balance: a.Balance()}
}

func uniqueIDs(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

func (s *bankService) CreateCustomer(ctx context.Context, name, contactInfo string) (CustomerInfo, error) {
	c, err := domain.NewCustomer(name, contactInfo)
	if err != nil {
		return CustomerInfo{}, fmt.Errorf("failed to create customer: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.customers[c.ID] = c
	s.logger.Info("Customer created", zap.String("customer_id", c.ID))
	return customerInfo(c), nil
}

func (s *bankService) GetCustomer(ctx context.Context, customerID string) (CustomerInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, err := s.customer(customerID)
	if err != nil {
		return CustomerInfo{}, err
	}
	return customerInfo(c), nil
}

func (s *bankService) customer(id string) (*domain.Customer, error) {
	c, ok := s.customers[id]
	if !ok {
		return nil, fmt.Errorf("customer %s: %w", id, domain.ErrCustomerNotFound)
	}
	return c, nil
}

func (s *bankService) account(number string) (domain.Account, error) {
	a, ok := s.accounts[number]
	if !ok {
		return nil, fmt.Errorf("account %s: %w", number, domain.ErrAccountNotFound)
	}
	return a, nil
}

// OpenAccount creates an account owned by existing customers. An individual
// account takes exactly one owner; repeated owner ids count once.
func (s *bankService) OpenAccount(ctx context.Context, kind domain.Kind, number string, ownerIDs []string) (AccountInfo, error) {
	ownerIDs = uniqueIDs(ownerIDs)

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.accounts[number]; exists {
		return AccountInfo{}, fmt.Errorf("account %s: %w", number, domain.ErrAccountExists)
	}
	owners := make([]*domain.Customer, 0, len(ownerIDs))
	for _, id := range ownerIDs {
		c, err := s.customer(id)
		if err != nil {
			return AccountInfo{}, err
		}
		owners = append(owners, c)
	}

	var (
		acc domain.Account
		err error
	)
	switch kind {
	case domain.KindIndividual:
		if len(ownerIDs) != 1 {
			return AccountInfo{}, fmt.Errorf("individual account takes one owner, got %d: %w", len(ownerIDs), domain.ErrNoOwners)
		}
		acc, err = domain.NewIndividualAccount(number, ownerIDs[0])
	case domain.KindJoint:
		acc, err = domain.NewJointAccount(number, ownerIDs...)
	default:
		return AccountInfo{}, fmt.Errorf("account kind %q: %w", kind, &validate.ValidationError{Tag: "accountKind"})
	}
	if err != nil {
		s.logger.Warn("Failed to open account", zap.String("account_number", number), zap.Error(err))
		return AccountInfo{}, fmt.Errorf("failed to open account: %w", err)
	}

	for _, c := range owners {
		c.AddAccount(acc)
	}
	s.accounts[number] = acc
	s.logger.Info("Account opened",
		zap.String("account_number", number),
		zap.String("kind", string(kind)),
		zap.Strings("owners", ownerIDs))
	return accountInfo(acc), nil
}

func (s *bankService) GetAccount(ctx context.Context, number string) (AccountInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, err := s.account(number)
	if err != nil {
		return AccountInfo{}, err
	}
	return accountInfo(a), nil
}

func (s *bankService) Deposit(ctx context.Context, number string, amount decimal.Decimal) (AccountInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, err := s.account(number)
	if err != nil {
		return AccountInfo{}, err
	}
	if err := a.Deposit(amount); err != nil {
		s.logger.Warn("Deposit rejected", zap.String("account_number", number), zap.String("amount", amount.String()), zap.Error(err))
		return AccountInfo{}, fmt.Errorf("deposit to %s: %w", number, err)
	}
	s.logger.Info("Deposit completed", zap.String("account_number", number), zap.String("amount", amount.String()))
	return accountInfo(a), nil
}

func (s *bankService) Withdraw(ctx context.Context, number, actorID string, amount decimal.Decimal) (AccountInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, err := s.account(number)
	if err != nil {
		return AccountInfo{}, err
	}
	if err := a.Withdraw(amount, domain.Actor{ID: actorID}); err != nil {
		s.logger.Warn("Withdrawal rejected",
			zap.String("account_number", number),
			zap.String("actor_id", actorID),
			zap.String("amount", amount.String()),
			zap.Error(err))
		return AccountInfo{}, fmt.Errorf("withdraw from %s: %w", number, err)
	}
	s.logger.Info("Withdrawal completed", zap.String("account_number", number), zap.String("amount", amount.String()))
	return accountInfo(a), nil
}

// Transfer moves amount between two registered accounts and returns the
// source account afterwards.
func (s *bankService) Transfer(ctx context.Context, from, to, actorID string, amount decimal.Decimal) (AccountInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	src, err := s.account(from)
	if err != nil {
		return AccountInfo{}, err
	}
	dst, err := s.account(to)
	if err != nil {
		return AccountInfo{}, err
	}
	if err := src.Transfer(dst, amount, domain.Actor{ID: actorID}); err != nil {
		s.logger.Warn("Transfer rejected",
			zap.String("from", from),
			zap.String("to", to),
			zap.String("actor_id", actorID),
			zap.Error(err))
		return AccountInfo{}, fmt.Errorf("transfer %s -> %s: %w", from, to, err)
	}
	s.logger.Info("Transfer completed", zap.String("from", from), zap.String("to", to), zap.String("amount", amount.String()))
	return accountInfo(src), nil
}

func (s *bankService) Transactions(ctx context.Context, number string) ([]domain.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, err := s.account(number)
	if err != nil {
		return nil, err
	}
	return a.Transactions(), nil
}

// TransactionSummary returns the last limit records; a non-positive limit
// uses the configured default.
func (s *bankService) TransactionSummary(ctx context.Context, number string, limit int) ([]domain.Transaction, error) {
	if limit <= 0 {
		limit = s.summaryLimit
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	a, err := s.account(number)
	if err != nil {
		return nil, err
	}
	return a.TransactionSummary(limit), nil
}

func (s *bankService) CustomerHistory(ctx context.Context, customerID, number string) ([]domain.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, err := s.customer(customerID)
	if err != nil {
		return nil, err
	}
	return c.TransactionHistory(number)
}
