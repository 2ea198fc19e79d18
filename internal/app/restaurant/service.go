package restaurant

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	domain "dailyapps/internal/domain/restaurant"
	"dailyapps/internal/validate"
)

type RestaurantService interface {
	AddDish(ctx context.Context, in DishInput) (DishInfo, error)
	RemoveDish(ctx context.Context, category domain.Category, name string) error
	Menu(ctx context.Context) (MenuInfo, error)
	AdjustPrice(ctx context.Context, category domain.Category, name string, percent decimal.Decimal) (DishInfo, error)
	ApplyDemandPricing(ctx context.Context) ([]string, error)
	CreateCustomer(ctx context.Context, name, contactInfo string) (CustomerInfo, error)
	PlaceOrder(ctx context.Context, customerID string, dishes []string) (OrderInfo, error)
	Orders(ctx context.Context, customerID string) ([]OrderInfo, error)
}

// DishInput describes a new dish. PrepMinutes applies to entrees only.
type DishInput struct {
	Name        string          `json:"name"`
	Category    domain.Category `json:"category"`
	Price       decimal.Decimal `json:"price"`
	Vegan       bool            `json:"vegan,omitempty"`
	PrepMinutes int             `json:"prep_minutes,omitempty"`
}

type DishInfo struct {
	Name        string          `json:"name"`
	Category    domain.Category `json:"category"`
	Price       decimal.Decimal `json:"price"`
	Vegan       bool            `json:"vegan,omitempty"`
	PrepMinutes int             `json:"prep_minutes,omitempty"`
	Pending     bool            `json:"pending,omitempty"`
}

type MenuInfo struct {
	Appetizers     []DishInfo `json:"appetizers"`
	Entrees        []DishInfo `json:"entrees"`
	Desserts       []DishInfo `json:"desserts"`
	PendingEntrees int        `json:"pending_entrees"`
}

type CustomerInfo struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	ContactInfo string `json:"contact_info"`
}

type OrderInfo struct {
	ID         string          `json:"id"`
	CustomerID string          `json:"customer_id"`
	Lines      []domain.Line   `json:"lines"`
	Total      decimal.Decimal `json:"total"`
	CreatedAt  time.Time       `json:"created_at"`
}

type restaurantService struct {
	mu         sync.Mutex
	appetizers *domain.AppetizersMenu
	entrees    *domain.EntreesMenu
	desserts   *domain.DessertsMenu
	customers  map[string]*domain.Customer
	logger     *zap.Logger
}

// NewRestaurantService creates empty menus. prepDelayScale converts an
// entree's prep time into the delay before it is listed.
func NewRestaurantService(prepDelayScale float64, logger *zap.Logger) RestaurantService {
	return &restaurantService{
		appetizers: domain.NewAppetizersMenu(),
		entrees:    domain.NewEntreesMenu(domain.WithPrepDelayScale(prepDelayScale)),
		desserts:   domain.NewDessertsMenu(),
		customers:  make(map[string]*domain.Customer),
		logger:     logger,
	}
}

func dishInfo(l domain.Listing) DishInfo {
	return DishInfo{
		Name:        l.Name,
		Category:    l.Category,
		Price:       l.Price,
		Vegan:       l.Vegan,
		PrepMinutes: int(l.PrepTime / time.Minute),
	}
}

func dishInfos(ls []domain.Listing) []DishInfo {
	out := make([]DishInfo, 0, len(ls))
	for _, l := range ls {
		out = append(out, dishInfo(l))
	}
	return out
}

func orderInfo(o *domain.Order) OrderInfo {
	return OrderInfo{ID: o.ID, CustomerID: o.CustomerID, Lines: o.Lines(), Total: o.Total(), CreatedAt: o.CreatedAt}
}

func (s *restaurantService) menus() []domain.Menu {
	return []domain.Menu{s.appetizers, s.entrees, s.desserts}
}

func (s *restaurantService) menu(category domain.Category) (domain.Menu, error) {
	for _, m := range s.menus() {
		if m.Category() == category {
			return m, nil
		}
	}
	return nil, fmt.Errorf("category %q: %w", category, domain.ErrCategoryMismatch)
}

func (s *restaurantService) AddDish(ctx context.Context, in DishInput) (DishInfo, error) {
	var (
		d   *domain.Dish
		err error
	)
	switch in.Category {
	case domain.CategoryAppetizer:
		d, err = domain.NewAppetizer(in.Name, in.Price, in.Vegan)
	case domain.CategoryEntree:
		d, err = domain.NewEntree(in.Name, in.Price, time.Duration(in.PrepMinutes)*time.Minute)
	case domain.CategoryDessert:
		d, err = domain.NewDessert(in.Name, in.Price)
	default:
		err = &validate.ValidationError{Tag: "category"}
	}
	if err != nil {
		return DishInfo{}, fmt.Errorf("failed to create dish: %w", err)
	}
	info := DishInfo{
		Name:        d.Name,
		Category:    d.Category,
		Price:       d.Price(),
		Vegan:       d.Vegan,
		PrepMinutes: int(d.PrepTime / time.Minute),
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	m, err := s.menu(d.Category)
	if err != nil {
		return DishInfo{}, err
	}
	if err := m.AddDish(d); err != nil {
		s.logger.Warn("Dish rejected", zap.String("dish", d.Name), zap.String("category", string(d.Category)), zap.Error(err))
		return DishInfo{}, err
	}

	info.Pending = d.Category == domain.CategoryEntree
	s.logger.Info("Dish added",
		zap.String("dish", d.Name),
		zap.String("category", string(d.Category)),
		zap.Bool("pending", info.Pending))
	return info, nil
}

func (s *restaurantService) RemoveDish(ctx context.Context, category domain.Category, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, err := s.menu(category)
	if err != nil {
		return err
	}
	if err := m.RemoveDish(name); err != nil {
		return err
	}
	s.logger.Info("Dish removed", zap.String("dish", name), zap.String("category", string(category)))
	return nil
}

func (s *restaurantService) Menu(ctx context.Context) (MenuInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return MenuInfo{
		Appetizers:     dishInfos(s.appetizers.Listings()),
		Entrees:        dishInfos(s.entrees.Listings()),
		Desserts:       dishInfos(s.desserts.Listings()),
		PendingEntrees: s.entrees.Pending(),
	}, nil
}

// AdjustPrice raises the price for a positive percent and lowers it for a
// negative one.
func (s *restaurantService) AdjustPrice(ctx context.Context, category domain.Category, name string, percent decimal.Decimal) (DishInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, err := s.menu(category)
	if err != nil {
		return DishInfo{}, err
	}
	if percent.IsNegative() {
		err = m.DecreasePrice(name, percent.Neg())
	} else {
		err = m.IncreasePrice(name, percent)
	}
	if err != nil {
		return DishInfo{}, err
	}
	l, ok := m.Listing(name)
	if !ok {
		return DishInfo{}, fmt.Errorf("%q: %w", name, domain.ErrDishNotFound)
	}
	s.logger.Info("Dish repriced", zap.String("dish", name), zap.String("percent", percent.String()), zap.String("price", l.Price.String()))
	return dishInfo(l), nil
}

func (s *restaurantService) ApplyDemandPricing(ctx context.Context) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	repriced, err := domain.ApplyDemandPricing(s.menus()...)
	if err != nil {
		s.logger.Error("Demand pricing failed", zap.Strings("repriced", repriced), zap.Error(err))
		return repriced, err
	}
	s.logger.Info("Demand pricing applied", zap.Strings("repriced", repriced))
	return repriced, nil
}

func (s *restaurantService) CreateCustomer(ctx context.Context, name, contactInfo string) (CustomerInfo, error) {
	c, err := domain.NewCustomer(name, contactInfo)
	if err != nil {
		return CustomerInfo{}, fmt.Errorf("failed to create customer: %w", err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.customers[c.ID] = c
	s.logger.Info("Restaurant customer created", zap.String("customer_id", c.ID))
	return CustomerInfo{ID: c.ID, Name: c.Name, ContactInfo: c.ContactInfo}, nil
}

func (s *restaurantService) customer(id string) (*domain.Customer, error) {
	c, ok := s.customers[id]
	if !ok {
		return nil, fmt.Errorf("customer %s: %w", id, domain.ErrCustomerNotFound)
	}
	return c, nil
}

// PlaceOrder builds an order from dish names, each looked up across all
// menus at its current price. Nothing is recorded if any dish is missing.
func (s *restaurantService) PlaceOrder(ctx context.Context, customerID string, dishes []string) (OrderInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, err := s.customer(customerID)
	if err != nil {
		return OrderInfo{}, err
	}
	order := domain.NewOrder(c.ID)
	for _, name := range dishes {
		if err := order.AddDish(name, s.menus()...); err != nil {
			s.logger.Warn("Order rejected", zap.String("customer_id", customerID), zap.String("dish", name), zap.Error(err))
			return OrderInfo{}, err
		}
	}
	if err := c.PlaceOrder(order); err != nil {
		return OrderInfo{}, err
	}
	s.logger.Info("Order placed",
		zap.String("order_id", order.ID),
		zap.String("customer_id", customerID),
		zap.String("total", order.Total().String()))
	return orderInfo(order), nil
}

func (s *restaurantService) Orders(ctx context.Context, customerID string) ([]OrderInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, err := s.customer(customerID)
	if err != nil {
		return nil, err
	}
	orders := c.OrderHistory()
	out := make([]OrderInfo, 0, len(orders))
	for _, o := range orders {
		out = append(out, orderInfo(o))
	}
	return out, nil
}
