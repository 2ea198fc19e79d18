package rental

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	domain "dailyapps/internal/domain/rental"
	"dailyapps/internal/validate"
)

type RentalService interface {
	AddCar(ctx context.Context, in CarInput) (CarInfo, error)
	GetCar(ctx context.Context, carID string) (CarInfo, error)
	ListCars(ctx context.Context, availableOnly bool) ([]CarInfo, error)
	CreateCustomer(ctx context.Context, name, contactInfo string) (CustomerInfo, error)
	Rent(ctx context.Context, customerID, carID string, days int) (RentalInfo, error)
	Return(ctx context.Context, rentalID string) (RentalInfo, error)
	History(ctx context.Context, customerID string) ([]RentalInfo, error)
	SearchHistory(ctx context.Context, customerID, carMake, model string, maxPrice decimal.Decimal) ([]RentalInfo, error)
}

type CarInput struct {
	Make           string          `json:"make"`
	Model          string          `json:"model"`
	PricePerDay    decimal.Decimal `json:"price_per_day"`
	Class          domain.Class    `json:"class"`
	Insurance      decimal.Decimal `json:"insurance"`
	PremiumService decimal.Decimal `json:"premium_service"`
}

type CarInfo struct {
	ID             string          `json:"id"`
	Make           string          `json:"make"`
	Model          string          `json:"model"`
	PricePerDay    decimal.Decimal `json:"price_per_day"`
	Class          domain.Class    `json:"class"`
	Insurance      decimal.Decimal `json:"insurance"`
	PremiumService decimal.Decimal `json:"premium_service"`
	Available      bool            `json:"available"`
}

type CustomerInfo struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	ContactInfo string `json:"contact_info"`
}

type RentalInfo struct {
	ID         string          `json:"id"`
	CustomerID string          `json:"customer_id"`
	Car        CarInfo         `json:"car"`
	Days       int             `json:"days"`
	Price      decimal.Decimal `json:"price"`
	Active     bool            `json:"active"`
	RentedAt   time.Time       `json:"rented_at"`
	ReturnedAt *time.Time      `json:"returned_at,omitempty"`
}

type rentalService struct {
	mu        sync.Mutex
	cars      map[string]*domain.Car
	customers map[string]*domain.Customer
	rentals   map[string]domain.Rental
	logger    *zap.Logger
}

func NewRentalService(logger *zap.Logger) RentalService {
	return &rentalService{
		cars:      make(map[string]*domain.Car),
		customers: make(map[string]*domain.Customer),
		rentals:   make(map[string]domain.Rental),
		logger:    logger,
	}
}

func carInfo(c *domain.Car) CarInfo {
	return CarInfo{
		ID:             c.ID,
		Make:           c.Make,
		Model:          c.Model,
		PricePerDay:    c.PricePerDay,
		Class:          c.Class,
		Insurance:      c.Insurance,
		PremiumService: c.PremiumService,
		Available:      c.Available(),
	}
}

func rentalInfo(r domain.Rental) RentalInfo {
	info := RentalInfo{
		ID:         r.ID(),
		CustomerID: r.Customer().ID,
		Car:        carInfo(r.Car()),
		Days:       r.Days(),
		Price:      r.Price(),
		Active:     r.Active(),
		RentedAt:   r.RentedAt(),
	}
	if at := r.ReturnedAt(); !at.IsZero() {
		info.ReturnedAt = &at
	}
	return info
}

func rentalInfos(rs []domain.Rental) []RentalInfo {
	out := make([]RentalInfo, 0, len(rs))
	for _, r := range rs {
		out = append(out, rentalInfo(r))
	}
	return out
}

func (s *rentalService) AddCar(ctx context.Context, in CarInput) (CarInfo, error) {
	var (
		car *domain.Car
		err error
	)
	switch in.Class {
	case domain.ClassEconomy, "":
		car, err = domain.NewEconomyCar(in.Make, in.Model, in.PricePerDay)
	case domain.ClassLuxury:
		car, err = domain.NewLuxuryCar(in.Make, in.Model, in.PricePerDay, in.Insurance, in.PremiumService)
	default:
		err = &validate.ValidationError{Tag: "carClass"}
	}
	if err != nil {
		s.logger.Warn("Failed to add car", zap.String("make", in.Make), zap.String("model", in.Model), zap.Error(err))
		return CarInfo{}, fmt.Errorf("failed to add car: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.cars[car.ID] = car
	s.logger.Info("Car added", zap.String("car_id", car.ID), zap.String("class", string(car.Class)))
	return carInfo(car), nil
}

func (s *rentalService) GetCar(ctx context.Context, carID string) (CarInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	car, ok := s.cars[carID]
	if !ok {
		return CarInfo{}, fmt.Errorf("car %s: %w", carID, domain.ErrCarNotFound)
	}
	return carInfo(car), nil
}

// ListCars returns the fleet ordered by make and model.
func (s *rentalService) ListCars(ctx context.Context, availableOnly bool) ([]CarInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]CarInfo, 0, len(s.cars))
	for _, c := range s.cars {
		if availableOnly && !c.Available() {
			continue
		}
		out = append(out, carInfo(c))
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Make != out[j].Make {
			return out[i].Make < out[j].Make
		}
		if out[i].Model != out[j].Model {
			return out[i].Model < out[j].Model
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (s *rentalService) CreateCustomer(ctx context.Context, name, contactInfo string) (CustomerInfo, error) {
	c, err := domain.NewCustomer(name, contactInfo)
	if err != nil {
		return CustomerInfo{}, fmt.Errorf("failed to create customer: %w", err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.customers[c.ID] = c
	s.logger.Info("Rental customer created", zap.String("customer_id", c.ID))
	return CustomerInfo{ID: c.ID, Name: c.Name, ContactInfo: c.ContactInfo}, nil
}

func (s *rentalService) customer(id string) (*domain.Customer, error) {
	c, ok := s.customers[id]
	if !ok {
		return nil, fmt.Errorf("customer %s: %w", id, domain.ErrCustomerNotFound)
	}
	return c, nil
}

func (s *rentalService) Rent(ctx context.Context, customerID, carID string, days int) (RentalInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cust, err := s.customer(customerID)
	if err != nil {
		return RentalInfo{}, err
	}
	car, ok := s.cars[carID]
	if !ok {
		return RentalInfo{}, fmt.Errorf("car %s: %w", carID, domain.ErrCarNotFound)
	}
	r, err := domain.NewStandardRental(cust, car, days)
	if err != nil {
		return RentalInfo{}, fmt.Errorf("failed to create rental: %w", err)
	}
	if err := r.Rent(); err != nil {
		s.logger.Warn("Rent rejected", zap.String("car_id", carID), zap.String("customer_id", customerID), zap.Error(err))
		return RentalInfo{}, err
	}
	s.rentals[r.ID()] = r
	s.logger.Info("Car rented",
		zap.String("rental_id", r.ID()),
		zap.String("car_id", carID),
		zap.Int("days", days),
		zap.String("price", r.Price().String()))
	return rentalInfo(r), nil
}

func (s *rentalService) Return(ctx context.Context, rentalID string) (RentalInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.rentals[rentalID]
	if !ok {
		return RentalInfo{}, fmt.Errorf("rental %s: %w", rentalID, domain.ErrRentalNotFound)
	}
	if err := r.Return(); err != nil {
		s.logger.Warn("Return rejected", zap.String("rental_id", rentalID), zap.Error(err))
		return RentalInfo{}, err
	}
	s.logger.Info("Car returned", zap.String("rental_id", rentalID), zap.String("car_id", r.Car().ID))
	return rentalInfo(r), nil
}

func (s *rentalService) History(ctx context.Context, customerID string) ([]RentalInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cust, err := s.customer(customerID)
	if err != nil {
		return nil, err
	}
	return rentalInfos(cust.RentalHistory()), nil
}

func (s *rentalService) SearchHistory(ctx context.Context, customerID, carMake, model string, maxPrice decimal.Decimal) ([]RentalInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cust, err := s.customer(customerID)
	if err != nil {
		return nil, err
	}
	found, err := cust.SearchHistory(carMake, model, maxPrice)
	if err != nil {
		return nil, err
	}
	return rentalInfos(found), nil
}
