package restaurant

import (
	"fmt"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/shopspring/decimal"

	"dailyapps/internal/validate"
)

// DessertPriceLimit is the most a dessert may cost when it is added.
var DessertPriceLimit = decimal.NewFromInt(15)

var hundred = decimal.NewFromInt(100)

// Menu is implemented by AppetizersMenu, EntreesMenu and DessertsMenu.
type Menu interface {
	Category() Category
	AddDish(d *Dish) error
	RemoveDish(name string) error
	Dish(name string) (*Dish, bool)
	Dishes() []*Dish
	Listing(name string) (Listing, bool)
	Listings() []Listing
	IncreasePrice(name string, percent decimal.Decimal) error
	DecreasePrice(name string, percent decimal.Decimal) error
	lookup(name string) (Line, bool)
}

type menu struct {
	category Category
	mu       sync.RWMutex
	dishes   map[string]*Dish
}

func newMenu(category Category) menu {
	return menu{category: category, dishes: make(map[string]*Dish)}
}

func (m *menu) Category() Category { return m.category }

// Listing is a copy of a dish taken under the menu lock.
type Listing struct {
	Name     string
	Category Category
	Price    decimal.Decimal
	Vegan    bool
	PrepTime time.Duration
}

func (d *Dish) listing() Listing {
	return Listing{Name: d.Name, Category: d.Category, Price: d.price, Vegan: d.Vegan, PrepTime: d.PrepTime}
}

func (m *menu) check(d *Dish) error {
	if d == nil {
		return ErrDishNotFound
	}
	if d.Category != m.category {
		return fmt.Errorf("%s %q on the %s menu: %w", d.Category, d.Name, m.category, ErrCategoryMismatch)
	}
	return nil
}

// add lists d unless the name is taken.
func (m *menu) add(d *Dish) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.dishes[d.Name]; ok {
		return fmt.Errorf("%q: %w", d.Name, ErrDuplicateDish)
	}
	m.dishes[d.Name] = d
	return nil
}

func (m *menu) RemoveDish(name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.dishes[name]; !ok {
		return fmt.Errorf("%q on the %s menu: %w", name, m.category, ErrDishNotFound)
	}
	delete(m.dishes, name)
	return nil
}

func (m *menu) Dish(name string) (*Dish, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	d, ok := m.dishes[name]
	return d, ok
}

// Dishes lists the menu sorted by name.
func (m *menu) Dishes() []*Dish {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*Dish, 0, len(m.dishes))
	for _, d := range m.dishes {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

func (m *menu) Listing(name string) (Listing, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	d, ok := m.dishes[name]
	if !ok {
		return Listing{}, false
	}
	return d.listing(), true
}

// Listings copies the menu sorted by name.
func (m *menu) Listings() []Listing {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]Listing, 0, len(m.dishes))
	for _, d := range m.dishes {
		out = append(out, d.listing())
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

func (m *menu) IncreasePrice(name string, percent decimal.Decimal) error {
	if percent.IsNegative() {
		return &validate.ValidationError{Tag: validate.TagPrice}
	}
	return m.adjust(name, percent)
}

func (m *menu) DecreasePrice(name string, percent decimal.Decimal) error {
	if percent.IsNegative() || percent.GreaterThanOrEqual(hundred) {
		return &validate.ValidationError{Tag: validate.TagPrice}
	}
	return m.adjust(name, percent.Neg())
}

func (m *menu) adjust(name string, percent decimal.Decimal) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	d, ok := m.dishes[name]
	if !ok {
		return fmt.Errorf("%q on the %s menu: %w", name, m.category, ErrDishNotFound)
	}
	d.price = d.price.Add(d.price.Mul(percent).Div(hundred))
	return nil
}

// lookup snapshots a dish under the read lock.
func (m *menu) lookup(name string) (Line, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	d, ok := m.dishes[name]
	if !ok {
		return Line{}, false
	}
	return Line{Name: d.Name, Category: d.Category, Price: d.price}, true
}

type AppetizersMenu struct {
	menu
}

func NewAppetizersMenu() *AppetizersMenu {
	return &AppetizersMenu{menu: newMenu(CategoryAppetizer)}
}

func (m *AppetizersMenu) AddDish(d *Dish) error {
	if err := m.check(d); err != nil {
		return err
	}
	return m.add(d)
}

type DessertsMenu struct {
	menu
}

func NewDessertsMenu() *DessertsMenu {
	return &DessertsMenu{menu: newMenu(CategoryDessert)}
}

func (m *DessertsMenu) AddDish(d *Dish) error {
	if err := m.check(d); err != nil {
		return err
	}
	if d.Price().GreaterThan(DessertPriceLimit) {
		return fmt.Errorf("%q costs %s, limit %s: %w", d.Name, d.Price(), DessertPriceLimit, ErrPriceLimitExceeded)
	}
	return m.add(d)
}

// EntreesMenu lists a dish only once it has been prepared: AddDish returns
// immediately and the dish appears after a delay proportional to its prep
// time. Pending insertions cannot be cancelled, and a pending name counts
// as taken.
type EntreesMenu struct {
	menu
	scale   float64
	pending atomic.Int64
	queued  map[string]struct{}
	wg      sync.WaitGroup
}

type EntreeOption func(*EntreesMenu)

// WithPrepDelayScale sets the ratio between a dish's prep time and the
// delay before it is listed. The default is 1.
func WithPrepDelayScale(scale float64) EntreeOption {
	return func(m *EntreesMenu) {
		if scale >= 0 {
			m.scale = scale
		}
	}
}

func NewEntreesMenu(opts ...EntreeOption) *EntreesMenu {
	m := &EntreesMenu{menu: newMenu(CategoryEntree), scale: 1, queued: make(map[string]struct{})}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

func (m *EntreesMenu) AddDish(d *Dish) error {
	if err := m.check(d); err != nil {
		return err
	}
	if err := m.reserve(d.Name); err != nil {
		return err
	}
	m.pending.Add(1)
	m.wg.Add(1)
	time.AfterFunc(m.delay(d), func() {
		defer m.wg.Done()
		m.mu.Lock()
		delete(m.queued, d.Name)
		m.dishes[d.Name] = d
		m.mu.Unlock()
		m.pending.Add(-1)
	})
	return nil
}

func (m *EntreesMenu) reserve(name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, listed := m.dishes[name]
	_, queued := m.queued[name]
	if listed || queued {
		return fmt.Errorf("%q: %w", name, ErrDuplicateDish)
	}
	m.queued[name] = struct{}{}
	return nil
}

func (m *EntreesMenu) delay(d *Dish) time.Duration {
	return time.Duration(float64(d.PrepTime) * m.scale)
}

// Pending reports how many dishes are still being prepared.
func (m *EntreesMenu) Pending() int {
	return int(m.pending.Load())
}

// Wait blocks until every scheduled dish has been listed.
func (m *EntreesMenu) Wait() {
	m.wg.Wait()
}
