package app

import (
	"context"
	"sync"

	"github.com/bistroboss/bistro-api/internal/carts"
	"github.com/bistroboss/bistro-api/internal/domain"
	"github.com/bistroboss/bistro-api/internal/payments"
	"github.com/bistroboss/bistro-api/internal/users"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// memStore is an in-memory implementation of every repository the router needs.
// calls counts every repository method invocation.
type memStore struct {
	mu      sync.Mutex
	users   []domain.User
	menu    []domain.MenuItem
	reviews []domain.Review
	carts   []domain.CartItem
	calls   int
}

func (s *memStore) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

func (s *memStore) touch() {
	s.calls++
}

func parseID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, domain.ErrInvalidID
	}
	return oid, nil
}

// users.Repository

type memUsers struct{ *memStore }

func (s memUsers) ListUsers(_ context.Context) ([]domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()
	return append([]domain.User(nil), s.users...), nil
}

func (s memUsers) GetUserByEmail(_ context.Context, email string) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()
	for _, u := range s.users {
		if u.Email == email {
			u := u
			return &u, nil
		}
	}
	return nil, users.ErrUserNotFound
}

func (s memUsers) CreateUser(_ context.Context, user *domain.User) (domain.InsertResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()
	for _, u := range s.users {
		if u.Email == user.Email {
			return domain.InsertResult{}, users.ErrUserExists
		}
	}
	user.ID = primitive.NewObjectID()
	s.users = append(s.users, *user)
	return domain.InsertResult{Acknowledged: true, InsertedID: user.ID.Hex()}, nil
}

func (s memUsers) SetRole(_ context.Context, id string, role domain.Role) (domain.UpdateResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()
	oid, err := parseID(id)
	if err != nil {
		return domain.UpdateResult{}, err
	}
	for i := range s.users {
		if s.users[i].ID == oid {
			modified := int64(0)
			if s.users[i].Role != role {
				modified = 1
			}
			s.users[i].Role = role
			return domain.UpdateResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: modified}, nil
		}
	}
	return domain.UpdateResult{Acknowledged: true}, nil
}

// menu.Repository

type memMenu struct{ *memStore }

func (s memMenu) ListMenuItems(_ context.Context) ([]domain.MenuItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()
	return append([]domain.MenuItem(nil), s.menu...), nil
}

func (s memMenu) CreateMenuItem(_ context.Context, item *domain.MenuItem) (domain.InsertResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()
	item.ID = primitive.NewObjectID()
	s.menu = append(s.menu, *item)
	return domain.InsertResult{Acknowledged: true, InsertedID: item.ID.Hex()}, nil
}

func (s memMenu) DeleteMenuItem(_ context.Context, id string) (domain.DeleteResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()
	oid, err := parseID(id)
	if err != nil {
		return domain.DeleteResult{}, err
	}
	for i, item := range s.menu {
		if item.ID == oid {
			s.menu = append(s.menu[:i], s.menu[i+1:]...)
			return domain.DeleteResult{Acknowledged: true, DeletedCount: 1}, nil
		}
	}
	return domain.DeleteResult{Acknowledged: true}, nil
}

// reviews.Repository

type memReviews struct{ *memStore }

func (s memReviews) ListReviews(_ context.Context) ([]domain.Review, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()
	return append([]domain.Review(nil), s.reviews...), nil
}

// carts.Repository

type memCarts struct{ *memStore }

func (s memCarts) ListCartItems(_ context.Context, email string) ([]domain.CartItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()
	var out []domain.CartItem
	for _, item := range s.carts {
		if item.Email == email {
			out = append(out, item)
		}
	}
	return out, nil
}

func (s memCarts) CreateCartItem(_ context.Context, item *domain.CartItem) (domain.InsertResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()
	item.ID = primitive.NewObjectID()
	s.carts = append(s.carts, *item)
	return domain.InsertResult{Acknowledged: true, InsertedID: item.ID.Hex()}, nil
}

func (s memCarts) GetCartItem(_ context.Context, id string) (*domain.CartItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	for _, item := range s.carts {
		if item.ID == oid {
			item := item
			return &item, nil
		}
	}
	return nil, carts.ErrCartItemNotFound
}

func (s memCarts) DeleteCartItem(_ context.Context, id, email string) (domain.DeleteResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()
	oid, err := parseID(id)
	if err != nil {
		return domain.DeleteResult{}, err
	}
	for i, item := range s.carts {
		if item.ID == oid && item.Email == email {
			s.carts = append(s.carts[:i], s.carts[i+1:]...)
			return domain.DeleteResult{Acknowledged: true, DeletedCount: 1}, nil
		}
	}
	return domain.DeleteResult{Acknowledged: true}, nil
}

// fakeProcessor records payment intent requests.
type fakeProcessor struct {
	mu    sync.Mutex
	calls []payments.PaymentIntentParams
}

func (p *fakeProcessor) CreatePaymentIntent(_ context.Context, params payments.PaymentIntentParams) (*payments.PaymentIntent, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.calls = append(p.calls, params)
	return &payments.PaymentIntent{ID: "pi_test", ClientSecret: "pi_test_secret"}, nil
}
