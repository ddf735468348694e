package web

import (
	"context"
	"io"

	"ecofinds-be/internal/cart"
	"ecofinds-be/internal/order"
	"ecofinds-be/internal/product"
	"ecofinds-be/internal/user"

	"github.com/stretchr/testify/mock"
)

// MockUserService is a mock implementation of the user.Service interface
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) Signup(ctx context.Context, email, username, password string) (*user.User, error) {
	args := m.Called(ctx, email, username, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func (m *MockUserService) Login(ctx context.Context, email, password string) (*user.User, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func (m *MockUserService) GetByID(ctx context.Context, id uint) (*user.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func (m *MockUserService) UpdateProfile(ctx context.Context, params user.UpdateProfileParams) (*user.User, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

// MockProductService is a mock implementation of the product.Service interface
type MockProductService struct {
	mock.Mock
}

func (m *MockProductService) List(ctx context.Context, filter product.ListFilter) ([]product.Product, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]product.Product), args.Error(1)
}

func (m *MockProductService) ListByOwner(ctx context.Context, ownerID uint) ([]product.Product, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]product.Product), args.Error(1)
}

func (m *MockProductService) GetByID(ctx context.Context, id uint) (*product.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*product.Product), args.Error(1)
}

func (m *MockProductService) Create(ctx context.Context, input product.CreateInput) (uint, error) {
	args := m.Called(ctx, input)
	return args.Get(0).(uint), args.Error(1)
}

func (m *MockProductService) Update(ctx context.Context, id, actorID uint, input product.UpdateInput) error {
	args := m.Called(ctx, id, actorID, input)
	return args.Error(0)
}

func (m *MockProductService) Delete(ctx context.Context, id, actorID uint) error {
	args := m.Called(ctx, id, actorID)
	return args.Error(0)
}

// MockCartService is a mock implementation of the cart.Service interface
type MockCartService struct {
	mock.Mock
}

func (m *MockCartService) AddToCart(ctx context.Context, c cart.Cart, productID uint) (cart.Cart, error) {
	args := m.Called(ctx, c, productID)
	return args.Get(0).(cart.Cart), args.Error(1)
}

// MockOrderService is a mock implementation of the order.Service interface
type MockOrderService struct {
	mock.Mock
}

func (m *MockOrderService) Checkout(ctx context.Context, userID uint, c cart.Cart) (uint, error) {
	args := m.Called(ctx, userID, c)
	return args.Get(0).(uint), args.Error(1)
}

func (m *MockOrderService) ListByUser(ctx context.Context, userID uint) ([]order.Order, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]order.Order), args.Error(1)
}

// MockSaver is a mock implementation of the upload.Saver interface
type MockSaver struct {
	mock.Mock
}

func (m *MockSaver) Save(filename string, r io.Reader) (string, error) {
	args := m.Called(filename, r)
	return args.String(0), args.Error(1)
}

func (m *MockSaver) Allowed(filename string) bool {
	args := m.Called(filename)
	return args.Bool(0)
}
