package commands_test

import (
	"context"
	"time"

	"lastmile/internal/core/application/usecases/commands"
	"lastmile/internal/core/domain/model/kernel"
	"lastmile/internal/core/domain/model/shipment"
	"lastmile/internal/core/domain/model/user"
	"lastmile/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

var (
	admin    = user.Principal{Username: "admin", Role: user.RoleAdmin}
	courier  = user.Principal{Username: "courier", Role: user.RoleCourier}
	customer = user.Principal{Username: "customer", Role: user.RoleCustomer}
)

type MockShipmentRepository struct {
	mock.Mock
	lastEventID int64
}

func (m *MockShipmentRepository) NextEventID() int64 {
	m.lastEventID++
	return m.lastEventID
}

func (m *MockShipmentRepository) NextID(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockShipmentRepository) Add(ctx context.Context, s *shipment.Shipment) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockShipmentRepository) Update(ctx context.Context, s *shipment.Shipment) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockShipmentRepository) Get(ctx context.Context, id int64) (*shipment.Shipment, error) {
	args := m.Called(ctx, id)
	if s, ok := args.Get(0).(*shipment.Shipment); ok {
		return s, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockShipmentRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockShipmentUoW struct{ mock.Mock }

func (m *MockShipmentUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockShipmentUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockShipmentUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockShipmentUoW) ShipmentRepository() ports.ShipmentRepository {
	args := m.Called()
	return args.Get(0).(ports.ShipmentRepository)
}

type MockShipmentUoWFactory struct{ mock.Mock }

func (m *MockShipmentUoWFactory) Create() commands.ShipmentUoW {
	args := m.Called()
	return args.Get(0).(commands.ShipmentUoW)
}

type MockUserRepository struct{ mock.Mock }

func (m *MockUserRepository) Add(ctx context.Context, u *user.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *MockUserRepository) Update(ctx context.Context, u *user.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *MockUserRepository) Get(ctx context.Context, username string) (*user.User, error) {
	args := m.Called(ctx, username)
	if u, ok := args.Get(0).(*user.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email kernel.Email) (*user.User, error) {
	args := m.Called(ctx, email)
	if u, ok := args.Get(0).(*user.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

type MockUserUoW struct{ mock.Mock }

func (m *MockUserUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockUserUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockUserUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUserUoW) UserRepository() ports.UserRepository {
	args := m.Called()
	return args.Get(0).(ports.UserRepository)
}

type MockUserUoWFactory struct{ mock.Mock }

func (m *MockUserUoWFactory) Create() commands.UserUoW {
	args := m.Called()
	return args.Get(0).(commands.UserUoW)
}

type MockPasswordHasher struct{ mock.Mock }

func (m *MockPasswordHasher) Hash(password string) (string, error) {
	args := m.Called(password)
	return args.String(0), args.Error(1)
}

func (m *MockPasswordHasher) Compare(hash, password string) error {
	args := m.Called(hash, password)
	return args.Error(0)
}

func samplePackage() shipment.PackageDetails {
	details, err := shipment.NewPackageDetails("aluminum sheets", 8.2, "50x30x10", false)
	if err != nil {
		panic(err)
	}
	return details
}

func sampleRecipient() shipment.Recipient {
	recipient, err := shipment.NewRecipient("Ahmad Suryadi", "ahmad@example.com", "081234567890", "Jl. Sudirman No. 123")
	if err != nil {
		panic(err)
	}
	return recipient
}

func sampleSeller() shipment.Seller {
	seller, err := shipment.NewSeller("Metal Supplies Co.", "sales@metalsupplies.com", "021-5551234")
	if err != nil {
		panic(err)
	}
	return seller
}

// placedShipment returns a fresh shipment 12701 whose initial event used id 1.
func placedShipment() *shipment.Shipment {
	ids := &MockShipmentRepository{}
	s, err := shipment.NewShipment(12701, samplePackage(), sampleRecipient(), sampleSeller(), 11002, ids,
		time.Date(2024, 12, 1, 9, 0, 0, 0, time.UTC))
	if err != nil {
		panic(err)
	}
	return s
}
