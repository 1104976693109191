package queries_test

import (
	"context"
	"time"

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

type MockShipmentReader struct{ mock.Mock }

func (m *MockShipmentReader) List(ctx context.Context, filter ports.ShipmentFilter) ([]*shipment.Shipment, error) {
	args := m.Called(ctx, filter)
	if s, ok := args.Get(0).([]*shipment.Shipment); ok {
		return s, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockShipmentReader) Get(ctx context.Context, id int64) (*shipment.Shipment, error) {
	args := m.Called(ctx, id)
	if s, ok := args.Get(0).(*shipment.Shipment); ok {
		return s, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockShipmentReader) CountByStatus(ctx context.Context) (map[shipment.Status]int, error) {
	args := m.Called(ctx)
	if c, ok := args.Get(0).(map[shipment.Status]int); ok {
		return c, args.Error(1)
	}
	return nil, args.Error(1)
}

type MockUserReader struct{ mock.Mock }

func (m *MockUserReader) Get(ctx context.Context, username string) (*user.User, error) {
	args := m.Called(ctx, username)
	if u, ok := args.Get(0).(*user.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
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

type MockTokenIssuer struct{ mock.Mock }

func (m *MockTokenIssuer) Issue(ctx context.Context, principal user.Principal) (ports.AccessToken, error) {
	args := m.Called(ctx, principal)
	return args.Get(0).(ports.AccessToken), args.Error(1)
}

type MockTokenVerifier struct{ mock.Mock }

func (m *MockTokenVerifier) Verify(ctx context.Context, token string) (ports.TokenClaims, error) {
	args := m.Called(ctx, token)
	return args.Get(0).(ports.TokenClaims), args.Error(1)
}

type sequence struct{ last int64 }

func (s *sequence) NextEventID() int64 {
	s.last++
	return s.last
}

func newShipment(id int64, content string, destination int, ids *sequence) *shipment.Shipment {
	details, _ := shipment.NewPackageDetails(content, 5, "", false)
	recipient, _ := shipment.NewRecipient("Recipient "+content, "r@example.com", "", "")
	seller, _ := shipment.NewSeller("Seller", "s@example.com", "")
	s, err := shipment.NewShipment(id, details, recipient, seller, destination, ids, time.Date(2024, 12, 1, 9, 0, 0, 0, time.UTC))
	if err != nil {
		panic(err)
	}
	return s
}

func newUser(username string, role user.Role, disabled bool) *user.User {
	email, _ := kernel.NewEmail(username + "@example.com")
	u, err := user.RestoreUser(username, email, "hash-"+username, role, disabled, time.Now())
	if err != nil {
		panic(err)
	}
	return u
}
