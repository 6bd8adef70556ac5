package account

import (
	"context"
	"errors"
	"testing"

	"github.com/vladislavdragonenkov/storefront/internal/auth"
	"github.com/vladislavdragonenkov/storefront/internal/domain"
	"github.com/vladislavdragonenkov/storefront/internal/service/storeadmin"
	"github.com/vladislavdragonenkov/storefront/internal/storage/memory"
)

func newTestService(t *testing.T) (*Service, *memory.Store) {
	t.Helper()
	store := memory.NewStore()
	tokens := auth.NewTokenIssuer([]byte("test-secret"))
	svc := NewService(store.Users(), store.Stores(), storeadmin.NewChecker(store.Stores()), store, tokens, nil)
	return svc, store
}

func customerInput(email string) SignupInput {
	return SignupInput{
		FirstName: "Ann",
		LastName:  "Lee",
		Email:     email,
		Password:  "secret1",
		Type:      domain.UserTypeCustomer,
	}
}

func TestSignupCustomer(t *testing.T) {
	svc, store := newTestService(t)

	id, err := svc.Signup(context.Background(), customerInput("ann@example.com"))
	if err != nil {
		t.Fatalf("signup: %v", err)
	}
	if id == 0 {
		t.Fatal("expected non-zero user id")
	}

	user, err := store.Users().FindByEmail(context.Background(), "ann@example.com")
	if err != nil {
		t.Fatalf("find user: %v", err)
	}
	if user.Type != domain.UserTypeCustomer {
		t.Fatalf("expected CUSTOMER, got %s", user.Type)
	}
	if user.PasswordHash == "" || user.Salt == "" {
		t.Fatal("password must be stored hashed with salt")
	}
	if user.PasswordHash == "secret1" {
		t.Fatal("password must not be stored in plain text")
	}
}

func TestSignup_DuplicateEmail(t *testing.T) {
	svc, _ := newTestService(t)

	if _, err := svc.Signup(context.Background(), customerInput("ann@example.com")); err != nil {
		t.Fatalf("first signup: %v", err)
	}

	_, err := svc.Signup(context.Background(), customerInput("ann@example.com"))
	if !errors.Is(err, domain.ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestSignup_UnknownType(t *testing.T) {
	svc, _ := newTestService(t)

	in := customerInput("x@example.com")
	in.Type = domain.UserType("ROBOT")
	_, err := svc.Signup(context.Background(), in)
	if domain.KindOf(err) != domain.KindBadRequest {
		t.Fatalf("expected bad request, got %v", err)
	}
}

func TestSignupAdmin_RequiresInvite(t *testing.T) {
	svc, _ := newTestService(t)

	in := customerInput("admin@example.com")
	in.Type = domain.UserTypeAdmin
	_, err := svc.Signup(context.Background(), in)
	if !errors.Is(err, domain.ErrInviteRequired) {
		t.Fatalf("expected ErrInviteRequired, got %v", err)
	}
}

func TestSignupAdmin_InvalidInvite(t *testing.T) {
	svc, _ := newTestService(t)

	code := "no-such-code"
	in := customerInput("admin@example.com")
	in.Type = domain.UserTypeAdmin
	in.InviteCode = &code
	_, err := svc.Signup(context.Background(), in)
	if !errors.Is(err, domain.ErrInviteInvalid) {
		t.Fatalf("expected ErrInviteInvalid, got %v", err)
	}
}

func TestSignupAdmin_RedeemsInviteOnce(t *testing.T) {
	svc, store := newTestService(t)

	storeID, err := svc.CreateStore(context.Background(), CreateStoreInput{
		StoreName: "Books",
		FirstName: "Owner",
		LastName:  "One",
		Email:     "owner@example.com",
		Password:  "secret1",
	})
	if err != nil {
		t.Fatalf("create store: %v", err)
	}

	owner, err := store.Users().FindByEmail(context.Background(), "owner@example.com")
	if err != nil {
		t.Fatalf("find owner: %v", err)
	}
	code, err := svc.CreateInvite(context.Background(), storeID, owner.ID)
	if err != nil {
		t.Fatalf("create invite: %v", err)
	}

	in := customerInput("second@example.com")
	in.Type = domain.UserTypeAdmin
	in.InviteCode = &code
	if _, err := svc.Signup(context.Background(), in); err != nil {
		t.Fatalf("admin signup: %v", err)
	}

	admin, err := store.Users().FindByEmail(context.Background(), "second@example.com")
	if err != nil {
		t.Fatalf("find admin: %v", err)
	}
	if admin.ManagedStoreID == nil || *admin.ManagedStoreID != storeID {
		t.Fatal("admin must manage the invite's store")
	}

	// Код одноразовый.
	again := customerInput("third@example.com")
	again.Type = domain.UserTypeAdmin
	again.InviteCode = &code
	if _, err := svc.Signup(context.Background(), again); !errors.Is(err, domain.ErrInviteInvalid) {
		t.Fatalf("expected ErrInviteInvalid on reuse, got %v", err)
	}
}

func TestLogin(t *testing.T) {
	svc, store := newTestService(t)

	if _, err := svc.Signup(context.Background(), customerInput("ann@example.com")); err != nil {
		t.Fatalf("signup: %v", err)
	}

	token, err := svc.Login(context.Background(), LoginInput{Email: "ann@example.com", Password: "secret1"})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if token == "" {
		t.Fatal("expected a token")
	}

	user, err := store.Users().FindByEmail(context.Background(), "ann@example.com")
	if err != nil {
		t.Fatalf("find user: %v", err)
	}
	if user.LastLogin.IsZero() {
		t.Fatal("last login must be recorded")
	}
}

func TestLogin_BadCredentialsCollapse(t *testing.T) {
	svc, _ := newTestService(t)

	if _, err := svc.Signup(context.Background(), customerInput("ann@example.com")); err != nil {
		t.Fatalf("signup: %v", err)
	}

	// Неизвестный email и неверный пароль неразличимы снаружи.
	_, unknownErr := svc.Login(context.Background(), LoginInput{Email: "nobody@example.com", Password: "secret1"})
	_, wrongErr := svc.Login(context.Background(), LoginInput{Email: "ann@example.com", Password: "wrong"})

	if !errors.Is(unknownErr, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for unknown email, got %v", unknownErr)
	}
	if !errors.Is(wrongErr, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for wrong password, got %v", wrongErr)
	}
	if unknownErr.Error() != wrongErr.Error() {
		t.Fatal("error messages must not reveal which part was wrong")
	}
}

func TestCreateStore_SeedsDefaults(t *testing.T) {
	svc, store := newTestService(t)

	storeID, err := svc.CreateStore(context.Background(), CreateStoreInput{
		StoreName: "Books",
		FirstName: "Owner",
		LastName:  "One",
		Email:     "owner@example.com",
		Password:  "secret1",
	})
	if err != nil {
		t.Fatalf("create store: %v", err)
	}
	if storeID == 0 {
		t.Fatal("expected non-zero store id")
	}

	payments := store.PaymentMethods()
	if len(payments) != len(domain.DefaultPaymentMethods) {
		t.Fatalf("expected %d payment methods, got %d", len(domain.DefaultPaymentMethods), len(payments))
	}
	shippings := store.ShippingMethods()
	if len(shippings) != len(domain.DefaultShippingMethods) {
		t.Fatalf("expected %d shipping methods, got %d", len(domain.DefaultShippingMethods), len(shippings))
	}

	owner, err := store.Users().FindByEmail(context.Background(), "owner@example.com")
	if err != nil {
		t.Fatalf("find owner: %v", err)
	}
	if owner.Type != domain.UserTypeAdmin {
		t.Fatalf("store owner must be ADMIN, got %s", owner.Type)
	}
	if owner.ManagedStoreID == nil || *owner.ManagedStoreID != storeID {
		t.Fatal("store owner must manage the new store")
	}
}

func TestCreateStore_DuplicateEmail(t *testing.T) {
	svc, _ := newTestService(t)

	if _, err := svc.Signup(context.Background(), customerInput("owner@example.com")); err != nil {
		t.Fatalf("signup: %v", err)
	}

	_, err := svc.CreateStore(context.Background(), CreateStoreInput{
		StoreName: "Books",
		FirstName: "Owner",
		LastName:  "One",
		Email:     "owner@example.com",
		Password:  "secret1",
	})
	if !errors.Is(err, domain.ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestCreateInvite_RequiresAdmin(t *testing.T) {
	svc, _ := newTestService(t)

	storeID, err := svc.CreateStore(context.Background(), CreateStoreInput{
		StoreName: "Books",
		FirstName: "Owner",
		LastName:  "One",
		Email:     "owner@example.com",
		Password:  "secret1",
	})
	if err != nil {
		t.Fatalf("create store: %v", err)
	}

	customerID, err := svc.Signup(context.Background(), customerInput("ann@example.com"))
	if err != nil {
		t.Fatalf("signup: %v", err)
	}

	if _, err := svc.CreateInvite(context.Background(), storeID, customerID); !errors.Is(err, domain.ErrNotStoreAdmin) {
		t.Fatalf("expected ErrNotStoreAdmin, got %v", err)
	}
	if _, err := svc.CreateInvite(context.Background(), 999, customerID); !errors.Is(err, domain.ErrStoreNotFound) {
		t.Fatalf("expected ErrStoreNotFound, got %v", err)
	}
}
