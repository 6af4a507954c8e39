package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/spec-kit/foodyy-service/internal/auth"
	"github.com/spec-kit/foodyy-service/internal/domain"
	"github.com/spec-kit/foodyy-service/internal/events"
)

func newCustomerFixture(t *testing.T) (*CustomerService, *fakeCartRepo, *recordingDispatcher) {
	t.Helper()
	carts := newFakeCartRepo()
	dispatcher := &recordingDispatcher{}
	svc := NewCustomerService(newFakeCustomerRepo(), carts, dispatcher, bcrypt.MinCost)
	return svc, carts, dispatcher
}

func TestSignUpCreatesAccountAndCart(t *testing.T) {
	svc, carts, dispatcher := newCustomerFixture(t)
	ctx := context.Background()

	customer, err := svc.SignUp(ctx, SignUpInput{
		Name:     "Alice",
		Email:    "alice@example.com",
		Phone:    "5550100",
		Password: "S3cret!pass",
		Address:  "42 Baker Street",
	})
	require.NoError(t, err)
	assert.NotZero(t, customer.ID)
	assert.True(t, customer.Enabled)

	// The password is stored as a verifiable digest, never in clear.
	assert.NotEqual(t, "S3cret!pass", customer.PasswordHash)
	assert.True(t, auth.CheckPassword(customer.PasswordHash, "S3cret!pass"))

	cart, err := carts.GetByCustomer(ctx, customer.ID)
	require.NoError(t, err)
	assert.Empty(t, cart.Items)

	require.Len(t, dispatcher.events, 1)
	assert.Equal(t, events.EventCustomerRegistered, dispatcher.events[0].Type)
}

func TestSignUpRejectsDuplicateEmailAndPhone(t *testing.T) {
	svc, _, _ := newCustomerFixture(t)
	ctx := context.Background()

	_, err := svc.SignUp(ctx, SignUpInput{
		Name: "Alice", Email: "alice@example.com", Phone: "5550100", Password: "S3cret!pass",
	})
	require.NoError(t, err)

	_, err = svc.SignUp(ctx, SignUpInput{
		Name: "Impostor", Email: "alice@example.com", Phone: "5550199", Password: "S3cret!pass",
	})
	requireStatus(t, err, 409)

	_, err = svc.SignUp(ctx, SignUpInput{
		Name: "Impostor", Email: "other@example.com", Phone: "5550100", Password: "S3cret!pass",
	})
	requireStatus(t, err, 409)
}

func TestUpdateProfileKeepsCredential(t *testing.T) {
	svc, _, _ := newCustomerFixture(t)
	ctx := context.Background()

	created, err := svc.SignUp(ctx, SignUpInput{
		Name: "Alice", Email: "alice@example.com", Phone: "5550100", Password: "S3cret!pass",
	})
	require.NoError(t, err)
	originalHash := created.PasswordHash

	updated, err := svc.UpdateProfile(ctx, &domain.Customer{
		ID:      created.ID,
		Name:    "Alice B.",
		Phone:   "5550999",
		Address: "1 New Road",
	})
	require.NoError(t, err)
	assert.Equal(t, "Alice B.", updated.Name)
	assert.Equal(t, "5550999", updated.Phone)
	assert.Equal(t, "alice@example.com", updated.Email)
	assert.Equal(t, originalHash, updated.PasswordHash)
}

func TestCheckPassword(t *testing.T) {
	svc, _, _ := newCustomerFixture(t)
	ctx := context.Background()

	created, err := svc.SignUp(ctx, SignUpInput{
		Name: "Alice", Email: "alice@example.com", Phone: "5550100", Password: "S3cret!pass",
	})
	require.NoError(t, err)

	ok, err := svc.CheckPassword(ctx, created.ID, "S3cret!pass")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = svc.CheckPassword(ctx, created.ID, "wrong")
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = svc.CheckPassword(ctx, 999, "whatever")
	requireStatus(t, err, 404)
}

func TestDeleteCustomer(t *testing.T) {
	svc, _, _ := newCustomerFixture(t)
	ctx := context.Background()

	created, err := svc.SignUp(ctx, SignUpInput{
		Name: "Alice", Email: "alice@example.com", Phone: "5550100", Password: "S3cret!pass",
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, created.ID))
	_, err = svc.GetByID(ctx, created.ID)
	requireStatus(t, err, 404)

	requireStatus(t, svc.Delete(ctx, created.ID), 404)
}
