package identity

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/uptown-october/uptown-docs/internal/auth"
)

type stubStore struct {
	byDeal    *Consultant
	byDealErr error
	byUser    *Consultant
	byUserErr error
}

func (s *stubStore) ConsultantByDeal(ctx context.Context, dealID int64) (*Consultant, error) {
	return s.byDeal, s.byDealErr
}

func (s *stubStore) ConsultantByUser(ctx context.Context, userID int64) (*Consultant, error) {
	return s.byUser, s.byUserErr
}

func str(s string) *string { return &s }

func TestResolveUsesAuthenticatedName(t *testing.T) {
	r := NewResolver(&stubStore{}, nil)
	c := r.Resolve(context.Background(), auth.User{ID: 1, Name: " Laila ", Email: "laila@x"}, 5)
	require.Equal(t, "Laila", *c.Name)
	require.Equal(t, "laila@x", *c.Email)
}

func TestResolveFallsBackToDealCreator(t *testing.T) {
	store := &stubStore{byDeal: &Consultant{Name: str("Omar"), Email: str("omar@x")}}
	r := NewResolver(store, nil)
	c := r.Resolve(context.Background(), auth.User{ID: 1, Name: "  ", Email: "me@x"}, 5)
	require.Equal(t, "Omar", *c.Name)
}

func TestResolveFallsBackToRequeriedUser(t *testing.T) {
	store := &stubStore{
		byDealErr: errors.New("db down"),
		byUser:    &Consultant{Name: str("me@x"), Email: str("me@x")},
	}
	r := NewResolver(store, nil)
	c := r.Resolve(context.Background(), auth.User{ID: 1}, 5)
	require.Equal(t, "me@x", *c.Name)
}

func TestResolveNeverFails(t *testing.T) {
	store := &stubStore{byDealErr: errors.New("x"), byUserErr: errors.New("y")}
	r := NewResolver(store, nil)
	c := r.Resolve(context.Background(), auth.User{ID: 1}, 5)
	require.Nil(t, c.Name)
	require.Nil(t, c.Email)
}

func TestResolveSkipsDealPathWithoutDealID(t *testing.T) {
	store := &stubStore{byDeal: &Consultant{Name: str("wrong")}}
	r := NewResolver(store, nil)
	c := r.Resolve(context.Background(), auth.User{}, 0)
	require.Nil(t, c.Name)
}
