package repository_test

import (
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/checkout-demo/internal/domain"
	"github.com/nikolayk812/checkout-demo/internal/port"
	"github.com/nikolayk812/checkout-demo/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type profileRepositorySuite struct {
	suite.Suite

	repo port.ProfileRepository
	pool *pgxpool.Pool
}

func TestProfileRepositorySuite(t *testing.T) {
	suite.Run(t, new(profileRepositorySuite))
}

func (suite *profileRepositorySuite) SetupSuite() {
	ctx := suite.T().Context()

	_, connStr, err := startPostgres(ctx)
	suite.NoError(err)

	suite.pool, err = pgxpool.New(ctx, connStr)
	suite.NoError(err)

	suite.repo = repository.NewProfile(suite.pool)
}

func (suite *profileRepositorySuite) TearDownSuite() {
	if suite.pool != nil {
		suite.pool.Close()
	}
}

func (suite *profileRepositorySuite) TestGetProfileNotFound() {
	t := suite.T()

	_, err := suite.repo.GetProfile(t.Context(), gofakeit.UUID())
	require.ErrorIs(t, err, port.ErrNotFound)
}

func (suite *profileRepositorySuite) TestUpsertProfile() {
	defer suite.deleteAll()

	t := suite.T()
	ctx := t.Context()

	profile := domain.Profile{
		UserID:    gofakeit.UUID(),
		FullName:  gofakeit.Name(),
		Email:     gofakeit.Email(),
		Phone:     "9" + gofakeit.DigitN(9),
		UpdatedAt: time.Now().UTC().Truncate(time.Millisecond),
	}

	require.NoError(t, suite.repo.UpsertProfile(ctx, profile))

	got, err := suite.repo.GetProfile(ctx, profile.UserID)
	require.NoError(t, err)
	assertProfile(t, profile, got)

	profile.Phone = "8" + gofakeit.DigitN(9)
	profile.UpdatedAt = profile.UpdatedAt.Add(time.Minute)
	require.NoError(t, suite.repo.UpsertProfile(ctx, profile))

	got, err = suite.repo.GetProfile(ctx, profile.UserID)
	require.NoError(t, err)
	assertProfile(t, profile, got)

	require.EqualError(t, suite.repo.UpsertProfile(ctx, domain.Profile{}), "userID is empty")
}

func (suite *profileRepositorySuite) TestAddresses() {
	defer suite.deleteAll()

	t := suite.T()
	ctx := t.Context()

	userID := gofakeit.UUID()
	base := time.Now().UTC().Truncate(time.Millisecond)

	billing := randomSavedAddress(userID, domain.AddressKindBilling)
	billing.IsDefault = true
	billing.CreatedAt = base.Add(-time.Minute)

	shipping := randomSavedAddress(userID, domain.AddressKindShipping)
	shipping.Line2 = gofakeit.Street()
	shipping.CreatedAt = base

	for _, a := range []domain.SavedAddress{billing, shipping} {
		added, err := suite.repo.AddAddress(ctx, a)
		require.NoError(t, err)
		assert.NotEmpty(t, added.ID)
	}

	got, err := suite.repo.ListAddresses(ctx, userID)
	require.NoError(t, err)
	require.Len(t, got, 2)

	opts := cmp.Options{
		cmpopts.IgnoreFields(domain.SavedAddress{}, "ID", "CreatedAt"),
	}
	assert.Empty(t, cmp.Diff([]domain.SavedAddress{shipping, billing}, got, opts))

	others, err := suite.repo.ListAddresses(ctx, gofakeit.UUID())
	require.NoError(t, err)
	assert.Empty(t, others)
}

func (suite *profileRepositorySuite) deleteAll() {
	_, err := suite.pool.Exec(suite.T().Context(), "TRUNCATE TABLE profiles, addresses")
	suite.NoError(err)
}

func randomSavedAddress(userID string, kind domain.AddressKind) domain.SavedAddress {
	return domain.SavedAddress{
		UserID:   userID,
		Kind:     kind,
		FullName: gofakeit.Name(),
		Line1:    gofakeit.Street(),
		City:     gofakeit.City(),
		State:    gofakeit.State(),
		Postal:   gofakeit.DigitN(6),
		Country:  "India",
	}
}

func assertProfile(t *testing.T, expected, actual domain.Profile) {
	t.Helper()

	diff := cmp.Diff(expected, actual, cmpopts.IgnoreFields(domain.Profile{}, "UpdatedAt"))
	assert.Empty(t, diff)

	assert.True(t, expected.UpdatedAt.Equal(actual.UpdatedAt))
}
