package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syaifulazham/booth-visit/internal/domain"
	"github.com/syaifulazham/booth-visit/internal/repository"
)

type fakeVisitorRepo struct {
	visitors map[uint]domain.Visitor
	nextID   uint
}

func newFakeVisitorRepo() *fakeVisitorRepo {
	return &fakeVisitorRepo{
		visitors: map[uint]domain.Visitor{},
		nextID:   1,
	}
}

func (f *fakeVisitorRepo) Create(_ context.Context, visitor domain.Visitor) (domain.Visitor, error) {
	visitor.ID = f.nextID
	f.nextID++
	f.visitors[visitor.ID] = visitor

	return visitor, nil
}

func (f *fakeVisitorRepo) FindByCookieID(_ context.Context, cookieID string) (domain.Visitor, error) {
	for _, visitor := range f.visitors {
		if visitor.CookieID == cookieID {
			return visitor, nil
		}
	}

	return domain.Visitor{}, repository.ErrVisitorNotFound
}

func (f *fakeVisitorRepo) FindByCookieIDWithVisits(ctx context.Context, cookieID string) (domain.Visitor, error) {
	return f.FindByCookieID(ctx, cookieID)
}

func (f *fakeVisitorRepo) FindByPhone(_ context.Context, phone string) (domain.Visitor, error) {
	for _, visitor := range f.visitors {
		if visitor.Phone != nil && *visitor.Phone == phone {
			return visitor, nil
		}
	}

	return domain.Visitor{}, repository.ErrVisitorNotFound
}

func (f *fakeVisitorRepo) FindAll(_ context.Context) ([]domain.Visitor, error) {
	visitors := make([]domain.Visitor, 0, len(f.visitors))
	for _, visitor := range f.visitors {
		visitors = append(visitors, visitor)
	}

	return visitors, nil
}

func (f *fakeVisitorRepo) Update(_ context.Context, visitor domain.Visitor) (domain.Visitor, error) {
	if _, ok := f.visitors[visitor.ID]; !ok {
		return domain.Visitor{}, repository.ErrVisitorNotFound
	}
	f.visitors[visitor.ID] = visitor

	return visitor, nil
}

type fakeBoothCounter struct {
	count int
}

func (f *fakeBoothCounter) Count(_ context.Context) (int, error) {
	return f.count, nil
}

func TestVisitorService_Register(t *testing.T) {
	repo := newFakeVisitorRepo()
	svc := NewVisitorService(repo, &fakeBoothCounter{count: 10})

	visitor, returning, err := svc.Register(context.Background(), domain.Visitor{
		Name:   "Aisyah",
		Email:  "aisyah@example.com",
		Gender: "female",
	})
	require.NoError(t, err)

	assert.False(t, returning)
	assert.NotZero(t, visitor.ID)
	// 16 random bytes, hex encoded.
	assert.Len(t, visitor.CookieID, 32)
}

func TestVisitorService_Register_KnownPhoneReturnsExisting(t *testing.T) {
	repo := newFakeVisitorRepo()
	svc := NewVisitorService(repo, &fakeBoothCounter{count: 10})

	phone := "+60123456789"
	first, _, err := svc.Register(context.Background(), domain.Visitor{
		Name:   "Aisyah",
		Email:  "aisyah@example.com",
		Phone:  &phone,
		Gender: "female",
	})
	require.NoError(t, err)

	second, returning, err := svc.Register(context.Background(), domain.Visitor{
		Name:   "Aisyah Binti Ahmad",
		Email:  "other@example.com",
		Phone:  &phone,
		Gender: "female",
	})
	require.NoError(t, err)

	assert.True(t, returning)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, first.CookieID, second.CookieID)
	assert.Len(t, repo.visitors, 1)
}

func TestVisitorService_CheckRegistration(t *testing.T) {
	repo := newFakeVisitorRepo()
	svc := NewVisitorService(repo, &fakeBoothCounter{count: 10})

	_, registered, err := svc.CheckRegistration(context.Background(), "unknown")
	require.NoError(t, err)
	assert.False(t, registered)

	visitor, _, err := svc.Register(context.Background(), domain.Visitor{
		Name:   "Aisyah",
		Email:  "aisyah@example.com",
		Gender: "female",
	})
	require.NoError(t, err)

	got, registered, err := svc.CheckRegistration(context.Background(), visitor.CookieID)
	require.NoError(t, err)
	assert.True(t, registered)
	assert.Equal(t, visitor.ID, got.ID)
}

func TestVisitorService_GetProfile(t *testing.T) {
	repo := newFakeVisitorRepo()
	svc := NewVisitorService(repo, &fakeBoothCounter{count: 10})

	visitor, _, err := svc.Register(context.Background(), domain.Visitor{
		Name:   "Aisyah",
		Email:  "aisyah@example.com",
		Gender: "female",
	})
	require.NoError(t, err)

	// Five visits out of ten booths unlocks Bronze and Silver.
	stored := repo.visitors[visitor.ID]
	stored.Visits = make([]domain.Visit, 5)
	repo.visitors[visitor.ID] = stored

	profile, err := svc.GetProfile(context.Background(), visitor.CookieID)
	require.NoError(t, err)

	assert.Equal(t, 10, profile.TotalBooths)
	require.Len(t, profile.Achievements, 2)
	assert.Equal(t, "Bronze", profile.Achievements[0].Level)
	assert.Equal(t, "Silver", profile.Achievements[1].Level)
}

func TestVisitorService_UpdateProfile_KeepsIdentity(t *testing.T) {
	repo := newFakeVisitorRepo()
	svc := NewVisitorService(repo, &fakeBoothCounter{count: 10})

	visitor, _, err := svc.Register(context.Background(), domain.Visitor{
		Name:   "Aisyah",
		Email:  "aisyah@example.com",
		Gender: "female",
	})
	require.NoError(t, err)

	updated, err := svc.UpdateProfile(context.Background(), visitor.CookieID, domain.Visitor{
		Name:   "Aisyah Binti Ahmad",
		Email:  "new@example.com",
		Gender: "female",
		// A forged identity in the payload must not stick.
		ID:       999,
		CookieID: "forged",
	})
	require.NoError(t, err)

	assert.Equal(t, visitor.ID, updated.ID)
	assert.Equal(t, visitor.CookieID, updated.CookieID)
	assert.Equal(t, "new@example.com", updated.Email)
}
