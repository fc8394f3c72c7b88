package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syaifulazham/booth-visit/internal/domain"
	"github.com/syaifulazham/booth-visit/internal/repository"
)

type fakeVisitRepo struct {
	visits   map[uint]domain.Visit
	visitors map[uint]domain.Visitor
	booths   map[uint]domain.Booth
	nextID   uint
}

func newFakeVisitRepo() *fakeVisitRepo {
	return &fakeVisitRepo{
		visits:   map[uint]domain.Visit{},
		visitors: map[uint]domain.Visitor{},
		booths:   map[uint]domain.Booth{},
		nextID:   1,
	}
}

func (f *fakeVisitRepo) denormalize(visit domain.Visit) domain.Visit {
	if visitor, ok := f.visitors[visit.VisitorID]; ok {
		visit.Visitor = &visitor
	}
	if booth, ok := f.booths[visit.BoothID]; ok {
		visit.Booth = &booth
	}

	return visit
}

func (f *fakeVisitRepo) Create(_ context.Context, visit domain.Visit) (domain.Visit, error) {
	for _, existing := range f.visits {
		if existing.VisitorID == visit.VisitorID && existing.BoothID == visit.BoothID {
			return domain.Visit{}, repository.ErrVisitExists
		}
	}

	visit.ID = f.nextID
	f.nextID++
	f.visits[visit.ID] = visit

	return f.denormalize(visit), nil
}

func (f *fakeVisitRepo) FindByID(_ context.Context, id uint) (domain.Visit, error) {
	visit, ok := f.visits[id]
	if !ok {
		return domain.Visit{}, repository.ErrVisitNotFound
	}

	return f.denormalize(visit), nil
}

func (f *fakeVisitRepo) FindAll(_ context.Context) ([]domain.Visit, error) {
	visits := make([]domain.Visit, 0, len(f.visits))
	for _, visit := range f.visits {
		visits = append(visits, f.denormalize(visit))
	}

	return visits, nil
}

func (f *fakeVisitRepo) SetRating(_ context.Context, id uint, rating int, comment *string) (domain.Visit, error) {
	visit, ok := f.visits[id]
	if !ok {
		return domain.Visit{}, repository.ErrVisitNotFound
	}

	visit.Rating = &rating
	visit.Comment = comment
	f.visits[id] = visit

	return f.denormalize(visit), nil
}

type fakeVisitorLookup struct {
	visitors map[string]domain.Visitor
}

func (f *fakeVisitorLookup) FindByCookieID(_ context.Context, cookieID string) (domain.Visitor, error) {
	visitor, ok := f.visitors[cookieID]
	if !ok {
		return domain.Visitor{}, repository.ErrVisitorNotFound
	}

	return visitor, nil
}

type fakeBoothLookup struct {
	booths map[string]domain.Booth
}

func (f *fakeBoothLookup) FindByHashcode(_ context.Context, hashcode string) (domain.Booth, error) {
	booth, ok := f.booths[hashcode]
	if !ok {
		return domain.Booth{}, repository.ErrBoothNotFound
	}

	return booth, nil
}

func newVisitFixture() (*VisitService, *fakeVisitRepo) {
	visitor := domain.Visitor{ID: 7, Name: "Aisyah", CookieID: "c0ffee"}
	booth := domain.Booth{ID: 1, BoothName: "Robotics", Hashcode: "aaaaaaaaaaaaaaaa"}

	repo := newFakeVisitRepo()
	repo.visitors[visitor.ID] = visitor
	repo.booths[booth.ID] = booth

	svc := NewVisitService(
		repo,
		&fakeVisitorLookup{visitors: map[string]domain.Visitor{visitor.CookieID: visitor}},
		&fakeBoothLookup{booths: map[string]domain.Booth{booth.Hashcode: booth}},
	)

	return svc, repo
}

func TestVisitService_LogVisit(t *testing.T) {
	svc, _ := newVisitFixture()

	ip := "203.0.113.9"
	visit, err := svc.LogVisit(context.Background(), "c0ffee", "aaaaaaaaaaaaaaaa", &ip, nil)
	require.NoError(t, err)

	assert.Equal(t, uint(7), visit.VisitorID)
	assert.Equal(t, uint(1), visit.BoothID)
	assert.False(t, visit.VisitedAt.IsZero())
	require.NotNil(t, visit.Booth)
	assert.Equal(t, "Robotics", visit.Booth.BoothName)
}

func TestVisitService_LogVisit_Duplicate(t *testing.T) {
	svc, repo := newVisitFixture()

	first, err := svc.LogVisit(context.Background(), "c0ffee", "aaaaaaaaaaaaaaaa", nil, nil)
	require.NoError(t, err)

	_, err = svc.LogVisit(context.Background(), "c0ffee", "aaaaaaaaaaaaaaaa", nil, nil)
	assert.ErrorIs(t, err, ErrAlreadyVisited)

	// The original visit survives untouched.
	require.Len(t, repo.visits, 1)
	assert.Equal(t, first.VisitedAt, repo.visits[first.ID].VisitedAt)
}

func TestVisitService_LogVisit_UnknownBoothOrVisitor(t *testing.T) {
	svc, _ := newVisitFixture()

	_, err := svc.LogVisit(context.Background(), "c0ffee", "ffffffffffffffff", nil, nil)
	assert.ErrorIs(t, err, ErrBoothNotFound)

	_, err = svc.LogVisit(context.Background(), "stale-cookie", "aaaaaaaaaaaaaaaa", nil, nil)
	assert.ErrorIs(t, err, ErrVisitorNotFound)
}

func TestVisitService_SetRating(t *testing.T) {
	svc, repo := newVisitFixture()

	visit, err := svc.LogVisit(context.Background(), "c0ffee", "aaaaaaaaaaaaaaaa", nil, nil)
	require.NoError(t, err)
	visitedAt := repo.visits[visit.ID].VisitedAt

	comment := "great demos"
	rated, err := svc.SetRating(context.Background(), "c0ffee", visit.ID, 5, &comment)
	require.NoError(t, err)
	require.NotNil(t, rated.Rating)
	assert.Equal(t, 5, *rated.Rating)

	// Idempotent: repeating yields the same stored state, and the
	// visit timestamp never moves.
	time.Sleep(time.Millisecond)
	again, err := svc.SetRating(context.Background(), "c0ffee", visit.ID, 5, &comment)
	require.NoError(t, err)
	assert.Equal(t, rated.Rating, again.Rating)
	assert.Equal(t, visitedAt, repo.visits[visit.ID].VisitedAt)
}

func TestVisitService_Ownership(t *testing.T) {
	svc, repo := newVisitFixture()

	other := domain.Visitor{ID: 8, Name: "Farid", CookieID: "badc0de"}
	repo.visitors[other.ID] = other

	visit, err := svc.LogVisit(context.Background(), "c0ffee", "aaaaaaaaaaaaaaaa", nil, nil)
	require.NoError(t, err)

	_, err = svc.SetRating(context.Background(), "badc0de", visit.ID, 1, nil)
	assert.ErrorIs(t, err, ErrVisitForbidden)

	_, err = svc.GetVisit(context.Background(), "badc0de", visit.ID)
	assert.ErrorIs(t, err, ErrVisitForbidden)

	got, err := svc.GetVisit(context.Background(), "c0ffee", visit.ID)
	require.NoError(t, err)
	assert.Equal(t, visit.ID, got.ID)
}
