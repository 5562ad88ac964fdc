package postgres

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/Coullax/disaster-relief-management/internal/models"
	"github.com/Coullax/disaster-relief-management/internal/storage"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// Интеграционные тесты объявлений (listings.go).
//
// Покрытие:
//   - CreateListing: серверные поля, пустой media_urls, ErrNotFound для чужого user_id,
//     ErrInvalidArgument на нарушение CHECK;
//   - CountListingsByUser: учитываются объявления в любом статусе;
//   - ListListings: только active, фильтры (search/category/location/type, "all"),
//     пересечение фильтров, экранирование % и _, порядок view_count ASC, created_at DESC,
//     пагинация и общий счётчик;
//   - ListingByID: данные владельца, плейсхолдер имени, ErrNotFound;
//   - ListingsByUser: все статусы, новые первыми;
//   - IncrementViewCount: N конкурентных инкрементов дают ровно N, ErrNotFound;
//   - сквозной сценарий: первое объявление active, второе от того же контакта pending.

func ptr[T any](v T) *T { return &v }

// newListing — минимально валидное объявление.
func newListing(userID uuid.UUID, title string) *models.Listing {
	return &models.Listing{
		UserID:      userID,
		Title:       title,
		Description: "desc",
		Type:        models.ListingTypeNeed,
		Category:    "shelter",
		Location:    "Colombo",
		Status:      models.ListingStatusActive,
	}
}

// mustProfile — создаёт анонимный профиль с уникальным e-mail.
func mustProfile(t *testing.T, st *Storage, name string) uuid.UUID {
	t.Helper()
	id, err := st.ResolveAnonymousProfile(context.Background(), storage.ProfileMatch{
		Email:    fmt.Sprintf("%s-%s@x.io", name, uuid.NewString()[:8]),
		FullName: name,
	})
	require.NoError(t, err)
	return id
}

// mustCreate — вставляет объявление и задаёт created_at/view_count напрямую для детерминизма.
func mustCreate(t *testing.T, st *Storage, l *models.Listing, createdAt time.Time, views int64) *models.Listing {
	t.Helper()
	ctx := context.Background()

	created, err := st.CreateListing(ctx, l)
	require.NoError(t, err)

	_, err = st.db.Exec(ctx, `UPDATE listings SET created_at = $2, view_count = $3 WHERE id = $1`, created.ID, createdAt, views)
	require.NoError(t, err)

	created.CreatedAt = createdAt
	created.ViewCount = views
	return created
}

func ids(listings []models.Listing) []uuid.UUID {
	out := make([]uuid.UUID, 0, len(listings))
	for _, l := range listings {
		out = append(out, l.ID)
	}
	return out
}

func TestIntegration_CreateListing_OK(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()
	ctx := context.Background()

	owner := mustProfile(t, st, "owner")
	in := newListing(owner, "Need water")
	in.Latitude = ptr(6.927079)
	in.Longitude = ptr(79.861244)
	in.City = "Colombo"
	in.MediaURLs = []string{"https://cdn/a.jpg", "https://cdn/b.jpg"}
	in.ContactPhone = "+94771234567"

	got, err := st.CreateListing(ctx, in)
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, got.ID)
	require.Equal(t, owner, got.UserID)
	require.Equal(t, models.ListingTypeNeed, got.Type)
	require.Equal(t, models.ListingStatusActive, got.Status)
	require.Equal(t, []string{"https://cdn/a.jpg", "https://cdn/b.jpg"}, got.MediaURLs)
	require.InDelta(t, 6.927079, *got.Latitude, 1e-9)
	require.Equal(t, "Colombo", got.City)
	require.Empty(t, got.District)
	require.Empty(t, got.ContactEmail)
	require.EqualValues(t, 0, got.ViewCount)
	require.WithinDuration(t, time.Now(), got.CreatedAt, 5*time.Second)

	bare, err := st.CreateListing(ctx, newListing(owner, "No media"))
	require.NoError(t, err)
	require.NotNil(t, bare.MediaURLs)
	require.Empty(t, bare.MediaURLs)
	require.Nil(t, bare.Latitude)
}

func TestIntegration_CreateListing_UnknownOwner(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	_, err := st.CreateListing(context.Background(), newListing(uuid.New(), "orphan"))
	require.ErrorIs(t, err, storage.ErrNotFound)
}

func TestIntegration_CreateListing_CheckViolation(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	owner := mustProfile(t, st, "owner")
	l := newListing(owner, "   ")
	_, err := st.CreateListing(context.Background(), l)
	require.ErrorIs(t, err, storage.ErrInvalidArgument)

	l = newListing(owner, "bad type")
	l.Type = "barter"
	_, err = st.CreateListing(context.Background(), l)
	require.ErrorIs(t, err, storage.ErrInvalidArgument)
}

func TestIntegration_CountListingsByUser_AnyStatus(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()
	ctx := context.Background()

	owner := mustProfile(t, st, "owner")
	n, err := st.CountListingsByUser(ctx, owner)
	require.NoError(t, err)
	require.EqualValues(t, 0, n)

	_, err = st.CreateListing(ctx, newListing(owner, "first"))
	require.NoError(t, err)

	pending := newListing(owner, "second")
	pending.Status = models.ListingStatusPending
	_, err = st.CreateListing(ctx, pending)
	require.NoError(t, err)

	n, err = st.CountListingsByUser(ctx, owner)
	require.NoError(t, err)
	require.EqualValues(t, 2, n)
}

func TestIntegration_ListListings_OrderAndActiveOnly(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()
	ctx := context.Background()

	owner := mustProfile(t, st, "owner")
	base := time.Now().Add(-time.Hour).UTC().Truncate(time.Millisecond)

	// Ожидаемый порядок: меньше просмотров выше; при равенстве — новее выше.
	a := mustCreate(t, st, newListing(owner, "a"), base.Add(1*time.Minute), 5)
	b := mustCreate(t, st, newListing(owner, "b"), base.Add(2*time.Minute), 0)
	c := mustCreate(t, st, newListing(owner, "c"), base.Add(3*time.Minute), 0)
	d := mustCreate(t, st, newListing(owner, "d"), base.Add(4*time.Minute), 2)

	hidden := newListing(owner, "hidden")
	hidden.Status = models.ListingStatusPending
	mustCreate(t, st, hidden, base.Add(5*time.Minute), 0)

	closed := newListing(owner, "closed")
	closed.Status = models.ListingStatusClosed
	mustCreate(t, st, closed, base.Add(6*time.Minute), 0)

	page, err := st.ListListings(ctx, models.ListingFilter{Page: 1, Limit: 10})
	require.NoError(t, err)
	require.EqualValues(t, 4, page.TotalCount)
	require.Equal(t, []uuid.UUID{c.ID, b.ID, d.ID, a.ID}, ids(page.Listings))

	for i := 1; i < len(page.Listings); i++ {
		prev, cur := page.Listings[i-1], page.Listings[i]
		require.True(t, prev.ViewCount < cur.ViewCount ||
			(prev.ViewCount == cur.ViewCount && !prev.CreatedAt.Before(cur.CreatedAt)))
	}
}

func TestIntegration_ListListings_Filters(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()
	ctx := context.Background()

	owner := mustProfile(t, st, "owner")
	base := time.Now().Add(-time.Hour).UTC()

	water := newListing(owner, "Need WATER bottles")
	water.Location = "Colombo 07"
	mustCreate(t, st, water, base.Add(time.Minute), 0)

	vet := newListing(owner, "Vet help for dogs")
	vet.Type = models.ListingTypeOffer
	vet.Category = "veterinary"
	vet.Location = "Kandy"
	mustCreate(t, st, vet, base.Add(2*time.Minute), 0)

	food := newListing(owner, "Water and food")
	food.Category = "food"
	food.Type = models.ListingTypeOffer
	food.Location = "Galle"
	mustCreate(t, st, food, base.Add(3*time.Minute), 0)

	tests := []struct {
		name   string
		filter models.ListingFilter
		want   []string
	}{
		{"no filters", models.ListingFilter{}, []string{"Water and food", "Vet help for dogs", "Need WATER bottles"}},
		{"all is no-op", models.ListingFilter{Category: "all", Type: "ALL", Location: "all"}, []string{"Water and food", "Vet help for dogs", "Need WATER bottles"}},
		{"search case-insensitive", models.ListingFilter{Search: "water"}, []string{"Water and food", "Need WATER bottles"}},
		{"category exact", models.ListingFilter{Category: "veterinary"}, []string{"Vet help for dogs"}},
		{"type exact", models.ListingFilter{Type: "offer"}, []string{"Water and food", "Vet help for dogs"}},
		{"location substring", models.ListingFilter{Location: "colombo"}, []string{"Need WATER bottles"}},
		{"intersection", models.ListingFilter{Search: "water", Type: "offer"}, []string{"Water and food"}},
		{"empty intersection", models.ListingFilter{Search: "water", Category: "veterinary"}, []string{}},
		{"percent is literal", models.ListingFilter{Search: "%"}, []string{}},
		{"underscore is literal", models.ListingFilter{Search: "_"}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := tt.filter
			f.Page, f.Limit = 1, 10

			page, err := st.ListListings(ctx, f)
			require.NoError(t, err)

			titles := make([]string, 0, len(page.Listings))
			for _, l := range page.Listings {
				titles = append(titles, l.Title)
			}
			require.Equal(t, tt.want, titles)
			require.EqualValues(t, len(tt.want), page.TotalCount)
		})
	}
}

func TestIntegration_ListListings_Pagination(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()
	ctx := context.Background()

	owner := mustProfile(t, st, "owner")
	base := time.Now().Add(-time.Hour).UTC()

	const total = 7
	for i := 0; i < total; i++ {
		mustCreate(t, st, newListing(owner, fmt.Sprintf("item-%d", i)), base.Add(time.Duration(i)*time.Minute), 0)
	}

	seen := map[uuid.UUID]struct{}{}
	for p := int32(1); p <= 3; p++ {
		page, err := st.ListListings(ctx, models.ListingFilter{Page: p, Limit: 3})
		require.NoError(t, err)
		require.EqualValues(t, total, page.TotalCount)

		wantLen := 3
		if p == 3 {
			wantLen = 1
		}
		require.Len(t, page.Listings, wantLen)

		for _, l := range page.Listings {
			_, dup := seen[l.ID]
			require.False(t, dup, "listing %s returned twice", l.ID)
			seen[l.ID] = struct{}{}
		}
	}
	require.Len(t, seen, total)

	// Страница за пределами — пустой список, но корректный total.
	page, err := st.ListListings(ctx, models.ListingFilter{Page: 10, Limit: 3})
	require.NoError(t, err)
	require.Empty(t, page.Listings)
	require.EqualValues(t, total, page.TotalCount)
}

func TestIntegration_ListingByID(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()
	ctx := context.Background()

	named := mustProfile(t, st, "Kamal")
	created, err := st.CreateListing(ctx, newListing(named, "Need tents"))
	require.NoError(t, err)

	got, err := st.ListingByID(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, "Need tents", got.Title)
	require.Equal(t, "Kamal", got.Owner.FullName)
	require.Empty(t, got.Owner.AvatarURL)

	// Имя стёрто — в карточке плейсхолдер.
	require.NoError(t, st.UpdateDisplayName(ctx, named, ""))
	got, err = st.ListingByID(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, models.AnonymousName, got.Owner.FullName)

	// Неактивные объявления тоже доступны по прямой ссылке.
	pending := newListing(named, "pending one")
	pending.Status = models.ListingStatusPending
	p, err := st.CreateListing(ctx, pending)
	require.NoError(t, err)
	got, err = st.ListingByID(ctx, p.ID)
	require.NoError(t, err)
	require.Equal(t, models.ListingStatusPending, got.Status)

	_, err = st.ListingByID(ctx, uuid.New())
	require.ErrorIs(t, err, storage.ErrNotFound)
}

func TestIntegration_ListingsByUser_NewestFirst(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()
	ctx := context.Background()

	owner := mustProfile(t, st, "owner")
	other := mustProfile(t, st, "other")
	base := time.Now().Add(-time.Hour).UTC()

	old := mustCreate(t, st, newListing(owner, "old"), base, 0)
	pending := newListing(owner, "new")
	pending.Status = models.ListingStatusPending
	recent := mustCreate(t, st, pending, base.Add(time.Minute), 0)
	mustCreate(t, st, newListing(other, "foreign"), base.Add(2*time.Minute), 0)

	got, err := st.ListingsByUser(ctx, owner)
	require.NoError(t, err)
	require.Equal(t, []uuid.UUID{recent.ID, old.ID}, ids(got))

	none, err := st.ListingsByUser(ctx, uuid.New())
	require.NoError(t, err)
	require.NotNil(t, none)
	require.Empty(t, none)
}

func TestIntegration_IncrementViewCount_Concurrent(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()
	ctx := context.Background()

	owner := mustProfile(t, st, "owner")
	l, err := st.CreateListing(ctx, newListing(owner, "popular"))
	require.NoError(t, err)

	const n = 50
	var wg sync.WaitGroup
	errs := make(chan error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs <- st.IncrementViewCount(ctx, l.ID)
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		require.NoError(t, err)
	}

	got, err := st.ListingByID(ctx, l.ID)
	require.NoError(t, err)
	require.EqualValues(t, n, got.ViewCount)
}

func TestIntegration_IncrementViewCount_NotFound(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	err := st.IncrementViewCount(context.Background(), uuid.New())
	require.ErrorIs(t, err, storage.ErrNotFound)
}

// Сквозной сценарий на уровне хранилища: профиль по e-mail, затем статус по числу объявлений.
func TestIntegration_Scenario_SecondListingPending(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()
	ctx := context.Background()

	statusFor := func(userID uuid.UUID) models.ListingStatus {
		n, err := st.CountListingsByUser(ctx, userID)
		require.NoError(t, err)
		if n == 0 {
			return models.ListingStatusActive
		}
		return models.ListingStatusPending
	}

	p1, err := st.ResolveAnonymousProfile(ctx, storage.ProfileMatch{Email: "a@x.com"})
	require.NoError(t, err)
	l1 := newListing(p1, "Need water")
	l1.Status = statusFor(p1)
	l1, err = st.CreateListing(ctx, l1)
	require.NoError(t, err)
	require.Equal(t, models.ListingStatusActive, l1.Status)
	require.Equal(t, p1, l1.UserID)

	p2, err := st.ResolveAnonymousProfile(ctx, storage.ProfileMatch{Email: "a@x.com"})
	require.NoError(t, err)
	require.Equal(t, p1, p2)
	l2 := newListing(p2, "Need food")
	l2.Status = statusFor(p2)
	l2, err = st.CreateListing(ctx, l2)
	require.NoError(t, err)
	require.Equal(t, models.ListingStatusPending, l2.Status)
}
