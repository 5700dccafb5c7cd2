package booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/barberfactory/barberfactory-api/internal/domain/booking"
	"github.com/barberfactory/barberfactory-api/internal/httperr"
	"github.com/barberfactory/barberfactory-api/internal/identity"
	"github.com/barberfactory/barberfactory-api/internal/models"
)

// ======================================================
// FAKE REPOSITORY
// ======================================================

type fakeRepo struct {
	shops    map[uint]*models.Shop
	users    map[uint]*models.User
	bookings map[uint]*models.Booking

	nextID uint

	clientLists map[uint][]models.Booking
	shopLists   map[uint][]models.Booking
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		shops:       map[uint]*models.Shop{},
		users:       map[uint]*models.User{},
		bookings:    map[uint]*models.Booking{},
		clientLists: map[uint][]models.Booking{},
		shopLists:   map[uint][]models.Booking{},
	}
}

func (f *fakeRepo) GetShopByID(ctx context.Context, id uint) (*models.Shop, error) {
	if s, ok := f.shops[id]; ok {
		return s, nil
	}
	return nil, httperr.ErrBusiness("record_not_found")
}

func (f *fakeRepo) GetShopByOwner(ctx context.Context, ownerID uint) (*models.Shop, error) {
	for _, s := range f.shops {
		if s.OwnerID == ownerID {
			return s, nil
		}
	}
	return nil, httperr.ErrBusiness("record_not_found")
}

func (f *fakeRepo) GetUserByID(ctx context.Context, id uint) (*models.User, error) {
	if u, ok := f.users[id]; ok {
		return u, nil
	}
	return nil, httperr.ErrBusiness("record_not_found")
}

// CreateBooking mirrors the real repository's contract: the slot check
// and the insert are one atomic step.
func (f *fakeRepo) CreateBooking(ctx context.Context, b *models.Booking) error {
	for _, existing := range f.bookings {
		if existing.ShopID == b.ShopID &&
			existing.Date.Equal(b.Date) &&
			existing.Time == b.Time &&
			!domain.Status(existing.Status).IsTerminal() {
			return httperr.ErrBusiness("slot_unavailable")
		}
	}

	f.nextID++
	b.ID = f.nextID
	f.bookings[b.ID] = b
	return nil
}

func (f *fakeRepo) GetBookingByID(ctx context.Context, id uint) (*models.Booking, error) {
	if b, ok := f.bookings[id]; ok {
		return b, nil
	}
	return nil, httperr.ErrBusiness("record_not_found")
}

func (f *fakeRepo) UpdateBooking(ctx context.Context, b *models.Booking) error {
	f.bookings[b.ID] = b
	return nil
}

func (f *fakeRepo) ListBookingsByClient(ctx context.Context, clientID uint) ([]models.Booking, error) {
	return f.clientLists[clientID], nil
}

func (f *fakeRepo) ListBookingsByShop(ctx context.Context, shopID uint) ([]models.Booking, error) {
	return f.shopLists[shopID], nil
}

// ======================================================
// FIXTURES
// ======================================================

const (
	barberID = uint(1)
	clientID = uint(2)
	otherID  = uint(3)
	shopID   = uint(10)
)

func seededRepo() *fakeRepo {
	repo := newFakeRepo()
	repo.users[barberID] = &models.User{ID: barberID, FullName: "Blake Trimmer", PhoneNumber: "5550001111", IsBarber: true}
	repo.users[clientID] = &models.User{ID: clientID, FullName: "Casey Ward", PhoneNumber: "5550002222"}
	repo.users[otherID] = &models.User{ID: otherID, FullName: "Drew Ellis", PhoneNumber: "5550003333"}
	repo.shops[shopID] = &models.Shop{ID: shopID, OwnerID: barberID, Name: "Fade Factory", Phone: "5550009999", Address: "12 Main St"}
	return repo
}

func fixedNow() time.Time {
	return time.Date(2024, time.May, 20, 10, 0, 0, 0, time.UTC)
}

func newCreateUC(repo *fakeRepo) *CreateBooking {
	uc := NewCreateBooking(repo, nil)
	uc.now = fixedNow
	return uc
}

func clientIdent() identity.Identity { return identity.Identity{UserID: clientID} }
func barberIdent() identity.Identity { return identity.Identity{UserID: barberID, IsBarber: true} }

// ======================================================
// CREATE
// ======================================================

func TestCreateBooking(t *testing.T) {
	repo := seededRepo()
	uc := newCreateUC(repo)

	b, err := uc.Execute(context.Background(), clientIdent(), CreateBookingInput{
		ShopID: shopID,
		Date:   "2024-06-01",
		Time:   "09:00",
	})
	require.NoError(t, err)

	assert.Equal(t, "PENDING", b.Status)
	assert.Equal(t, clientID, b.ClientID)
	assert.Equal(t, shopID, b.ShopID)
	assert.Equal(t, "09:00", b.Time)

	// Names are captured at creation time.
	assert.Equal(t, "Casey Ward", b.ClientName)
	assert.Equal(t, "Fade Factory", b.ShopName)
}

func TestCreateBookingShopNotFound(t *testing.T) {
	uc := newCreateUC(seededRepo())

	_, err := uc.Execute(context.Background(), clientIdent(), CreateBookingInput{
		ShopID: 999,
		Date:   "2024-06-01",
		Time:   "09:00",
	})
	assert.True(t, httperr.IsBusiness(err, "shop_not_found"))
}

func TestCreateBookingBarberForbidden(t *testing.T) {
	uc := newCreateUC(seededRepo())

	_, err := uc.Execute(context.Background(), barberIdent(), CreateBookingInput{
		ShopID: shopID,
		Date:   "2024-06-01",
		Time:   "09:00",
	})
	assert.True(t, httperr.IsBusiness(err, "barbers_cannot_book"))
}

func TestCreateBookingValidation(t *testing.T) {
	uc := newCreateUC(seededRepo())

	cases := []struct {
		name string
		in   CreateBookingInput
		code string
	}{
		{"slot outside set", CreateBookingInput{ShopID: shopID, Date: "2024-06-01", Time: "08:30"}, "invalid_slot"},
		{"malformed date", CreateBookingInput{ShopID: shopID, Date: "06/01/2024", Time: "09:00"}, "invalid_date"},
		{"same day", CreateBookingInput{ShopID: shopID, Date: "2024-05-20", Time: "09:00"}, "too_soon"},
		{"past the window", CreateBookingInput{ShopID: shopID, Date: "2024-07-01", Time: "09:00"}, "too_far_ahead"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), clientIdent(), tc.in)
			assert.True(t, httperr.IsBusiness(err, tc.code), "got %v", err)
		})
	}
}

func TestCreateBookingSlotConflict(t *testing.T) {
	repo := seededRepo()
	uc := newCreateUC(repo)

	in := CreateBookingInput{ShopID: shopID, Date: "2024-06-01", Time: "09:00"}

	_, err := uc.Execute(context.Background(), clientIdent(), in)
	require.NoError(t, err)

	// A second caller hitting the same slot while the first booking is
	// still open must be turned away.
	_, err = uc.Execute(context.Background(), identity.Identity{UserID: otherID}, in)
	assert.True(t, httperr.IsBusiness(err, "slot_unavailable"))

	// A different slot on the same day is fine.
	_, err = uc.Execute(context.Background(), identity.Identity{UserID: otherID}, CreateBookingInput{
		ShopID: shopID,
		Date:   "2024-06-01",
		Time:   "10:00",
	})
	assert.NoError(t, err)
}

func TestCreateBookingDeclinedSlotReopens(t *testing.T) {
	repo := seededRepo()
	uc := newCreateUC(repo)

	in := CreateBookingInput{ShopID: shopID, Date: "2024-06-01", Time: "09:00"}

	b, err := uc.Execute(context.Background(), clientIdent(), in)
	require.NoError(t, err)

	b.Status = string(domain.StatusDeclined)

	_, err = uc.Execute(context.Background(), identity.Identity{UserID: otherID}, in)
	assert.NoError(t, err, "a declined booking no longer holds the slot")
}

// ======================================================
// STATUS
// ======================================================

func TestUpdateBookingStatus(t *testing.T) {
	repo := seededRepo()
	createUC := newCreateUC(repo)
	statusUC := NewUpdateBookingStatus(repo, nil)

	b, err := createUC.Execute(context.Background(), clientIdent(), CreateBookingInput{
		ShopID: shopID,
		Date:   "2024-06-01",
		Time:   "09:00",
	})
	require.NoError(t, err)

	updated, err := statusUC.Execute(context.Background(), barberIdent(), b.ID, "CONFIRMED")
	require.NoError(t, err)
	assert.Equal(t, "CONFIRMED", updated.Status)

	// Terminal now; declining afterwards must fail.
	_, err = statusUC.Execute(context.Background(), barberIdent(), b.ID, "DECLINED")
	assert.True(t, httperr.IsBusiness(err, "invalid_state"))
}

func TestUpdateBookingStatusNotFound(t *testing.T) {
	statusUC := NewUpdateBookingStatus(seededRepo(), nil)

	_, err := statusUC.Execute(context.Background(), barberIdent(), 404, "CONFIRMED")
	assert.True(t, httperr.IsBusiness(err, "booking_not_found"))
}

func TestUpdateBookingStatusForbidden(t *testing.T) {
	repo := seededRepo()
	createUC := newCreateUC(repo)
	statusUC := NewUpdateBookingStatus(repo, nil)

	b, err := createUC.Execute(context.Background(), clientIdent(), CreateBookingInput{
		ShopID: shopID,
		Date:   "2024-06-01",
		Time:   "09:00",
	})
	require.NoError(t, err)

	// Neither the booking client nor a stranger may resolve it.
	for _, ident := range []identity.Identity{clientIdent(), {UserID: otherID}} {
		_, err = statusUC.Execute(context.Background(), ident, b.ID, "CONFIRMED")
		assert.True(t, httperr.IsBusiness(err, "not_shop_owner"))
	}

	assert.Equal(t, "PENDING", repo.bookings[b.ID].Status)
}

func TestUpdateBookingStatusInvalidTarget(t *testing.T) {
	repo := seededRepo()
	createUC := newCreateUC(repo)
	statusUC := NewUpdateBookingStatus(repo, nil)

	b, err := createUC.Execute(context.Background(), clientIdent(), CreateBookingInput{
		ShopID: shopID,
		Date:   "2024-06-01",
		Time:   "09:00",
	})
	require.NoError(t, err)

	for _, raw := range []string{"PENDING", "DONE", ""} {
		_, err = statusUC.Execute(context.Background(), barberIdent(), b.ID, raw)
		assert.True(t, httperr.IsBusiness(err, "invalid_status"), "raw=%q", raw)
	}
}

// ======================================================
// LIST
// ======================================================

func TestListBookingsForClient(t *testing.T) {
	repo := seededRepo()
	repo.clientLists[clientID] = []models.Booking{
		{ID: 2, ShopID: shopID, ShopName: "Fade Factory", Date: date("2024-06-05"), Time: "10:00", Status: "PENDING",
			Shop: models.Shop{Address: "12 Main St", Phone: "5550009999"}},
		{ID: 1, ShopID: shopID, ShopName: "Fade Factory", Date: date("2024-06-01"), Time: "09:00", Status: "CONFIRMED",
			Shop: models.Shop{Address: "12 Main St", Phone: "5550009999"}},
	}

	listUC := NewListBookings(repo)

	out, err := listUC.Execute(context.Background(), clientIdent())
	require.NoError(t, err)

	require.Len(t, out.MyBookings, 2)
	assert.Empty(t, out.ShopBookings)

	first := out.MyBookings[0]
	assert.Equal(t, uint(2), first.ID)
	assert.Equal(t, "Fade Factory", first.ShopName)
	assert.Equal(t, "12 Main St", first.ShopAddress)
	assert.Equal(t, "5550009999", first.ShopPhone)
}

func TestListBookingsForBarber(t *testing.T) {
	repo := seededRepo()
	repo.shopLists[shopID] = []models.Booking{
		{ID: 1, ClientID: clientID, ClientName: "Casey Ward", Date: date("2024-06-01"), Time: "09:00", Status: "PENDING",
			Client: models.User{PhoneNumber: "5550002222"}},
	}

	listUC := NewListBookings(repo)

	out, err := listUC.Execute(context.Background(), barberIdent())
	require.NoError(t, err)

	assert.Empty(t, out.MyBookings)
	require.Len(t, out.ShopBookings, 1)
	assert.Equal(t, "Casey Ward", out.ShopBookings[0].ClientName)
	assert.Equal(t, "5550002222", out.ShopBookings[0].ClientPhone)
}

func TestListBookingsForBarberWithoutShop(t *testing.T) {
	repo := seededRepo()
	delete(repo.shops, shopID)

	listUC := NewListBookings(repo)

	out, err := listUC.Execute(context.Background(), barberIdent())
	require.NoError(t, err)
	assert.Empty(t, out.MyBookings)
	assert.Empty(t, out.ShopBookings)
}

func date(raw string) time.Time {
	d, _ := time.Parse("2006-01-02", raw)
	return d
}
