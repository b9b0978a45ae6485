package services

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/garageservices/garage-backend/internal/models"
	"github.com/garageservices/garage-backend/internal/pricing"
	"github.com/garageservices/garage-backend/internal/store"
)

type fakeBookingStore struct {
	bookings  []*models.Booking
	nextID    uint
	createErr error
	searchErr error
}

func (f *fakeBookingStore) Create(booking *models.Booking) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.nextID++
	booking.ID = f.nextID
	f.bookings = append(f.bookings, booking)
	return nil
}

func (f *fakeBookingStore) GetByID(id uint) (*models.Booking, error) {
	for _, b := range f.bookings {
		if b.ID == id {
			return b, nil
		}
	}
	return nil, errors.New("record not found")
}

func (f *fakeBookingStore) Search(query string, userID *uint) ([]models.Booking, error) {
	if f.searchErr != nil {
		return nil, f.searchErr
	}
	matches := func(b *models.Booking) bool {
		if query == "" {
			return true
		}
		needle := strings.ToLower(query)
		for _, field := range []string{b.Name, b.Email, b.Phone, b.WheelerType} {
			if strings.Contains(strings.ToLower(field), needle) {
				return true
			}
		}
		return false
	}

	var out []models.Booking
	for _, b := range f.bookings {
		if userID != nil && (b.UserID == nil || *b.UserID != *userID) {
			continue
		}
		if !matches(b) {
			continue
		}
		out = append(out, *b)
	}
	return out, nil
}

func (f *fakeBookingStore) Recent(limit int, userID *uint) ([]models.Booking, error) {
	list, err := f.Search("", userID)
	if err != nil {
		return nil, err
	}
	if len(list) > limit {
		list = list[:limit]
	}
	return list, nil
}

func (f *fakeBookingStore) UpdateStatus(id uint, status models.BookingStatus) error {
	for _, b := range f.bookings {
		if b.ID == id {
			b.Status = status
			return nil
		}
	}
	return errors.New("record not found")
}

func (f *fakeBookingStore) Delete(id uint) error {
	for i, b := range f.bookings {
		if b.ID == id {
			f.bookings = append(f.bookings[:i], f.bookings[i+1:]...)
			return nil
		}
	}
	return nil
}

func (f *fakeBookingStore) Stats(userID *uint) (store.Stats, error) {
	var stats store.Stats
	for _, b := range f.bookings {
		if userID != nil && (b.UserID == nil || *b.UserID != *userID) {
			continue
		}
		stats.Total++
		stats.Revenue += b.Cost
		switch b.Status {
		case models.BookingStatusPending:
			stats.Pending++
		case models.BookingStatusCompleted:
			stats.Completed++
		}
	}
	return stats, nil
}

type fakeNotifier struct {
	sent []*models.Booking
	err  error
}

func (f *fakeNotifier) SendBookingConfirmation(booking *models.Booking) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, booking)
	return nil
}

func validInput() CreateBookingInput {
	return CreateBookingInput{
		Name:            "Alice Smith",
		Email:           "alice@example.com",
		Phone:           "555-0101",
		WheelerType:     pricing.FourWheeler,
		ServiceType:     "Standard",
		AppointmentDate: "2026-09-15",
	}
}

func TestCreateBookingPricesFromTable(t *testing.T) {
	fake := &fakeBookingStore{}
	svc := NewBookingService(fake, pricing.NewTable(pricing.DefaultRates()), &fakeNotifier{}, false)

	booking, outcome, err := svc.Create(validInput(), nil)
	require.NoError(t, err)

	assert.Equal(t, 1000.0, booking.Cost)
	assert.Equal(t, models.BookingStatusPending, booking.Status)
	assert.False(t, outcome.Attempted)
	assert.Len(t, fake.bookings, 1)
}

func TestCreateBookingPremiumDiscount(t *testing.T) {
	svc := NewBookingService(&fakeBookingStore{}, pricing.NewTable(pricing.DefaultRates()), &fakeNotifier{}, false)

	input := validInput()
	input.ServiceType = "Premium"
	booking, _, err := svc.Create(input, nil)
	require.NoError(t, err)

	assert.Equal(t, 900.0, booking.Cost)
}

func TestCreateBookingRequiresNameAndEmail(t *testing.T) {
	svc := NewBookingService(&fakeBookingStore{}, pricing.NewTable(pricing.DefaultRates()), &fakeNotifier{}, false)

	input := validInput()
	input.Name = "   "
	_, _, err := svc.Create(input, nil)

	var verr ValidationError
	require.ErrorAs(t, err, &verr)
}

func TestCreateBookingSendsConfirmation(t *testing.T) {
	notifier := &fakeNotifier{}
	svc := NewBookingService(&fakeBookingStore{}, pricing.NewTable(pricing.DefaultRates()), notifier, true)

	_, outcome, err := svc.Create(validInput(), nil)
	require.NoError(t, err)

	assert.True(t, outcome.Attempted)
	assert.True(t, outcome.Sent)
	assert.Empty(t, outcome.Reason)
	require.Len(t, notifier.sent, 1)
	assert.Equal(t, "alice@example.com", notifier.sent[0].Email)
}

func TestCreateBookingSurvivesEmailFailure(t *testing.T) {
	fake := &fakeBookingStore{}
	notifier := &fakeNotifier{err: errors.New("email send failed: connection refused")}
	svc := NewBookingService(fake, pricing.NewTable(pricing.DefaultRates()), notifier, true)

	booking, outcome, err := svc.Create(validInput(), nil)
	require.NoError(t, err)

	assert.NotZero(t, booking.ID)
	assert.Len(t, fake.bookings, 1)
	assert.True(t, outcome.Attempted)
	assert.False(t, outcome.Sent)
	assert.Contains(t, outcome.Reason, "connection refused")
}

func TestCreateBookingStoreFailure(t *testing.T) {
	fake := &fakeBookingStore{createErr: errors.New("connection reset")}
	svc := NewBookingService(fake, pricing.NewTable(pricing.DefaultRates()), &fakeNotifier{}, true)

	_, outcome, err := svc.Create(validInput(), nil)
	require.Error(t, err)
	assert.False(t, outcome.Attempted)
}

func TestHistoryScopesToUser(t *testing.T) {
	fake := &fakeBookingStore{}
	svc := NewBookingService(fake, pricing.NewTable(pricing.DefaultRates()), &fakeNotifier{}, false)

	userID := uint(7)
	_, _, err := svc.Create(validInput(), &userID)
	require.NoError(t, err)
	_, _, err = svc.Create(validInput(), nil)
	require.NoError(t, err)

	assert.Len(t, svc.History("", &userID), 1)
	assert.Len(t, svc.History("", nil), 2)
}

func TestHistorySubstringSearch(t *testing.T) {
	fake := &fakeBookingStore{}
	svc := NewBookingService(fake, pricing.NewTable(pricing.DefaultRates()), &fakeNotifier{}, false)

	_, _, err := svc.Create(validInput(), nil)
	require.NoError(t, err)

	input := validInput()
	input.Name = "Bob Jones"
	input.Email = "bob@example.com"
	input.Phone = "555-0202"
	_, _, err = svc.Create(input, nil)
	require.NoError(t, err)

	// A substring present in exactly one booking returns exactly that row.
	list := svc.History("Jones", nil)
	require.Len(t, list, 1)
	assert.Equal(t, "Bob Jones", list[0].Name)

	// Matches apply across email and phone too.
	assert.Len(t, svc.History("alice@", nil), 1)
	assert.Len(t, svc.History("0202", nil), 1)

	// A substring matching nothing returns the empty list.
	assert.Empty(t, svc.History("Zebra", nil))
}

func TestHistoryDegradesToEmpty(t *testing.T) {
	fake := &fakeBookingStore{searchErr: errors.New("connection reset")}
	svc := NewBookingService(fake, pricing.NewTable(pricing.DefaultRates()), &fakeNotifier{}, false)

	list := svc.History("", nil)
	assert.NotNil(t, list)
	assert.Empty(t, list)
}

func TestDashboardAggregates(t *testing.T) {
	fake := &fakeBookingStore{}
	svc := NewBookingService(fake, pricing.NewTable(pricing.DefaultRates()), &fakeNotifier{}, false)

	_, _, err := svc.Create(validInput(), nil)
	require.NoError(t, err)

	input := validInput()
	input.WheelerType = pricing.TwoWheeler
	booking, _, err := svc.Create(input, nil)
	require.NoError(t, err)
	require.NoError(t, svc.UpdateStatus(booking.ID, "Completed"))

	stats, recent := svc.Dashboard(nil)
	assert.Equal(t, int64(2), stats.Total)
	assert.Equal(t, int64(1), stats.Pending)
	assert.Equal(t, int64(1), stats.Completed)
	assert.Equal(t, 1500.0, stats.Revenue)
	assert.Len(t, recent, 2)
}

func TestUpdateStatusRejectsUnknown(t *testing.T) {
	svc := NewBookingService(&fakeBookingStore{}, pricing.NewTable(pricing.DefaultRates()), &fakeNotifier{}, false)

	err := svc.UpdateStatus(1, "Done")
	var verr ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, err.Error(), "Done")
}
