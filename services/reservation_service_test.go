package services

import (
	"testing"

	"hotel-booking-backend/models"

	"github.com/stretchr/testify/require"
)

func TestCreateReservation(t *testing.T) {
	db := newTestDB(t)
	client := seedClient(t, db, "a@test.local")
	hotel, room := seedHotelWithRoom(t, db, 100)
	svc := NewReservationService(db)

	res, err := svc.Create(clientActor(client), hotel.ID, room.ID, day(10), day(13))
	require.NoError(t, err)

	require.Equal(t, models.ReservationPending, res.Status)
	require.Equal(t, client.ID, res.ClientID)
	require.InDelta(t, 300.0, res.Total, 0.001)
	require.Len(t, res.Lines, 1)
	require.Equal(t, 3, res.Lines[0].Nights)
	require.InDelta(t, 100.0, res.Lines[0].PricePerNight, 0.001)
	require.InDelta(t, 300.0, res.Lines[0].Subtotal, 0.001)
	require.InDelta(t, res.Total, res.Lines[0].Subtotal, 0.001)
}

func TestCreateReservationDateValidation(t *testing.T) {
	db := newTestDB(t)
	client := seedClient(t, db, "a@test.local")
	hotel, room := seedHotelWithRoom(t, db, 100)
	svc := NewReservationService(db)

	_, err := svc.Create(clientActor(client), hotel.ID, room.ID, day(10), day(10))
	require.ErrorIs(t, err, ErrInvalidDateRange)

	_, err = svc.Create(clientActor(client), hotel.ID, room.ID, day(13), day(10))
	require.ErrorIs(t, err, ErrInvalidDateRange)

	_, err = svc.Create(clientActor(client), hotel.ID, room.ID, day(-1), day(3))
	require.ErrorIs(t, err, ErrPastStartDate)
}

func TestCreateReservationConflicts(t *testing.T) {
	db := newTestDB(t)
	a := seedClient(t, db, "a@test.local")
	b := seedClient(t, db, "b@test.local")
	hotel, room := seedHotelWithRoom(t, db, 100)
	svc := NewReservationService(db)

	_, err := svc.Create(clientActor(a), hotel.ID, room.ID, day(10), day(13))
	require.NoError(t, err)

	// overlapping second booking must be rejected
	_, err = svc.Create(clientActor(b), hotel.ID, room.ID, day(12), day(15))
	require.ErrorIs(t, err, ErrRoomUnavailable)

	// back-to-back is legal: B checks in on A's checkout day
	_, err = svc.Create(clientActor(b), hotel.ID, room.ID, day(13), day(15))
	require.NoError(t, err)
}

func TestCancelledReservationFreesRoom(t *testing.T) {
	db := newTestDB(t)
	a := seedClient(t, db, "a@test.local")
	b := seedClient(t, db, "b@test.local")
	hotel, room := seedHotelWithRoom(t, db, 100)
	svc := NewReservationService(db)

	first, err := svc.Create(clientActor(a), hotel.ID, room.ID, day(10), day(13))
	require.NoError(t, err)
	require.NoError(t, svc.Cancel(clientActor(a), first.ID))

	_, err = svc.Create(clientActor(b), hotel.ID, room.ID, day(10), day(13))
	require.NoError(t, err)
}

func TestPriceSnapshotSurvivesRoomPriceChange(t *testing.T) {
	db := newTestDB(t)
	client := seedClient(t, db, "a@test.local")
	hotel, room := seedHotelWithRoom(t, db, 100)
	svc := NewReservationService(db)

	res, err := svc.Create(clientActor(client), hotel.ID, room.ID, day(10), day(12))
	require.NoError(t, err)

	require.NoError(t, db.Model(&models.Room{}).Where("id = ?", room.ID).
		Update("price_per_night", 999).Error)

	reloaded, err := svc.Get(clientActor(client), res.ID)
	require.NoError(t, err)
	require.InDelta(t, 200.0, reloaded.Total, 0.001)
	require.InDelta(t, 100.0, reloaded.Lines[0].PricePerNight, 0.001)
}

func TestCreateReservationUnknownTargets(t *testing.T) {
	db := newTestDB(t)
	client := seedClient(t, db, "a@test.local")
	hotel, room := seedHotelWithRoom(t, db, 100)
	svc := NewReservationService(db)

	_, err := svc.Create(clientActor(client), hotel.ID+99, room.ID, day(10), day(12))
	require.ErrorIs(t, err, ErrNotFound)

	_, err = svc.Create(clientActor(client), hotel.ID, room.ID+99, day(10), day(12))
	require.ErrorIs(t, err, ErrNotFound)

	// inactive room is not bookable
	require.NoError(t, db.Model(&models.Room{}).Where("id = ?", room.ID).
		Update("is_active", false).Error)
	_, err = svc.Create(clientActor(client), hotel.ID, room.ID, day(10), day(12))
	require.ErrorIs(t, err, ErrNotFound)
}

func TestCancelRules(t *testing.T) {
	db := newTestDB(t)
	owner := seedClient(t, db, "a@test.local")
	stranger := seedClient(t, db, "b@test.local")
	hotel, room := seedHotelWithRoom(t, db, 100)
	svc := NewReservationService(db)

	res, err := svc.Create(clientActor(owner), hotel.ID, room.ID, day(10), day(12))
	require.NoError(t, err)

	// another client cannot even see it
	require.ErrorIs(t, svc.Cancel(clientActor(stranger), res.ID), ErrNotFound)

	require.NoError(t, svc.Cancel(clientActor(owner), res.ID))
	require.ErrorIs(t, svc.Cancel(clientActor(owner), res.ID), ErrAlreadyCancelled)
}

func TestCancelPaidReservationRejected(t *testing.T) {
	db := newTestDB(t)
	owner := seedClient(t, db, "a@test.local")
	hotel, room := seedHotelWithRoom(t, db, 100)
	svc := NewReservationService(db)

	res, err := svc.Create(clientActor(owner), hotel.ID, room.ID, day(10), day(12))
	require.NoError(t, err)
	require.NoError(t, db.Model(&models.Reservation{}).Where("id = ?", res.ID).
		Update("status", models.ReservationPaid).Error)

	require.ErrorIs(t, svc.Cancel(clientActor(owner), res.ID), ErrAlreadyPaid)

	reloaded, err := svc.Get(adminActor(), res.ID)
	require.NoError(t, err)
	require.Equal(t, models.ReservationPaid, reloaded.Status)
}

func TestAdminUpdateBypassesAvailability(t *testing.T) {
	db := newTestDB(t)
	a := seedClient(t, db, "a@test.local")
	b := seedClient(t, db, "b@test.local")
	hotel, room := seedHotelWithRoom(t, db, 100)
	svc := NewReservationService(db)

	first, err := svc.Create(clientActor(a), hotel.ID, room.ID, day(10), day(13))
	require.NoError(t, err)
	second, err := svc.Create(clientActor(b), hotel.ID, room.ID, day(20), day(22))
	require.NoError(t, err)

	// non-admins cannot use the back-office edit
	_, err = svc.AdminUpdate(clientActor(a), second.ID, models.ReservationConfirmed, day(20), day(22))
	require.ErrorIs(t, err, ErrForbidden)

	_, err = svc.AdminUpdate(adminActor(), second.ID, "sorta-paid", day(20), day(22))
	require.ErrorIs(t, err, ErrInvalidStatus)

	// moving second on top of first succeeds: manual edits skip the checker
	_, err = svc.AdminUpdate(adminActor(), second.ID, models.ReservationConfirmed, day(10), day(13))
	require.NoError(t, err)

	reloaded, err := svc.Get(adminActor(), second.ID)
	require.NoError(t, err)
	require.Equal(t, models.ReservationConfirmed, reloaded.Status)
	require.Equal(t, first.StartDate, reloaded.StartDate)
}

func TestAdminDeleteGuards(t *testing.T) {
	db := newTestDB(t)
	owner := seedClient(t, db, "a@test.local")
	hotel, room := seedHotelWithRoom(t, db, 100)
	svc := NewReservationService(db)

	res, err := svc.Create(clientActor(owner), hotel.ID, room.ID, day(10), day(12))
	require.NoError(t, err)

	require.ErrorIs(t, svc.AdminDelete(clientActor(owner), res.ID), ErrForbidden)

	payment := models.Payment{ReservationID: res.ID, Amount: res.Total, Mode: models.PaymentModeSimulated, Status: models.PaymentSuccess}
	require.NoError(t, db.Create(&payment).Error)

	var blocked *DependencyBlockedError
	err = svc.AdminDelete(adminActor(), res.ID)
	require.ErrorAs(t, err, &blocked)
	require.Equal(t, "payment", blocked.Blocker)
	require.EqualValues(t, 1, blocked.Count)

	require.NoError(t, db.Delete(&payment).Error)
	require.NoError(t, svc.AdminDelete(adminActor(), res.ID))

	var lines int64
	require.NoError(t, db.Model(&models.ReservationLine{}).Where("reservation_id = ?", res.ID).Count(&lines).Error)
	require.Zero(t, lines)
}
