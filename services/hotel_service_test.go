package services

import (
	"testing"

	"hotel-booking-backend/models"

	"github.com/stretchr/testify/require"
)

func TestListHotelsFilters(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, db.Create(&[]models.Hotel{
		{Name: "Hotel du Port", City: "Marseille", Description: "Harbour views", IsActive: true},
		{Name: "Riad Atlas", City: "Marrakech", Description: "Courtyard riad", IsActive: true},
		{Name: "Closed House", City: "Marseille", IsActive: false},
	}).Error)
	svc := NewHotelService(db)

	all, err := svc.List("", "")
	require.NoError(t, err)
	require.Len(t, all, 2) // inactive hidden

	byCity, err := svc.List("", "Marseille")
	require.NoError(t, err)
	require.Len(t, byCity, 1)
	require.Equal(t, "Hotel du Port", byCity[0].Name)

	bySearch, err := svc.List("courtyard", "")
	require.NoError(t, err)
	require.Len(t, bySearch, 1)
	require.Equal(t, "Riad Atlas", bySearch[0].Name)

	cities, err := svc.Cities()
	require.NoError(t, err)
	require.Equal(t, []string{"Marrakech", "Marseille"}, cities)
}

func TestGetHotelHidesInactive(t *testing.T) {
	db := newTestDB(t)
	hotel, room := seedHotelWithRoom(t, db, 100)
	closedRoom := models.Room{HotelID: hotel.ID, Code: "102", Type: "Standard", PricePerNight: 100, IsActive: false}
	require.NoError(t, db.Create(&closedRoom).Error)
	svc := NewHotelService(db)

	got, err := svc.Get(hotel.ID)
	require.NoError(t, err)
	require.Len(t, got.Rooms, 1)
	require.Equal(t, room.ID, got.Rooms[0].ID)

	require.NoError(t, db.Model(&models.Hotel{}).Where("id = ?", hotel.ID).
		Update("is_active", false).Error)
	_, err = svc.Get(hotel.ID)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteHotelGuards(t *testing.T) {
	db := newTestDB(t)
	hotel, room := seedHotelWithRoom(t, db, 100)
	svc := NewHotelService(db)

	require.ErrorIs(t, svc.Delete(Actor{UserID: 1, Role: models.RoleClient}, hotel.ID), ErrForbidden)

	var blocked *DependencyBlockedError
	err := svc.Delete(adminActor(), hotel.ID)
	require.ErrorAs(t, err, &blocked)
	require.Equal(t, "room", blocked.Blocker)
	require.EqualValues(t, 1, blocked.Count)

	// no rooms left but a reservation still references the hotel
	require.NoError(t, db.Delete(&models.Room{}, room.ID).Error)
	res := models.Reservation{ClientID: 1, HotelID: hotel.ID, StartDate: date(2031, 6, 1), EndDate: date(2031, 6, 3), Status: models.ReservationPending}
	require.NoError(t, db.Create(&res).Error)

	err = svc.Delete(adminActor(), hotel.ID)
	require.ErrorAs(t, err, &blocked)
	require.Equal(t, "reservation", blocked.Blocker)

	require.NoError(t, db.Delete(&models.Reservation{}, res.ID).Error)
	require.NoError(t, svc.Delete(adminActor(), hotel.ID))
	require.ErrorIs(t, svc.Delete(adminActor(), hotel.ID), ErrNotFound)
}

func TestDeleteRoomGuards(t *testing.T) {
	db := newTestDB(t)
	client := seedClient(t, db, "a@test.local")
	hotel, room := seedHotelWithRoom(t, db, 100)
	resSvc := NewReservationService(db)
	svc := NewRoomService(db)

	_, err := resSvc.Create(clientActor(client), hotel.ID, room.ID, day(10), day(12))
	require.NoError(t, err)

	var blocked *DependencyBlockedError
	err = svc.Delete(adminActor(), room.ID)
	require.ErrorAs(t, err, &blocked)
	require.Equal(t, "reservation line", blocked.Blocker)
	require.EqualValues(t, 1, blocked.Count)

	fresh := models.Room{HotelID: hotel.ID, Code: "109", Type: "Standard", PricePerNight: 80, IsActive: true}
	require.NoError(t, db.Create(&fresh).Error)
	require.NoError(t, svc.Delete(adminActor(), fresh.ID))
}

func TestRoomUpdateKeepsHotel(t *testing.T) {
	db := newTestDB(t)
	_, room := seedHotelWithRoom(t, db, 100)
	svc := NewRoomService(db)

	updated, err := svc.Update(adminActor(), room.ID, &models.Room{
		Code: "101B", Type: "Deluxe", Capacity: 3, PricePerNight: 140, IsActive: true,
	})
	require.NoError(t, err)
	require.Equal(t, room.HotelID, updated.HotelID)

	var reloaded models.Room
	require.NoError(t, db.First(&reloaded, room.ID).Error)
	require.Equal(t, "101B", reloaded.Code)
	require.InDelta(t, 140.0, reloaded.PricePerNight, 0.001)
}
