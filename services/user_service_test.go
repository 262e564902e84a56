package services

import (
	"testing"

	"hotel-booking-backend/models"

	"github.com/stretchr/testify/require"
)

func TestRegisterAndAuthenticate(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db)

	user, err := svc.Register("Marie", "Dupont", "Marie.Dupont@Example.com ", "s3cretpass")
	require.NoError(t, err)
	require.Equal(t, "marie.dupont@example.com", user.Email)
	require.Equal(t, models.RoleClient, user.Role)
	require.NotEqual(t, "s3cretpass", user.Password)

	got, err := svc.Authenticate("marie.dupont@example.com", "s3cretpass")
	require.NoError(t, err)
	require.Equal(t, user.ID, got.ID)

	_, err = svc.Authenticate("marie.dupont@example.com", "wrongpass")
	require.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Authenticate("nobody@example.com", "s3cretpass")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db)

	_, err := svc.Register("Marie", "Dupont", "marie@example.com", "s3cretpass")
	require.NoError(t, err)

	_, err = svc.Register("Other", "Person", "MARIE@example.com", "otherpass")
	require.ErrorIs(t, err, ErrEmailTaken)
}

func TestAuthenticateInactiveAccount(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db)

	user, err := svc.Register("Marie", "Dupont", "marie@example.com", "s3cretpass")
	require.NoError(t, err)
	require.NoError(t, db.Model(user).Update("is_active", false).Error)

	_, err = svc.Authenticate("marie@example.com", "s3cretpass")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAdminUpdateUser(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db)
	user := seedClient(t, db, "a@test.local")

	_, err := svc.AdminUpdate(clientActor(user), user.ID, models.RoleAdmin, true)
	require.ErrorIs(t, err, ErrForbidden)

	_, err = svc.AdminUpdate(adminActor(), user.ID, "superuser", true)
	require.ErrorIs(t, err, ErrInvalidStatus)

	updated, err := svc.AdminUpdate(adminActor(), user.ID, models.RoleAdmin, false)
	require.NoError(t, err)
	require.Equal(t, models.RoleAdmin, updated.Role)
	require.False(t, updated.IsActive)
}

func TestAdminDeleteUserGuard(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db)
	user := seedClient(t, db, "a@test.local")
	hotel, room := seedHotelWithRoom(t, db, 100)

	_, err := NewReservationService(db).Create(clientActor(user), hotel.ID, room.ID, day(10), day(12))
	require.NoError(t, err)

	var blocked *DependencyBlockedError
	err = svc.AdminDelete(adminActor(), user.ID)
	require.ErrorAs(t, err, &blocked)
	require.Equal(t, "reservation", blocked.Blocker)

	free := seedClient(t, db, "b@test.local")
	require.NoError(t, svc.AdminDelete(adminActor(), free.ID))
	_, err = svc.Get(free.ID)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestDashboardStats(t *testing.T) {
	db := newTestDB(t)
	client := seedClient(t, db, "a@test.local")
	hotel, room := seedHotelWithRoom(t, db, 150)

	res, err := NewReservationService(db).Create(clientActor(client), hotel.ID, room.ID, day(10), day(12))
	require.NoError(t, err)
	_, err = NewPaymentService(db, t.TempDir()).Pay(clientActor(client), res.ID)
	require.NoError(t, err)

	svc := NewDashboardService(db)
	_, err = svc.Stats(clientActor(client))
	require.ErrorIs(t, err, ErrForbidden)

	stats, err := svc.Stats(adminActor())
	require.NoError(t, err)
	require.EqualValues(t, 1, stats.Hotels)
	require.EqualValues(t, 1, stats.Rooms)
	require.EqualValues(t, 1, stats.Clients)
	require.EqualValues(t, 1, stats.Reservations)
	require.InDelta(t, 300.0, stats.TotalPayments, 0.001)
}
