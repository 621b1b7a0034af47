package services

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"klinik.link/configs/configslog"
	"klinik.link/database/migrations"
	"klinik.link/models"
	"klinik.link/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func TestMain(m *testing.M) {
	configslog.InitLogger()
	os.Exit(m.Run())
}

// setupTestDB her test için izole bir in-memory SQLite veritabanı açar.
// SQLite de kısmi unique index desteklediği için üretimdeki slot index'i
// birebir uygulanabilir.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, migrations.MigrateAppointmentsTable(db))
	return db
}

func setupService(t *testing.T) (IAppointmentService, repositories.IAppointmentRepository) {
	t.Helper()
	repo := repositories.NewAppointmentRepositoryWithDB(setupTestDB(t))
	return NewAppointmentServiceWithRepo(repo), repo
}

func validBooking() BookingRequest {
	return BookingRequest{
		Name:    "Ali Veli",
		Phone:   "+90 532 111 22 33",
		Doctor:  "Dr. Can Yılmaz",
		Service: "Genel Kontrol",
		Date:    "2025-06-10",
		Time:    "09:00",
	}
}

func TestCreateAppointmentSuccess(t *testing.T) {
	svc, _ := setupService(t)

	appointment, err := svc.CreateAppointment(context.Background(), validBooking())
	require.NoError(t, err)

	assert.Equal(t, models.StatusPending, appointment.Status)
	assert.NotEmpty(t, appointment.ID)
	assert.Equal(t, time.Date(2025, time.June, 10, 0, 0, 0, 0, time.UTC), appointment.Date)

	code := appointment.ConfirmationCode()
	assert.Len(t, code, 6)
	assert.Equal(t, code, appointment.ConfirmationCode())
}

func TestCreateAppointmentMissingFields(t *testing.T) {
	svc, _ := setupService(t)

	_, err := svc.CreateAppointment(context.Background(), BookingRequest{
		Name: "Ali Veli",
		Date: "2025-06-10",
	})

	var missing *MissingFieldsError
	require.ErrorAs(t, err, &missing)
	assert.ElementsMatch(t, []string{"telefon", "doktor", "tedavi", "saat"}, missing.Fields)
}

func TestCreateAppointmentInvalidDate(t *testing.T) {
	svc, _ := setupService(t)

	req := validBooking()
	req.Date = "not-a-date"
	_, err := svc.CreateAppointment(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestCreateAppointmentInvalidTimeSlot(t *testing.T) {
	svc, _ := setupService(t)

	req := validBooking()
	req.Time = "12:00" // öğle arası, sabit listede yok
	_, err := svc.CreateAppointment(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidTimeSlot)
}

func TestDuplicateBookingReturnsSlotTaken(t *testing.T) {
	svc, _ := setupService(t)
	ctx := context.Background()

	_, err := svc.CreateAppointment(ctx, validBooking())
	require.NoError(t, err)

	_, err = svc.CreateAppointment(ctx, validBooking())
	var taken *SlotTakenError
	require.ErrorAs(t, err, &taken)
	assert.NotEmpty(t, taken.AvailableTimes)
	assert.NotContains(t, taken.AvailableTimes, "09:00")
}

func TestDateFormatsShareTheSameSlot(t *testing.T) {
	svc, _ := setupService(t)
	ctx := context.Background()

	req := validBooking()
	req.Date = "01/06/2025"
	_, err := svc.CreateAppointment(ctx, req)
	require.NoError(t, err)

	// Aynı gün, farklı biçim: çakışma sayılmalı.
	for _, date := range []string{"2025-06-01", "01.06.2025"} {
		dup := validBooking()
		dup.Date = date
		_, err = svc.CreateAppointment(ctx, dup)
		var taken *SlotTakenError
		assert.ErrorAs(t, err, &taken, "date %q", date)
	}
}

func TestCancelledAppointmentFreesSlot(t *testing.T) {
	svc, _ := setupService(t)
	ctx := context.Background()

	appointment, err := svc.CreateAppointment(ctx, validBooking())
	require.NoError(t, err)

	cancelled := models.StatusCancelled
	_, err = svc.UpdateAppointment(ctx, appointment.ID, AppointmentUpdate{Status: &cancelled})
	require.NoError(t, err)

	rebooked, err := svc.CreateAppointment(ctx, validBooking())
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, rebooked.Status)
	assert.NotEqual(t, appointment.ID, rebooked.ID)
}

func TestGetAvailableTimes(t *testing.T) {
	svc, _ := setupService(t)
	ctx := context.Background()

	times, err := svc.GetAvailableTimes(ctx, "Dr. Can Yılmaz", "2025-06-10")
	require.NoError(t, err)
	assert.Equal(t, models.TimeSlots, times)

	_, err = svc.CreateAppointment(ctx, validBooking())
	require.NoError(t, err)

	times, err = svc.GetAvailableTimes(ctx, "Dr. Can Yılmaz", "2025-06-10")
	require.NoError(t, err)
	assert.Len(t, times, len(models.TimeSlots)-1)
	assert.NotContains(t, times, "09:00")
	// Sıra sabit listenin sırası.
	assert.Equal(t, "09:30", times[0])

	// Başka hekim etkilenmez.
	times, err = svc.GetAvailableTimes(ctx, "Dr. Elif Demir", "2025-06-10")
	require.NoError(t, err)
	assert.Len(t, times, len(models.TimeSlots))
}

func TestGetAvailableTimesInvalidDate(t *testing.T) {
	svc, _ := setupService(t)
	_, err := svc.GetAvailableTimes(context.Background(), "Dr. Can Yılmaz", "31/02/2025")
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestUniqueIndexCatchesRacingInsert(t *testing.T) {
	svc, repo := setupService(t)
	ctx := context.Background()

	// Ön kontrolü atlayarak doğrudan kayıt ekle: servis ikinci isteği index
	// ihlalinden yakalamak zorunda kalır.
	first := &models.Appointment{
		Name:    "Yarış Birinci",
		Phone:   "+90 532 999 00 01",
		Doctor:  "Dr. Can Yılmaz",
		Service: "Dolgu",
		Date:    time.Date(2025, time.June, 10, 0, 0, 0, 0, time.UTC),
		Time:    "10:00",
	}
	require.NoError(t, repo.Create(ctx, first))

	second := &models.Appointment{
		Name:    "Yarış İkinci",
		Phone:   "+90 532 999 00 02",
		Doctor:  "Dr. Can Yılmaz",
		Service: "Dolgu",
		Date:    first.Date,
		Time:    "10:00",
	}
	err := repo.Create(ctx, second)
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)

	req := validBooking()
	req.Time = "10:00"
	_, err = svc.CreateAppointment(ctx, req)
	var taken *SlotTakenError
	assert.ErrorAs(t, err, &taken)
}

func TestUpdateAppointmentPartial(t *testing.T) {
	svc, _ := setupService(t)
	ctx := context.Background()

	appointment, err := svc.CreateAppointment(ctx, validBooking())
	require.NoError(t, err)

	notes := "Hasta kontrole gelecek"
	updated, err := svc.UpdateAppointment(ctx, appointment.ID, AppointmentUpdate{Notes: &notes})
	require.NoError(t, err)

	assert.Equal(t, notes, *updated.Notes)
	assert.Equal(t, appointment.Doctor, updated.Doctor)
	assert.Equal(t, appointment.Time, updated.Time)
	assert.Equal(t, models.StatusPending, updated.Status)

	confirmed := models.StatusConfirmed
	newTime := "15:30"
	updated, err = svc.UpdateAppointment(ctx, appointment.ID, AppointmentUpdate{
		Status: &confirmed,
		Time:   &newTime,
	})
	require.NoError(t, err)
	assert.Equal(t, models.StatusConfirmed, updated.Status)
	assert.Equal(t, "15:30", updated.Time)
}

func TestUpdateAppointmentNotFound(t *testing.T) {
	svc, _ := setupService(t)

	confirmed := models.StatusConfirmed
	_, err := svc.UpdateAppointment(context.Background(), "yok-boyle-bir-id", AppointmentUpdate{Status: &confirmed})
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestDeleteAppointment(t *testing.T) {
	svc, _ := setupService(t)
	ctx := context.Background()

	appointment, err := svc.CreateAppointment(ctx, validBooking())
	require.NoError(t, err)

	require.NoError(t, svc.DeleteAppointment(ctx, appointment.ID))

	_, err = svc.GetAppointmentByID(ctx, appointment.ID)
	assert.ErrorIs(t, err, ErrAppointmentNotFound)

	// İkinci silme denemesi NotFound.
	err = svc.DeleteAppointment(ctx, appointment.ID)
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestDeleteDoesNotTouchOtherRecords(t *testing.T) {
	svc, _ := setupService(t)
	ctx := context.Background()

	kept, err := svc.CreateAppointment(ctx, validBooking())
	require.NoError(t, err)

	err = svc.DeleteAppointment(ctx, "olmayan-id")
	assert.ErrorIs(t, err, ErrAppointmentNotFound)

	still, err := svc.GetAppointmentByID(ctx, kept.ID)
	require.NoError(t, err)
	assert.Equal(t, kept.ID, still.ID)
}

func TestListAppointmentsFilters(t *testing.T) {
	svc, _ := setupService(t)
	ctx := context.Background()

	first, err := svc.CreateAppointment(ctx, validBooking())
	require.NoError(t, err)

	other := validBooking()
	other.Doctor = "Dr. Elif Demir"
	other.Date = "2025-06-11"
	other.Time = "14:00"
	second, err := svc.CreateAppointment(ctx, other)
	require.NoError(t, err)

	confirmed := models.StatusConfirmed
	_, err = svc.UpdateAppointment(ctx, second.ID, AppointmentUpdate{Status: &confirmed})
	require.NoError(t, err)

	all, err := svc.ListAppointments(ctx, "", "")
	require.NoError(t, err)
	assert.Len(t, all, 2)
	// Tarih sırası korunur.
	assert.Equal(t, first.ID, all[0].ID)

	pending, err := svc.ListAppointments(ctx, models.StatusPending, "")
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, first.ID, pending[0].ID)

	byDate, err := svc.ListAppointments(ctx, "", "11/06/2025")
	require.NoError(t, err)
	require.Len(t, byDate, 1)
	assert.Equal(t, second.ID, byDate[0].ID)

	_, err = svc.ListAppointments(ctx, "", "bozuk-tarih")
	assert.ErrorIs(t, err, ErrInvalidDate)
}
