package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"hotel-booking-backend/models"
	"hotel-booking-backend/utils"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// PaymentService runs the simulated payment flow: one successful payment and
// one invoice per reservation, both committed atomically with the status
// change to paid.
type PaymentService struct {
	DB         *gorm.DB
	InvoiceDir string
}

func NewPaymentService(db *gorm.DB, invoiceDir string) *PaymentService {
	return &PaymentService{DB: db, InvoiceDir: invoiceDir}
}

func newTransactionRef() string {
	raw := strings.ReplaceAll(uuid.NewString(), "-", "")
	return "SIM-" + strings.ToUpper(raw[:8])
}

// Pay settles a pending reservation owned by the actor (admins may settle any).
// The payment, the rendered invoice and the status change commit together or
// not at all. A repeat submit hits either the pending-status check or the
// existing-invoice guard and returns ErrAlreadyProcessed without creating
// duplicates.
func (s *PaymentService) Pay(actor Actor, reservationID uint) (*models.Invoice, error) {
	var invoice models.Invoice
	var pdfPath string

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var res models.Reservation
		q := lockForUpdate(tx).
			Preload("Hotel").
			Preload("Client").
			Preload("Lines.Room").
			Where("id = ?", reservationID)
		if !actor.IsAdmin() {
			q = q.Where("client_id = ?", actor.UserID)
		}
		if err := q.First(&res).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return fmt.Errorf("failed to load reservation %d: %w", reservationID, err)
		}

		if res.Status != models.ReservationPending {
			return ErrAlreadyProcessed
		}

		// Guard against double-invoice on duplicate submit; the unique index
		// on invoices.reservation_id backs this at the storage layer.
		var existing int64
		if err := tx.Model(&models.Invoice{}).Where("reservation_id = ?", res.ID).Count(&existing).Error; err != nil {
			return fmt.Errorf("failed to check existing invoice: %w", err)
		}
		if existing > 0 {
			return ErrAlreadyProcessed
		}

		now := time.Now().UTC()

		payment := models.Payment{
			ReservationID:  res.ID,
			PaidAt:         now,
			Amount:         res.Total,
			Mode:           models.PaymentModeSimulated,
			Status:         models.PaymentSuccess,
			TransactionRef: newTransactionRef(),
		}
		if err := tx.Create(&payment).Error; err != nil {
			return fmt.Errorf("failed to create payment: %w", err)
		}

		number := fmt.Sprintf("FAC-%s-%05d", now.Format("20060102"), res.ID)

		pdfBytes, err := utils.RenderInvoicePDF(buildInvoiceData(&res, &payment, number, now))
		if err != nil {
			return fmt.Errorf("failed to render invoice pdf: %w", err)
		}

		if err := os.MkdirAll(s.InvoiceDir, 0o755); err != nil {
			return fmt.Errorf("failed to create invoice dir: %w", err)
		}
		fileName := fmt.Sprintf("invoice-%d-%s.pdf", res.ID, now.Format("20060102150405"))
		pdfPath = filepath.Join(s.InvoiceDir, fileName)
		if err := os.WriteFile(pdfPath, pdfBytes, 0o644); err != nil {
			return fmt.Errorf("failed to write invoice pdf: %w", err)
		}

		snapshot, err := json.Marshal(res.Lines)
		if err != nil {
			return fmt.Errorf("failed to snapshot lines: %w", err)
		}

		invoice = models.Invoice{
			ReservationID: res.ID,
			Number:        number,
			IssuedAt:      now,
			PDFPath:       pdfPath,
			LineSnapshot:  datatypes.JSON(snapshot),
		}
		if err := tx.Create(&invoice).Error; err != nil {
			return fmt.Errorf("failed to create invoice: %w", err)
		}

		if err := tx.Model(&res).Update("status", models.ReservationPaid).Error; err != nil {
			return fmt.Errorf("failed to mark reservation paid: %w", err)
		}
		return nil
	})
	if err != nil {
		if pdfPath != "" {
			_ = os.Remove(pdfPath) // rolled back; drop the orphan file
		}
		return nil, err
	}
	return &invoice, nil
}

func buildInvoiceData(res *models.Reservation, payment *models.Payment, number string, issuedAt time.Time) utils.InvoiceData {
	lines := make([]utils.InvoiceLine, 0, len(res.Lines))
	for _, l := range res.Lines {
		label := l.Room.Type
		if l.Room.Code != "" {
			label = fmt.Sprintf("%s (%s)", l.Room.Type, l.Room.Code)
		}
		lines = append(lines, utils.InvoiceLine{
			RoomLabel:     label,
			PricePerNight: l.PricePerNight,
			Nights:        l.Nights,
			Subtotal:      l.Subtotal,
		})
	}
	return utils.InvoiceData{
		Number:       number,
		IssuedAt:     issuedAt,
		ClientName:   strings.TrimSpace(res.Client.FirstName + " " + res.Client.LastName),
		ClientEmail:  res.Client.Email,
		HotelName:    res.Hotel.Name,
		HotelAddress: fmt.Sprintf("%s, %s, %s", res.Hotel.Address, res.Hotel.City, res.Hotel.Country),
		StartDate:    res.StartDate,
		EndDate:      res.EndDate,
		Total:        res.Total,
		Lines:        lines,
		PaymentMode:  payment.Mode,
		PaymentRef:   payment.TransactionRef,
		PaidAt:       payment.PaidAt,
	}
}

// GetInvoice returns invoice metadata; non-admins only reach invoices of their
// own reservations.
func (s *PaymentService) GetInvoice(actor Actor, invoiceID uint) (*models.Invoice, error) {
	var inv models.Invoice
	q := s.DB.
		Preload("Reservation").
		Preload("Reservation.Hotel").
		Joins("JOIN reservations ON reservations.id = invoices.reservation_id").
		Where("invoices.id = ?", invoiceID)
	if !actor.IsAdmin() {
		q = q.Where("reservations.client_id = ?", actor.UserID)
	}
	if err := q.First(&inv).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load invoice %d: %w", invoiceID, err)
	}
	return &inv, nil
}

// InvoiceFile resolves the invoice PDF on disk plus the download name served
// to the client.
func (s *PaymentService) InvoiceFile(actor Actor, invoiceID uint) (path string, downloadName string, err error) {
	inv, err := s.GetInvoice(actor, invoiceID)
	if err != nil {
		return "", "", err
	}
	if _, statErr := os.Stat(inv.PDFPath); statErr != nil {
		return "", "", ErrNotFound
	}
	return inv.PDFPath, fmt.Sprintf("Invoice-%s.pdf", inv.Number), nil
}

// ListPayments is the back-office payment list with optional status/mode
// filters.
func (s *PaymentService) ListPayments(actor Actor, status, mode string) ([]models.Payment, error) {
	if !actor.IsAdmin() {
		return nil, ErrForbidden
	}
	q := s.DB.Preload("Reservation").Order("paid_at DESC")
	if status != "" {
		q = q.Where("status = ?", status)
	}
	if mode != "" {
		q = q.Where("mode = ?", mode)
	}
	var list []models.Payment
	if err := q.Find(&list).Error; err != nil {
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}
	return list, nil
}
