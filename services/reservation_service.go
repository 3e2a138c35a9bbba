package services

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"dinebook/models"
	"dinebook/utils"
)

type CreateReservationInput struct {
	UserID          uint
	RestaurantID    uint
	TableID         uint
	ReservationDate string // YYYY-MM-DD
	ReservationTime string // HH:MM
	PartySize       int
	SpecialRequests string
	Notes           string
}

// lockTableRow menambahkan SELECT ... FOR UPDATE pada baris meja.
// Di MySQL (REPEATABLE READ) transaksi biasa tidak cukup: dua transaksi
// bisa sama-sama membaca nol bentrok lalu sama-sama insert. Mengunci
// baris meja menyerialkan penulis per meja. SQLite menyerialkan semua
// penulis sendiri dan tidak mengenal sintaks FOR UPDATE.
func lockTableRow(tx *gorm.DB) *gorm.DB {
	if tx.Dialector.Name() == "mysql" {
		return tx.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	return tx
}

// CreateReservation memvalidasi lalu menyimpan reservasi baru berstatus PENDING.
// Cek bentrok dan insert dibungkus satu transaksi, dengan lock baris meja
// (lihat lockTableRow) supaya dua request bersamaan untuk meja/slot yang
// sama tidak dua-duanya lolos.
func (s *AvailabilityService) CreateReservation(in CreateReservationInput) (*models.Reservation, error) {
	var reservation models.Reservation

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var restaurant models.Restaurant
		if err := tx.Where("id = ? AND is_active = ?", in.RestaurantID, true).First(&restaurant).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return utils.ErrRestaurantNotFound
			}
			return err
		}

		var table models.Table
		if err := lockTableRow(tx).Where("id = ? AND restaurant_id = ? AND is_available = ?", in.TableID, in.RestaurantID, true).First(&table).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return utils.ErrTableNotFound
			}
			return err
		}

		if in.PartySize > table.Capacity {
			return utils.ErrPartySizeTooLarge
		}
		if table.MinCapacity != nil && in.PartySize < *table.MinCapacity {
			return utils.ErrPartySizeTooSmall
		}

		// Cek bentrok terhadap semua reservasi aktif di meja+tanggal ini
		var existing []models.Reservation
		if err := tx.
			Where("table_id = ? AND reservation_date = ? AND status IN ?", in.TableID, in.ReservationDate, models.ActiveStatuses).
			Find(&existing).Error; err != nil {
			return err
		}
		for _, r := range existing {
			if TimesConflict(r.ReservationTime, in.ReservationTime) {
				return utils.ErrTableAlreadyReserved
			}
		}

		reservation = models.Reservation{
			UserID:          in.UserID,
			RestaurantID:    in.RestaurantID,
			TableID:         in.TableID,
			ReservationDate: in.ReservationDate,
			ReservationTime: in.ReservationTime,
			PartySize:       in.PartySize,
			Status:          models.ReservationPending,
			SpecialRequests: in.SpecialRequests,
			Notes:           in.Notes,
		}
		return tx.Create(&reservation).Error
	})
	if err != nil {
		return nil, err
	}

	// Muat relasi untuk response
	if err := s.DB.Preload("User").Preload("Restaurant").Preload("Table").First(&reservation, reservation.ID).Error; err != nil {
		return nil, err
	}
	return &reservation, nil
}

// CancelReservation membatalkan reservasi milik actor (atau oleh admin).
// Hanya PENDING dan CONFIRMED yang bisa dibatalkan; status terminal ditolak.
func (s *AvailabilityService) CancelReservation(reservationID, actorID uint, actorRole string) (*models.Reservation, error) {
	var reservation models.Reservation
	if err := s.DB.First(&reservation, reservationID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.ErrReservationNotFound
		}
		return nil, err
	}

	if !utils.CanAccess(actorID, actorRole, reservation.UserID) {
		return nil, utils.ErrAccessDenied
	}

	if reservation.IsTerminal() {
		return nil, utils.ErrCannotCancel
	}

	reservation.Status = models.ReservationCancelled
	if err := s.DB.Save(&reservation).Error; err != nil {
		return nil, err
	}

	if err := s.DB.Preload("User").Preload("Restaurant").Preload("Table").First(&reservation, reservation.ID).Error; err != nil {
		return nil, err
	}
	return &reservation, nil
}
