package services

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"gorm.io/gorm"

	"dinebook/models"
	"dinebook/utils"
)

// Satu reservasi menempati meja selama 2 jam dari jam mulainya.
// Dua jadwal dianggap bentrok kalau selisih jam mulainya < 120 menit.
// Ambang ini kontrak perilaku lama: selisih tepat 120 menit TIDAK bentrok,
// jangan "diperbaiki" jadi interval-intersection betulan.
const ConflictWindowMinutes = 120

// SlotInterval -> jarak antar slot yang ditawarkan
const SlotIntervalMinutes = 30

type AvailabilityService struct {
	DB *gorm.DB
}

func NewAvailabilityService(db *gorm.DB) *AvailabilityService {
	return &AvailabilityService{DB: db}
}

// ParseClock mengubah "HH:MM" menjadi menit sejak tengah malam
func ParseClock(s string) (int, error) {
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid time format: %q", s)
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, fmt.Errorf("invalid hour in %q", s)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("invalid minute in %q", s)
	}
	return hour*60 + minute, nil
}

func formatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// TimesConflict -> true kalau dua jam mulai berjarak < 120 menit. Simetris.
func TimesConflict(a, b string) bool {
	am, errA := ParseClock(a)
	bm, errB := ParseClock(b)
	if errA != nil || errB != nil {
		return false
	}
	diff := am - bm
	if diff < 0 {
		diff = -diff
	}
	return diff < ConflictWindowMinutes
}

// GenerateTimeSlots menghasilkan jam mulai tiap 30 menit dari jam buka,
// berhenti tepat sebelum jam tutup (jam tutup bukan slot).
// Kalau closing <= opening hasilnya kosong, jam operasional lintas-tengah-malam
// memang tidak didukung.
func GenerateTimeSlots(openingTime, closingTime string) []string {
	open, err := ParseClock(openingTime)
	if err != nil {
		return []string{}
	}
	closing, err := ParseClock(closingTime)
	if err != nil {
		return []string{}
	}

	slots := []string{}
	for cur := open; cur < closing; cur += SlotIntervalMinutes {
		slots = append(slots, formatClock(cur))
	}
	return slots
}

// FilterSlots membatasi slot pada [timeFrom, timeTo] inklusif.
// Perbandingan leksikografis cukup karena format HH:MM fixed-width.
func FilterSlots(slots []string, timeFrom, timeTo string) []string {
	filtered := []string{}
	for _, slot := range slots {
		if timeFrom != "" && slot < timeFrom {
			continue
		}
		if timeTo != "" && slot > timeTo {
			continue
		}
		filtered = append(filtered, slot)
	}
	return filtered
}

// SlotAvailability adalah satu baris hasil pengecekan availability
type SlotAvailability struct {
	Time      string                `json:"time"`
	Available bool                  `json:"available"`
	Tables    []models.TableSummary `json:"tables"`
}

type AvailabilityResult struct {
	Restaurant   RestaurantSummary  `json:"restaurant"`
	Date         string             `json:"date"`
	PartySize    int                `json:"party_size"`
	Availability []SlotAvailability `json:"availability"`
}

type RestaurantSummary struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	OpeningTime string `json:"opening_time"`
	ClosingTime string `json:"closing_time"`
}

// CheckAvailability menghitung ketersediaan meja per slot untuk satu
// restoran/tanggal/jumlah orang. Murni baca, tanpa side effect.
func (s *AvailabilityService) CheckAvailability(restaurantID uint, date string, partySize int, timeFrom, timeTo string) (*AvailabilityResult, error) {
	var restaurant models.Restaurant
	if err := s.DB.Where("id = ? AND is_active = ?", restaurantID, true).First(&restaurant).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.ErrRestaurantNotFound
		}
		return nil, err
	}

	// Kandidat meja: available, muat untuk party size, dan lolos min capacity.
	// Urut kapasitas naik supaya meja terkecil yang cukup ditawarkan dulu.
	var tables []models.Table
	if err := s.DB.
		Where("restaurant_id = ? AND is_available = ? AND capacity >= ?", restaurantID, true, partySize).
		Where("(min_capacity IS NULL OR min_capacity <= ?)", partySize).
		Order("capacity ASC").
		Find(&tables).Error; err != nil {
		return nil, err
	}

	// Reservasi aktif di restoran ini pada tanggal tersebut
	var reservations []models.Reservation
	if err := s.DB.
		Where("restaurant_id = ? AND reservation_date = ? AND status IN ?", restaurantID, date, models.ActiveStatuses).
		Order("reservation_time ASC").
		Find(&reservations).Error; err != nil {
		return nil, err
	}

	// Kelompokkan reservasi per meja sekali saja
	byTable := make(map[uint][]string)
	for _, r := range reservations {
		byTable[r.TableID] = append(byTable[r.TableID], r.ReservationTime)
	}

	slots := GenerateTimeSlots(restaurant.OpeningTime, restaurant.ClosingTime)
	if timeFrom != "" || timeTo != "" {
		slots = FilterSlots(slots, timeFrom, timeTo)
	}

	availability := make([]SlotAvailability, 0, len(slots))
	for _, slot := range slots {
		free := []models.TableSummary{}
		for _, table := range tables {
			if tableFreeAt(byTable[table.ID], slot) {
				free = append(free, table.Summary())
			}
		}
		availability = append(availability, SlotAvailability{
			Time:      slot,
			Available: len(free) > 0,
			Tables:    free,
		})
	}

	return &AvailabilityResult{
		Restaurant: RestaurantSummary{
			ID:          restaurant.ID,
			Name:        restaurant.Name,
			OpeningTime: restaurant.OpeningTime,
			ClosingTime: restaurant.ClosingTime,
		},
		Date:         date,
		PartySize:    partySize,
		Availability: availability,
	}, nil
}

// tableFreeAt -> meja bebas pada slot kalau tidak ada satupun reservasi
// aktifnya yang bentrok
func tableFreeAt(reservedTimes []string, slot string) bool {
	for _, t := range reservedTimes {
		if TimesConflict(t, slot) {
			return false
		}
	}
	return true
}
