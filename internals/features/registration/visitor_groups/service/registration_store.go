// file: internals/features/registration/visitor_groups/service/registration_store.go
package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	checkinModel "wisataku_backend/internals/features/registration/checkin/model"
	"wisataku_backend/internals/features/registration/visitor_groups/model"
)

// RegistrationStore: source of truth "siapa yang terdaftar" + satu-satunya
// jalur tulis ke visit_logs.
type RegistrationStore struct {
	DB *gorm.DB
}

func NewRegistrationStore(db *gorm.DB) *RegistrationStore {
	return &RegistrationStore{DB: db}
}

// CodeExists: dipakai generator untuk cek tabrakan kandidat.
func (s *RegistrationStore) CodeExists(ctx context.Context, code string) (bool, error) {
	var count int64
	err := s.DB.WithContext(ctx).
		Model(&model.VisitorGroupModel{}).
		Where("visitor_group_unique_code = ?", code).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// CreateGroup mengalokasikan kode via generator lalu menyimpan grup + seluruh
// anggota dalam SATU transaksi: semua baris ada, atau tidak sama sekali.
// Kalau kandidat kalah balapan dengan insert lain (index unik kode menolak),
// seluruh transaksi diulang dengan kandidat baru.
func (s *RegistrationStore) CreateGroup(ctx context.Context, userID *uuid.UUID, visitors []model.VisitorModel) (*model.VisitorGroupModel, error) {
	if len(visitors) == 0 {
		return nil, fmt.Errorf("rombongan minimal satu pengunjung")
	}

	for attempt := 0; attempt < maxCodeAttempts; attempt++ {
		code, err := GenerateUniqueCode(ctx, s)
		if err != nil {
			return nil, err
		}

		group := &model.VisitorGroupModel{
			VisitorGroupUserID:     userID,
			VisitorGroupUniqueCode: code,
			Visitors:               visitors,
		}

		err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			// asosiasi Visitors ikut tersimpan dalam transaksi yang sama
			return tx.Create(group).Error
		})
		if err == nil {
			return group, nil
		}
		if isUniqueViolation(err, "uq_visitor_group_unique_code") {
			continue // kandidat keburu dipakai, coba kode lain
		}
		return nil, err
	}
	return nil, fmt.Errorf("gagal menyimpan registrasi: kode unik terus bertabrakan")
}

// FindByCode: kode HARUS sudah dinormalisasi pemanggil (verifier yang
// menormalkan, bukan store).
func (s *RegistrationStore) FindByCode(ctx context.Context, code string) (*model.VisitorGroupModel, error) {
	var group model.VisitorGroupModel
	err := s.DB.WithContext(ctx).
		Preload("Visitors").
		Where("visitor_group_unique_code = ?", code).
		First(&group).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGroupNotFound
		}
		return nil, err
	}
	return &group, nil
}

// FindLatestByUserID: registrasi terbaru milik satu akun (layar profil).
func (s *RegistrationStore) FindLatestByUserID(ctx context.Context, userID uuid.UUID) (*model.VisitorGroupModel, error) {
	var group model.VisitorGroupModel
	err := s.DB.WithContext(ctx).
		Preload("Visitors").
		Where("visitor_group_user_id = ?", userID).
		Order("visitor_group_created_at DESC").
		First(&group).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGroupNotFound
		}
		return nil, err
	}
	return &group, nil
}

// SetQRAssetOnce menulis URL QR sekali saja (write-once). Return false kalau
// baris sudah punya URL — pemanggil memakai nilai yang sudah ada.
func (s *RegistrationStore) SetQRAssetOnce(ctx context.Context, groupID uuid.UUID, url, objectKey string) (bool, error) {
	res := s.DB.WithContext(ctx).
		Model(&model.VisitorGroupModel{}).
		Where("visitor_group_id = ? AND visitor_group_qr_code_url IS NULL", groupID).
		Updates(map[string]interface{}{
			"visitor_group_qr_code_url":   url,
			"visitor_group_qr_object_key": objectKey,
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// FindByID dipakai QR issuance untuk re-load setelah kalah balapan write-once.
func (s *RegistrationStore) FindByID(ctx context.Context, groupID uuid.UUID) (*model.VisitorGroupModel, error) {
	var group model.VisitorGroupModel
	err := s.DB.WithContext(ctx).
		Where("visitor_group_id = ?", groupID).
		First(&group).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGroupNotFound
		}
		return nil, err
	}
	return &group, nil
}

// RecordVisit: SATU-SATUNYA jalur insert ke visit_logs. Untuk baris accepted,
// cek-duplikat dan insert adalah satu unit atomik: index unik parsial
// uq_visit_accept_per_gate yang menolak accepted kedua, bukan lock aplikasi.
func (s *RegistrationStore) RecordVisit(ctx context.Context, rec *checkinModel.VisitLogModel) error {
	err := s.DB.WithContext(ctx).Create(rec).Error
	if err == nil {
		return nil
	}
	if isUniqueViolation(err, "uq_visit_accept_per_gate") {
		return ErrDuplicateVisit
	}
	return err
}

func isUniqueViolation(err error, constraint string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return constraint == "" || pgErr.ConstraintName == constraint
	}
	return false
}
