// file: internals/features/registration/checkin/model/visit_log_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Status terminal sebuah redemption attempt.
const (
	VisitStatusAccepted  = "accepted"
	VisitStatusDuplicate = "duplicate"
	VisitStatusInvalid   = "invalid"
)

// VisitLogModel: log kunjungan append-only. Satu-satunya jalur insert adalah
// RecordVisit di store; baris tidak pernah di-update atau dihapus.
//
// Index unik parsial pada (group, entry_point) untuk status accepted adalah
// penjaga at-most-once: dua scan bersamaan pada gerbang yang sama hanya satu
// yang boleh accepted.
type VisitLogModel struct {
	VisitLogID uuid.UUID `gorm:"column:visit_log_id;type:uuid;default:gen_random_uuid();primaryKey"`

	// NULL untuk attempt dengan kode yang tidak dikenal (tetap diaudit).
	VisitLogGroupID *uuid.UUID `gorm:"column:visit_log_group_id;type:uuid;index;uniqueIndex:uq_visit_accept_per_gate,where:visit_log_status = 'accepted'"`

	// Key ternormalisasi: "island" atau "spot:<uuid>".
	VisitLogEntryPoint string     `gorm:"column:visit_log_entry_point;type:varchar(48);not null;uniqueIndex:uq_visit_accept_per_gate,where:visit_log_status = 'accepted'"`
	VisitLogSpotID     *uuid.UUID `gorm:"column:visit_log_spot_id;type:uuid;index"`

	VisitLogStaffID uuid.UUID `gorm:"column:visit_log_staff_id;type:uuid;not null"`

	VisitLogStatus string `gorm:"column:visit_log_status;type:varchar(12);not null"`

	// Kode mentah yang disubmit (sesudah normalisasi) + metadata perangkat scan.
	VisitLogSubmittedCode string         `gorm:"column:visit_log_submitted_code;type:varchar(12);not null"`
	VisitLogDeviceMeta    datatypes.JSON `gorm:"column:visit_log_device_meta;type:jsonb"`

	VisitLogCreatedAt time.Time `gorm:"column:visit_log_created_at;type:timestamptz;not null;default:now()"`
}

func (VisitLogModel) TableName() string {
	return "visit_logs"
}
