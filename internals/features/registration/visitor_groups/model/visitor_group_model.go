// file: internals/features/registration/visitor_groups/model/visitor_group_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// VisitorGroupModel: satu rombongan = satu kode unik. Kode tidak pernah
// berubah setelah terbit, dan baris grup tidak pernah dihapus (audit).
type VisitorGroupModel struct {
	VisitorGroupID     uuid.UUID  `gorm:"column:visitor_group_id;type:uuid;default:gen_random_uuid();primaryKey"`
	VisitorGroupUserID *uuid.UUID `gorm:"column:visitor_group_user_id;type:uuid;index"`

	VisitorGroupUniqueCode string `gorm:"column:visitor_group_unique_code;type:varchar(12);not null;uniqueIndex:uq_visitor_group_unique_code"`

	// Diisi sekali oleh QR issuance; re-issue mengembalikan URL yang sama.
	VisitorGroupQRCodeURL   *string `gorm:"column:visitor_group_qr_code_url;type:text"`
	VisitorGroupQRObjectKey *string `gorm:"column:visitor_group_qr_object_key;type:text"`

	VisitorGroupCreatedAt time.Time `gorm:"column:visitor_group_created_at;type:timestamptz;not null;default:now()"`

	Visitors []VisitorModel `gorm:"foreignKey:VisitorGroupID;references:VisitorGroupID"`
}

func (VisitorGroupModel) TableName() string {
	return "visitor_groups"
}
