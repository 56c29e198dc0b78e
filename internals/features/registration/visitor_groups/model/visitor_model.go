// file: internals/features/registration/visitor_groups/model/visitor_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// VisitorModel: anggota rombongan. Jumlah anggota tetap sejak registrasi
// (amandemen anggota di luar lingkup subsistem ini).
type VisitorModel struct {
	VisitorID      uuid.UUID `gorm:"column:visitor_id;type:uuid;default:gen_random_uuid();primaryKey"`
	VisitorGroupID uuid.UUID `gorm:"column:visitor_group_id;type:uuid;not null;index"`

	VisitorName        string `gorm:"column:visitor_name;type:varchar(120);not null"`
	VisitorNationality string `gorm:"column:visitor_nationality;type:varchar(80);not null"`
	VisitorGender      string `gorm:"column:visitor_gender;type:varchar(12);not null"`
	VisitorAgeRange    string `gorm:"column:visitor_age_range;type:varchar(12);not null"`

	VisitorIsPrimary bool `gorm:"column:visitor_is_primary;type:boolean;not null;default:false"`

	VisitorCreatedAt time.Time `gorm:"column:visitor_created_at;type:timestamptz;not null;default:now()"`
}

func (VisitorModel) TableName() string {
	return "visitors"
}
