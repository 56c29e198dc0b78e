// file: internals/features/registration/checkin/dto/checkin_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	model "wisataku_backend/internals/features/registration/checkin/model"
	service "wisataku_backend/internals/features/registration/checkin/service"
)

/* ===================== REQUESTS ===================== */

// ManualCheckInRequest: dari scan kamera maupun input manual — server tidak
// membedakan keduanya, normalisasi terjadi di verifier.
type ManualCheckInRequest struct {
	UniqueCode string `json:"unique_code" validate:"required,min=1,max=64"`
}

/* ===================== RESPONSES ===================== */

type CheckInResponse struct {
	VisitLogID     *uuid.UUID `json:"visit_log_id,omitempty"`
	VisitorGroupID *uuid.UUID `json:"visitor_group_id,omitempty"`
	EntryPoint     string     `json:"entry_point"`
	Status         string     `json:"status"`
	VisitorCount   int        `json:"visitor_count,omitempty"`
	VisitTime      *time.Time `json:"visit_time,omitempty"`
}

func NewCheckInResponse(res *service.RedemptionResult, entry service.EntryPoint) *CheckInResponse {
	resp := &CheckInResponse{
		EntryPoint: entry.Key(),
		Status:     string(res.Outcome),
	}
	if res.Group != nil {
		resp.VisitorGroupID = &res.Group.VisitorGroupID
		resp.VisitorCount = len(res.Group.Visitors)
	}
	if res.Log != nil {
		resp.VisitLogID = &res.Log.VisitLogID
		if !res.Log.VisitLogCreatedAt.IsZero() {
			t := res.Log.VisitLogCreatedAt
			resp.VisitTime = &t
		}
	}
	return resp
}

/* ===================== VISIT LOG LIST ===================== */

type VisitLogResponse struct {
	VisitLogID         uuid.UUID  `json:"visit_log_id"`
	VisitLogGroupID    *uuid.UUID `json:"visit_log_group_id,omitempty"`
	VisitLogEntryPoint string     `json:"visit_log_entry_point"`
	VisitLogSpotID     *uuid.UUID `json:"visit_log_spot_id,omitempty"`
	VisitLogStaffID    uuid.UUID  `json:"visit_log_staff_id"`
	VisitLogStatus     string     `json:"visit_log_status"`
	VisitLogCreatedAt  time.Time  `json:"visit_log_created_at"`
}

func NewVisitLogResponse(m *model.VisitLogModel) *VisitLogResponse {
	if m == nil {
		return nil
	}
	return &VisitLogResponse{
		VisitLogID:         m.VisitLogID,
		VisitLogGroupID:    m.VisitLogGroupID,
		VisitLogEntryPoint: m.VisitLogEntryPoint,
		VisitLogSpotID:     m.VisitLogSpotID,
		VisitLogStaffID:    m.VisitLogStaffID,
		VisitLogStatus:     m.VisitLogStatus,
		VisitLogCreatedAt:  m.VisitLogCreatedAt,
	}
}
