// file: internals/features/registration/checkin/service/verifier.go
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"wisataku_backend/internals/features/registration/checkin/model"
	vgModel "wisataku_backend/internals/features/registration/visitor_groups/model"
	vgService "wisataku_backend/internals/features/registration/visitor_groups/service"
)

// ErrTransient: gangguan store (timeout/koneksi). Pemanggil boleh menyuruh
// user scan ulang kode yang sama; JANGAN pernah dilaporkan sebagai Invalid.
var ErrTransient = errors.New("penyimpanan sedang tidak tersedia, silakan coba lagi")

/* ===================== Entry point ===================== */

// EntryPoint: tempat check-in terjadi — gerbang pulau atau satu tourist spot.
type EntryPoint struct {
	SpotID *uuid.UUID
}

func IslandEntry() EntryPoint { return EntryPoint{} }

func SpotEntry(spotID uuid.UUID) EntryPoint { return EntryPoint{SpotID: &spotID} }

// Key: bentuk ternormalisasi yang masuk index unik parsial.
func (e EntryPoint) Key() string {
	if e.SpotID == nil {
		return "island"
	}
	return "spot:" + e.SpotID.String()
}

/* ===================== Outcome ===================== */

type Outcome string

const (
	OutcomeAccepted  Outcome = model.VisitStatusAccepted
	OutcomeDuplicate Outcome = model.VisitStatusDuplicate
	OutcomeInvalid   Outcome = model.VisitStatusInvalid
)

type InvalidReason string

const (
	ReasonMalformed   InvalidReason = "malformed"
	ReasonUnknownCode InvalidReason = "unknown_code"
)

// RedemptionResult: hasil terminal satu redemption attempt. Scan baru =
// attempt baru dari awal.
type RedemptionResult struct {
	Outcome Outcome
	Reason  InvalidReason // terisi hanya untuk OutcomeInvalid
	Group   *vgModel.VisitorGroupModel
	Log     *model.VisitLogModel
}

/* ===================== Verifier ===================== */

// Store: bagian RegistrationStore yang dibutuhkan verifier.
type Store interface {
	FindByCode(ctx context.Context, code string) (*vgModel.VisitorGroupModel, error)
	RecordVisit(ctx context.Context, rec *model.VisitLogModel) error
}

// Verifier menjalankan state machine
// Received → Normalized → LookedUp → {Accepted|Duplicate|Invalid}.
// Sinkronisasi satu-satunya ada di store (index unik parsial), bukan lock
// aplikasi: banyak perangkat petugas boleh submit bersamaan.
type Verifier struct {
	Store Store
}

func NewVerifier(store Store) *Verifier {
	return &Verifier{Store: store}
}

// NormalizeCode: trim spasi, uppercase, buang non-alfanumerik.
func NormalizeCode(raw string) string {
	var b strings.Builder
	for _, r := range strings.ToUpper(strings.TrimSpace(raw)) {
		if (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Redeem memproses satu redemption attempt sampai tuntas: selalu berakhir di
// RedemptionResult terminal atau ErrTransient — tidak pernah setengah jalan.
func (v *Verifier) Redeem(ctx context.Context, rawCode string, entry EntryPoint, staffID uuid.UUID, deviceMeta datatypes.JSON) (*RedemptionResult, error) {
	// Received → Normalized
	code := NormalizeCode(rawCode)
	if code == "" {
		return &RedemptionResult{Outcome: OutcomeInvalid, Reason: ReasonMalformed}, nil
	}

	// Normalized → LookedUp
	group, err := v.Store.FindByCode(ctx, code)
	if err != nil {
		if errors.Is(err, vgService.ErrGroupNotFound) {
			// kode tak dikenal tetap diaudit, tanpa referensi grup
			rec := v.newLog(nil, entry, staffID, code, deviceMeta, model.VisitStatusInvalid)
			if logErr := v.Store.RecordVisit(ctx, rec); logErr != nil {
				rec = nil // audit best-effort, attempt tetap terminal Invalid
			}
			return &RedemptionResult{Outcome: OutcomeInvalid, Reason: ReasonUnknownCode, Log: rec}, nil
		}
		return nil, fmt.Errorf("%w: %v", ErrTransient, err)
	}

	// LookedUp → Accepted | Duplicate
	rec := v.newLog(&group.VisitorGroupID, entry, staffID, code, deviceMeta, model.VisitStatusAccepted)
	err = v.Store.RecordVisit(ctx, rec)
	switch {
	case err == nil:
		return &RedemptionResult{Outcome: OutcomeAccepted, Group: group, Log: rec}, nil
	case errors.Is(err, vgService.ErrDuplicateVisit):
		dup := v.newLog(&group.VisitorGroupID, entry, staffID, code, deviceMeta, model.VisitStatusDuplicate)
		if logErr := v.Store.RecordVisit(ctx, dup); logErr != nil {
			dup = nil
		}
		return &RedemptionResult{Outcome: OutcomeDuplicate, Group: group, Log: dup}, nil
	default:
		return nil, fmt.Errorf("%w: %v", ErrTransient, err)
	}
}

func (v *Verifier) newLog(groupID *uuid.UUID, entry EntryPoint, staffID uuid.UUID, code string, deviceMeta datatypes.JSON, status string) *model.VisitLogModel {
	if len(code) > 12 {
		code = code[:12] // kolom varchar(12); kode sah selalu 8 karakter
	}
	return &model.VisitLogModel{
		VisitLogGroupID:       groupID,
		VisitLogEntryPoint:    entry.Key(),
		VisitLogSpotID:        entry.SpotID,
		VisitLogStaffID:       staffID,
		VisitLogStatus:        status,
		VisitLogSubmittedCode: code,
		VisitLogDeviceMeta:    deviceMeta,
	}
}
