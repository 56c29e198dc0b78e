// file: internals/features/registration/visitor_groups/service/qr_issuance.go
package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	qrcode "github.com/skip2/go-qrcode"

	"wisataku_backend/internals/features/registration/visitor_groups/model"
)

// AssetUploader: unggah byte ke object storage, balikan URL publik.
// Dipenuhi helpeross.Service.
type AssetUploader interface {
	UploadBytes(ctx context.Context, key string, data []byte, contentType string) (string, error)
}

// QRAssetStore: bagian store yang dibutuhkan issuance.
type QRAssetStore interface {
	SetQRAssetOnce(ctx context.Context, groupID uuid.UUID, url, objectKey string) (bool, error)
	FindByID(ctx context.Context, groupID uuid.UUID) (*model.VisitorGroupModel, error)
}

const qrImageSize = 512

// QRIssuer menerbitkan gambar QR untuk kode rombongan. Idempoten: grup yang
// sudah punya URL selalu mendapat URL yang sama lagi, supaya QR yang sudah
// dicetak/dibagikan tetap valid.
type QRIssuer struct {
	Store    QRAssetStore
	Uploader AssetUploader
}

func NewQRIssuer(store QRAssetStore, uploader AssetUploader) *QRIssuer {
	return &QRIssuer{Store: store, Uploader: uploader}
}

// Ensure mengembalikan URL QR grup, menerbitkannya dulu bila belum ada.
// Isi QR = kode unik saja, tanpa data pribadi.
func (q *QRIssuer) Ensure(ctx context.Context, group *model.VisitorGroupModel) (string, error) {
	if group.VisitorGroupQRCodeURL != nil && *group.VisitorGroupQRCodeURL != "" {
		return *group.VisitorGroupQRCodeURL, nil
	}

	png, err := qrcode.Encode(group.VisitorGroupUniqueCode, qrcode.Medium, qrImageSize)
	if err != nil {
		return "", fmt.Errorf("qr encode: %w", err)
	}

	// Key deterministik per grup: upload ulang menimpa objek yang sama,
	// tidak pernah melahirkan URL baru.
	objectKey := fmt.Sprintf("qr/%s.png", group.VisitorGroupID)
	url, err := q.Uploader.UploadBytes(ctx, objectKey, png, "image/png")
	if err != nil {
		return "", fmt.Errorf("qr upload: %w", err)
	}

	wrote, err := q.Store.SetQRAssetOnce(ctx, group.VisitorGroupID, url, objectKey)
	if err != nil {
		return "", err
	}
	if !wrote {
		// kalah balapan / sudah pernah terbit: pakai yang tersimpan
		fresh, err := q.Store.FindByID(ctx, group.VisitorGroupID)
		if err != nil {
			return "", err
		}
		if fresh.VisitorGroupQRCodeURL != nil {
			group.VisitorGroupQRCodeURL = fresh.VisitorGroupQRCodeURL
			group.VisitorGroupQRObjectKey = fresh.VisitorGroupQRObjectKey
			return *fresh.VisitorGroupQRCodeURL, nil
		}
		return "", fmt.Errorf("QR asset hilang untuk grup %s", group.VisitorGroupID)
	}

	group.VisitorGroupQRCodeURL = &url
	group.VisitorGroupQRObjectKey = &objectKey
	return url, nil
}
