// file: internals/features/registration/visitor_groups/service/errors.go
package service

import "errors"

var (
	// ErrGroupNotFound: kode/user tidak punya registrasi. Dibedakan dari
	// kegagalan transient supaya klien bisa menampilkan "belum ada registrasi".
	ErrGroupNotFound = errors.New("registrasi tidak ditemukan")

	// ErrDuplicateVisit: index unik parsial menolak insert accepted kedua
	// untuk pasangan (rombongan, entry point) yang sama.
	ErrDuplicateVisit = errors.New("rombongan sudah check-in di titik ini")
)
