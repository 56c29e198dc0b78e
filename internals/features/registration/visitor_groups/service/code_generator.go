// file: internals/features/registration/visitor_groups/service/code_generator.go
package service

import (
	"context"
	"crypto/rand"
	"fmt"
)

// Alfabet kode: huruf besar + digit tanpa karakter ambigu (0/O, 1/I).
// Panjang 32 simbol pas membagi 256, jadi pemetaan byte → simbol bebas bias.
const CodeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// Panjang kode unik rombongan. 32^8 ≈ 1,1 triliun kombinasi.
const CodeLength = 8

// Tabrakan kode adalah kondisi normal yang di-retry, bukan fatal.
const maxCodeAttempts = 5

// CodeChecker: lookup eksistensi kode di store.
type CodeChecker interface {
	CodeExists(ctx context.Context, code string) (bool, error)
}

// GenerateUniqueCode mengambil kandidat acak lalu memeriksa ke store;
// ulangi saat tabrakan. Persistensi kode tetap tanggung jawab store
// (CreateGroup), fungsi ini hanya memilih kandidat.
func GenerateUniqueCode(ctx context.Context, store CodeChecker) (string, error) {
	for attempt := 0; attempt < maxCodeAttempts; attempt++ {
		code, err := randomCode()
		if err != nil {
			return "", err
		}
		exists, err := store.CodeExists(ctx, code)
		if err != nil {
			return "", fmt.Errorf("cek kode unik: %w", err)
		}
		if !exists {
			return code, nil
		}
	}
	return "", fmt.Errorf("gagal mendapat kode unik setelah %d percobaan", maxCodeAttempts)
}

func randomCode() (string, error) {
	buf := make([]byte, CodeLength)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("crypto/rand: %w", err)
	}
	out := make([]byte, CodeLength)
	for i, b := range buf {
		out[i] = CodeAlphabet[int(b)%len(CodeAlphabet)]
	}
	return string(out), nil
}
