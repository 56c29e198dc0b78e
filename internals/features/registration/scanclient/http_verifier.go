// file: internals/features/registration/scanclient/http_verifier.go
package scanclient

import (
	"context"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// HTTPVerifier men-submit check-in ke backend lewat client agent Fiber.
// SpotID nil = gerbang pulau; selain itu check-in spot.
type HTTPVerifier struct {
	BaseURL string
	Token   string
	SpotID  *uuid.UUID
	Timeout time.Duration
}

func (v *HTTPVerifier) endpoint() string {
	if v.SpotID == nil {
		return v.BaseURL + "/api/a/register/manual-check-in"
	}
	return fmt.Sprintf("%s/api/a/tourist-spots/%s/check-in", v.BaseURL, v.SpotID)
}

func (v *HTTPVerifier) Verify(ctx context.Context, code string) (Outcome, error) {
	if err := ctx.Err(); err != nil {
		return OutcomeTransient, err
	}

	agent := fiber.Post(v.endpoint())
	agent.Set(fiber.HeaderAuthorization, "Bearer "+v.Token)
	agent.JSON(fiber.Map{"unique_code": code})

	timeout := v.Timeout
	if timeout == 0 {
		timeout = 10 * time.Second
	}
	agent.Timeout(timeout)

	status, _, errs := agent.Bytes()
	if len(errs) > 0 {
		// jaringan putus / timeout: boleh retry dengan kode yang sama
		return OutcomeTransient, errs[0]
	}

	switch status {
	case fiber.StatusCreated:
		return OutcomeAccepted, nil
	case fiber.StatusConflict:
		return OutcomeDuplicate, nil
	case fiber.StatusBadRequest, fiber.StatusNotFound, fiber.StatusUnprocessableEntity:
		return OutcomeInvalid, nil
	default:
		// 5xx / 503 RETRY: transient, jangan disamakan dengan kode salah
		return OutcomeTransient, fmt.Errorf("server status %d", status)
	}
}
