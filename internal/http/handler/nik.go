package handler

import (
	"errors"
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"

	"nik-parser/internal/metrics"
	"nik-parser/internal/models"
	"nik-parser/internal/nik"
	"nik-parser/internal/reference"
)

type NIKHandler struct {
	loader *reference.Loader
	clock  func() time.Time
	logger *slog.Logger
}

func NewNIKHandler(loader *reference.Loader, clock func() time.Time, logger *slog.Logger) *NIKHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &NIKHandler{loader: loader, clock: clock, logger: logger}
}

// parser binds a parser to the current reference snapshot.
func (h *NIKHandler) parser() (*nik.Parser, error) {
	store, err := h.loader.Store()
	if err != nil {
		return nil, err
	}
	return nik.NewParser(store, nik.WithClock(h.clock)), nil
}

func (h *NIKHandler) check(p *nik.Parser, value string) nik.Result {
	res, err := p.Check(value)
	reason := nik.Reason(err)
	metrics.ObserveParse(res.IsValid, reason)
	if err != nil {
		h.logger.Debug("nik rejected", "reason", reason)
	}
	return res
}

func notReady(c *fiber.Ctx, err error) error {
	if errors.Is(err, reference.ErrNotReady) {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"error": "Data referensi wilayah belum siap, coba lagi sebentar",
		})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": "Gagal memuat data referensi",
	})
}

// ParseNIK - GET /api/nik/:nik
func (h *NIKHandler) ParseNIK(c *fiber.Ctx) error {
	p, err := h.parser()
	if err != nil {
		return notReady(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    h.check(p, c.Params("nik")),
	})
}

// ParseBatch - POST /api/nik/parse
func (h *NIKHandler) ParseBatch(c *fiber.Ctx) error {
	var req models.ParseBatchRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if len(req.NIKs) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Daftar NIK wajib diisi",
		})
	}
	if len(req.NIKs) > models.MaxBatchSize {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Maksimal 100 NIK per permintaan",
		})
	}

	p, err := h.parser()
	if err != nil {
		return notReady(c, err)
	}

	results := make([]nik.Result, 0, len(req.NIKs))
	for _, value := range req.NIKs {
		results = append(results, h.check(p, value))
	}

	return c.JSON(models.ParseBatchResponse{
		Success: true,
		Data:    results,
	})
}
