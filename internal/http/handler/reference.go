package handler

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"

	"nik-parser/internal/models"
	"nik-parser/internal/realtime"
	"nik-parser/internal/reference"
)

type ReferenceHandler struct {
	loader *reference.Loader
	hub    *realtime.Hub
	logger *slog.Logger
}

func NewReferenceHandler(loader *reference.Loader, hub *realtime.Hub, logger *slog.Logger) *ReferenceHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &ReferenceHandler{loader: loader, hub: hub, logger: logger}
}

// Status - GET /api/reference/status
func (h *ReferenceHandler) Status(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"success": true,
		"data":    h.loader.Status(),
	})
}

func listResponse(c *fiber.Ctx, regions []reference.Region) error {
	regions = reference.FilterByName(regions, c.Query("search"))
	return c.JSON(models.RegionListResponse{
		Success: true,
		Total:   len(regions),
		Data:    regions,
	})
}

// ListProvinces - GET /api/reference/provinces
func (h *ReferenceHandler) ListProvinces(c *fiber.Ctx) error {
	store, err := h.loader.Store()
	if err != nil {
		return notReady(c, err)
	}
	return listResponse(c, store.Provinces())
}

// ListRegencies - GET /api/reference/provinces/:id/regencies
func (h *ReferenceHandler) ListRegencies(c *fiber.Ctx) error {
	store, err := h.loader.Store()
	if err != nil {
		return notReady(c, err)
	}

	id := c.Params("id")
	if _, ok := store.Province(id); !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Provinsi tidak ditemukan",
		})
	}
	return listResponse(c, store.RegenciesOf(id))
}

// ListDistricts - GET /api/reference/regencies/:id/districts
func (h *ReferenceHandler) ListDistricts(c *fiber.Ctx) error {
	store, err := h.loader.Store()
	if err != nil {
		return notReady(c, err)
	}

	id := c.Params("id")
	if _, ok := store.Regency(id); !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Kabupaten/kota tidak ditemukan",
		})
	}
	return listResponse(c, store.DistrictsOf(id))
}

// Reload - POST /admin/reference/reload
func (h *ReferenceHandler) Reload(c *fiber.Ctx) error {
	status, err := h.loader.Reload(c.UserContext())
	if err != nil {
		h.logger.Warn("reference reload degraded", "error", err)
		return c.JSON(fiber.Map{
			"success": false,
			"message": "Data referensi dimuat sebagian",
			"data":    status,
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Data referensi berhasil dimuat ulang",
		"data":    status,
	})
}

// WebSocket - GET /ws/reference. Sends the current status first, then every
// load event published on the hub.
func (h *ReferenceHandler) WebSocket(c *websocket.Conn) {
	// written before registering so the hub stays the only writer afterwards
	if err := c.WriteJSON(models.ReferenceEvent{Type: "status", Status: h.loader.Status()}); err != nil {
		c.Close()
		return
	}

	if !h.hub.Join(c) {
		c.Close()
		return
	}
	defer h.hub.Leave(c)

	for {
		if _, _, err := c.ReadMessage(); err != nil {
			break
		}
	}
}
