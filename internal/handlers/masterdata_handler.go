package handlers

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/streamline-live/streamline-backend/internal/dto"
	"github.com/streamline-live/streamline-backend/internal/services"
)

// MasterDataHandler serves the admin lookup lists used to populate the
// schedule form.
type MasterDataHandler struct {
	masterData *services.MasterDataService
}

func NewMasterDataHandler(masterData *services.MasterDataService) *MasterDataHandler {
	return &MasterDataHandler{masterData: masterData}
}

// Hosts handles GET /api/admin/users/hosts.
func (h *MasterDataHandler) Hosts(c *fiber.Ctx) error {
	hosts, err := h.masterData.ListHosts()
	if err != nil {
		slog.Error("list hosts failed", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Fail("Internal server error"))
	}
	return c.JSON(dto.OK(hosts))
}

// Products handles GET /api/admin/products?search=.
func (h *MasterDataHandler) Products(c *fiber.Ctx) error {
	products, err := h.masterData.ListProducts(c.Query("search"))
	if err != nil {
		slog.Error("list products failed", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Fail("Internal server error"))
	}
	return c.JSON(dto.OK(products))
}

// Vouchers handles GET /api/admin/vouchers.
func (h *MasterDataHandler) Vouchers(c *fiber.Ctx) error {
	vouchers, err := h.masterData.ListVouchers()
	if err != nil {
		slog.Error("list vouchers failed", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Fail("Internal server error"))
	}
	return c.JSON(dto.OK(vouchers))
}
