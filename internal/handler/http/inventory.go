package http

import (
	"net/http"

	domaininventory "github.com/stitchlabs/workshop-backend-go/internal/domain/inventory"
	"github.com/stitchlabs/workshop-backend-go/internal/handler/http/response"
	"github.com/stitchlabs/workshop-backend-go/internal/service/inventory"
)

type InventoryHandler struct {
	inventoryService *inventory.InventoryService
}

func NewInventoryHandler(inventoryService *inventory.InventoryService) *InventoryHandler {
	return &InventoryHandler{inventoryService: inventoryService}
}

func (h *InventoryHandler) StockLevels(w http.ResponseWriter, r *http.Request) {
	levels, err := h.inventoryService.StockLevels(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, response.Fields{"inventory": levels})
}

func (h *InventoryHandler) AddStock(w http.ResponseWriter, r *http.Request) {
	if err := h.inventoryService.AddStock(r.Context(), h.stockDeltaRequest(r)); err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, nil)
}

func (h *InventoryHandler) UseStock(w http.ResponseWriter, r *http.Request) {
	if err := h.inventoryService.UseStock(r.Context(), h.stockDeltaRequest(r)); err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, nil)
}

func (h *InventoryHandler) stockDeltaRequest(r *http.Request) domaininventory.StockDeltaRequest {
	return domaininventory.StockDeltaRequest{
		Color:    r.FormValue("color"),
		Quantity: r.FormValue("quantity"),
		Notes:    r.FormValue("notes"),
	}
}

func (h *InventoryHandler) ListColors(w http.ResponseWriter, r *http.Request) {
	colors, err := h.inventoryService.ListColors(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, response.Fields{"colors": colors})
}

func (h *InventoryHandler) AddColor(w http.ResponseWriter, r *http.Request) {
	req := domaininventory.AddColorRequest{
		ColorName: r.FormValue("colorName"),
		ImageData: r.FormValue("imageData"),
	}

	created, err := h.inventoryService.AddColor(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, response.Fields{"color": created})
}

func (h *InventoryHandler) DeleteColor(w http.ResponseWriter, r *http.Request) {
	name := pathOrFormValue(r, "colorName")

	if err := h.inventoryService.DeleteColor(r.Context(), name); err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, nil)
}
