package cli

import (
	"context"

	"github.com/andreasstove999/ecommerce-system/ordertool/internal/order"
)

type OrderHandler struct {
	svc *order.Service
}

func NewOrderHandler(svc *order.Service) *OrderHandler {
	return &OrderHandler{svc: svc}
}

func (h *OrderHandler) Calculate(_ context.Context, input []byte) (any, error) {
	c, err := h.svc.Calculate(input)
	if err != nil {
		return nil, err
	}
	return toCalculateResponse(c), nil
}

func (h *OrderHandler) Validate(_ context.Context, input []byte) (any, error) {
	res, err := h.svc.Validate(input)
	if err != nil {
		return nil, err
	}
	return ValidateResponse{Success: res.Valid, Message: res.Message}, nil
}
