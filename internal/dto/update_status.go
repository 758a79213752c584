package dto

import "karsamrit/internal/domain"

type UpdateStatusRequest struct {
	Status string `json:"status"`
}

type UpdateStatusResponse struct {
	Success bool         `json:"success"`
	Order   domain.Order `json:"order"`
}
