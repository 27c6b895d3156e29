package update_status

import (
	"github.com/campusbook/VenueBookingService/internal/service/bookings/models"
)

// UpdateStatusRequest HTTP request model
type UpdateStatusRequest struct {
	Status    string  `json:"status"`
	AdminNote *string `json:"adminNote,omitempty"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *UpdateStatusRequest) ToServiceRequest() *models.UpdateStatusRequest {
	return &models.UpdateStatusRequest{
		Status:    r.Status,
		AdminNote: r.AdminNote,
	}
}
