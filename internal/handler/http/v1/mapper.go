package v1

import (
	"github.com/shenikar/incident_reporting_system/internal/models"
	"github.com/shenikar/incident_reporting_system/internal/service"
)

// DTOToSubmitInput преобразует DTO отправки в входные данные сервиса.
// ClientIP подставляется хэндлером из запроса
func DTOToSubmitInput(dto SubmitReportRequest, clientIP string) service.SubmitReportInput {
	return service.SubmitReportInput{
		QRToken:       dto.QRToken,
		ReporterName:  dto.ReporterName,
		ReporterPhone: dto.ReporterPhone,
		ReporterEmail: dto.ReporterEmail,
		Description:   dto.Description,
		IncidentType:  dto.IncidentType,
		OccurredAt:    dto.OccurredAt,
		Honeypot:      dto.Website,
		CaptchaToken:  dto.CaptchaToken,
		ClientIP:      clientIP,
	}
}

// ModelToReportResponse преобразует доменную модель в DTO для ответа.
// Код подтверждения и срок его действия наружу не отдаются
func ModelToReportResponse(model *models.Report) *ReportResponse {
	return &ReportResponse{
		ID:            model.ID,
		VehicleID:     model.VehicleID,
		ReporterName:  model.ReporterName,
		ReporterPhone: model.ReporterPhone,
		ReporterEmail: model.ReporterEmail,
		Description:   model.Description,
		IncidentType:  model.IncidentType,
		OccurredAt:    model.OccurredAt,
		Status:        model.Status,
		VerifiedAt:    model.VerifiedAt,
		CreatedAt:     model.CreatedAt,
		UpdatedAt:     model.UpdatedAt,
	}
}

// ModelsToReportResponses преобразует слайс моделей в слайс DTO
func ModelsToReportResponses(models []*models.Report) []*ReportResponse {
	responses := make([]*ReportResponse, len(models))
	for i, model := range models {
		responses[i] = ModelToReportResponse(model)
	}
	return responses
}

// ModelToVehicleResponse преобразует транспортное средство в публичный DTO
func ModelToVehicleResponse(model *models.Vehicle) *VehicleResponse {
	return &VehicleResponse{
		ID:          model.ID,
		DisplayName: model.DisplayName,
	}
}
