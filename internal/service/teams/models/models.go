package models

import "github.com/m04kA/SMC-CallDashboard/internal/domain"

// TeamResponse ответ с данными команды
type TeamResponse struct {
	ID      int64   `json:"id"`
	Title   *string `json:"fld_title"`
	Status  *string `json:"status"`
	AddedOn *string `json:"fld_addedon"`
}

// FromDomainTeam конвертирует доменную модель команды в ответ
func FromDomainTeam(team *domain.Team) TeamResponse {
	return TeamResponse{
		ID:      team.ID,
		Title:   team.Title,
		Status:  team.Status,
		AddedOn: team.AddedOn,
	}
}
