package handlers

import (
	"github.com/m04kA/SMC-CallDashboard/internal/domain"
	"github.com/m04kA/SMC-CallDashboard/pkg/types"
)

// FilterParams фильтры и сессия пользователя из тела запроса дашборда.
// Значения приходят строками или числами, нечисловые id считаются отсутствующими.
type FilterParams struct {
	FilterType      types.LooseString `json:"filter_type"`
	ConsultantID    types.LooseString `json:"consultantid"`
	CRMID           types.LooseString `json:"crm_id"`
	SaleType        types.LooseString `json:"sale_type"`
	ConvertedStatus types.LooseString `json:"converted_sts"`
	SessionUserType types.LooseString `json:"session_user_type"`
	SessionUserID   types.LooseString `json:"session_user_id"`
	TeamID          types.LooseString `json:"team_id"`
}

// ToFilterContext конвертирует параметры запроса в доменный контекст фильтра
func (p *FilterParams) ToFilterContext() domain.FilterContext {
	return domain.FilterContext{
		FilterType:      domain.FilterType(p.FilterType.String()),
		ConsultantID:    p.ConsultantID.Int64Ptr(),
		CRMID:           p.CRMID.Int64Ptr(),
		SaleType:        p.SaleType.String(),
		ConvertedStatus: p.ConvertedStatus.String(),
		SessionUserType: domain.SessionUserType(p.SessionUserType.String()),
		SessionUserID:   p.SessionUserID.Int64Ptr(),
		TeamIDs:         domain.ParseTeamIDs(p.TeamID.String()),
	}
}
