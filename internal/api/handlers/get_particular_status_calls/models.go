package get_particular_status_calls

import "github.com/m04kA/SMC-CallDashboard/pkg/types"

// StatusCallsRequest тело запроса звонков с заданным статусом
type StatusCallsRequest struct {
	Status types.LooseString `json:"status"`
	CRMID  types.LooseString `json:"crm_id"`
}

// CRMIDPtr возвращает crm_id или nil, если он не передан.
// ok = false для непустого нечислового значения: фильтр по CRM нельзя молча снять.
func (r *StatusCallsRequest) CRMIDPtr() (*int64, bool) {
	if r.CRMID.IsEmpty() {
		return nil, true
	}
	id, ok := r.CRMID.Int64()
	if !ok {
		return nil, false
	}
	return &id, true
}
