package booking

import (
	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-CallDashboard/internal/domain"
	"github.com/m04kA/SMC-CallDashboard/pkg/sqlbuilder"
)

const (
	colConsultantID          = "fld_consultantid"
	colSecondaryConsultantID = "fld_secondary_consultant_id"
	colThirdConsultantID     = "fld_third_consultantid"
	colAddedBy               = "fld_addedby"
	colTeamID                = "fld_teamid"
	colSaleType              = "fld_sale_type"
	colConvertedStatus       = "fld_converted_sts"
	colBookingDate           = "fld_booking_date"
	colAddedOn               = "fld_addedon"
)

// identityConditions условия правила идентификации, объединяемые через AND.
// Для RuleUnrestricted условий нет.
func identityConditions(b sqlbuilder.Builder, scope domain.IdentityScope) []squirrel.Sqlizer {
	switch scope.Rule {
	case domain.RuleConsultantAndCRM:
		return []squirrel.Sqlizer{
			anyConsultant(scope.ConsultantID),
			squirrel.Eq{colAddedBy: scope.CRMID},
		}
	case domain.RuleConsultant, domain.RuleSessionConsultant:
		return []squirrel.Sqlizer{anyConsultant(scope.ConsultantID)}
	case domain.RuleCRM, domain.RuleSessionExecutive:
		return []squirrel.Sqlizer{squirrel.Eq{colAddedBy: scope.CRMID}}
	case domain.RuleSessionSubadminTeams:
		or := squirrel.Or{squirrel.Eq{colConsultantID: scope.ConsultantID}}
		for _, teamID := range scope.TeamIDs {
			or = append(or, b.InCSV(colTeamID, teamID))
		}
		return []squirrel.Sqlizer{or}
	case domain.RuleSessionSubadmin:
		return []squirrel.Sqlizer{squirrel.Eq{colConsultantID: scope.ConsultantID}}
	default:
		return nil
	}
}

// anyConsultant консультант стоит на любой из трёх позиций
func anyConsultant(consultantID int64) squirrel.Sqlizer {
	return squirrel.Or{
		squirrel.Eq{colConsultantID: consultantID},
		squirrel.Eq{colSecondaryConsultantID: consultantID},
		squirrel.Eq{colThirdConsultantID: consultantID},
	}
}

// statsConditions все условия подсчёта статистики; каждое добавляется отдельным WHERE ... AND
func statsConditions(b sqlbuilder.Builder, filter domain.StatsFilter) []squirrel.Sqlizer {
	conditions := identityConditions(b, filter.Identity)

	if filter.SaleType != "" {
		conditions = append(conditions, squirrel.Eq{colSaleType: filter.SaleType})
	}
	if filter.ConvertedOnly {
		conditions = append(conditions, squirrel.Expr("LOWER(TRIM("+colConvertedStatus+")) = ?", domain.ConvertedFlagYes))
	}
	if filter.Period != nil {
		conditions = append(conditions, squirrel.Expr(colAddedOn+" BETWEEN ? AND ?",
			filter.Period.StartString(), filter.Period.EndString()))
	}

	return conditions
}

// scheduleConditions условия выборки броней для списка слотов
func scheduleConditions(b sqlbuilder.Builder, filter domain.ScheduleFilter) []squirrel.Sqlizer {
	conditions := identityConditions(b, filter.Identity)

	if filter.SaleType != "" {
		conditions = append(conditions, squirrel.Eq{colSaleType: filter.SaleType})
	}
	conditions = append(conditions, squirrel.Expr(colBookingDate+" BETWEEN ? AND ?", filter.DateFrom, filter.DateTo))

	return conditions
}

func applyConditions(sb squirrel.SelectBuilder, conditions []squirrel.Sqlizer) squirrel.SelectBuilder {
	for _, cond := range conditions {
		sb = sb.Where(cond)
	}
	return sb
}
