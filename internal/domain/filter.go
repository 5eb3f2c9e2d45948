package domain

import "strings"

// FilterType период статистики
type FilterType string

const (
	FilterNone      FilterType = ""
	FilterToday     FilterType = "Today"
	FilterWeek      FilterType = "Week"
	FilterMonth     FilterType = "Month"
	FilterLastMonth FilterType = "Last"
)

// SessionUserType тип пользователя сессии
type SessionUserType string

const (
	SessionExecutive  SessionUserType = "EXECUTIVE"
	SessionConsultant SessionUserType = "CONSULTANT"
	SessionSubadmin   SessionUserType = "SUBADMIN"
)

// FilterContext параметры запроса статистики.
// Идентификаторы уже приведены к числам: nil означает "не передан или не число".
type FilterContext struct {
	FilterType      FilterType
	ConsultantID    *int64
	CRMID           *int64
	SaleType        string
	ConvertedStatus string
	SessionUserType SessionUserType
	SessionUserID   *int64
	TeamIDs         []string
}

// IdentityRule правило ограничения выборки по пользователю
type IdentityRule int

const (
	RuleUnrestricted IdentityRule = iota
	RuleConsultantAndCRM
	RuleConsultant
	RuleCRM
	RuleSessionExecutive
	RuleSessionConsultant
	RuleSessionSubadminTeams
	RuleSessionSubadmin
)

var identityRuleNames = map[IdentityRule]string{
	RuleUnrestricted:         "unrestricted",
	RuleConsultantAndCRM:     "consultant_and_crm",
	RuleConsultant:           "consultant",
	RuleCRM:                  "crm",
	RuleSessionExecutive:     "session_executive",
	RuleSessionConsultant:    "session_consultant",
	RuleSessionSubadminTeams: "session_subadmin_teams",
	RuleSessionSubadmin:      "session_subadmin",
}

func (r IdentityRule) String() string {
	if name, ok := identityRuleNames[r]; ok {
		return name
	}
	return "unknown"
}

// IdentityScope итог выбора правила: какие колонки и с какими значениями сравнивать
type IdentityScope struct {
	Rule         IdentityRule
	ConsultantID int64    // сравнивается с одной или тремя колонками консультантов
	CRMID        int64    // сравнивается с fld_addedby
	TeamIDs      []string // только для RuleSessionSubadminTeams
}

type identityRuleEntry struct {
	rule    IdentityRule
	matches func(f *FilterContext) bool
	scope   func(f *FilterContext) IdentityScope
}

// identityDecisionTable проверяется сверху вниз, срабатывает первое подходящее правило
var identityDecisionTable = []identityRuleEntry{
	{
		rule:    RuleConsultantAndCRM,
		matches: func(f *FilterContext) bool { return f.ConsultantID != nil && f.CRMID != nil },
		scope: func(f *FilterContext) IdentityScope {
			return IdentityScope{ConsultantID: *f.ConsultantID, CRMID: *f.CRMID}
		},
	},
	{
		rule:    RuleConsultant,
		matches: func(f *FilterContext) bool { return f.ConsultantID != nil },
		scope:   func(f *FilterContext) IdentityScope { return IdentityScope{ConsultantID: *f.ConsultantID} },
	},
	{
		rule:    RuleCRM,
		matches: func(f *FilterContext) bool { return f.CRMID != nil },
		scope:   func(f *FilterContext) IdentityScope { return IdentityScope{CRMID: *f.CRMID} },
	},
	{
		rule: RuleSessionExecutive,
		matches: func(f *FilterContext) bool {
			return f.SessionUserID != nil && f.SessionUserType == SessionExecutive
		},
		scope: func(f *FilterContext) IdentityScope { return IdentityScope{CRMID: *f.SessionUserID} },
	},
	{
		rule: RuleSessionConsultant,
		matches: func(f *FilterContext) bool {
			return f.SessionUserID != nil && f.SessionUserType == SessionConsultant
		},
		scope: func(f *FilterContext) IdentityScope { return IdentityScope{ConsultantID: *f.SessionUserID} },
	},
	{
		rule: RuleSessionSubadminTeams,
		matches: func(f *FilterContext) bool {
			return f.SessionUserID != nil && f.SessionUserType == SessionSubadmin && len(f.TeamIDs) > 0
		},
		scope: func(f *FilterContext) IdentityScope {
			return IdentityScope{ConsultantID: *f.SessionUserID, TeamIDs: f.TeamIDs}
		},
	},
	{
		rule: RuleSessionSubadmin,
		matches: func(f *FilterContext) bool {
			return f.SessionUserID != nil && f.SessionUserType == SessionSubadmin
		},
		scope: func(f *FilterContext) IdentityScope { return IdentityScope{ConsultantID: *f.SessionUserID} },
	},
}

// Identity выбирает ровно одно правило ограничения выборки
func (f *FilterContext) Identity() IdentityScope {
	for _, entry := range identityDecisionTable {
		if entry.matches(f) {
			scope := entry.scope(f)
			scope.Rule = entry.rule
			return scope
		}
	}
	return IdentityScope{Rule: RuleUnrestricted}
}

// ConvertedOnly returns true if only converted bookings must be counted
func (f *FilterContext) ConvertedOnly() bool {
	return f.ConvertedStatus == ConvertedStatusFilter
}

// ParseTeamIDs разбирает список команд "1, 2,,3" в ["1", "2", "3"]
func ParseTeamIDs(raw string) []string {
	var ids []string
	for _, part := range strings.Split(raw, ",") {
		if id := strings.TrimSpace(part); id != "" {
			ids = append(ids, id)
		}
	}
	return ids
}

// StatsFilter готовый фильтр подсчёта броней
type StatsFilter struct {
	Identity      IdentityScope
	SaleType      string
	ConvertedOnly bool
	Period        *Period
}

// StatusCallsFilter фильтр звонков с заданным статусом на дату
type StatusCallsFilter struct {
	Status string
	Date   string // YYYY-MM-DD
	CRMID  *int64
}

// ScheduleFilter фильтр броней для списка слотов
type ScheduleFilter struct {
	Identity IdentityScope
	SaleType string
	DateFrom string // YYYY-MM-DD, включительно
	DateTo   string // YYYY-MM-DD, включительно
}
