package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CallDashboard/internal/domain"
	"github.com/m04kA/SMC-CallDashboard/pkg/sqlbuilder"
)

func TestCountQuery_IdentityRules(t *testing.T) {
	repo := NewRepository(nil, sqlbuilder.New(sqlbuilder.DialectMySQL))
	const prefix = "SELECT COUNT(*) FROM tbl_booking"
	const anyConsultantSQL = "(fld_consultantid = ? OR fld_secondary_consultant_id = ? OR fld_third_consultantid = ?)"

	tests := []struct {
		name     string
		scope    domain.IdentityScope
		wantSQL  string
		wantArgs []interface{}
	}{
		{
			name:     "unrestricted",
			scope:    domain.IdentityScope{Rule: domain.RuleUnrestricted},
			wantSQL:  prefix,
			wantArgs: nil,
		},
		{
			name:     "consultant and crm",
			scope:    domain.IdentityScope{Rule: domain.RuleConsultantAndCRM, ConsultantID: 5, CRMID: 9},
			wantSQL:  prefix + " WHERE " + anyConsultantSQL + " AND fld_addedby = ?",
			wantArgs: []interface{}{int64(5), int64(5), int64(5), int64(9)},
		},
		{
			name:     "consultant",
			scope:    domain.IdentityScope{Rule: domain.RuleConsultant, ConsultantID: 5},
			wantSQL:  prefix + " WHERE " + anyConsultantSQL,
			wantArgs: []interface{}{int64(5), int64(5), int64(5)},
		},
		{
			name:     "session consultant",
			scope:    domain.IdentityScope{Rule: domain.RuleSessionConsultant, ConsultantID: 3},
			wantSQL:  prefix + " WHERE " + anyConsultantSQL,
			wantArgs: []interface{}{int64(3), int64(3), int64(3)},
		},
		{
			name:     "crm",
			scope:    domain.IdentityScope{Rule: domain.RuleCRM, CRMID: 9},
			wantSQL:  prefix + " WHERE fld_addedby = ?",
			wantArgs: []interface{}{int64(9)},
		},
		{
			name:     "session executive",
			scope:    domain.IdentityScope{Rule: domain.RuleSessionExecutive, CRMID: 3},
			wantSQL:  prefix + " WHERE fld_addedby = ?",
			wantArgs: []interface{}{int64(3)},
		},
		{
			name:  "session subadmin with teams",
			scope: domain.IdentityScope{Rule: domain.RuleSessionSubadminTeams, ConsultantID: 3, TeamIDs: []string{"1", "2"}},
			wantSQL: prefix + " WHERE (fld_consultantid = ? OR FIND_IN_SET(?, fld_teamid) > 0" +
				" OR FIND_IN_SET(?, fld_teamid) > 0)",
			wantArgs: []interface{}{int64(3), "1", "2"},
		},
		{
			name:     "session subadmin",
			scope:    domain.IdentityScope{Rule: domain.RuleSessionSubadmin, ConsultantID: 3},
			wantSQL:  prefix + " WHERE fld_consultantid = ?",
			wantArgs: []interface{}{int64(3)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := repo.countQuery(domain.StatsFilter{Identity: tt.scope})
			require.NoError(t, err)
			assert.Equal(t, tt.wantSQL, query)
			if tt.wantArgs == nil {
				assert.Empty(t, args)
			} else {
				assert.Equal(t, tt.wantArgs, args)
			}
		})
	}
}

func TestCountQuery_AllPredicates(t *testing.T) {
	loc, err := time.LoadLocation(domain.DefaultTimezone)
	require.NoError(t, err)
	period, ok := domain.ResolvePeriod(domain.FilterToday, time.Date(2024, 3, 15, 10, 0, 0, 0, loc), loc, time.Sunday)
	require.True(t, ok)

	filter := domain.StatsFilter{
		Identity:      domain.IdentityScope{Rule: domain.RuleCRM, CRMID: 9},
		SaleType:      "Presales",
		ConvertedOnly: true,
		Period:        &period,
	}

	query, args, err := NewRepository(nil, sqlbuilder.New(sqlbuilder.DialectPostgres)).countQuery(filter)
	require.NoError(t, err)

	assert.Equal(t, "SELECT COUNT(*) FROM tbl_booking WHERE fld_addedby = $1 AND fld_sale_type = $2"+
		" AND LOWER(TRIM(fld_converted_sts)) = $3 AND fld_addedon BETWEEN $4 AND $5", query)
	assert.Equal(t, []interface{}{int64(9), "Presales", "yes", "2024-03-15 00:00:00", "2024-03-15 23:59:59"}, args)
}

func TestCountQuery_NoInjection(t *testing.T) {
	repo := NewRepository(nil, sqlbuilder.New(sqlbuilder.DialectMySQL))
	hostile := "1'); DROP TABLE tbl_booking; --"

	query, args, err := repo.countQuery(domain.StatsFilter{
		Identity: domain.IdentityScope{Rule: domain.RuleSessionSubadminTeams, ConsultantID: 1, TeamIDs: []string{hostile}},
		SaleType: hostile,
	})
	require.NoError(t, err)

	assert.NotContains(t, query, "DROP")
	assert.Contains(t, args, hostile)
}

func mustParse(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse(domain.DateTimeFormat, value)
	require.NoError(t, err)
	return parsed
}
