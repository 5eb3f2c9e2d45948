package booking

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CallDashboard/internal/domain"
	"github.com/m04kA/SMC-CallDashboard/internal/testutil"
	"github.com/m04kA/SMC-CallDashboard/pkg/ptr"
	"github.com/m04kA/SMC-CallDashboard/pkg/sqlbuilder"
)

type seedBooking struct {
	consultant, secondary, third, addedBy interface{}
	team, saleType, converted             interface{}
	date, slot, consultation, callRequest interface{}
	addedOn, callDisabled                 interface{}
}

func seed(t *testing.T, db *sql.DB, rows ...seedBooking) {
	t.Helper()
	for _, b := range rows {
		testutil.MustExec(t, db, `INSERT INTO tbl_booking (
			fld_consultantid, fld_secondary_consultant_id, fld_third_consultantid, fld_addedby,
			fld_teamid, fld_sale_type, fld_converted_sts, fld_booking_date, fld_booking_slot,
			fld_consultation_sts, fld_call_request_sts, fld_addedon, callDisabled
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			b.consultant, b.secondary, b.third, b.addedBy, b.team, b.saleType, b.converted,
			b.date, b.slot, b.consultation, b.callRequest, b.addedOn, b.callDisabled)
	}
}

func setupRepository(t *testing.T) (*Repository, *sql.DB) {
	t.Helper()
	db := testutil.NewTestDB(t)
	return NewRepository(db, sqlbuilder.New(sqlbuilder.DialectSQLite)), db
}

func TestRepository_CountByFilter(t *testing.T) {
	repo, db := setupRepository(t)
	ctx := context.Background()

	seed(t, db,
		seedBooking{consultant: 5, addedBy: 9, team: "1,2", saleType: "Presales", converted: " YES ", addedOn: "2024-03-15 10:00:00"},
		seedBooking{consultant: 6, secondary: 5, addedBy: 9, team: "3", saleType: "Postsales", converted: "no", addedOn: "2024-03-14 10:00:00"},
		seedBooking{consultant: 7, third: 5, addedBy: 8, team: "12", saleType: "Presales", addedOn: "2024-02-10 10:00:00"},
		seedBooking{consultant: 8, addedBy: 8, team: "2", saleType: "Presales", addedOn: "2024-03-15 23:59:59"},
	)

	tests := []struct {
		name   string
		filter domain.StatsFilter
		want   int64
	}{
		{"everything", domain.StatsFilter{}, 4},
		{"consultant in any position", domain.StatsFilter{
			Identity: domain.IdentityScope{Rule: domain.RuleConsultant, ConsultantID: 5},
		}, 3},
		{"consultant and crm", domain.StatsFilter{
			Identity: domain.IdentityScope{Rule: domain.RuleConsultantAndCRM, ConsultantID: 5, CRMID: 9},
		}, 2},
		{"crm", domain.StatsFilter{
			Identity: domain.IdentityScope{Rule: domain.RuleCRM, CRMID: 8},
		}, 2},
		{"subadmin with teams matches whole ids only", domain.StatsFilter{
			Identity: domain.IdentityScope{Rule: domain.RuleSessionSubadminTeams, ConsultantID: 6, TeamIDs: []string{"2"}},
		}, 3},
		{"team id percent is not a wildcard", domain.StatsFilter{
			Identity: domain.IdentityScope{Rule: domain.RuleSessionSubadminTeams, ConsultantID: 100, TeamIDs: []string{"%"}},
		}, 0},
		{"team id underscore is not a wildcard", domain.StatsFilter{
			Identity: domain.IdentityScope{Rule: domain.RuleSessionSubadminTeams, ConsultantID: 100, TeamIDs: []string{"_"}},
		}, 0},
		{"sale type", domain.StatsFilter{SaleType: "Presales"}, 3},
		{"converted is case and space insensitive", domain.StatsFilter{ConvertedOnly: true}, 1},
		{"period inclusive", domain.StatsFilter{Period: &domain.Period{
			Start: mustParse(t, "2024-03-15 00:00:00"),
			End:   mustParse(t, "2024-03-15 23:59:59"),
		}}, 2},
		{"nothing matches", domain.StatsFilter{
			Identity: domain.IdentityScope{Rule: domain.RuleSessionSubadmin, ConsultantID: 100},
		}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			total, err := repo.CountByFilter(ctx, tt.filter)
			require.NoError(t, err)
			assert.Equal(t, tt.want, total)
		})
	}
}

func TestRepository_GetParticularStatusCalls(t *testing.T) {
	repo, db := setupRepository(t)
	ctx := context.Background()

	seed(t, db,
		seedBooking{addedBy: 9, date: "2024-03-15", slot: "3:30 PM", consultation: "Accept", callRequest: "Accept"},
		seedBooking{addedBy: 8, date: "2024-03-15", slot: "4:00 PM", consultation: "Accept", callRequest: "Accept"},
		seedBooking{addedBy: 9, date: "2024-03-15", consultation: "Accept", callRequest: "Pending"},
		seedBooking{addedBy: 9, date: "2024-03-14", consultation: "Accept", callRequest: "Accept"},
		seedBooking{addedBy: 9, date: "2024-03-15", consultation: "Accept", callRequest: "Accept", callDisabled: "1"},
	)

	calls, err := repo.GetParticularStatusCalls(ctx, domain.StatusCallsFilter{Status: "Accept", Date: "2024-03-15"})
	require.NoError(t, err)
	require.Len(t, calls, 2)
	assert.Equal(t, "2024-03-15", calls[0].BookingDate)
	assert.Equal(t, "3:30 PM", calls[0].Slot())

	calls, err = repo.GetParticularStatusCalls(ctx, domain.StatusCallsFilter{
		Status: "Accept", Date: "2024-03-15", CRMID: ptr.Ptr(int64(8)),
	})
	require.NoError(t, err)
	require.Len(t, calls, 1)
	assert.Equal(t, int64(8), *calls[0].AddedBy)
}

func TestRepository_GetForSchedule(t *testing.T) {
	repo, db := setupRepository(t)
	ctx := context.Background()

	seed(t, db,
		seedBooking{consultant: 5, date: "2024-03-16", slot: "9:00 AM", saleType: "Presales"},
		seedBooking{consultant: 5, date: "2024-03-10", slot: "9:30 AM", saleType: "Presales"},
		seedBooking{consultant: 6, date: "2024-03-12", slot: "10:00 AM", saleType: "Presales"},
		seedBooking{consultant: 5, date: "2024-03-20", slot: "10:00 AM", saleType: "Presales"},
		seedBooking{consultant: 5, date: "2024-03-11", slot: "10:00 AM", saleType: "Postsales"},
	)

	bookings, err := repo.GetForSchedule(ctx, domain.ScheduleFilter{
		Identity: domain.IdentityScope{Rule: domain.RuleConsultant, ConsultantID: 5},
		SaleType: "Presales",
		DateFrom: "2024-03-10",
		DateTo:   "2024-03-16",
	})
	require.NoError(t, err)
	require.Len(t, bookings, 2)
	assert.Equal(t, "2024-03-10", bookings[0].BookingDate)
	assert.Equal(t, "2024-03-16", bookings[1].BookingDate)
	assert.Nil(t, bookings[0].SecondaryConsultantID)
}

func TestNormalizeDate(t *testing.T) {
	assert.Equal(t, "2024-03-15", normalizeDate(sql.NullString{String: "2024-03-15T00:00:00Z", Valid: true}))
	assert.Equal(t, "2024-03-15", normalizeDate(sql.NullString{String: "2024-03-15", Valid: true}))
	assert.Equal(t, "", normalizeDate(sql.NullString{}))
}
