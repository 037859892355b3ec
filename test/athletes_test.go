//go:build integration

package test

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shreyajaiswal17/athletehub/internal/athletes"
	"github.com/shreyajaiswal17/athletehub/internal/dashboard"
	"github.com/shreyajaiswal17/athletehub/internal/guidance"
	"github.com/shreyajaiswal17/athletehub/internal/injuries"
	"github.com/shreyajaiswal17/athletehub/internal/performance"
	"github.com/shreyajaiswal17/athletehub/internal/workload"
)

func (s *IntegrationTestSuite) newAthlete(ctx context.Context, token, sport string) athletes.Athlete {
	var added athletes.Athlete
	s.doJSON(ctx, token, http.MethodPost, "/athletes", athletes.Athlete{
		Name:     gofakeit.Name(),
		Age:      24,
		Gender:   athletes.GenderFemale,
		Sport:    sport,
		HeightCm: 170,
		WeightKg: 62,
	}, http.StatusCreated, &added)
	require.NotZero(s.T(), added.ID)
	return added
}

func (s *IntegrationTestSuite) status(ctx context.Context, token string, athleteID int) workload.Status {
	var statusResp dashboard.StatusResponse
	s.doJSON(ctx, token, http.MethodGet, fmt.Sprintf("/athletes/%d/status", athleteID), nil, http.StatusOK, &statusResp)
	return statusResp.Status
}

func (s *IntegrationTestSuite) TestAthletes_CRUD() {
	t := s.T()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	token := s.doLogin(ctx)

	athlete := s.newAthlete(ctx, token, "tennis")

	var fetched athletes.Athlete
	s.doJSON(ctx, token, http.MethodGet, fmt.Sprintf("/athletes/%d", athlete.ID), nil, http.StatusOK, &fetched)
	assert.Equal(t, athlete.Name, fetched.Name)
	assert.Equal(t, "tennis", fetched.Sport)

	fetched.Age = 25
	var updateResp athletes.UpdateAthleteResponse
	s.doJSON(ctx, token, http.MethodPut, "/athletes", fetched, http.StatusOK, &updateResp)
	assert.Equal(t, athlete.ID, updateResp.UpdatedID)

	s.doJSON(ctx, token, http.MethodGet, fmt.Sprintf("/athletes/%d", athlete.ID), nil, http.StatusOK, &fetched)
	assert.Equal(t, 25, fetched.Age)

	var list athletes.ListResponse
	s.doJSON(ctx, token, http.MethodGet, "/athletes/list/page/1/size/100?sport=tennis", nil, http.StatusOK, &list)
	assert.GreaterOrEqual(t, list.Total, 1)
	for _, a := range list.Athletes {
		assert.Equal(t, "tennis", a.Sport)
	}

	var deleteResp athletes.DeleteAthleteResponse
	s.doJSON(ctx, token, http.MethodDelete, fmt.Sprintf("/athletes/%d", athlete.ID), nil, http.StatusOK, &deleteResp)
	assert.Equal(t, athlete.ID, deleteResp.DeletedID)

	s.doJSON(ctx, token, http.MethodGet, fmt.Sprintf("/athletes/%d", athlete.ID), nil, http.StatusNotFound, nil)
	s.doJSON(ctx, token, http.MethodGet, fmt.Sprintf("/athletes/%d/metrics", athlete.ID), nil, http.StatusNotFound, nil)
}

func (s *IntegrationTestSuite) TestAthletes_SportAliases() {
	t := s.T()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	token := s.doLogin(ctx)

	athlete := s.newAthlete(ctx, token, "Futsal")
	assert.Equal(t, "football", athlete.Sport)

	var list athletes.ListResponse
	s.doJSON(ctx, token, http.MethodGet, "/athletes/list/page/1/size/100?sport=soccer", nil, http.StatusOK, &list)
	found := false
	for _, a := range list.Athletes {
		assert.Equal(t, "football", a.Sport)
		found = found || a.ID == athlete.ID
	}
	assert.True(t, found)

	var overview dashboard.TeamOverview
	s.doJSON(ctx, token, http.MethodGet, "/team/overview?sport=Soccer", nil, http.StatusOK, &overview)
	found = false
	for _, member := range overview.Athletes {
		found = found || member.AthleteID == athlete.ID
	}
	assert.True(t, found)
}

func (s *IntegrationTestSuite) TestAthletes_SeededWithSQL() {
	t := s.T()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	token := s.doLogin(ctx)

	var athleteID int
	now := time.Now().UTC()
	require.NoError(t, s.DB.QueryRowContext(ctx,
		`INSERT INTO athlete (name, age, sport, created_at, updated_at) VALUES ($1, $2, $3, $4, $4) RETURNING id;`,
		"Seeded Rower", 27, "rowing", now,
	).Scan(&athleteID))

	for day := 0; day < 3; day++ {
		_, err := s.DB.ExecContext(ctx,
			`INSERT INTO athlete_data (athlete_id, date, duration_minutes, intensity, created_at) VALUES ($1, $2, $3, $4, $5);`,
			athleteID, now.AddDate(0, 0, -day), 60, 6, now,
		)
		require.NoError(t, err)
	}

	var records performance.ListResponse
	s.doJSON(ctx, token, http.MethodGet, fmt.Sprintf("/athletes/%d/data/page/1/size/10", athleteID), nil, http.StatusOK, &records)
	assert.Equal(t, 3, records.Total)
	require.Len(t, records.Records, 3)

	var snap workload.Snapshot
	s.doJSON(ctx, token, http.MethodGet, fmt.Sprintf("/athletes/%d/metrics", athleteID), nil, http.StatusOK, &snap)
	assert.Equal(t, athleteID, snap.AthleteID)
	assert.Equal(t, 3, snap.RecordCount)
	assert.NotEqual(t, workload.StatusNoData, snap.Status)
	assert.NotEqual(t, workload.StatusInjured, snap.Status)
}

func (s *IntegrationTestSuite) TestAthletes_RecordsInjuriesAndStatus() {
	t := s.T()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	token := s.doLogin(ctx)

	athlete := s.newAthlete(ctx, token, "football")
	assert.Equal(t, workload.StatusNoData, s.status(ctx, token, athlete.ID))

	// adding a record invalidates the cached NO_DATA snapshot
	var added performance.AddRecordResponse
	s.doJSON(ctx, token, http.MethodPost, fmt.Sprintf("/athletes/%d/data", athlete.ID), performance.Record{
		DurationMinutes: 75,
		Intensity:       7,
		AvgHeartRate:    150,
		SleepHours:      8,
		Soreness:        3,
	}, http.StatusCreated, &added)
	assert.NotZero(t, added.ID)
	assert.Equal(t, 1, added.CountToday)
	assert.NotEqual(t, workload.StatusNoData, s.status(ctx, token, athlete.ID))

	var injury injuries.Injury
	s.doJSON(ctx, token, http.MethodPost, fmt.Sprintf("/athletes/%d/injuries", athlete.ID), injuries.Injury{
		BodyPart: "hamstring",
		Severity: injuries.SeverityModerate,
	}, http.StatusCreated, &injury)
	assert.Equal(t, workload.StatusInjured, s.status(ctx, token, athlete.ID))

	var injuriesList injuries.ListResponse
	s.doJSON(ctx, token, http.MethodGet, fmt.Sprintf("/athletes/%d/injuries", athlete.ID), nil, http.StatusOK, &injuriesList)
	assert.Equal(t, 1, injuriesList.Total)
	assert.Equal(t, 1, injuriesList.Active)

	recoveredLongAgo := time.Date(2019, time.January, 1, 0, 0, 0, 0, time.UTC)

	s.doJSON(ctx, token, http.MethodPost, fmt.Sprintf("/athletes/injuries/%d/recover", injury.ID), injuries.RecoverRequest{
		RecoveredAt: &recoveredLongAgo,
	}, http.StatusBadRequest, nil)

	var recovered injuries.Injury
	s.doJSON(ctx, token, http.MethodPost, fmt.Sprintf("/athletes/injuries/%d/recover", injury.ID), nil, http.StatusOK, &recovered)
	require.NotNil(t, recovered.RecoveredAt)
	assert.NotEqual(t, workload.StatusInjured, s.status(ctx, token, athlete.ID))

	s.doJSON(ctx, token, http.MethodPost, fmt.Sprintf("/athletes/injuries/%d/recover", injury.ID), nil, http.StatusConflict, nil)

	// training data for an athlete that does not exist
	s.doJSON(ctx, token, http.MethodPost, "/athletes/999999/data", performance.Record{
		DurationMinutes: 30,
		Intensity:       5,
	}, http.StatusNotFound, nil)

	var load dashboard.LoadResponse
	s.doJSON(ctx, token, http.MethodGet, fmt.Sprintf("/athletes/%d/metrics/load?days=14", athlete.ID), nil, http.StatusOK, &load)
	assert.Equal(t, 14, load.Days)
	assert.Len(t, load.Points, 14)

	var schedule guidance.Schedule
	s.doJSON(ctx, token, http.MethodGet, fmt.Sprintf("/athletes/%d/guidance/schedule", athlete.ID), nil, http.StatusOK, &schedule)
	assert.Equal(t, athlete.ID, schedule.AthleteID)
	assert.Len(t, schedule.Days, 7)

	var nutrition guidance.NutritionPlan
	s.doJSON(ctx, token, http.MethodGet, fmt.Sprintf("/athletes/%d/guidance/nutrition", athlete.ID), nil, http.StatusOK, &nutrition)
	assert.Positive(t, nutrition.Calories)

	var career guidance.CareerPlan
	s.doJSON(ctx, token, http.MethodGet, fmt.Sprintf("/athletes/%d/guidance/career", athlete.ID), nil, http.StatusOK, &career)
	assert.Equal(t, guidance.PhasePeak, career.Phase)

	var overview dashboard.TeamOverview
	s.doJSON(ctx, token, http.MethodGet, "/team/overview?sport=football", nil, http.StatusOK, &overview)
	assert.GreaterOrEqual(t, overview.Total, 1)
	found := false
	for _, member := range overview.Athletes {
		assert.Equal(t, "football", member.Sport)
		if member.AthleteID == athlete.ID {
			found = true
		}
	}
	assert.True(t, found)
}
