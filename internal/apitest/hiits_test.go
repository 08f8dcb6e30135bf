//go:build integration_test || all_tests

package apitest

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/2beens/seefit/internal/hiits"
	"github.com/2beens/seefit/internal/progress"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (s *IntegrationTestSuite) doRequest(ctx context.Context, method, path string, body any) (int, []byte) {
	t := s.T()

	var reqBody io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reqBody = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, serverEndpoint+path, reqBody)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := s.httpClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, respBytes
}

func (s *IntegrationTestSuite) countRows(query string, args ...any) int {
	var count int
	require.NoError(s.T(), s.DB.QueryRow(query, args...).Scan(&count))
	return count
}

func (s *IntegrationTestSuite) TestDefaultHiitsSeeded() {
	ctx := context.Background()
	t := s.T()

	status, body := s.doRequest(ctx, "GET", "/hiits", nil)
	require.Equal(t, http.StatusOK, status)

	var list []hiits.Hiit
	require.NoError(t, json.Unmarshal(body, &list))
	defaults := 0
	for _, h := range list {
		if h.Type == hiits.TypeDefault {
			defaults++
		}
	}
	assert.Equal(t, 8, defaults)

	assert.Equal(t, 8, s.countRows(`SELECT COUNT(*) FROM hiits WHERE type = 'default'`))
	for _, d := range hiits.DefaultHiits {
		assert.Equal(t, 4, s.countRows(`SELECT COUNT(*) FROM exercises WHERE hiit_id = $1`, d.ID))
	}
}

func (s *IntegrationTestSuite) TestCustomHiitLifecycle() {
	ctx := context.Background()
	t := s.T()

	status, body := s.doRequest(ctx, "POST", "/hiits", map[string]string{
		"name":        "Integration",
		"description": "made by the integration test",
	})
	require.Equal(t, http.StatusOK, status)
	var created hiits.Hiit
	require.NoError(t, json.Unmarshal(body, &created))
	require.NotEmpty(t, created.ID)
	assert.Equal(t, hiits.TypeCustom, created.Type)

	status, _ = s.doRequest(ctx, "POST", "/hiits", map[string]string{
		"hiit_id":     created.ID,
		"name":        "Again",
		"description": "same id",
	})
	assert.Equal(t, http.StatusConflict, status)

	status, body = s.doRequest(ctx, "POST", "/exercise", map[string]any{
		"name":              "Burpees",
		"description":       "all the way down",
		"exercise_duration": 60,
		"rest_duration":     30,
		"hiit_id":           created.ID,
	})
	require.Equal(t, http.StatusOK, status)
	var exercise hiits.Exercise
	require.NoError(t, json.Unmarshal(body, &exercise))
	assert.Positive(t, exercise.ID)

	var exerciseDuration, restDuration int
	require.NoError(t, s.DB.QueryRow(
		`SELECT exercise_duration, rest_duration FROM exercises WHERE exercise_id = $1`, exercise.ID,
	).Scan(&exerciseDuration, &restDuration))
	assert.Equal(t, 60, exerciseDuration)
	assert.Equal(t, 30, restDuration)

	status, body = s.doRequest(ctx, "GET", "/hiits/"+created.ID+"/plan", nil)
	require.Equal(t, http.StatusOK, status)
	var plan hiits.PlanResponse
	require.NoError(t, json.Unmarshal(body, &plan))
	assert.Equal(t, 90, plan.Total)
	assert.Len(t, plan.Intervals, 2)

	status, _ = s.doRequest(ctx, "DELETE", "/hiits/"+created.ID, nil)
	require.Equal(t, http.StatusNoContent, status)
	status, _ = s.doRequest(ctx, "DELETE", "/hiits/"+created.ID, nil)
	require.Equal(t, http.StatusNoContent, status)

	assert.Zero(t, s.countRows(`SELECT COUNT(*) FROM hiits WHERE hiits_id = $1`, created.ID))
	assert.Zero(t, s.countRows(`SELECT COUNT(*) FROM exercises WHERE hiit_id = $1`, created.ID))

	status, _ = s.doRequest(ctx, "GET", "/hiits/"+created.ID, nil)
	assert.Equal(t, http.StatusNotFound, status)
}

func (s *IntegrationTestSuite) TestDefaultHiitCannotBeDeleted() {
	ctx := context.Background()
	t := s.T()
	id := hiits.DefaultHiits[1].ID

	status, _ := s.doRequest(ctx, "DELETE", "/hiits/"+id, nil)
	require.Equal(t, http.StatusNoContent, status)
	assert.Equal(t, 1, s.countRows(`SELECT COUNT(*) FROM hiits WHERE hiits_id = $1`, id))
	assert.Equal(t, 4, s.countRows(`SELECT COUNT(*) FROM exercises WHERE hiit_id = $1`, id))
}

func (s *IntegrationTestSuite) TestProgress() {
	ctx := context.Background()
	t := s.T()

	status, body := s.doRequest(ctx, "GET", "/progress", nil)
	require.Equal(t, http.StatusOK, status)
	var before progress.Progress
	require.NoError(t, json.Unmarshal(body, &before))

	status, body = s.doRequest(ctx, "POST", "/progress/hiits/"+hiits.DefaultHiits[0].ID+"/complete", nil)
	require.Equal(t, http.StatusOK, status)
	var after progress.Progress
	require.NoError(t, json.Unmarshal(body, &after))
	assert.Equal(t, before.TotalHiits+1, after.TotalHiits)
	assert.Equal(t, before.CompletedExerciseCount+4, after.CompletedExerciseCount)
	assert.Len(t, after.CompletedHiits, len(before.CompletedHiits)+1)

	status, _ = s.doRequest(ctx, "PUT", "/progress", progress.New())
	require.Equal(t, http.StatusOK, status)

	status, body = s.doRequest(ctx, "GET", "/progress/summary", nil)
	require.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"hiits":"00","exercises":"00","time":"00:00"}`, string(body))
}
