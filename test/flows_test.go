//go:build integration_test || all_tests

package test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (s *IntegrationTestSuite) TestSessionLifecycle() {
	t := s.T()
	ctx := context.Background()

	status, _ := s.do(ctx, http.MethodGet, "/profile", "", nil)
	assert.Equal(t, http.StatusUnauthorized, status)

	sess := s.signUp(ctx)

	status, body := s.do(ctx, http.MethodGet, "/profile", sess.Token, nil)
	require.Equal(t, http.StatusOK, status, string(body))
	var profile map[string]any
	require.NoError(t, json.Unmarshal(body, &profile))
	assert.Equal(t, "UTC", profile["timezone"])

	status, _ = s.do(ctx, http.MethodGet, "/a/logout", sess.Token, nil)
	assert.Equal(t, http.StatusOK, status)

	status, _ = s.do(ctx, http.MethodGet, "/profile", sess.Token, nil)
	assert.Equal(t, http.StatusUnauthorized, status)
}

func (s *IntegrationTestSuite) TestWeekPlanRewardFlow() {
	t := s.T()
	ctx := context.Background()
	sess := s.signUp(ctx)

	status, body := s.do(ctx, http.MethodGet, "/plans/week", sess.Token, nil)
	require.Equal(t, http.StatusOK, status, string(body))
	var week struct {
		ID   string `json:"id"`
		Days []struct {
			DayName string `json:"dayName"`
			IsToday bool   `json:"isToday"`
		} `json:"days"`
	}
	require.NoError(t, json.Unmarshal(body, &week))
	require.Len(t, week.Days, 7)
	assert.Equal(t, "Monday", week.Days[0].DayName)

	status, body = s.do(ctx, http.MethodPost, "/modules", sess.Token, map[string]any{
		"title": "Leg Day",
		"exercises": []map[string]any{
			{"name": "Squat", "sets": 5, "reps": "5"},
		},
	})
	require.Equal(t, http.StatusCreated, status, string(body))
	var module struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(body, &module))
	require.NotEmpty(t, module.ID)

	today := time.Now().UTC().Format("2006-01-02")
	dayPath := fmt.Sprintf("/plans/week/day/%s", today)

	status, body = s.do(ctx, http.MethodPost, dayPath+"/reward", sess.Token, nil)
	assert.Equal(t, http.StatusConflict, status, string(body))

	status, body = s.do(ctx, http.MethodPut, dayPath+"/module", sess.Token, map[string]any{"moduleId": module.ID})
	require.Equal(t, http.StatusOK, status, string(body))

	status, body = s.do(ctx, http.MethodPost, dayPath+"/reward", sess.Token, nil)
	assert.Equal(t, http.StatusConflict, status, string(body))

	status, body = s.do(ctx, http.MethodPut, dayPath+"/exercise/0", sess.Token, map[string]any{"completed": true})
	require.Equal(t, http.StatusOK, status, string(body))

	status, body = s.do(ctx, http.MethodPost, dayPath+"/reward", sess.Token, nil)
	require.Equal(t, http.StatusOK, status, string(body))
	assert.Contains(t, string(body), `"rewardClaimed":true`)

	status, _ = s.do(ctx, http.MethodPost, dayPath+"/reward", sess.Token, nil)
	assert.Equal(t, http.StatusConflict, status)

	status, body = s.do(ctx, http.MethodGet, "/plans/week/"+week.ID, sess.Token, nil)
	require.Equal(t, http.StatusOK, status, string(body))
	assert.Contains(t, string(body), "Leg Day")
}

func (s *IntegrationTestSuite) TestChatWithoutAssistant() {
	t := s.T()
	ctx := context.Background()
	sess := s.signUp(ctx)

	status, body := s.do(ctx, http.MethodPost, "/chat/messages", sess.Token, map[string]any{"message": "build me a chest day"})
	require.Equal(t, http.StatusOK, status, string(body))

	var reply struct {
		Text    string `json:"text"`
		Modules []any  `json:"modules"`
	}
	require.NoError(t, json.Unmarshal(body, &reply))
	assert.Equal(t, "Sorry, I couldn't generate a response.", reply.Text)
	assert.NotNil(t, reply.Modules)
	assert.Empty(t, reply.Modules)

	status, _ = s.do(ctx, http.MethodDelete, "/chat", sess.Token, nil)
	assert.Equal(t, http.StatusNoContent, status)
}
