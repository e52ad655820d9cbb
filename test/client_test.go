//go:build integration_test || all_tests

package test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/2beens/fitgenius/internal/auth"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/require"
)

type session struct {
	Token  string `json:"token"`
	UserID string `json:"userId"`
}

// do sends body as JSON when it is not nil and returns the status and raw response.
func (s *IntegrationTestSuite) do(ctx context.Context, method, path, token string, body any) (int, []byte) {
	t := s.T()

	var reqBody io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, serverEndpoint+path, reqBody)
	require.NoError(t, err)
	req.Header.Set("User-Agent", "test-agent")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set(auth.TokenHeader, token)
	}

	resp, err := s.httpClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, respBytes
}

func (s *IntegrationTestSuite) signUp(ctx context.Context) session {
	t := s.T()

	status, body := s.do(ctx, http.MethodPost, "/a/signup", "", map[string]any{
		"email":    gofakeit.Email(),
		"password": gofakeit.Password(true, true, true, false, false, 12),
		"profile": map[string]any{
			"firstName": gofakeit.FirstName(),
			"timezone":  "UTC",
		},
	})
	require.Equal(t, http.StatusCreated, status, string(body))

	var sess session
	require.NoError(t, json.Unmarshal(body, &sess))
	require.NotEmpty(t, sess.Token)
	return sess
}
