package modrinth

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAPIError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *APIError
		want string
	}{
		{
			name: "with description",
			err:  NewAPIError(http.StatusBadRequest, "invalid_input", "facets must be a JSON array"),
			want: "invalid_input: facets must be a JSON array (status 400)",
		},
		{
			name: "without description",
			err:  NewAPIError(http.StatusBadGateway, "API error", ""),
			want: "API error (status 502)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestQueryFailedError_Error(t *testing.T) {
	err := &QueryFailedError{Target: "sodium", Err: ErrProjectNotFound}
	assert.Equal(t, "query sodium failed: project not found", err.Error())
}

func TestQueryFailedError_Unwrap(t *testing.T) {
	apiErr := NewAPIError(http.StatusInternalServerError, "internal_error", "try again later")

	tests := []struct {
		name       string
		cause      error
		wantIs     error
		wantStatus int
	}{
		{name: "project not found", cause: ErrProjectNotFound, wantIs: ErrProjectNotFound},
		{name: "rate limited", cause: ErrRateLimitExceeded, wantIs: ErrRateLimitExceeded},
		{name: "undecodable body", cause: fmt.Errorf("%w: decode response: EOF", ErrInvalidResponse), wantIs: ErrInvalidResponse},
		{name: "api error", cause: apiErr, wantIs: apiErr, wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Callers see registry errors wrapped once more by their own stage.
			err := fmt.Errorf("get project: %w", &QueryFailedError{Target: "AANobbMI", Err: tt.cause})

			assert.ErrorIs(t, err, tt.wantIs)

			var qf *QueryFailedError
			require.ErrorAs(t, err, &qf)
			assert.Equal(t, "AANobbMI", qf.Target)

			var ae *APIError
			if tt.wantStatus == 0 {
				assert.False(t, errors.As(err, &ae))
				return
			}
			require.ErrorAs(t, err, &ae)
			assert.Equal(t, tt.wantStatus, ae.StatusCode)
		})
	}
}

func TestClient_ErrorsReachCallers(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		body       string
		wantIs     error
		wantStatus int
	}{
		{name: "404", status: http.StatusNotFound, body: `{"error":"not_found"}`, wantIs: ErrProjectNotFound},
		{name: "429", status: http.StatusTooManyRequests, wantIs: ErrRateLimitExceeded},
		{name: "400 with body", status: http.StatusBadRequest, body: `{"error":"invalid_input","description":"bad id"}`, wantStatus: http.StatusBadRequest},
		{name: "503 without body", status: http.StatusServiceUnavailable, wantStatus: http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			client := NewClient(&Config{BaseURL: server.URL})

			_, err := client.GetProject(context.Background(), "sodium")
			require.Error(t, err)

			var qf *QueryFailedError
			require.ErrorAs(t, err, &qf)
			assert.Equal(t, "sodium", qf.Target)

			if tt.wantIs != nil {
				assert.ErrorIs(t, err, tt.wantIs)
			}
			if tt.wantStatus != 0 {
				var ae *APIError
				require.ErrorAs(t, err, &ae)
				assert.Equal(t, tt.wantStatus, ae.StatusCode)
			}
		})
	}
}
