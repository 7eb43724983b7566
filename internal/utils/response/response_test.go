package response_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	appErrors "github.com/parisboutique/storefront/internal/errors"
	"github.com/parisboutique/storefront/internal/utils/response"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorMapsAppErrorStatus(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"validation", appErrors.ValidationError("bad input"), http.StatusBadRequest, appErrors.ErrCodeValidation},
		{"not found", appErrors.NotFoundError("missing"), http.StatusNotFound, appErrors.ErrCodeNotFound},
		{"unauthorized", appErrors.UnauthorizedError("nope"), http.StatusUnauthorized, appErrors.ErrCodeUnauthorized},
		{"integrity floor", appErrors.IntegrityFloorError("floor"), http.StatusConflict, appErrors.ErrCodeIntegrityFloor},
		{"storage", appErrors.StorageError("disk"), http.StatusInternalServerError, appErrors.ErrCodeStorage},
		{"plain error", errors.New("anything"), http.StatusInternalServerError, appErrors.ErrCodeInternal},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()

			response.Error(rec, tc.err)

			require.Equal(t, tc.wantStatus, rec.Code)

			var resp response.APIResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			require.NotNil(t, resp.Error)
			assert.False(t, resp.Success)
			assert.Equal(t, tc.wantCode, resp.Error.Code)
		})
	}
}

func TestErrorIncludesDetail(t *testing.T) {
	rec := httptest.NewRecorder()

	response.Error(rec, appErrors.ValidationError("bad input").WithDetail("price is malformed"))

	var resp response.APIResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotNil(t, resp.Error)
	assert.Equal(t, []string{"price is malformed"}, resp.Error.Details)
}

func TestSuccessEnvelope(t *testing.T) {
	rec := httptest.NewRecorder()

	response.Success(rec, http.StatusOK, map[string]int64{"deleted": 42})

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var resp response.APIResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Nil(t, resp.Error)
}
