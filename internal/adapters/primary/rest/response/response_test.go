package response

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/clubhub/clubhub-api/internal/domain/common/errorz"
)

func TestError_StatusMapping(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{"not found", errorz.NotFound("club x not found"), http.StatusNotFound, `{"error":"club x not found"}`},
		{"conflict", errorz.Conflict("club is full"), http.StatusConflict, `{"error":"club is full"}`},
		{"forbidden", errorz.Forbidden("not the leader"), http.StatusForbidden, `{"error":"not the leader"}`},
		{"invalid argument", errorz.InvalidArgument("bad name"), http.StatusBadRequest, `{"error":"bad name"}`},
		{
			"unavailable hides the driver error",
			errorz.Unavailable(errors.New("dial tcp: refused"), "get club"),
			http.StatusServiceUnavailable,
			`{"error":"storage temporarily unavailable"}`,
		},
		{
			"unclassified hides everything",
			errors.New("nil pointer somewhere"),
			http.StatusInternalServerError,
			`{"error":"internal error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(rec)

			Error(c, tt.err)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}
