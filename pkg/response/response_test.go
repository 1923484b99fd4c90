package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestSuccessEnvelope(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	Success(c, gin.H{"id": 1})

	assert.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Equal(t, true, body["status"])
	assert.Equal(t, "success", body["message"])
	assert.EqualValues(t, 200, body["code"])
	assert.Equal(t, map[string]interface{}{"id": float64(1)}, body["data"])
}

func TestErrorEnvelopeHidesCause(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/x", nil)

	InternalError(c, "Failed to get lalins", errors.New("disk I/O error"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.True(t, c.IsAborted())
	assert.Len(t, c.Errors, 1)

	body := decode(t, w)
	assert.Equal(t, false, body["status"])
	assert.Equal(t, "Failed to get lalins", body["message"])
	assert.EqualValues(t, 500, body["code"])
	assert.NotContains(t, body, "data")
	assert.NotContains(t, w.Body.String(), "disk")
}

func TestConflict(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	Conflict(c, "Gerbang already exists")

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.EqualValues(t, 409, decode(t, w)["code"])
}
