package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/bassista/tourdesk/internal/drilldown"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupDrilldown(exp *drilldown.Expander[item]) *gin.Engine {
	r := gin.New()
	r.POST("/api/users/:id/travellers/toggle", ToggleHandler(exp))
	r.GET("/api/users/travellers/expanded", ExpandedHandler(exp))
	return r
}

func decodeExpansion(t *testing.T, w *httptest.ResponseRecorder) drilldown.State[item] {
	t.Helper()
	var st drilldown.State[item]
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &st))
	return st
}

func TestToggleHandler_ExpandAndCollapse(t *testing.T) {
	var calls atomic.Int32
	exp := drilldown.NewExpander("travellers", func(_ context.Context, id string) ([]item, error) {
		calls.Add(1)
		return []item{{Name: "traveller of " + id}}, nil
	})
	r := setupDrilldown(exp)

	w := serve(r, httptest.NewRequest(http.MethodPost, "/api/users/5/travellers/toggle", nil))
	require.Equal(t, http.StatusOK, w.Code)
	st := decodeExpansion(t, w)
	assert.Equal(t, "5", st.Expanded)
	assert.Equal(t, []item{{Name: "traveller of 5"}}, st.Rows)

	w = serve(r, httptest.NewRequest(http.MethodGet, "/api/users/travellers/expanded", nil))
	assert.Equal(t, "5", decodeExpansion(t, w).Expanded)

	w = serve(r, httptest.NewRequest(http.MethodPost, "/api/users/5/travellers/toggle", nil))
	require.Equal(t, http.StatusOK, w.Code)
	st = decodeExpansion(t, w)
	assert.Empty(t, st.Expanded)
	assert.Empty(t, st.Rows)
	assert.Equal(t, int32(1), calls.Load(), "collapse must not fetch")
}

func TestToggleHandler_FetchErrorIsStillOK(t *testing.T) {
	exp := drilldown.NewExpander("travellers", func(context.Context, string) ([]item, error) {
		return nil, errBoom
	})
	r := setupDrilldown(exp)

	w := serve(r, httptest.NewRequest(http.MethodPost, "/api/users/9/travellers/toggle", nil))

	require.Equal(t, http.StatusOK, w.Code)
	st := decodeExpansion(t, w)
	assert.Equal(t, "9", st.Expanded)
	assert.Empty(t, st.Rows)
	assert.NotEmpty(t, st.Error)
}
