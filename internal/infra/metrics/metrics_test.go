package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/contacomigo/backend/internal/application/usecase/dashboard"
	"github.com/contacomigo/backend/internal/domain/entity"
)

func TestMetrics_EngineRecorder(t *testing.T) {
	m := New()

	m.TransactionRecorded(entity.TransactionTypeExpense)
	m.TransactionRecorded(entity.TransactionTypeExpense)
	m.TransactionRecorded(entity.TransactionTypeIncome)
	m.XPAwarded(10)
	m.XPAwarded(25)
	m.LevelReached(2)
	m.LevelReached(3)
	m.BadgeUnlocked("b1")
	m.MissionCompleted(entity.MissionTypeDaily)
	m.TipServed(dashboard.TipSourceError, 20*time.Millisecond)

	if got := testutil.ToFloat64(m.transactions.WithLabelValues("expense")); got != 2 {
		t.Errorf("expected 2 expenses, got %v", got)
	}
	if got := testutil.ToFloat64(m.xpAwarded); got != 35 {
		t.Errorf("expected 35 xp, got %v", got)
	}
	if got := testutil.ToFloat64(m.levelUps); got != 2 {
		t.Errorf("expected 2 level ups, got %v", got)
	}
	if got := testutil.ToFloat64(m.currentLevel); got != 3 {
		t.Errorf("expected level 3, got %v", got)
	}
	if got := testutil.ToFloat64(m.badgeUnlocks.WithLabelValues("b1")); got != 1 {
		t.Errorf("expected 1 badge unlock, got %v", got)
	}
	if got := testutil.ToFloat64(m.missionsCompleted.WithLabelValues("daily")); got != 1 {
		t.Errorf("expected 1 daily mission, got %v", got)
	}
	if got := testutil.ToFloat64(m.tipsServed.WithLabelValues("error")); got != 1 {
		t.Errorf("expected 1 error tip, got %v", got)
	}
}

func TestMetrics_MiddlewareAndHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	m := New()

	r := gin.New()
	r.Use(m.Middleware())
	r.GET("/items/:id", func(c *gin.Context) { c.Status(http.StatusNoContent) })
	r.GET("/metrics", gin.WrapH(m.Handler()))

	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/items/42", nil))
	}

	if got := testutil.ToFloat64(m.httpRequests.WithLabelValues("GET", "/items/:id", "204")); got != 3 {
		t.Errorf("expected 3 requests on the route, got %v", got)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "contacomigo_http_requests_total") {
		t.Error("expected exposition to contain the request counter")
	}
}
