package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/yungbote/neurobridge-tutorials/internal/platform/ctxutil"
)

func TestAttachTraceContext(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name       string
		requestID  string
		wantEchoed bool
	}{
		{"propagates_client_id", "req-123", true},
		{"mints_when_missing", "", false},
		{"rejects_unsafe_id", "bad id\nwith newline", false},
		{"rejects_long_id", strings.Repeat("a", maxClientIDLen+1), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var seen *ctxutil.TraceData
			r := gin.New()
			r.Use(AttachTraceContext())
			r.GET("/x", func(c *gin.Context) {
				seen = ctxutil.GetTraceData(c.Request.Context())
				c.Status(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/x", nil)
			if tc.requestID != "" {
				req.Header.Set(headerRequestID, tc.requestID)
			}
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, req)

			if seen == nil {
				t.Fatalf("trace data not attached")
			}
			got := rec.Header().Get(headerRequestID)
			if got != seen.RequestID {
				t.Fatalf("header and context disagree: header=%q ctx=%q", got, seen.RequestID)
			}
			if tc.wantEchoed {
				if got != tc.requestID {
					t.Fatalf("request id not propagated: got=%q want=%q", got, tc.requestID)
				}
				return
			}
			if _, err := uuid.Parse(got); err != nil {
				t.Fatalf("expected minted uuid, got=%q", got)
			}
			if rec.Header().Get(headerTraceID) == "" {
				t.Fatalf("trace id header missing")
			}
		})
	}
}
