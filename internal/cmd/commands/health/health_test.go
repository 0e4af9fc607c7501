package health_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nvisy/nvisy-sdk-go/internal/cmd/cmdtest"
	"github.com/nvisy/nvisy-sdk-go/internal/cmd/commands/health"
	"github.com/nvisy/nvisy-sdk-go/pkg/models"
)

func TestCommand(t *testing.T) {
	cases := []struct {
		name       string
		status     models.ServiceStatus
		args       []string
		wantCode   int
		wantMethod string
		wantBody   string
	}{
		{
			name:       "healthy",
			status:     models.ServiceStatusHealthy,
			wantCode:   0,
			wantMethod: "GET",
		},
		{
			name:       "degraded",
			status:     models.ServiceStatusDegraded,
			wantCode:   2,
			wantMethod: "GET",
		},
		{
			name:       "tuned check",
			status:     models.ServiceStatusHealthy,
			args:       []string{"-check-timeout-ms", "500", "-use-cache"},
			wantCode:   0,
			wantMethod: "POST",
			wantBody:   `{"timeout":500,"useCache":true}`,
		},
		{
			name:       "timeout only",
			status:     models.ServiceStatusHealthy,
			args:       []string{"-check-timeout-ms", "500"},
			wantCode:   0,
			wantMethod: "POST",
			wantBody:   `{"timeout":500}`,
		},
		{
			name:       "cache disabled",
			status:     models.ServiceStatusHealthy,
			args:       []string{"-use-cache=false"},
			wantCode:   0,
			wantMethod: "POST",
			wantBody:   `{"useCache":false}`,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			env := cmdtest.New(t)
			env.API.HealthStatus = tc.status

			c := &health.Command{Command: env.Command}
			code := c.Run(tc.args)
			require.Equal(t, tc.wantCode, code, env.Stderr())
			assert.Contains(t, env.Stdout(), string(tc.status))

			req := env.API.LastRequest()
			assert.Equal(t, tc.wantMethod, req.Method)
			if tc.wantBody != "" {
				assert.JSONEq(t, tc.wantBody, string(req.Body))
			} else {
				assert.Empty(t, req.Body)
			}
		})
	}
}
