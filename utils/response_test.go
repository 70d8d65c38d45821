package utils

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/teamtartariatech-developers/SwiftIn-Backend-sub000/tenant"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestErrorResponseStatusMapping(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		err  error
		want int
	}{
		{tenant.ErrTenantCodeRequired, http.StatusBadRequest},
		{tenant.ErrTenantNotFound, http.StatusNotFound},
		{tenant.ErrPrimaryUnavailable, http.StatusServiceUnavailable},
		{tenant.ErrUnknownEntity, http.StatusInternalServerError},
		{errors.New("anything else"), http.StatusBadRequest},
		// Wrapped sentinels map the same as bare ones.
		{fmt.Errorf("resolve GRAND: %w", tenant.ErrTenantNotFound), http.StatusNotFound},
	}

	for _, c := range cases {
		w := httptest.NewRecorder()
		ctx, _ := gin.CreateTestContext(w)
		ErrorResponse(ctx, c.err)
		assert.Equal(t, c.want, w.Code, "error %v", c.err)
		assert.Contains(t, w.Body.String(), "error")
	}
}
