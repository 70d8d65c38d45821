package controllers

import (
	"net/http"

	"github.com/teamtartariatech-developers/SwiftIn-Backend-sub000/tenant"
	"github.com/teamtartariatech-developers/SwiftIn-Backend-sub000/utils"

	"github.com/gin-gonic/gin"
)

// HeaderPropertyCode is the request header carrying the tenant code.
const HeaderPropertyCode = "X-Property-Code"

const ctxKeyTenant = "tenantContext"

var registry *tenant.Registry

// SetRegistry injects the tenant registry used by all controllers.
// Must be called once during startup before routes are served.
func SetRegistry(r *tenant.Registry) {
	registry = r
}

// TenantMiddleware resolves the property code from the request header into a
// tenant context and stores it on the gin context. Requests without a
// resolvable tenant never reach the handler.
func TenantMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tc, err := registry.Resolve(c.Request.Context(), c.GetHeader(HeaderPropertyCode))
		if err != nil {
			utils.ErrorResponse(c, err)
			c.Abort()
			return
		}
		c.Set(ctxKeyTenant, tc)
		c.Next()
	}
}

// TenantFromContext returns the tenant context resolved by TenantMiddleware.
func TenantFromContext(c *gin.Context) (*tenant.Context, bool) {
	v, ok := c.Get(ctxKeyTenant)
	if !ok {
		return nil, false
	}
	tc, ok := v.(*tenant.Context)
	return tc, ok
}

// mustTenant aborts with 500 when the middleware did not run. A programming
// error in route registration, not a request condition.
func mustTenant(c *gin.Context) (*tenant.Context, bool) {
	tc, ok := TenantFromContext(c)
	if !ok {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"error": "tenant context missing, route registered without TenantMiddleware",
		})
		return nil, false
	}
	return tc, true
}
