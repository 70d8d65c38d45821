package bootstrap

import (
	"context"
	"fmt"

	"github.com/teamtartariatech-developers/SwiftIn-Backend-sub000/config"
	"github.com/teamtartariatech-developers/SwiftIn-Backend-sub000/pkg/logger"
	"github.com/teamtartariatech-developers/SwiftIn-Backend-sub000/tenant"
)

// LoadData performs startup cache population. When PREWARM_ON_BOOT is set,
// the tenant code index is filled from one enumeration pass so the first
// request for every known property takes the fast path.
func LoadData(reg *tenant.Registry) error {
	if !config.Cfg.PrewarmOnBoot {
		logger.Infof("Tenant index pre-warm disabled, codes will be discovered on first use")
		return nil
	}

	logger.Infof("Starting tenant code index pre-warm...")
	warmed, err := reg.PreWarm(context.Background())
	if err != nil {
		return fmt.Errorf("failed to pre-warm tenant code index: %w", err)
	}
	logger.Infof("Tenant code index pre-warm completed, %d codes indexed", warmed)
	return nil
}
