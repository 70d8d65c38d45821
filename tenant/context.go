package tenant

import (
	"github.com/teamtartariatech-developers/SwiftIn-Backend-sub000/models"

	"gorm.io/gorm"
)

// Context is the resolved view of one tenant handed to every collaborator:
// normalized code, winning database name, the shared connection handle, the
// registered model set, and the tenant's own property record. It is a read
// view over the registry's caches and owns nothing independently; callers
// must not mutate it in a way that desynchronizes it from the registry.
type Context struct {
	Code         string
	DatabaseName string
	DB           *gorm.DB
	Models       *ModelSet
	Property     *models.Property
}
