package shared

import "github.com/google/uuid"

// Asynq queue names
const (
	QueueDefault = "default"
	QueueBuilds  = "builds"
	QueueCatalog = "catalog"
)

// Asynq task types
const (
	TypeBuildRecountLikes   = "build:recount_likes"
	TypeBuildReconcileLikes = "build:reconcile_likes"
	TypeCatalogWarmFeatured = "catalog:warm_featured"
)

// RecountLikesPayload identifies the build whose like counter needs a refresh
type RecountLikesPayload struct {
	BuildID uuid.UUID `json:"build_id"`
}
