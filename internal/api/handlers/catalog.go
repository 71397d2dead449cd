package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/tacticlab/momentum-engine/internal/engine"
	"github.com/tacticlab/momentum-engine/pkg/utils"
)

type CatalogHandler struct {
	engine *engine.Engine
}

func NewCatalogHandler(eng *engine.Engine) *CatalogHandler {
	return &CatalogHandler{engine: eng}
}

// GetPlayers returns the fixed 22-player roster.
func (h *CatalogHandler) GetPlayers(c *gin.Context) {
	utils.SendSuccess(c, gin.H{
		"players": h.engine.Roster(),
	})
}

// GetFormations returns the formation coherence and tactic multiplier
// tables the engine was configured with.
func (h *CatalogHandler) GetFormations(c *gin.Context) {
	catalog := h.engine.Catalog()
	utils.SendSuccess(c, gin.H{
		"formations": catalog.Formations,
		"tactics":    catalog.Tactics,
	})
}
