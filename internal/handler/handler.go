package handler

import (
	"github.com/gin-gonic/gin"

	"mlflow-registry/internal/usecase"
)

type Handler struct {
	modelUC   *usecase.RegisteredModelUseCase
	versionUC *usecase.ModelVersionUseCase
}

func New(modelUC *usecase.RegisteredModelUseCase, versionUC *usecase.ModelVersionUseCase) *Handler {
	return &Handler{modelUC: modelUC, versionUC: versionUC}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	// Registered Models
	r.GET("/models", h.ListModels)
	r.POST("/models", h.CreateModel)
	r.GET("/models/:name", h.GetModel)
	r.PATCH("/models/:name", h.UpdateModel)
	r.DELETE("/models/:name", h.DeleteModel)

	// Model Versions
	r.GET("/models/:name/versions", h.ListModelVersions)
	r.POST("/models/:name/versions", h.CreateModelVersion)
	r.GET("/models/:name/versions/:version", h.GetModelVersion)
	r.PATCH("/models/:name/versions/:version", h.UpdateModelVersion)
	r.DELETE("/models/:name/versions/:version", h.DeleteModelVersion)
	r.POST("/models/:name/versions/:version/stage", h.TransitionModelVersionStage)
	r.GET("/models/:name/versions/:version/view", h.GetModelVersionView)
}
