package handler

import (
	"net/http"
	"strconv"

	"mlflow-registry/internal/domain"
	"mlflow-registry/internal/dto"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

func (h *Handler) ListModelVersions(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	filter := domain.VersionListFilter{
		Stage:  c.Query("stage"),
		Status: c.Query("status"),
		SortBy: c.Query("sort_by"),
		Order:  c.Query("order"),
		Limit:  limit,
		Offset: offset,
	}

	versions, total, err := h.versionUC.List(c.Request.Context(), c.Param("name"), filter)
	if err != nil {
		log.WithError(err).Error("list versions failed")
		mapDomainError(c, err)
		return
	}

	items := make([]dto.ModelVersionResponse, 0, len(versions))
	for _, v := range versions {
		items = append(items, dto.ToModelVersionResponse(v))
	}

	c.JSON(http.StatusOK, dto.ListModelVersionsResponse{
		Items:      items,
		Total:      total,
		PageSize:   limit,
		NextOffset: offset + len(items),
	})
}

func (h *Handler) CreateModelVersion(c *gin.Context) {
	var req dto.CreateModelVersionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	version, err := h.versionUC.Create(
		c.Request.Context(), c.Param("name"),
		req.Description, req.UserID, req.Source,
		req.RunID, req.RunLink, req.StorageLocation, req.Tags,
	)
	if err != nil {
		log.WithError(err).Error("create version failed")
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToModelVersionResponse(version))
}

func (h *Handler) GetModelVersion(c *gin.Context) {
	number, err := versionNumber(c)
	if err != nil {
		mapDomainError(c, err)
		return
	}

	version, err := h.versionUC.Get(c.Request.Context(), c.Param("name"), number)
	if err != nil {
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToModelVersionResponse(version))
}

func (h *Handler) UpdateModelVersion(c *gin.Context) {
	number, err := versionNumber(c)
	if err != nil {
		mapDomainError(c, err)
		return
	}

	var req dto.UpdateModelVersionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updates := make(map[string]interface{})
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Status != nil {
		updates["status"] = *req.Status
	}
	if req.StatusMessage != nil {
		updates["status_message"] = *req.StatusMessage
	}
	if req.RunLink != nil {
		updates["run_link"] = *req.RunLink
	}
	if req.Tags != nil {
		updates["tags"] = req.Tags
	}

	version, err := h.versionUC.Update(c.Request.Context(), c.Param("name"), number, updates)
	if err != nil {
		log.WithError(err).Error("update version failed")
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToModelVersionResponse(version))
}

func (h *Handler) DeleteModelVersion(c *gin.Context) {
	number, err := versionNumber(c)
	if err != nil {
		mapDomainError(c, err)
		return
	}

	if err := h.versionUC.Delete(c.Request.Context(), c.Param("name"), number); err != nil {
		log.WithError(err).Error("delete version failed")
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

func (h *Handler) TransitionModelVersionStage(c *gin.Context) {
	number, err := versionNumber(c)
	if err != nil {
		mapDomainError(c, err)
		return
	}

	var req dto.TransitionStageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	version, err := h.versionUC.TransitionStage(c.Request.Context(), c.Param("name"), number, req.Stage, req.ArchiveExistingVersions)
	if err != nil {
		log.WithError(err).Error("transition stage failed")
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToModelVersionResponse(version))
}

func (h *Handler) GetModelVersionView(c *gin.Context) {
	number, err := versionNumber(c)
	if err != nil {
		mapDomainError(c, err)
		return
	}

	v, err := h.versionUC.View(c.Request.Context(), c.Param("name"), number)
	if err != nil {
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToModelVersionViewResponse(v))
}

func versionNumber(c *gin.Context) (int, error) {
	number, err := strconv.Atoi(c.Param("version"))
	if err != nil || number <= 0 {
		return 0, domain.ErrInvalidVersionNumber
	}
	return number, nil
}
