package http

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"plate-service/internal/http/middleware"
	"plate-service/internal/plate"
	"plate-service/internal/service"
)

type Handler struct {
	plateService   *service.PlateService
	vehicleService *service.VehicleService
	eventService   *service.EventService
	log            zerolog.Logger
}

func NewHandler(
	plateService *service.PlateService,
	vehicleService *service.VehicleService,
	eventService *service.EventService,
	log zerolog.Logger,
) *Handler {
	return &Handler{
		plateService:   plateService,
		vehicleService: vehicleService,
		eventService:   eventService,
		log:            log,
	}
}

func (h *Handler) Register(r *gin.Engine, authMiddleware, internalMiddleware gin.HandlerFunc) {
	api := r.Group("/api/v1")
	api.Use(authMiddleware)
	{
		api.POST("/plates/normalize", h.normalizePlate)
		api.GET("/plates/formats", h.listFormats)

		api.POST("/vehicles", h.registerVehicle)
		api.GET("/vehicles", h.listVehicles)
		api.GET("/vehicles/:plate", h.getVehicleByPlate)
	}

	internal := r.Group("/internal/anpr")
	internal.Use(internalMiddleware)
	{
		internal.POST("/events", h.ingestEvent)
		internal.GET("/events", h.listEvents)
	}
}

func (h *Handler) normalizePlate(c *gin.Context) {
	var req struct {
		Plate  string   `json:"plate" binding:"required"`
		Prefer []string `json:"prefer"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	normalized, err := h.plateService.Normalize(req.Plate, req.Prefer)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(gin.H{
		"plate":  normalized.Value,
		"format": normalized.Format,
	}))
}

func (h *Handler) listFormats(c *gin.Context) {
	c.JSON(http.StatusOK, successResponse(gin.H{
		"formats": h.plateService.Formats(),
	}))
}

func (h *Handler) registerVehicle(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("missing principal"))
		return
	}

	var req struct {
		ContractorID string   `json:"contractor_id" binding:"required"`
		PlateNumber  string   `json:"plate_number" binding:"required"`
		BodyVolumeM3 *float64 `json:"body_volume_m3"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	vehicle, err := h.vehicleService.Register(c.Request.Context(), principal, service.RegisterVehicleInput{
		ContractorID: req.ContractorID,
		PlateNumber:  req.PlateNumber,
		BodyVolumeM3: req.BodyVolumeM3,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, successResponse(vehicle))
}

func (h *Handler) listVehicles(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("missing principal"))
		return
	}

	var contractorID *string
	if raw := strings.TrimSpace(c.Query("contractor_id")); raw != "" {
		contractorID = &raw
	}

	vehicles, err := h.vehicleService.List(c.Request.Context(), principal, contractorID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(vehicles))
}

func (h *Handler) getVehicleByPlate(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("missing principal"))
		return
	}

	raw := strings.TrimSpace(c.Param("plate"))
	if raw == "" {
		c.JSON(http.StatusBadRequest, errorResponse("invalid plate"))
		return
	}

	vehicle, err := h.vehicleService.GetByPlate(c.Request.Context(), principal, raw)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(vehicle))
}

func (h *Handler) ingestEvent(c *gin.Context) {
	var req struct {
		CameraID   string    `json:"camera_id" binding:"required"`
		Plate      string    `json:"plate" binding:"required"`
		EventTime  time.Time `json:"event_time"`
		Direction  *string   `json:"direction"`
		Confidence *float64  `json:"confidence"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	result, err := h.eventService.Ingest(c.Request.Context(), service.IngestEventInput{
		CameraID:   req.CameraID,
		Plate:      req.Plate,
		DetectedAt: req.EventTime,
		Direction:  req.Direction,
		Confidence: req.Confidence,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, successResponse(result))
}

func (h *Handler) listEvents(c *gin.Context) {
	input := service.ListEventsInput{}

	if raw := strings.TrimSpace(c.Query("plate")); raw != "" {
		input.Plate = &raw
	}

	if raw := strings.TrimSpace(c.Query("camera_id")); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, errorResponse("invalid camera_id"))
			return
		}
		input.CameraID = &id
	}

	if raw := strings.TrimSpace(c.Query("direction")); raw != "" {
		input.Direction = &raw
	}

	if raw := c.Query("start_time"); raw != "" {
		t, err := parseTime(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, errorResponse("invalid start_time"))
			return
		}
		input.DetectedFrom = &t
	}

	if raw := c.Query("end_time"); raw != "" {
		t, err := parseTime(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, errorResponse("invalid end_time"))
			return
		}
		input.DetectedTo = &t
	}

	events, err := h.eventService.ListEvents(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(events))
}

func (h *Handler) handleError(c *gin.Context, err error) {
	if code, ok := plate.ErrorCode(err); ok {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": err.Error(),
			"code":  code,
		})
		return
	}

	switch {
	case errors.Is(err, service.ErrPermissionDenied):
		c.JSON(http.StatusForbidden, errorResponse(err.Error()))
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, errorResponse(err.Error()))
	case errors.Is(err, service.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
	case errors.Is(err, service.ErrConflict):
		c.JSON(http.StatusConflict, errorResponse(err.Error()))
	default:
		h.log.Error().Err(err).Msg("handler error")
		c.JSON(http.StatusInternalServerError, errorResponse("internal error"))
	}
}

func successResponse(data interface{}) gin.H {
	return gin.H{
		"data": data,
	}
}

func errorResponse(message string) gin.H {
	return gin.H{
		"error": message,
	}
}

func parseTime(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	layouts := []string{
		time.RFC3339,
		"2006-01-02",
		"2006-01-02T15:04:05",
	}
	for _, layout := range layouts {
		if parsed, err := time.Parse(layout, raw); err == nil {
			return parsed, nil
		}
	}
	return time.Time{}, errors.New("invalid time format")
}
