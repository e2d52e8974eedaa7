package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	domain "github.com/oggyb/ballou-sms/internal/domain/notification"
	"github.com/oggyb/ballou-sms/internal/logger"
	"github.com/oggyb/ballou-sms/internal/notify"
	"github.com/oggyb/ballou-sms/internal/request"
	"github.com/oggyb/ballou-sms/internal/response"
	"github.com/oggyb/ballou-sms/internal/scheduler"
	"github.com/oggyb/ballou-sms/internal/service"
)

const maxBodyBytes = 64 << 10

// NotificationHandler wires HTTP endpoints to the notification service
// and the background scheduler.
type NotificationHandler struct {
	lg     logger.Lite
	svc    service.NotificationService
	schSvc scheduler.SchedulerService
}

// NewNotificationHandler constructs a new NotificationHandler with its dependencies.
func NewNotificationHandler(lg logger.Lite, svc service.NotificationService, schSvc scheduler.SchedulerService) *NotificationHandler {
	return &NotificationHandler{
		lg:     lg,
		svc:    svc,
		schSvc: schSvc,
	}
}

// Send godoc
// @Summary     Send an SMS now
// @Description Sends one SMS through Ballou and records the outcome. A provider rejection is still a 200 with delivered=false.
// @Tags        notifications
// @Accept      json
// @Produce     json
// @Param       request body request.SendRequest true "Recipient, content and optional provider overrides"
// @Success     200 {object} response.SendResponse
// @Failure     400 {object} response.ErrorResponse
// @Failure     502 {object} response.ErrorResponse
// @Router      /notifications [post]
func (h *NotificationHandler) Send(w http.ResponseWriter, r *http.Request) {
	var req request.SendRequest
	if !decode(w, r, &req) {
		return
	}

	n, resp, err := h.svc.Send(r.Context(), req.To, req.Content, req.Options)
	if err != nil {
		h.respondServiceError(w, err)
		return
	}

	payload := response.SendPayload{
		Notification: response.FromDomainNotification(n),
		Delivered:    resp.Success(),
		Message:      resp.Message(),
	}
	response.RespondJSON(w, http.StatusOK, payload)
}

// Queue godoc
// @Summary     Queue an SMS
// @Description Stores a pending SMS that the scheduler delivers on its next batch.
// @Tags        notifications
// @Accept      json
// @Produce     json
// @Param       request body request.QueueRequest true "Recipient and content"
// @Success     202 {object} response.QueueResponse
// @Failure     400 {object} response.ErrorResponse
// @Router      /notifications/queue [post]
func (h *NotificationHandler) Queue(w http.ResponseWriter, r *http.Request) {
	var req request.QueueRequest
	if !decode(w, r, &req) {
		return
	}

	n, err := h.svc.Enqueue(r.Context(), req.To, req.Content)
	if err != nil {
		h.respondServiceError(w, err)
		return
	}

	response.RespondJSON(w, http.StatusAccepted, response.FromDomainNotification(n))
}

// List godoc
// @Summary     List notifications
// @Description Returns a paginated list of notifications, newest first.
// @Tags        notifications
// @Produce     json
// @Param       status query string false "PENDING, PROCESSING, SENT or FAILED"
// @Param       page   query int    false "Page number"         default(1)
// @Param       limit  query int    false "Page size (max 100)" default(20)
// @Success     200 {object} response.NotificationsResponse
// @Failure     400 {object} response.ErrorResponse
// @Failure     500 {object} response.ErrorResponse
// @Router      /notifications [get]
func (h *NotificationHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	page := service.DefaultPage
	limit := service.DefaultLimit

	if v, err := strconv.Atoi(q.Get("page")); err == nil && v > 0 {
		page = v
	}
	if v, err := strconv.Atoi(q.Get("limit")); err == nil && v > 0 && v <= service.MaxLimit {
		limit = v
	}

	items, total, err := h.svc.List(r.Context(), domain.Status(q.Get("status")), page, limit)
	if err != nil {
		h.respondServiceError(w, err)
		return
	}

	payload := response.NotificationsPayload{
		Items: response.FromDomainNotifications(items),
		Total: total,
		Page:  page,
		Limit: limit,
	}

	response.RespondJSON(w, http.StatusOK, payload)
}

// Stats godoc
// @Summary     Delivery counters
// @Description Number of sent, failed and rejected notifications since the counters were created.
// @Tags        notifications
// @Produce     json
// @Success     200 {object} response.StatsResponse
// @Failure     500 {object} response.ErrorResponse
// @Router      /stats [get]
func (h *NotificationHandler) Stats(w http.ResponseWriter, r *http.Request) {
	st, err := h.svc.Stats(r.Context())
	if err != nil {
		h.respondServiceError(w, err)
		return
	}

	response.RespondJSON(w, http.StatusOK, st)
}

// StartStopScheduler godoc
// @Summary     Control scheduler
// @Description Starts or stops the background scheduler based on the given action.
// @Tags        scheduler
// @Accept      json
// @Produce     json
// @Param       request body request.SchedulerRequest true "Scheduler action (start|stop)"
// @Success     200 {object} response.SchedulerControlResponse
// @Failure     400 {object} response.ErrorResponse
// @Router      /scheduler [post]
func (h *NotificationHandler) StartStopScheduler(w http.ResponseWriter, r *http.Request) {
	var req request.SchedulerRequest
	if !decode(w, r, &req) {
		return
	}

	var (
		err error
		msg string
	)

	switch req.Action {
	case "start":
		err = h.schSvc.Start()
		msg = "scheduler started"
	case "stop":
		err = h.schSvc.Stop()
		msg = "scheduler stopped"
	default:
		response.RespondError(w, http.StatusBadRequest, "action must be 'start' or 'stop'")
		return
	}

	if err != nil {
		response.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	payload := response.SchedulerControlPayload{
		Message: msg,
		Running: h.schSvc.IsRunning(),
	}
	response.RespondJSON(w, http.StatusOK, payload)
}

func decode(w http.ResponseWriter, r *http.Request, v any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid JSON body")
		return false
	}
	return true
}

func (h *NotificationHandler) respondServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrEmptyRecipient),
		errors.Is(err, domain.ErrEmptyContent),
		errors.Is(err, domain.ErrContentTooLong),
		errors.Is(err, domain.ErrUnknownStatus):
		response.RespondError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, notify.ErrMalformedResponse):
		response.RespondError(w, http.StatusBadGateway, err.Error())
	default:
		h.lg.Errorw("[Handler] Request failed", err)
		response.RespondError(w, http.StatusInternalServerError, "internal error")
	}
}
