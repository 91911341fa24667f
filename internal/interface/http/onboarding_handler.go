package handlers

import (
	"errors"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-onboarding-wizard/internal/application"
	"github.com/oksasatya/go-onboarding-wizard/pkg/helpers"
	"github.com/oksasatya/go-onboarding-wizard/pkg/response"
	"github.com/oksasatya/go-onboarding-wizard/pkg/validation"
)

// OnboardingHandler exposes a single wizard session over HTTP. The session is
// created on the first request; gin serves requests concurrently, so every
// access goes through mu.
type OnboardingHandler struct {
	NewSession func() *application.Session
	Logger     *logrus.Logger

	mu      sync.Mutex
	session *application.Session
}

func NewOnboardingHandler(newSession func() *application.Session, logger *logrus.Logger) *OnboardingHandler {
	return &OnboardingHandler{NewSession: newSession, Logger: logger}
}

type fieldURI struct {
	Field string `uri:"field" binding:"required"`
}

type phoneIndexURI struct {
	Index int `uri:"index"`
}

type stepURI struct {
	Step int `uri:"step"`
}

type fieldValueRequest struct {
	Value string `json:"value"`
}

type phoneUpdateRequest struct {
	Field string `json:"field" binding:"required,phone_field"`
	Value string `json:"value"`
}

// current must be called with mu held.
func (h *OnboardingHandler) current() *application.Session {
	if h.session == nil {
		h.session = h.NewSession()
	}
	return h.session
}

func (h *OnboardingHandler) Get(c *gin.Context) {
	h.mu.Lock()
	defer h.mu.Unlock()
	response.Success(c, http.StatusOK, h.current().View(), "onboarding", nil)
}

// Reset discards the current session and starts a new one.
func (h *OnboardingHandler) Reset(c *gin.Context) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.session = h.NewSession()
	response.Success(c, http.StatusCreated, h.session.View(), "onboarding started", nil)
}

func (h *OnboardingHandler) SetUserInfoField() gin.HandlerFunc {
	return h.setField((*application.Session).SetUserInfoField)
}

func (h *OnboardingHandler) SetContactInfoField() gin.HandlerFunc {
	return h.setField((*application.Session).SetContactInfoField)
}

func (h *OnboardingHandler) SetPreferencesField() gin.HandlerFunc {
	return h.setField((*application.Session).SetPreferencesField)
}

func (h *OnboardingHandler) setField(set func(s *application.Session, field, value string) error) gin.HandlerFunc {
	return func(c *gin.Context) {
		var uri fieldURI
		if err := c.ShouldBindUri(&uri); err != nil {
			response.Error[any](c, http.StatusBadRequest, "invalid field", validation.ToDetails(err))
			return
		}
		var req fieldValueRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
			return
		}

		h.mu.Lock()
		defer h.mu.Unlock()
		s := h.current()
		if err := set(s, uri.Field, req.Value); err != nil {
			rejected(c, err)
			return
		}
		response.Success(c, http.StatusOK, s.View(), "field updated", nil)
	}
}

func (h *OnboardingHandler) AddPhoneNumber(c *gin.Context) {
	h.mu.Lock()
	defer h.mu.Unlock()
	s := h.current()
	idx := s.AddPhoneNumber()
	response.Success(c, http.StatusCreated, s.View(), "phone number added", map[string]any{"index": idx})
}

func (h *OnboardingHandler) RemovePhoneNumber(c *gin.Context) {
	var uri phoneIndexURI
	if err := c.ShouldBindUri(&uri); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid index", validation.ToDetails(err))
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	s := h.current()
	if err := s.RemovePhoneNumber(uri.Index); err != nil {
		rejected(c, err)
		return
	}
	response.Success(c, http.StatusOK, s.View(), "phone number removed", nil)
}

func (h *OnboardingHandler) UpdatePhoneNumber(c *gin.Context) {
	var uri phoneIndexURI
	if err := c.ShouldBindUri(&uri); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid index", validation.ToDetails(err))
		return
	}
	var req phoneUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	s := h.current()
	if err := s.UpdatePhoneNumber(uri.Index, req.Field, req.Value); err != nil {
		rejected(c, err)
		return
	}
	response.Success(c, http.StatusOK, s.View(), "phone number updated", nil)
}

func (h *OnboardingHandler) Next(c *gin.Context) {
	h.navigate(c, (*application.Session).Advance)
}

func (h *OnboardingHandler) Previous(c *gin.Context) {
	h.navigate(c, (*application.Session).Retreat)
}

func (h *OnboardingHandler) GoTo(c *gin.Context) {
	var uri stepURI
	if err := c.ShouldBindUri(&uri); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid step", validation.ToDetails(err))
		return
	}
	h.navigate(c, func(s *application.Session) bool { return s.JumpTo(uri.Step) })
}

// navigate always answers 200: a refused move is not an error, meta.moved tells
// the caller whether the step changed.
func (h *OnboardingHandler) navigate(c *gin.Context, move func(s *application.Session) bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	s := h.current()
	moved := move(s)
	msg := "step unchanged"
	if moved {
		msg = "step changed"
	}
	response.Success(c, http.StatusOK, s.View(), msg, map[string]any{"moved": moved})
}

func (h *OnboardingHandler) Submit(c *gin.Context) {
	h.mu.Lock()
	defer h.mu.Unlock()
	rec, err := h.current().Submit(c.Request.Context())
	if err != nil {
		if h.Logger != nil {
			helpers.LogError(h.Logger, "onboarding submit failed", err, logrus.Fields{"request_id": c.GetString("request_id")})
		}
		response.Error[any](c, http.StatusInternalServerError, "submit failed", nil)
		return
	}
	response.Success(c, http.StatusOK, rec, "onboarding complete", nil)
}

func rejected(c *gin.Context, err error) {
	code := "INVALID_UPDATE"
	switch {
	case errors.Is(err, application.ErrUnknownField):
		code = "UNKNOWN_FIELD"
	case errors.Is(err, application.ErrInvalidValue):
		code = "INVALID_VALUE"
	case errors.Is(err, application.ErrPhoneIndexOutOfRange):
		code = "PHONE_INDEX_OUT_OF_RANGE"
	}
	response.Error[any](c, http.StatusUnprocessableEntity, err.Error(), map[string]string{"code": code})
}
