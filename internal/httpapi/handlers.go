// Package httpapi contains the console's REST handlers. Keep these thin:
// parse/validate input, call internal services, map errors to status codes.
package httpapi

import (
	"errors"
	"net/http"
	"time"

	"linedesk/internal/auth"
	"linedesk/internal/editors"
	"linedesk/internal/inventory"
	"linedesk/internal/reporting"
	"linedesk/internal/sms"
	"linedesk/pkg/logger"
	"linedesk/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Handlers groups HTTP handlers for dependency injection.
type Handlers struct {
	Auth    *auth.Manager
	Lines   *inventory.Service
	Editors *editors.Service
	Reports *reporting.Service

	// Locks is nil when redis is not configured; editor submissions then
	// rely on the UI's single-editor discipline.
	Locks *utils.EditorLocks
}

const headerEditorToken = "X-Editor-Token"

// --- Auth ---

type loginRequest struct {
	UserID string `json:"user_id"`
	Role   string `json:"role"`
}

// Login issues a JWT token pair.
//
// NOTE: credential validation lives with the identity provider; this endpoint
// only mints tokens for already-authenticated console operators.
func (h Handlers) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	if req.UserID == "" || req.Role == "" {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "user_id and role required"})
		return
	}
	pair, err := h.Auth.IssuePair(time.Now(), req.UserID, req.Role)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "token issuance failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"access_token":  pair.AccessToken,
		"refresh_token": pair.RefreshToken,
	})
}

// --- Listing, aggregates, groups ---

func filterFromQuery(c *gin.Context) reporting.Filter {
	return reporting.Filter{
		Term:            c.Query("term"),
		Type:            inventory.LineType(c.Query("type")),
		GroupID:         c.Query("group_id"),
		IncludeInactive: c.Query("include_inactive") == "true",
	}
}

func (h Handlers) ListLines(c *gin.Context) {
	lines, err := h.Reports.List(c.Request.Context(), filterFromQuery(c))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"lines": lines, "count": len(lines)})
}

func (h Handlers) Summary(c *gin.Context) {
	sum, err := h.Reports.Summary(c.Request.Context(), filterFromQuery(c))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, sum)
}

func (h Handlers) Groups(c *gin.Context) {
	groups, err := h.Lines.Groups(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"groups": groups})
}

func (h Handlers) GetLine(c *gin.Context) {
	l, err := h.Lines.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, l)
}

// --- Editor projections and submissions ---

func (h Handlers) GetEditorView(c *gin.Context) {
	kind, ok := editors.ParseKind(c.Param("kind"))
	if !ok {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "unknown editor kind"})
		return
	}
	v, err := h.Editors.Project(c.Request.Context(), c.Param("id"), kind)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, v)
}

// CreateLine handles the general editor's add mode.
func (h Handlers) CreateLine(c *gin.Context) {
	var form inventory.Line
	if err := c.ShouldBindJSON(&form); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	form.ID = "" // ids are allocated server-side
	created, err := h.Editors.Submit(c.Request.Context(), editors.GeneralView{Line: form})
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// UpdateLine handles the general editor's edit mode: wholesale replacement.
func (h Handlers) UpdateLine(c *gin.Context) {
	if !h.holdsEditorLock(c) {
		return
	}
	var form inventory.Line
	if err := c.ShouldBindJSON(&form); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	form.ID = c.Param("id")
	updated, err := h.Editors.Submit(c.Request.Context(), editors.GeneralView{Line: form})
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// SubmitPorting handles the porting editor.
func (h Handlers) SubmitPorting(c *gin.Context) {
	if !h.holdsEditorLock(c) {
		return
	}
	var req inventory.PortingStatus
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	updated, err := h.Editors.Submit(c.Request.Context(), editors.PortingView{
		ID:      c.Param("id"),
		Porting: req,
	})
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// UpdateSMSConfig handles the SMS-template editor: the whole sub-object is
// submitted back as a unit.
func (h Handlers) UpdateSMSConfig(c *gin.Context) {
	if !h.holdsEditorLock(c) {
		return
	}
	var cfg inventory.SMSConfig
	if err := c.ShouldBindJSON(&cfg); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	updated, err := h.Editors.Submit(c.Request.Context(), editors.TemplateView{
		ID:        c.Param("id"),
		SMSConfig: cfg,
	})
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// --- SMS templates ---

type templateRequest struct {
	Name    string `json:"name"`
	Content string `json:"content"`
}

func (h Handlers) AddTemplate(c *gin.Context) {
	var req templateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	h.mutateTemplates(c, func(ts []inventory.SMSTemplate) ([]inventory.SMSTemplate, error) {
		out, _, err := sms.Add(ts, req.Name, req.Content)
		return out, err
	})
}

func (h Handlers) EditTemplate(c *gin.Context) {
	var req templateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	id := c.Param("template_id")
	h.mutateTemplates(c, func(ts []inventory.SMSTemplate) ([]inventory.SMSTemplate, error) {
		out, _, err := sms.Edit(ts, id, req.Name, req.Content)
		return out, err
	})
}

func (h Handlers) DeleteTemplate(c *gin.Context) {
	id := c.Param("template_id")
	h.mutateTemplates(c, func(ts []inventory.SMSTemplate) ([]inventory.SMSTemplate, error) {
		return sms.Delete(ts, id), nil
	})
}

// mutateTemplates runs a template operation through the SMS editor's
// projection/reconciliation cycle so nothing outside SMSConfig can change.
func (h Handlers) mutateTemplates(c *gin.Context, op func([]inventory.SMSTemplate) ([]inventory.SMSTemplate, error)) {
	ctx := c.Request.Context()
	line, err := h.Lines.Get(ctx, c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	view := editors.ProjectTemplates(line)
	next, err := op(view.SMSConfig.Templates)
	if err != nil {
		h.fail(c, err)
		return
	}
	view.SMSConfig.Templates = next
	updated, err := h.Editors.Submit(ctx, view)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, updated.SMSConfig)
}

func (h Handlers) SegmentPreview(c *gin.Context) {
	c.JSON(http.StatusOK, sms.Segments(c.Query("content")))
}

// --- Lifecycle ---

func (h Handlers) ToggleStatus(c *gin.Context) {
	l, err := h.Lines.ToggleStatus(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, l)
}

// CompletePorting and FailPorting are the carrier-callback entry points.

func (h Handlers) CompletePorting(c *gin.Context) {
	l, err := h.Lines.CompletePorting(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, l)
}

func (h Handlers) FailPorting(c *gin.Context) {
	l, err := h.Lines.FailPorting(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, l)
}

// --- Editor locks ---

// AcquireLock reserves a line for one editor session and returns the token
// the session must present on submit.
func (h Handlers) AcquireLock(c *gin.Context) {
	if h.Locks == nil {
		c.AbortWithStatusJSON(http.StatusNotImplemented, gin.H{"error": "editor locks not configured"})
		return
	}
	token := uuid.NewString()
	ok, err := h.Locks.Acquire(c.Request.Context(), c.Param("id"), token)
	if err != nil {
		h.fail(c, err)
		return
	}
	if !ok {
		c.AbortWithStatusJSON(http.StatusConflict, gin.H{"error": "line is being edited"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token})
}

func (h Handlers) ReleaseLock(c *gin.Context) {
	if h.Locks == nil {
		c.AbortWithStatusJSON(http.StatusNotImplemented, gin.H{"error": "editor locks not configured"})
		return
	}
	token := c.GetHeader(headerEditorToken)
	if token == "" {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "missing editor token"})
		return
	}
	if err := h.Locks.Release(c.Request.Context(), c.Param("id"), token); err != nil {
		h.fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// holdsEditorLock enforces the per-line lock on editor submissions when locks
// are configured. Aborts the request and returns false on rejection.
func (h Handlers) holdsEditorLock(c *gin.Context) bool {
	if h.Locks == nil {
		return true
	}
	token := c.GetHeader(headerEditorToken)
	if token == "" {
		c.AbortWithStatusJSON(http.StatusConflict, gin.H{"error": "editor lock required"})
		return false
	}
	held, err := h.Locks.Held(c.Request.Context(), c.Param("id"), token)
	if err != nil {
		h.fail(c, err)
		return false
	}
	if !held {
		c.AbortWithStatusJSON(http.StatusConflict, gin.H{"error": "editor lock lost"})
		return false
	}
	return true
}

// --- error mapping ---

func (h Handlers) fail(c *gin.Context, err error) {
	var inv *editors.InvariantError

	switch {
	case errors.Is(err, inventory.ErrNotFound):
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "line not found"})
	case errors.Is(err, sms.ErrTemplateNotFound):
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "template not found"})
	case errors.Is(err, editors.ErrValidation), errors.Is(err, sms.ErrInvalidTemplate):
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.As(err, &inv):
		c.AbortWithStatusJSON(http.StatusUnprocessableEntity, gin.H{
			"error":      "invariants violated",
			"violations": inv.Violations,
		})
	case errors.Is(err, inventory.ErrPortInFlight), errors.Is(err, inventory.ErrInvalidTransition):
		c.AbortWithStatusJSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		logger.FromGin(c).Error("request failed", "err", err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
