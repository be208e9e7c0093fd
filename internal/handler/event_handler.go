package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"paralympics-api-go/internal/schema"
	"paralympics-api-go/internal/store"
)

// EventHandler handles event-related HTTP requests
type EventHandler struct {
	store *store.Store
}

// NewEventHandler creates a new event handler
func NewEventHandler(st *store.Store) *EventHandler {
	return &EventHandler{store: st}
}

// eventID parses the id path parameter. A non-integer id cannot name any
// event, so it reports false and the caller answers 404.
func eventID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		notFound(c, "Event")
		return 0, false
	}
	return id, true
}

// GetEvents handles GET /events
func (h *EventHandler) GetEvents(c *gin.Context) {
	ctx := c.Request.Context()
	session, err := h.store.Begin(ctx)
	if err != nil {
		respondError(c, err, "Event")
		return
	}
	defer session.Rollback()

	events, err := session.ListEvents(ctx)
	if err != nil {
		respondError(c, err, "Event")
		return
	}
	c.JSON(http.StatusOK, events)
}

// GetEvent handles GET /events/:id
func (h *EventHandler) GetEvent(c *gin.Context) {
	ctx := c.Request.Context()
	id, ok := eventID(c)
	if !ok {
		return
	}

	session, err := h.store.Begin(ctx)
	if err != nil {
		respondError(c, err, "Event")
		return
	}
	defer session.Rollback()

	event, err := session.GetEvent(ctx, id)
	if err != nil {
		respondError(c, err, "Event")
		return
	}
	c.JSON(http.StatusOK, event)
}

// AddEvent handles POST /events. The id is assigned by the store.
func (h *EventHandler) AddEvent(c *gin.Context) {
	ctx := c.Request.Context()
	raw, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	event, err := schema.DecodeEvent(ctx, raw)
	if err != nil {
		respondError(c, err, "Event")
		return
	}

	session, err := h.store.Begin(ctx)
	if err != nil {
		respondError(c, err, "Event")
		return
	}
	defer session.Rollback()

	if err := session.InsertEvent(ctx, event); err != nil {
		respondError(c, err, "Event")
		return
	}
	if err := session.Commit(); err != nil {
		respondError(c, err, "Event")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": fmt.Sprintf("Event added with id= %d", event.ID)})
}

// UpdateEvent handles PATCH /events/:id. Existence is checked before the
// patch is applied; fields omitted from the body are left unchanged.
func (h *EventHandler) UpdateEvent(c *gin.Context) {
	ctx := c.Request.Context()
	id, ok := eventID(c)
	if !ok {
		return
	}

	session, err := h.store.Begin(ctx)
	if err != nil {
		respondError(c, err, "Event")
		return
	}
	defer session.Rollback()

	event, found, err := session.GetEventOptional(ctx, id)
	if err != nil {
		respondError(c, err, "Event")
		return
	}
	if !found {
		notFound(c, "Event")
		return
	}

	raw, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if err := schema.DecodeEventPatch(ctx, raw, event); err != nil {
		respondError(c, err, "Event")
		return
	}

	if err := session.UpdateEvent(ctx, event); err != nil {
		respondError(c, err, "Event")
		return
	}
	if err := session.Commit(); err != nil {
		respondError(c, err, "Event")
		return
	}
	c.JSON(http.StatusOK, event)
}

// DeleteEvent handles DELETE /events/:id
func (h *EventHandler) DeleteEvent(c *gin.Context) {
	ctx := c.Request.Context()
	id, ok := eventID(c)
	if !ok {
		return
	}

	session, err := h.store.Begin(ctx)
	if err != nil {
		respondError(c, err, "Event")
		return
	}
	defer session.Rollback()

	if _, err := session.GetEvent(ctx, id); err != nil {
		respondError(c, err, "Event")
		return
	}
	if err := session.DeleteEvent(ctx, id); err != nil {
		respondError(c, err, "Event")
		return
	}
	if err := session.Commit(); err != nil {
		respondError(c, err, "Event")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": fmt.Sprintf("Event %d deleted", id)})
}
