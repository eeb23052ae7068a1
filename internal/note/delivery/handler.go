package delivery

import (
	"net/http"
	"strconv"
	"strings"

	authdelivery "notekeeper-backend/internal/auth/delivery"
	"notekeeper-backend/internal/note/domain"
	"notekeeper-backend/internal/note/usecase"

	"github.com/gin-gonic/gin"
)

// NoteHandler handles note-related HTTP requests
type NoteHandler struct {
	noteUsecase usecase.NoteUsecase
}

// NewNoteHandler creates a new NoteHandler
func NewNoteHandler(noteUsecase usecase.NoteUsecase) *NoteHandler {
	return &NoteHandler{
		noteUsecase: noteUsecase,
	}
}

// NoteResponse is the short form of a note returned on create and search
type NoteResponse struct {
	ID       uint   `json:"id"`
	Title    string `json:"title"`
	Content  string `json:"content"`
	IsPinned bool   `json:"is_pinned"`
}

func toResponse(n *domain.Note) NoteResponse {
	return NoteResponse{ID: n.ID, Title: n.Title, Content: n.Content, IsPinned: n.IsPinned}
}

// AddNote creates a note for the authenticated user
// POST /add-note
func (h *NoteHandler) AddNote(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	var req usecase.AddNoteRequest
	_ = c.ShouldBindJSON(&req)

	// missing fields answer 401, existing clients depend on it
	if req.Title == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Title is required"})
		return
	}
	if req.Content == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Content is required"})
		return
	}

	note, err := h.noteUsecase.AddNote(c.Request.Context(), userID, req)
	if err != nil {
		authdelivery.RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Note added successfully",
		"note":    toResponse(note),
	})
}

// GetNotes returns one page of the user's notes, newest first
// GET /allNotes?page=1&limit=10
func (h *NoteHandler) GetNotes(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	notes, used, err := h.noteUsecase.ListNotes(c.Request.Context(), userID, domain.Page{Page: page, Limit: limit})
	if err != nil {
		authdelivery.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Notes fetched with pagination",
		"data":    notes,
		"page":    used.Page,
		"limit":   used.Limit,
	})
}

// GetAllNotes returns every note of the user
// GET /allNotesByUserID
func (h *NoteHandler) GetAllNotes(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	notes, err := h.noteUsecase.ListAllNotes(c.Request.Context(), userID)
	if err != nil {
		authdelivery.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Your notes", "notes": notes})
}

// DeleteNote deletes one of the user's notes
// DELETE /delete/:noteId
func (h *NoteHandler) DeleteNote(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	noteID, err := strconv.ParseUint(c.Param("noteId"), 10, 64)
	if err != nil || noteID == 0 {
		c.JSON(http.StatusNotFound, gin.H{"message": "Note not found"})
		return
	}

	if err := h.noteUsecase.DeleteNote(c.Request.Context(), userID, uint(noteID)); err != nil {
		authdelivery.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Deleted record!"})
}

// SearchNotes finds notes by title or content
// GET /searchNotes?query=...
func (h *NoteHandler) SearchNotes(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	query := c.Query("query")
	if strings.TrimSpace(query) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": true, "message": "Search query is required"})
		return
	}

	notes, err := h.noteUsecase.SearchNotes(c.Request.Context(), userID, query)
	if err != nil {
		authdelivery.RespondError(c, err)
		return
	}

	results := make([]NoteResponse, 0, len(notes))
	for _, n := range notes {
		results = append(results, toResponse(n))
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Search results fetched!",
		"count":   len(results),
		"notes":   results,
	})
}

// callerID writes 401 and returns false when no identity is attached.
func callerID(c *gin.Context) (uint, bool) {
	identity, ok := authdelivery.IdentityFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
		return 0, false
	}
	return identity.UserID, true
}
