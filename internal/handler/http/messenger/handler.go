package messenger_http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"dailyapps/internal/app/messenger"
	domain "dailyapps/internal/domain/messenger"
	"dailyapps/internal/handler/http/httpx"
)

var errorRules = []httpx.Rule{
	{Target: domain.ErrUserNotFound, Status: http.StatusNotFound},
	{Target: domain.ErrConversationNotFound, Status: http.StatusNotFound},
	{Target: domain.ErrMessageNotFound, Status: http.StatusNotFound},
	{Target: domain.ErrInvalidMessage, Status: http.StatusBadRequest},
	{Target: domain.ErrOutOfRange, Status: http.StatusBadRequest},
}

type MessengerHandler struct {
	service messenger.MessengerService
	logger  *zap.Logger
}

func NewMessengerHandler(s messenger.MessengerService, l *zap.Logger) *MessengerHandler {
	return &MessengerHandler{service: s, logger: l}
}

type CreateUserRequest struct {
	Name        string `json:"name"`
	ContactInfo string `json:"contact_info"`
}

type PresenceRequest struct {
	Online bool `json:"online"`
}

type CreateConversationRequest struct {
	CreatorID string   `json:"creator_id"`
	MemberIDs []string `json:"member_ids"`
}

type AddMembersRequest struct {
	UserIDs []string `json:"user_ids"`
}

type MuteRequest struct {
	UserID string `json:"user_id"`
	Muted  bool   `json:"muted"`
}

// SendRequest carries a text message, or a media file when FilePath is set.
type SendRequest struct {
	SenderID string           `json:"sender_id"`
	To       messenger.Target `json:"to"`
	Content  string           `json:"content,omitempty"`
	FilePath string           `json:"file_path,omitempty"`
	FileType string           `json:"file_type,omitempty"`
}

type ReadRequest struct {
	Read bool `json:"read"`
}

func (h *MessengerHandler) fail(w http.ResponseWriter, err error) {
	httpx.RenderError(w, h.logger, err, errorRules...)
}

func (h *MessengerHandler) CreateUserHandler(w http.ResponseWriter, r *http.Request) {
	var req CreateUserRequest
	if err := httpx.Decode(r, &req); err != nil {
		h.fail(w, err)
		return
	}
	u, err := h.service.CreateUser(r.Context(), req.Name, req.ContactInfo)
	if err != nil {
		h.fail(w, err)
		return
	}
	httpx.RenderJSON(w, h.logger, http.StatusCreated, u)
}

func (h *MessengerHandler) GetUserHandler(w http.ResponseWriter, r *http.Request) {
	u, err := h.service.GetUser(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.fail(w, err)
		return
	}
	httpx.RenderJSON(w, h.logger, http.StatusOK, u)
}

func (h *MessengerHandler) PresenceHandler(w http.ResponseWriter, r *http.Request) {
	var req PresenceRequest
	if err := httpx.Decode(r, &req); err != nil {
		h.fail(w, err)
		return
	}
	u, err := h.service.SetOnline(r.Context(), chi.URLParam(r, "id"), req.Online)
	if err != nil {
		h.fail(w, err)
		return
	}
	httpx.RenderJSON(w, h.logger, http.StatusOK, u)
}

func (h *MessengerHandler) InboxHandler(w http.ResponseWriter, r *http.Request) {
	entries, err := h.service.Inbox(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.fail(w, err)
		return
	}
	httpx.RenderJSON(w, h.logger, http.StatusOK, entries)
}

func (h *MessengerHandler) CreateConversationHandler(w http.ResponseWriter, r *http.Request) {
	var req CreateConversationRequest
	if err := httpx.Decode(r, &req); err != nil {
		h.fail(w, err)
		return
	}
	c, err := h.service.CreateConversation(r.Context(), req.CreatorID, req.MemberIDs)
	if err != nil {
		h.fail(w, err)
		return
	}
	httpx.RenderJSON(w, h.logger, http.StatusCreated, c)
}

func (h *MessengerHandler) AddMembersHandler(w http.ResponseWriter, r *http.Request) {
	var req AddMembersRequest
	if err := httpx.Decode(r, &req); err != nil {
		h.fail(w, err)
		return
	}
	c, err := h.service.AddMembers(r.Context(), chi.URLParam(r, "id"), req.UserIDs)
	if err != nil {
		h.fail(w, err)
		return
	}
	httpx.RenderJSON(w, h.logger, http.StatusOK, c)
}

func (h *MessengerHandler) MuteHandler(w http.ResponseWriter, r *http.Request) {
	var req MuteRequest
	if err := httpx.Decode(r, &req); err != nil {
		h.fail(w, err)
		return
	}
	if err := h.service.SetMuted(r.Context(), req.UserID, chi.URLParam(r, "id"), req.Muted); err != nil {
		h.fail(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *MessengerHandler) HistoryHandler(w http.ResponseWriter, r *http.Request) {
	limit, err := httpx.IntQuery(r, "limit", 0)
	if err != nil {
		h.fail(w, err)
		return
	}
	entries, err := h.service.History(r.Context(), chi.URLParam(r, "id"), limit)
	if err != nil {
		h.fail(w, err)
		return
	}
	httpx.RenderJSON(w, h.logger, http.StatusOK, entries)
}

func (h *MessengerHandler) SendHandler(w http.ResponseWriter, r *http.Request) {
	var req SendRequest
	if err := httpx.Decode(r, &req); err != nil {
		h.fail(w, err)
		return
	}
	var (
		msg messenger.MessageInfo
		err error
	)
	if req.FilePath != "" {
		msg, err = h.service.SendMedia(r.Context(), req.SenderID, req.To, req.FilePath, req.FileType)
	} else {
		msg, err = h.service.SendText(r.Context(), req.SenderID, req.To, req.Content)
	}
	if err != nil {
		h.fail(w, err)
		return
	}
	httpx.RenderJSON(w, h.logger, http.StatusCreated, msg)
}

func (h *MessengerHandler) DeleteMessageHandler(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteMessage(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.fail(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *MessengerHandler) ReadHandler(w http.ResponseWriter, r *http.Request) {
	var req ReadRequest
	if err := httpx.Decode(r, &req); err != nil {
		h.fail(w, err)
		return
	}
	msg, err := h.service.SetRead(r.Context(), chi.URLParam(r, "id"), req.Read)
	if err != nil {
		h.fail(w, err)
		return
	}
	httpx.RenderJSON(w, h.logger, http.StatusOK, msg)
}
