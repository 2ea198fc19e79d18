package jobs_http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"dailyapps/internal/app/jobs"
	domain "dailyapps/internal/domain/jobs"
	"dailyapps/internal/handler/http/httpx"
)

var errorRules = []httpx.Rule{
	{Target: domain.ErrCompanyNotFound, Status: http.StatusNotFound},
	{Target: domain.ErrSeekerNotFound, Status: http.StatusNotFound},
	{Target: domain.ErrApplicationNotFound, Status: http.StatusNotFound},
	{Target: domain.ErrDuplicateApplication, Status: http.StatusConflict},
	{Target: domain.ErrInvalidJobPosting, Status: http.StatusBadRequest},
	{Target: domain.ErrInvalidStatus, Status: http.StatusBadRequest},
}

type JobsHandler struct {
	service jobs.JobBoardService
	logger  *zap.Logger
}

func NewJobsHandler(s jobs.JobBoardService, l *zap.Logger) *JobsHandler {
	return &JobsHandler{service: s, logger: l}
}

type CreateCompanyRequest struct {
	Name        string `json:"name"`
	ContactInfo string `json:"contact_info"`
}

type CreateSeekerRequest struct {
	Name        string `json:"name"`
	ContactInfo string `json:"contact_info"`
	Resume      string `json:"resume"`
}

type EditPostingRequest struct {
	Title  string          `json:"title"`
	Salary decimal.Decimal `json:"salary"`
}

type SearchRequest struct {
	Title     string          `json:"title"`
	Type      domain.JobType  `json:"type"`
	MinSalary decimal.Decimal `json:"min_salary"`
}

type ApplyRequest struct {
	PostingID int64 `json:"posting_id"`
}

type StatusRequest struct {
	Status domain.Status `json:"status"`
}

func (h *JobsHandler) fail(w http.ResponseWriter, err error) {
	httpx.RenderError(w, h.logger, err, errorRules...)
}

func (h *JobsHandler) CreateCompanyHandler(w http.ResponseWriter, r *http.Request) {
	var req CreateCompanyRequest
	if err := httpx.Decode(r, &req); err != nil {
		h.fail(w, err)
		return
	}
	c, err := h.service.CreateCompany(r.Context(), req.Name, req.ContactInfo)
	if err != nil {
		h.fail(w, err)
		return
	}
	httpx.RenderJSON(w, h.logger, http.StatusCreated, c)
}

func (h *JobsHandler) CompanyPostingsHandler(w http.ResponseWriter, r *http.Request) {
	postings, err := h.service.CompanyPostings(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.fail(w, err)
		return
	}
	httpx.RenderJSON(w, h.logger, http.StatusOK, postings)
}

func (h *JobsHandler) CreatePostingHandler(w http.ResponseWriter, r *http.Request) {
	var req jobs.PostingInput
	if err := httpx.Decode(r, &req); err != nil {
		h.fail(w, err)
		return
	}
	p, err := h.service.CreatePosting(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		h.fail(w, err)
		return
	}
	httpx.RenderJSON(w, h.logger, http.StatusCreated, p)
}

func (h *JobsHandler) EditPostingHandler(w http.ResponseWriter, r *http.Request) {
	postingID, err := httpx.Int64Param(r, "postingID")
	if err != nil {
		h.fail(w, err)
		return
	}
	var req EditPostingRequest
	if err := httpx.Decode(r, &req); err != nil {
		h.fail(w, err)
		return
	}
	p, err := h.service.EditPosting(r.Context(), chi.URLParam(r, "id"), postingID, req.Salary, req.Title)
	if err != nil {
		h.fail(w, err)
		return
	}
	httpx.RenderJSON(w, h.logger, http.StatusOK, p)
}

func (h *JobsHandler) DeletePostingHandler(w http.ResponseWriter, r *http.Request) {
	postingID, err := httpx.Int64Param(r, "postingID")
	if err != nil {
		h.fail(w, err)
		return
	}
	if err := h.service.DeletePosting(r.Context(), chi.URLParam(r, "id"), postingID); err != nil {
		h.fail(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *JobsHandler) ViewApplicationsHandler(w http.ResponseWriter, r *http.Request) {
	postingID, err := httpx.Int64Param(r, "postingID")
	if err != nil {
		h.fail(w, err)
		return
	}
	apps, err := h.service.ViewApplications(r.Context(), chi.URLParam(r, "id"), postingID)
	if err != nil {
		h.fail(w, err)
		return
	}
	httpx.RenderJSON(w, h.logger, http.StatusOK, apps)
}

func (h *JobsHandler) ListPostingsHandler(w http.ResponseWriter, r *http.Request) {
	postings, err := h.service.ListPostings(r.Context(), domain.JobType(r.URL.Query().Get("type")))
	if err != nil {
		h.fail(w, err)
		return
	}
	httpx.RenderJSON(w, h.logger, http.StatusOK, postings)
}

func (h *JobsHandler) CreateSeekerHandler(w http.ResponseWriter, r *http.Request) {
	var req CreateSeekerRequest
	if err := httpx.Decode(r, &req); err != nil {
		h.fail(w, err)
		return
	}
	s, err := h.service.CreateSeeker(r.Context(), req.Name, req.ContactInfo, req.Resume)
	if err != nil {
		h.fail(w, err)
		return
	}
	httpx.RenderJSON(w, h.logger, http.StatusCreated, s)
}

func (h *JobsHandler) SearchHandler(w http.ResponseWriter, r *http.Request) {
	var req SearchRequest
	if err := httpx.Decode(r, &req); err != nil {
		h.fail(w, err)
		return
	}
	criteria := domain.Criteria{Title: req.Title, Type: req.Type, MinSalary: req.MinSalary}
	found, err := h.service.Search(r.Context(), chi.URLParam(r, "id"), criteria)
	if err != nil {
		h.fail(w, err)
		return
	}
	httpx.RenderJSON(w, h.logger, http.StatusOK, found)
}

func (h *JobsHandler) ApplyHandler(w http.ResponseWriter, r *http.Request) {
	var req ApplyRequest
	if err := httpx.Decode(r, &req); err != nil {
		h.fail(w, err)
		return
	}
	app, err := h.service.Apply(r.Context(), chi.URLParam(r, "id"), req.PostingID)
	if err != nil {
		h.fail(w, err)
		return
	}
	httpx.RenderJSON(w, h.logger, http.StatusCreated, app)
}

func (h *JobsHandler) SeekerApplicationsHandler(w http.ResponseWriter, r *http.Request) {
	apps, err := h.service.SeekerApplications(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.fail(w, err)
		return
	}
	httpx.RenderJSON(w, h.logger, http.StatusOK, apps)
}

func (h *JobsHandler) UpdateStatusHandler(w http.ResponseWriter, r *http.Request) {
	var req StatusRequest
	if err := httpx.Decode(r, &req); err != nil {
		h.fail(w, err)
		return
	}
	app, err := h.service.UpdateApplicationStatus(r.Context(), chi.URLParam(r, "id"), req.Status)
	if err != nil {
		h.fail(w, err)
		return
	}
	httpx.RenderJSON(w, h.logger, http.StatusOK, app)
}
