package v1

import (
	"net/http"

	"go-candidate-backend/internal/delivery/http/response"
	"go-candidate-backend/internal/domain"
	"go-candidate-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CandidateHandler struct {
	candidateUC domain.CandidateUsecase
}

func NewCandidateHandler(r *gin.RouterGroup, candidateUC domain.CandidateUsecase) {
	handler := &CandidateHandler{candidateUC: candidateUC}

	candidates := r.Group("/candidates")
	{
		candidates.POST("", handler.Create)
		candidates.GET("", handler.List)
		candidates.GET("/generate-report", handler.GenerateReport)
		candidates.GET("/:id", handler.GetByID)
		candidates.PUT("/:id", handler.Update)
		candidates.DELETE("/:id", handler.Delete)
	}
}

// Create godoc
// @Summary      Create a candidate
// @Description  Create a new candidate record with a generated identifier
// @Tags         candidates
// @Accept       json
// @Produce      json
// @Param        candidate  body      domain.CandidateInput  true  "Candidate attributes"
// @Success      200  {object}  response.Response{data=domain.Candidate}
// @Failure      400  {object}  response.Response
// @Router       /candidates [post]
func (h *CandidateHandler) Create(c *gin.Context) {
	var input domain.CandidateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.Error(apperror.BadRequest("Invalid request body: " + err.Error()))
		return
	}

	candidate, err := h.candidateUC.Create(c.Request.Context(), &input)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Candidate created successfully", candidate)
}

// List godoc
// @Summary      List candidates
// @Description  List all candidates, optionally filtered by a case-insensitive substring search across every field
// @Tags         candidates
// @Produce      json
// @Param        first_name    query  string  true   "Caller first name"
// @Param        last_name     query  string  true   "Caller last name"
// @Param        email         query  string  true   "Caller email"
// @Param        search_query  query  string  false  "Search term"
// @Success      200  {object}  response.Response{data=[]domain.Candidate}
// @Failure      401  {object}  response.Response
// @Router       /candidates [get]
func (h *CandidateHandler) List(c *gin.Context) {
	caller := domain.UserIdentity{
		FirstName: c.Query("first_name"),
		LastName:  c.Query("last_name"),
		Email:     c.Query("email"),
	}

	candidates, err := h.candidateUC.List(c.Request.Context(), caller, c.Query("search_query"))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Candidates retrieved", candidates)
}

// GenerateReport godoc
// @Summary      Generate candidate report
// @Description  Write a CSV report of all candidates to local storage
// @Tags         candidates
// @Produce      json
// @Param        first_name  query  string  true  "Caller first name"
// @Param        last_name   query  string  true  "Caller last name"
// @Param        email       query  string  true  "Caller email"
// @Success      200  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Router       /candidates/generate-report [get]
func (h *CandidateHandler) GenerateReport(c *gin.Context) {
	caller := domain.UserIdentity{
		FirstName: c.Query("first_name"),
		LastName:  c.Query("last_name"),
		Email:     c.Query("email"),
	}

	if err := h.candidateUC.GenerateReport(c.Request.Context(), caller); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Report generated successfully", nil)
}

// GetByID godoc
// @Summary      Get a candidate
// @Tags         candidates
// @Produce      json
// @Param        id  path  string  true  "Candidate ID"
// @Success      200  {object}  response.Response{data=domain.Candidate}
// @Failure      404  {object}  response.Response
// @Router       /candidates/{id} [get]
func (h *CandidateHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Error(apperror.BadRequest("Invalid candidate id"))
		return
	}

	candidate, err := h.candidateUC.GetByID(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Candidate retrieved", candidate)
}

// Update godoc
// @Summary      Update a candidate
// @Description  Replace every attribute of an existing candidate
// @Tags         candidates
// @Accept       json
// @Produce      json
// @Param        id         path  string                 true  "Candidate ID"
// @Param        candidate  body  domain.CandidateInput  true  "Full candidate attributes"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /candidates/{id} [put]
func (h *CandidateHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Error(apperror.BadRequest("Invalid candidate id"))
		return
	}

	var input domain.CandidateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.Error(apperror.BadRequest("Invalid request body: " + err.Error()))
		return
	}

	if err := h.candidateUC.Update(c.Request.Context(), id, &input); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Candidate updated successfully", nil)
}

// Delete godoc
// @Summary      Delete a candidate
// @Tags         candidates
// @Produce      json
// @Param        id  path  string  true  "Candidate ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /candidates/{id} [delete]
func (h *CandidateHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Error(apperror.BadRequest("Invalid candidate id"))
		return
	}

	if err := h.candidateUC.Delete(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Candidate Deleted successfully", nil)
}
