package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/msomdec/board/internal/domain"
	"github.com/msomdec/board/internal/service"
)

// QuestionHandler serves questions and their answers.
type QuestionHandler struct {
	questions *service.QuestionService
	answers   *service.AnswerService
}

// NewQuestionHandler creates a new QuestionHandler.
func NewQuestionHandler(questions *service.QuestionService, answers *service.AnswerService) *QuestionHandler {
	return &QuestionHandler{questions: questions, answers: answers}
}

// HandleList returns a page of questions selected by ?limit= and ?offset=.
func (h *QuestionHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	page, err := parsePage(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	res, err := h.questions.List(r.Context(), page)
	if err != nil {
		writeServiceError(w, r, "list questions", err)
		return
	}
	writeJSON(w, http.StatusOK, PageDTO[QuestionDTO]{Items: toQuestionDTOs(res.Items), Total: res.Total})
}

// HandleCreate creates a question from a JSON body.
func (h *QuestionHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req createQuestionRequest
	if err := readJSON(w, r, &req); err != nil {
		writeServiceError(w, r, "decode question", err)
		return
	}

	q, err := h.questions.Create(r.Context(), req.Subject, req.Content, req.AuthorID)
	if err != nil {
		writeServiceError(w, r, "create question", err)
		return
	}
	w.Header().Set("Location", fmt.Sprintf("/api/questions/%d", q.ID))
	writeJSON(w, http.StatusCreated, toQuestionDTO(q))
}

// HandleGet returns a question with its answers.
func (h *QuestionHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	q, err := h.questions.Get(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, "get question", err)
		return
	}
	answers, err := h.answers.ListByQuestion(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, "list answers", err)
		return
	}
	writeJSON(w, http.StatusOK, QuestionDetailDTO{QuestionDTO: toQuestionDTO(q), Answers: toAnswerDTOs(answers)})
}

// HandleCreateAnswer adds an answer to the question in the path.
func (h *QuestionHandler) HandleCreateAnswer(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req createAnswerRequest
	if err := readJSON(w, r, &req); err != nil {
		writeServiceError(w, r, "decode answer", err)
		return
	}

	a, err := h.answers.Create(r.Context(), id, req.Content, req.AuthorID)
	if err != nil {
		writeServiceError(w, r, "create answer", err)
		return
	}
	writeJSON(w, http.StatusCreated, toAnswerDTO(a))
}

func pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		writeError(w, http.StatusBadRequest, "invalid id")
		return 0, false
	}
	return id, true
}

func parsePage(r *http.Request) (domain.Page, error) {
	var page domain.Page
	q := r.URL.Query()

	if v := q.Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return page, fmt.Errorf("invalid limit %q", v)
		}
		page.Limit = n
	}
	if v := q.Get("offset"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return page, fmt.Errorf("invalid offset %q", v)
		}
		page.Offset = n
	}
	return page.Normalize(), nil
}
