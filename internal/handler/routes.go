package handler

import (
	"net/http"

	"github.com/msomdec/board/internal/service"
)

// Services bundles the services the HTTP API calls into.
type Services struct {
	Questions *service.QuestionService
	Answers   *service.AnswerService
	Users     *service.UserService
}

// RegisterRoutes sets up all HTTP routes on the given mux. Write endpoints
// are rate limited per client IP.
func RegisterRoutes(mux *http.ServeMux, svc Services, limiter *TokenBucket) {
	questions := NewQuestionHandler(svc.Questions, svc.Answers)
	users := NewUserHandler(svc.Users)

	limited := func(h http.HandlerFunc) http.Handler {
		return RateLimit(limiter, h)
	}

	mux.HandleFunc("GET /healthz", HandleHealthz)

	mux.HandleFunc("GET /api/questions", questions.HandleList)
	mux.Handle("POST /api/questions", limited(questions.HandleCreate))
	mux.HandleFunc("GET /api/questions/{id}", questions.HandleGet)
	mux.Handle("POST /api/questions/{id}/answers", limited(questions.HandleCreateAnswer))

	mux.Handle("POST /api/users", limited(users.HandleRegister))
	mux.HandleFunc("GET /api/users/{username}", users.HandleGet)
}

// Wrap applies the middleware every request passes through.
func Wrap(h http.Handler) http.Handler {
	return RequestID(AccessLog(SecurityHeaders(h)))
}
