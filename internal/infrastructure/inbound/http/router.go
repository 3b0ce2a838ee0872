package delivery_http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chi_middleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"

	auth_input "circle-backend/internal/domain/ports/input/auth"
	follow_input "circle-backend/internal/domain/ports/input/follow"
	like_input "circle-backend/internal/domain/ports/input/like"
	reply_input "circle-backend/internal/domain/ports/input/reply"
	thread_input "circle-backend/internal/domain/ports/input/thread"
	user_input "circle-backend/internal/domain/ports/input/user"
	ports "circle-backend/internal/domain/ports/output"
	auth_handler "circle-backend/internal/infrastructure/inbound/http/auth"
	follow_handler "circle-backend/internal/infrastructure/inbound/http/follow"
	like_handler "circle-backend/internal/infrastructure/inbound/http/like"
	"circle-backend/internal/infrastructure/inbound/http/middleware"
	reply_handler "circle-backend/internal/infrastructure/inbound/http/reply"
	"circle-backend/internal/infrastructure/inbound/http/response"
	thread_handler "circle-backend/internal/infrastructure/inbound/http/thread"
	user_handler "circle-backend/internal/infrastructure/inbound/http/user"
	"circle-backend/internal/infrastructure/inbound/ws"
)

type Services struct {
	Thread thread_input.Service
	Reply  reply_input.Service
	Like   like_input.Service
	User   user_input.Service
	Follow follow_input.Service
	Auth   auth_input.Service
}

func NewRouter(
	services Services,
	hub *ws.Hub,
	log ports.Logger,
	metrics ports.MetricsProvider,
) http.Handler {
	validate := validator.New()

	createThread := thread_handler.NewCreateThreadHandler(services.Thread, validate, log)
	getFeed := thread_handler.NewGetFeedHandler(services.Thread, log)
	getThread := thread_handler.NewGetThreadHandler(services.Thread, log)
	updateThread := thread_handler.NewUpdateThreadHandler(services.Thread, validate, log)
	deleteThread := thread_handler.NewDeleteThreadHandler(services.Thread, log)
	getUserFeed := thread_handler.NewGetUserFeedHandler(services.Thread, log)

	likes := like_handler.NewLikeHandler(services.Like, log)
	replies := reply_handler.NewReplyHandler(services.Reply, validate, log)
	profiles := user_handler.NewProfileHandler(services.User, validate, log)
	follows := follow_handler.NewFollowHandler(services.Follow, log)
	auth := auth_handler.NewAuthHandler(services.Auth, validate, log)

	r := chi.NewRouter()
	r.Use(chi_middleware.Recoverer)
	r.Use(middleware.Logging(log))
	r.Use(middleware.Metrics(metrics))

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		response.OK(w, "ok", nil)
	})
	r.Get("/ws", ws.Handler(hub))

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/auth/register", auth.Register)
		r.Post("/auth/login", auth.Login)

		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(services.Auth, log))

			r.Get("/threads", getFeed.ServeHTTP)
			r.Post("/threads", createThread.ServeHTTP)
			r.Get("/threads/{id}", getThread.ServeHTTP)
			r.Patch("/threads/{id}", updateThread.ServeHTTP)
			r.Delete("/threads/{id}", deleteThread.ServeHTTP)

			r.Post("/likes", likes.Like)
			r.Delete("/likes/{thread_id}", likes.Unlike)

			r.Post("/replies", replies.Create)
			r.Get("/replies", replies.ListByThread)
			r.Patch("/replies/{id}", replies.Update)
			r.Delete("/replies/{id}", replies.Delete)

			r.Get("/users/{id}/threads", getUserFeed.ServeHTTP)
			r.Get("/users/search", profiles.Search)

			r.Get("/profile", profiles.GetOwn)
			r.Get("/profile/{id}", profiles.GetByID)
			r.Patch("/profile", profiles.Update)

			r.Post("/follows", follows.Follow)
			r.Delete("/follows/{user_id}", follows.Unfollow)
			r.Get("/follows", follows.List)
		})
	})

	return r
}
