package blogHandler

import (
	blogService "BlogGolang/internal/api/blog/service"
	"BlogGolang/internal/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type BlogsHandler struct {
	log          *logrus.Logger
	validator    *validator.Validate
	middleware   middleware.Middleware
	blogsService blogService.IBlogsService
}

func New(
	log *logrus.Logger,
	bs blogService.IBlogsService,
	validate *validator.Validate,
	middleware middleware.Middleware,
) *BlogsHandler {
	return &BlogsHandler{
		log:          log,
		validator:    validate,
		middleware:   middleware,
		blogsService: bs,
	}
}

func (h *BlogsHandler) Start(srv fiber.Router) {
	blog := srv.Group("/blog")

	blog.Post("/publish", h.middleware.NewTokenMiddleware, h.PublishBlog)
	blog.Put("", h.middleware.NewTokenMiddleware, h.UpdateBlog)
	blog.Get("/bulk", h.middleware.NewTokenMiddleware, h.GetAllBlogs)

	// Draft generation is public, so it goes through the rate limiter
	// instead of the token gate.
	blog.Post("/with-ai", h.middleware.NewRateLimiter, h.GenerateBlog)

	blog.Get("/:id", h.middleware.NewTokenMiddleware, h.GetBlogByID)
}
