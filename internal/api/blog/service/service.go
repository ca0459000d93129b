package blogService

import (
	blogs "BlogGolang/internal/api/blog"
	blogRepository "BlogGolang/internal/api/blog/repository"
	"BlogGolang/pkg/gemini"
	"context"
	"github.com/sirupsen/logrus"
)

type IBlogsService interface {
	CreateBlog(ctx context.Context, req blogs.CreateBlogRequest, userID string) (int64, error)
	UpdateBlog(ctx context.Context, req blogs.UpdateBlogRequest) (int64, error)
	GetAllBlogs(ctx context.Context) (blogs.BlogListResponse, error)
	GetBlogByID(ctx context.Context, id int64) (*blogs.BlogResponse, error)
	GenerateBlog(ctx context.Context, req blogs.GenerateBlogRequest) (string, error)
}

type blogsService struct {
	log          *logrus.Logger
	blogsRepo    blogRepository.Repository
	geminiClient gemini.IGemini
}

func New(
	log *logrus.Logger,
	blogsRepo blogRepository.Repository,
	geminiClient gemini.IGemini,
) IBlogsService {
	return &blogsService{
		log:          log,
		blogsRepo:    blogsRepo,
		geminiClient: geminiClient,
	}
}
