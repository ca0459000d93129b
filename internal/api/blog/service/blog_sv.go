package blogService

import (
	blogs "BlogGolang/internal/api/blog"
	"BlogGolang/internal/entity"
	contextPkg "BlogGolang/pkg/context"
	"errors"
	"strconv"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

func (s *blogsService) CreateBlog(ctx context.Context, req blogs.CreateBlogRequest, userID string) (int64, error) {
	requestID := contextPkg.GetRequestID(ctx)

	authorID, err := strconv.ParseInt(userID, 10, 64)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"user_id":    userID,
			"error":      err.Error(),
		}).Error("Caller identity is not a numeric author id")
		return 0, blogs.ErrCreateBlog
	}

	repo, err := s.blogsRepo.NewClient(true)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return 0, blogs.ErrCreateBlog
	}
	defer repo.Rollback()

	blog := entity.Blog{
		Title:    req.Title,
		Content:  req.Content,
		AuthorID: authorID,
	}

	id, err := repo.Blogs.CreateBlog(ctx, blog)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create blog")
		return 0, blogs.ErrCreateBlog
	}

	if err := repo.Commit(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to commit transaction")
		return 0, blogs.ErrCreateBlog
	}

	return id, nil
}

// UpdateBlog overwrites title and content on the matching post. The
// author is never touched, and there is deliberately no ownership check
// against the caller: any authenticated caller may update any post.
func (s *blogsService) UpdateBlog(ctx context.Context, req blogs.UpdateBlogRequest) (int64, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.blogsRepo.NewClient(true)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return 0, blogs.ErrUpdateBlog
	}
	defer repo.Rollback()

	blog := entity.Blog{
		ID:      req.ID,
		Title:   req.Title,
		Content: req.Content,
	}

	if err := repo.Blogs.UpdateBlog(ctx, blog); err != nil {
		if errors.Is(err, blogs.ErrBlogNotFound) {
			return 0, err
		}
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to update blog")
		return 0, blogs.ErrUpdateBlog
	}

	if err := repo.Commit(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to commit transaction")
		return 0, blogs.ErrUpdateBlog
	}

	return req.ID, nil
}

func (s *blogsService) GetAllBlogs(ctx context.Context) (blogs.BlogListResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.blogsRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return blogs.BlogListResponse{}, err
	}
	defer repo.Rollback()

	blogList, err := repo.Blogs.GetAllBlogs(ctx)
	if err != nil {
		return blogs.BlogListResponse{}, err
	}

	result := blogs.BlogListResponse{
		Blogs: make([]blogs.BlogResponse, 0, len(blogList)),
	}
	for _, blog := range blogList {
		result.Blogs = append(result.Blogs, makeBlogResponse(blog))
	}

	return result, nil
}

// GetBlogByID returns nil without error when no post matches, so the
// handler can answer with a JSON null body. Backend failures surface as
// the generic fetch error.
func (s *blogsService) GetBlogByID(ctx context.Context, id int64) (*blogs.BlogResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.blogsRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return nil, blogs.ErrFetchBlog
	}
	defer repo.Rollback()

	blog, err := repo.Blogs.GetBlogByID(ctx, id)
	if err != nil {
		if errors.Is(err, blogs.ErrBlogNotFound) {
			return nil, nil
		}
		return nil, blogs.ErrFetchBlog
	}

	resp := makeBlogResponse(blog)
	return &resp, nil
}

func makeBlogResponse(blog entity.BlogWithAuthor) blogs.BlogResponse {
	return blogs.BlogResponse{
		ID:      blog.ID,
		Title:   blog.Title,
		Content: blog.Content,
		Author: blogs.AuthorResponse{
			Name: blog.AuthorName,
		},
	}
}
