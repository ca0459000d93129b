package blogs

type CreateBlogRequest struct {
	Title   string `json:"title" validate:"required"`
	Content string `json:"content" validate:"required"`
}

type UpdateBlogRequest struct {
	ID      int64  `json:"id" validate:"required"`
	Title   string `json:"title" validate:"required"`
	Content string `json:"content" validate:"required"`
}

// GenerateBlogRequest carries the title used to build the draft prompt.
// It is never persisted.
type GenerateBlogRequest struct {
	Title string `json:"title"`
}

type AuthorResponse struct {
	Name string `json:"name"`
}

type BlogResponse struct {
	ID      int64          `json:"id"`
	Title   string         `json:"title"`
	Content string         `json:"content"`
	Author  AuthorResponse `json:"author"`
}

type BlogListResponse struct {
	Blogs []BlogResponse `json:"blogs"`
}
