package blogs

import "BlogGolang/pkg/response"

var (
	ErrBlogNotFound = response.NewError(404, "blog not found")
	ErrCreateBlog   = response.NewError(500, "failed to create blog")
	ErrUpdateBlog   = response.NewError(500, "failed to update blog")
	ErrFetchBlog    = response.NewError(411, "Error while fetching blog post")
	ErrGenerateBlog = response.NewError(500, "An error occurred while generating the blog post")
)
