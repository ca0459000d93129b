package blogRepository

const (
	queryCreateBlog = `
		INSERT INTO blogs (
			title,
			content,
			author_id
		) VALUES (
			:title,
			:content,
			:author_id
		)
		RETURNING id
	`

	queryUpdateBlog = `
		UPDATE blogs
		SET
			title = :title,
			content = :content
		WHERE id = :id
	`

	queryGetAllBlogs = `
		SELECT
			b.id,
			b.title,
			b.content,
			u.name AS author_name
		FROM blogs b
		JOIN users u ON u.id = b.author_id
	`

	queryGetBlogByID = `
		SELECT
			b.id,
			b.title,
			b.content,
			u.name AS author_name
		FROM blogs b
		JOIN users u ON u.id = b.author_id
		WHERE b.id = :id
	`
)
