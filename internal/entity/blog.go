package entity

type Blog struct {
	ID       int64  `db:"id"`
	Title    string `db:"title"`
	Content  string `db:"content"`
	AuthorID int64  `db:"author_id"`
}

// BlogWithAuthor is the read projection joined with the author's display
// name. Authors are provisioned by the signup flow, never written here.
type BlogWithAuthor struct {
	ID         int64
	Title      string
	Content    string
	AuthorName string
}
