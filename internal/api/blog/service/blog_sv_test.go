package blogService

import (
	blogs "BlogGolang/internal/api/blog"
	blogRepository "BlogGolang/internal/api/blog/repository"
	"BlogGolang/internal/entity"
	"context"
	"io"
	"sync"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memBlogStore struct {
	mu      sync.Mutex
	nextID  int64
	blogs   map[int64]entity.Blog
	authors map[int64]string
}

func newMemBlogStore(authors map[int64]string) *memBlogStore {
	return &memBlogStore{
		nextID:  1,
		blogs:   make(map[int64]entity.Blog),
		authors: authors,
	}
}

func (m *memBlogStore) CreateBlog(ctx context.Context, blog entity.Blog) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	blog.ID = m.nextID
	m.nextID++
	m.blogs[blog.ID] = blog
	return blog.ID, nil
}

func (m *memBlogStore) UpdateBlog(ctx context.Context, blog entity.Blog) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	existing, ok := m.blogs[blog.ID]
	if !ok {
		return blogs.ErrBlogNotFound
	}
	existing.Title = blog.Title
	existing.Content = blog.Content
	m.blogs[blog.ID] = existing
	return nil
}

func (m *memBlogStore) GetAllBlogs(ctx context.Context) ([]entity.BlogWithAuthor, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	result := make([]entity.BlogWithAuthor, 0, len(m.blogs))
	for _, blog := range m.blogs {
		result = append(result, entity.BlogWithAuthor{
			ID:         blog.ID,
			Title:      blog.Title,
			Content:    blog.Content,
			AuthorName: m.authors[blog.AuthorID],
		})
	}
	return result, nil
}

func (m *memBlogStore) GetBlogByID(ctx context.Context, id int64) (entity.BlogWithAuthor, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	blog, ok := m.blogs[id]
	if !ok {
		return entity.BlogWithAuthor{}, blogs.ErrBlogNotFound
	}
	return entity.BlogWithAuthor{
		ID:         blog.ID,
		Title:      blog.Title,
		Content:    blog.Content,
		AuthorName: m.authors[blog.AuthorID],
	}, nil
}

type memRepository struct {
	store *memBlogStore
}

func (m *memRepository) NewClient(tx bool) (blogRepository.Client, error) {
	return blogRepository.Client{
		Blogs:    m.store,
		Commit:   func() error { return nil },
		Rollback: func() error { return nil },
	}, nil
}

func newTestService(store *memBlogStore) IBlogsService {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return New(logger, &memRepository{store: store}, nil)
}

func TestCreateAndGetBlogRoundTrip(t *testing.T) {
	store := newMemBlogStore(map[int64]string{42: "Alice"})
	svc := newTestService(store)

	id, err := svc.CreateBlog(context.Background(), blogs.CreateBlogRequest{
		Title:   "T",
		Content: "C",
	}, "42")
	require.NoError(t, err)
	require.NotZero(t, id)

	blog, err := svc.GetBlogByID(context.Background(), id)
	require.NoError(t, err)
	require.NotNil(t, blog)

	assert.Equal(t, id, blog.ID)
	assert.Equal(t, "T", blog.Title)
	assert.Equal(t, "C", blog.Content)
	assert.Equal(t, "Alice", blog.Author.Name)
}

func TestCreateBlogRejectsNonNumericCaller(t *testing.T) {
	store := newMemBlogStore(nil)
	svc := newTestService(store)

	_, err := svc.CreateBlog(context.Background(), blogs.CreateBlogRequest{
		Title:   "T",
		Content: "C",
	}, "not-a-number")

	require.ErrorIs(t, err, blogs.ErrCreateBlog)
	assert.Empty(t, store.blogs)
}

func TestUpdateBlogIsIdempotent(t *testing.T) {
	store := newMemBlogStore(map[int64]string{42: "Alice"})
	svc := newTestService(store)

	id, err := svc.CreateBlog(context.Background(), blogs.CreateBlogRequest{
		Title:   "old title",
		Content: "old content",
	}, "42")
	require.NoError(t, err)

	req := blogs.UpdateBlogRequest{ID: id, Title: "new title", Content: "new content"}

	returnedID, err := svc.UpdateBlog(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, id, returnedID)

	first, err := svc.GetBlogByID(context.Background(), id)
	require.NoError(t, err)

	_, err = svc.UpdateBlog(context.Background(), req)
	require.NoError(t, err)

	second, err := svc.GetBlogByID(context.Background(), id)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, "new title", second.Title)
	assert.Equal(t, "Alice", second.Author.Name)
}

func TestUpdateBlogNotFound(t *testing.T) {
	svc := newTestService(newMemBlogStore(nil))

	_, err := svc.UpdateBlog(context.Background(), blogs.UpdateBlogRequest{
		ID:      999,
		Title:   "T",
		Content: "C",
	})

	require.ErrorIs(t, err, blogs.ErrBlogNotFound)
}

func TestGetAllBlogsReturnsEveryPost(t *testing.T) {
	store := newMemBlogStore(map[int64]string{1: "Alice", 2: "Bob"})
	svc := newTestService(store)

	for i, userID := range []string{"1", "2", "1"} {
		_, err := svc.CreateBlog(context.Background(), blogs.CreateBlogRequest{
			Title:   "post",
			Content: "body",
		}, userID)
		require.NoError(t, err, "create %d", i)
	}

	result, err := svc.GetAllBlogs(context.Background())
	require.NoError(t, err)
	require.Len(t, result.Blogs, 3)

	for _, blog := range result.Blogs {
		assert.NotEmpty(t, blog.Author.Name)
	}
}

func TestGetBlogByIDMissingReturnsNil(t *testing.T) {
	svc := newTestService(newMemBlogStore(nil))

	blog, err := svc.GetBlogByID(context.Background(), 123)

	require.NoError(t, err)
	assert.Nil(t, blog)
}
