package blogService

import (
	blogs "BlogGolang/internal/api/blog"
	contextPkg "BlogGolang/pkg/context"
	"fmt"
	"regexp"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

const draftPromptTemplate = `Write a blog post based on the title: %q. The content should be in plain text format and should not include any headings, titles, or special characters such as ` + "`***`" + `.

1. **Introduction**: Provide a brief introduction to the topic.
2. **Main Body**:
 - Divide the main body into multiple sections (at least 4) without using any headings or special formatting.
 - Ensure the content flows logically from one section to the next.
3. **Conclusion**:
 - Summarize the key points.
 - Include a call to action inviting readers to leave comments or share their thoughts.

Ensure that the content is cohesive, engaging, and free of any markdown or special formatting elements. Focus on creating a natural, readable text that aligns with the blog title and provides value to the readers.`

var (
	doubleHashMarker  = regexp.MustCompile(`##\s*`)
	leadingHashMarker = regexp.MustCompile(`(?m)^\s*#\s*`)
)

// GenerateBlog asks the completion service for a draft and strips any
// heading markup the model produced despite the prompt. Provider errors
// are logged here and collapsed into the generic generation error.
func (s *blogsService) GenerateBlog(ctx context.Context, req blogs.GenerateBlogRequest) (string, error) {
	requestID := contextPkg.GetRequestID(ctx)

	prompt := fmt.Sprintf(draftPromptTemplate, req.Title)

	content, err := s.geminiClient.GenerateContent(ctx, prompt)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"title":      req.Title,
			"error":      err.Error(),
		}).Error("Error generating content")
		return "", blogs.ErrGenerateBlog
	}

	return stripHeadingMarkers(content), nil
}

// stripHeadingMarkers removes every "##" marker with its trailing
// whitespace, then a single leading "#" marker at the start of any
// line. Best-effort cleanup, all other characters pass through.
func stripHeadingMarkers(content string) string {
	content = doubleHashMarker.ReplaceAllString(content, "")
	return leadingHashMarker.ReplaceAllString(content, "")
}
