package markdown

import (
	"bytes"

	"Club/pkg/log"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"go.uber.org/zap"
)

// Renderer 把话题/回复正文从 markdown 转成 HTML，mdrender=false 时调用方直接跳过
type Renderer interface {
	Render(src string) string
}

type renderer struct {
	md goldmark.Markdown
}

func New() Renderer {
	return &renderer{
		md: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
		),
	}
}

func (r *renderer) Render(src string) string {
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(src), &buf); err != nil {
		// 渲染失败返回原文，不吞内容
		log.L.Error("markdown render failed", zap.Error(err))
		return src
	}
	return buf.String()
}
