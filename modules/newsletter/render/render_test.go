package render_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/newskit/modules/newsletter"
	"github.com/dmitrymomot/newskit/modules/newsletter/render"
)

func sectionWith(modify func(*newsletter.Section)) newsletter.Document {
	sec := newsletter.NewSection()
	modify(&sec)
	return newsletter.Document{
		MainTitle: "Weekly",
		Sections:  []newsletter.Section{sec},
	}
}

func TestRenderLayout(t *testing.T) {
	t.Parallel()

	t.Run("output is right-to-left and self-contained", func(t *testing.T) {
		t.Parallel()

		html := render.Render(sectionWith(func(s *newsletter.Section) {
			s.Title = "כותרת"
			s.Content = "תוכן"
		}))

		assert.True(t, strings.HasPrefix(html, `<div dir="rtl"`))
		assert.Contains(t, html, "max-width:600px")
		assert.Contains(t, html, "border-right:4px solid")
		assert.NotContains(t, html, "<style")
		assert.NotContains(t, html, "<script")
	})

	t.Run("header carries title, subtitle, and date", func(t *testing.T) {
		t.Parallel()

		html := render.Render(newsletter.Document{
			MainTitle: "Weekly",
			SubTitle:  "All the news",
			Date:      "29.08.2026",
		})

		assert.Contains(t, html, "linear-gradient(135deg,#2563eb 0%,#7c3aed 100%)")
		assert.Contains(t, html, ">Weekly</h1>")
		assert.Contains(t, html, ">All the news</p>")
		assert.Contains(t, html, ">29.08.2026</p>")
	})

	t.Run("empty subtitle and date are omitted", func(t *testing.T) {
		t.Parallel()

		html := render.Render(newsletter.Document{MainTitle: "Weekly"})
		assert.Contains(t, html, ">Weekly</h1>")
		assert.NotContains(t, html, "#e0e7ff")
		assert.NotContains(t, html, "#c7d2fe")
	})

	t.Run("same document renders byte-identical output", func(t *testing.T) {
		t.Parallel()

		doc := sectionWith(func(s *newsletter.Section) {
			s.Title = "**bold** and [a](https://a.example)"
			s.MediaItems = []newsletter.MediaItem{
				newsletter.NewMediaItem(newsletter.MediaTypeImage, "https://cdn.example/a.png"),
			}
			s.Lists = []newsletter.ListData{newsletter.NewList(newsletter.ListTypeBullet)}
		})

		assert.Equal(t, render.Render(doc), render.Render(doc))
	})

	t.Run("section colors fall back when unset", func(t *testing.T) {
		t.Parallel()

		html := render.Render(sectionWith(func(s *newsletter.Section) {
			s.Content = "x"
			s.BackgroundColor = ""
			s.SideLineColor = ""
		}))
		assert.Contains(t, html, "background-color:#ffffff")
		assert.Contains(t, html, "border-right:4px solid #3b82f6")
	})
}

func TestRenderMarkup(t *testing.T) {
	t.Parallel()

	t.Run("link span becomes exactly one anchor", func(t *testing.T) {
		t.Parallel()

		html := render.Render(sectionWith(func(s *newsletter.Section) {
			s.Content = "Hello [AI](https://ai.example) world"
		}))

		want := `<a href="https://ai.example" target="_blank" style="color:#2563eb;text-decoration:underline;">AI</a>`
		assert.Equal(t, 1, strings.Count(html, want))
		assert.Contains(t, html, "Hello "+want+" world")
		assert.NotContains(t, html, "[AI]")
	})

	t.Run("bold span becomes strong", func(t *testing.T) {
		t.Parallel()

		html := render.Render(sectionWith(func(s *newsletter.Section) {
			s.Content = "very **important** news"
		}))
		assert.Contains(t, html, "very <strong>important</strong> news")
	})

	t.Run("raw html in content is escaped, not executed", func(t *testing.T) {
		t.Parallel()

		html := render.Render(sectionWith(func(s *newsletter.Section) {
			s.Content = `<script>alert("x")</script>`
		}))
		assert.NotContains(t, html, "<script>")
		assert.Contains(t, html, "&lt;script&gt;")
	})

	t.Run("newlines survive via pre-line styling", func(t *testing.T) {
		t.Parallel()

		html := render.Render(sectionWith(func(s *newsletter.Section) {
			s.Content = "line one\nline two"
		}))
		assert.Contains(t, html, "white-space:pre-line")
		assert.Contains(t, html, "line one\nline two")
	})
}

func TestRenderFontSizes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		size   newsletter.FontSize
		wantPx string
	}{
		{newsletter.FontSizeXS, "font-size:12px"},
		{newsletter.FontSizeSM, "font-size:14px"},
		{newsletter.FontSizeBase, "font-size:16px"},
		{newsletter.FontSizeLG, "font-size:18px"},
		{newsletter.FontSizeXL, "font-size:20px"},
		{newsletter.FontSize2XL, "font-size:24px"},
		{newsletter.FontSize3XL, "font-size:30px"},
		{newsletter.FontSize("text-huge"), "font-size:18px"}, // unknown falls back to title default
	}

	for _, tt := range tests {
		t.Run(string(tt.size), func(t *testing.T) {
			t.Parallel()

			html := render.Render(sectionWith(func(s *newsletter.Section) {
				s.Title = "sized"
				s.TitleFontSize = tt.size
			}))
			assert.Contains(t, html, `<h2 style="`+tt.wantPx)
		})
	}
}

func TestRenderMedia(t *testing.T) {
	t.Parallel()

	t.Run("image sizes and alignment", func(t *testing.T) {
		t.Parallel()

		item := newsletter.NewMediaItem(newsletter.MediaTypeImage, "https://cdn.example/a.png")
		item.Size = newsletter.MediaSizeLarge
		item.Alignment = newsletter.AlignRight
		item.Title = "A **picture**"

		html := render.Render(sectionWith(func(s *newsletter.Section) {
			s.MediaItems = []newsletter.MediaItem{item}
		}))

		assert.Contains(t, html, `src="https://cdn.example/a.png"`)
		assert.Contains(t, html, "width:75%;max-width:600px")
		assert.Contains(t, html, "text-align:right")
		assert.Contains(t, html, `alt="A picture"`)
	})

	t.Run("unknown size and alignment fall back to medium centered", func(t *testing.T) {
		t.Parallel()

		item := newsletter.NewMediaItem(newsletter.MediaTypeImage, "https://cdn.example/a.png")
		item.Size = newsletter.MediaSize("gigantic")
		item.Alignment = newsletter.Alignment("justified")

		html := render.Render(sectionWith(func(s *newsletter.Section) {
			s.MediaItems = []newsletter.MediaItem{item}
		}))
		assert.Contains(t, html, "width:50%;max-width:400px")
		assert.Contains(t, html, "text-align:center")
	})

	t.Run("unknown media type renders with the image template", func(t *testing.T) {
		t.Parallel()

		item := newsletter.NewMediaItem(newsletter.MediaType("hologram"), "https://cdn.example/h.png")
		html := render.Render(sectionWith(func(s *newsletter.Section) {
			s.MediaItems = []newsletter.MediaItem{item}
		}))
		assert.Contains(t, html, `<img src="https://cdn.example/h.png"`)
	})

	t.Run("video renders a clickable placeholder, never a video tag", func(t *testing.T) {
		t.Parallel()

		item := newsletter.NewMediaItem(newsletter.MediaTypeVideo, "https://cdn.example/v.mp4")
		html := render.Render(sectionWith(func(s *newsletter.Section) {
			s.MediaItems = []newsletter.MediaItem{item}
		}))

		assert.Contains(t, html, `<a href="https://cdn.example/v.mp4" target="_blank"`)
		assert.Contains(t, html, "צפייה בסרטון")
		assert.NotContains(t, html, "<video")
	})

	t.Run("youtube short url becomes a thumbnail linking to the video", func(t *testing.T) {
		t.Parallel()

		item := newsletter.NewMediaItem(newsletter.MediaTypeYouTube, "https://youtu.be/dQw4w9WgXcQ")
		html := render.Render(sectionWith(func(s *newsletter.Section) {
			s.MediaItems = []newsletter.MediaItem{item}
		}))

		assert.Contains(t, html, `<a href="https://youtu.be/dQw4w9WgXcQ" target="_blank"`)
		assert.Contains(t, html, "https://img.youtube.com/vi/dQw4w9WgXcQ/hqdefault.jpg")
		assert.NotContains(t, html, "<iframe")
	})

	t.Run("youtube watch and embed urls resolve the same id", func(t *testing.T) {
		t.Parallel()

		for _, url := range []string{
			"https://www.youtube.com/watch?v=dQw4w9WgXcQ",
			"https://www.youtube.com/embed/dQw4w9WgXcQ",
		} {
			item := newsletter.NewMediaItem(newsletter.MediaTypeYouTube, url)
			html := render.Render(sectionWith(func(s *newsletter.Section) {
				s.MediaItems = []newsletter.MediaItem{item}
			}))
			assert.Contains(t, html, "https://img.youtube.com/vi/dQw4w9WgXcQ/hqdefault.jpg", url)
		}
	})

	t.Run("youtube preview image wins over the derived thumbnail", func(t *testing.T) {
		t.Parallel()

		item := newsletter.NewMediaItem(newsletter.MediaTypeYouTube, "https://youtu.be/dQw4w9WgXcQ")
		item.PreviewURL = "https://cdn.example/preview.png"
		html := render.Render(sectionWith(func(s *newsletter.Section) {
			s.MediaItems = []newsletter.MediaItem{item}
		}))

		assert.Contains(t, html, `src="https://cdn.example/preview.png"`)
		assert.NotContains(t, html, "img.youtube.com")
	})

	t.Run("unparseable youtube url degrades to a linked placeholder", func(t *testing.T) {
		t.Parallel()

		item := newsletter.NewMediaItem(newsletter.MediaTypeYouTube, "https://youtube.com/playlist?list=abc")
		html := render.Render(sectionWith(func(s *newsletter.Section) {
			s.MediaItems = []newsletter.MediaItem{item}
		}))

		assert.Contains(t, html, `<a href="https://youtube.com/playlist?list=abc" target="_blank"`)
		assert.Contains(t, html, "&#9654;")
		assert.NotContains(t, html, "img.youtube.com")
	})

	t.Run("link pill uses the title or falls back to the url", func(t *testing.T) {
		t.Parallel()

		item := newsletter.NewMediaItem(newsletter.MediaTypeLink, "https://blog.example/post")
		html := render.Render(sectionWith(func(s *newsletter.Section) {
			s.MediaItems = []newsletter.MediaItem{item}
		}))
		assert.Contains(t, html, ">https://blog.example/post</a>")

		item.Title = "Read the post"
		html = render.Render(sectionWith(func(s *newsletter.Section) {
			s.MediaItems = []newsletter.MediaItem{item}
		}))
		assert.Contains(t, html, ">Read the post</a>")
	})

	t.Run("attached text renders below the media", func(t *testing.T) {
		t.Parallel()

		item := newsletter.NewMediaItem(newsletter.MediaTypeImage, "https://cdn.example/a.png")
		item.TextContent = "see [notes](https://n.example)"
		html := render.Render(sectionWith(func(s *newsletter.Section) {
			s.MediaItems = []newsletter.MediaItem{item}
		}))

		assert.Contains(t, html, `<a href="https://n.example"`)
		assert.Greater(t, strings.Index(html, "https://n.example"), strings.Index(html, "cdn.example/a.png"))
	})
}

func TestRenderLists(t *testing.T) {
	t.Parallel()

	t.Run("numbered list indices are positional and zero-padded", func(t *testing.T) {
		t.Parallel()

		list := newsletter.NewList(newsletter.ListTypeNumbered)
		list.Items = []newsletter.ListItem{
			newsletter.NewListItem("first"),
			newsletter.NewListItem("second"),
		}
		doc := sectionWith(func(s *newsletter.Section) {
			s.Lists = []newsletter.ListData{list}
		})

		html := render.Render(doc)
		require.Contains(t, html, ">01.</span>")
		require.Contains(t, html, ">02.</span>")
		assert.Less(t, strings.Index(html, ">01.</span>"), strings.Index(html, ">02.</span>"))

		// Deleting the first item renumbers: the survivor becomes 01.
		shrunk := doc.DeleteListItem(doc.Sections[0].ID, "", list.ID, list.Items[0].ID)
		html = render.Render(shrunk)
		assert.Contains(t, html, ">01.</span>")
		assert.NotContains(t, html, ">02.</span>")
		assert.Contains(t, html, "second")
	})

	t.Run("bullet list renders dot markers", func(t *testing.T) {
		t.Parallel()

		list := newsletter.NewList(newsletter.ListTypeBullet)
		list.Items = []newsletter.ListItem{newsletter.NewListItem("only")}

		html := render.Render(sectionWith(func(s *newsletter.Section) {
			s.Lists = []newsletter.ListData{list}
		}))
		assert.Contains(t, html, "&#9679;")
		assert.NotContains(t, html, "01.")
	})

	t.Run("item color and font size are honored", func(t *testing.T) {
		t.Parallel()

		item := newsletter.NewListItem("colored")
		item.Color = "#dc2626"
		item.FontSize = newsletter.FontSizeSM
		list := newsletter.NewList(newsletter.ListTypeBullet)
		list.Items = []newsletter.ListItem{item}

		html := render.Render(sectionWith(func(s *newsletter.Section) {
			s.Lists = []newsletter.ListData{list}
		}))
		assert.Contains(t, html, "color:#dc2626")
		assert.Contains(t, html, "font-size:14px")
	})
}

func TestRenderSubsections(t *testing.T) {
	t.Parallel()

	t.Run("after-list content renders after the lists", func(t *testing.T) {
		t.Parallel()

		list := newsletter.NewList(newsletter.ListTypeBullet)
		list.Items = []newsletter.ListItem{newsletter.NewListItem("point")}

		sub := newsletter.NewSubsection()
		sub.Title = "Details"
		sub.Content = "before"
		sub.Lists = []newsletter.ListData{list}
		sub.AfterListContent = "after the list"

		html := render.Render(sectionWith(func(s *newsletter.Section) {
			s.Subsections = []newsletter.Subsection{sub}
		}))

		assert.Contains(t, html, ">Details</h3>")
		assert.Less(t, strings.Index(html, "before"), strings.Index(html, "point"))
		assert.Less(t, strings.Index(html, "point"), strings.Index(html, "after the list"))
	})

	t.Run("title color falls back when unset", func(t *testing.T) {
		t.Parallel()

		sub := newsletter.NewSubsection()
		sub.Title = "Plain"

		html := render.Render(sectionWith(func(s *newsletter.Section) {
			s.Subsections = []newsletter.Subsection{sub}
		}))
		assert.Contains(t, html, "color:#1f2937")
	})
}
