package newsletter

// Patches are explicit field masks: a nil field leaves the target value
// untouched, a non-nil field replaces it wholesale. Child collections
// (subsections, media, lists) are managed by their own operations and are
// deliberately absent here.

// SectionPatch updates scalar fields of a Section.
type SectionPatch struct {
	Title           *string
	Content         *string
	BackgroundColor *string
	SideLineColor   *string
	TitleFontSize   *FontSize
	ContentFontSize *FontSize
}

func (p SectionPatch) apply(s *Section) {
	if p.Title != nil {
		s.Title = *p.Title
	}
	if p.Content != nil {
		s.Content = *p.Content
	}
	if p.BackgroundColor != nil {
		s.BackgroundColor = *p.BackgroundColor
	}
	if p.SideLineColor != nil {
		s.SideLineColor = *p.SideLineColor
	}
	if p.TitleFontSize != nil {
		s.TitleFontSize = *p.TitleFontSize
	}
	if p.ContentFontSize != nil {
		s.ContentFontSize = *p.ContentFontSize
	}
}

// SubsectionPatch updates scalar fields of a Subsection.
type SubsectionPatch struct {
	Title            *string
	Content          *string
	AfterListContent *string
	TitleColor       *string
	TitleFontSize    *FontSize
	ContentFontSize  *FontSize
}

func (p SubsectionPatch) apply(s *Subsection) {
	if p.Title != nil {
		s.Title = *p.Title
	}
	if p.Content != nil {
		s.Content = *p.Content
	}
	if p.AfterListContent != nil {
		s.AfterListContent = *p.AfterListContent
	}
	if p.TitleColor != nil {
		s.TitleColor = *p.TitleColor
	}
	if p.TitleFontSize != nil {
		s.TitleFontSize = *p.TitleFontSize
	}
	if p.ContentFontSize != nil {
		s.ContentFontSize = *p.ContentFontSize
	}
}

// MediaItemPatch updates fields of a MediaItem.
type MediaItemPatch struct {
	Type         *MediaType
	URL          *string
	Title        *string
	Description  *string
	Size         *MediaSize
	Alignment    *Alignment
	PreviewURL   *string
	TextContent  *string
	TextFontSize *FontSize
}

func (p MediaItemPatch) apply(m *MediaItem) {
	if p.Type != nil {
		m.Type = *p.Type
	}
	if p.URL != nil {
		m.URL = *p.URL
	}
	if p.Title != nil {
		m.Title = *p.Title
	}
	if p.Description != nil {
		m.Description = *p.Description
	}
	if p.Size != nil {
		m.Size = *p.Size
	}
	if p.Alignment != nil {
		m.Alignment = *p.Alignment
	}
	if p.PreviewURL != nil {
		m.PreviewURL = *p.PreviewURL
	}
	if p.TextContent != nil {
		m.TextContent = *p.TextContent
	}
	if p.TextFontSize != nil {
		m.TextFontSize = *p.TextFontSize
	}
}

// ListPatch updates fields of a ListData.
type ListPatch struct {
	Type *ListType
}

func (p ListPatch) apply(l *ListData) {
	if p.Type != nil {
		l.Type = *p.Type
	}
}

// ListItemPatch updates fields of a ListItem.
type ListItemPatch struct {
	Text     *string
	Color    *string
	FontSize *FontSize
}

func (p ListItemPatch) apply(i *ListItem) {
	if p.Text != nil {
		i.Text = *p.Text
	}
	if p.Color != nil {
		i.Color = *p.Color
	}
	if p.FontSize != nil {
		i.FontSize = *p.FontSize
	}
}

// Ptr returns a pointer to v, for building patches inline:
//
//	doc = doc.UpdateSection(id, newsletter.SectionPatch{Title: newsletter.Ptr("Weekly")})
func Ptr[T any](v T) *T {
	return &v
}
