package newsletter

import "github.com/google/uuid"

// FontSize is a closed scale of text sizes carried by the editing UI.
// Unknown values fall back to render defaults instead of failing.
type FontSize string

const (
	FontSizeXS   FontSize = "text-xs"
	FontSizeSM   FontSize = "text-sm"
	FontSizeBase FontSize = "text-base"
	FontSizeLG   FontSize = "text-lg"
	FontSizeXL   FontSize = "text-xl"
	FontSize2XL  FontSize = "text-2xl"
	FontSize3XL  FontSize = "text-3xl"
)

// MediaType identifies which of the four fixed media templates an item
// renders with.
type MediaType string

const (
	MediaTypeImage   MediaType = "image"
	MediaTypeVideo   MediaType = "video"
	MediaTypeYouTube MediaType = "youtube"
	MediaTypeLink    MediaType = "link"
)

// MediaSize selects the rendered width of a media item.
type MediaSize string

const (
	MediaSizeSmall  MediaSize = "small"
	MediaSizeMedium MediaSize = "medium"
	MediaSizeLarge  MediaSize = "large"
	MediaSizeFull   MediaSize = "full"
)

// Alignment positions a media item within its container.
type Alignment string

const (
	AlignLeft   Alignment = "left"
	AlignCenter Alignment = "center"
	AlignRight  Alignment = "right"
)

// ListType distinguishes bullet lists from numbered lists.
type ListType string

const (
	ListTypeBullet   ListType = "bullet"
	ListTypeNumbered ListType = "numbered"
)

// Direction is the direction of a move operation within an ordered sequence.
type Direction string

const (
	MoveUp   Direction = "up"
	MoveDown Direction = "down"
)

// Document is the full newsletter content tree: a dated header plus an
// ordered sequence of sections. Text fields may embed [text](url) link
// spans and **text** bold spans; everything else is plain text.
type Document struct {
	MainTitle string    `json:"mainTitle"`
	SubTitle  string    `json:"subTitle"`
	Date      string    `json:"date"`
	Sections  []Section `json:"sections"`
}

// Section is a titled content block. Order in the slice is display order.
// IDs are unique within the document and stable across edits.
type Section struct {
	ID              string       `json:"id"`
	Title           string       `json:"title"`
	Content         string       `json:"content"`
	BackgroundColor string       `json:"backgroundColor"`
	SideLineColor   string       `json:"sideLineColor"`
	TitleFontSize   FontSize     `json:"titleFontSize"`
	ContentFontSize FontSize     `json:"contentFontSize"`
	Subsections     []Subsection `json:"subsections"`
	MediaItems      []MediaItem  `json:"mediaItems"`
	Lists           []ListData   `json:"lists"`
}

// Subsection nests one level under a Section and is owned by it: deleting
// the section deletes its subsections. AfterListContent renders after the
// list block.
type Subsection struct {
	ID               string      `json:"id"`
	Title            string      `json:"title"`
	Content          string      `json:"content"`
	TitleColor       string      `json:"titleColor,omitempty"`
	TitleFontSize    FontSize    `json:"titleFontSize"`
	ContentFontSize  FontSize    `json:"contentFontSize"`
	MediaItems       []MediaItem `json:"mediaItems"`
	Lists            []ListData  `json:"lists"`
	AfterListContent string      `json:"afterListContent,omitempty"`
}

// MediaItem is an embedded image, video, YouTube link, or generic link
// owned by exactly one Section or Subsection. TextContent is free text
// attached below the media; it survives deletion of the item itself.
type MediaItem struct {
	ID           string    `json:"id"`
	Type         MediaType `json:"type"`
	URL          string    `json:"url"`
	Title        string    `json:"title,omitempty"`
	Description  string    `json:"description,omitempty"`
	Size         MediaSize `json:"size,omitempty"`
	Alignment    Alignment `json:"alignment,omitempty"`
	PreviewURL   string    `json:"previewUrl,omitempty"`
	TextContent  string    `json:"textContent,omitempty"`
	TextFontSize FontSize  `json:"textFontSize,omitempty"`
}

// ListData is a bullet or numbered list. Numbering of numbered lists is
// derived from item position at render time and never stored.
type ListData struct {
	ID    string     `json:"id"`
	Type  ListType   `json:"type"`
	Items []ListItem `json:"items"`
}

// ListItem is a single entry in a list. Text may embed link spans.
type ListItem struct {
	ID       string   `json:"id"`
	Text     string   `json:"text"`
	Color    string   `json:"color,omitempty"`
	FontSize FontSize `json:"fontSize,omitempty"`
}

// NewSection returns a Section with a fresh id and editing defaults:
// empty subsections, media, and lists.
func NewSection() Section {
	return Section{
		ID:              uuid.NewString(),
		BackgroundColor: "#ffffff",
		SideLineColor:   "#3b82f6",
		TitleFontSize:   FontSizeLG,
		ContentFontSize: FontSizeBase,
	}
}

// NewSubsection returns a Subsection with a fresh id and editing defaults.
func NewSubsection() Subsection {
	return Subsection{
		ID:              uuid.NewString(),
		TitleFontSize:   FontSizeLG,
		ContentFontSize: FontSizeBase,
	}
}

// NewMediaItem returns a MediaItem of the given type with a fresh id and
// the documented render defaults for size and alignment.
func NewMediaItem(mediaType MediaType, url string) MediaItem {
	return MediaItem{
		ID:        uuid.NewString(),
		Type:      mediaType,
		URL:       url,
		Size:      MediaSizeMedium,
		Alignment: AlignCenter,
	}
}

// NewList returns an empty ListData of the given type with a fresh id.
func NewList(listType ListType) ListData {
	return ListData{
		ID:   uuid.NewString(),
		Type: listType,
	}
}

// NewListItem returns a ListItem with a fresh id.
func NewListItem(text string) ListItem {
	return ListItem{
		ID:   uuid.NewString(),
		Text: text,
	}
}
