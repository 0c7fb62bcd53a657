// internal/ai/document.go
package ai

// Document is the paginated content model exchanged with clients: pages of
// positioned text blocks, as produced by a PDF extraction step upstream.
type Document struct {
	Pages []Page `json:"pages"`
}

type Page struct {
	Number     int         `json:"number"`
	Width      float64     `json:"width,omitempty"`
	Height     float64     `json:"height,omitempty"`
	TextBlocks []TextBlock `json:"textBlocks"`
}

// TextBlock carries position and font metadata alongside the text so a
// client can re-render the translated document in place.
type TextBlock struct {
	Text     string  `json:"text"`
	X        float64 `json:"x,omitempty"`
	Y        float64 `json:"y,omitempty"`
	Width    float64 `json:"width,omitempty"`
	Height   float64 `json:"height,omitempty"`
	FontSize float64 `json:"fontSize,omitempty"`
	FontName string  `json:"fontName,omitempty"`
}
