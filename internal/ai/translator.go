// internal/ai/translator.go
package ai

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// maxChunkChars bounds the text sent in one translation call.
const maxChunkChars = 4000

// maxConcurrentChunks bounds the fan-out of chunk translations issued for
// one page.
const maxConcurrentChunks = 4

// Translator translates paginated documents page by page: block texts are
// concatenated, split into bounded chunks, translated concurrently, then
// redistributed across the original block count by proportional character
// slicing. Block-to-block correspondence is approximate by design of the
// heuristic; a failed chunk keeps its original text so a partial
// translation still succeeds at the document level.
type Translator struct {
	gen    Generator
	logger *slog.Logger
}

func NewTranslator(gen Generator, logger *slog.Logger) *Translator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Translator{gen: gen, logger: logger}
}

// TranslateDocument returns a copy of doc with every page's text translated
// to targetLanguage. Position and font metadata are preserved untouched.
func (t *Translator) TranslateDocument(ctx context.Context, doc Document, targetLanguage string) (Document, error) {
	jobID := uuid.NewString()
	blocks := 0
	for _, p := range doc.Pages {
		blocks += len(p.TextBlocks)
	}
	t.logger.Info("document translation started",
		"jobID", jobID,
		"targetLanguage", targetLanguage,
		"pages", len(doc.Pages),
		"blocks", blocks,
	)

	out := Document{Pages: make([]Page, 0, len(doc.Pages))}
	for _, page := range doc.Pages {
		translated, err := t.translatePage(ctx, page, targetLanguage)
		if err != nil {
			return Document{}, err
		}
		out.Pages = append(out.Pages, translated)
	}

	t.logger.Info("document translation completed", "jobID", jobID)
	return out, nil
}

func (t *Translator) translatePage(ctx context.Context, page Page, targetLanguage string) (Page, error) {
	out := page
	out.TextBlocks = make([]TextBlock, len(page.TextBlocks))
	copy(out.TextBlocks, page.TextBlocks)

	if len(page.TextBlocks) == 0 {
		return out, nil
	}

	texts := make([]string, 0, len(page.TextBlocks))
	for _, block := range page.TextBlocks {
		texts = append(texts, block.Text)
	}
	concatenated := strings.Join(texts, " ")

	chunks := splitChunks(concatenated, maxChunkChars)
	translated := make([]string, len(chunks))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentChunks)
	for i, chunk := range chunks {
		g.Go(func() error {
			text, err := t.translateChunk(gctx, chunk, targetLanguage)
			if err != nil {
				// Keep the original text rather than failing the document.
				t.logger.Warn("chunk translation failed, keeping original text",
					"chunk", i, "error", err)
				text = chunk
			}
			translated[i] = text
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Page{}, err
	}

	slices := redistribute(strings.Join(translated, ""), texts)
	for i := range out.TextBlocks {
		out.TextBlocks[i].Text = slices[i]
	}
	return out, nil
}

func (t *Translator) translateChunk(ctx context.Context, text, targetLanguage string) (string, error) {
	prompt := fmt.Sprintf(`You are an AI specialized in translation to %[1]s.

Translate the following text to %[1]s.
Keep the same style and tone as the original.
If the text contains technical terms, use the appropriate %[1]s terminology.
IMPORTANT: do NOT wrap your answer in quotation marks.

Text to translate: %[2]q

Translation:`, targetLanguage, text)

	response, err := t.gen.GenerateText(ctx, prompt)
	if err != nil {
		return "", err
	}

	// The model occasionally wraps its answer in quotes anyway.
	response = strings.TrimSpace(response)
	for range 2 {
		if len(response) >= 2 && strings.HasPrefix(response, `"`) && strings.HasSuffix(response, `"`) {
			response = response[1 : len(response)-1]
		}
	}
	return response, nil
}

// splitChunks cuts s into pieces of at most limit runes, preferring to cut
// at a space so words stay whole. Joining the pieces reproduces s exactly.
func splitChunks(s string, limit int) []string {
	if utf8.RuneCountInString(s) <= limit {
		return []string{s}
	}

	var chunks []string
	runes := []rune(s)
	for len(runes) > 0 {
		if len(runes) <= limit {
			chunks = append(chunks, string(runes))
			break
		}
		cut := limit
		for i := limit; i > limit/2; i-- {
			if runes[i-1] == ' ' {
				cut = i
				break
			}
		}
		chunks = append(chunks, string(runes[:cut]))
		runes = runes[cut:]
	}
	return chunks
}

// redistribute slices translated across len(originals) blocks, each block
// receiving a share proportional to its original rune length. Character
// proportion, not semantic boundary: the correspondence is approximate.
func redistribute(translated string, originals []string) []string {
	out := make([]string, len(originals))
	if len(originals) == 0 {
		return out
	}

	total := 0
	for _, o := range originals {
		total += utf8.RuneCountInString(o)
	}

	runes := []rune(translated)
	if total == 0 {
		out[0] = translated
		return out
	}

	offset := 0
	for i, o := range originals {
		if i == len(originals)-1 {
			out[i] = string(runes[offset:])
			break
		}
		share := utf8.RuneCountInString(o) * len(runes) / total
		end := offset + share
		if end > len(runes) {
			end = len(runes)
		}
		out[i] = string(runes[offset:end])
		offset = end
	}
	return out
}
