package service

import (
	"bytes"
	"fmt"
	"html/template"

	"outfit-assistant/models"
	"outfit-assistant/utils"
)

const boardTemplate = `{{if not .Blocks}}<b>Sorry, no outfits found.</b>{{else}}{{range .Blocks}}<h4>Outfit {{.Index}}</h4>
<div class="outfit" style="display:flex;gap:18px;flex-wrap:wrap;margin-bottom:24px;">
{{range .Slots}}<div class="outfit-slot" style="text-align:center;">
{{if .Missing}}<div class="outfit-missing" style="width:200px;height:200px;background:#f7f7f7;border-radius:12px;border:1px solid #eee;display:flex;align-items:center;justify-content:center;color:#999;">No {{.Name}}</div>
{{else}}<img src="{{.ImageURL}}" alt="{{.Label}}" style="width:200px;height:200px;object-fit:cover;border-radius:12px;border:1px solid #ddd;">
{{end}}<div style="margin-top:6px">{{.Label}}</div>
</div>
{{end}}</div>
{{end}}{{end}}`

// ResponseComposer turns matched outfits into a display board and a summary line
type ResponseComposer struct {
	shuffle ShuffleFunc
	tmpl    *template.Template
}

// NewResponseComposer creates a new ResponseComposer. A nil shuffle uses the unseeded global source.
func NewResponseComposer(shuffle ShuffleFunc) *ResponseComposer {
	return &ResponseComposer{
		shuffle: defaultShuffle(shuffle),
		tmpl:    template.Must(template.New("board").Parse(boardTemplate)),
	}
}

// echo renders an absent value in summaries
func echo(v string) string {
	if v == "" {
		return "none"
	}
	return v
}

// Compose selects up to MaxOutfits of matches at random and builds the board
// and the one-line summary for chatCtx
func (c *ResponseComposer) Compose(matches []models.OutfitRecord, chatCtx models.ChatContext) (models.OutfitBoard, string) {
	if len(matches) == 0 {
		reply := fmt.Sprintf("No outfits for event='%s', season='%s', gender='%s', skin='%s', city='%s'.",
			echo(chatCtx.Event), echo(chatCtx.Season), echo(chatCtx.Gender), echo(chatCtx.Skin), echo(chatCtx.City))
		return models.OutfitBoard{}, reply
	}

	chosen := sampleOutfits(matches, MaxOutfits, c.shuffle)
	board := models.OutfitBoard{Blocks: make([]models.OutfitBlock, 0, len(chosen))}
	for i, rec := range chosen {
		board.Blocks = append(board.Blocks, buildBlock(i+1, rec))
	}

	reply := fmt.Sprintf("Showing %d outfit(s) for event='%s', season='%s', gender='%s', skin='%s', city='%s'.",
		len(chosen), echo(chatCtx.Event), echo(chatCtx.Season), echo(chatCtx.Gender), echo(chatCtx.Skin), echo(chatCtx.City))
	return board, reply
}

func buildBlock(index int, rec models.OutfitRecord) models.OutfitBlock {
	block := models.OutfitBlock{Index: index, Slots: make([]models.OutfitSlot, 0, len(models.ImageFields))}
	for _, field := range models.ImageFields {
		slot := models.OutfitSlot{
			Name:  field,
			Label: utils.CapitalizeWords(field),
		}
		link := rec.Get(field)
		if utils.IsPlaceholderLink(link) {
			slot.Missing = true
		} else {
			slot.ImageURL = link
		}
		block.Slots = append(block.Slots, slot)
	}
	return block
}

// RenderHTML renders the board as an HTML fragment.
// An empty board renders the "no outfits found" notice.
func (c *ResponseComposer) RenderHTML(board models.OutfitBoard) (string, error) {
	var buf bytes.Buffer
	if err := c.tmpl.Execute(&buf, board); err != nil {
		return "", fmt.Errorf("failed to render outfit board: %w", err)
	}
	return buf.String(), nil
}
