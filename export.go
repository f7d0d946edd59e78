package main

import (
	"encoding/json"

	"github.com/milk9111/sugarpop/levels"
	"golang.design/x/clipboard"
)

// marshalStatics renders drawn lines as a "statics" array ready to paste
// into a level file.
func marshalStatics(statics []levels.StaticDef) ([]byte, error) {
	return json.MarshalIndent(struct {
		Statics []levels.StaticDef `json:"statics"`
	}{statics}, "", "  ")
}

func (g *Game) exportDrawnLines() {
	statics := g.session.ExportDrawnLines()
	if len(statics) == 0 {
		g.logger.Info("no drawn lines to export")
		return
	}
	data, err := marshalStatics(statics)
	if err != nil {
		g.logger.Error("export drawn lines", "err", err)
		return
	}
	if !g.clipboardOK {
		g.logger.Info("drawn lines", "json", string(data))
		return
	}
	clipboard.Write(clipboard.FmtText, data)
	g.logger.Info("copied drawn lines to clipboard", "segments", len(statics))
}
