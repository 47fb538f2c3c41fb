package soundserver

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/SalmonTech123/Sound-Analysis/internal/engine/sounds"
	"github.com/SalmonTech123/Sound-Analysis/internal/engine/sources"
)

// RegisterTools registers all sound-analysis tools on the given MCP
// server: sound management, overlap/hashtag analysis, and exports.
func RegisterTools(server *mcp.Server, store *sounds.Store, genres *sources.GenreResolver) {
	registerSoundAdd(server, store)
	registerSoundList(server, store)
	registerSoundSetData(server, store)
	registerSoundSetTitle(server, store)
	registerSoundAnalyze(server, store, genres)
	registerExportOverlapping(server, store)
	registerExportAllCreators(server, store)
	registerExportJSON(server, store, genres)
}
