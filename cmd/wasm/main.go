//go:build js && wasm

package main

import (
	"encoding/json"
	"syscall/js"

	"promptmark/config"
	"promptmark/internal/adapter/analyzer"
	"promptmark/internal/adapter/memstore"
	"promptmark/internal/adapter/site"
	"promptmark/internal/domain"
	"promptmark/internal/logging"
	"promptmark/internal/usecase"
)

var (
	store     *memstore.MemoryStore
	sites     *site.Registry
	extractor *analyzer.Extractor
	tracker   *usecase.TrackUseCase
	bookmarks *usecase.BookmarkUseCase
)

func init() {
	sites = site.FromConfig(config.DefaultConfig().Sites)
	extractor = analyzer.NewExtractor()
	store = memstore.NewMemoryStore()
	tracker = usecase.NewTrackUseCase(store, sites, logging.Discard())
	bookmarks = usecase.NewBookmarkUseCase(store, extractor)
}

func main() {
	c := make(chan struct{})

	js.Global().Set("pmExtractKeywords", js.FuncOf(extractKeywords))
	js.Global().Set("pmTrack", js.FuncOf(trackChat))
	js.Global().Set("pmChats", js.FuncOf(listChats))
	js.Global().Set("pmOutline", js.FuncOf(outlineChat))
	js.Global().Set("pmDelete", js.FuncOf(deleteChat))
	js.Global().Set("pmClear", js.FuncOf(clearChats))

	<-c
}

func extractKeywords(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return makeError("usage: pmExtractKeywords(prompt)")
	}
	return makeResult(map[string]interface{}{
		"keywords": extractor.Extract(args[0].String()),
	})
}

func trackChat(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return makeError("usage: pmTrack(transcriptJSON)")
	}

	var t domain.Transcript
	if err := json.Unmarshal([]byte(args[0].String()), &t); err != nil {
		return makeError("invalid transcript: " + err.Error())
	}

	result, err := tracker.Track(t)
	if err != nil {
		return makeError("track failed: " + err.Error())
	}

	return makeResult(map[string]interface{}{
		"success": true,
		"chatId":  result.ChatID,
		"added":   result.Added,
		"updated": result.Updated,
		"skipped": result.Skipped,
	})
}

func listChats(this js.Value, args []js.Value) interface{} {
	search := ""
	if len(args) > 0 {
		search = args[0].String()
	}

	list, err := bookmarks.List(search)
	if err != nil {
		return makeError("list failed: " + err.Error())
	}
	return makeResult(map[string]interface{}{
		"chats": list,
	})
}

func outlineChat(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return makeError("usage: pmOutline(chatId, [type], [search])")
	}

	filter := usecase.MessageFilter{}
	if len(args) > 1 {
		filter.Type = args[1].String()
	}
	if len(args) > 2 {
		filter.Search = args[2].String()
	}

	entries, err := bookmarks.Outline(args[0].String(), filter)
	if err != nil {
		return makeError("outline failed: " + err.Error())
	}
	return makeResult(map[string]interface{}{
		"chatId":  args[0].String(),
		"outline": entries,
	})
}

func deleteChat(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return makeError("usage: pmDelete(chatId)")
	}
	if err := bookmarks.Delete(args[0].String()); err != nil {
		return makeError(err.Error())
	}
	return makeResult(map[string]interface{}{
		"success": true,
	})
}

func clearChats(this js.Value, args []js.Value) interface{} {
	if err := bookmarks.Clear(); err != nil {
		return makeError(err.Error())
	}
	return makeResult(map[string]interface{}{
		"success": true,
	})
}

func makeError(msg string) interface{} {
	result, _ := json.Marshal(map[string]interface{}{
		"error": msg,
	})
	return string(result)
}

func makeResult(data map[string]interface{}) interface{} {
	result, _ := json.Marshal(data)
	return string(result)
}
