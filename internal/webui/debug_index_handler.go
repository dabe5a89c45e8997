package webui

import (
	"html/template"
	"net/http"

	"github.com/davecgh/go-spew/spew"
)

type debugData struct {
	Title string
	Pre   string
}

func writeDebugData(w http.ResponseWriter, title string, data interface{}) {
	content := spew.Sdump(data)
	w.Header().Set("Content-Type", "text/html")
	tmpl, err := template.ParseFS(templateFS, "debug_index.html")
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	dataStruct := debugData{
		Title: title,
		Pre:   content,
	}

	err = tmpl.Execute(w, dataStruct)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (webUI *WebUI) debugIndexHandler(w http.ResponseWriter, r *http.Request) {
	dataType := r.URL.Query().Get("dataType")

	var data interface{}
	var title string

	manager := webUI.Catalog

	switch dataType {
	case "apps":
		data = manager.Apps()
		title = "Catalog - Apps"
	case "categories":
		data = manager.Categories()
		title = "Catalog - Categories"
	case "regions":
		data = manager.Regions()
		title = "Catalog - Regions"
	case "bounds":
		min, max := manager.ReleasedBounds()
		data = map[string]interface{}{"min": min, "max": max}
		title = "Catalog - Released Bounds"
	case "top_developers":
		rows, err := manager.CatalogDB.TopDevelopersByRevenue(r.Context(), 10)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		data = rows
		title = "Catalog DB - Top Developers by Revenue"
	default:
		data = map[string]string{
			"error": "Please use one of the following: apps, categories, regions, bounds, top_developers.",
		}
		title = "Choose a data type"
	}

	writeDebugData(w, title, data)
}
