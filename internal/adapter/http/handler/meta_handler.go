package handler

import (
	"net/http"

	"github.com/iho/flowtrack/internal/domain"
)

// MetaHandler serves the static vocabularies clients build forms from.
type MetaHandler struct{}

// NewMetaHandler creates a new MetaHandler.
func NewMetaHandler() *MetaHandler {
	return &MetaHandler{}
}

// Currencies returns the supported currency codes.
func (h *MetaHandler) Currencies(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string][]string{
		"currencies": domain.SupportedCurrencies(),
	})
}

// Categories returns the suggested categories per transaction type.
// Free-text categories are still accepted on transactions.
func (h *MetaHandler) Categories(w http.ResponseWriter, r *http.Request) {
	categories := make(map[string][]string, len(domain.CommonCategories))
	for kind, names := range domain.CommonCategories {
		categories[string(kind)] = names
	}

	writeJSON(w, http.StatusOK, map[string]any{"categories": categories})
}
