package httpapi

import (
	"meeras-quiz/internal/content"
)

type API struct {
	store    content.Store
	sessions *SessionRegistry
}

func NewAPI(store content.Store, sessions *SessionRegistry) *API {
	if sessions == nil {
		sessions = NewSessionRegistry()
	}
	return &API{
		store:    store,
		sessions: sessions,
	}
}
