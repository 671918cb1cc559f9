package handlers

import "net/http"

func (h *Handler) SendChatQuery(w http.ResponseWriter, r *http.Request) {
	query, err := h.chatbot.SendQuery(r.Context(), r.URL.Query().Get("query"))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"query": query})
}

func (h *Handler) ReadChatReply(w http.ResponseWriter, r *http.Request) {
	reply, err := h.chatbot.ReadReply()
	if err != nil {
		h.fail(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"reply": reply})
}
