package models

// ChatRequest is the inbound payload for one conversational turn. The session
// id is generated and persisted client-side (the browser synthesizes
// "session_{uaFragment}_{epochMillis}_{rand36}" and keeps it in localStorage);
// the server only requires it to be present.
type ChatRequest struct {
	SessionID string `json:"session_id"`
	Message   string `json:"message"`
}

// ChatResponse carries the assistant reply plus the lead-capture outcome of
// the turn, so the client knows when to tell the visitor their details were
// saved.
type ChatResponse struct {
	Response  string    `json:"response"`
	LeadEvent LeadEvent `json:"lead_event"`
}
