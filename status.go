package invoicepdf

import "strings"

// Invoice status values. This is a closed, client-visible enumeration;
// anything outside it renders with a neutral badge rather than failing.
const (
	StatusDraft         = "draft"
	StatusPending       = "pending"
	StatusSent          = "sent"
	StatusPartiallyPaid = "partially_paid"
	StatusPaid          = "paid"
	StatusOverdue       = "overdue"
)

// StatusInfo describes how a status is presented: badge label, color tokens,
// and an icon name. It is the single source of truth for status styling,
// shared by the renderer, the CLI, and the HTTP service.
type StatusInfo struct {
	Label      string `json:"label"`
	Color      string `json:"color"`
	Background string `json:"background"`
	Icon       string `json:"icon"`
}

// statusTable maps each known status to its presentation.
var statusTable = map[string]StatusInfo{
	StatusDraft:         {Label: "DRAFT", Color: "#475569", Background: "#f1f5f9", Icon: "edit"},
	StatusPending:       {Label: "PENDING", Color: "#92400e", Background: "#fef3c7", Icon: "clock"},
	StatusSent:          {Label: "SENT", Color: "#1e40af", Background: "#dbeafe", Icon: "send"},
	StatusPartiallyPaid: {Label: "PARTIALLY PAID", Color: "#6d28d9", Background: "#ede9fe", Icon: "pie-chart"},
	StatusPaid:          {Label: "PAID", Color: "#065f46", Background: "#d1fae5", Icon: "check-circle"},
	StatusOverdue:       {Label: "OVERDUE", Color: "#991b1b", Background: "#fee2e2", Icon: "alert-circle"},
}

// neutralStatus is the fallback presentation for unrecognized values.
var neutralStatus = StatusInfo{Color: "#374151", Background: "#f3f4f6", Icon: "circle"}

// StatusPresentation returns the presentation for a status value.
// Unknown values get the neutral style with the raw status text uppercased;
// underscores are shown as spaces.
func StatusPresentation(status string) StatusInfo {
	key := strings.ToLower(strings.TrimSpace(status))
	if info, ok := statusTable[key]; ok {
		return info
	}
	info := neutralStatus
	info.Label = strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(status), "_", " "))
	return info
}

// KnownStatuses returns the closed status enumeration in lifecycle order.
func KnownStatuses() []string {
	return []string{
		StatusDraft,
		StatusPending,
		StatusSent,
		StatusPartiallyPaid,
		StatusPaid,
		StatusOverdue,
	}
}

// IsKnownStatus reports whether status is one of the six known values.
func IsKnownStatus(status string) bool {
	_, ok := statusTable[strings.ToLower(strings.TrimSpace(status))]
	return ok
}
