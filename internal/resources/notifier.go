package resources

// broadcaster is the transport primitive for fan-out notifications.
// Satisfied by *server.MCPServer.
type broadcaster interface {
	SendNotificationToAllClients(method string, params map[string]any)
}

// Notifier signals observers that the memo resource changed.
//
// Notification is fire-and-forget: callers invoke MemoChanged only
// after the mutation is visible to readers, and a slow or absent
// observer never fails the calling tool.
type Notifier struct {
	transport broadcaster
}

// NewNotifier creates a Notifier over the given transport.
func NewNotifier(transport broadcaster) *Notifier {
	return &Notifier{transport: transport}
}

// MemoChanged broadcasts a resources/updated notification for the
// memo URI. Safe to call on a nil Notifier.
func (n *Notifier) MemoChanged() {
	if n == nil || n.transport == nil {
		return
	}
	n.transport.SendNotificationToAllClients(
		"notifications/resources/updated",
		map[string]any{"uri": MemoURI},
	)
}
