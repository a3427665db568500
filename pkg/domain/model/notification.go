package model

// InstallRequestNotification carries everything the owner-facing
// notification needs: the email subject, the template context, and the
// recipient list.
type InstallRequestNotification struct {
	Subject          string
	ProviderName     string
	ProviderLink     string
	Message          string
	OrganizationName string
	RequesterName    string
	RequesterLink    string
	SettingsLink     string
	Recipients       []string
}

// NotificationType tags the notification for the mail subsystem
const NotificationType = "organization.integration.request"

// Message is a rendered email ready for delivery
type Message struct {
	Subject string
	Type    string
	Text    string
	HTML    string
	To      []string
}
