package creation

import "time"

type NotificationVariant string

const (
	VariantDefault     NotificationVariant = "default"
	VariantDestructive NotificationVariant = "destructive"
)

// Notification is a transient user-facing message raised by a transition
type Notification struct {
	Variant     NotificationVariant `json:"variant"`
	Title       string              `json:"title"`
	Description string              `json:"description"`
	CreatedAt   time.Time           `json:"createdAt"`
}

// maxNotifications bounds the per-session history
const maxNotifications = 20

const (
	titleUploaded       = "File uploaded successfully"
	titleUploadFailed   = "Error uploading file"
	titleUploadRejected = "Upload Error"
	titleMissingFile    = "Missing file"
	titleCreated        = "Project created successfully"
	titleCreateFailed   = "Error creating project"
	titleSlideDeleted   = "Slide Deleted"

	descUploadFailed = "There was a problem uploading your file. Please try again."
	descMissingFile  = "Please upload a presentation file first"
	descCreated      = "Your video project has been created and is being processed"
	descCreateFailed = "There was a problem creating your project. Please try again."
)
