package notify

import (
	"context"
	"fmt"
	"strings"

	"github.com/gen2brain/beeep"

	"phonedrop/internal/model"
)

// maxListedNames caps how many filenames the notification body spells out
// before truncating with an ellipsis.
const maxListedNames = 3

// Notifier dispatches a user-visible summary of one upload batch. The OS
// notification subsystem is environment-dependent, so the pipeline only
// depends on this interface.
type Notifier interface {
	Notify(ctx context.Context, p model.NotificationPayload) error
}

// Desktop sends OS desktop notifications through beeep. The preview image,
// when present, is attached as the notification icon.
type Desktop struct {
	title string
}

// NewDesktop returns a desktop notifier. appName is shown as the
// notification source.
func NewDesktop(appName string) *Desktop {
	beeep.AppName = appName
	return &Desktop{title: "Files received"}
}

func (d *Desktop) Notify(_ context.Context, p model.NotificationPayload) error {
	title := d.title
	if p.Count == 1 {
		title = "File received"
	}
	if err := beeep.Notify(title, Message(p), p.PreviewPath); err != nil {
		return fmt.Errorf("show notification: %w", err)
	}
	return nil
}

// Noop discards notifications; used when notifications are disabled.
type Noop struct{}

func (Noop) Notify(context.Context, model.NotificationPayload) error {
	return nil
}

// Message formats the notification body: up to maxListedNames filenames,
// then an ellipsis.
func Message(p model.NotificationPayload) string {
	names := p.Names
	if len(names) <= maxListedNames {
		return strings.Join(names, ", ")
	}
	return strings.Join(names[:maxListedNames], ", ") + ", ..."
}
