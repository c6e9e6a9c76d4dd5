package export

import (
	"bytes"
	"context"
	"fmt"

	"github.com/2beens/liftstats/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"
)

const (
	DefaultBackupsFolderName = "liftstats-backups"
	folderMimeType           = "application/vnd.google-apps.folder"
)

// DriveUploader stores export files in one Google Drive folder.
type DriveUploader struct {
	service  *drive.Service
	folderID string
}

// NewDriveUploader connects to Drive and finds or creates the backups folder.
// Pass option.WithCredentialsJSON with the service account credentials.
func NewDriveUploader(ctx context.Context, folderName string, opts ...option.ClientOption) (*DriveUploader, error) {
	driveService, err := drive.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("unable to retrieve drive client: %w", err)
	}

	u := &DriveUploader{service: driveService}
	folderID, err := u.ensureFolder(ctx, folderName)
	if err != nil {
		return nil, err
	}
	u.folderID = folderID

	return u, nil
}

func (u *DriveUploader) FolderID() string {
	return u.folderID
}

func (u *DriveUploader) ensureFolder(ctx context.Context, folderName string) (string, error) {
	query := fmt.Sprintf("mimeType = '%s' and trashed = false and name = '%s'", folderMimeType, folderName)
	found, err := u.service.Files.List().
		Q(query).
		Fields("files(id, name)").
		Context(ctx).
		Do()
	if err != nil {
		return "", fmt.Errorf("unable to retrieve files: %w", err)
	}

	switch len(found.Files) {
	case 0:
		log.Debugf("backups folder %s not found, creating", folderName)
	case 1:
		return found.Files[0].Id, nil
	default:
		log.Warnf("found %d backups folders named %s, using %s", len(found.Files), folderName, found.Files[0].Id)
		return found.Files[0].Id, nil
	}

	created, err := u.service.Files.Create(&drive.File{
		Name:     folderName,
		MimeType: folderMimeType,
	}).
		Fields("id").
		Context(ctx).
		Do()
	if err != nil {
		return "", fmt.Errorf("create backups folder: %w", err)
	}
	log.Printf("backups folder created: %s", created.Id)

	return created.Id, nil
}

// Upload creates a new file in the backups folder and returns its ID.
func (u *DriveUploader) Upload(ctx context.Context, name, mimeType string, content []byte) (_ string, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "export.drive.upload")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	file, err := u.service.Files.Create(&drive.File{
		Name:     name,
		MimeType: mimeType,
		Parents:  []string{u.folderID},
	}).
		Fields("id, parents").
		Media(bytes.NewReader(content)).
		Context(ctx).
		Do()
	if err != nil {
		return "", fmt.Errorf("upload %s: %w", name, err)
	}

	return file.Id, nil
}

// UploadSnapshot encodes snap in format f and uploads it under FileName.
func (u *DriveUploader) UploadSnapshot(ctx context.Context, snap Snapshot, f Format) (string, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, snap, f); err != nil {
		return "", err
	}
	return u.Upload(ctx, FileName(snap, f), f.MimeType(), buf.Bytes())
}
