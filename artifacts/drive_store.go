package artifacts

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	log "github.com/sirupsen/logrus"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

const driveScheme = "drive://"

// DriveStore keeps artifacts as files inside a Google Drive folder.
// Addresses are drive://<fileId>.
type DriveStore struct {
	client   *drive.Service
	folderID string
}

// DriveStoreConfig holds configuration for DriveStore
type DriveStoreConfig struct {
	FolderID        string
	CredentialsJSON string // Service Account JSON, takes precedence over CredentialsPath
	CredentialsPath string
}

// NewDriveStore creates a Drive-backed artifact store using a Service Account
func NewDriveStore(ctx context.Context, cfg DriveStoreConfig) (*DriveStore, error) {
	if cfg.FolderID == "" {
		return nil, fmt.Errorf("ARTIFACT_DRIVE_FOLDER_ID is required for drive storage")
	}

	var opt option.ClientOption
	switch {
	case cfg.CredentialsJSON != "":
		log.Printf("🔑 Using GOOGLE_APPLICATION_CREDENTIALS_JSON for Drive")
		opt = option.WithCredentialsJSON([]byte(cfg.CredentialsJSON))
	case cfg.CredentialsPath != "":
		log.Printf("🔑 Using credentials file %s for Drive", cfg.CredentialsPath)
		opt = option.WithCredentialsFile(cfg.CredentialsPath)
	default:
		return nil, fmt.Errorf("neither GOOGLE_APPLICATION_CREDENTIALS_JSON nor GOOGLE_APPLICATION_CREDENTIALS is set")
	}

	client, err := drive.NewService(ctx, opt, option.WithScopes(drive.DriveFileScope))
	if err != nil {
		return nil, fmt.Errorf("failed to create drive service: %w", err)
	}

	return &DriveStore{client: client, folderID: cfg.FolderID}, nil
}

// Ensure DriveStore implements Store
var _ Store = (*DriveStore)(nil)

// Put uploads data as a new file in the folder
func (s *DriveStore) Put(ctx context.Context, key string, data []byte) (string, error) {
	if err := validateKey(key); err != nil {
		return "", err
	}

	file := &drive.File{
		Name:     key,
		Parents:  []string{s.folderID},
		MimeType: contentTypeFor(key),
	}
	created, err := s.client.Files.Create(file).
		Media(bytes.NewReader(data)).
		Fields("id").
		SupportsAllDrives(true).
		Context(ctx).
		Do()
	if err != nil {
		return "", fmt.Errorf("drive upload failed: %w", err)
	}

	return driveScheme + created.Id, nil
}

// Open downloads the file content at address
func (s *DriveStore) Open(ctx context.Context, address string) (io.ReadCloser, error) {
	fileID, err := driveFileID(address)
	if err != nil {
		return nil, err
	}

	resp, err := s.client.Files.Get(fileID).SupportsAllDrives(true).Context(ctx).Download()
	if err != nil {
		if isDriveNotFound(err) {
			return nil, fmt.Errorf("%w: %s", ErrArtifactNotFound, address)
		}
		return nil, fmt.Errorf("drive download failed for %s: %w", address, err)
	}
	return resp.Body, nil
}

// Delete removes the file at address; a file that is already gone is not an error
func (s *DriveStore) Delete(ctx context.Context, address string) error {
	fileID, err := driveFileID(address)
	if err != nil {
		return err
	}

	err = s.client.Files.Delete(fileID).SupportsAllDrives(true).Context(ctx).Do()
	if err != nil && !isDriveNotFound(err) {
		return fmt.Errorf("drive delete failed for %s: %w", address, err)
	}
	return nil
}

func driveFileID(address string) (string, error) {
	id := strings.TrimPrefix(address, driveScheme)
	if id == address || id == "" {
		return "", fmt.Errorf("invalid artifact address: %s", address)
	}
	return id, nil
}

func isDriveNotFound(err error) bool {
	var apiErr *googleapi.Error
	return errors.As(err, &apiErr) && apiErr.Code == http.StatusNotFound
}
