package commands

import (
	"Listline/internal/authentication/permissions"
	"Listline/internal/behaviours"
	"Listline/internal/middlewares"
	"Listline/internal/services/storage"
	"Listline/utils"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/The127/ioc"
	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
)

const (
	MaxImageSize        = 10 << 20
	DefaultUploadFolder = "/_personalization"

	sniffLength = 512
)

// imageTypes maps the sniffed content types that are stored to their file extension.
// SVG is left out since it can carry script.
var imageTypes = map[string]string{
	"image/png":  ".png",
	"image/jpeg": ".jpg",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

var (
	ErrNotAnImage    = utils.NewPublicError(utils.ErrHttpBadRequest, "Please select an image file")
	ErrImageTooLarge = utils.NewPublicError(utils.ErrHttpPayloadTooLarge, "Image must be less than 10MB")
)

type UploadImage struct {
	Folder      string
	Filename    string
	ContentType string
	Size        int64
	Content     io.Reader
}

func (a UploadImage) LogRequest() bool {
	return true
}

func (a UploadImage) LogResponse() bool {
	return true
}

func (a UploadImage) IsAllowed(ctx context.Context) (behaviours.PolicyResult, error) {
	return behaviours.PermissionBasedPolicy(ctx, permissions.UploadUse)
}

func (a UploadImage) GetRequestName() string {
	return "UploadImage"
}

type UploadImageResponse struct {
	Url string
}

func HandleUploadImage(ctx context.Context, command UploadImage) (*UploadImageResponse, error) {
	if !strings.HasPrefix(command.ContentType, "image/") {
		return nil, ErrNotAnImage
	}

	if command.Size > MaxImageSize {
		return nil, ErrImageTooLarge
	}

	folder, err := normalizeFolder(command.Folder)
	if err != nil {
		return nil, err
	}

	contentType, content, err := sniffImage(command.Content)
	if err != nil {
		return nil, err
	}

	key := fmt.Sprintf("%s/%s%s", folder, uuid.New(), imageTypes[contentType])

	scope := middlewares.GetScope(ctx)
	store := ioc.GetDependency[storage.Store](scope)
	url, err := store.Put(ctx, key, contentType, content, command.Size)
	if err != nil {
		return nil, fmt.Errorf("storing image: %w", err)
	}

	return &UploadImageResponse{
		Url: url,
	}, nil
}

// normalizeFolder strips leading and trailing slashes and rejects parent references.
func normalizeFolder(folder string) (string, error) {
	if strings.TrimSpace(folder) == "" {
		folder = DefaultUploadFolder
	}

	for _, segment := range strings.Split(folder, "/") {
		if segment == ".." {
			return "", fmt.Errorf("folder must not contain '..': %w", utils.ErrHttpBadRequest)
		}
	}

	folder = strings.Trim(path.Clean("/"+folder), "/")
	if folder == "" {
		folder = strings.Trim(DefaultUploadFolder, "/")
	}

	return folder, nil
}

// sniffImage detects the type from the leading bytes and returns a reader that
// still yields the whole upload. The declared type and filename are not trusted.
func sniffImage(content io.Reader) (string, io.Reader, error) {
	if content == nil {
		return "", nil, ErrNotAnImage
	}

	head := make([]byte, sniffLength)
	n, err := io.ReadFull(content, head)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		return "", nil, fmt.Errorf("reading upload: %w", err)
	}
	head = head[:n]

	contentType := mimetype.Detect(head).String()
	if _, ok := imageTypes[contentType]; !ok {
		return "", nil, ErrNotAnImage
	}

	return contentType, io.MultiReader(bytes.NewReader(head), content), nil
}
