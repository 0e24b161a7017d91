package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"

	"github.com/InkwellBlog/web-client/internal/model"
	"github.com/google/uuid"
)

// MaxFileSize matches the backend bucket limit for featured images.
const MaxFileSize = 5 * 1024 * 1024

var allowedImageTypes = map[string]struct{}{
	"image/jpeg": {},
	"image/jpg":  {},
	"image/png":  {},
	"image/gif":  {},
	"image/webp": {},
}

var (
	ErrFileMustBeImage = errors.New("file must be a JPEG, PNG, GIF or WebP image")
	ErrFileTooLarge    = fmt.Errorf("file size exceeds the %d byte limit", MaxFileSize)
)

type fileResponse struct {
	ID       string `json:"$id"`
	Name     string `json:"name"`
	MimeType string `json:"mimeType"`
	Size     int64  `json:"sizeOriginal"`
}

func (c *Client) filesPath() string {
	return fmt.Sprintf("/storage/buckets/%s/files", c.bucketID)
}

// UploadFile streams an image into the storage bucket and returns the created
// file record. Type and size are validated before any bytes go on the wire.
func (c *Client) UploadFile(ctx context.Context, sessionSecret string, filename string, contentType string, size int64, file io.Reader) (*model.StoredFile, error) {
	if _, ok := allowedImageTypes[contentType]; !ok {
		return nil, ErrFileMustBeImage
	}
	if size > MaxFileSize {
		return nil, ErrFileTooLarge
	}

	var requestBody bytes.Buffer
	writer := multipart.NewWriter(&requestBody)

	if err := writer.WriteField("fileId", uuid.NewString()); err != nil {
		c.logger.Sugar().Errorf("failed to write fileId field for upload request: %s", err.Error())
		return nil, err
	}

	fileWriter, err := writer.CreateFormFile("file", filename)
	if err != nil {
		c.logger.Sugar().Errorf("failed to create file part for upload request: %s", err.Error())
		return nil, err
	}

	if _, err := io.Copy(fileWriter, file); err != nil {
		c.logger.Sugar().Errorf("failed to copy file content for upload request: %s", err.Error())
		return nil, err
	}

	if err := writer.Close(); err != nil {
		c.logger.Sugar().Errorf("failed to close writer for upload request: %s", err.Error())
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url(c.filesPath()), &requestBody)
	if err != nil {
		c.logger.Sugar().Errorf("failed to create upload request: %s", err.Error())
		return nil, err
	}

	req.Header.Set("Content-Type", writer.FormDataContentType())
	c.setHeaders(req, sessionSecret)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Sugar().Errorf("failed to do upload request: %s", err.Error())
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		c.logger.Sugar().Errorf("failed to read upload response body: %s", err.Error())
		return nil, err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, c.decodeError(c.filesPath(), resp.StatusCode, body)
	}

	var out fileResponse
	if err := json.Unmarshal(body, &out); err != nil {
		c.logger.Sugar().Errorf("failed to decode upload response body: %s", err.Error())
		return nil, err
	}

	return &model.StoredFile{
		ID:       out.ID,
		Name:     out.Name,
		MimeType: out.MimeType,
		Size:     out.Size,
	}, nil
}

func (c *Client) DeleteFile(ctx context.Context, sessionSecret string, fileID string) error {
	return c.do(ctx, http.MethodDelete, c.filesPath()+"/"+fileID, sessionSecret, nil, nil)
}

// FilePreviewURL builds the URL of a server-side resized preview.
func (c *Client) FilePreviewURL(fileID string, width int, height int, quality int) string {
	values := url.Values{}
	values.Set("project", c.projectID)
	values.Set("width", fmt.Sprint(width))
	values.Set("height", fmt.Sprint(height))
	values.Set("quality", fmt.Sprint(quality))
	values.Set("gravity", "center")
	values.Set("output", "jpg")
	return fmt.Sprintf("%s/preview?%s", c.url(c.filesPath()+"/"+fileID), values.Encode())
}

// FileViewURL builds the URL of the file as stored, without transformation.
func (c *Client) FileViewURL(fileID string) string {
	return fmt.Sprintf("%s/view?project=%s", c.url(c.filesPath()+"/"+fileID), url.QueryEscape(c.projectID))
}

// FileDownloadURL builds the URL that forces a download disposition.
func (c *Client) FileDownloadURL(fileID string) string {
	return fmt.Sprintf("%s/download?project=%s", c.url(c.filesPath()+"/"+fileID), url.QueryEscape(c.projectID))
}
