package imageurl

// Default card rendering size for previews.
const (
	previewWidth   = 400
	previewHeight  = 300
	previewQuality = 85
)

// URLBuilder is the subset of the backend client that builds file URLs.
type URLBuilder interface {
	FilePreviewURL(fileID string, width int, height int, quality int) string
	FileViewURL(fileID string) string
	FileDownloadURL(fileID string) string
}

// DefaultStrategies is the fallback chain used for featured images: a resized
// preview first, then the raw file view, then the download URL.
func DefaultStrategies(builder URLBuilder) []Strategy {
	return []Strategy{
		{
			Name: "preview",
			URL: func(fileID string) string {
				return builder.FilePreviewURL(fileID, previewWidth, previewHeight, previewQuality)
			},
		},
		{
			Name: "view",
			URL:  builder.FileViewURL,
		},
		{
			Name: "download",
			URL:  builder.FileDownloadURL,
		},
	}
}
