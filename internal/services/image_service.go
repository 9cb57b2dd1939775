package services

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// DefaultImageURL is the fixed fallback used whenever the image host cannot
// be reached or answers with an error.
const DefaultImageURL = "https://picsum.photos/600/600?random=1"

const picsumBaseURL = "https://picsum.photos/600/600"

// ImageResolver returns a cover image URL for a new product.
type ImageResolver interface {
	RandomImageURL() string
}

// ImageService resolves images from Lorem Picsum, which serves a distinct
// pseudo-random image per unique query parameter. The reachability check is
// a single HEAD request with a bounded timeout: create-product waits on this
// call, so the timeout caps how long a slow image host can hold up a create.
type ImageService struct {
	client  *http.Client
	baseURL string
}

// NewImageService creates an ImageService with the given request timeout.
func NewImageService(timeout time.Duration) *ImageService {
	return &ImageService{
		client:  &http.Client{Timeout: timeout},
		baseURL: picsumBaseURL,
	}
}

// NewImageServiceWithBaseURL is like NewImageService against a different
// image host. Used by tests.
func NewImageServiceWithBaseURL(baseURL string, timeout time.Duration) *ImageService {
	return &ImageService{
		client:  &http.Client{Timeout: timeout},
		baseURL: baseURL,
	}
}

// RandomImageURL returns a verified random image URL, or DefaultImageURL on
// any failure. Failures are absorbed here and never reach the caller.
func (s *ImageService) RandomImageURL() string {
	imageURL := fmt.Sprintf("%s?random=%s", s.baseURL, uuid.New().String())

	resp, err := s.client.Head(imageURL)
	if err != nil {
		log.Printf("Image host unreachable, using fallback: %v", err)
		return DefaultImageURL
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 400 {
		log.Printf("Image host returned status %d, using fallback", resp.StatusCode)
		return DefaultImageURL
	}
	return imageURL
}
