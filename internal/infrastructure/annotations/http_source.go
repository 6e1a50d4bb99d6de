package annotations

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"overlay-bot/internal/domain/entity"
	"overlay-bot/internal/domain/port"
)

// StatusError сервер ответил неуспешным статусом
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("HTTP error! Status: %d", e.Code)
}

// HTTPSource загружает изображения и аннотации с веб-сервера
type HTTPSource struct {
	BaseURL   string
	Resources entity.Resources
	Client    *http.Client
}

// NewHTTPSource создаёт источник для baseURL; nil client заменяется на http.DefaultClient
func NewHTTPSource(baseURL string, resources entity.Resources, client *http.Client) *HTTPSource {
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTPSource{
		BaseURL:   strings.TrimRight(baseURL, "/"),
		Resources: resources,
		Client:    client,
	}
}

// Fetch запрашивает аннотации изображения index
func (s *HTTPSource) Fetch(ctx context.Context, index int) ([]entity.Annotation, error) {
	resp, err := s.get(ctx, s.Resources.AnnotationPath(index))
	if err != nil {
		var se *StatusError
		if errors.As(err, &se) && se.Code == http.StatusNotFound {
			return nil, fmt.Errorf("%w: %w", err, port.ErrAnnotationsNotFound)
		}
		return nil, err
	}
	defer resp.Body.Close()

	return decode(resp.Body)
}

// LoadImage скачивает изображение index
func (s *HTTPSource) LoadImage(ctx context.Context, index int) ([]byte, error) {
	resp, err := s.get(ctx, s.Resources.ImagePath(index))
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read image: %w", err)
	}
	return data, nil
}

// get выполняет GET и превращает неуспешный статус в ошибку.
func (s *HTTPSource) get(ctx context.Context, rel string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.BaseURL+"/"+rel, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	resp, err := s.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", rel, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		resp.Body.Close()
		return nil, &StatusError{Code: resp.StatusCode}
	}

	return resp, nil
}

var (
	_ port.AnnotationSource = (*HTTPSource)(nil)
	_ port.ImageStore       = (*HTTPSource)(nil)
)
