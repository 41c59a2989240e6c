// Package inventoryclient — HTTP-клиент для REST API инвентаря.
package inventoryclient

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
	"strconv"
	"strings"

	"github.com/sir_venger/inventory_lite/pkg/inventoryproto"
)

// Item — запись в том виде, в котором её отдаёт сервер.
type Item struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Photo       *string `json:"photo"`
}

type SearchResult struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Photo — файл для загрузки.
type Photo struct {
	FileName string
	Data     []byte
}

// StatusError возвращается, когда сервер ответил не 2xx.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("inventory: unexpected status %d: %s", e.Code, strings.TrimSpace(e.Body))
}

// StatusCode достаёт код ответа из ошибки клиента; 0, если это не StatusError.
func StatusCode(err error) int {
	var se *StatusError
	if errors.As(err, &se) {
		return se.Code
	}
	return 0
}

type Client interface {
	// Register создаёт запись; photo может быть nil.
	Register(ctx context.Context, name, description string, photo *Photo) (Item, error)
	List(ctx context.Context) ([]Item, error)
	Get(ctx context.Context, id string) (Item, error)
	Update(ctx context.Context, id, name, description string) (Item, error)
	UpdatePhoto(ctx context.Context, id string, photo Photo) (Item, error)
	Photo(ctx context.Context, id string) ([]byte, string, error)
	Delete(ctx context.Context, id string) error
	// SearchPost и SearchGet обращаются к /search разными методами.
	SearchPost(ctx context.Context, id string, withPhoto bool) (SearchResult, error)
	SearchGet(ctx context.Context, id string, withPhoto bool) (SearchResult, error)
}

type httpClient struct {
	base string
	c    *http.Client
}

// New создаёт клиента для сервера по адресу baseURL.
func New(baseURL string) Client {
	return &httpClient{
		base: strings.TrimRight(baseURL, "/"),
		c:    &http.Client{},
	}
}

func (h *httpClient) Register(ctx context.Context, name, description string, photo *Photo) (Item, error) {
	fields := map[string]string{
		inventoryproto.FieldInventoryName: name,
		inventoryproto.FieldDescription:   description,
	}

	body, contentType, err := multipartBody(fields, photo)
	if err != nil {
		return Item{}, err
	}

	var out Item
	err = h.do(ctx, http.MethodPost, inventoryproto.PathRegister, body, contentType, http.StatusCreated, &out)
	return out, err
}

func (h *httpClient) List(ctx context.Context) ([]Item, error) {
	var out []Item
	err := h.do(ctx, http.MethodGet, inventoryproto.PathInventory, nil, "", http.StatusOK, &out)
	return out, err
}

func (h *httpClient) Get(ctx context.Context, id string) (Item, error) {
	var out Item
	err := h.do(ctx, http.MethodGet, inventoryproto.ItemPath(url.PathEscape(id)), nil, "", http.StatusOK, &out)
	return out, err
}

// Update отправляет urlencoded форму; пустые значения сервер игнорирует.
func (h *httpClient) Update(ctx context.Context, id, name, description string) (Item, error) {
	form := url.Values{}
	form.Set(inventoryproto.FieldName, name)
	form.Set(inventoryproto.FieldDescription, description)

	var out Item
	err := h.do(ctx, http.MethodPut, inventoryproto.ItemPath(url.PathEscape(id)),
		strings.NewReader(form.Encode()), "application/x-www-form-urlencoded", http.StatusOK, &out)
	return out, err
}

func (h *httpClient) UpdatePhoto(ctx context.Context, id string, photo Photo) (Item, error) {
	body, contentType, err := multipartBody(nil, &photo)
	if err != nil {
		return Item{}, err
	}

	var out Item
	err = h.do(ctx, http.MethodPut, inventoryproto.PhotoPath(url.PathEscape(id)), body, contentType, http.StatusOK, &out)
	return out, err
}

// Photo скачивает фото и возвращает байты вместе с Content-Type.
func (h *httpClient) Photo(ctx context.Context, id string) ([]byte, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, h.base+inventoryproto.PhotoPath(url.PathEscape(id)), nil)
	if err != nil {
		return nil, "", err
	}

	resp, err := h.c.Do(req)
	if err != nil {
		return nil, "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, "", statusError(resp)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", err
	}
	return data, resp.Header.Get("Content-Type"), nil
}

func (h *httpClient) Delete(ctx context.Context, id string) error {
	var out struct {
		Message string `json:"message"`
	}
	return h.do(ctx, http.MethodDelete, inventoryproto.ItemPath(url.PathEscape(id)), nil, "", http.StatusOK, &out)
}

func (h *httpClient) SearchPost(ctx context.Context, id string, withPhoto bool) (SearchResult, error) {
	form := url.Values{}
	form.Set(inventoryproto.FieldID, id)
	form.Set(inventoryproto.FieldHasPhoto, strconv.FormatBool(withPhoto))

	var out SearchResult
	err := h.do(ctx, http.MethodPost, inventoryproto.PathSearch,
		strings.NewReader(form.Encode()), "application/x-www-form-urlencoded", http.StatusOK, &out)
	return out, err
}

func (h *httpClient) SearchGet(ctx context.Context, id string, withPhoto bool) (SearchResult, error) {
	q := url.Values{}
	q.Set(inventoryproto.FieldID, id)
	q.Set(inventoryproto.FieldIncludePhoto, strconv.FormatBool(withPhoto))

	var out SearchResult
	err := h.do(ctx, http.MethodGet, inventoryproto.PathSearch+"?"+q.Encode(), nil, "", http.StatusOK, &out)
	return out, err
}

// do выполняет запрос и декодирует JSON-ответ в out при ожидаемом статусе.
func (h *httpClient) do(ctx context.Context, method, path string, body io.Reader, contentType string, want int, out any) error {
	req, err := http.NewRequestWithContext(ctx, method, h.base+path, body)
	if err != nil {
		return err
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	resp, err := h.c.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != want {
		return statusError(resp)
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func statusError(resp *http.Response) error {
	b, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
	return &StatusError{Code: resp.StatusCode, Body: string(b)}
}

func multipartBody(fields map[string]string, photo *Photo) (io.Reader, string, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	for k, v := range fields {
		if err := mw.WriteField(k, v); err != nil {
			return nil, "", err
		}
	}

	if photo != nil {
		fw, err := mw.CreateFormFile(inventoryproto.FieldPhoto, photo.FileName)
		if err != nil {
			return nil, "", err
		}
		if _, err = fw.Write(photo.Data); err != nil {
			return nil, "", err
		}
	}

	if err := mw.Close(); err != nil {
		return nil, "", err
	}
	return &buf, mw.FormDataContentType(), nil
}
