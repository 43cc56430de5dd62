// Package web is the browser-facing tier. It owns no data: every page is
// built from envelopes fetched from the API tier through apiclient.
package web

import (
	"context"
	"strconv"
	"strings"

	"magicvilla/internal/apiclient"
	"magicvilla/internal/envelope"
	"magicvilla/internal/model"
)

// endpoint is one API resource, e.g. http://api:8080/api/VillaApi.
type endpoint struct {
	client *apiclient.Client
	url    string
	token  string
}

func newEndpoint(client *apiclient.Client, baseURL, resource, token string) endpoint {
	return endpoint{client: client, url: strings.TrimRight(baseURL, "/") + resource, token: token}
}

// send addresses the collection itself.
func (e endpoint) send(ctx context.Context, method apiclient.Method, body any) (envelope.Response, error) {
	return e.do(ctx, method, e.url, body)
}

// sendID always appends the id, even when it is not positive, so the API
// tier gets to reject it.
func (e endpoint) sendID(ctx context.Context, method apiclient.Method, id int, body any) (envelope.Response, error) {
	return e.do(ctx, method, e.url+"/"+strconv.Itoa(id), body)
}

func (e endpoint) do(ctx context.Context, method apiclient.Method, url string, body any) (envelope.Response, error) {
	return apiclient.Send[envelope.Response](ctx, e.client, apiclient.Request{
		Method: method,
		URL:    url,
		Body:   body,
		Token:  e.token,
	})
}

// VillaService calls /api/VillaApi.
type VillaService struct {
	endpoint
}

func NewVillaService(client *apiclient.Client, baseURL, token string) *VillaService {
	return &VillaService{newEndpoint(client, baseURL, "/api/VillaApi", token)}
}

func (s *VillaService) GetAll(ctx context.Context) (envelope.Response, error) {
	return s.send(ctx, apiclient.GET, nil)
}

func (s *VillaService) Get(ctx context.Context, id int) (envelope.Response, error) {
	return s.sendID(ctx, apiclient.GET, id, nil)
}

func (s *VillaService) Create(ctx context.Context, dto model.VillaCreateDTO) (envelope.Response, error) {
	return s.send(ctx, apiclient.POST, dto)
}

// Update addresses the villa by dto.ID.
func (s *VillaService) Update(ctx context.Context, dto model.VillaUpdateDTO) (envelope.Response, error) {
	return s.sendID(ctx, apiclient.PUT, dto.ID, dto)
}

func (s *VillaService) Delete(ctx context.Context, id int) (envelope.Response, error) {
	return s.sendID(ctx, apiclient.DELETE, id, nil)
}

// VillaNumberService calls /api/VillaNumberApi.
type VillaNumberService struct {
	endpoint
}

func NewVillaNumberService(client *apiclient.Client, baseURL, token string) *VillaNumberService {
	return &VillaNumberService{newEndpoint(client, baseURL, "/api/VillaNumberApi", token)}
}

func (s *VillaNumberService) GetAll(ctx context.Context) (envelope.Response, error) {
	return s.send(ctx, apiclient.GET, nil)
}

func (s *VillaNumberService) Get(ctx context.Context, villaNo int) (envelope.Response, error) {
	return s.sendID(ctx, apiclient.GET, villaNo, nil)
}

func (s *VillaNumberService) Create(ctx context.Context, dto model.VillaNumberCreateDTO) (envelope.Response, error) {
	return s.send(ctx, apiclient.POST, dto)
}

// Update addresses the villa number by dto.VillaNo.
func (s *VillaNumberService) Update(ctx context.Context, dto model.VillaNumberUpdateDTO) (envelope.Response, error) {
	return s.sendID(ctx, apiclient.PUT, dto.VillaNo, dto)
}

func (s *VillaNumberService) Delete(ctx context.Context, villaNo int) (envelope.Response, error) {
	return s.sendID(ctx, apiclient.DELETE, villaNo, nil)
}
