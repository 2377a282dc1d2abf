package gateway

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"infinity8/models"
)

// SpacesAPI is the core API surface for space browsing and admin CRUD.
type SpacesAPI interface {
	List(ctx context.Context, filter models.SpaceFilter) ([]models.Space, error)
	Get(ctx context.Context, id int64) (*models.Space, error)
	Availability(ctx context.Context, id int64, date string) (*models.SpaceAvailability, error)
	Create(ctx context.Context, input models.SpaceInput) (*models.Space, error)
	Update(ctx context.Context, id int64, patch map[string]interface{}) (*models.Space, error)
	Delete(ctx context.Context, id int64) error
}

// SpacesClient implements SpacesAPI against the core API.
type SpacesClient struct {
	*Client
}

func NewSpacesClient(c *Client) *SpacesClient {
	return &SpacesClient{Client: c}
}

func (s *SpacesClient) List(ctx context.Context, filter models.SpaceFilter) ([]models.Space, error) {
	query := url.Values{}
	if filter.Type != "" {
		query.Set("type", filter.Type)
	}
	if filter.Location != "" {
		query.Set("location", filter.Location)
	}
	if filter.MinCapacity > 0 {
		query.Set("min_capacity", strconv.Itoa(filter.MinCapacity))
	}
	if filter.MaxPrice > 0 {
		query.Set("max_price", strconv.FormatFloat(filter.MaxPrice, 'f', -1, 64))
	}

	var spaces []models.Space
	if err := s.do(ctx, http.MethodGet, "/spaces", query, nil, &spaces); err != nil {
		return nil, err
	}
	return spaces, nil
}

func (s *SpacesClient) Get(ctx context.Context, id int64) (*models.Space, error) {
	var space models.Space
	if err := s.do(ctx, http.MethodGet, fmt.Sprintf("/spaces/%d", id), nil, nil, &space); err != nil {
		return nil, err
	}
	return &space, nil
}

func (s *SpacesClient) Availability(ctx context.Context, id int64, date string) (*models.SpaceAvailability, error) {
	query := url.Values{}
	query.Set("date", date)

	var availability models.SpaceAvailability
	if err := s.do(ctx, http.MethodGet, fmt.Sprintf("/spaces/%d/availability", id), query, nil, &availability); err != nil {
		return nil, err
	}
	return &availability, nil
}

func (s *SpacesClient) Create(ctx context.Context, input models.SpaceInput) (*models.Space, error) {
	var space models.Space
	if err := s.do(ctx, http.MethodPost, "/spaces", nil, input, &space); err != nil {
		return nil, err
	}
	return &space, nil
}

func (s *SpacesClient) Update(ctx context.Context, id int64, patch map[string]interface{}) (*models.Space, error) {
	var space models.Space
	if err := s.do(ctx, http.MethodPut, fmt.Sprintf("/spaces/%d", id), nil, patch, &space); err != nil {
		return nil, err
	}
	return &space, nil
}

func (s *SpacesClient) Delete(ctx context.Context, id int64) error {
	return s.do(ctx, http.MethodDelete, fmt.Sprintf("/spaces/%d", id), nil, nil, nil)
}
