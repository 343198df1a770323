// Package rest implements the server-backed notification feed over the
// platform's REST API.
package rest

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"beacon/config"
	"beacon/internal/domain/entity"
	domainerrors "beacon/internal/domain/errors"
	"beacon/internal/domain/repository"
	"beacon/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// RepositoryParams holds dependencies for the REST notification repository
type RepositoryParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
	Store  service.CredentialStore
}

type notificationRepository struct {
	baseURL    string
	httpClient *http.Client
	store      service.CredentialStore
	logger     *slog.Logger
}

// NewNotificationRepository creates the REST-backed notification feed.
func NewNotificationRepository(params RepositoryParams) (repository.NotificationRepository, error) {
	if params.Config.API == nil || params.Config.API.BaseURL == "" {
		return nil, errors.New("api base url must be configured")
	}

	return &notificationRepository{
		baseURL: params.Config.API.BaseURL,
		httpClient: &http.Client{
			Timeout: params.Config.API.Timeout,
		},
		store:  params.Store,
		logger: params.Logger,
	}, nil
}

// listResponse mirrors the API's success envelope for the feed endpoint.
type listResponse struct {
	Data []*entity.Notification `json:"data"`
}

// List retrieves a page of notifications, newest first.
func (r *notificationRepository) List(ctx context.Context, limit, offset int) ([]*entity.Notification, error) {
	url := fmt.Sprintf("%s/notifications?limit=%s&offset=%s",
		r.baseURL, strconv.Itoa(limit), strconv.Itoa(offset))

	resp, err := r.do(ctx, http.MethodGet, url)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if err := checkStatus(resp); err != nil {
		return nil, err
	}

	var body listResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, errors.Wrap(err, "decode notification list")
	}

	return body.Data, nil
}

// MarkRead marks a single notification as read.
func (r *notificationRepository) MarkRead(ctx context.Context, id int64) error {
	url := fmt.Sprintf("%s/notifications/%d/read", r.baseURL, id)

	resp, err := r.do(ctx, http.MethodPost, url)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	return checkStatus(resp)
}

// MarkAllRead marks every notification of the current user as read.
func (r *notificationRepository) MarkAllRead(ctx context.Context) error {
	resp, err := r.do(ctx, http.MethodPost, r.baseURL+"/notifications/read-all")
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	return checkStatus(resp)
}

func (r *notificationRepository) do(ctx context.Context, method, url string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, url, nil)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	creds, err := r.store.Load(ctx)
	if err != nil {
		if errors.Is(err, service.ErrNoCredentials) {
			return nil, errors.Wrap(domainerrors.ErrNotAuthenticated, "feed request without session")
		}

		return nil, errors.Wrap(err, "load credentials for feed request")
	}
	req.Header.Set("Authorization", "Bearer "+creds.Token)
	req.Header.Set("Accept", "application/json")

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrFeedUnavailable, err.Error())
	}

	return resp, nil
}

func checkStatus(resp *http.Response) error {
	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return nil
	case resp.StatusCode == http.StatusNotFound:
		return errors.WithStack(domainerrors.ErrNotificationNotFound)
	case resp.StatusCode == http.StatusUnauthorized:
		return errors.WithStack(domainerrors.ErrNotAuthenticated)
	default:
		return errors.Wrapf(domainerrors.ErrFeedUnavailable,
			"feed returned status %d", resp.StatusCode)
	}
}
